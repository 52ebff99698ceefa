package cmd

import (
	"fmt"
	"math/big"
	"strconv"
	"strings"

	"github.com/Beastly713/lagrange/pkg/lagrange"
	"github.com/charmbracelet/bubbles/textinput"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"
	"github.com/spf13/cobra"
)

// Styles
var (
	promptStyle = lipgloss.NewStyle().Foreground(lipgloss.Color("205"))
	pointStyle  = lipgloss.NewStyle().Foreground(lipgloss.Color("42")) // Green
	errorStyle  = lipgloss.NewStyle().Foreground(lipgloss.Color("196"))
	docStyle    = lipgloss.NewStyle().Margin(1, 2)
)

type promptStage int

const (
	stageModulus promptStage = iota
	stagePoints
)

type sessionModel struct {
	stage     promptStage
	textInput textinput.Model
	modulus   *big.Int
	degree    int // -1 means "use all points"
	points    []lagrange.Point
	status    string
	result    string
	quitting  bool
}

func initialSession() sessionModel {
	ti := textinput.New()
	ti.Placeholder = "prime modulus, e.g. 65537"
	ti.Focus()

	return sessionModel{
		stage:     stageModulus,
		textInput: ti,
		degree:    -1,
		status:    "Enter the prime modulus of the field.",
	}
}

func (m sessionModel) Init() tea.Cmd {
	return textinput.Blink
}

func (m sessionModel) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.KeyMsg:
		switch msg.String() {
		case "ctrl+c", "esc":
			m.quitting = true
			return m, tea.Quit

		case "enter":
			return m.submit()
		}

	case resultMsg:
		if msg.err != nil {
			m.result = ""
			m.status = errorStyle.Render(fmt.Sprintf("Error: %v", msg.err))
		} else {
			m.result = msg.value
			m.status = "Interpolated value at x = 0. Add more points or press esc to quit."
		}
		return m, nil
	}

	var cmd tea.Cmd
	m.textInput, cmd = m.textInput.Update(msg)
	return m, cmd
}

type resultMsg struct {
	value string
	err   error
}

// submit consumes the current input line according to the stage.
func (m sessionModel) submit() (tea.Model, tea.Cmd) {
	input := strings.TrimSpace(m.textInput.Value())

	switch m.stage {
	case stageModulus:
		modulus, ok := new(big.Int).SetString(input, 10)
		if !ok || modulus.Cmp(big.NewInt(1)) <= 0 {
			m.status = errorStyle.Render("The modulus must be a decimal integer greater than 1.")
			return m, nil
		}
		m.modulus = modulus
		m.stage = stagePoints
		m.textInput.Reset()
		m.textInput.Placeholder = "point as x:y, bare y, or 'degree N'"
		m.status = "Enter points one per line. An empty line interpolates."
		return m, nil

	case stagePoints:
		switch {
		case input == "":
			return m, m.interpolate()

		case strings.HasPrefix(input, "degree "):
			d, err := strconv.Atoi(strings.TrimSpace(strings.TrimPrefix(input, "degree ")))
			if err != nil || d < 0 {
				m.status = errorStyle.Render("The degree must be a nonnegative integer.")
				return m, nil
			}
			m.degree = d
			m.textInput.Reset()
			m.status = fmt.Sprintf("Target degree set to %d.", d)
			return m, nil

		default:
			pt, err := m.parsePoint(input)
			if err != nil {
				m.status = errorStyle.Render(err.Error())
				return m, nil
			}
			m.points = append(m.points, pt)
			m.textInput.Reset()
			m.status = fmt.Sprintf("%d point(s) so far. Empty line interpolates.", len(m.points))
			return m, nil
		}
	}

	return m, nil
}

// parsePoint accepts "x:y" or a bare y value; bare values get the next
// implicit x-coordinate (1, 2, 3, ...).
func (m sessionModel) parsePoint(input string) (lagrange.Point, error) {
	if x, y, found := strings.Cut(input, ":"); found {
		bigX, ok := new(big.Int).SetString(strings.TrimSpace(x), 10)
		if !ok {
			return lagrange.Point{}, fmt.Errorf("x-coordinate %q is not a decimal integer", x)
		}
		bigY, ok := new(big.Int).SetString(strings.TrimSpace(y), 10)
		if !ok {
			return lagrange.Point{}, fmt.Errorf("y-coordinate %q is not a decimal integer", y)
		}
		return lagrange.Point{X: bigX, Y: bigY}, nil
	}

	bigY, ok := new(big.Int).SetString(input, 10)
	if !ok {
		return lagrange.Point{}, fmt.Errorf("value %q is not a decimal integer", input)
	}
	return lagrange.Point{X: big.NewInt(int64(len(m.points) + 1)), Y: bigY}, nil
}

func (m sessionModel) interpolate() tea.Cmd {
	points := make([]lagrange.Point, len(m.points))
	copy(points, m.points)
	modulus := m.modulus
	degree := m.degree

	return func() tea.Msg {
		set, err := lagrange.NewPointSet(points)
		if err != nil {
			return resultMsg{err: err}
		}

		var value *big.Int
		if degree >= 0 {
			value, err = lagrange.Interpolate(set, modulus, degree)
		} else {
			value, err = lagrange.Interpolate(set, modulus)
		}
		if err != nil {
			return resultMsg{err: err}
		}
		return resultMsg{value: value.Text(10)}
	}
}

func (m sessionModel) View() string {
	if m.quitting {
		return "Bye!\n"
	}

	var s strings.Builder

	if m.modulus != nil {
		s.WriteString(fmt.Sprintf("Field: integers modulo %s\n", m.modulus.Text(10)))
		if m.degree >= 0 {
			s.WriteString(fmt.Sprintf("Target degree: %d\n", m.degree))
		}
		s.WriteString("\n")
	}

	for i, pt := range m.points {
		s.WriteString(pointStyle.Render(fmt.Sprintf("  %d. (%s, %s)", i+1, pt.X.Text(10), pt.Y.Text(10))))
		s.WriteString("\n")
	}
	if len(m.points) > 0 {
		s.WriteString("\n")
	}

	if m.result != "" {
		s.WriteString(fmt.Sprintf("Value at 0: %s\n\n", pointStyle.Render(m.result)))
	}

	s.WriteString(promptStyle.Render("> ") + m.textInput.View() + "\n")
	s.WriteString(fmt.Sprintf("\n%s\n", m.status))
	s.WriteString("\nenter: submit | empty line: interpolate | esc: quit\n")

	return docStyle.Render(s.String())
}

// Cobra command setup
var interactiveCmd = &cobra.Command{
	Use:   "interactive",
	Short: "Interactive terminal UI for entering points and interpolating",
	RunE: func(cmd *cobra.Command, args []string) error {
		p := tea.NewProgram(initialSession())
		if _, err := p.Run(); err != nil {
			return err
		}
		return nil
	},
}

func init() {
	rootCmd.AddCommand(interactiveCmd)
}
