package cmd

import (
	"fmt"
	"math/big"
	"strings"

	"github.com/Beastly713/lagrange/pkg/lagrange"
	"github.com/spf13/cobra"
)

var (
	modulusArg string
	degreeArg  int
	valuesArg  string
)

var evalCmd = &cobra.Command{
	Use:   "eval [x:y ...]",
	Short: "Evaluate the interpolating polynomial at the origin",
	Long: `Evaluate, at x = 0, the unique polynomial through the given points
over the prime field defined by --modulus.

Points are given either as explicit x:y pairs, or as a comma-separated
list of values via --values, in which case the x-coordinates 1, 2, 3, ...
are implied by position.

Examples:
  lagrange eval -m 17 1:15 2:9 3:3
  lagrange eval -m 17 --values 15,9,3
  lagrange eval -m 65537 -k 1 1:4 2:6 3:8 4:10 5:12`,
	RunE: func(cmd *cobra.Command, args []string) error {
		// 1. Parse the modulus
		modulus, ok := new(big.Int).SetString(modulusArg, 10)
		if !ok {
			return fmt.Errorf("modulus %q is not a decimal integer", modulusArg)
		}

		// 2. Build the point set from whichever shape was supplied
		if valuesArg != "" && len(args) > 0 {
			return fmt.Errorf("give points either as x:y arguments or via --values, not both")
		}

		var points *lagrange.PointSet
		var err error
		switch {
		case valuesArg != "":
			points, err = parseValueList(valuesArg)
		default:
			points, err = parsePairs(args)
		}
		if err != nil {
			return err
		}

		// 3. Interpolate, honoring the degree flag only when it was set
		var result *big.Int
		if cmd.Flags().Changed("degree") {
			result, err = lagrange.Interpolate(points, modulus, degreeArg)
		} else {
			result, err = lagrange.Interpolate(points, modulus)
		}
		if err != nil {
			return err
		}

		fmt.Fprintln(cmd.OutOrStdout(), result.Text(10))
		return nil
	},
}

// parsePairs turns explicit "x:y" arguments into a point set.
func parsePairs(args []string) (*lagrange.PointSet, error) {
	points := make([]lagrange.Point, 0, len(args))
	for _, arg := range args {
		x, y, found := strings.Cut(arg, ":")
		if !found {
			return nil, fmt.Errorf("point %q is not of the form x:y", arg)
		}
		bigX, ok := new(big.Int).SetString(strings.TrimSpace(x), 10)
		if !ok {
			return nil, fmt.Errorf("x-coordinate %q is not a decimal integer", x)
		}
		bigY, ok := new(big.Int).SetString(strings.TrimSpace(y), 10)
		if !ok {
			return nil, fmt.Errorf("y-coordinate %q is not a decimal integer", y)
		}
		points = append(points, lagrange.Point{X: bigX, Y: bigY})
	}
	return lagrange.NewPointSet(points)
}

// parseValueList turns a comma-separated value list into a point set with
// implicit x-coordinates 1..n.
func parseValueList(list string) (*lagrange.PointSet, error) {
	parts := strings.Split(list, ",")
	values := make([]*big.Int, 0, len(parts))
	for _, part := range parts {
		v, ok := new(big.Int).SetString(strings.TrimSpace(part), 10)
		if !ok {
			return nil, fmt.Errorf("value %q is not a decimal integer", part)
		}
		values = append(values, v)
	}
	return lagrange.FromValues(values)
}

func init() {
	rootCmd.AddCommand(evalCmd)

	evalCmd.Flags().StringVarP(&modulusArg, "modulus", "m", "", "Prime modulus of the field (decimal)")
	evalCmd.Flags().IntVarP(&degreeArg, "degree", "k", 0, "Degree of the target polynomial (default: one less than the number of points)")
	evalCmd.Flags().StringVar(&valuesArg, "values", "", "Comma-separated y values with implied x-coordinates 1,2,3,...")

	evalCmd.MarkFlagRequired("modulus")
}
