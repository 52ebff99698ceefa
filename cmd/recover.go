package cmd

import (
	"fmt"
	"math/big"
	"os"
	"path/filepath"
	"sort"
	"strings"

	"github.com/Beastly713/lagrange/pkg/lagrange"
	"github.com/Beastly713/lagrange/pkg/sharefile"
	"github.com/spf13/cobra"
)

var (
	recoverDestDir string
	overwrite      bool
)

// recoverCmd reconstructs secrets from share files on disk.
var recoverCmd = &cobra.Command{
	Use:   "recover [directory]",
	Short: "Reconstruct secrets from a set of share files",
	Long: `Recover looks for .share files in the specified directory (or the
current directory if not provided), groups them by the secret they belong
to, and interpolates each group's polynomial at the origin.

You need at least T (threshold) shares of a secret to succeed.`,
	Args: cobra.MaximumNArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		// 1. Determine the source directory
		sourceDir := "."
		if len(args) > 0 {
			sourceDir = args[0]
		}

		files, err := os.ReadDir(sourceDir)
		if err != nil {
			return fmt.Errorf("failed to read directory: %w", err)
		}

		fmt.Printf("Scanning for shares in %s...\n", sourceDir)

		// 2. Parse every share file and group by issuance
		groups := make(map[string][]*sharefile.Reader)
		for _, f := range files {
			if f.IsDir() || !strings.HasSuffix(strings.ToLower(f.Name()), ".share") {
				continue
			}

			path := filepath.Join(sourceDir, f.Name())
			file, err := os.Open(path)
			if err != nil {
				fmt.Printf("Skipping unreadable file %s: %v\n", f.Name(), err)
				continue
			}

			share, err := sharefile.NewReader(file)
			file.Close()
			if err != nil {
				fmt.Printf("Skipping invalid share %s: %v\n", f.Name(), err)
				continue
			}

			id := share.Header.GroupID()
			groups[id] = append(groups[id], share)
		}

		if len(groups) == 0 {
			return fmt.Errorf("no valid shares found in %s", sourceDir)
		}

		// 3. Reconstruct each group independently
		for _, group := range groups {
			ref := group[0].Header
			fmt.Printf("\nFound %d share(s) for: %s (threshold %d)\n", len(group), ref.Label, ref.Threshold)

			if len(group) < ref.Threshold {
				fmt.Printf("Not enough shares to recover %s. Need %d, found %d.\n", ref.Label, ref.Threshold, len(group))
				continue
			}

			secret, err := recoverGroup(group)
			if err != nil {
				fmt.Printf("Failed to recover %s: %v\n", ref.Label, err)
				continue
			}

			// 4. Emit the secret: to a file when a destination was given,
			// otherwise to stdout.
			if recoverDestDir == "" {
				fmt.Printf("Recovered %s: ", ref.Label)
				fmt.Fprintln(cmd.OutOrStdout(), secret.Text(10))
				continue
			}

			outPath := filepath.Join(recoverDestDir, ref.Label+".secret")
			if _, err := os.Stat(outPath); err == nil && !overwrite {
				fmt.Printf("File %s already exists. Use --overwrite to replace it.\n", outPath)
				continue
			}
			if err := os.WriteFile(outPath, []byte(secret.Text(10)+"\n"), 0600); err != nil {
				return fmt.Errorf("failed to write output file: %w", err)
			}
			fmt.Printf("Successfully recovered: %s\n", outPath)
		}

		return nil
	},
}

// recoverGroup interpolates one issuance's shares at the origin. The
// shares are ordered by index first so that any surplus beyond the
// threshold is dropped deterministically.
func recoverGroup(group []*sharefile.Reader) (*big.Int, error) {
	ref := group[0].Header

	sort.Slice(group, func(i, j int) bool {
		return group[i].Header.Index < group[j].Header.Index
	})

	points := make([]lagrange.Point, 0, len(group))
	for _, share := range group {
		x, err := share.Header.BigX()
		if err != nil {
			return nil, err
		}
		points = append(points, lagrange.Point{X: x, Y: share.Y})
	}

	set, err := lagrange.NewPointSet(points)
	if err != nil {
		return nil, err
	}
	modulus, err := ref.BigModulus()
	if err != nil {
		return nil, err
	}

	// The secret polynomial has degree threshold-1.
	return lagrange.Reconstruct(set, modulus, ref.Threshold-1)
}

func init() {
	rootCmd.AddCommand(recoverCmd)

	recoverCmd.Flags().StringVarP(&recoverDestDir, "destination", "d", "", "Directory to write recovered secrets (default: print to stdout)")
	recoverCmd.Flags().BoolVar(&overwrite, "overwrite", false, "Overwrite existing output files if present")
}
