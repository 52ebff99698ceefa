package cmd

import (
	"os"

	"github.com/spf13/cobra"
)

var rootCmd = &cobra.Command{
	Use:   "lagrange",
	Short: "Interpolate polynomials over prime fields",
	Long: `Lagrange: evaluate, at the origin of a prime field, the unique
polynomial of bounded degree through a set of points. This is the
reconstruction step of threshold secret sharing.`,
}

func Execute() {
	if err := rootCmd.Execute(); err != nil {
		os.Exit(1)
	}
}

func GetRootCmd() *cobra.Command {
	return rootCmd
}
