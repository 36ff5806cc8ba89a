// Package main is the entry point for the sortctl binary.
// It sorts a single package from the command line without starting the HTTP server.
package main

import (
	"fmt"
	"os"

	"sorting/internal/core/domain/services"

	"github.com/spf13/cobra"
)

const bestEffortError = "error"

func main() {
	if err := newRootCmd().Execute(); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}

func newRootCmd() *cobra.Command {
	rootCmd := &cobra.Command{
		Use:           "sortctl",
		Short:         "Package sorting from the command line",
		SilenceUsage:  true,
		SilenceErrors: true,
	}

	rootCmd.AddCommand(newSortCmd())

	return rootCmd
}

// SortOptions holds the parsed flags of the sort command.
type SortOptions struct {
	Width  uint
	Height uint
	Length uint
	Mass   uint
	Strict bool
}

func newSortCmd() *cobra.Command {
	var opts SortOptions

	sortCmd := &cobra.Command{
		Use:   "sort",
		Short: "Sort a package into standard, special or rejected",
		Long: `Sort a package by its dimensions (centimeters) and mass (kilograms).

A package is bulky when width + height + length is 150 or more and heavy when
its mass is 20 or more. Bulky and heavy packages are rejected, bulky or heavy
ones are special, everything else is standard.

Example:
  sortctl sort --width 148 --height 1 --length 1 --mass 20`,
		Args: cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			return runSort(cmd, opts)
		},
	}

	sortCmd.Flags().UintVar(&opts.Width, "width", 0, "Width in centimeters")
	sortCmd.Flags().UintVar(&opts.Height, "height", 0, "Height in centimeters")
	sortCmd.Flags().UintVar(&opts.Length, "length", 0, "Length in centimeters")
	sortCmd.Flags().UintVar(&opts.Mass, "mass", 0, "Mass in kilograms")
	sortCmd.Flags().BoolVar(&opts.Strict, "strict", true, `Fail on invalid input; when false print "error" instead`)

	for _, name := range []string{"width", "height", "length", "mass"} {
		_ = sortCmd.MarkFlagRequired(name)
	}

	return sortCmd
}

func runSort(cmd *cobra.Command, opts SortOptions) error {
	result, err := services.NewPackageSorter().Sort(opts.Width, opts.Height, opts.Length, opts.Mass)
	if err != nil {
		if !opts.Strict {
			fmt.Fprintln(cmd.OutOrStdout(), bestEffortError)
			return nil
		}
		return err
	}

	fmt.Fprintln(cmd.OutOrStdout(), result.String())
	return nil
}
