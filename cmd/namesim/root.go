package main

import (
	"github.com/spf13/cobra"
)

func newRootCommand() *cobra.Command {
	var configFlag string

	ctx := newCommandContext(&configFlag)
	flags := newRankFlags()

	rootCmd := &cobra.Command{
		Use:   "namesim [root|file|-]...",
		Short: "Rank similarly named files by cosine similarity",
		Long: `namesim walks the given directories (or takes explicit files, or base
names from stdin via "-"), tokenizes each file name, and reports pairs of
similarly named files ranked by cosine similarity.

Examples:
  namesim ~/Downloads                 # rank pairs under one directory
  namesim -t 0.8 dirA dirB            # two roots, higher threshold
  namesim -l 2 -f '\.mkv$' /media     # bigram shingles, mkv files only
  ls | namesim -t 0 -                 # rank names read from stdin`,
		Args:          cobra.ArbitraryArgs,
		SilenceUsage:  true,
		SilenceErrors: true,
		RunE: func(cmd *cobra.Command, args []string) error {
			return runRank(cmd, args, ctx, flags)
		},
	}

	rootCmd.PersistentFlags().StringVarP(&configFlag, "config", "c", "", "Configuration file path")
	flags.register(rootCmd)

	rootCmd.AddCommand(newConfigCommand(ctx))
	rootCmd.AddCommand(newVersionCommand())

	return rootCmd
}
