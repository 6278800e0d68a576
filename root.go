package main

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"
)

const appVersion = "1.0.0"

type cliOptions struct {
	mode      string
	editor    string
	remote    string
	printOnly bool
}

func newRootCmd() *cobra.Command {
	opts := &cliOptions{}

	cmd := &cobra.Command{
		Use:     "diff_pick",
		Short:   "Pick changed files and open them in your editor",
		Long:    "diff_pick lists the files changed relative to a configurable git reference,\nlets you filter and pick them with a live diff preview, and opens the\nselection in your editor with paths rewritten for the directory you ran it from.",
		Version: appVersion,
		Args:    cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			return run(opts)
		},
		SilenceUsage:  true,
		SilenceErrors: true,
	}

	cmd.Flags().StringVarP(&opts.mode, "mode", "m", "", "diff mode: working-tree, branch, remote, upstream, revlist, revlist-remote")
	cmd.Flags().StringVarP(&opts.editor, "editor", "e", "", "editor command to open picked files with")
	cmd.Flags().StringVarP(&opts.remote, "remote", "r", "", "remote to compare against")
	cmd.Flags().BoolVarP(&opts.printOnly, "print", "p", false, "print the changed files instead of opening the picker")

	return cmd
}

// Execute runs the root command.
func Execute() {
	if err := newRootCmd().Execute(); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}
