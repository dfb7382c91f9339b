// SPDX-License-Identifier: MIT
//
// Copyright 2026 Alberto Cavalcante. All rights reserved.
// Use of this source code is governed by a MIT-style license
// that can be found in the LICENSE file.

package main

import (
	"context"
	"fmt"
	"io"
	"os"
	"os/signal"
	"runtime"

	"github.com/fatih/color"
	"github.com/spf13/cobra"
	"github.com/spf13/viper"

	"github.com/albertocavalcante/mdagen/internal/config"
)

// options holds the flags shared by every command.
type options struct {
	configFile string
	dir        string
	verbose    bool
	noColor    bool

	// v collects defaults, environment and bound flags.
	v *viper.Viper
}

func newRootCommand() *cobra.Command {
	opts := &options{v: config.New()}

	root := &cobra.Command{
		Use:   "mdagen",
		Short: "Model-driven application generator",
		Long: color.CyanString(`mdagen - model-driven application generator

mdagen reads platform-independent metadata (entities, enumerations and
services) and runs a profile of generation targets over it. Profiles
extend each other; targets bind a generator to a metadata context.`),
		SilenceUsage:  true,
		SilenceErrors: true,
		PersistentPreRun: func(cmd *cobra.Command, args []string) {
			if opts.noColor {
				color.NoColor = true
			}
		},
	}

	pf := root.PersistentFlags()
	pf.StringVarP(&opts.configFile, "config", "c", "", "configuration file (default: <dir>/mdagen.yaml)")
	pf.StringVarP(&opts.dir, "dir", "C", ".", "project directory")
	pf.BoolVarP(&opts.verbose, "verbose", "v", false, "verbose output")
	pf.BoolVar(&opts.noColor, "no-color", false, "disable colored output")

	root.AddCommand(newGenerateCommand(opts))
	root.AddCommand(newProfilesCommand(opts))
	root.AddCommand(newTargetsCommand(opts))
	root.AddCommand(newVersionCommand())
	return root
}

func newVersionCommand() *cobra.Command {
	return &cobra.Command{
		Use:   "version",
		Short: "Show version information",
		Args:  cobra.NoArgs,
		Run: func(cmd *cobra.Command, args []string) {
			titleColor := color.New(color.FgCyan, color.Bold)
			out := cmd.OutOrStdout()

			titleColor.Fprint(out, "mdagen version: ")
			fmt.Fprintln(out, version)
			titleColor.Fprint(out, "Git commit: ")
			fmt.Fprintln(out, commit)
			titleColor.Fprint(out, "Build date: ")
			fmt.Fprintln(out, date)
			titleColor.Fprint(out, "Go version: ")
			fmt.Fprintln(out, runtime.Version())
		},
	}
}

// execute runs the command line and returns the process exit code.
func execute(args []string, stdout, stderr io.Writer) int {
	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt)
	defer stop()

	root := newRootCommand()
	root.SetArgs(args)
	root.SetOut(stdout)
	root.SetErr(stderr)
	if err := root.ExecuteContext(ctx); err != nil {
		errorColor := color.New(color.FgRed, color.Bold)
		errorColor.Fprintf(stderr, "Error: %v\n", err)
		return 1
	}
	return 0
}
