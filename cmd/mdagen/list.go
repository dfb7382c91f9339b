// SPDX-License-Identifier: MIT
//
// Copyright 2026 Alberto Cavalcante. All rights reserved.
// Use of this source code is governed by a MIT-style license
// that can be found in the LICENSE file.

package main

import (
	"fmt"
	"slices"
	"strings"
	"text/tabwriter"

	"github.com/fatih/color"
	"github.com/spf13/cobra"
)

func newProfilesCommand(opts *options) *cobra.Command {
	return &cobra.Command{
		Use:   "profiles",
		Short: "List the available profiles and their targets",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			s, err := newSession(opts)
			if err != nil {
				return err
			}
			expanded, err := s.catalog.Expand()
			if err != nil {
				return err
			}

			names := s.catalog.ProfileNames()
			slices.Sort(names)
			title := color.New(color.FgCyan, color.Bold)
			out := cmd.OutOrStdout()
			for _, name := range names {
				p, _ := s.catalog.Profile(name)
				title.Fprint(out, name)
				if len(p.Extends) > 0 {
					fmt.Fprintf(out, " (extends %s)", strings.Join(p.Extends, ", "))
				}
				fmt.Fprintln(out)
				for _, t := range expanded[name].Targets {
					fmt.Fprintf(out, "  - %s\n", t.Name)
				}
			}
			return nil
		},
	}
}

func newTargetsCommand(opts *options) *cobra.Command {
	return &cobra.Command{
		Use:   "targets",
		Short: "List the available targets",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			s, err := newSession(opts)
			if err != nil {
				return err
			}

			names := s.catalog.TargetNames()
			slices.Sort(names)
			tw := tabwriter.NewWriter(cmd.OutOrStdout(), 0, 4, 2, ' ', 0)
			fmt.Fprintln(tw, "TARGET\tGENERATOR\tMETADATA")
			for _, name := range names {
				t, _ := s.catalog.Target(name)
				fmt.Fprintf(tw, "%s\t%s\t%s\n", t.Name, t.Generator, t.MetadataContext)
			}
			return tw.Flush()
		},
	}
}
