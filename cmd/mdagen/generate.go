// SPDX-License-Identifier: MIT
//
// Copyright 2026 Alberto Cavalcante. All rights reserved.
// Use of this source code is governed by a MIT-style license
// that can be found in the LICENSE file.

package main

import (
	"errors"
	"fmt"
	"io"
	"path/filepath"

	"github.com/fatih/color"
	"github.com/spf13/cobra"
	"go.uber.org/zap"

	"github.com/albertocavalcante/mdagen/generator"
)

func newGenerateCommand(opts *options) *cobra.Command {
	var dryRun bool

	cmd := &cobra.Command{
		Use:   "generate",
		Short: "Run the selected profile over the project metadata",
		Long: `Run every target of a profile over the project metadata and write the
generated files below the project directory.

The profile comes from --profile, MDAGEN_PROFILE or the 'profile' key of
mdagen.yaml.`,
		Example: `  # Generate with the profile configured in mdagen.yaml
  mdagen generate

  # Generate the Go model only, four targets at a time
  mdagen generate --profile goModel --parallelism 4

  # List the files that would be written
  mdagen generate --dry-run`,
		Args: cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			return runGenerate(cmd, opts, dryRun)
		},
	}

	cmd.Flags().StringP("profile", "p", "", "generation profile")
	cmd.Flags().Int("parallelism", 1, "number of targets generated at once")
	cmd.Flags().BoolVar(&dryRun, "dry-run", false, "list the files instead of writing them")
	_ = opts.v.BindPFlag("profile", cmd.Flags().Lookup("profile"))
	_ = opts.v.BindPFlag("parallelism", cmd.Flags().Lookup("parallelism"))
	return cmd
}

func runGenerate(cmd *cobra.Command, opts *options, dryRun bool) error {
	ctx := cmd.Context()
	out := cmd.OutOrStdout()

	s, err := newSession(opts)
	if err != nil {
		return err
	}
	defer func() { _ = s.logger.Sync() }()

	cfg := s.cfg
	if cfg.Profile == "" {
		return errors.New("no profile selected; set 'profile' in mdagen.yaml or pass --profile")
	}

	md, err := s.metadata(ctx)
	if err != nil {
		return fmt.Errorf("loading metadata: %w", err)
	}
	engine, err := s.engine()
	if err != nil {
		return err
	}
	langs, err := s.languages()
	if err != nil {
		return err
	}

	base, _ := md.Namespaces.BasePackage(md.Repository.ApplicationName())
	gc := generator.Context{
		BasePackage:        base,
		GeneratedSourceDir: filepath.ToSlash(cfg.Paths.GeneratedSource),
		MainSourceDir:      filepath.ToSlash(cfg.Paths.MainSource),
		Basedir:            cfg.Paths.Basedir,
		Engine:             engine,
		Project: generator.ProjectInfo{
			Name:       md.Repository.ApplicationName(),
			GroupID:    cfg.Application.Group,
			ArtifactID: cfg.Application.Artifact,
			Version:    cfg.Application.Version,
		},
		Metadata:   md.Repository,
		Namespaces: md.Namespaces,
		Languages:  langs,
		Options:    cfg.Options,
	}

	orch := generator.NewOrchestrator(s.catalog, gc,
		generator.WithRegistry(s.registry),
		generator.WithLogger(s.logger),
		generator.WithParallelism(cfg.Parallelism),
	)
	res, err := orch.Generate(ctx, cfg.Profile)
	if err != nil {
		var unknown *generator.UnknownProfileError
		if errors.As(err, &unknown) {
			printProfileHint(cmd.ErrOrStderr(), unknown)
		}
		return err
	}

	files := res.Files()
	if dryRun {
		for _, f := range files {
			fmt.Fprintln(out, f.Path)
		}
		return nil
	}

	var written int
	for _, t := range res.Targets {
		paths, err := t.Output.Write(cfg.Paths.Basedir)
		written += len(paths)
		if err != nil {
			return fmt.Errorf("target %s: %w", t.Target.Name, err)
		}
	}
	s.logger.Debug("files written",
		zap.Int("written", written),
		zap.Int("skipped", len(files)-written),
	)

	successColor := color.New(color.FgGreen, color.Bold)
	successColor.Fprintf(out, "Generated profile %s: ", res.Profile)
	fmt.Fprintf(out, "%d targets, %d files written\n", len(res.Targets), written)
	return nil
}

// printProfileHint points at the offending configuration entry.
func printProfileHint(w io.Writer, e *generator.UnknownProfileError) {
	warn := color.New(color.FgYellow, color.Bold)
	fmt.Fprintln(w, "mdagen.yaml:")
	fmt.Fprintf(w, "  profile: %s   ", e.Name)
	warn.Fprintln(w, "<-----------  INVALID PROFILE!")
	fmt.Fprintf(w, "Profile '%s' is invalid. Please choose one of the following valid profiles:\n", e.Name)
	for _, name := range e.Known {
		fmt.Fprintf(w, "\t- %s\n", name)
	}
}
