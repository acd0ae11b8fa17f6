// Copyright (c) 2024, Cogent Core. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package main

import (
	"bufio"
	"fmt"
	"io"
	"log/slog"
	"strings"

	"cogentcore.org/csscolor/base/errors"
	"cogentcore.org/csscolor/base/logx"
	"cogentcore.org/csscolor/colors"
	"cogentcore.org/csscolor/config"
	"cogentcore.org/csscolor/palette"
	"github.com/spf13/cobra"
)

// app holds the flag values and the resolved config
// shared by all of the commands.
type app struct {
	configFile  string
	verbose     bool
	veryVerbose bool
	quiet       bool
	swatch      bool
	paletteFile string
	format      string
	watch       bool

	cfg *config.Config
}

func newRootCmd() *cobra.Command {
	a := &app{}
	root := &cobra.Command{
		Use:               "csscolor",
		Short:             "Parse CSS color strings",
		SilenceUsage:      true,
		SilenceErrors:     true,
		PersistentPreRunE: a.setup,
	}
	pf := root.PersistentFlags()
	pf.StringVar(&a.configFile, "config", "", "the config file (default "+config.DefaultFile+" if it exists)")
	pf.BoolVarP(&a.verbose, "verbose", "v", false, "print info level log messages")
	pf.BoolVar(&a.veryVerbose, "vv", false, "print debug level log messages")
	pf.BoolVarP(&a.quiet, "quiet", "q", false, "only print error level log messages")
	pf.BoolVar(&a.swatch, "swatch", false, "render a color swatch next to each color")
	root.AddCommand(a.parseCmd(), a.namesCmd(), a.paletteCmd())
	return root
}

// setup loads the config file, applies the flags that were set
// on top of it and configures logging.
func (a *app) setup(cmd *cobra.Command, args []string) error {
	cfg, err := config.Load(a.configFile)
	if err != nil {
		return err
	}
	flags := cmd.Flags()
	if flags.Changed("verbose") {
		cfg.Verbose = a.verbose
	}
	if flags.Changed("vv") {
		cfg.VeryVerbose = a.veryVerbose
	}
	if flags.Changed("quiet") {
		cfg.Quiet = a.quiet
	}
	if flags.Changed("swatch") {
		cfg.Swatch = a.swatch
	}
	if flags.Changed("palette") {
		cfg.Palette = a.paletteFile
	}
	if flags.Changed("format") {
		cfg.Format = a.format
	}
	if err := cfg.Validate(); err != nil {
		return err
	}
	a.cfg = cfg

	logx.UserLevel = logx.LevelFromFlags(cfg.VeryVerbose, cfg.Verbose, cfg.Quiet)
	logx.SetDefaultLogger(cmd.ErrOrStderr())
	slog.Debug("configured", "command", cmd.Name(), "palette", cfg.Palette, "format", cfg.Format)
	return nil
}

func (a *app) parseCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "parse [COLOR...]",
		Short: "Parse CSS colors and print their RGBA values",
		Long: `Parse each given CSS color, or each non-empty line of standard input
if none are given, and print its red, green, blue and alpha values.
Names from the palette file, if any, are resolved before CSS colors.`,
		RunE: a.runParse,
	}
	cmd.Flags().StringVarP(&a.paletteFile, "palette", "p", "", "the palette file whose names are resolved first")
	cmd.Flags().StringVarP(&a.format, "format", "f", config.FormatText, "the output format (text or json)")
	return cmd
}

func (a *app) runParse(cmd *cobra.Command, args []string) error {
	var pal *palette.Palette
	if a.cfg.Palette != "" {
		p, err := palette.Load(a.cfg.Palette)
		if err != nil {
			return err
		}
		slog.Info("loaded palette", "path", a.cfg.Palette, "entries", p.Len())
		pal = p
	}
	inputs := args
	if len(inputs) == 0 {
		lines, err := readLines(cmd.InOrStdin())
		if err != nil {
			return err
		}
		inputs = lines
	}

	pr := newPrinter(cmd.OutOrStdout(), a.cfg)
	failed := 0
	for _, in := range inputs {
		c, err := pal.Resolve(in)
		if err != nil {
			failed++
			slog.Error("skipping color", "err", err)
			continue
		}
		if err := pr.color(in, c); err != nil {
			return err
		}
	}
	if failed > 0 {
		return fmt.Errorf("%d of %d colors could not be parsed", failed, len(inputs))
	}
	return nil
}

// readLines returns the trimmed non-empty lines of r.
func readLines(r io.Reader) ([]string, error) {
	var lines []string
	sc := bufio.NewScanner(r)
	for sc.Scan() {
		if line := strings.TrimSpace(sc.Text()); line != "" {
			lines = append(lines, line)
		}
	}
	if err := sc.Err(); err != nil {
		return nil, fmt.Errorf("reading colors: %w", err)
	}
	return lines, nil
}

func (a *app) namesCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "names",
		Short: "List the named CSS colors",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			pr := newPrinter(cmd.OutOrStdout(), a.cfg)
			for _, name := range colors.Names {
				if err := pr.named(name, colors.Map[name]); err != nil {
					return err
				}
			}
			return nil
		},
	}
}

func (a *app) paletteCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "palette FILE",
		Short: "Print the colors of a palette file",
		Long: `Load the given TOML or YAML palette file and print each entry with
its definition and color. With --watch the palette is printed again
every time the file changes, until interrupted.`,
		Args: cobra.ExactArgs(1),
		RunE: a.runPalette,
	}
	cmd.Flags().BoolVarP(&a.watch, "watch", "w", false, "print the palette again every time the file changes")
	return cmd
}

func (a *app) runPalette(cmd *cobra.Command, args []string) error {
	path := args[0]
	pr := newPrinter(cmd.OutOrStdout(), a.cfg)
	p, err := palette.Load(path)
	if err != nil {
		return err
	}
	if err := pr.palette(p); err != nil {
		return err
	}
	if !a.watch {
		return nil
	}
	return palette.Watch(cmd.Context(), path, func(p *palette.Palette, err error) {
		if err != nil {
			return
		}
		if _, err := fmt.Fprintln(cmd.OutOrStdout()); errors.Log(err) != nil {
			return
		}
		errors.Log(pr.palette(p))
	})
}
