package main

import (
	"fmt"
	"log/slog"

	"github.com/muesli/termenv"
	"github.com/spf13/cobra"

	"github.com/Alex-gitss/CS2612-Final/internal/config"
	"github.com/Alex-gitss/CS2612-Final/internal/syntax"
)

func (a *app) renderCmd() *cobra.Command {
	var format, color string

	cmd := &cobra.Command{
		Use:   "render [file...]",
		Short: "Print syntax trees",
		Long: `Print each tree as indented text (default), a box-drawing tree or JSON.
With no file, or when file is -, the tree is read from standard input.`,
		RunE: func(cmd *cobra.Command, args []string) error {
			r := a.cfg.Render
			if cmd.Flags().Changed("format") {
				r.Format = format
			}
			if cmd.Flags().Changed("color") {
				r.Color = color
			}
			if err := (&config.Config{Render: r, Log: a.cfg.Log}).Validate(); err != nil {
				return err
			}

			if len(args) == 0 {
				args = []string{"-"}
			}
			p := &syntax.Printer{Color: a.colorEnabled(r.Color)}
			for _, path := range args {
				n, err := a.load(cmd.Context(), path)
				if err != nil {
					return err
				}
				if err := a.render(p, r.Format, n); err != nil {
					return fmt.Errorf("%s: %w", path, err)
				}
				for _, c := range syntax.CheckSizes(n) {
					if c.Exceeds() {
						a.log.InfoContext(cmd.Context(), "initializer exceeds declared size",
							slog.String("file", path),
							slog.String("name", c.Name),
							slog.Any("capacity", c.Capacity),
							slog.Any("required", c.Required))
					}
				}
			}
			return nil
		},
	}

	cmd.Flags().StringVarP(&format, "format", "f", config.FormatText, "output format: text, tree or json")
	cmd.Flags().StringVar(&color, "color", config.ColorAuto, "color text output: auto, always or never")
	return cmd
}

func (a *app) render(p *syntax.Printer, format string, n syntax.Node) error {
	switch format {
	case config.FormatJSON:
		return syntax.FprintJSON(a.stdout, n)
	case config.FormatTree:
		return syntax.FprintTree(a.stdout, n)
	default:
		return p.Fprint(a.stdout, n)
	}
}

// colorEnabled resolves a color mode. In auto mode color is used when
// stdout is a terminal and the environment does not disable it.
func (a *app) colorEnabled(mode string) bool {
	switch mode {
	case config.ColorAlways:
		return true
	case config.ColorNever:
		return false
	}
	return termenv.NewOutput(a.stdout).EnvColorProfile() != termenv.Ascii
}
