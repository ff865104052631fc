package main

import (
	"errors"
	"fmt"

	"github.com/spf13/cobra"

	"github.com/Alex-gitss/CS2612-Final/internal/syntax"
)

var errSizeExceeded = errors.New("initializer exceeds declared size")

func (a *app) checkCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "check [file...]",
		Short: "Check declared sizes against initializers",
		Long: `Report every sized array or string declaration together with its
capacity and the length of its initializer. The command fails if any
initializer does not fit.`,
		RunE: func(cmd *cobra.Command, args []string) error {
			if len(args) == 0 {
				args = []string{"-"}
			}
			bad := 0
			for _, path := range args {
				n, err := a.load(cmd.Context(), path)
				if err != nil {
					return err
				}
				checks := syntax.CheckSizes(n)
				if len(checks) == 0 {
					fmt.Fprintf(a.stdout, "%s: no sized declarations\n", path)
					continue
				}
				for _, c := range checks {
					fmt.Fprintf(a.stdout, "%s: %s\n", path, describeCheck(c))
					if c.Exceeds() {
						bad++
					}
				}
			}
			if bad > 0 {
				return fmt.Errorf("%d declaration(s): %w", bad, errSizeExceeded)
			}
			return nil
		},
	}
}

func describeCheck(c syntax.SizeCheck) string {
	capacity := fmt.Sprint(c.Capacity)
	if c.Inferred {
		capacity += " (inferred)"
	}
	return fmt.Sprintf("%s %s: capacity %s, initializer %d: %s",
		c.Kind, c.Name, capacity, c.Required, c.Message())
}
