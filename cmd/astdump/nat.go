package main

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/Alex-gitss/CS2612-Final/internal/syntax"
)

func (a *app) natCmd() *cobra.Command {
	var length int

	cmd := &cobra.Command{
		Use:   "nat digits...",
		Short: "Convert natural number literals",
		Long: fmt.Sprintf(`Convert decimal digit strings the way the lexer does and print their
values. Literals greater than %d are rejected.`, uint64(syntax.MaxNat)),
		Args: cobra.MinimumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			for _, digits := range args {
				if length >= 0 {
					digits = syntax.NewStr(digits, length)
				}
				v, err := syntax.ParseNat(digits)
				if err != nil {
					return err
				}
				fmt.Fprintln(a.stdout, v)
			}
			return nil
		},
	}

	cmd.Flags().IntVarP(&length, "len", "n", -1, "use only the first n bytes of each literal")
	return cmd
}
