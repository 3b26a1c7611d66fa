// SPDX-License-Identifier: MIT
package cmd

import (
	"fmt"

	"github.com/spf13/cobra"

	"gitlab.com/fisherprime/rdparse/parser"
)

var prefixExpr string

var prefixCmd = &cobra.Command{
	Use:   "prefix [FILE]",
	Short: "Validate a prefix-notation expression",
	Long: `Validates input against S -> + S S | - S S | a.

Reads the expression from --expr, FILE or stdin.`,
	Args: cobra.MaximumNArgs(1),
	RunE: runPrefix,
}

func init() {
	prefixCmd.Flags().StringVarP(&prefixExpr, exprFlag, "e", "", "expression to validate")
	rootCmd.AddCommand(prefixCmd)
}

func runPrefix(cmd *cobra.Command, args []string) error {
	l, err := newLexer()
	if err != nil {
		printError(cmd, "config", err)
		return err
	}

	tokens, err := readInput(cmd.Context(), cmd, l, args)
	if err != nil {
		printError(cmd, "tokenize", err)
		return err
	}

	p := parser.NewPrefix(tokens, parser.WithLogger(logger), parser.WithDebug(debug))
	if err = p.Parse(); err != nil {
		fmt.Fprintln(cmd.OutOrStdout(), err)
		return err
	}
	fmt.Fprintln(cmd.OutOrStdout(), "accepted")

	return nil
}
