// SPDX-License-Identifier: MIT
package cmd

import (
	"fmt"

	"github.com/spf13/cobra"

	"gitlab.com/fisherprime/rdparse/lexer"
	"gitlab.com/fisherprime/rdparse/parser"
)

var bracketsExpr string

var bracketsCmd = &cobra.Command{
	Use:   "brackets [FILE]",
	Short: "Validate a balanced 0/1 sequence",
	Long: `Validates input against S -> 0 E 1, E -> S | ε.

0 & 1 are breakers, so "0011" & "0 0 1 1" are equivalent.
Reads the sequence from --expr, FILE or stdin.`,
	Args: cobra.MaximumNArgs(1),
	RunE: runBrackets,
}

func init() {
	bracketsCmd.Flags().StringVarP(&bracketsExpr, exprFlag, "e", "", "sequence to validate")
	rootCmd.AddCommand(bracketsCmd)
}

func runBrackets(cmd *cobra.Command, args []string) error {
	l, err := newLexer(lexer.WithBreakers(lexer.BinaryBreakers), lexer.WithKeywords())
	if err != nil {
		printError(cmd, "config", err)
		return err
	}

	tokens, err := readInput(cmd.Context(), cmd, l, args)
	if err != nil {
		printError(cmd, "tokenize", err)
		return err
	}

	report := parser.NewBracket(tokens, parser.WithLogger(logger), parser.WithDebug(debug)).Parse()
	fmt.Fprintln(cmd.OutOrStdout(), report)

	return report.Err()
}
