// SPDX-License-Identifier: MIT
package cmd

import (
	"fmt"

	"github.com/spf13/cobra"

	"gitlab.com/fisherprime/rdparse/lexer"
)

var tokensCmd = &cobra.Command{
	Use:   "tokens FILE...",
	Short: "Print the tagged tokens of each file",
	Long: `Prints one line per token: "Line {n} token {text} tag {tag}".

Several files are tokenized concurrently & printed in argument order.`,
	Args: cobra.MinimumNArgs(1),
	RunE: runTokens,
}

func init() {
	rootCmd.AddCommand(tokensCmd)
}

func runTokens(cmd *cobra.Command, args []string) error {
	l, err := newLexer()
	if err != nil {
		printError(cmd, "config", err)
		return err
	}

	results, err := l.TokenizeFiles(cmd.Context(), args...)
	if err != nil {
		printError(cmd, "tokenize", err)
		return err
	}

	out := cmd.OutOrStdout()
	for index, tokens := range results {
		if len(args) > 1 {
			if index > 0 {
				fmt.Fprintln(out)
			}
			fmt.Fprintf(out, "==> %s <==\n", args[index])
		}
		printTokens(cmd, tokens)
	}

	return nil
}

func printTokens(cmd *cobra.Command, tokens []lexer.Token) {
	for _, token := range tokens {
		fmt.Fprintln(cmd.OutOrStdout(), token)
	}
}
