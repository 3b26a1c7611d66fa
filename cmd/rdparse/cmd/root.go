// SPDX-License-Identifier: MIT
package cmd

import (
	"context"
	"fmt"
	"io"
	"os"
	"strings"

	"github.com/sirupsen/logrus"
	"github.com/spf13/cobra"

	"gitlab.com/fisherprime/rdparse/lexer"
)

const exprFlag = "expr"

var (
	cfgFile string
	debug   bool

	logger = logrus.New()
)

var rootCmd = &cobra.Command{
	Use:   "rdparse",
	Short: "Tokenizer & recursive-descent parsers",
	Long: `rdparse tokenizes source files & validates input against two fixed grammars.

Grammars:
  prefix    S -> + S S | - S S | a
  brackets  S -> 0 E 1,  E -> S | ε`,
	SilenceUsage:  true,
	SilenceErrors: true,
	PersistentPreRun: func(cmd *cobra.Command, args []string) {
		logger.SetOutput(cmd.ErrOrStderr())
		if debug {
			logger.SetLevel(logrus.DebugLevel)
		}
	},
}

// Execute runs the root command.
func Execute() error {
	return rootCmd.Execute()
}

func init() {
	rootCmd.PersistentFlags().StringVar(&cfgFile, "config", "", "lexer config file (.toml, .yaml)")
	rootCmd.PersistentFlags().BoolVarP(&debug, "debug", "d", false, "debug output")
}

// newLexer builds a Lexer from the config file, if any, followed by `overrides`.
func newLexer(overrides ...lexer.Option) (*lexer.Lexer, error) {
	cfg := lexer.DefaultConfig()
	if cfgFile != "" {
		var err error
		if cfg, err = lexer.LoadConfig(cfgFile); err != nil {
			return nil, err
		}
	}

	opts := append(cfg.Options(), lexer.WithLogger(logger))
	if debug {
		opts = append(opts, lexer.WithDebug(true))
	}

	return lexer.New(append(opts, overrides...)...), nil
}

// readInput tokenizes the --expr flag when given (even empty), otherwise the file named by args[0]
// or stdin.
func readInput(ctx context.Context, cmd *cobra.Command, l *lexer.Lexer, args []string) ([]lexer.Token, error) {
	var source io.Reader = cmd.InOrStdin()

	switch {
	case cmd.Flags().Changed(exprFlag):
		expr, err := cmd.Flags().GetString(exprFlag)
		if err != nil {
			return nil, err
		}
		source = strings.NewReader(expr)
	case len(args) > 0:
		f, err := os.Open(args[0])
		if err != nil {
			return nil, err
		}
		defer f.Close()
		source = f
	}

	return l.Tokenize(ctx, source)
}

func printError(cmd *cobra.Command, msg string, err error) {
	fmt.Fprintf(cmd.ErrOrStderr(), "error: %s: %v\n", msg, err)
}
