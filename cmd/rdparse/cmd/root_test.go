// SPDX-License-Identifier: MIT
package cmd

import (
	"bytes"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/spf13/pflag"
)

func execute(t *testing.T, stdin string, args ...string) (out string, err error) {
	t.Helper()

	cfgFile, debug, prefixExpr, bracketsExpr = "", false, "", ""

	// Flag state outlives a run; clear it so each case starts from defaults.
	for _, c := range rootCmd.Commands() {
		c.Flags().VisitAll(func(f *pflag.Flag) { f.Changed = false })
	}
	rootCmd.PersistentFlags().VisitAll(func(f *pflag.Flag) { f.Changed = false })

	var stdout, stderr bytes.Buffer
	rootCmd.SetIn(strings.NewReader(stdin))
	rootCmd.SetOut(&stdout)
	rootCmd.SetErr(&stderr)
	rootCmd.SetArgs(args)

	err = rootCmd.Execute()
	out = stdout.String()

	return
}

func TestExecute(t *testing.T) {
	dir := t.TempDir()
	source := filepath.Join(dir, "program.txt")
	if err := os.WriteFile(source, []byte("int x; // decl\n"), 0o600); err != nil {
		t.Fatal(err)
	}
	cfg := filepath.Join(dir, "lexer.toml")
	if err := os.WriteFile(cfg, []byte("keywords = [\"x\", \"let\"]\n"), 0o600); err != nil {
		t.Fatal(err)
	}

	tests := []struct {
		name    string
		stdin   string
		args    []string
		wantOut string
		wantErr bool
	}{
		{
			name:    "tokens",
			args:    []string{"tokens", source},
			wantOut: "Line 1 token int tag True\nLine 1 token x tag ID\nLine 1 token ; tag SEMICOLON\n",
		},
		{
			name: "tokens (several files)",
			args: []string{"tokens", source, source},
			wantOut: "==> " + source + " <==\n" +
				"Line 1 token int tag True\nLine 1 token x tag ID\nLine 1 token ; tag SEMICOLON\n\n" +
				"==> " + source + " <==\n" +
				"Line 1 token int tag True\nLine 1 token x tag ID\nLine 1 token ; tag SEMICOLON\n",
		},
		{
			name:    "tokens (config)",
			args:    []string{"--config", cfg, "tokens", source},
			wantOut: "Line 1 token int tag ID\nLine 1 token x tag ID\nLine 1 token ; tag SEMICOLON\n",
		},
		{
			name:    "tokens (missing file)",
			args:    []string{"tokens", filepath.Join(dir, "absent.txt")},
			wantErr: true,
		},
		{
			name:    "prefix",
			args:    []string{"prefix", "-e", "+ - a a a"},
			wantOut: "accepted\n",
		},
		{
			name:    "prefix (missing operand)",
			args:    []string{"prefix", "-e", "+ a"},
			wantOut: "syntax error: unexpected end of input: missing operand\n",
			wantErr: true,
		},
		{
			name:    "prefix (stdin)",
			stdin:   "+ a a",
			args:    []string{"prefix"},
			wantOut: "accepted\n",
		},
		{
			name:    "prefix (empty expr skips stdin)",
			stdin:   "b",
			args:    []string{"prefix", "-e", ""},
			wantOut: "accepted\n",
		},
		{
			name:    "brackets (empty expr skips stdin)",
			stdin:   "1",
			args:    []string{"brackets", "--expr="},
			wantOut: "accepted\n",
		},
		{
			name:    "brackets",
			args:    []string{"brackets", "-e", "000111"},
			wantOut: "accepted\n",
		},
		{
			name:    "brackets (unbalanced)",
			args:    []string{"brackets", "-e", "0 0 1"},
			wantOut: "Syntax Error\n",
			wantErr: true,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			gotOut, err := execute(t, tt.stdin, tt.args...)
			if (err != nil) != tt.wantErr {
				t.Errorf("Execute() error = %v, wantErr %v", err, tt.wantErr)
				return
			}
			if tt.wantOut != "" && gotOut != tt.wantOut {
				t.Errorf("Execute() = %q, want %q", gotOut, tt.wantOut)
			}
		})
	}
}
