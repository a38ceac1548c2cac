package cli

import (
	"bytes"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/leapstack-labs/leapfmt/internal/cli/commands"
)

func run(t *testing.T, stdin string, args ...string) (stdout, stderr string, err error) {
	t.Helper()
	cmd := NewRootCmd()
	var out, errOut bytes.Buffer
	cmd.SetOut(&out)
	cmd.SetErr(&errOut)
	cmd.SetIn(strings.NewReader(stdin))
	cmd.SetArgs(args)
	err = cmd.Execute()
	return out.String(), errOut.String(), err
}

func TestRoot_FormatWithFlags(t *testing.T) {
	t.Chdir(t.TempDir())

	tests := []struct {
		name     string
		args     []string
		input    string
		expected string
	}{
		{
			name:     "defaults",
			args:     []string{"format"},
			input:    "select a, b from t",
			expected: "SELECT\n  a,\n  b\nFROM\n  t\n",
		},
		{
			name:     "lower never",
			args:     []string{"fmt", "--keyword-case", "lower", "--newline-mode", "never"},
			input:    "SELECT a, b FROM t",
			expected: "select a, b\nfrom t\n",
		},
		{
			name:     "tabs",
			args:     []string{"format", "--tabs"},
			input:    "select a from t",
			expected: "SELECT\n\ta\nFROM\n\tt\n",
		},
		{
			name:     "dialect and dense",
			args:     []string{"format", "-d", "postgres", "--newline-mode", "never", "--dense", "||"},
			input:    "select a || b::text from t",
			expected: "SELECT a||b::TEXT\nFROM t\n",
		},
		{
			name:     "params",
			args:     []string{"format", "--newline-mode", "never", "--param", "1=42"},
			input:    "select a from t where id = ?",
			expected: "SELECT a\nFROM t\nWHERE id = 42\n",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			out, _, err := run(t, tt.input, tt.args...)
			require.NoError(t, err)
			assert.Equal(t, tt.expected, out)
		})
	}
}

func TestRoot_ConfigFile(t *testing.T) {
	dir := t.TempDir()
	t.Chdir(dir)
	require.NoError(t, os.WriteFile(filepath.Join(dir, ".leapfmt.yaml"), []byte("keyword_case: lower\nnewline_mode: never\n"), 0o600))

	out, stderr, err := run(t, "SELECT a FROM t", "--verbose", "format")
	require.NoError(t, err)
	assert.Equal(t, "select a\nfrom t\n", out)
	assert.Contains(t, stderr, "using config file")

	out, _, err = run(t, "SELECT a FROM t", "format", "--keyword-case", "upper")
	require.NoError(t, err)
	assert.Equal(t, "SELECT a\nFROM t\n", out, "flags override the file")
}

func TestRoot_Errors(t *testing.T) {
	t.Chdir(t.TempDir())

	tests := []struct {
		name string
		args []string
		want string
	}{
		{name: "unknown dialect", args: []string{"format", "--dialect", "oracle"}, want: "unknown dialect"},
		{name: "bad enum", args: []string{"format", "--newline-mode", "sometimes"}, want: "newline mode"},
		{name: "bad width", args: []string{"format", "--line-width", "0"}, want: "line width"},
		{name: "missing config", args: []string{"format", "--config", "missing.yaml"}, want: "missing.yaml"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, _, err := run(t, "select 1", tt.args...)
			assert.ErrorContains(t, err, tt.want)
		})
	}
}

func TestRoot_CheckFails(t *testing.T) {
	t.Chdir(t.TempDir())
	_, _, err := run(t, "select 1", "format", "--check")
	assert.ErrorIs(t, err, commands.ErrUnformatted)
}

func TestRoot_Subcommands(t *testing.T) {
	cmd := NewRootCmd()
	for _, name := range []string{"format", "dialects", "repl", "watch", "version", "completion"} {
		sub, _, err := cmd.Find([]string{name})
		require.NoError(t, err)
		assert.Equal(t, name, sub.Name())
	}
	for _, flag := range []string{"config", "dialect", "dialect-file", "indent", "tabs", "keyword-case",
		"newline-mode", "line-width", "item-count", "alias-mode", "blank-lines", "dense", "verbose"} {
		assert.NotNil(t, cmd.PersistentFlags().Lookup(flag), "flag %q should exist", flag)
	}
}

func TestCompletionCommand(t *testing.T) {
	for _, shell := range []string{"bash", "zsh", "fish", "powershell"} {
		t.Run(shell, func(t *testing.T) {
			out, _, err := run(t, "", "completion", shell)
			require.NoError(t, err)
			assert.Contains(t, out, "leapfmt")
		})
	}

	_, _, err := run(t, "", "completion", "tcsh")
	assert.Error(t, err)
}
