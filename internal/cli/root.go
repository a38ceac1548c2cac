// Package cli provides the command-line interface for leapfmt.
package cli

import (
	"context"
	"fmt"
	"log/slog"
	"os"

	"github.com/spf13/cobra"

	"github.com/leapstack-labs/leapfmt/internal/cli/commands"
	"github.com/leapstack-labs/leapfmt/internal/cli/config"
	"github.com/leapstack-labs/leapfmt/pkg/dialects"
)

// Version information (set at build time).
var (
	Version   = "0.1.0"
	BuildDate = "unknown"
	GitCommit = "unknown"
)

// NewRootCmd creates and returns the root command.
func NewRootCmd() *cobra.Command {
	var cfgFile string

	rootCmd := &cobra.Command{
		Use:   "leapfmt",
		Short: "leapfmt - multi-dialect SQL formatter",
		Long: `leapfmt formats SQL for ANSI, PostgreSQL, Redshift, Spark, Databricks,
Snowflake and DuckDB, or for a custom dialect described in a YAML file.

It works on tokens rather than a syntax tree, so incomplete or invalid SQL is
formatted too, with every token kept.`,
		Version: Version,
		PersistentPreRunE: func(cmd *cobra.Command, _ []string) error {
			// Skip config loading for help and completion commands
			if cmd.Name() == "help" || cmd.Name() == "completion" || cmd.Name() == "__complete" {
				return nil
			}

			cfg, err := config.Load(cfgFile, cmd.Flags())
			if err != nil {
				return err
			}

			level := slog.LevelWarn
			if cfg.Verbose {
				level = slog.LevelDebug
			}
			logger := slog.New(slog.NewTextHandler(cmd.ErrOrStderr(), &slog.HandlerOptions{Level: level}))
			if cfg.File != "" {
				logger.Debug("using config file", "path", cfg.File)
			}

			ctx := config.WithConfig(cmd.Context(), cfg)
			ctx = context.WithValue(ctx, config.LoggerKey(), logger)
			cmd.SetContext(ctx)
			return nil
		},
		SilenceUsage:  true,
		SilenceErrors: true,
	}

	// Set version template
	rootCmd.SetVersionTemplate(`{{.Name}} {{.Version}}
Multi-dialect SQL formatter
`)

	// Global persistent flags
	flags := rootCmd.PersistentFlags()
	flags.StringVar(&cfgFile, "config", "", "config file (default: nearest .leapfmt.yaml)")
	flags.StringP("dialect", "d", "", "SQL dialect (see 'leapfmt dialects')")
	flags.String("dialect-file", "", "YAML file describing a custom dialect")
	flags.Int("indent", config.DefaultIndent, "Spaces per indentation level")
	flags.Bool("tabs", false, "Indent with tabs")
	flags.String("keyword-case", "", "Keyword casing (upper|lower|preserve)")
	flags.String("newline-mode", "", "When lists break (always|never|lineWidth|itemCount|hybrid)")
	flags.Int("line-width", config.DefaultLineWidth, "Line width for lineWidth and hybrid modes")
	flags.Int("item-count", config.DefaultItemCount, "Item threshold for itemCount and hybrid modes")
	flags.String("alias-mode", "", "Explicit AS for aliases (select|always|never)")
	flags.Int("blank-lines", config.DefaultBlankLines, "Blank lines between statements")
	flags.StringSlice("dense", nil, "Operators printed without surrounding spaces")
	flags.BoolP("verbose", "v", false, "Verbose output")

	registerEnumCompletion(rootCmd, "keyword-case", "upper", "lower", "preserve")
	registerEnumCompletion(rootCmd, "newline-mode", "always", "never", "lineWidth", "itemCount", "hybrid")
	registerEnumCompletion(rootCmd, "alias-mode", "select", "always", "never")
	registerEnumCompletion(rootCmd, "dialect", dialects.Names()...)

	// Add subcommands
	rootCmd.AddCommand(commands.NewFormatCommand())
	rootCmd.AddCommand(commands.NewDialectsCommand())
	rootCmd.AddCommand(commands.NewREPLCommand())
	rootCmd.AddCommand(commands.NewWatchCommand())
	rootCmd.AddCommand(commands.NewVersionCommand(Version))
	rootCmd.AddCommand(NewCompletionCommand())

	return rootCmd
}

func registerEnumCompletion(cmd *cobra.Command, flag string, values ...string) {
	_ = cmd.RegisterFlagCompletionFunc(flag, func(_ *cobra.Command, _ []string, _ string) ([]string, cobra.ShellCompDirective) {
		return values, cobra.ShellCompDirectiveNoFileComp
	})
}

// Execute runs the root command.
func Execute() error {
	rootCmd := NewRootCmd()
	if err := rootCmd.Execute(); err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		return err
	}
	return nil
}

// NewCompletionCommand creates the completion command.
func NewCompletionCommand() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "completion [bash|zsh|fish|powershell]",
		Short: "Generate shell completion scripts",
		Long: `Generate shell completion scripts for leapfmt.

To load completions:

Bash:
  $ source <(leapfmt completion bash)

  # To load completions for each session, execute once:
  # Linux:
  $ leapfmt completion bash > /etc/bash_completion.d/leapfmt
  # macOS:
  $ leapfmt completion bash > $(brew --prefix)/etc/bash_completion.d/leapfmt

Zsh:
  # If shell completion is not already enabled in your environment,
  # you will need to enable it. Execute the following once:
  $ echo "autoload -U compinit; compinit" >> ~/.zshrc

  # To load completions for each session, execute once:
  $ leapfmt completion zsh > "${fpath[1]}/_leapfmt"

  # You will need to start a new shell for this setup to take effect.

Fish:
  $ leapfmt completion fish | source

  # To load completions for each session, execute once:
  $ leapfmt completion fish > ~/.config/fish/completions/leapfmt.fish

PowerShell:
  PS> leapfmt completion powershell | Out-String | Invoke-Expression

  # To load completions for every new session, run:
  PS> leapfmt completion powershell > leapfmt.ps1
  # and source this file from your PowerShell profile.
`,
		DisableFlagsInUseLine: true,
		ValidArgs:             []string{"bash", "zsh", "fish", "powershell"},
		Args:                  cobra.MatchAll(cobra.ExactArgs(1), cobra.OnlyValidArgs),
		RunE: func(cmd *cobra.Command, args []string) error {
			out := cmd.OutOrStdout()
			switch args[0] {
			case "bash":
				return cmd.Root().GenBashCompletion(out)
			case "zsh":
				return cmd.Root().GenZshCompletion(out)
			case "fish":
				return cmd.Root().GenFishCompletion(out, true)
			case "powershell":
				return cmd.Root().GenPowerShellCompletionWithDesc(out)
			}
			return nil
		},
	}
	return cmd
}
