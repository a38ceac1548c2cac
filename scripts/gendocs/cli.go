package main

import (
	"fmt"
	"log"
	"os"
	"path/filepath"
	"reflect"
	"strings"

	"github.com/spf13/cobra"
	"github.com/spf13/pflag"
	"gopkg.in/yaml.v3"

	"github.com/leapstack-labs/leapfmt/internal/cli"
	"github.com/leapstack-labs/leapfmt/internal/cli/commands"
	"github.com/leapstack-labs/leapfmt/internal/cli/config"
	"github.com/leapstack-labs/leapfmt/pkg/dialects"
	"github.com/leapstack-labs/leapfmt/pkg/format"
)

// configKey describes one setting of config.Config.
type configKey struct {
	Key     string
	Default string
	Env     string
	Flag    *pflag.Flag
}

// generateCLIDocs writes the CLI overview, the configuration reference and
// one page per command.
func generateCLIDocs(outDir string) error {
	log.Printf("Generating CLI docs to %s", outDir)
	if err := os.MkdirAll(outDir, 0o750); err != nil {
		return fmt.Errorf("failed to create output directory: %w", err)
	}

	root := cli.NewRootCmd()
	keys := configKeys(root)

	pages := map[string][]byte{
		"index.md":         cliIndex(root),
		"configuration.md": configurationPage(keys),
	}
	for _, cmd := range visibleCommands(root) {
		pages[cmd.Name()+".md"] = commandPage(cmd)
	}

	for name, content := range pages {
		if err := os.WriteFile(filepath.Join(outDir, name), content, 0o600); err != nil {
			return fmt.Errorf("failed to write %s: %w", name, err)
		}
		log.Printf("  Generated %s", name)
	}
	return nil
}

func visibleCommands(root *cobra.Command) []*cobra.Command {
	var out []*cobra.Command
	for _, cmd := range root.Commands() {
		if cmd.Hidden || cmd.Name() == "help" || cmd.Name() == "__complete" {
			continue
		}
		out = append(out, cmd)
	}
	return out
}

func cliIndex(root *cobra.Command) []byte {
	w := NewMarkdownWriter()
	w.Frontmatter("CLI Reference", "Command-line interface reference for leapfmt")
	w.GeneratedMarker()

	w.Header(1, "CLI Reference")
	w.Paragraph(root.Long)
	w.CodeBlock("bash", `go install github.com/leapstack-labs/leapfmt/cmd/leapfmt@latest

leapfmt format query.sql          # print the formatted file
leapfmt format -w models/         # rewrite every *.sql file in place
cat query.sql | leapfmt format -d postgres`)

	w.Header(2, "Commands")
	var rows [][]string
	for _, cmd := range visibleCommands(root) {
		name := cmd.Name()
		if len(cmd.Aliases) > 0 {
			name += " (" + strings.Join(cmd.Aliases, ", ") + ")"
		}
		rows = append(rows, []string{
			fmt.Sprintf("[%s](/cli/%s)", InlineCode(name), cmd.Name()),
			cleanDescription(cmd.Short),
		})
	}
	w.Table([]string{"Command", "Description"}, rows)

	w.Header(2, "Dialects")
	var links []string
	for _, name := range dialects.Names() {
		link := fmt.Sprintf("[%s](/dialects/%s)", InlineCode(name), name)
		if name == dialects.DefaultDialect {
			link += " (default)"
		}
		links = append(links, link)
	}
	w.Paragraph("Select one with `--dialect`, or describe your own in YAML and pass it with `--dialect-file`:")
	w.BulletList(links)

	w.Header(2, "Settings")
	w.Paragraph("Every formatting setting can come from a config file, a `" + config.EnvPrefix +
		"*` environment variable or a global flag. See [Configuration](/cli/configuration).")

	w.Header(2, "Exit Codes")
	w.Table([]string{"Code", "Meaning"}, [][]string{
		{InlineCode("0"), "Success. With `--check`, every input was already formatted"},
		{InlineCode("1"), "Invalid configuration, unreadable input, or with `--check` the error " +
			InlineCode(commands.ErrUnformatted.Error()) + " after listing the inputs that would change"},
	})
	return w.Bytes()
}

func configurationPage(keys []configKey) []byte {
	w := NewMarkdownWriter()
	w.Frontmatter("Configuration", "Config file keys, environment variables and flags for leapfmt")
	w.GeneratedMarker()

	w.Header(1, "Configuration")
	w.Paragraph(fmt.Sprintf("leapfmt looks for %s in the working directory and up to its parents. "+
		"`--config` names a file explicitly. A relative `dialect_file` in the config file is resolved "+
		"against the directory of that file.", strings.Join(inlineCodes(config.FileNames), ", ")))
	w.Paragraph("Later sources win: built-in defaults, then the config file, then environment variables, then flags given on the command line.")

	var rows [][]string
	for _, k := range keys {
		flag, desc := "", ""
		if k.Flag != nil {
			flag = InlineCode("--" + k.Flag.Name)
			desc = cleanDescription(k.Flag.Usage)
		}
		env := ""
		if k.Env != "" {
			env = InlineCode(k.Env)
		}
		rows = append(rows, []string{InlineCode(k.Key), k.Default, env, flag, desc})
	}
	w.Table([]string{"Key", "Default", "Environment", "Flag", "Description"}, rows)

	w.Header(2, "Values")
	w.Table([]string{"Key", "Accepted values"}, [][]string{
		{InlineCode("keyword_case"), enumValues(format.CaseUpper, format.CasePreserve)},
		{InlineCode("newline_mode"), enumValues(format.NewlineAlways, format.NewlineHybrid)},
		{InlineCode("alias_mode"), enumValues(format.AliasSelect, format.AliasNever)},
		{InlineCode("dialect"), strings.Join(inlineCodes(dialects.Names()), ", ")},
	})
	w.Paragraph("List values in environment variables are comma separated, for example `" +
		config.EnvPrefix + "DENSE=::,->`.")

	w.Header(2, "Example")
	w.CodeBlock("yaml", exampleConfig())
	return w.Bytes()
}

// configKeys lists the koanf keys of config.Config with their defaults and
// the flag that sets each one.
func configKeys(root *cobra.Command) []configKey {
	def := reflect.ValueOf(config.Default()).Elem()
	typ := def.Type()

	var keys []configKey
	for i := range typ.NumField() {
		key := typ.Field(i).Tag.Get("koanf")
		if key == "" || key == "-" {
			continue
		}
		flagName := strings.ReplaceAll(key, "_", "-")
		env := config.EnvPrefix + strings.ToUpper(key)
		if key == "params" {
			// --param takes key=value pairs; there is no environment form.
			flagName, env = "param", ""
		}
		keys = append(keys, configKey{
			Key:     key,
			Default: defaultText(key, def.Field(i)),
			Env:     env,
			Flag:    lookupFlag(root, flagName),
		})
	}
	return keys
}

// lookupFlag finds a global flag, or failing that a flag of any subcommand.
func lookupFlag(root *cobra.Command, name string) *pflag.Flag {
	if f := root.PersistentFlags().Lookup(name); f != nil {
		return f
	}
	for _, cmd := range root.Commands() {
		if f := cmd.LocalFlags().Lookup(name); f != nil {
			return f
		}
	}
	return nil
}

func defaultText(key string, v reflect.Value) string {
	if key == "jobs" {
		return "number of CPUs"
	}
	if s, ok := v.Interface().(fmt.Stringer); ok {
		return InlineCode(s.String())
	}
	switch v.Kind() {
	case reflect.String:
		if v.String() == "" {
			return ""
		}
	case reflect.Slice, reflect.Map:
		if v.Len() == 0 {
			return ""
		}
	}
	return InlineCode(fmt.Sprint(v.Interface()))
}

func enumValues[E ~int](first, last E) string {
	var names []string
	for e := first; e <= last; e++ {
		names = append(names, InlineCode(fmt.Sprint(e)))
	}
	return strings.Join(names, ", ")
}

// exampleConfig renders a config file that spells out the defaults, with a
// dense operator and a parameter to show the list and map forms.
func exampleConfig() string {
	def := config.Default()
	doc := map[string]any{
		"dialect":      "postgres",
		"indent":       def.Indent,
		"keyword_case": def.KeywordCase.String(),
		"newline_mode": format.NewlineHybrid.String(),
		"line_width":   def.LineWidth,
		"item_count":   def.ItemCount,
		"alias_mode":   def.AliasMode.String(),
		"blank_lines":  def.BlankLines,
		"dense":        []string{"::"},
		"params":       map[string]string{"schema": "analytics"},
	}
	out, err := yaml.Marshal(doc)
	if err != nil {
		return fmt.Sprintf("# %v", err)
	}
	return string(out)
}

// commandPage documents one command: usage, flags with their scope, and
// the command's examples.
func commandPage(cmd *cobra.Command) []byte {
	w := NewMarkdownWriter()
	w.Frontmatter(cmd.Name(), cmd.Short)
	w.GeneratedMarker()

	w.Header(1, "leapfmt "+cmd.Name())
	if cmd.Long != "" {
		w.Paragraph(cmd.Long)
	} else {
		w.Paragraph(cmd.Short)
	}

	use := cmd.UseLine()
	if !strings.HasPrefix(use, "leapfmt") {
		use = "leapfmt " + use
	}
	w.CodeBlock("bash", use)
	if len(cmd.Aliases) > 0 {
		w.Paragraph("Also available as " + strings.Join(inlineCodes(cmd.Aliases), ", ") + ".")
	}

	var rows [][]string
	addFlags := func(fs *pflag.FlagSet, scope string) {
		fs.VisitAll(func(f *pflag.Flag) {
			if f.Hidden {
				return
			}
			name := "--" + f.Name
			if f.Shorthand != "" {
				name = "-" + f.Shorthand + ", " + name
			}
			rows = append(rows, []string{InlineCode(name), flagDefault(f), scope, cleanDescription(f.Usage)})
		})
	}
	addFlags(cmd.LocalNonPersistentFlags(), "command")
	addFlags(cmd.InheritedFlags(), "global")
	if len(rows) > 0 {
		w.Header(2, "Flags")
		w.Table([]string{"Flag", "Default", "Scope", "Description"}, rows)
	}

	if cmd.Example != "" {
		w.Header(2, "Examples")
		w.CodeBlock("bash", dedent(cmd.Example))
	}
	return w.Bytes()
}

func flagDefault(f *pflag.Flag) string {
	switch f.DefValue {
	case "", "[]", "false":
		return ""
	}
	return InlineCode(f.DefValue)
}
