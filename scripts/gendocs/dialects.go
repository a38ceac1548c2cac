package main

import (
	"fmt"
	"log"
	"os"
	"path/filepath"
	"strings"

	"github.com/leapstack-labs/leapfmt/pkg/dialect"
	"github.com/leapstack-labs/leapfmt/pkg/dialects"
)

// generateDialectDocs writes one page per built-in dialect plus an index.
func generateDialectDocs(outDir string) error {
	log.Printf("Generating dialect docs to %s", outDir)

	if err := os.MkdirAll(outDir, 0750); err != nil {
		return fmt.Errorf("failed to create output directory: %w", err)
	}

	all := dialects.Builtin().All()

	w := NewMarkdownWriter()
	w.Frontmatter("Dialects", "SQL dialects supported by leapfmt")
	w.GeneratedMarker()
	w.Header(1, "Dialects")
	w.Paragraph("Select a dialect with " + InlineCode("--dialect") + " or the " + InlineCode("dialect") + " config key. Aliases are accepted wherever a name is.")
	var rows [][]string
	for _, d := range all {
		link := fmt.Sprintf("[%s](/dialects/%s)", InlineCode(d.Name()), d.Name())
		rows = append(rows, []string{link, joinCode(d.Aliases())})
	}
	w.Table([]string{"Dialect", "Aliases"}, rows)
	if err := os.WriteFile(filepath.Join(outDir, "index.md"), w.Bytes(), 0600); err != nil {
		return err
	}
	log.Printf("  Generated index.md")

	for _, d := range all {
		if err := generateDialectPage(d, outDir); err != nil {
			return fmt.Errorf("failed to generate page for %s: %w", d.Name(), err)
		}
		log.Printf("  Generated %s.md", d.Name())
	}
	return nil
}

func generateDialectPage(d *dialect.Dialect, outDir string) error {
	cfg := d.Config()
	w := NewMarkdownWriter()
	w.Frontmatter(d.Name(), "The "+d.Name()+" SQL dialect")
	w.GeneratedMarker()
	w.Header(1, d.Name())

	w.Header(2, "Lexical rules")
	var quotes []string
	for _, q := range d.Quotes() {
		quotes = append(quotes, InlineCode(q.Open+"..."+q.Close))
	}
	var blocks []string
	for _, b := range cfg.Blocks {
		blocks = append(blocks, InlineCode(b.Open+" "+b.Close))
	}
	var comments []string
	comments = append(comments, d.LineComments()...)
	for _, c := range d.BlockComments() {
		comments = append(comments, c.Open+" "+c.Close)
	}
	ph := d.Placeholders()
	w.Table([]string{"Rule", "Value"}, [][]string{
		{"Quotes", strings.Join(quotes, " ")},
		{"Comments", joinCode(comments)},
		{"Blocks", strings.Join(blocks, " ")},
		{"Indexed placeholders", joinCode(ph.Indexed)},
		{"Numbered placeholders", joinCode(ph.Numbered)},
		{"Named placeholders", joinCode(ph.Named)},
		{"Dense operators", joinCode(cfg.DenseOperators)},
	})

	sections := []struct {
		title   string
		phrases []string
	}{
		{"Commands", cfg.Commands},
		{"Inline clauses", cfg.InlineClauses},
		{"Binary commands", cfg.BinaryCommands},
		{"Dependent clauses", cfg.DependentClauses},
		{"Logical operators", cfg.LogicalOperators},
	}
	w.Header(2, "Phrases")
	w.Paragraph("Patterns use " + InlineCode("[A | B]") + " for an optional choice and " + InlineCode("{A | B}") + " for a required one.")
	for _, s := range sections {
		if len(s.phrases) == 0 {
			continue
		}
		w.Header(3, s.title)
		w.BulletList(inlineCodes(s.phrases))
	}

	filename := filepath.Join(outDir, d.Name()+".md")
	return os.WriteFile(filename, w.Bytes(), 0600)
}

func joinCode(items []string) string {
	if len(items) == 0 {
		return "-"
	}
	return strings.Join(inlineCodes(items), " ")
}
