package dialect

import (
	"fmt"
	"strings"
)

// ExpandPhrases expands phrase patterns into plain phrases.
//
//	"SELECT [ALL | DISTINCT]"     -> SELECT, SELECT ALL, SELECT DISTINCT
//	"{LEFT | RIGHT} [OUTER] JOIN" -> LEFT JOIN, LEFT OUTER JOIN, RIGHT JOIN, RIGHT OUTER JOIN
//
// Square brackets mark an optional choice, braces a required one, and groups
// nest. Results are whitespace-normalized and de-duplicated in input order.
func ExpandPhrases(patterns ...string) ([]string, error) {
	var out []string
	seen := make(map[string]struct{})
	for _, pattern := range patterns {
		p := &phraseParser{tokens: splitPattern(pattern)}
		alts, err := p.parseSeq()
		if err != nil {
			return nil, fmt.Errorf("phrase %q: %w", pattern, err)
		}
		if p.pos < len(p.tokens) {
			return nil, fmt.Errorf("phrase %q: unexpected %q", pattern, p.tokens[p.pos])
		}
		for _, alt := range alts {
			phrase := strings.Join(strings.Fields(alt), " ")
			if phrase == "" {
				continue
			}
			if _, dup := seen[phrase]; dup {
				continue
			}
			seen[phrase] = struct{}{}
			out = append(out, phrase)
		}
	}
	return out, nil
}

// MustExpandPhrases is ExpandPhrases for patterns known to be valid.
func MustExpandPhrases(patterns ...string) []string {
	out, err := ExpandPhrases(patterns...)
	if err != nil {
		panic(err)
	}
	return out
}

func splitPattern(pattern string) []string {
	var tokens []string
	var word strings.Builder
	flush := func() {
		if word.Len() > 0 {
			tokens = append(tokens, word.String())
			word.Reset()
		}
	}
	for _, r := range pattern {
		switch r {
		case '[', ']', '{', '}', '|':
			flush()
			tokens = append(tokens, string(r))
		case ' ', '\t', '\n', '\r':
			flush()
		default:
			word.WriteRune(r)
		}
	}
	flush()
	return tokens
}

type phraseParser struct {
	tokens []string
	pos    int
}

// parseSeq parses words and groups up to a '|' or closing bracket and
// returns every expansion of the sequence.
func (p *phraseParser) parseSeq() ([]string, error) {
	result := []string{""}
	for p.pos < len(p.tokens) {
		tok := p.tokens[p.pos]
		var options []string
		switch tok {
		case "|", "]", "}":
			return result, nil
		case "[", "{":
			p.pos++
			closer := "]"
			if tok == "{" {
				closer = "}"
			}
			alts, err := p.parseAlternatives(closer)
			if err != nil {
				return nil, err
			}
			options = alts
			if tok == "[" {
				options = append([]string{""}, alts...)
			}
		default:
			p.pos++
			options = []string{tok}
		}

		next := make([]string, 0, len(result)*len(options))
		for _, prefix := range result {
			for _, opt := range options {
				next = append(next, prefix+" "+opt)
			}
		}
		result = next
	}
	return result, nil
}

func (p *phraseParser) parseAlternatives(closer string) ([]string, error) {
	var alts []string
	for {
		seq, err := p.parseSeq()
		if err != nil {
			return nil, err
		}
		alts = append(alts, seq...)
		if p.pos >= len(p.tokens) {
			return nil, fmt.Errorf("missing %q", closer)
		}
		switch tok := p.tokens[p.pos]; tok {
		case "|":
			p.pos++
		case closer:
			p.pos++
			return alts, nil
		default:
			return nil, fmt.Errorf("mismatched %q, want %q", tok, closer)
		}
	}
}
