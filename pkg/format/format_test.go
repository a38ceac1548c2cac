package format

import (
	"errors"
	"log/slog"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/leapstack-labs/leapfmt/internal/testutil"
	"github.com/leapstack-labs/leapfmt/pkg/dialects/ansi"
	"github.com/leapstack-labs/leapfmt/pkg/dialects/postgres"
	"github.com/leapstack-labs/leapfmt/pkg/dialects/spark"
)

func formatWith(t *testing.T, input string, configure func(*Options)) string {
	t.Helper()
	opts := DefaultOptions()
	opts.Logger = testutil.NewTestLogger(t)
	if configure != nil {
		configure(&opts)
	}
	f, err := New(opts)
	require.NoError(t, err)
	return f.Format(input)
}

func TestFormat_BasicSelect(t *testing.T) {
	tests := []struct {
		name     string
		input    string
		expected string
	}{
		{
			name:  "simple select",
			input: "SELECT a, b FROM t",
			expected: `SELECT
  a,
  b
FROM
  t
`,
		},
		{
			name:  "where with logical operators",
			input: "select a from t where x = 1 and y between 1 and 5",
			expected: `SELECT
  a
FROM
  t
WHERE
  x = 1
  AND y BETWEEN 1 AND 5
`,
		},
		{
			name:  "select table star",
			input: "SELECT t.* FROM t",
			expected: `SELECT
  t.*
FROM
  t
`,
		},
		{
			name:  "inline clause",
			input: "SELECT a FROM t ORDER BY a DESC LIMIT 10",
			expected: `SELECT
  a
FROM
  t
ORDER BY
  a DESC
LIMIT 10
`,
		},
		{
			name:  "unary minus",
			input: "SELECT -1, a - 1, - -b",
			expected: `SELECT
  -1,
  a - 1,
  - -b
`,
		},
		{
			name:     "empty input",
			input:    "  \n\t ",
			expected: "",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.expected, formatWith(t, tt.input, nil))
		})
	}
}

func TestFormat_Joins(t *testing.T) {
	tests := []struct {
		name     string
		input    string
		expected string
	}{
		{
			name:  "inner join",
			input: "SELECT * FROM a JOIN b ON a.id = b.id",
			expected: `SELECT
  *
FROM
  a
JOIN b
  ON a.id = b.id
`,
		},
		{
			name:  "multiple joins",
			input: "SELECT * FROM a left outer join b ON a.id = b.id and a.x = b.x CROSS JOIN c",
			expected: `SELECT
  *
FROM
  a
LEFT OUTER JOIN b
  ON a.id = b.id
  AND a.x = b.x
CROSS JOIN c
`,
		},
		{
			name:  "union",
			input: "SELECT a FROM t UNION ALL SELECT b FROM u",
			expected: `SELECT
  a
FROM
  t
UNION ALL
SELECT
  b
FROM
  u
`,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.expected, formatWith(t, tt.input, nil))
		})
	}
}

func TestFormat_Blocks(t *testing.T) {
	tests := []struct {
		name     string
		input    string
		expected string
	}{
		{
			name:  "case expression",
			input: "SELECT CASE WHEN x = 1 THEN 'a' ELSE 'b' END FROM t",
			expected: `SELECT
  CASE
    WHEN x = 1 THEN 'a'
    ELSE 'b'
  END
FROM
  t
`,
		},
		{
			name:  "function calls",
			input: "SELECT COUNT (*), COALESCE(a, b) FROM t",
			expected: `SELECT
  COUNT(*),
  COALESCE(a, b)
FROM
  t
`,
		},
		{
			name:  "in list",
			input: "select count(*) from t where a in (1, 2)",
			expected: `SELECT
  COUNT(*)
FROM
  t
WHERE
  a IN (
    1,
    2
  )
`,
		},
		{
			name:  "cte",
			input: "WITH cte AS (SELECT a FROM t) SELECT * FROM cte",
			expected: `WITH
  cte AS (
    SELECT
      a
    FROM
      t
  )
SELECT
  *
FROM
  cte
`,
		},
		{
			name:  "commands inside a function call stay inline",
			input: "SELECT EXTRACT(YEAR FROM d) FROM t",
			expected: `SELECT
  EXTRACT(YEAR FROM d)
FROM
  t
`,
		},
		{
			name:  "insert values",
			input: "insert into t (a, b) values (1, 'x'), (2, 'y')",
			expected: `INSERT INTO
  t(a, b)
VALUES
  (
    1,
    'x'
  ),
  (
    2,
    'y'
  )
`,
		},
		{
			name:  "empty parens stay closed",
			input: "SELECT f(), ()",
			expected: `SELECT
  f(),
  ()
`,
		},
		{
			name:  "window specification",
			input: "SELECT ROW_NUMBER() OVER (PARTITION BY a ORDER BY b) FROM t",
			expected: `SELECT
  ROW_NUMBER() OVER (
    PARTITION BY
      a
    ORDER BY
      b
  )
FROM
  t
`,
		},
		{
			name:  "unmatched closer stays inline",
			input: "SELECT a) FROM t",
			expected: `SELECT
  a)
FROM
  t
`,
		},
		{
			name:  "unclosed block",
			input: "SELECT (a",
			expected: `SELECT
  (
    a
`,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.expected, formatWith(t, tt.input, nil))
		})
	}
}

func TestFormat_NestedParensIndent(t *testing.T) {
	got := formatWith(t, "(((a)))", nil)
	expected := `(
  (
    (
      a
    )
  )
)
`
	assert.Equal(t, expected, got)

	for n := 1; n <= 5; n++ {
		input := strings.Repeat("(", n) + "a" + strings.Repeat(")", n)
		got := formatWith(t, input, func(o *Options) {
			o.IndentWidth = 4
		})
		deepest := 0
		for _, line := range strings.Split(strings.TrimRight(got, "\n"), "\n") {
			indent := len(line) - len(strings.TrimLeft(line, " "))
			deepest = max(deepest, indent)
		}
		assert.Equal(t, n*4, deepest, "input %q", input)
	}
}

func TestFormat_NewlineModes(t *testing.T) {
	tests := []struct {
		name      string
		input     string
		configure func(*Options)
		expected  string
	}{
		{
			name:  "itemCount keeps short lists inline",
			input: "SELECT a, b FROM t",
			configure: func(o *Options) {
				o.NewlineMode = NewlineItemCount
			},
			expected: "SELECT a, b\nFROM t\n",
		},
		{
			name:  "itemCount breaks long lists",
			input: "SELECT a, b, c, d FROM t",
			configure: func(o *Options) {
				o.NewlineMode = NewlineItemCount
			},
			expected: `SELECT
  a,
  b,
  c,
  d
FROM t
`,
		},
		{
			name:  "never",
			input: "SELECT a, b FROM t JOIN u ON t.id = u.id WHERE x = 1 AND y = 2",
			configure: func(o *Options) {
				o.NewlineMode = NewlineNever
			},
			expected: `SELECT a, b
FROM t
JOIN u ON t.id = u.id
WHERE x = 1 AND y = 2
`,
		},
		{
			name:  "lineWidth fits",
			input: "SELECT a, b FROM t",
			configure: func(o *Options) {
				o.NewlineMode = NewlineLineWidth
				o.LineWidth = 20
			},
			expected: "SELECT a, b\nFROM t\n",
		},
		{
			name:  "lineWidth overflows",
			input: "SELECT aaaaaaaaaa, bbbbbbbbbb, cccccccccc FROM t",
			configure: func(o *Options) {
				o.NewlineMode = NewlineLineWidth
				o.LineWidth = 20
			},
			expected: `SELECT
  aaaaaaaaaa,
  bbbbbbbbbb,
  cccccccccc
FROM t
`,
		},
		{
			name:  "hybrid breaks on item count",
			input: "SELECT a, b, c FROM t",
			configure: func(o *Options) {
				o.NewlineMode = NewlineHybrid
				o.ItemCount = 2
			},
			expected: `SELECT
  a,
  b,
  c
FROM t
`,
		},
		{
			name:  "case stays inline under never",
			input: "SELECT CASE WHEN a THEN 1 ELSE 2 END FROM t",
			configure: func(o *Options) {
				o.NewlineMode = NewlineNever
			},
			expected: "SELECT CASE WHEN a THEN 1 ELSE 2 END\nFROM t\n",
		},
		{
			name:  "tabs",
			input: "SELECT a FROM t",
			configure: func(o *Options) {
				o.UseTabs = true
			},
			expected: "SELECT\n\ta\nFROM\n\tt\n",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.expected, formatWith(t, tt.input, tt.configure))
		})
	}
}

func TestFormat_KeywordCase(t *testing.T) {
	input := "Select a From t Where x Is Null Group   By a"
	tests := []struct {
		name     string
		mode     KeywordCase
		expected string
	}{
		{
			name:     "upper",
			mode:     CaseUpper,
			expected: "SELECT a\nFROM t\nWHERE x IS NULL\nGROUP BY a\n",
		},
		{
			name:     "lower",
			mode:     CaseLower,
			expected: "select a\nfrom t\nwhere x is null\ngroup by a\n",
		},
		{
			name:     "preserve",
			mode:     CasePreserve,
			expected: "Select a\nFrom t\nWhere x Is Null\nGroup By a\n",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := formatWith(t, input, func(o *Options) {
				o.KeywordCase = tt.mode
				o.NewlineMode = NewlineNever
			})
			assert.Equal(t, tt.expected, got)
		})
	}
}

func TestFormat_Disambiguation(t *testing.T) {
	useSpark := func(o *Options) { o.Dialect = spark.Spark }

	t.Run("window function stays inline", func(t *testing.T) {
		got := formatWith(t, "SELECT WINDOW(ts, '1 hour') FROM t", useSpark)
		assert.Equal(t, "SELECT\n  WINDOW(ts, '1 hour')\nFROM\n  t\n", got)
	})

	t.Run("window function with over clause", func(t *testing.T) {
		got := formatWith(t, "SELECT WINDOW(ts, '1 hour') OVER (PARTITION BY k) FROM t", useSpark)
		expected := `SELECT
  WINDOW(ts, '1 hour') OVER (
    PARTITION BY
      k
  )
FROM
  t
`
		assert.Equal(t, expected, got)
	})

	t.Run("window clause starts a line", func(t *testing.T) {
		got := formatWith(t, "SELECT * FROM t WINDOW w AS (PARTITION BY y)", useSpark)
		expected := `SELECT
  *
FROM
  t
WINDOW
  w AS (
    PARTITION BY
      y
  )
`
		assert.Equal(t, expected, got)
	})

	t.Run("member access END", func(t *testing.T) {
		got := formatWith(t, "SELECT a.END FROM t", nil)
		assert.Equal(t, "SELECT\n  a.END\nFROM\n  t\n", got)
	})

	t.Run("member access END inside CASE", func(t *testing.T) {
		got := formatWith(t, "SELECT CASE WHEN a.end = 1 THEN 2 END FROM t", func(o *Options) {
			o.NewlineMode = NewlineNever
		})
		assert.Equal(t, "SELECT CASE WHEN a.end = 1 THEN 2 END\nFROM t\n", got)
	})
}

func TestFormat_Comments(t *testing.T) {
	tests := []struct {
		name     string
		input    string
		expected string
	}{
		{
			name:     "line comment ends the line",
			input:    "SELECT 1 -- note\nFROM t",
			expected: "SELECT\n  1 -- note\nFROM\n  t\n",
		},
		{
			name:     "trailing line comment at end of input",
			input:    "SELECT 1 -- note",
			expected: "SELECT\n  1 -- note\n",
		},
		{
			name:     "comment on its own line",
			input:    "SELECT a,\n-- own line\nb FROM t",
			expected: "SELECT\n  a,\n  -- own line\n  b\nFROM\n  t\n",
		},
		{
			name:     "comment in front of a clause",
			input:    "SELECT a\n-- next clause\nFROM t",
			expected: "SELECT\n  a\n-- next clause\nFROM\n  t\n",
		},
		{
			name:     "comment in front of a join",
			input:    "SELECT a FROM t\n  -- joined\n  JOIN u ON t.id = u.id",
			expected: "SELECT\n  a\nFROM\n  t\n-- joined\nJOIN u\n  ON t.id = u.id\n",
		},
		{
			name:     "block comment stays inline",
			input:    "SELECT a /* first */ , b FROM t",
			expected: "SELECT\n  a /* first */,\n  b\nFROM\n  t\n",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.expected, formatWith(t, tt.input, nil))
		})
	}

	t.Run("own line comment keeps its line when inline", func(t *testing.T) {
		got := formatWith(t, "SELECT a\n-- next clause\nFROM t", func(o *Options) {
			o.NewlineMode = NewlineNever
		})
		assert.Equal(t, "SELECT a\n-- next clause\nFROM t\n", got)
	})

	t.Run("own line comment inside a clause", func(t *testing.T) {
		got := formatWith(t, "SELECT a\n-- b is next\n+ b FROM t", func(o *Options) {
			o.NewlineMode = NewlineNever
		})
		assert.Equal(t, "SELECT a\n  -- b is next\n  + b\nFROM t\n", got)
	})
}

func TestFormat_DenseOperators(t *testing.T) {
	t.Run("dialect dense operator", func(t *testing.T) {
		got := formatWith(t, "select a::int, b + c from t", func(o *Options) {
			o.Dialect = postgres.Postgres
		})
		assert.Equal(t, "SELECT\n  a::INT,\n  b + c\nFROM\n  t\n", got)
	})

	t.Run("configured dense operator", func(t *testing.T) {
		got := formatWith(t, "SELECT a || b, c + d", func(o *Options) {
			o.DenseOperators = []string{"||"}
			o.NewlineMode = NewlineNever
		})
		assert.Equal(t, "SELECT a||b, c + d\n", got)
	})

	t.Run("configured operator the dialect does not lex", func(t *testing.T) {
		got := formatWith(t, "SELECT a::int, a + b", func(o *Options) {
			o.DenseOperators = []string{"::"}
			o.NewlineMode = NewlineNever
			o.Params = map[string]string{"int": "42"}
		})
		assert.Equal(t, "SELECT a::INT, a + b\n", got)
	})

	t.Run("dialect is extended, not changed", func(t *testing.T) {
		opts := DefaultOptions()
		opts.DenseOperators = []string{"::", "->"}
		f, err := New(opts)
		require.NoError(t, err)

		assert.Contains(t, f.Options().Dialect.Operators(), "::")
		assert.Contains(t, f.Options().Dialect.Operators(), "->")
		assert.Equal(t, "ansi", f.Options().Dialect.Name())
		assert.NotContains(t, ansi.ANSI.Operators(), "::")
	})

	t.Run("dialect already lexes the operator", func(t *testing.T) {
		opts := DefaultOptions()
		opts.Dialect = postgres.Postgres
		opts.DenseOperators = []string{"::"}
		f, err := New(opts)
		require.NoError(t, err)
		assert.Same(t, postgres.Postgres, f.Options().Dialect)
	})
}

func TestFormat_DotNextToNumbers(t *testing.T) {
	tests := []struct {
		name     string
		input    string
		expected string
	}{
		{
			name:     "number after dot",
			input:    "SELECT t . 1 FROM x",
			expected: "SELECT t. 1\nFROM x\n",
		},
		{
			name:     "number before dot",
			input:    "SELECT 1 . x FROM t",
			expected: "SELECT 1 .x\nFROM t\n",
		},
		{
			name:     "qualified names still hug",
			input:    "SELECT s . t . c1 FROM s . t",
			expected: "SELECT s.t.c1\nFROM s.t\n",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := formatWith(t, tt.input, func(o *Options) {
				o.NewlineMode = NewlineNever
			})
			assert.Equal(t, tt.expected, got)
		})
	}
}

func TestFormat_Statements(t *testing.T) {
	t.Run("blank line between statements", func(t *testing.T) {
		got := formatWith(t, "SELECT 1; SELECT 2;", nil)
		assert.Equal(t, "SELECT\n  1;\n\nSELECT\n  2;\n", got)
	})

	t.Run("no blank lines", func(t *testing.T) {
		got := formatWith(t, "SELECT 1;SELECT 2", func(o *Options) {
			o.BlankLinesBetweenStatements = 0
		})
		assert.Equal(t, "SELECT\n  1;\nSELECT\n  2\n", got)
	})

	t.Run("comment after terminator", func(t *testing.T) {
		got := formatWith(t, "SELECT 1; -- done\nSELECT 2", func(o *Options) {
			o.NewlineMode = NewlineNever
		})
		assert.Equal(t, "SELECT 1; -- done\n\nSELECT 2\n", got)
	})
}

func TestFormat_Aliases(t *testing.T) {
	tests := []struct {
		name     string
		mode     AliasMode
		input    string
		expected string
	}{
		{
			name:     "select adds AS in select lists",
			mode:     AliasSelect,
			input:    "SELECT a b, c AS d, COUNT(*) n FROM t x",
			expected: "SELECT a AS b, c AS d, COUNT(*) AS n\nFROM t x\n",
		},
		{
			name:     "always adds AS to table references",
			mode:     AliasAlways,
			input:    "SELECT a b FROM t x JOIN u y ON x.id = y.id",
			expected: "SELECT a AS b\nFROM t AS x\nJOIN u AS y ON x.id = y.id\n",
		},
		{
			name:     "never drops AS",
			mode:     AliasNever,
			input:    "SELECT a AS b, CAST(c AS INT) AS d FROM t AS x",
			expected: "SELECT a b, CAST(c AS INT) d\nFROM t x\n",
		},
		{
			name:     "case alias",
			mode:     AliasSelect,
			input:    "SELECT CASE WHEN a THEN b END c FROM t",
			expected: "SELECT CASE WHEN a THEN b END AS c\nFROM t\n",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := formatWith(t, tt.input, func(o *Options) {
				o.AliasMode = tt.mode
				o.NewlineMode = NewlineNever
			})
			assert.Equal(t, tt.expected, got)
		})
	}
}

func TestFormat_Params(t *testing.T) {
	got := formatWith(t, "SELECT * FROM t WHERE a = ? AND b = :name AND c = ?", func(o *Options) {
		o.NewlineMode = NewlineNever
		o.Params = map[string]string{"1": "42", "name": "'x'"}
	})
	assert.Equal(t, "SELECT *\nFROM t\nWHERE a = 42 AND b = 'x' AND c = ?\n", got)
}

func TestFormat_Idempotent(t *testing.T) {
	inputs := []string{
		"select a, b as c, count(*) from t1 join t2 on t1.id = t2.id where x between 1 and 2 and y in (select z from w) group by a order by b desc limit 10",
		"WITH cte AS (SELECT 1 AS n) SELECT n, CASE WHEN n > 0 THEN 'pos' ELSE 'neg' END label FROM cte; -- trailing\nSELECT 2",
		"insert into t (a, b) values (1, 'x'), (2, 'y')",
		"select a /* inline */ , -1, - -1 from t -- note\nwhere a.end = 1",
		"select (((a)))",
		"SELECT a,\n-- own line\nb FROM t",
		"SELECT 'it''s', \"Quoted Name\" FROM t WHERE s LIKE '%x%' OR s IS NOT NULL",
		"SELECT t . 1 FROM x",
		"SELECT 1 . x FROM t",
		"SELECT a\n-- next clause\nFROM t",
		"SELECT ROW_NUMBER() OVER (PARTITION BY a ORDER BY b) FROM t",
	}
	modes := []NewlineMode{NewlineAlways, NewlineNever, NewlineLineWidth, NewlineItemCount, NewlineHybrid}

	for _, mode := range modes {
		for _, input := range inputs {
			configure := func(o *Options) {
				o.NewlineMode = mode
				o.LineWidth = 30
				o.ItemCount = 2
				o.AliasMode = AliasAlways
			}
			once := formatWith(t, input, configure)
			twice := formatWith(t, once, configure)
			assert.Equal(t, once, twice, "mode %s, input %q", mode, input)

			for _, line := range strings.Split(once, "\n") {
				assert.Equal(t, strings.TrimRight(line, " \t"), line, "trailing whitespace in mode %s", mode)
			}
		}
	}
}

func TestFormat_LogsLexicalWarnings(t *testing.T) {
	logger, logs := testutil.NewCaptureLogger(slog.LevelWarn)
	got := formatWith(t, "SELECT 'open", func(o *Options) {
		o.Logger = logger
	})
	assert.Equal(t, "SELECT\n  'open\n", got)
	assert.Contains(t, logs.String(), "unterminated string literal")
	assert.Contains(t, logs.String(), "pos=1:8")
}

func TestNew_InvalidOptions(t *testing.T) {
	opts := DefaultOptions()
	opts.IndentWidth = -1
	opts.LineWidth = 0
	opts.DenseOperators = []string{" "}

	_, err := New(opts)
	require.Error(t, err)
	assert.True(t, errors.Is(err, ErrInvalidOptions))
	assert.Contains(t, err.Error(), "indent width")
	assert.Contains(t, err.Error(), "line width")
	assert.Contains(t, err.Error(), "dense operator")

	_, err = SQL("SELECT 1", opts)
	assert.ErrorIs(t, err, ErrInvalidOptions)

	opts = DefaultOptions()
	opts.DenseOperators = []string{"a+"}
	_, err = New(opts)
	require.Error(t, err)
	assert.ErrorIs(t, err, ErrInvalidOptions)
	assert.Contains(t, err.Error(), "dense operators")
}

func TestSQL(t *testing.T) {
	opts := DefaultOptions()
	opts.Dialect = nil
	got, err := SQL("select 1", opts)
	require.NoError(t, err)
	assert.Equal(t, "SELECT\n  1\n", got)
}

func TestFormatter_Concurrent(t *testing.T) {
	f, err := New(DefaultOptions())
	require.NoError(t, err)

	expected := f.Format("select a, b from t where x = 1")
	done := make(chan string)
	for range 8 {
		go func() { done <- f.Format("select a, b from t where x = 1") }()
	}
	for range 8 {
		assert.Equal(t, expected, <-done)
	}
}

func TestParseEnums(t *testing.T) {
	mode, err := ParseNewlineMode("LINEWIDTH")
	require.NoError(t, err)
	assert.Equal(t, NewlineLineWidth, mode)

	var kc KeywordCase
	require.NoError(t, kc.UnmarshalText([]byte("preserve")))
	assert.Equal(t, CasePreserve, kc)

	var am AliasMode
	require.NoError(t, am.UnmarshalText([]byte("never")))
	assert.Equal(t, AliasNever, am)

	text, err := NewlineItemCount.MarshalText()
	require.NoError(t, err)
	assert.Equal(t, "itemCount", string(text))

	_, err = ParseAliasMode("sometimes")
	assert.ErrorIs(t, err, ErrInvalidOptions)
	assert.Equal(t, "NewlineMode(9)", NewlineMode(9).String())
}
