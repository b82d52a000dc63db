package parser

import (
	"os"
	"path/filepath"
	"sort"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/ha1tch/rdbparser/lexer"
)

// malformedCorpus lists the corpus files that are expected to fail, with
// the error kinds they must produce in order.
var malformedCorpus = map[string][]ErrorKind{
	"101_misprints.sql":      {NotStatement, SyntaxError, UnexpectedEndOfInput},
	"102_partly_chaotic.sql": {SyntaxError, SyntaxError, SyntaxError},
	"103_bad_values.sql":     {TypeSyntaxError, WrongListDefinition, VarOutOfRange, VarSyntaxError},
	"104_truncated.sql":      {UnexpectedEndOfInput},
}

func corpusFiles(t *testing.T) []string {
	t.Helper()
	files, err := filepath.Glob(filepath.Join("..", "testdata", "*.sql"))
	require.NoError(t, err, "failed to glob corpus directory")
	if len(files) == 0 {
		t.Skip("no corpus files found in testdata/")
	}
	sort.Strings(files)
	return files
}

// TestCorpusIntegration runs the parser against every well-formed sample in
// the testdata directory.
func TestCorpusIntegration(t *testing.T) {
	var passed, failed int
	var failures []string

	for _, file := range corpusFiles(t) {
		name := filepath.Base(file)
		if _, ok := malformedCorpus[name]; ok {
			continue
		}

		content, err := os.ReadFile(file)
		require.NoError(t, err, "failed to read %s", name)

		r := New(lexer.New(string(content))).Parse()
		if !r.OK() {
			failed++
			failures = append(failures, name+": "+r.Errors[0].Error())
			continue
		}
		passed++
	}

	t.Logf("Corpus Integration Test Results:")
	t.Logf("  Passed: %d/%d", passed, passed+failed)
	for _, f := range failures {
		t.Errorf("  - %s", f)
	}
}

// TestCorpusSamples runs one subtest per corpus file, so a single file can
// be selected with -run TestCorpusSamples/001_users.
func TestCorpusSamples(t *testing.T) {
	for _, file := range corpusFiles(t) {
		name := filepath.Base(file)

		t.Run(strings.TrimSuffix(name, ".sql"), func(t *testing.T) {
			content, err := os.ReadFile(file)
			require.NoError(t, err)

			r := New(lexer.New(string(content))).Parse()

			want, malformed := malformedCorpus[name]
			if !malformed {
				require.True(t, r.OK(), "parse errors: %v", r.Errors)
				assert.NotEmpty(t, r.Script.Statements, "parsed zero statements")
				return
			}

			kinds := make([]ErrorKind, 0, len(r.Errors))
			for _, err := range r.Errors {
				kinds = append(kinds, err.Kind)
			}
			assert.Equal(t, want, kinds)
		})
	}
}

// TestCorpusRoundTrip checks that rendering and re-parsing each well-formed
// sample reproduces the same statements.
func TestCorpusRoundTrip(t *testing.T) {
	for _, file := range corpusFiles(t) {
		name := filepath.Base(file)
		if _, ok := malformedCorpus[name]; ok {
			continue
		}

		t.Run(strings.TrimSuffix(name, ".sql"), func(t *testing.T) {
			content, err := os.ReadFile(file)
			require.NoError(t, err)

			first := New(lexer.New(string(content))).Parse()
			require.True(t, first.OK())

			second := New(lexer.New(first.Script.String())).Parse()
			require.True(t, second.OK(), "rendered script failed to parse: %v", second.Errors)
			assert.Equal(t, first.Script.String(), second.Script.String())
		})
	}
}
