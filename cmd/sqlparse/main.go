// Command sqlparse parses rdb SQL and prints the parsed statements and any
// parse errors.
//
// Usage:
//
//	sqlparse [-i file] [-o file] [-errors plain|table] [-tokens] [-v]
//	sqlparse -interactive
//
// Input is read from stdin when -i is omitted. Output is appended to the -o
// file, or written to stdout. The exit status is 1 when the input has parse
// errors.
package main

import (
	"errors"
	"flag"
	"fmt"
	"io"
	"log/slog"
	"os"
	"strconv"

	"github.com/olekukonko/tablewriter"

	"github.com/ha1tch/rdbparser/ast"
	"github.com/ha1tch/rdbparser/lexer"
	"github.com/ha1tch/rdbparser/parser"
	"github.com/ha1tch/rdbparser/token"
)

// errParseFailed reports that the input had parse errors. The errors
// themselves have already been written to the output.
var errParseFailed = errors.New("input has parse errors")

type config struct {
	input          string
	output         string
	interactive    bool
	errorStyle     string
	tokens         bool
	prefixKeywords bool
	verbose        bool
}

func main() {
	err := run(os.Args[1:], os.Stdin, os.Stdout, os.Stderr)
	switch {
	case err == nil:
	case errors.Is(err, flag.ErrHelp):
	case errors.Is(err, errParseFailed):
		os.Exit(1)
	default:
		fmt.Fprintln(os.Stderr, "sqlparse:", err)
		os.Exit(2)
	}
}

func parseFlags(args []string, stderr io.Writer) (*config, error) {
	cfg := &config{}
	fs := flag.NewFlagSet("sqlparse", flag.ContinueOnError)
	fs.SetOutput(stderr)

	fs.StringVar(&cfg.input, "i", "", "input `file` (default stdin)")
	fs.StringVar(&cfg.input, "input", "", "input `file` (default stdin)")
	fs.StringVar(&cfg.output, "o", "", "append output to `file` (default stdout)")
	fs.StringVar(&cfg.output, "output", "", "append output to `file` (default stdout)")
	fs.BoolVar(&cfg.interactive, "interactive", false, "start an interactive shell")
	fs.StringVar(&cfg.errorStyle, "errors", "plain", "error rendering: plain or table")
	fs.BoolVar(&cfg.tokens, "tokens", false, "print the token stream instead of parsing")
	fs.BoolVar(&cfg.prefixKeywords, "prefix-keywords", false, "let keywords match as prefixes of longer words")
	fs.BoolVar(&cfg.verbose, "v", false, "log parser debug records to stderr")

	if err := fs.Parse(args); err != nil {
		return nil, err
	}
	if fs.NArg() > 0 {
		return nil, fmt.Errorf("unexpected arguments: %v", fs.Args())
	}
	if cfg.errorStyle != "plain" && cfg.errorStyle != "table" {
		return nil, fmt.Errorf("invalid -errors value %q: want plain or table", cfg.errorStyle)
	}
	return cfg, nil
}

func run(args []string, stdin io.Reader, stdout, stderr io.Writer) error {
	cfg, err := parseFlags(args, stderr)
	if err != nil {
		return err
	}

	level := slog.LevelWarn
	if cfg.verbose {
		level = slog.LevelDebug
	}
	logger := slog.New(slog.NewTextHandler(stderr, &slog.HandlerOptions{Level: level}))

	var lexOpts []lexer.Option
	if cfg.prefixKeywords {
		lexOpts = append(lexOpts, lexer.WithPrefixKeywords())
	}

	out := stdout
	if cfg.output != "" {
		f, err := os.OpenFile(cfg.output, os.O_APPEND|os.O_CREATE|os.O_WRONLY, 0o644)
		if err != nil {
			return fmt.Errorf("open output: %w", err)
		}
		defer f.Close()
		out = f
	}

	if cfg.interactive {
		return runShell(cfg, lexOpts, logger, stdin, stdout, out)
	}

	src, err := readInput(cfg.input, stdin)
	if err != nil {
		return err
	}

	if cfg.tokens {
		writeTokens(out, lexer.Tokenize(src, lexOpts...))
		return nil
	}

	result := parser.New(lexer.New(src, lexOpts...), parser.WithLogger(logger)).Parse()
	writeResult(out, result, cfg.errorStyle)
	if !result.OK() {
		return errParseFailed
	}
	return nil
}

func readInput(path string, stdin io.Reader) (string, error) {
	if path == "" {
		data, err := io.ReadAll(stdin)
		if err != nil {
			return "", fmt.Errorf("read stdin: %w", err)
		}
		return string(data), nil
	}
	data, err := os.ReadFile(path)
	if err != nil {
		return "", fmt.Errorf("read input: %w", err)
	}
	return string(data), nil
}

func writeResult(w io.Writer, result *parser.Result, errorStyle string) {
	if len(result.Script.Statements) > 0 {
		fmt.Fprintln(w, ast.DebugScript(result.Script))
	}
	if result.OK() {
		return
	}
	if errorStyle == "table" {
		writeErrorTable(w, result.Errors)
		return
	}
	for _, err := range result.Errors {
		writeError(w, err)
	}
}

// writeError prints one error as
//
//	! (TYPE, "lexeme") at line L, col C:
//	  Error::Kind (expected TYPE)
func writeError(w io.Writer, err *parser.Error) {
	fmt.Fprintf(w, "! %s:\n  Error::%s", err.Token, err.Kind)
	if err.HasExpected() {
		fmt.Fprintf(w, " (expected %s)", err.Expected)
	}
	fmt.Fprintln(w)
}

func writeErrorTable(w io.Writer, errs []*parser.Error) {
	table := tablewriter.NewWriter(w)
	table.SetAutoFormatHeaders(false)
	table.SetAutoWrapText(false)
	table.SetHeader([]string{"Line", "Col", "Kind", "Token", "Lexeme", "Expected"})
	for _, err := range errs {
		expected := ""
		if err.HasExpected() {
			expected = err.Expected.String()
		}
		table.Append([]string{
			strconv.Itoa(err.Token.Line),
			strconv.Itoa(err.Token.Column),
			err.Kind.String(),
			err.Token.Type.String(),
			err.Token.Literal,
			expected,
		})
	}
	table.Render()
}

func writeTokens(w io.Writer, tokens []token.Token) {
	table := tablewriter.NewWriter(w)
	table.SetAutoFormatHeaders(false)
	table.SetAutoWrapText(false)
	table.SetHeader([]string{"Line", "Col", "Type", "Literal"})
	for _, tok := range tokens {
		table.Append([]string{
			strconv.Itoa(tok.Line),
			strconv.Itoa(tok.Column),
			tok.Type.String(),
			tok.Literal,
		})
	}
	table.Render()
}
