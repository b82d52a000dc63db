package main

import (
	"errors"
	"fmt"
	"io"
	"log/slog"
	"strings"

	"github.com/chzyer/readline"

	"github.com/ha1tch/rdbparser/lexer"
	"github.com/ha1tch/rdbparser/parser"
)

const (
	shellPrompt    = "rdb> "
	continuePrompt = "...> "
)

// statementBuffer collects shell lines until they end with a semicolon.
type statementBuffer struct {
	lines []string
}

// add appends line and returns the buffered source once it is complete.
func (b *statementBuffer) add(line string) (string, bool) {
	trimmed := strings.TrimSpace(line)
	if trimmed == "" && !b.pending() {
		return "", false
	}
	b.lines = append(b.lines, line)
	if !strings.HasSuffix(trimmed, ";") {
		return "", false
	}
	src := strings.Join(b.lines, "\n")
	b.reset()
	return src, true
}

func (b *statementBuffer) pending() bool {
	return len(b.lines) > 0
}

func (b *statementBuffer) reset() {
	b.lines = nil
}

// runShell reads statements interactively. Prompts go to stdout, results to
// out. Ctrl-C drops a half-typed statement, or leaves the shell when there is
// none; Ctrl-D leaves the shell.
func runShell(cfg *config, lexOpts []lexer.Option, logger *slog.Logger, stdin io.Reader, stdout, out io.Writer) error {
	rl, err := readline.NewEx(&readline.Config{
		Prompt:          shellPrompt,
		InterruptPrompt: "^C",
		EOFPrompt:       "exit",
		Stdin:           io.NopCloser(stdin),
		Stdout:          stdout,
	})
	if err != nil {
		return fmt.Errorf("start shell: %w", err)
	}
	defer rl.Close()

	var buf statementBuffer
	for {
		line, err := rl.Readline()
		switch {
		case errors.Is(err, readline.ErrInterrupt):
			if !buf.pending() {
				return nil
			}
			buf.reset()
			rl.SetPrompt(shellPrompt)
			continue
		case errors.Is(err, io.EOF):
			return nil
		case err != nil:
			return fmt.Errorf("read line: %w", err)
		}

		src, ok := buf.add(line)
		if !ok {
			if buf.pending() {
				rl.SetPrompt(continuePrompt)
			}
			continue
		}
		rl.SetPrompt(shellPrompt)

		if cfg.tokens {
			writeTokens(out, lexer.Tokenize(src, lexOpts...))
			continue
		}
		result := parser.New(lexer.New(src, lexOpts...), parser.WithLogger(logger)).Parse()
		writeResult(out, result, cfg.errorStyle)
	}
}
