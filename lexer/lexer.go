// Package lexer implements a lexical scanner for the rdb SQL dialect.
//
// Tokens are recognised by an ordered table of anchored rules: at every
// position the first rule that matches wins, and a character no rule
// matches becomes a single UNKNOWN token. The lexer never fails.
package lexer

import (
	"regexp"
	"unicode/utf8"

	"github.com/ha1tch/rdbparser/token"
)

type rule struct {
	typ token.Type
	re  *regexp.Regexp
}

// rules is read-only after package initialisation. The order is significant.
var rules = buildRules()

func buildRules() []rule {
	rs := []rule{
		{typ: token.STRING, re: regexp.MustCompile(`^"[^"\n]*"`)},
		{typ: token.FLOAT, re: regexp.MustCompile(`^[-+]?(?:0|[1-9][0-9]*)\.[0-9]+`)},
		{typ: token.INTEGER, re: regexp.MustCompile(`^[-+]?(?:0|[1-9][0-9]*)`)},
	}
	for _, kw := range token.Keywords {
		rs = append(rs, rule{typ: kw, re: regexp.MustCompile(`^(?i:` + kw.String() + `)`)})
	}
	return append(rs,
		rule{typ: token.IDENT, re: regexp.MustCompile(`^[A-Za-z][A-Za-z0-9]*`)},
		rule{typ: token.OPERATION, re: regexp.MustCompile(`^(?:>=|<=|!=|=|<|>)`)},
		rule{typ: token.LPAREN, re: regexp.MustCompile(`^\(`)},
		rule{typ: token.RPAREN, re: regexp.MustCompile(`^\)`)},
		rule{typ: token.LBRACE, re: regexp.MustCompile(`^\{`)},
		rule{typ: token.RBRACE, re: regexp.MustCompile(`^\}`)},
		rule{typ: token.SEMICOLON, re: regexp.MustCompile(`^;`)},
		rule{typ: token.COMMA, re: regexp.MustCompile(`^,`)},
	)
}

// cursor is a scan position in the input.
type cursor struct {
	position int // byte offset
	line     int
	column   int
}

// Lexer represents a lexical scanner over an in-memory input.
type Lexer struct {
	input string
	cursor

	prefixKeywords bool
}

// Option configures a Lexer.
type Option func(*Lexer)

// WithPrefixKeywords disables the word-boundary check after keywords, so a
// keyword also matches as the prefix of a longer word ("INTO" lexes as INT
// followed by IDENT "O").
func WithPrefixKeywords() Option {
	return func(l *Lexer) {
		l.prefixKeywords = true
	}
}

// New creates a new Lexer for the given input.
func New(input string, opts ...Option) *Lexer {
	l := &Lexer{
		input:  input,
		cursor: cursor{line: 1, column: 1},
	}
	for _, opt := range opts {
		opt(l)
	}
	return l
}

// PeekToken returns the next token without consuming it. Repeated calls
// return equal tokens.
func (l *Lexer) PeekToken() token.Token {
	tok, _ := l.scan()
	return tok
}

// NextToken consumes and returns the next token. At the end of input it
// keeps returning EOF.
func (l *Lexer) NextToken() token.Token {
	tok, next := l.scan()
	l.cursor = next
	return tok
}

// scan reads the token at the current cursor and returns it together with
// the cursor that follows it. The lexer itself is not modified.
func (l *Lexer) scan() (token.Token, cursor) {
	c := l.skipWhitespace(l.cursor)
	if c.position >= len(l.input) {
		return token.Token{Type: token.EOF, Line: c.line, Column: c.column}, c
	}

	rest := l.input[c.position:]
	for _, r := range rules {
		loc := r.re.FindStringIndex(rest)
		if loc == nil {
			continue
		}
		if r.typ.IsKeyword() && !l.prefixKeywords && continuesIdent(rest, loc[1]) {
			continue
		}
		return l.newToken(r.typ, rest[:loc[1]], c), advance(c, rest[:loc[1]])
	}

	_, size := utf8.DecodeRuneInString(rest)
	return l.newToken(token.UNKNOWN, rest[:size], c), advance(c, rest[:size])
}

func (l *Lexer) newToken(tokenType token.Type, literal string, c cursor) token.Token {
	return token.Token{
		Type:    tokenType,
		Literal: literal,
		Line:    c.line,
		Column:  c.column,
	}
}

func (l *Lexer) skipWhitespace(c cursor) cursor {
	for c.position < len(l.input) && isWhitespace(l.input[c.position]) {
		c = advance(c, l.input[c.position:c.position+1])
	}
	return c
}

// advance moves c past text, one column per character; a newline starts a
// new line at column 1.
func advance(c cursor, text string) cursor {
	c.position += len(text)
	for _, ch := range text {
		if ch == '\n' {
			c.line++
			c.column = 1
		} else {
			c.column++
		}
	}
	return c
}

func continuesIdent(s string, i int) bool {
	return i < len(s) && (isLetter(s[i]) || isDigit(s[i]))
}

func isWhitespace(ch byte) bool {
	return ch == ' ' || ch == '\t' || ch == '\n' || ch == '\r'
}

func isLetter(ch byte) bool {
	return ch >= 'a' && ch <= 'z' || ch >= 'A' && ch <= 'Z'
}

func isDigit(ch byte) bool {
	return ch >= '0' && ch <= '9'
}

// Tokenize returns all tokens from the input as a slice, ending with EOF.
func Tokenize(input string, opts ...Option) []token.Token {
	l := New(input, opts...)
	var tokens []token.Token

	for {
		tok := l.NextToken()
		tokens = append(tokens, tok)
		if tok.Type == token.EOF {
			break
		}
	}

	return tokens
}

// RuleOrder returns the token types of the rule table in match order.
func RuleOrder() []token.Type {
	order := make([]token.Type, len(rules))
	for i, r := range rules {
		order[i] = r.typ
	}
	return order
}
