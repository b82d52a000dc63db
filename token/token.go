// Package token defines constants representing the lexical tokens of the
// rdb SQL dialect.
package token

import "fmt"

// Type represents the type of a lexical token.
type Type int

const (
	// ILLEGAL is the zero Type. The lexer never produces it; it marks the
	// absence of a token type.
	ILLEGAL Type = iota

	// Special tokens
	UNKNOWN // any character no rule matches
	EOF

	// Identifiers and literals
	IDENT   // users, age
	INTEGER // 42, -7
	FLOAT   // 1.8, -0.5
	STRING  // "James"

	// Operators
	OPERATION // = != < > <= >=

	// Delimiters
	LPAREN    // (
	RPAREN    // )
	LBRACE    // {
	RBRACE    // }
	COMMA     // ,
	SEMICOLON // ;

	keyword_beg
	CREATE
	SELECT
	INSERT
	DELETE
	DROP
	VALUES
	TABLE
	INT
	REAL
	TEXT
	WHERE
	FROM
	INTO
	keyword_end
)

var tokenNames = map[Type]string{
	ILLEGAL:   "ILLEGAL",
	UNKNOWN:   "UNKNOWN",
	EOF:       "EOF",
	IDENT:     "IDENT",
	INTEGER:   "INTEGER",
	FLOAT:     "FLOAT",
	STRING:    "STRING",
	OPERATION: "OPERATION",
	LPAREN:    "(",
	RPAREN:    ")",
	LBRACE:    "{",
	RBRACE:    "}",
	COMMA:     ",",
	SEMICOLON: ";",
}

var keywords = map[string]Type{
	"CREATE": CREATE,
	"SELECT": SELECT,
	"INSERT": INSERT,
	"DELETE": DELETE,
	"DROP":   DROP,
	"VALUES": VALUES,
	"TABLE":  TABLE,
	"INT":    INT,
	"REAL":   REAL,
	"TEXT":   TEXT,
	"WHERE":  WHERE,
	"FROM":   FROM,
	"INTO":   INTO,
}

// Keywords lists the keyword types in lexer rule order.
var Keywords = []Type{
	CREATE, SELECT, INSERT, DELETE, DROP, VALUES, TABLE,
	INT, REAL, TEXT, WHERE, FROM, INTO,
}

// String returns a string representation of the token type.
func (t Type) String() string {
	if name, ok := tokenNames[t]; ok {
		return name
	}
	for kw, typ := range keywords {
		if typ == t {
			return kw
		}
	}
	return fmt.Sprintf("Type(%d)", int(t))
}

// IsKeyword returns true if the token type is a keyword.
func (t Type) IsKeyword() bool {
	return t > keyword_beg && t < keyword_end
}

// IsLiteral returns true for the value-carrying literal types.
func (t Type) IsLiteral() bool {
	return t == INTEGER || t == FLOAT || t == STRING
}

// IsColumnType reports whether t may appear in a column definition's type slot.
func (t Type) IsColumnType() bool {
	return t == INT || t == REAL || t == TEXT
}

// Token represents a lexical token with position information.
// Line and Column are 1-based and point at the token's first character.
type Token struct {
	Type    Type
	Literal string
	Line    int
	Column  int
}

func (t Token) String() string {
	return fmt.Sprintf("(%s, %q) at line %d, col %d", t.Type, t.Literal, t.Line, t.Column)
}
