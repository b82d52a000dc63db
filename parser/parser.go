// Package parser implements a recursive-descent parser for the rdb SQL
// dialect.
//
// Parsing never stops at the first malformed statement. A failed statement
// is recorded as an *Error and the parser resynchronises at the next
// semicolon; only running out of input in the middle of a statement
// (UnexpectedEndOfInput) ends the parse early.
package parser

import (
	"errors"
	"log/slog"
	"strconv"

	"github.com/ha1tch/rdbparser/ast"
	"github.com/ha1tch/rdbparser/lexer"
	"github.com/ha1tch/rdbparser/token"
)

// Entry sizes of the bracketed lists, terminator included.
const (
	columnDefEntrySize = 3 // name TYPE ,
	identEntrySize     = 2 // name ,
	valueEntrySize     = 2 // literal ,
)

// Result is the outcome of a parse: every statement that parsed, in source
// order, and every error encountered.
type Result struct {
	Script *ast.Script
	Errors []*Error
}

// OK reports whether the parse recorded no errors.
func (r *Result) OK() bool {
	return len(r.Errors) == 0
}

// Fatal reports whether the parse was cut short by the end of input.
func (r *Result) Fatal() bool {
	return len(r.Errors) > 0 && r.Errors[len(r.Errors)-1].Fatal()
}

// Parser represents an rdb SQL parser.
type Parser struct {
	l      *lexer.Lexer
	errors []*Error

	last token.Token // last consumed token

	logger *slog.Logger
}

// Option configures a Parser.
type Option func(*Parser)

// WithLogger sets the logger that receives the parser's debug records.
func WithLogger(logger *slog.Logger) Option {
	return func(p *Parser) {
		p.logger = logger
	}
}

// New creates a new Parser.
func New(l *lexer.Lexer, opts ...Option) *Parser {
	p := &Parser{
		l:      l,
		errors: []*Error{},
		logger: slog.Default(),
	}
	for _, opt := range opts {
		opt(p)
	}
	return p
}

// Errors returns the errors of the most recent Parse call.
func (p *Parser) Errors() []*Error {
	return p.errors
}

func (p *Parser) nextToken() token.Token {
	p.last = p.l.NextToken()
	return p.last
}

func (p *Parser) peekTokenIs(t token.Type) bool {
	return p.l.PeekToken().Type == t
}

// expect consumes one token and returns its literal if it has type t.
func (p *Parser) expect(t token.Type) (string, error) {
	tok := p.nextToken()
	if tok.Type == t {
		return tok.Literal, nil
	}
	if tok.Type == token.EOF {
		return "", newExpectError(tok, UnexpectedEndOfInput, t)
	}
	return "", newExpectError(tok, SyntaxError, t)
}

// Parse parses the whole input. Each call starts a fresh error list, so a Result never shares errors with
// an earlier one. Statements are read from wherever the lexer currently is.
func (p *Parser) Parse() *Result {
	script := &ast.Script{Statements: []ast.Statement{}}
	p.errors = []*Error{}
	p.logger.Debug("parse started")

	for !p.peekTokenIs(token.EOF) {
		stmt, err := p.parseStatement()
		if err == nil {
			script.Statements = append(script.Statements, stmt)
			p.logger.Debug("statement parsed",
				slog.String("kind", stmt.Kind().String()),
				slog.String("table", stmt.Table()))
			continue
		}

		perr := p.record(err)
		if perr.Fatal() {
			p.logger.Debug("parse stopped at end of input")
			break
		}
		if eerr := p.synchronize(perr); eerr != nil {
			p.record(eerr)
			break
		}
	}

	p.logger.Debug("parse finished",
		slog.Int("statements", len(script.Statements)),
		slog.Int("errors", len(p.errors)))
	return &Result{Script: script, Errors: p.errors}
}

func (p *Parser) record(err error) *Error {
	var perr *Error
	if !errors.As(err, &perr) {
		perr = newError(p.last, SyntaxError)
	}
	p.errors = append(p.errors, perr)
	p.logger.Debug("parse error",
		slog.String("kind", perr.Kind.String()),
		slog.Int("line", perr.Token.Line),
		slog.Int("col", perr.Token.Column))
	return perr
}

// synchronize discards tokens up to and including the next semicolon,
// unless the offending token of perr already was one.
func (p *Parser) synchronize(perr *Error) *Error {
	discarded := 0
	for tok := perr.Token; tok.Type != token.SEMICOLON; discarded++ {
		if tok = p.nextToken(); tok.Type == token.EOF {
			p.logger.Debug("input ended during recovery", slog.Int("discarded", discarded))
			return newError(tok, UnexpectedEndOfInput)
		}
	}
	p.logger.Debug("recovered at semicolon", slog.Int("discarded", discarded))
	return nil
}

func (p *Parser) parseStatement() (ast.Statement, error) {
	switch p.l.PeekToken().Type {
	case token.CREATE:
		return p.parseCreateTableStatement()
	case token.INSERT:
		return p.parseInsertStatement()
	case token.SELECT:
		return p.parseSelectStatement()
	case token.DELETE:
		return p.parseDeleteStatement()
	case token.DROP:
		return p.parseDropTableStatement()
	default:
		return nil, newError(p.nextToken(), NotStatement)
	}
}

// -----------------------------------------------------------------------------
// Statements
// -----------------------------------------------------------------------------

// CREATE TABLE name ( col TYPE, ... ) ;
func (p *Parser) parseCreateTableStatement() (ast.Statement, error) {
	if _, err := p.expect(token.CREATE); err != nil {
		return nil, err
	}
	if _, err := p.expect(token.TABLE); err != nil {
		return nil, err
	}
	name, err := p.expect(token.IDENT)
	if err != nil {
		return nil, err
	}

	stmt := &ast.CreateTableStatement{Name: name}
	err = p.parseList(columnDefEntrySize, func(entry []token.Token) error {
		col, err := p.parseColumnDef(entry)
		if err != nil {
			return err
		}
		stmt.Columns = append(stmt.Columns, col)
		return nil
	})
	if err != nil {
		return nil, err
	}

	if _, err := p.expect(token.SEMICOLON); err != nil {
		return nil, err
	}
	return stmt, nil
}

// INSERT INTO name ( col, ... ) VALUES ( literal, ... ) ;
func (p *Parser) parseInsertStatement() (ast.Statement, error) {
	if _, err := p.expect(token.INSERT); err != nil {
		return nil, err
	}
	if _, err := p.expect(token.INTO); err != nil {
		return nil, err
	}
	name, err := p.expect(token.IDENT)
	if err != nil {
		return nil, err
	}

	stmt := &ast.InsertStatement{Name: name}
	err = p.parseList(identEntrySize, func(entry []token.Token) error {
		if entry[0].Type != token.IDENT {
			return newExpectError(entry[0], SyntaxError, token.IDENT)
		}
		stmt.Columns = append(stmt.Columns, entry[0].Literal)
		return nil
	})
	if err != nil {
		return nil, err
	}

	if _, err := p.expect(token.VALUES); err != nil {
		return nil, err
	}
	err = p.parseList(valueEntrySize, func(entry []token.Token) error {
		v, err := p.parseValue(entry[0])
		if err != nil {
			return err
		}
		stmt.Values = append(stmt.Values, v)
		return nil
	})
	if err != nil {
		return nil, err
	}

	if _, err := p.expect(token.SEMICOLON); err != nil {
		return nil, err
	}
	return stmt, nil
}

// SELECT col [col ...] FROM name [WHERE operand op operand] ;
//
// Column names are not comma separated.
func (p *Parser) parseSelectStatement() (ast.Statement, error) {
	if _, err := p.expect(token.SELECT); err != nil {
		return nil, err
	}
	first, err := p.expect(token.IDENT)
	if err != nil {
		return nil, err
	}

	stmt := &ast.SelectStatement{Columns: []string{first}}
	for p.peekTokenIs(token.IDENT) {
		stmt.Columns = append(stmt.Columns, p.nextToken().Literal)
	}

	stmt.Name, stmt.Where, err = p.parseFromClause()
	if err != nil {
		return nil, err
	}

	if _, err := p.expect(token.SEMICOLON); err != nil {
		return nil, err
	}
	return stmt, nil
}

// DELETE FROM name [WHERE operand op operand] ;
func (p *Parser) parseDeleteStatement() (ast.Statement, error) {
	if _, err := p.expect(token.DELETE); err != nil {
		return nil, err
	}

	stmt := &ast.DeleteStatement{}
	var err error
	stmt.Name, stmt.Where, err = p.parseFromClause()
	if err != nil {
		return nil, err
	}

	if _, err := p.expect(token.SEMICOLON); err != nil {
		return nil, err
	}
	return stmt, nil
}

// DROP TABLE name ;
func (p *Parser) parseDropTableStatement() (ast.Statement, error) {
	if _, err := p.expect(token.DROP); err != nil {
		return nil, err
	}
	if _, err := p.expect(token.TABLE); err != nil {
		return nil, err
	}
	name, err := p.expect(token.IDENT)
	if err != nil {
		return nil, err
	}
	if _, err := p.expect(token.SEMICOLON); err != nil {
		return nil, err
	}
	return &ast.DropTableStatement{Name: name}, nil
}

// parseFromClause parses FROM name [WHERE operand op operand]. The returned
// expression is nil when there is no WHERE clause.
func (p *Parser) parseFromClause() (string, *ast.Expression, error) {
	if _, err := p.expect(token.FROM); err != nil {
		return "", nil, err
	}
	name, err := p.expect(token.IDENT)
	if err != nil {
		return "", nil, err
	}
	if !p.peekTokenIs(token.WHERE) {
		return name, nil, nil
	}
	p.nextToken()

	where, err := p.parseExpression()
	if err != nil {
		return "", nil, err
	}
	return name, where, nil
}

// -----------------------------------------------------------------------------
// Lists
// -----------------------------------------------------------------------------

// parseList parses a parenthesised list. Each entry is the run of tokens up
// to and including the next comma or closing parenthesis, and must be
// exactly size tokens long; entry validates and stores it.
func (p *Parser) parseList(size int, entry func([]token.Token) error) error {
	if _, err := p.expect(token.LPAREN); err != nil {
		return err
	}

	for {
		group, err := p.readListEntry()
		if err != nil {
			return err
		}
		if len(group) != size {
			// First token that broke the shape: the surplus token of a
			// long entry or the early terminator of a short one.
			return newError(group[min(len(group), size)-1], WrongListDefinition)
		}
		if err := entry(group); err != nil {
			return err
		}
		if group[len(group)-1].Type == token.RPAREN {
			return nil
		}
	}
}

func (p *Parser) readListEntry() ([]token.Token, error) {
	var group []token.Token
	for {
		tok := p.nextToken()
		group = append(group, tok)
		switch tok.Type {
		case token.EOF:
			return nil, newError(tok, UnexpectedEndOfInput)
		case token.COMMA, token.RPAREN:
			return group, nil
		}
	}
}

func (p *Parser) parseColumnDef(entry []token.Token) (ast.ColumnDef, error) {
	if entry[0].Type != token.IDENT {
		return ast.ColumnDef{}, newExpectError(entry[0], SyntaxError, token.IDENT)
	}

	if !entry[1].Type.IsColumnType() {
		return ast.ColumnDef{}, newError(entry[1], TypeSyntaxError)
	}

	col := ast.ColumnDef{Name: entry[0].Literal, Type: ast.TextType}
	switch entry[1].Type {
	case token.INT:
		col.Type = ast.IntType
	case token.REAL:
		col.Type = ast.RealType
	}
	return col, nil
}

// -----------------------------------------------------------------------------
// Expressions and values
// -----------------------------------------------------------------------------

func (p *Parser) parseExpression() (*ast.Expression, error) {
	left, err := p.parseOperand()
	if err != nil {
		return nil, err
	}
	op, err := p.expect(token.OPERATION)
	if err != nil {
		return nil, err
	}
	right, err := p.parseOperand()
	if err != nil {
		return nil, err
	}
	return &ast.Expression{Left: left, Operator: op, Right: right}, nil
}

func (p *Parser) parseOperand() (ast.Operand, error) {
	tok := p.nextToken()
	if tok.Type == token.IDENT {
		return ast.Operand{IsIdentifier: true, Value: &ast.TextValue{Value: tok.Literal}}, nil
	}
	v, err := p.parseValue(tok)
	if err != nil {
		return ast.Operand{}, err
	}
	return ast.Operand{Value: v}, nil
}

// parseValue converts a literal token. Text keeps its quotes.
func (p *Parser) parseValue(tok token.Token) (ast.Value, error) {
	if !tok.Type.IsLiteral() {
		if tok.Type == token.EOF {
			return nil, newError(tok, UnexpectedEndOfInput)
		}
		return nil, newError(tok, VarSyntaxError)
	}

	switch tok.Type {
	case token.INTEGER:
		v, err := strconv.ParseInt(tok.Literal, 10, 64)
		if err != nil {
			return nil, numberError(tok, err)
		}
		return &ast.IntegerValue{Value: v}, nil
	case token.FLOAT:
		v, err := strconv.ParseFloat(tok.Literal, 64)
		if err != nil {
			return nil, numberError(tok, err)
		}
		return &ast.RealValue{Value: v}, nil
	}
	return &ast.TextValue{Value: tok.Literal}, nil
}

func numberError(tok token.Token, err error) *Error {
	if errors.Is(err, strconv.ErrRange) {
		return newExpectError(tok, VarOutOfRange, tok.Type)
	}
	return newExpectError(tok, IncorrectVarType, tok.Type)
}
