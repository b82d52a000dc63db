// Package rdbparser provides a parser for the rdb SQL dialect.
//
// The dialect has five statements: CREATE TABLE, INSERT INTO, SELECT,
// DELETE FROM and DROP TABLE. Parsing recovers from errors statement by
// statement, so one call returns every statement that parsed together with
// every error that was found.
//
// Example usage:
//
//	result := rdbparser.Parse(sql)
//	for _, err := range result.Errors {
//	    // handle errors
//	}
//	// work with result.Script.Statements
package rdbparser

import (
	"github.com/ha1tch/rdbparser/ast"
	"github.com/ha1tch/rdbparser/lexer"
	"github.com/ha1tch/rdbparser/parser"
	"github.com/ha1tch/rdbparser/token"
)

// Parse parses rdb SQL and returns the statements and errors found.
func Parse(input string, opts ...parser.Option) *Result {
	return parser.New(lexer.New(input), opts...).Parse()
}

// Tokenize returns all tokens from the input.
func Tokenize(input string, opts ...lexer.Option) []Token {
	return lexer.Tokenize(input, opts...)
}

// Re-export types for convenience
type (
	Result    = parser.Result
	Error     = parser.Error
	ErrorKind = parser.ErrorKind
	Script    = ast.Script
	Statement = ast.Statement
	Token     = token.Token
)

// Statement types
type (
	CreateTableStatement = ast.CreateTableStatement
	InsertStatement      = ast.InsertStatement
	SelectStatement      = ast.SelectStatement
	DeleteStatement      = ast.DeleteStatement
	DropTableStatement   = ast.DropTableStatement
)

// Helper types
type (
	Expression   = ast.Expression
	Operand      = ast.Operand
	Value        = ast.Value
	IntegerValue = ast.IntegerValue
	RealValue    = ast.RealValue
	TextValue    = ast.TextValue
	ColumnDef    = ast.ColumnDef
)

// Visitor defines an interface for AST visitors.
type Visitor interface {
	Visit(node ast.Node) Visitor
}

// Walk traverses an AST in depth-first order.
func Walk(v Visitor, node ast.Node) {
	if v = v.Visit(node); v == nil {
		return
	}

	switch n := node.(type) {
	case *ast.Script:
		for _, stmt := range n.Statements {
			Walk(v, stmt)
		}
	case *ast.CreateTableStatement:
		for _, col := range n.Columns {
			Walk(v, col)
		}
	case *ast.InsertStatement:
		for _, val := range n.Values {
			Walk(v, val)
		}
	case *ast.SelectStatement:
		if n.Where != nil {
			Walk(v, n.Where)
		}
	case *ast.DeleteStatement:
		if n.Where != nil {
			Walk(v, n.Where)
		}
	case *ast.Expression:
		Walk(v, n.Left)
		Walk(v, n.Right)
	case ast.Operand:
		if n.Value != nil {
			Walk(v, n.Value)
		}
	}
}

type visitorFunc func(ast.Node)

func (f visitorFunc) Visit(node ast.Node) Visitor {
	f(node)
	return f
}

// Inspector provides a convenient way to inspect AST nodes.
type Inspector struct {
	nodes []ast.Node
}

// NewInspector creates a new Inspector for the given script.
func NewInspector(script *ast.Script) *Inspector {
	insp := &Inspector{}
	Walk(visitorFunc(func(n ast.Node) {
		insp.nodes = append(insp.nodes, n)
	}), script)
	return insp
}

// Tables returns the distinct table names the script mentions, in order of
// first appearance.
func (insp *Inspector) Tables() []string {
	var tables []string
	seen := make(map[string]bool)
	for _, node := range insp.nodes {
		stmt, ok := node.(ast.Statement)
		if !ok || seen[stmt.Table()] {
			continue
		}
		seen[stmt.Table()] = true
		tables = append(tables, stmt.Table())
	}
	return tables
}

// ColumnReferences returns every column name in source order: defined
// columns, insert and select columns, and identifier operands.
func (insp *Inspector) ColumnReferences() []string {
	var cols []string
	for _, node := range insp.nodes {
		switch n := node.(type) {
		case ast.ColumnDef:
			cols = append(cols, n.Name)
		case *ast.InsertStatement:
			cols = append(cols, n.Columns...)
		case *ast.SelectStatement:
			cols = append(cols, n.Columns...)
		case ast.Operand:
			if name, ok := n.Name(); ok {
				cols = append(cols, name)
			}
		}
	}
	return cols
}

// FindSelectStatements returns all SELECT statements in the AST.
func (insp *Inspector) FindSelectStatements() []*ast.SelectStatement {
	var stmts []*ast.SelectStatement
	for _, node := range insp.nodes {
		if ss, ok := node.(*ast.SelectStatement); ok {
			stmts = append(stmts, ss)
		}
	}
	return stmts
}

// FindStatements returns all statements of the given kind.
func (insp *Inspector) FindStatements(kind ast.Kind) []ast.Statement {
	var stmts []ast.Statement
	for _, node := range insp.nodes {
		if stmt, ok := node.(ast.Statement); ok && stmt.Kind() == kind {
			stmts = append(stmts, stmt)
		}
	}
	return stmts
}
