// Package ast defines the Abstract Syntax Tree nodes for the rdb SQL dialect.
package ast

import (
	"strconv"
	"strings"
)

// Node represents a node in the AST.
type Node interface {
	String() string
}

// Statement represents one parsed top-level command. The set of
// implementations is closed: CreateTableStatement, InsertStatement,
// SelectStatement, DeleteStatement and DropTableStatement.
type Statement interface {
	Node
	Kind() Kind
	Table() string
	statementNode()
}

// Kind identifies the concrete type of a Statement.
type Kind int

const (
	CreateTableKind Kind = iota
	InsertKind
	SelectKind
	DeleteKind
	DropTableKind
)

func (k Kind) String() string {
	switch k {
	case CreateTableKind:
		return "CREATE TABLE"
	case InsertKind:
		return "INSERT"
	case SelectKind:
		return "SELECT"
	case DeleteKind:
		return "DELETE"
	case DropTableKind:
		return "DROP TABLE"
	default:
		return "Kind(" + strconv.Itoa(int(k)) + ")"
	}
}

// Script is the root node: the statements of one input, in source order.
type Script struct {
	Statements []Statement
}

func (s *Script) String() string {
	var out strings.Builder
	for _, stmt := range s.Statements {
		out.WriteString(stmt.String())
		out.WriteString("\n")
	}
	return out.String()
}

// -----------------------------------------------------------------------------
// Values
// -----------------------------------------------------------------------------

// Value is a literal value: an IntegerValue, RealValue or TextValue.
type Value interface {
	Node
	valueNode()
}

// IntegerValue is a 64-bit signed integer literal.
type IntegerValue struct {
	Value int64
}

func (iv *IntegerValue) valueNode()     {}
func (iv *IntegerValue) String() string { return strconv.FormatInt(iv.Value, 10) }

// RealValue is a 64-bit floating-point literal.
type RealValue struct {
	Value float64
}

func (rv *RealValue) valueNode() {}

// String always renders a decimal point so the text lexes as a real again.
func (rv *RealValue) String() string {
	s := strconv.FormatFloat(rv.Value, 'f', -1, 64)
	if !strings.Contains(s, ".") {
		s += ".0"
	}
	return s
}

// TextValue is a text literal. Value keeps the surrounding double quotes
// exactly as they appeared in the input.
type TextValue struct {
	Value string
}

func (tv *TextValue) valueNode()     {}
func (tv *TextValue) String() string { return tv.Value }

// -----------------------------------------------------------------------------
// Expressions
// -----------------------------------------------------------------------------

// Operand is one side of a comparison. When IsIdentifier is set, Value is a
// *TextValue holding the unresolved identifier name.
type Operand struct {
	IsIdentifier bool
	Value        Value
}

func (o Operand) String() string {
	if o.Value == nil {
		return ""
	}
	return o.Value.String()
}

// Name returns the identifier name of an identifier operand.
func (o Operand) Name() (string, bool) {
	if !o.IsIdentifier {
		return "", false
	}
	tv, ok := o.Value.(*TextValue)
	if !ok {
		return "", false
	}
	return tv.Value, true
}

// Expression is a single binary comparison.
type Expression struct {
	Left     Operand
	Operator string // one of = != < > <= >=
	Right    Operand
}

func (e *Expression) String() string {
	return e.Left.String() + " " + e.Operator + " " + e.Right.String()
}

// -----------------------------------------------------------------------------
// Column definitions
// -----------------------------------------------------------------------------

// ColumnType is the declared type of a column.
type ColumnType int

const (
	IntType ColumnType = iota
	RealType
	TextType
)

func (ct ColumnType) String() string {
	switch ct {
	case IntType:
		return "INT"
	case RealType:
		return "REAL"
	case TextType:
		return "TEXT"
	default:
		return "ColumnType(" + strconv.Itoa(int(ct)) + ")"
	}
}

// ColumnDef is one column of a CREATE TABLE statement.
type ColumnDef struct {
	Name string
	Type ColumnType
}

func (cd ColumnDef) String() string {
	return cd.Name + " " + cd.Type.String()
}

// -----------------------------------------------------------------------------
// Statements
// -----------------------------------------------------------------------------

// CreateTableStatement represents a CREATE TABLE statement.
type CreateTableStatement struct {
	Name    string
	Columns []ColumnDef
}

func (ct *CreateTableStatement) statementNode() {}
func (ct *CreateTableStatement) Kind() Kind     { return CreateTableKind }
func (ct *CreateTableStatement) Table() string  { return ct.Name }
func (ct *CreateTableStatement) String() string {
	var out strings.Builder
	out.WriteString("CREATE TABLE ")
	out.WriteString(ct.Name)
	out.WriteString(" (")
	for i, col := range ct.Columns {
		if i > 0 {
			out.WriteString(", ")
		}
		out.WriteString(col.String())
	}
	out.WriteString(");")
	return out.String()
}

// InsertStatement represents an INSERT INTO statement. The number of
// columns and values is not required to match.
type InsertStatement struct {
	Name    string
	Columns []string
	Values  []Value
}

func (is *InsertStatement) statementNode() {}
func (is *InsertStatement) Kind() Kind     { return InsertKind }
func (is *InsertStatement) Table() string  { return is.Name }
func (is *InsertStatement) String() string {
	var out strings.Builder
	out.WriteString("INSERT INTO ")
	out.WriteString(is.Name)
	out.WriteString(" (")
	out.WriteString(strings.Join(is.Columns, ", "))
	out.WriteString(") VALUES (")
	for i, v := range is.Values {
		if i > 0 {
			out.WriteString(", ")
		}
		out.WriteString(v.String())
	}
	out.WriteString(");")
	return out.String()
}

// SelectStatement represents a SELECT statement. Where is nil when the
// statement has no WHERE clause.
type SelectStatement struct {
	Name    string
	Columns []string
	Where   *Expression
}

func (ss *SelectStatement) statementNode() {}
func (ss *SelectStatement) Kind() Kind     { return SelectKind }
func (ss *SelectStatement) Table() string  { return ss.Name }
func (ss *SelectStatement) String() string {
	var out strings.Builder
	out.WriteString("SELECT ")
	out.WriteString(strings.Join(ss.Columns, " "))
	out.WriteString(" FROM ")
	out.WriteString(ss.Name)
	if ss.Where != nil {
		out.WriteString(" WHERE ")
		out.WriteString(ss.Where.String())
	}
	out.WriteString(";")
	return out.String()
}

// DeleteStatement represents a DELETE FROM statement. Where is nil when the
// statement has no WHERE clause.
type DeleteStatement struct {
	Name  string
	Where *Expression
}

func (ds *DeleteStatement) statementNode() {}
func (ds *DeleteStatement) Kind() Kind     { return DeleteKind }
func (ds *DeleteStatement) Table() string  { return ds.Name }
func (ds *DeleteStatement) String() string {
	var out strings.Builder
	out.WriteString("DELETE FROM ")
	out.WriteString(ds.Name)
	if ds.Where != nil {
		out.WriteString(" WHERE ")
		out.WriteString(ds.Where.String())
	}
	out.WriteString(";")
	return out.String()
}

// DropTableStatement represents a DROP TABLE statement.
type DropTableStatement struct {
	Name string
}

func (dt *DropTableStatement) statementNode() {}
func (dt *DropTableStatement) Kind() Kind     { return DropTableKind }
func (dt *DropTableStatement) Table() string  { return dt.Name }
func (dt *DropTableStatement) String() string {
	return "DROP TABLE " + dt.Name + ";"
}
