package ast

import (
	"strings"
	"testing"
)

// TestScriptMethods tests Script methods
func TestScriptMethods(t *testing.T) {
	script := &Script{}
	if script.String() != "" {
		t.Errorf("empty script should return empty String")
	}

	script = &Script{
		Statements: []Statement{
			&DropTableStatement{Name: "a"},
			&DropTableStatement{Name: "b"},
		},
	}
	if got := script.String(); got != "DROP TABLE a;\nDROP TABLE b;\n" {
		t.Errorf("unexpected script rendering %q", got)
	}
}

// TestValueMethods tests the literal value types
func TestValueMethods(t *testing.T) {
	tests := []struct {
		value    Value
		expected string
	}{
		{&IntegerValue{Value: 42}, "42"},
		{&IntegerValue{Value: -7}, "-7"},
		{&RealValue{Value: 1.8}, "1.8"},
		{&RealValue{Value: 2}, "2.0"},
		{&RealValue{Value: -0.25}, "-0.25"},
		{&TextValue{Value: "\"James\""}, "\"James\""},
	}

	for _, tt := range tests {
		tt.value.valueNode()
		if got := tt.value.String(); got != tt.expected {
			t.Errorf("%T: expected %q, got %q", tt.value, tt.expected, got)
		}
	}
}

// TestOperandMethods tests Operand methods
func TestOperandMethods(t *testing.T) {
	id := Operand{IsIdentifier: true, Value: &TextValue{Value: "age"}}
	if name, ok := id.Name(); !ok || name != "age" {
		t.Errorf("expected identifier age, got %q (%v)", name, ok)
	}

	lit := Operand{Value: &IntegerValue{Value: 22}}
	if _, ok := lit.Name(); ok {
		t.Error("literal operand should not report a name")
	}
	if lit.String() != "22" {
		t.Errorf("expected 22, got %s", lit.String())
	}

	if (Operand{}).String() != "" {
		t.Error("zero operand should render empty")
	}
}

// TestExpressionMethods tests Expression methods
func TestExpressionMethods(t *testing.T) {
	e := &Expression{
		Left:     Operand{IsIdentifier: true, Value: &TextValue{Value: "age"}},
		Operator: ">=",
		Right:    Operand{Value: &IntegerValue{Value: 22}},
	}
	if e.String() != "age >= 22" {
		t.Errorf("expected %q, got %q", "age >= 22", e.String())
	}
}

// TestStatementMethods tests kinds, table names and SQL rendering
func TestStatementMethods(t *testing.T) {
	where := &Expression{
		Left:     Operand{IsIdentifier: true, Value: &TextValue{Value: "name"}},
		Operator: "=",
		Right:    Operand{Value: &TextValue{Value: "\"James\""}},
	}

	tests := []struct {
		stmt     Statement
		kind     Kind
		expected string
	}{
		{
			&CreateTableStatement{Name: "users", Columns: []ColumnDef{
				{Name: "name", Type: TextType},
				{Name: "age", Type: IntType},
				{Name: "meters", Type: RealType},
			}},
			CreateTableKind,
			"CREATE TABLE users (name TEXT, age INT, meters REAL);",
		},
		{
			&InsertStatement{
				Name:    "users",
				Columns: []string{"name", "age"},
				Values:  []Value{&TextValue{Value: "\"James\""}, &IntegerValue{Value: 29}},
			},
			InsertKind,
			"INSERT INTO users (name, age) VALUES (\"James\", 29);",
		},
		{
			&SelectStatement{Name: "users", Columns: []string{"name", "age"}},
			SelectKind,
			"SELECT name age FROM users;",
		},
		{
			&SelectStatement{Name: "users", Columns: []string{"name"}, Where: where},
			SelectKind,
			"SELECT name FROM users WHERE name = \"James\";",
		},
		{
			&DeleteStatement{Name: "users"},
			DeleteKind,
			"DELETE FROM users;",
		},
		{
			&DeleteStatement{Name: "users", Where: where},
			DeleteKind,
			"DELETE FROM users WHERE name = \"James\";",
		},
		{
			&DropTableStatement{Name: "users"},
			DropTableKind,
			"DROP TABLE users;",
		},
	}

	for _, tt := range tests {
		tt.stmt.statementNode()
		if tt.stmt.Kind() != tt.kind {
			t.Errorf("%T: expected kind %v, got %v", tt.stmt, tt.kind, tt.stmt.Kind())
		}
		if tt.stmt.Table() != "users" {
			t.Errorf("%T: expected table users, got %s", tt.stmt, tt.stmt.Table())
		}
		if got := tt.stmt.String(); got != tt.expected {
			t.Errorf("%T: expected %q, got %q", tt.stmt, tt.expected, got)
		}
	}
}

func TestKindAndColumnTypeNames(t *testing.T) {
	if DropTableKind.String() != "DROP TABLE" {
		t.Errorf("unexpected kind name %s", DropTableKind)
	}
	if !strings.HasPrefix(Kind(99).String(), "Kind(") {
		t.Errorf("unexpected name for invalid kind: %s", Kind(99))
	}
	if RealType.String() != "REAL" {
		t.Errorf("unexpected column type name %s", RealType)
	}
}

func TestDebug(t *testing.T) {
	create := Debug(&CreateTableStatement{Name: "users", Columns: []ColumnDef{
		{Name: "name", Type: TextType},
		{Name: "age", Type: IntType},
	}})
	for _, want := range []string{
		"\"create_statement\":",
		"\"table_name\": users,",
		"{ \"column_name\": name, \"type\": TEXT }",
		"{ \"column_name\": age, \"type\": INT }",
	} {
		if !strings.Contains(create, want) {
			t.Errorf("create debug output missing %q:\n%s", want, create)
		}
	}

	insert := Debug(&InsertStatement{
		Name:    "users",
		Columns: []string{"name", "age"},
		Values:  []Value{&TextValue{Value: "\"Johnny\""}},
	})
	if !strings.Contains(insert, "{ \"column_name\": name, \"value\": \"Johnny\" }") {
		t.Errorf("insert debug output missing first pair:\n%s", insert)
	}
	if !strings.Contains(insert, "{ \"column_name\": age }") {
		t.Errorf("insert debug output should show a column without value:\n%s", insert)
	}

	sel := Debug(&SelectStatement{Name: "users", Columns: []string{"meters"}})
	if strings.Contains(sel, "expression") {
		t.Errorf("select without WHERE must not render an expression:\n%s", sel)
	}

	del := Debug(&DeleteStatement{Name: "users", Where: &Expression{
		Left:     Operand{IsIdentifier: true, Value: &TextValue{Value: "age"}},
		Operator: "<",
		Right:    Operand{Value: &RealValue{Value: 1.5}},
	}})
	if !strings.Contains(del, "\"expression\": age < 1.5") {
		t.Errorf("delete debug output missing expression:\n%s", del)
	}

	drop := Debug(&DropTableStatement{Name: "users"})
	if !strings.HasPrefix(drop, "\"drop_statement\":") {
		t.Errorf("unexpected drop debug output:\n%s", drop)
	}
}

func TestDebugScript(t *testing.T) {
	out := DebugScript(&Script{Statements: []Statement{
		&DropTableStatement{Name: "a"},
		&DeleteStatement{Name: "b"},
	}})
	if strings.Count(out, "_statement\":") != 2 {
		t.Errorf("expected two blocks, got:\n%s", out)
	}
}
