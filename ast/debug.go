package ast

import (
	"strings"
)

// Debug renders a statement as an indented, JSON-like block for display.
// Field names are quoted, table and column names are not, and no escaping
// is applied: the output is meant for people, not for machines.
func Debug(stmt Statement) string {
	var out strings.Builder
	switch s := stmt.(type) {
	case *CreateTableStatement:
		out.WriteString("\"create_statement\":\n\t{\n\t")
		out.WriteString("\"table_name\": " + s.Name + ",\n\t")
		out.WriteString("\"column_def_seq\": [\n\t")
		for _, col := range s.Columns {
			out.WriteString("\t{ \"column_name\": " + col.Name + ", \"type\": " + col.Type.String() + " }\n\t")
		}
		out.WriteString("] }")
	case *InsertStatement:
		out.WriteString("\"insert_statement\":\n\t{\n\t")
		out.WriteString("\"table_name\": " + s.Name + ",\n\t")
		out.WriteString("\"column_write_seq\": [\n\t")
		n := len(s.Columns)
		if len(s.Values) > n {
			n = len(s.Values)
		}
		for i := 0; i < n; i++ {
			var fields []string
			if i < len(s.Columns) {
				fields = append(fields, "\"column_name\": "+s.Columns[i])
			}
			if i < len(s.Values) {
				fields = append(fields, "\"value\": "+s.Values[i].String())
			}
			out.WriteString("\t{ " + strings.Join(fields, ", ") + " }\n\t")
		}
		out.WriteString("] }")
	case *SelectStatement:
		out.WriteString("\"select_statement\":\n\t{\n\t")
		out.WriteString("\"table_name\": " + s.Name + ",\n\t")
		out.WriteString("\"column_name_seq\": [\n\t")
		for _, col := range s.Columns {
			out.WriteString("\t{ \"column_name\": " + col + " }\n\t")
		}
		out.WriteString("]")
		if s.Where != nil {
			out.WriteString(",\n\t\"expression\": " + s.Where.String() + "\n\t")
		} else {
			out.WriteString(" ")
		}
		out.WriteString("}")
	case *DeleteStatement:
		out.WriteString("\"delete_statement\":\n\t{\n\t")
		out.WriteString("\"table_name\": " + s.Name)
		if s.Where != nil {
			out.WriteString(",\n\t\"expression\": " + s.Where.String())
		}
		out.WriteString("\n\t}")
	case *DropTableStatement:
		out.WriteString("\"drop_statement\":\n\t{\n\t")
		out.WriteString("\"table_name\": " + s.Name + "\n\t")
		out.WriteString("}")
	}
	return out.String()
}

// DebugScript renders every statement of the script with Debug, one block
// per statement.
func DebugScript(script *Script) string {
	blocks := make([]string, 0, len(script.Statements))
	for _, stmt := range script.Statements {
		blocks = append(blocks, Debug(stmt))
	}
	return strings.Join(blocks, "\n")
}
