package database

import "strings"

// TxBuilder accumulates SurrealQL statements and wraps them in a single
// BEGIN/COMMIT transaction. Statements share one variable map, supplied at
// execution time.
//
//	tb := NewTxBuilder()
//	tb.Add("LET $hits = (SELECT id FROM type::table($tb) WHERE bgg_id = $f0)")
//	tb.Add("IF array::len($hits) = 0 { CREATE ... } ELSE { UPDATE ... }")
//	query := tb.Build()
//
// All statements succeed or none are applied.
type TxBuilder struct {
	statements []string
}

// NewTxBuilder creates a new transaction builder
func NewTxBuilder() *TxBuilder {
	return &TxBuilder{statements: make([]string, 0, 2)}
}

// Add appends a statement. A trailing semicolon is optional.
func (tb *TxBuilder) Add(statement string) {
	statement = strings.TrimSpace(statement)
	statement = strings.TrimSuffix(statement, ";")
	if statement == "" {
		return
	}
	tb.statements = append(tb.statements, statement)
}

// Len returns the number of statements added so far.
func (tb *TxBuilder) Len() int {
	return len(tb.statements)
}

// Build returns the complete transaction query. An empty builder yields an
// empty string.
func (tb *TxBuilder) Build() string {
	if len(tb.statements) == 0 {
		return ""
	}
	var b strings.Builder
	b.WriteString("BEGIN TRANSACTION;\n")
	for _, stmt := range tb.statements {
		b.WriteString(stmt)
		b.WriteString(";\n")
	}
	b.WriteString("COMMIT TRANSACTION;")
	return b.String()
}
