package repository

import (
	"fmt"
	"strings"
)

// setClause accumulates "column = $n" fragments for partial updates.
type setClause struct {
	parts []string
	args  []interface{}
}

func newSetClause(id string) *setClause {
	return &setClause{args: []interface{}{id}}
}

func (s *setClause) add(column string, value interface{}) {
	s.args = append(s.args, value)
	s.parts = append(s.parts, fmt.Sprintf("%s = $%d", column, len(s.args)))
}

func (s *setClause) empty() bool { return len(s.parts) == 0 }

func (s *setClause) String() string { return strings.Join(s.parts, ", ") }
