package model

import (
	"strings"

	orderedmap "github.com/wk8/go-ordered-map/v2"
)

// MacroTable maps macro names to their expansions in insertion order.
// Setting an existing name replaces the expansion but keeps its position.
type MacroTable struct {
	m *orderedmap.OrderedMap[string, string]
}

// NewMacroTable returns an empty table.
func NewMacroTable() *MacroTable {
	return &MacroTable{m: orderedmap.New[string, string]()}
}

// Set adds a macro or replaces the expansion of an existing one in place.
func (t *MacroTable) Set(name, expansion string) {
	t.m.Set(name, expansion)
}

func (t *MacroTable) Get(name string) (string, bool) {
	return t.m.Get(name)
}

// Len returns the number of macros.
func (t *MacroTable) Len() int {
	return t.m.Len()
}

// Each calls fn for every macro, oldest first.
func (t *MacroTable) Each(fn func(name, expansion string)) {
	for p := t.m.Oldest(); p != nil; p = p.Next() {
		fn(p.Key, p.Value)
	}
}

// Keys returns the macro names in table order.
func (t *MacroTable) Keys() []string {
	keys := make([]string, 0, t.m.Len())
	t.Each(func(name, _ string) {
		keys = append(keys, name)
	})
	return keys
}

// Arity returns the number of '#' placeholder markers in an expansion.
func Arity(expansion string) int {
	return strings.Count(expansion, "#")
}
