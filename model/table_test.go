package model

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestMacroTableOrder(t *testing.T) {
	tbl := NewMacroTable()
	tbl.Set("b", "1")
	tbl.Set("a", "2")
	tbl.Set("c", "3")
	tbl.Set("b", "4")

	assert.Equal(t, 3, tbl.Len())
	assert.Equal(t, []string{"b", "a", "c"}, tbl.Keys())

	v, ok := tbl.Get("b")
	assert.True(t, ok)
	assert.Equal(t, "4", v)

	_, ok = tbl.Get("x")
	assert.False(t, ok)
}

func TestArity(t *testing.T) {
	assert.Equal(t, 0, Arity(`\mathbb{R}`))
	assert.Equal(t, 1, Arity(`\left|#1\right|`))
	assert.Equal(t, 2, Arity(`\langle #1, #2\rangle`))
	assert.Equal(t, 0, Arity(""))
}
