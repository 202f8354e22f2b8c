package main

import (
	"go/ast"
	"go/parser"
	"go/token"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestGenerate(t *testing.T) {
	src, err := Generate("ecs", 2, 4)
	require.NoError(t, err)

	file, err := parser.ParseFile(token.NewFileSet(), "gen.go", src, 0)
	require.NoError(t, err)
	assert.Equal(t, "ecs", file.Name.Name)

	types := map[string]bool{}
	ast.Inspect(file, func(n ast.Node) bool {
		if ts, ok := n.(*ast.TypeSpec); ok {
			types[ts.Name.Name] = true
		}
		return true
	})

	for _, name := range []string{
		"Tuple2", "NonPacked2", "NonPackedFilter2", "NonPackedWithId2",
		"Tuple4", "NonPacked4", "NonPackedFilter4", "NonPackedWithId4",
	} {
		assert.True(t, types[name], "missing type %s", name)
	}
	assert.False(t, types["NonPacked5"])
	assert.Contains(t, string(src), "// Code generated by itergen. DO NOT EDIT.")
}

func TestGenerateArityFields(t *testing.T) {
	src, err := Generate("ecs", 10, 10)
	require.NoError(t, err)
	assert.Contains(t, string(src), "V10 *T10")
	assert.Contains(t, string(src), "case 9:")
	assert.NotContains(t, string(src), "Tuple9[")
}

func TestGenerateInvalidRange(t *testing.T) {
	_, err := Generate("ecs", 1, 10)
	assert.Error(t, err)

	_, err = Generate("ecs", 5, 4)
	assert.Error(t, err)
}
