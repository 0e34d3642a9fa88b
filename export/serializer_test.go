package export

import (
	"encoding/json"
	"fmt"
	"regexp"
	"strings"
	"testing"

	"github.com/adnsv/awesome/model"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func testTable() *model.MacroTable {
	t := model.NewMacroTable()
	t.Set("R", `\mathbb{R}`)
	t.Set("abs", `\left|#1\right|`)
	t.Set("inner", `\langle #1, #2\rangle`)
	t.Set("ga", `\alpha`)
	return t
}

func TestPackageSerializer(t *testing.T) {
	buf, err := PackageSerializer{}.Serialize(testTable())
	require.NoError(t, err)

	want := `\ProvidesPackage{awesome}
\RequirePackage{amsmath}
\providecommand{\R}{\mathbb{R}}
\renewcommand{\R}{\mathbb{R}}
\providecommand{\abs}[1]{\left|#1\right|}
\renewcommand{\abs}[1]{\left|#1\right|}
\providecommand{\inner}[2]{\langle #1, #2\rangle}
\renewcommand{\inner}[2]{\langle #1, #2\rangle}
\providecommand{\ga}{\alpha}
\renewcommand{\ga}{\alpha}
`
	assert.Equal(t, want, string(buf))
}

func TestPackageSerializerDefinesEveryMacroTwice(t *testing.T) {
	tbl := testTable()
	buf, err := PackageSerializer{}.Serialize(tbl)
	require.NoError(t, err)
	out := string(buf)

	tbl.Each(func(name, expansion string) {
		re := regexp.MustCompile(`(?m)^\\(provide|renew)command\{\\` + regexp.QuoteMeta(name) + `\}(\[(\d+)\])?\{`)
		matches := re.FindAllStringSubmatch(out, -1)
		require.Len(t, matches, 2, name)
		assert.Equal(t, "provide", matches[0][1])
		assert.Equal(t, "renew", matches[1][1])

		argc := model.Arity(expansion)
		for _, m := range matches {
			if argc == 0 {
				assert.Empty(t, m[2], name)
			} else {
				assert.Equal(t, fmt.Sprint(argc), m[3], name)
			}
		}
	})
}

func TestSnippetSerializer(t *testing.T) {
	buf, err := SnippetSerializer{}.Serialize(testTable())
	require.NoError(t, err)

	assert.JSONEq(t, `{
		"R": "\\mathbb{R}",
		"abs": ["\\left|#1\\right|", 1],
		"inner": ["\\langle #1, #2\\rangle", 2],
		"ga": "\\alpha"
	}`, string(buf))

	// document order follows the table
	s := string(buf)
	assert.Less(t, strings.Index(s, `"R"`), strings.Index(s, `"abs"`))
	assert.Less(t, strings.Index(s, `"inner"`), strings.Index(s, `"ga"`))
}

func TestSnippetSerializerKeepsMarkup(t *testing.T) {
	tbl := model.NewMacroTable()
	tbl.Set("pmat", `\begin{pmatrix}#1 & #2\end{pmatrix}`)
	tbl.Set("lt", `a < b > c`)

	buf, err := SnippetSerializer{}.Serialize(tbl)
	require.NoError(t, err)

	assert.Equal(t, `{"pmat":["\\begin{pmatrix}#1 & #2\\end{pmatrix}",2],"lt":"a < b > c"}`, string(buf))
	assert.NotContains(t, string(buf), `\u0026`)
}

func TestSnippetSerializerRoundTrip(t *testing.T) {
	tbl := testTable()
	buf, err := SnippetSerializer{}.Serialize(tbl)
	require.NoError(t, err)

	doc := map[string]any{}
	require.NoError(t, json.Unmarshal(buf, &doc))
	assert.Len(t, doc, tbl.Len())

	tbl.Each(func(name, expansion string) {
		argc := model.Arity(expansion)
		if argc == 0 {
			assert.Equal(t, expansion, doc[name])
			return
		}
		assert.Equal(t, []any{expansion, float64(argc)}, doc[name])
	})
}

func TestFlashcardSerializer(t *testing.T) {
	tbl := testTable()
	buf, err := FlashcardSerializer{}.Serialize(tbl)
	require.NoError(t, err)

	lines := strings.Split(strings.TrimSuffix(string(buf), "\n"), "\n")
	require.Len(t, lines, tbl.Len())

	i := 0
	tbl.Each(func(name, expansion string) {
		assert.Equal(t, `\def{`+name+`}{`+expansion+`}`, lines[i])
		i++
	})
}

func TestEmptyTable(t *testing.T) {
	tbl := model.NewMacroTable()

	buf, err := PackageSerializer{}.Serialize(tbl)
	require.NoError(t, err)
	assert.Equal(t, packageHeader, string(buf))

	buf, err = SnippetSerializer{}.Serialize(tbl)
	require.NoError(t, err)
	assert.JSONEq(t, `{}`, string(buf))

	buf, err = FlashcardSerializer{}.Serialize(tbl)
	require.NoError(t, err)
	assert.Empty(t, buf)
}
