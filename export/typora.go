package export

import (
	"bytes"
	"encoding/json"

	"github.com/adnsv/awesome/model"
)

// SnippetSerializer produces the Typora math autocomplete document: a JSON
// object whose values are the expansion, or [expansion, argc] for macros
// that take arguments. Alignment ampersands and angle brackets are kept
// verbatim rather than HTML-escaped.
type SnippetSerializer struct{}

func (SnippetSerializer) Serialize(t *model.MacroTable) ([]byte, error) {
	out := &bytes.Buffer{}
	enc := json.NewEncoder(out)
	enc.SetEscapeHTML(false)

	var err error
	encode := func(v any) {
		if err == nil {
			// Encode terminates every value with a newline
			if err = enc.Encode(v); err == nil {
				out.Truncate(out.Len() - 1)
			}
		}
	}

	out.WriteByte('{')
	sep := ""
	t.Each(func(name, expansion string) {
		out.WriteString(sep)
		encode(name)
		out.WriteByte(':')
		encode(snippetValue(expansion))
		sep = ","
	})
	out.WriteByte('}')
	if err != nil {
		return nil, err
	}
	return out.Bytes(), nil
}

func snippetValue(expansion string) any {
	if argc := model.Arity(expansion); argc > 0 {
		return []any{expansion, argc}
	}
	return expansion
}
