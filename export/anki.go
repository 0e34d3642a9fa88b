package export

import (
	"bytes"
	"fmt"

	"github.com/adnsv/awesome/model"
)

// FlashcardSerializer produces the macro preamble used by Anki cards, one
// \def{name}{expansion} line per macro.
type FlashcardSerializer struct{}

func (FlashcardSerializer) Serialize(t *model.MacroTable) ([]byte, error) {
	out := &bytes.Buffer{}
	t.Each(func(name, expansion string) {
		fmt.Fprintf(out, "\\def{%s}{%s}\n", name, expansion)
	})
	return out.Bytes(), nil
}
