package export

import (
	"bytes"
	"fmt"

	"github.com/adnsv/awesome/model"
)

const packageHeader = `\ProvidesPackage{awesome}
\RequirePackage{amsmath}
`

// PackageSerializer produces a LaTeX package. Every macro is emitted as
// \providecommand followed by \renewcommand, so the package wins over
// earlier definitions without failing on fresh ones.
type PackageSerializer struct{}

func (PackageSerializer) Serialize(t *model.MacroTable) ([]byte, error) {
	out := &bytes.Buffer{}
	out.WriteString(packageHeader)
	t.Each(func(name, expansion string) {
		argc := argCountPart(expansion)
		fmt.Fprintf(out, "\\providecommand{\\%s}%s{%s}\n", name, argc, expansion)
		fmt.Fprintf(out, "\\renewcommand{\\%s}%s{%s}\n", name, argc, expansion)
	})
	return out.Bytes(), nil
}

// argCountPart returns the optional "[n]" argument count of a \newcommand
// family directive.
func argCountPart(expansion string) string {
	if n := model.Arity(expansion); n > 0 {
		return fmt.Sprintf("[%d]", n)
	}
	return ""
}
