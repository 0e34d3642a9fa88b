package export

import (
	"github.com/adnsv/awesome/model"
)

// Serializer renders a macro table into the bytes of one output file.
type Serializer interface {
	Serialize(t *model.MacroTable) ([]byte, error)
}

// Target binds a serializer to its output path, relative to the export root.
type Target struct {
	Name       string
	Path       string // slash-separated
	Serializer Serializer
}

// Targets lists the generated files in the order they are written.
var Targets = []Target{
	{Name: "latex", Path: "awesome/awesome.sty", Serializer: PackageSerializer{}},
	{Name: "typora", Path: "typora.json", Serializer: SnippetSerializer{}},
	{Name: "anki", Path: "anki.tex", Serializer: FlashcardSerializer{}},
}
