package export

import (
	"os"

	"github.com/adnsv/awesome/model"
	"github.com/adnsv/go-utils/fs"
	"github.com/cockroachdb/errors"
)

// WriteFile serializes t with s and stores the result at fn, replacing the
// previous content. Errors are marked model.ErrWrite.
func WriteFile(fn string, s Serializer, t *model.MacroTable) error {
	buf, err := s.Serialize(t)
	if err != nil {
		return errors.Mark(errors.Wrapf(err, "serializing %s", fn), model.ErrWrite)
	}
	// WriteFileIfChanged only copes with a missing or readable target
	if _, err := os.Stat(fn); err != nil && !os.IsNotExist(err) {
		return errors.Mark(errors.Wrapf(err, "writing %s", fn), model.ErrWrite)
	}
	if err := fs.WriteFileIfChanged(fn, buf); err != nil {
		return errors.Mark(errors.Wrapf(err, "writing %s", fn), model.ErrWrite)
	}
	return nil
}
