package export

import (
	"os"
	"path/filepath"

	"github.com/adnsv/awesome/model"
	"github.com/cockroachdb/errors"
	"github.com/rs/zerolog"
)

// DefaultConfigFN is read when Options.ConfigFN is empty.
const DefaultConfigFN = "awesome.yaml"

// Options select the config file and the directory Targets are written to.
type Options struct {
	ConfigFN string // config file, defaults to DefaultConfigFN
	RootDir  string // output paths are resolved against this, defaults to "."
}

// Export loads the config, expands it and writes every entry of Targets.
// The first failure aborts the run.
func Export(log zerolog.Logger, opts Options) error {
	if opts.ConfigFN == "" {
		opts.ConfigFN = DefaultConfigFN
	}
	if opts.RootDir == "" {
		opts.RootDir = "."
	}

	log.Info().Msgf("loading %s", opts.ConfigFN)
	cfg, err := model.LoadConfig(opts.ConfigFN)
	if err != nil {
		return err
	}

	table, err := model.Preprocess(cfg)
	if err != nil {
		return errors.Wrapf(err, "expanding %s", opts.ConfigFN)
	}
	log.Debug().Int("macros", table.Len()).Msg("expanded config")

	for _, tgt := range Targets {
		fn := filepath.Join(opts.RootDir, filepath.FromSlash(tgt.Path))
		if err := os.MkdirAll(filepath.Dir(fn), 0755); err != nil {
			return errors.Mark(errors.Wrapf(err, "creating %s", filepath.Dir(fn)), model.ErrWrite)
		}
		log.Info().Str("target", tgt.Name).Msgf("writing %s", fn)
		if err := WriteFile(fn, tgt.Serializer, table); err != nil {
			return err
		}
	}
	return nil
}
