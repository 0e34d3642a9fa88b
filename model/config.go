package model

import (
	"fmt"
	"os"

	"github.com/adnsv/go-utils/fs"
	"github.com/cockroachdb/errors"
	"gopkg.in/yaml.v3"
)

// Config is the raw notation config as read from awesome.yaml.
type Config struct {
	GreekLetter    Dict              `yaml:"greek_letter"`     // canonical name -> symbol
	GreekLetterVar []string          `yaml:"greek_letter_var"` // names with a \var form
	Prefix         map[string]string `yaml:"prefix"`
	Base           Dict              `yaml:"base"` // copied verbatim into the table
}

// Entry is a single key/value pair of a Dict.
type Entry struct {
	Key   string
	Value string
}

// Dict is a string mapping that keeps the document order of its keys.
type Dict []Entry

// UnmarshalYAML decodes a mapping node. A repeated key keeps the position of
// its first occurrence and the value of its last one.
func (d *Dict) UnmarshalYAML(n *yaml.Node) error {
	if n.Kind != yaml.MappingNode {
		return fmt.Errorf("line %d: expected a mapping", n.Line)
	}
	out := make(Dict, 0, len(n.Content)/2)
	index := map[string]int{}
	for i := 0; i+1 < len(n.Content); i += 2 {
		e := Entry{}
		if err := n.Content[i].Decode(&e.Key); err != nil {
			return err
		}
		if err := n.Content[i+1].Decode(&e.Value); err != nil {
			return err
		}
		if j, ok := index[e.Key]; ok {
			out[j].Value = e.Value
			continue
		}
		index[e.Key] = len(out)
		out = append(out, e)
	}
	*d = out
	return nil
}

// Lookup returns the value of the last entry with key k.
func (d Dict) Lookup(k string) (string, bool) {
	for i := len(d) - 1; i >= 0; i-- {
		if d[i].Key == k {
			return d[i].Value, true
		}
	}
	return "", false
}

// LoadConfig reads and parses the config file fn.
func LoadConfig(fn string) (*Config, error) {
	if !fs.FileExists(fn) {
		return nil, errors.Mark(errors.Newf("missing %s", fn), ErrNotFound)
	}
	buf, err := os.ReadFile(fn)
	if err != nil {
		if os.IsNotExist(err) {
			err = errors.Mark(err, ErrNotFound)
		}
		return nil, errors.Wrapf(err, "reading %s", fn)
	}
	cfg, err := ParseConfig(buf)
	if err != nil {
		return nil, errors.Wrapf(err, "loading %s", fn)
	}
	return cfg, nil
}

// ParseConfig decodes a YAML document into a Config.
func ParseConfig(buf []byte) (*Config, error) {
	cfg := &Config{}
	if err := yaml.Unmarshal(buf, cfg); err != nil {
		return nil, errors.Mark(errors.Wrap(err, "malformed config"), ErrParse)
	}
	return cfg, nil
}
