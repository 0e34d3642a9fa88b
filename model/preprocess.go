package model

import (
	"github.com/cockroachdb/errors"
)

// prefix kinds
const (
	PrefixLatinBold = "latin_boldsymbol"
	PrefixLatinSans = "latin_mathsf"
	PrefixGreek     = "greek_"
	PrefixGreekBold = "greek_boldsymbol"
	PrefixGreekSans = "greek_mathsf"
	latinLetters    = "abcdefghijklmnopqrstuvwxyzABCDEFGHIJKLMNOPQRSTUVWXYZ"
)

// RequiredPrefixes lists the prefix kinds Preprocess reads from Config.Prefix.
var RequiredPrefixes = []string{
	PrefixLatinBold,
	PrefixLatinSans,
	PrefixGreek,
	PrefixGreekBold,
	PrefixGreekSans,
}

// Preprocess expands cfg into a MacroTable: base entries first, then bold
// and sans-serif latin letters, then the three greek styles. Variant greek
// letters overwrite the plain form under the same names.
func Preprocess(cfg *Config) (*MacroTable, error) {
	for _, k := range RequiredPrefixes {
		if _, ok := cfg.Prefix[k]; !ok {
			return nil, errors.Mark(errors.Newf("missing prefix %q", k), ErrKey)
		}
	}
	pre := cfg.Prefix

	t := NewMacroTable()
	for _, e := range cfg.Base {
		t.Set(e.Key, e.Value)
	}

	for _, c := range latinLetters {
		l := string(c)
		t.Set(pre[PrefixLatinBold]+l, "\\boldsymbol "+l)
		t.Set(pre[PrefixLatinSans]+l, "\\mathsf "+l)
	}

	greek := func(symbol, cmd string) {
		t.Set(pre[PrefixGreek]+symbol, cmd)
		t.Set(pre[PrefixGreekBold]+symbol, "\\boldsymbol "+cmd)
		t.Set(pre[PrefixGreekSans]+symbol, "\\mathsf "+cmd)
	}

	for _, e := range cfg.GreekLetter {
		greek(e.Value, "\\"+e.Key)
	}
	for _, name := range cfg.GreekLetterVar {
		symbol, ok := cfg.GreekLetter.Lookup(name)
		if !ok {
			return nil, errors.Mark(errors.Newf("greek_letter_var: unknown letter %q", name), ErrKey)
		}
		greek(symbol, "\\var"+name)
	}
	return t, nil
}
