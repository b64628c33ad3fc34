// Package tokenize is the boundary to the morphological tokenizer. The
// tokenizer is treated as an oracle: it segments text into tokens carrying
// surface, base form, reading and POS tags, and everything downstream
// consumes those tokens read-only. Translation of the tokenizer's "*"
// missing-value sentinel into empty fields happens here and only here.
package tokenize

import (
	"context"
	"fmt"

	"github.com/ikawaha/kagome-dict/ipa"
	"github.com/ikawaha/kagome-dict/uni"
	"github.com/ikawaha/kagome/v2/tokenizer"

	"jpreader/model"
)

// Tokenizer segments text into morphemes. Implementations may fail with an
// implementation-defined error; callers in the analysis core catch and
// degrade, never propagate.
//
// A single Tokenizer value must not be entered by two analyses at once;
// independent instances may run fully in parallel.
type Tokenizer interface {
	Tokenize(ctx context.Context, text string) ([]model.Token, error)
}

// Dictionary names accepted by New.
const (
	DictIPA = "ipa"
	DictUni = "uni"
)

// Kagome wraps a kagome v2 tokenizer as the Tokenizer oracle.
type Kagome struct {
	t *tokenizer.Tokenizer
}

// New builds a kagome-backed Tokenizer over the named system dictionary.
func New(dict string) (*Kagome, error) {
	var t *tokenizer.Tokenizer
	var err error
	switch dict {
	case DictIPA, "":
		t, err = tokenizer.New(ipa.Dict(), tokenizer.OmitBosEos())
	case DictUni:
		t, err = tokenizer.New(uni.Dict(), tokenizer.OmitBosEos())
	default:
		return nil, fmt.Errorf("unknown tokenizer dictionary %q", dict)
	}
	if err != nil {
		return nil, fmt.Errorf("init tokenizer: %w", err)
	}
	return &Kagome{t: t}, nil
}

// Tokenize segments text in normal mode.
func (k *Kagome) Tokenize(ctx context.Context, text string) ([]model.Token, error) {
	if text == "" {
		return nil, nil
	}
	select {
	case <-ctx.Done():
		return nil, ctx.Err()
	default:
	}
	ktoks := k.t.Tokenize(text)
	out := make([]model.Token, 0, len(ktoks))
	for _, kt := range ktoks {
		if kt.Class == tokenizer.DUMMY {
			continue
		}
		out = append(out, convert(kt))
	}
	return out, nil
}

// convert translates one kagome token into the shared model, folding the
// "*" sentinel into empty optional fields.
func convert(kt tokenizer.Token) model.Token {
	t := model.Token{Surface: kt.Surface, BaseForm: kt.Surface}
	if base, ok := kt.BaseForm(); ok {
		t.BaseForm = field(base)
		if t.BaseForm == "" {
			t.BaseForm = kt.Surface
		}
	}
	if reading, ok := kt.Reading(); ok {
		t.Reading = field(reading)
	}
	pos := kt.POS()
	if len(pos) > 0 {
		t.POS1 = field(pos[0])
	}
	if len(pos) > 1 {
		t.POS2 = field(pos[1])
	}
	// the conjugation-class label is the third meaningful POS level for
	// conjugatable words
	if it, ok := kt.InflectionalType(); ok {
		t.POS3 = field(it)
	}
	if f, ok := kt.InflectionalForm(); ok {
		t.InflectionForm = field(f)
	}
	return t
}

// field folds the tokenizer's missing-value sentinel into the empty string.
func field(s string) string {
	if s == "*" {
		return ""
	}
	return s
}
