package tokenize

import (
	"context"

	"jpreader/model"
)

// Fake is a scripted Tokenizer for tests: it replays canned tokens per
// input and can be forced to fail.
type Fake struct {
	Responses map[string][]model.Token
	Err       error
	Calls     []string
}

func (f *Fake) Tokenize(ctx context.Context, text string) ([]model.Token, error) {
	f.Calls = append(f.Calls, text)
	if f.Err != nil {
		return nil, f.Err
	}
	return f.Responses[text], nil
}
