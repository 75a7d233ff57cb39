package keyword

import (
	"fmt"
	"strings"

	"github.com/go-ego/gse"
)

// Tokenizer segments free-text Chinese input. Domain terms from the
// vocabulary are registered as user-dictionary tokens before first use so
// they are not fragmented by generic segmentation.
type Tokenizer struct {
	seg gse.Segmenter
}

// NewTokenizer creates a tokenizer with the vocabulary's domain terms loaded.
func NewTokenizer(vocab *Vocabulary) (*Tokenizer, error) {
	t := &Tokenizer{}

	if err := t.seg.LoadDict(); err != nil {
		return nil, fmt.Errorf("failed to load segmentation dictionary: %w", err)
	}

	for _, term := range vocab.DomainTerms() {
		t.seg.AddToken(term, 1000, "n")
	}

	return t, nil
}

// Segment cuts text into tokens. Empty input yields no tokens; whitespace-only
// segments are dropped. Each call processes the whole string once and retains
// no state.
func (t *Tokenizer) Segment(text string) []string {
	if text == "" {
		return nil
	}

	segments := t.seg.Cut(text, true)

	tokens := make([]string, 0, len(segments))
	for _, tok := range segments {
		if strings.TrimSpace(tok) == "" {
			continue
		}
		tokens = append(tokens, tok)
	}
	return tokens
}
