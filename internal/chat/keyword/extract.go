package keyword

import (
	"fmt"
	"sort"
	"unicode/utf8"

	lru "github.com/hashicorp/golang-lru/v2"
)

const extractCacheSize = 512

// Extractor derives ranked query keywords from a chat message. Results are
// memoized per index generation, so a rebuilt index invalidates prior entries.
type Extractor struct {
	tok   *Tokenizer
	vocab *Vocabulary
	idx   *Index
	max   int

	cache *lru.Cache[string, []string]
}

// NewExtractor creates an extractor returning at most max keywords per text.
func NewExtractor(tok *Tokenizer, vocab *Vocabulary, idx *Index, max int) (*Extractor, error) {
	if max <= 0 {
		max = 5
	}
	cache, err := lru.New[string, []string](extractCacheSize)
	if err != nil {
		return nil, err
	}
	return &Extractor{
		tok:   tok,
		vocab: vocab,
		idx:   idx,
		max:   max,
		cache: cache,
	}, nil
}

// Extract segments the text and returns up to max tokens that are at least
// two runes long, not stop words, and known either to the global keyword set
// or the category vocabulary. Tokens are ranked by descending frequency with
// ties broken by first occurrence.
func (e *Extractor) Extract(text string) []string {
	if text == "" {
		return nil
	}

	key := fmt.Sprintf("%d|%s", e.idx.Generation(), text)
	if cached, ok := e.cache.Get(key); ok {
		return cached
	}

	freq := make(map[string]int)
	firstSeen := make(map[string]int)
	var order []string

	for pos, token := range e.tok.Segment(text) {
		if utf8.RuneCountInString(token) < 2 || e.vocab.IsStopWord(token) {
			continue
		}
		if !e.idx.Contains(token) && !e.vocab.IsCategory(token) {
			continue
		}
		if _, seen := freq[token]; !seen {
			firstSeen[token] = pos
			order = append(order, token)
		}
		freq[token]++
	}

	sort.SliceStable(order, func(a, b int) bool {
		if freq[order[a]] != freq[order[b]] {
			return freq[order[a]] > freq[order[b]]
		}
		return firstSeen[order[a]] < firstSeen[order[b]]
	})

	if len(order) > e.max {
		order = order[:e.max]
	}

	e.cache.Add(key, order)
	return order
}
