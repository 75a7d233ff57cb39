package keyword

import (
	"context"
	"fmt"
	"strings"
	"sync/atomic"
	"unicode/utf8"

	"mall-backend/internal/model"
	"mall-backend/pkg/log"
)

// Price thresholds for the derived tier tags.
const (
	lowPriceThreshold = 100
	premiumThreshold  = 1000
)

// Catalog is the read-only product source the index is built from.
type Catalog interface {
	ListAll(ctx context.Context) ([]model.Product, error)
}

// snapshot is one fully-built point-in-time index. Readers always see either
// the previous or the next snapshot, never a partial rebuild.
type snapshot struct {
	byProduct map[string]map[string]struct{}
	global    map[string]struct{}
}

// Index is the process-wide cache mapping each catalog item to its derived
// keyword set, plus the global union of all known keywords. It is built
// lazily on first use and rebuilt wholesale on demand; it is never patched
// incrementally.
type Index struct {
	catalog Catalog
	tok     *Tokenizer
	vocab   *Vocabulary
	l       log.Logger

	snap atomic.Pointer[snapshot]
	gen  atomic.Uint64
}

// NewIndex creates an empty index over the given catalog.
func NewIndex(catalog Catalog, tok *Tokenizer, vocab *Vocabulary, l log.Logger) *Index {
	return &Index{
		catalog: catalog,
		tok:     tok,
		vocab:   vocab,
		l:       l,
	}
}

// Build reads the full catalog, derives every item's keyword set and swaps in
// the new snapshot atomically. On catalog failure the previous snapshot is
// retained unchanged and the error is returned.
func (i *Index) Build(ctx context.Context) error {
	products, err := i.catalog.ListAll(ctx)
	if err != nil {
		return fmt.Errorf("keyword index build: %w", err)
	}

	next := &snapshot{
		byProduct: make(map[string]map[string]struct{}, len(products)),
		global:    make(map[string]struct{}),
	}

	for _, p := range products {
		kws := i.deriveKeywords(p)
		next.byProduct[p.ID] = kws
		for kw := range kws {
			next.global[kw] = struct{}{}
		}
	}

	i.snap.Store(next)
	i.gen.Add(1)
	i.l.Infof(ctx, "keyword index rebuilt: %d products, %d keywords", len(next.byProduct), len(next.global))
	return nil
}

// deriveKeywords computes one item's keyword set: segmented tokens from name
// and description (length ≥ 2, not stop words), category terms textually
// present in the item, and price-tier tags.
func (i *Index) deriveKeywords(p model.Product) map[string]struct{} {
	kws := make(map[string]struct{})

	for _, token := range i.tok.Segment(p.Name) {
		if utf8.RuneCountInString(token) < 2 || i.vocab.IsStopWord(token) {
			continue
		}
		kws[token] = struct{}{}
	}
	for _, token := range i.tok.Segment(p.Description) {
		if utf8.RuneCountInString(token) < 2 || i.vocab.IsStopWord(token) {
			continue
		}
		kws[token] = struct{}{}
	}

	for _, cat := range i.vocab.Categories {
		if strings.Contains(p.Name, cat) || strings.Contains(p.Description, cat) {
			kws[cat] = struct{}{}
		}
	}

	if p.Price < lowPriceThreshold {
		for _, tag := range i.vocab.LowPriceTags {
			kws[tag] = struct{}{}
		}
	}
	if p.Price > premiumThreshold {
		for _, tag := range i.vocab.PremiumTags {
			kws[tag] = struct{}{}
		}
	}

	return kws
}

// IsEmpty reports whether the index has never been built or holds no items.
func (i *Index) IsEmpty() bool {
	s := i.snap.Load()
	return s == nil || len(s.byProduct) == 0
}

// Contains reports whether the token has been observed as a product-relevant
// keyword in the current snapshot.
func (i *Index) Contains(token string) bool {
	s := i.snap.Load()
	if s == nil {
		return false
	}
	_, ok := s.global[token]
	return ok
}

// VocabularySize is the size of the global keyword set.
func (i *Index) VocabularySize() int {
	s := i.snap.Load()
	if s == nil {
		return 0
	}
	return len(s.global)
}

// Generation increments on every successful rebuild. Callers caching derived
// results key them by generation so a rebuild invalidates the cache.
func (i *Index) Generation() uint64 {
	return i.gen.Load()
}
