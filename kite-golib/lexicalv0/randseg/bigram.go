package randseg

import (
	"sort"
	"strings"

	"github.com/kiteco/randseg/kite-golib/lexicalv0/words"
)

// Bigram is an ordered pair of adjacent symbols.
type Bigram struct {
	First  string
	Second string
}

// Joined returns the symbol produced by merging the pair.
func (b Bigram) Joined() string {
	return b.First + b.Second
}

// Rule returns the merge rule that folds the pair into a single symbol.
func (b Bigram) Rule() Merge {
	return Merge{
		Pattern:     b.First + " " + b.Second,
		Replacement: b.Joined(),
	}
}

// Inventory is the collection of bigrams sampled from during training. Entries may
// repeat once training has started; a repeated entry is proportionally more likely
// to be sampled.
type Inventory []Bigram

// Copy returns an independent copy of the inventory.
func (inv Inventory) Copy() Inventory {
	dest := make(Inventory, len(inv))
	copy(dest, inv)
	return dest
}

// Merge returns the inventory that results from merging p into a single symbol.
// Each entry of inv is visited once, in order:
//
//   - an entry equal to p is dropped
//   - an entry whose first symbol is p.Second gets p.Joined() as its first symbol
//   - otherwise an entry whose second symbol is p.First gets p.Joined() as its second symbol
//   - any other entry is kept as is
//
// The result is freshly allocated, inv is left untouched and no deduplication happens.
func (inv Inventory) Merge(p Bigram) Inventory {
	joined := p.Joined()
	merged := make(Inventory, 0, len(inv))
	for _, e := range inv {
		switch {
		case e == p:
			continue
		case e.First == p.Second:
			merged = append(merged, Bigram{First: joined, Second: e.Second})
		case e.Second == p.First:
			merged = append(merged, Bigram{First: e.First, Second: joined})
		default:
			merged = append(merged, e)
		}
	}
	return merged
}

// SortBigrams implements sort.Interface to sort lexicographically by (First, Second)
type SortBigrams []Bigram

// Len implements sort.Interface
func (b SortBigrams) Len() int { return len(b) }

// Less implements sort.Interface
func (b SortBigrams) Less(i, j int) bool {
	if b[i].First == b[j].First {
		return b[i].Second < b[j].Second
	}
	return b[i].First < b[j].First
}

// Swap implements sort.Interface
func (b SortBigrams) Swap(i, j int) {
	b[i], b[j] = b[j], b[i]
}

// ExtractBigrams returns the sorted set of adjacent symbol pairs found in the corpus,
// with literal spaces standing as marker. Words of one symbol or less contribute
// nothing. Counts are not consulted.
func ExtractBigrams(corpus []words.Count, marker string) Inventory {
	seen := make(map[Bigram]struct{})
	for _, wc := range corpus {
		syms := splitSymbols(wc.Word, marker)
		for i := 1; i < len(syms); i++ {
			seen[Bigram{First: syms[i-1], Second: syms[i]}] = struct{}{}
		}
	}

	inv := make(Inventory, 0, len(seen))
	for b := range seen {
		inv = append(inv, b)
	}
	sort.Sort(SortBigrams(inv))
	return inv
}

// splitSymbols splits w into its initial symbols: one per code point, with
// spaces replaced by marker.
func splitSymbols(w, marker string) []string {
	if w == "" {
		return nil
	}
	syms := strings.Split(w, "")
	for i, s := range syms {
		if s == " " {
			syms[i] = marker
		}
	}
	return syms
}
