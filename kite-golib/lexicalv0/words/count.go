package words

import (
	"sort"
)

// Count is a word and the number of times it was observed. Counts are carried
// along for compatibility with count-qualified word lists.
type Count struct {
	Word  string
	Count int
}

// FromStrings builds a corpus from plain words, each with a count of one.
func FromStrings(ws []string) []Count {
	counts := make([]Count, 0, len(ws))
	for _, w := range ws {
		counts = append(counts, Count{Word: w, Count: 1})
	}
	return counts
}

// Strings returns the words of the corpus in order.
func Strings(counts []Count) []string {
	ws := make([]string, 0, len(counts))
	for _, c := range counts {
		ws = append(ws, c.Word)
	}
	return ws
}

// Counts maps words to counts
type Counts map[string]int

// NewCounts sums the counts of repeated words in corpus.
func NewCounts(corpus []Count) Counts {
	cs := make(Counts, len(corpus))
	for _, c := range corpus {
		cs.Hit(c.Word, c.Count)
	}
	return cs
}

// Hit increments the count for word by count
func (cs Counts) Hit(word string, count int) {
	cs[word] += count
}

// Add merges counts with other
func (cs Counts) Add(other Counts) {
	for w, c := range other {
		cs[w] += c
	}
}

// Clean removes entries with fewer than minCount hits
func (cs Counts) Clean(minCount int) Counts {
	// Create a new map so we can release memory
	ncs := make(Counts, len(cs))
	for w, c := range cs {
		if c >= minCount {
			ncs[w] = c
		}
	}
	return ncs
}

// List returns the entries sorted by decreasing count, ties broken by word.
func (cs Counts) List() []Count {
	list := make([]Count, 0, len(cs))
	for w, c := range cs {
		list = append(list, Count{Word: w, Count: c})
	}
	sort.Slice(list, func(i, j int) bool {
		if list[i].Count == list[j].Count {
			return list[i].Word < list[j].Word
		}
		return list[i].Count > list[j].Count
	})
	return list
}

// Fold collapses repeated words of corpus into one entry, drops words seen fewer
// than minCount times and returns the rest ordered as by List.
func Fold(corpus []Count, minCount int) []Count {
	return NewCounts(corpus).Clean(minCount).List()
}
