package randseg

import (
	"strings"

	lru "github.com/hashicorp/golang-lru"
)

// CachedSegmenter memoizes the tokens of a deterministic Segmenter such as a Model.
// Wrapping an Uncontrolled segmenter would freeze its random choices per word.
type CachedSegmenter struct {
	seg       Segmenter
	separator string
	cache     *lru.Cache
}

// NewCachedSegmenter caches up to size words; separator is used by SegmentJoined.
func NewCachedSegmenter(seg Segmenter, separator string, size int) (*CachedSegmenter, error) {
	cache, err := lru.New(size)
	if err != nil {
		return nil, err
	}
	return &CachedSegmenter{
		seg:       seg,
		separator: separator,
		cache:     cache,
	}, nil
}

// Segment returns cached tokens for word, segmenting it on a miss. Errors are not cached.
func (c *CachedSegmenter) Segment(word string) ([]string, error) {
	if v, ok := c.cache.Get(word); ok {
		return copyTokens(v.([]string)), nil
	}
	toks, err := c.seg.Segment(word)
	if err != nil {
		return nil, err
	}
	c.cache.Add(word, copyTokens(toks))
	return toks, nil
}

// SegmentJoined ...
func (c *CachedSegmenter) SegmentJoined(word string) (string, error) {
	toks, err := c.Segment(word)
	if err != nil {
		return "", err
	}
	return strings.Join(toks, c.separator), nil
}

// Len is the number of cached words.
func (c *CachedSegmenter) Len() int {
	return c.cache.Len()
}

func copyTokens(toks []string) []string {
	return append([]string{}, toks...)
}
