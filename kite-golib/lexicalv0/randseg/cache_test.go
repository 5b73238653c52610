package randseg

import (
	"testing"

	"github.com/kiteco/randseg/kite-golib/errors"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type countingSegmenter struct {
	Segmenter
	calls int
}

func (c *countingSegmenter) Segment(word string) ([]string, error) {
	c.calls++
	return c.Segmenter.Segment(word)
}

func Test_CachedSegmenter(t *testing.T) {
	inner := &countingSegmenter{Segmenter: trainedModel(Merge{"c a", "ca"})}
	c, err := NewCachedSegmenter(inner, " ", 2)
	require.NoError(t, err)

	toks, err := c.Segment("cat")
	require.NoError(t, err)
	assert.Equal(t, []string{"ca", "t"}, toks)

	// mutating the result does not poison the cache
	toks[0] = "x"

	toks, err = c.Segment("cat")
	require.NoError(t, err)
	assert.Equal(t, []string{"ca", "t"}, toks)
	assert.Equal(t, 1, inner.calls)
	assert.Equal(t, 1, c.Len())

	joined, err := c.SegmentJoined("cat")
	require.NoError(t, err)
	assert.Equal(t, "ca t", joined)

	// eviction
	_, err = c.Segment("dog")
	require.NoError(t, err)
	_, err = c.Segment("cow")
	require.NoError(t, err)
	assert.Equal(t, 2, c.Len())
	_, err = c.Segment("cat")
	require.NoError(t, err)
	assert.Equal(t, 4, inner.calls)
}

func Test_CachedSegmenterErrors(t *testing.T) {
	c, err := NewCachedSegmenter(newTestModel(t, 3), "+", 10)
	require.NoError(t, err)

	_, err = c.Segment("cat")
	assert.True(t, errors.Is(err, ErrNotTrained))
	assert.Equal(t, 0, c.Len())

	_, err = NewCachedSegmenter(trainedModel(), "+", 0)
	assert.Error(t, err)
}
