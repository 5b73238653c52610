package words

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestCounts(t *testing.T) {
	cs := make(Counts)
	cs.Hit("foo", 2)
	cs.Hit("bar", 1)
	cs.Hit("foo", 1)

	other := Counts{"baz": 3, "bar": 2}
	cs.Add(other)

	assert.Equal(t, Counts{"foo": 3, "bar": 3, "baz": 3}, cs)

	cs.Hit("qux", 1)
	cleaned := cs.Clean(2)
	assert.Equal(t, Counts{"foo": 3, "bar": 3, "baz": 3}, cleaned)
	assert.Len(t, cs, 4)
}

func TestCountsList(t *testing.T) {
	cs := Counts{"b": 2, "a": 2, "c": 5, "d": 1}
	expected := []Count{
		{"c", 5},
		{"a", 2},
		{"b", 2},
		{"d", 1},
	}
	assert.Equal(t, expected, cs.List())
}

func TestFromStrings(t *testing.T) {
	counts := FromStrings([]string{"cat", "dog", "cat"})
	assert.Equal(t, []Count{{"cat", 1}, {"dog", 1}, {"cat", 1}}, counts)
	assert.Equal(t, []string{"cat", "dog", "cat"}, Strings(counts))
}

func TestFold(t *testing.T) {
	corpus := []Count{{"cat", 2}, {"dog", 1}, {"cat", 3}, {"emu", 1}, {"dog", 1}}

	assert.Equal(t, Counts{"cat": 5, "dog": 2, "emu": 1}, NewCounts(corpus))
	assert.Equal(t, []Count{{"cat", 5}, {"dog", 2}, {"emu", 1}}, Fold(corpus, 0))
	assert.Equal(t, []Count{{"cat", 5}, {"dog", 2}}, Fold(corpus, 2))
	assert.Empty(t, Fold(nil, 0))
}
