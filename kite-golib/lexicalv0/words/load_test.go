package words

import (
	"io/ioutil"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/kiteco/randseg/kite-golib/serialization"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestReadList(t *testing.T) {
	type tc struct {
		desc     string
		input    string
		opts     LoadOptions
		expected []Count
	}

	tcs := []tc{
		{
			desc:     "counted words",
			input:    "69971 the\n36412 of\n",
			expected: []Count{{"the", 69971}, {"of", 36412}},
		},
		{
			desc:     "bare words and blank lines",
			input:    "cat\n\n   \ndog\n",
			expected: []Count{{"cat", 1}, {"dog", 1}},
		},
		{
			desc:     "entries with spaces",
			input:    "3 new york\nthe quick fox\n",
			expected: []Count{{"new york", 3}, {"the quick fox", 1}},
		},
		{
			desc:     "numeric word",
			input:    "1999\n",
			expected: []Count{{"1999", 1}},
		},
		{
			desc:     "max words",
			input:    "a\nb\nc\n",
			opts:     LoadOptions{MaxWords: 2},
			expected: []Count{{"a", 1}, {"b", 1}},
		},
		{
			// e + combining acute composes to a single code point
			desc:     "normalized",
			input:    "2 cafe\u0301\n",
			opts:     LoadOptions{Normalize: true},
			expected: []Count{{"caf\u00e9", 2}},
		},
	}

	for _, tc := range tcs {
		actual, err := ReadList(strings.NewReader(tc.input), tc.opts)
		require.NoError(t, err, tc.desc)
		assert.Equal(t, tc.expected, actual, tc.desc)
	}
}

func TestReadListNegativeCount(t *testing.T) {
	_, err := ReadList(strings.NewReader("1 ok\n-3 bad\n"), LoadOptions{})
	require.Error(t, err)
	assert.Contains(t, err.Error(), "line 2")
}

func TestLoad(t *testing.T) {
	tmpdir, err := ioutil.TempDir("", "test-words")
	require.NoError(t, err)
	defer os.RemoveAll(tmpdir)

	expected := []Count{{"the", 10}, {"cat", 2}}

	textPath := filepath.Join(tmpdir, "words.txt")
	require.NoError(t, ioutil.WriteFile(textPath, []byte("10 the\n2 cat\n"), 0644))

	actual, err := Load(textPath, LoadOptions{})
	require.NoError(t, err)
	assert.Equal(t, expected, actual)

	for _, name := range []string{"words.json", "words.json.gz", "words.json.sz"} {
		path := filepath.Join(tmpdir, name)
		require.NoError(t, serialization.Encode(path, expected), name)

		actual, err := Load(path, LoadOptions{})
		require.NoError(t, err, name)
		assert.Equal(t, expected, actual, name)
	}

	_, err = Load(filepath.Join(tmpdir, "missing.txt"), LoadOptions{})
	assert.Error(t, err)
}
