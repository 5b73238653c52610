package randseg

import (
	"strings"
)

// Segment applies the learned merges to word and returns the resulting tokens.
// Literal spaces in word come back as the boundary marker.
func (m *Model) Segment(word string) ([]string, error) {
	if !m.trained {
		return nil, ErrNotTrained
	}
	if word == "" {
		return []string{}, nil
	}
	return strings.Split(m.apply(word, nil), " "), nil
}

// SegmentJoined is Segment with the tokens joined by the model's separator.
func (m *Model) SegmentJoined(word string) (string, error) {
	toks, err := m.Segment(word)
	if err != nil {
		return "", err
	}
	return strings.Join(toks, m.separator), nil
}

// Trace returns the working representation of word before any merge followed by
// its state after each merge that changed it, for debugging.
func (m *Model) Trace(word string) ([]string, error) {
	if !m.trained {
		return nil, ErrNotTrained
	}
	steps := []string{}
	m.apply(word, func(s string) {
		steps = append(steps, s)
	})
	return steps, nil
}

// apply rewrites the space joined symbols of word with every merge, in training
// order, in a single pass over the rules.
func (m *Model) apply(word string, trace func(string)) string {
	working := strings.Join(splitSymbols(word, m.boundaryMarker), " ")
	if trace != nil {
		trace(working)
	}
	for _, rule := range m.merges {
		next := strings.Replace(working, rule.Pattern, rule.Replacement, -1)
		if trace != nil && next != working {
			trace(next)
		}
		working = next
	}
	return working
}

// Reconstruct joins tokens and turns boundary markers back into spaces.
func Reconstruct(tokens []string, marker string) string {
	return strings.Replace(strings.Join(tokens, ""), marker, " ", -1)
}
