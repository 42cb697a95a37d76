// Package moderation masks configured words in outgoing text using an
// Aho-Corasick automaton, preserving message length and spacing.
package moderation

import (
	"strings"

	goahocorasick "github.com/anknown/ahocorasick"

	"pocket-chat/errors"
)

type Moderator struct {
	matcher *goahocorasick.Machine
	mask    rune
}

// NewModerator builds the automaton over a case-folded copy of the word
// list. An empty list is a configuration error, not a no-op moderator.
func NewModerator(words []string, mask rune) (*Moderator, error) {
	if len(words) == 0 {
		return nil, errors.ErrEmptyWords
	}
	patterns := make([][]rune, len(words))
	for i, word := range words {
		patterns[i] = []rune(strings.ToLower(word))
	}
	m := new(goahocorasick.Machine)
	if err := m.Build(patterns); err != nil {
		return nil, err
	}
	return &Moderator{matcher: m, mask: mask}, nil
}

// Censor replaces every matched word with the mask character, rune for
// rune. Matching is case-insensitive; the folded text must stay
// rune-aligned with the original, which holds for the word lists this
// demo ships.
func (m *Moderator) Censor(original string) string {
	folded := []rune(strings.ToLower(original))
	spans := m.matcher.MultiPatternSearch(folded, false)
	if len(spans) == 0 {
		return original
	}

	out := []rune(original)
	for _, span := range spans {
		start := span.Pos
		end := start + len(span.Word)
		if start < 0 || end > len(out) {
			continue
		}
		for i := start; i < end; i++ {
			out[i] = m.mask
		}
	}
	return string(out)
}
