// Package moderation censors forbidden words in chat messages before they
// are persisted or fanned out. Matching is resilient to leet speak, casing,
// accents in the surrounding text and punctuation noise inside a word.
package moderation

import (
	"log/slog"
	"unicode"

	goahocorasick "github.com/anknown/ahocorasick"
)

type Moderator struct {
	matcher     *goahocorasick.Machine
	replacement rune
	log         *slog.Logger
}

// textIndex maps a normalized rune stream back to positions in the original
// text, so a match found after noise stripping censors the right characters.
type textIndex struct {
	normalized []rune
	original   []int
}

// NewModerator builds the Aho-Corasick automaton over the normalized word
// list. Words that normalize to nothing (pure punctuation) are skipped; an
// empty list yields a pass-through moderator.
func NewModerator(words []string, replacement rune, log *slog.Logger) (Moderator, error) {
	patterns := make([][]rune, 0, len(words))
	for _, word := range words {
		if normalized := normalize([]rune(word)); len(normalized) > 0 {
			patterns = append(patterns, normalized)
		}
	}
	if len(patterns) == 0 {
		return Moderator{replacement: replacement, log: log}, nil
	}

	matcher := new(goahocorasick.Machine)
	if err := matcher.Build(patterns); err != nil {
		return Moderator{}, err
	}
	return Moderator{matcher: matcher, replacement: replacement, log: log}, nil
}

// Censor stars out every forbidden span in text, preserving the original
// spacing and punctuation. It returns the sanitized text and the normalized
// words that were hit.
func (m *Moderator) Censor(text string) (string, []string) {
	if m.matcher == nil {
		return text, nil
	}

	index := m.index(text)
	if len(index.normalized) == 0 {
		return text, nil
	}

	spans := m.matcher.MultiPatternSearch(index.normalized, false)
	if len(spans) == 0 {
		return text, nil
	}

	runes := []rune(text)
	var hits []string
	for _, span := range spans {
		start := span.Pos
		end := start + len(span.Word)
		if start < 0 || end > len(index.original) {
			continue
		}
		hits = append(hits, string(span.Word))

		// Star out everything between the first and last matched rune,
		// noise included, so "B.4.d.g.€r" leaves no readable residue.
		for i := index.original[start]; i <= index.original[end-1]; i++ {
			runes[i] = m.replacement
		}
	}
	return string(runes), hits
}

// index builds the noise-free lowercase stream and its position mapping.
func (m *Moderator) index(text string) textIndex {
	runes := []rune(text)
	index := textIndex{
		normalized: make([]rune, 0, len(runes)),
		original:   make([]int, 0, len(runes)),
	}
	for i, r := range runes {
		plain := unleet(r)
		if isNoise(plain) {
			continue
		}
		index.normalized = append(index.normalized, unicode.ToLower(plain))
		index.original = append(index.original, i)
	}
	return index
}

func normalize(runes []rune) []rune {
	out := make([]rune, 0, len(runes))
	for _, r := range runes {
		plain := unleet(r)
		if isNoise(plain) {
			continue
		}
		out = append(out, unicode.ToLower(plain))
	}
	return out
}

// unleet maps common leet speak substitutions back to their letter.
func unleet(r rune) rune {
	switch r {
	case '4', '@':
		return 'a'
	case '3', '€':
		return 'e'
	case '1', '!', '|':
		return 'i'
	case '0':
		return 'o'
	case '5', '$':
		return 's'
	default:
		return r
	}
}

func isNoise(r rune) bool {
	return unicode.IsPunct(r) || unicode.IsSpace(r) || unicode.IsSymbol(r)
}
