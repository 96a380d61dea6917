// Package names reconciles inconsistent candidate-name spellings across the
// official-results and opinion-poll datasets into canonical identities.
package names

import (
	"crypto/sha256"
	"encoding/hex"
	"regexp"
	"strings"

	"golang.org/x/text/cases"
	"golang.org/x/text/language"
)

// Standardizer maps raw candidate-name strings to canonical identities.
// The mapping is a pure function of the input: no I/O, no randomness, and
// the same raw string always yields the same canonical name.
type Standardizer struct {
	titleCaser    cases.Caser
	overrides     []override
	nicknames     []*regexp.Regexp
	substitutions []substitution
}

// NewStandardizer builds a Standardizer with the built-in rule tables.
func NewStandardizer() *Standardizer {
	s := &Standardizer{
		titleCaser:    cases.Title(language.English),
		overrides:     overrideTable,
		substitutions: substitutionTable,
	}
	for _, token := range nicknameTokens {
		s.nicknames = append(s.nicknames, regexp.MustCompile(`\b`+regexp.QuoteMeta(token)+`\b`))
	}
	return s
}

// Standardize returns the canonical identity for a raw candidate name.
// Rules apply in strict priority order: title casing, exact overrides,
// comma inversion, nickname stripping, substring corrections, whitespace
// normalization. When no rule matches, the title-cased input is the
// identity; an unanticipated spelling variant will then fail to match the
// other dataset rather than being guessed at.
func (s *Standardizer) Standardize(raw string) string {
	name := s.titleCaser.String(raw)

	for _, o := range s.overrides {
		if strings.EqualFold(o.Raw, name) {
			return o.Canonical
		}
	}

	if strings.Contains(name, ",") {
		name = invertComma(name)
	}

	for _, re := range s.nicknames {
		name = re.ReplaceAllString(name, "")
	}

	for _, sub := range s.substitutions {
		if containsFold(name, sub.Contains) {
			name = sub.Canonical
		}
	}

	return collapseSpaces(name)
}

// Fingerprint returns a stable digest of the rule tables. Cached processed
// data keyed by this digest goes stale whenever a rule changes.
func (s *Standardizer) Fingerprint() string {
	h := sha256.New()
	for _, o := range s.overrides {
		h.Write([]byte(o.Raw))
		h.Write([]byte{0})
		h.Write([]byte(o.Canonical))
		h.Write([]byte{0})
	}
	for _, re := range s.nicknames {
		h.Write([]byte(re.String()))
		h.Write([]byte{0})
	}
	for _, sub := range s.substitutions {
		h.Write([]byte(sub.Contains))
		h.Write([]byte{0})
		h.Write([]byte(sub.Canonical))
		h.Write([]byte{0})
	}
	return hex.EncodeToString(h.Sum(nil))
}

// invertComma reorders "Last, First[, Suffix...]" to "First [Suffix...] Last"
// by rotating the surname segment to the end.
func invertComma(name string) string {
	parts := strings.Split(name, ",")
	if len(parts) < 2 {
		return name
	}
	reordered := make([]string, 0, len(parts))
	for _, part := range parts[1:] {
		reordered = append(reordered, strings.TrimSpace(part))
	}
	reordered = append(reordered, strings.TrimSpace(parts[0]))
	return strings.Join(reordered, " ")
}

func containsFold(s, substr string) bool {
	return strings.Contains(strings.ToLower(s), strings.ToLower(substr))
}

func collapseSpaces(s string) string {
	return strings.Join(strings.Fields(s), " ")
}
