package names

import (
	"encoding/csv"
	"fmt"
	"os"
)

// CSV column headers for the name-mapping artifact.
const (
	mappingOriginalColumn  = "Original Name"
	mappingCanonicalColumn = "Standardized Name"
)

// Pair is one raw-to-canonical name association.
type Pair struct {
	Original  string
	Canonical string
}

// Mapping accumulates every (original, canonical) pair seen while loading
// the datasets, in first-seen order with duplicate pairs removed. It backs
// the name_mapping.csv artifact.
type Mapping struct {
	seen  map[Pair]struct{}
	byRaw map[string]string
	pairs []Pair
}

// NewMapping returns an empty Mapping.
func NewMapping() *Mapping {
	return &Mapping{
		seen:  make(map[Pair]struct{}),
		byRaw: make(map[string]string),
	}
}

// Add records one original/canonical pair. Exact duplicates are dropped.
func (m *Mapping) Add(original, canonical string) {
	p := Pair{Original: original, Canonical: canonical}
	if _, ok := m.seen[p]; ok {
		return
	}
	m.seen[p] = struct{}{}
	if _, ok := m.byRaw[original]; !ok {
		m.byRaw[original] = canonical
	}
	m.pairs = append(m.pairs, p)
}

// Pairs returns the recorded pairs in first-seen order.
func (m *Mapping) Pairs() []Pair {
	out := make([]Pair, len(m.pairs))
	copy(out, m.pairs)
	return out
}

// Len reports the number of distinct pairs.
func (m *Mapping) Len() int { return len(m.pairs) }

// Lookup returns the canonical name recorded for an original spelling.
func (m *Mapping) Lookup(original string) (string, bool) {
	c, ok := m.byRaw[original]
	return c, ok
}

// WriteCSV writes the mapping as a two-column CSV artifact.
func (m *Mapping) WriteCSV(path string) error {
	f, err := os.Create(path)
	if err != nil {
		return fmt.Errorf("mapping: create %s: %w", path, err)
	}
	defer f.Close() //nolint:errcheck

	w := csv.NewWriter(f)
	if err := w.Write([]string{mappingOriginalColumn, mappingCanonicalColumn}); err != nil {
		return fmt.Errorf("mapping: write %s: %w", path, err)
	}
	for _, p := range m.pairs {
		if err := w.Write([]string{p.Original, p.Canonical}); err != nil {
			return fmt.Errorf("mapping: write %s: %w", path, err)
		}
	}
	w.Flush()
	if err := w.Error(); err != nil {
		return fmt.Errorf("mapping: write %s: %w", path, err)
	}
	return f.Close()
}

// LoadMapping reads a mapping artifact written by WriteCSV.
func LoadMapping(path string) (*Mapping, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, fmt.Errorf("mapping: open %s: %w", path, err)
	}
	defer f.Close() //nolint:errcheck

	records, err := csv.NewReader(f).ReadAll()
	if err != nil {
		return nil, fmt.Errorf("mapping: parse %s: %w", path, err)
	}
	if len(records) == 0 {
		return nil, fmt.Errorf("mapping: %s is empty (no header row)", path)
	}
	header := records[0]
	if len(header) != 2 || header[0] != mappingOriginalColumn || header[1] != mappingCanonicalColumn {
		return nil, fmt.Errorf("mapping: %s has unexpected header %v", path, header)
	}

	m := NewMapping()
	for _, rec := range records[1:] {
		m.Add(rec[0], rec[1])
	}
	return m, nil
}
