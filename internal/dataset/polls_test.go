package dataset

import (
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/rmagsino/pollscore/internal/names"
)

func TestLoadPolls_HappyPath(t *testing.T) {
	path := writeTable(t, `| Candidate | Party | Pulse Asia<br>Apr 2025 | SWS<br>Apr 2025 |
| --- | --- | --- | --- |
| Bong Go | PDP | **56.9%** | 54.1% |
| Kiko Pangilinan | LP | 31.5% |  |
| Colonel Bosita | Ind | — | 11.3% |
`)

	ds, err := LoadPolls(path, names.NewStandardizer())
	require.NoError(t, err)
	require.Equal(t, []string{"Pulse Asia Apr 2025", "SWS Apr 2025"}, ds.Instruments)
	require.Len(t, ds.Records, 3)

	// Emphasis markup and percent signs are stripped.
	v, ok := ds.Records[0].Score("Pulse Asia Apr 2025")
	require.True(t, ok)
	require.InDelta(t, 56.9, v, 1e-9)

	// Names come out canonicalized.
	require.Equal(t, "Francis Kiko Pangilinan", ds.Records[1].Candidate)
	require.Equal(t, "Bonifacio Bosita", ds.Records[2].Candidate)

	// An empty cell is absent, not zero.
	_, ok = ds.Records[1].Score("SWS Apr 2025")
	require.False(t, ok)

	// A dashed cell is absent too.
	_, ok = ds.Records[2].Score("Pulse Asia Apr 2025")
	require.False(t, ok)
	v, ok = ds.Records[2].Score("SWS Apr 2025")
	require.True(t, ok)
	require.InDelta(t, 11.3, v, 1e-9)
}

func TestLoadPolls_NoInstrumentColumns(t *testing.T) {
	path := writeTable(t, `| Candidate | Party |
| --- | --- |
| Bong Go | PDP |
`)

	_, err := LoadPolls(path, names.NewStandardizer())
	require.ErrorContains(t, err, "one instrument")
}

func TestLoadPolls_RowShapeMismatch(t *testing.T) {
	path := writeTable(t, `| Candidate | Party | SWS |
| --- | --- | --- |
| Bong Go | PDP |
`)

	_, err := LoadPolls(path, names.NewStandardizer())
	var rowErr *RowError
	require.ErrorAs(t, err, &rowErr)
}
