package picker

import (
	"bytes"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestSelectInstrument_NoInstruments(t *testing.T) {
	var out bytes.Buffer
	_, err := SelectInstrument(strings.NewReader(""), &out, nil)
	require.Error(t, err)
	assert.Contains(t, err.Error(), "no polling instruments")
}

func TestSelectInstrument_AccessibleModePicksByNumber(t *testing.T) {
	var out bytes.Buffer
	selected, err := SelectInstrument(strings.NewReader("2\n"), &out, []string{"Pulse Asia", "SWS", "OCTA"})
	require.NoError(t, err)
	assert.Equal(t, "SWS", selected)
	assert.Contains(t, out.String(), "Polling instrument")
}
