package names

import (
	"testing"

	"github.com/stretchr/testify/require"
)

func TestStandardize_TitleCaseBaseline(t *testing.T) {
	std := NewStandardizer()

	require.Equal(t, "Erwin Tulfo", std.Standardize("ERWIN TULFO"))
	require.Equal(t, "Imee Marcos", std.Standardize("imee marcos"))
}

func TestStandardize_OverridePrecedence(t *testing.T) {
	std := NewStandardizer()

	// The override wins over the comma and nickname rules that would
	// otherwise mangle these.
	require.Equal(t, "Bong Go", std.Standardize("go, bong go"))
	require.Equal(t, "Bong Go", std.Standardize("GO, BONG GO"))
	require.Equal(t, "Ramon Bong Revilla Jr.", std.Standardize("BONG REVILLA, RAMON, JR."))
	require.Equal(t, "Manny Pacquiao", std.Standardize("Pacquiao, Manny Pacman"))
}

func TestStandardize_CommaInversion(t *testing.T) {
	std := NewStandardizer()

	require.Equal(t, "Juan Dela Cruz", std.Standardize("Dela Cruz, Juan"))
	require.Equal(t, "Bam Aquino", std.Standardize("AQUINO, BAM"))
	// Multiple segments rotate the surname to the end.
	require.Equal(t, "Juan Jr. Reyes", std.Standardize("Reyes, Juan, Jr."))
}

func TestStandardize_NicknameStripping(t *testing.T) {
	std := NewStandardizer()

	require.Equal(t, "Manny Pacquiao", std.Standardize("Manny Pacman Pacquiao"))
	// Whole-word matching only: no rule token appears inside other words.
	require.Equal(t, "Wilfredo Toledo", std.Standardize("Wilfredo Toledo"))
}

func TestStandardize_SubstringCorrections(t *testing.T) {
	std := NewStandardizer()

	require.Equal(t, "Ping Lacson", std.Standardize("LACSON, PANFILO"))
	require.Equal(t, "Bato dela Rosa", std.Standardize("DELA ROSA, BATO"))
	require.Equal(t, "Francis Kiko Pangilinan", std.Standardize("Kiko Pangilinan"))
	require.Equal(t, "Vic Rodriguez", std.Standardize("RODRIGUEZ, ATTY. VIC"))
}

func TestStandardize_FallbackCollapsesWhitespace(t *testing.T) {
	std := NewStandardizer()

	require.Equal(t, "Juan Miguel Zubiri", std.Standardize("  juan   miguel  zubiri "))
}

func TestStandardize_Idempotent(t *testing.T) {
	std := NewStandardizer()

	inputs := []string{
		"GO, BONG GO",
		"BONG REVILLA, RAMON, JR.",
		"DELA ROSA, BATO",
		"LACSON, PANFILO",
		"PANGILINAN, KIKO",
		"Manny Pacman Pacquiao",
		"TULFO, BEN BITAG",
		"BOSITA, COLONEL",
		"Dela Cruz, Juan",
		"  juan   miguel  zubiri ",
	}
	for _, raw := range inputs {
		once := std.Standardize(raw)
		require.Equal(t, once, std.Standardize(once), "not idempotent for %q", raw)
	}
}

func TestStandardize_Deterministic(t *testing.T) {
	std := NewStandardizer()

	for i := 0; i < 3; i++ {
		require.Equal(t, "Ping Lacson", std.Standardize("LACSON, PANFILO"))
	}
	// A fresh Standardizer behaves identically.
	require.Equal(t, std.Standardize("TULFO, BEN BITAG"), NewStandardizer().Standardize("TULFO, BEN BITAG"))
}

func TestFingerprint_Stable(t *testing.T) {
	require.Equal(t, NewStandardizer().Fingerprint(), NewStandardizer().Fingerprint())
	require.Len(t, NewStandardizer().Fingerprint(), 64)
}
