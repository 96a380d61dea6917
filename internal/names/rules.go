package names

// override maps a known raw spelling directly to its canonical name.
type override struct {
	Raw       string
	Canonical string
}

// substitution replaces the whole name when the name contains the substring.
type substitution struct {
	Contains  string
	Canonical string
}

// overrideTable lists raw variants (compared case-insensitively after title
// casing) that are malformatted in ways no general rule can fix. Checked
// before every other rule.
var overrideTable = []override{
	{"Go, Bong Go", "Bong Go"},
	{"Bong Revilla, Ramon, Jr.", "Ramon Bong Revilla Jr."},
	{"Bong Revilla", "Ramon Bong Revilla Jr."},
	{"Pacquiao, Manny Pacman", "Manny Pacquiao"},
	{"Tolentino, Francis Tol", "Francis Tolentino"},
	{"Salvador, Phillip Ipe", "Phillip Salvador"},
	{"Revillame, Willie Wil", "Willie Revillame"},
	{"Tulfo, Ben Bitag", "Ben Tulfo"},
	{"Bosita, Colonel", "Bonifacio Bosita"},
	{"Rodriguez, Atty. Vic", "Vic Rodriguez"},
}

// nicknameTokens are inline monikers one source inserts mid-name. Stripped
// with whole-word matching so they cannot eat parts of real names.
var nicknameTokens = []string{
	"Pacman",
	"Tol",
	"Wil",
	"Bitag",
}

// substitutionTable lists ordered (substring, canonical) corrections applied
// after nickname stripping. Rules run in order and each match replaces the
// whole string, so a later rule sees the result of an earlier one: the last
// matching rule wins.
var substitutionTable = []substitution{
	{"Bato Dela Rosa", "Bato dela Rosa"},
	{"Panfilo Lacson", "Ping Lacson"},
	{"Francis Tolentino", "Francis Tolentino"},
	{"Phillip Ipe Salvador", "Phillip Salvador"},
	{"Willie Revillame", "Willie Revillame"},
	{"Ben Tulfo", "Ben Tulfo"},
	{"Colonel Bosita", "Bonifacio Bosita"},
	{"Atty. Vic Rodriguez", "Vic Rodriguez"},
	{"Rodante Marcoleta", "Rodante Marcoleta"},
	{"Kiko Pangilinan", "Francis Kiko Pangilinan"},
}
