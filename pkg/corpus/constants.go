package corpus

// ProtectedIdentifiers are the names the corpus attacks. Order matters: it
// fixes row numbering and the benign pairing.
var ProtectedIdentifiers = []string{
	"admin",
	"administrator",
	"root",
	"support",
	"security",
	"paypal",
	"google",
	"apple",
	"microsoft",
	"amazon",
	"github",
	"moderator",
	"system",
	"billing",
	"official",
	"staff",
	"help",
	"login",
	"account",
	"api",
}

// ASCIILookalikes are plain ASCII respellings of protected names.
var ASCIILookalikes = map[string][]string{
	"admin":         {"admln", "adrnin", "adm1n"},
	"administrator": {"adminlstrator", "admlnistrator"},
	"root":          {"r00t", "ro0t"},
	"support":       {"supp0rt", "5upport"},
	"security":      {"secur1ty", "securlty"},
	"paypal":        {"paypa1", "paypai", "pavpal"},
	"google":        {"g00gle", "goog1e", "googie"},
	"apple":         {"app1e", "appie"},
	"microsoft":     {"rnicrosoft", "micr0soft"},
	"amazon":        {"arnazon", "amaz0n"},
	"github":        {"glthub", "g1thub"},
	"moderator":     {"rnoderator", "moderat0r"},
	"system":        {"systern", "5ystem"},
	"billing":       {"bi11ing", "biliing"},
	"official":      {"offlcial", "0fficial"},
	"staff":         {"5taff", "staft"},
	"help":          {"he1p", "heip"},
	"login":         {"1ogin", "iogin"},
	"account":       {"acc0unt", "accourt"},
	"api":           {"apl", "ap1"},
}

// BenignSample is a curated legitimate identifier.
type BenignSample struct {
	Identifier string
	Category   string
	Notes      string
}

var BenignSamples = []BenignSample{
	{"sarah", "benign-ascii", "plain ASCII personal name"},
	{"mary-jane", "benign-ascii", "hyphenated ASCII name"},
	{"dev_ops42", "benign-ascii", "ASCII handle with digits and underscore"},
	{"josé", "benign-latin-diacritic", "precomposed Latin letter with acute"},
	{"müller", "benign-latin-diacritic", "German umlaut"},
	{"søren", "benign-latin-diacritic", "Danish o with stroke"},
	{"zoë", "benign-latin-diacritic", "diaeresis on a vowel"},
	{"straße", "benign-latin-diacritic", "German sharp s"},
	{"дмитрий", "benign-single-script", "whole-word Cyrillic name"},
	{"ελένη", "benign-single-script", "whole-word Greek name"},
	{"ivanova", "benign-ascii", "transliterated name"},
	{"田中", "benign-single-script", "Han surname"},
	{"さくら", "benign-single-script", "Hiragana given name"},
	{"nguyễn", "benign-latin-diacritic", "Vietnamese stacked diacritics"},
}

// Marks are the injection characters used by the structural pass.
type Marks struct {
	Invisible []rune
	Bidi      []rune
	Combining []rune
}

// DefaultMarks lists the injection characters; only the first
// MaxPerClass of each class are used per identifier.
var DefaultMarks = Marks{
	Invisible: []rune{
		0x200B, // ZERO WIDTH SPACE
		0x200C, // ZERO WIDTH NON-JOINER
		0x200D, // ZERO WIDTH JOINER
		0x2060, // WORD JOINER
		0xFEFF, // ZERO WIDTH NO-BREAK SPACE
	},
	Bidi: []rune{
		0x202E, // RIGHT-TO-LEFT OVERRIDE
		0x2066, // LEFT-TO-RIGHT ISOLATE
		0x202D, // LEFT-TO-RIGHT OVERRIDE
		0x200F, // RIGHT-TO-LEFT MARK
	},
	Combining: []rune{
		0x0307, // COMBINING DOT ABOVE
		0x0301, // COMBINING ACUTE ACCENT
		0x0338, // COMBINING LONG SOLIDUS OVERLAY
	},
}

const (
	// MaxSubstitutions caps confusable substitutions collected per identifier.
	MaxSubstitutions = 4
	// MaxPerClass caps insertions per mark class per identifier.
	MaxPerClass = 2
)
