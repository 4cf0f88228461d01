package perceptual

import "unicode"

// ScriptRule names a script and tests membership.
type ScriptRule struct {
	Name  string
	Match func(rune) bool
}

func inRange(lo, hi rune) func(rune) bool {
	return func(r rune) bool { return r >= lo && r <= hi }
}

func inTable(t *unicode.RangeTable) func(rune) bool {
	return func(r rune) bool { return unicode.Is(t, r) }
}

// ScriptRules is evaluated in order and the first match wins. The two range
// rules come first because their letters also belong to Latin or Common.
var ScriptRules = []ScriptRule{
	{"Mathematical", inRange(0x1D400, 0x1D7FF)},
	{"Fullwidth", inRange(0xFF00, 0xFFEF)},
	{"Latin", inTable(unicode.Latin)},
	{"Greek", inTable(unicode.Greek)},
	{"Cyrillic", inTable(unicode.Cyrillic)},
	{"Armenian", inTable(unicode.Armenian)},
	{"Cherokee", inTable(unicode.Cherokee)},
	{"Coptic", inTable(unicode.Coptic)},
	{"Georgian", inTable(unicode.Georgian)},
	{"Hebrew", inTable(unicode.Hebrew)},
	{"Arabic", inTable(unicode.Arabic)},
	{"Syriac", inTable(unicode.Syriac)},
	{"Nko", inTable(unicode.Nko)},
	{"Canadian_Aboriginal", inTable(unicode.Canadian_Aboriginal)},
	{"Lisu", inTable(unicode.Lisu)},
	{"Vai", inTable(unicode.Vai)},
	{"Tifinagh", inTable(unicode.Tifinagh)},
	{"Runic", inTable(unicode.Runic)},
	{"Ogham", inTable(unicode.Ogham)},
	{"Gothic", inTable(unicode.Gothic)},
	{"Old_Italic", inTable(unicode.Old_Italic)},
	{"Deseret", inTable(unicode.Deseret)},
	{"Osage", inTable(unicode.Osage)},
	{"Lycian", inTable(unicode.Lycian)},
	{"Carian", inTable(unicode.Carian)},
	{"Elbasan", inTable(unicode.Elbasan)},
	{"Warang_Citi", inTable(unicode.Warang_Citi)},
	{"Ahom", inTable(unicode.Ahom)},
	{"Masaram_Gondi", inTable(unicode.Masaram_Gondi)},
	{"Mende_Kikakui", inTable(unicode.Mende_Kikakui)},
	{"Bamum", inTable(unicode.Bamum)},
	{"Glagolitic", inTable(unicode.Glagolitic)},
	{"Ethiopic", inTable(unicode.Ethiopic)},
	{"Devanagari", inTable(unicode.Devanagari)},
	{"Bengali", inTable(unicode.Bengali)},
	{"Gurmukhi", inTable(unicode.Gurmukhi)},
	{"Gujarati", inTable(unicode.Gujarati)},
	{"Oriya", inTable(unicode.Oriya)},
	{"Tamil", inTable(unicode.Tamil)},
	{"Telugu", inTable(unicode.Telugu)},
	{"Kannada", inTable(unicode.Kannada)},
	{"Malayalam", inTable(unicode.Malayalam)},
	{"Sinhala", inTable(unicode.Sinhala)},
	{"Thai", inTable(unicode.Thai)},
	{"Lao", inTable(unicode.Lao)},
	{"Tibetan", inTable(unicode.Tibetan)},
	{"Myanmar", inTable(unicode.Myanmar)},
	{"Khmer", inTable(unicode.Khmer)},
	{"Mongolian", inTable(unicode.Mongolian)},
	{"Han", inTable(unicode.Han)},
	{"Hiragana", inTable(unicode.Hiragana)},
	{"Katakana", inTable(unicode.Katakana)},
	{"Yi", inTable(unicode.Yi)},
}

const (
	ScriptOther  = "Other"
	ScriptCommon = "Common"
)

// ClassifyScript returns the first matching rule name for r. Letters no rule
// claims are "Other"; everything else is "Common".
func ClassifyScript(r rune) string {
	return classifyWith(ScriptRules, r)
}

func classifyWith(rules []ScriptRule, r rune) string {
	for _, rule := range rules {
		if rule.Match(r) {
			return rule.Name
		}
	}
	if unicode.IsLetter(r) {
		return ScriptOther
	}
	return ScriptCommon
}

// scriptOf classifies a source string by its first rune.
func scriptOf(s string) string {
	for _, r := range s {
		return ClassifyScript(r)
	}
	return ScriptCommon
}
