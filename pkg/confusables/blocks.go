package confusables

import "fmt"

// Block is a named Unicode block range.
type Block struct {
	Name   string
	Lo, Hi rune
}

// blocks covers the blocks confusables.txt draws Latin lookalikes from.
// Code points outside them fall back to a synthetic 128-wide range name.
var blocks = []Block{
	{"Latin-1 Supplement", 0x0080, 0x00FF},
	{"Latin Extended-A", 0x0100, 0x017F},
	{"Latin Extended-B", 0x0180, 0x024F},
	{"IPA Extensions", 0x0250, 0x02AF},
	{"Spacing Modifier Letters", 0x02B0, 0x02FF},
	{"Combining Diacritical Marks", 0x0300, 0x036F},
	{"Greek and Coptic", 0x0370, 0x03FF},
	{"Cyrillic", 0x0400, 0x04FF},
	{"Cyrillic Supplement", 0x0500, 0x052F},
	{"Armenian", 0x0530, 0x058F},
	{"Hebrew", 0x0590, 0x05FF},
	{"Arabic", 0x0600, 0x06FF},
	{"Syriac", 0x0700, 0x074F},
	{"NKo", 0x07C0, 0x07FF},
	{"Devanagari", 0x0900, 0x097F},
	{"Bengali", 0x0980, 0x09FF},
	{"Gurmukhi", 0x0A00, 0x0A7F},
	{"Gujarati", 0x0A80, 0x0AFF},
	{"Oriya", 0x0B00, 0x0B7F},
	{"Tamil", 0x0B80, 0x0BFF},
	{"Telugu", 0x0C00, 0x0C7F},
	{"Kannada", 0x0C80, 0x0CFF},
	{"Malayalam", 0x0D00, 0x0D7F},
	{"Sinhala", 0x0D80, 0x0DFF},
	{"Thai", 0x0E00, 0x0E7F},
	{"Lao", 0x0E80, 0x0EFF},
	{"Tibetan", 0x0F00, 0x0FFF},
	{"Myanmar", 0x1000, 0x109F},
	{"Georgian", 0x10A0, 0x10FF},
	{"Ethiopic", 0x1200, 0x137F},
	{"Cherokee", 0x13A0, 0x13FF},
	{"Unified Canadian Aboriginal Syllabics", 0x1400, 0x167F},
	{"Ogham", 0x1680, 0x169F},
	{"Runic", 0x16A0, 0x16FF},
	{"Khmer", 0x1780, 0x17FF},
	{"Mongolian", 0x1800, 0x18AF},
	{"Phonetic Extensions", 0x1D00, 0x1D7F},
	{"Phonetic Extensions Supplement", 0x1D80, 0x1DBF},
	{"Latin Extended Additional", 0x1E00, 0x1EFF},
	{"Greek Extended", 0x1F00, 0x1FFF},
	{"General Punctuation", 0x2000, 0x206F},
	{"Superscripts and Subscripts", 0x2070, 0x209F},
	{"Letterlike Symbols", 0x2100, 0x214F},
	{"Number Forms", 0x2150, 0x218F},
	{"Arrows", 0x2190, 0x21FF},
	{"Mathematical Operators", 0x2200, 0x22FF},
	{"Miscellaneous Technical", 0x2300, 0x23FF},
	{"Enclosed Alphanumerics", 0x2460, 0x24FF},
	{"Box Drawing", 0x2500, 0x257F},
	{"Geometric Shapes", 0x25A0, 0x25FF},
	{"Miscellaneous Symbols", 0x2600, 0x26FF},
	{"Dingbats", 0x2700, 0x27BF},
	{"Glagolitic", 0x2C00, 0x2C5F},
	{"Latin Extended-C", 0x2C60, 0x2C7F},
	{"Coptic", 0x2C80, 0x2CFF},
	{"Tifinagh", 0x2D30, 0x2D7F},
	{"CJK Symbols and Punctuation", 0x3000, 0x303F},
	{"Katakana", 0x30A0, 0x30FF},
	{"CJK Unified Ideographs", 0x4E00, 0x9FFF},
	{"Yi Syllables", 0xA000, 0xA48F},
	{"Lisu", 0xA4D0, 0xA4FF},
	{"Vai", 0xA500, 0xA63F},
	{"Cyrillic Extended-B", 0xA640, 0xA69F},
	{"Bamum", 0xA6A0, 0xA6FF},
	{"Latin Extended-D", 0xA720, 0xA7FF},
	{"Latin Extended-E", 0xAB30, 0xAB6F},
	{"Cherokee Supplement", 0xAB70, 0xABBF},
	{"Alphabetic Presentation Forms", 0xFB00, 0xFB4F},
	{"Arabic Presentation Forms-A", 0xFB50, 0xFDFF},
	{"Halfwidth and Fullwidth Forms", 0xFF00, 0xFFEF},
	{"Lycian", 0x10280, 0x1029F},
	{"Carian", 0x102A0, 0x102DF},
	{"Old Italic", 0x10300, 0x1032F},
	{"Gothic", 0x10330, 0x1034F},
	{"Deseret", 0x10400, 0x1044F},
	{"Osage", 0x104B0, 0x104FF},
	{"Elbasan", 0x10500, 0x1052F},
	{"Warang Citi", 0x118A0, 0x118FF},
	{"Ahom", 0x11700, 0x1174F},
	{"Masaram Gondi", 0x11D00, 0x11D5F},
	{"Mathematical Alphanumeric Symbols", 0x1D400, 0x1D7FF},
	{"Mende Kikakui", 0x1E800, 0x1E8DF},
	{"Enclosed Alphanumeric Supplement", 0x1F100, 0x1F1FF},
	{"Symbols for Legacy Computing", 0x1FB00, 0x1FBFF},
}

// BlockOf names the block r belongs to.
func BlockOf(r rune) string {
	for _, b := range blocks {
		if r >= b.Lo && r <= b.Hi {
			return b.Name
		}
	}
	lo := r &^ 0x7F
	return fmt.Sprintf("U+%04X..U+%04X", lo, lo+0x7F)
}

// BlockGroup is a run of entries sharing a block.
type BlockGroup struct {
	Block   string
	Entries []Entry
}

// GroupByBlock splits entries, which must be in ascending source order, into
// consecutive block groups.
func GroupByBlock(entries []Entry) []BlockGroup {
	var groups []BlockGroup
	for _, e := range entries {
		name := BlockOf(e.Source)
		if n := len(groups); n > 0 && groups[n-1].Block == name {
			groups[n-1].Entries = append(groups[n-1].Entries, e)
			continue
		}
		groups = append(groups, BlockGroup{Block: name, Entries: []Entry{e}})
	}
	return groups
}
