package confusables

// Supplemental lists glyphs that render like a Latin letter but that neither
// confusables.txt (which maps them to another non-Latin lookalike) nor NFKC
// bring back to ASCII.
var Supplemental = []Entry{
	// Latin small capitals
	{Source: 0x0138, Target: 'k', Comment: "ĸ LATIN SMALL LETTER KRA"},
	{Source: 0x0262, Target: 'g', Comment: "ɢ LATIN LETTER SMALL CAPITAL G"},
	{Source: 0x0280, Target: 'r', Comment: "ʀ LATIN LETTER SMALL CAPITAL R"},
	{Source: 0x0299, Target: 'b', Comment: "ʙ LATIN LETTER SMALL CAPITAL B"},
	{Source: 0x029C, Target: 'h', Comment: "ʜ LATIN LETTER SMALL CAPITAL H"},
	{Source: 0x1D07, Target: 'e', Comment: "ᴇ LATIN LETTER SMALL CAPITAL E"},
	{Source: 0x1D0B, Target: 'k', Comment: "ᴋ LATIN LETTER SMALL CAPITAL K"},
	{Source: 0x1D0D, Target: 'm', Comment: "ᴍ LATIN LETTER SMALL CAPITAL M"},
	{Source: 0x1D1B, Target: 't', Comment: "ᴛ LATIN LETTER SMALL CAPITAL T"},
	{Source: 0x1D1C, Target: 'u', Comment: "ᴜ LATIN LETTER SMALL CAPITAL U"},

	// Cyrillic lowercase whose table target is a small capital
	{Source: 0x0432, Target: 'b', Comment: "в CYRILLIC SMALL LETTER VE"},
	{Source: 0x043A, Target: 'k', Comment: "к CYRILLIC SMALL LETTER KA"},
	{Source: 0x043C, Target: 'm', Comment: "м CYRILLIC SMALL LETTER EM"},
	{Source: 0x043D, Target: 'h', Comment: "н CYRILLIC SMALL LETTER EN"},
	{Source: 0x0442, Target: 't', Comment: "т CYRILLIC SMALL LETTER TE"},
}

// MergeSupplemental adds curated entries to res. An entry whose source is
// already in the full map is left alone. It reaches the filtered map unless
// normalization already resolves it, using the same rules as Resolve.
func MergeSupplemental(res *Resolution, extra []Entry) {
	for _, e := range extra {
		if !IsCanonical(e.Target) || e.Source <= 0x7F {
			continue
		}
		if !res.Full.Add(e) {
			res.Stats.Duplicates++
			continue
		}
		res.Stats.SupplementalAdded++
		if Classify(e) == Keep {
			res.Filtered.Add(e)
		}
	}
}
