package confusables

// Verdict is the resolver's decision for one candidate with respect to the
// filtered map.
type Verdict int

const (
	Keep      Verdict = iota
	Redundant         // normalization already yields the target
	Conflict          // normalization yields a different letter or digit
	Handled           // normalization yields a string a permissive identifier check accepts
)

func (v Verdict) String() string {
	switch v {
	case Keep:
		return "keep"
	case Redundant:
		return "redundant"
	case Conflict:
		return "conflict"
	case Handled:
		return "handled"
	}
	return "unknown"
}

// Classify applies the three normalization precedence rules in order.
func Classify(e Entry) Verdict {
	form := NormalizedForm(e.Source)
	if form == string(e.Target) {
		return Redundant
	}
	if r, ok := singleCanonical(form); ok && r != e.Target {
		return Conflict
	}
	if isPermissiveIdentifier(form) {
		return Handled
	}
	return Keep
}

// ResolveStats counts how candidates were routed.
type ResolveStats struct {
	Redundant         int
	Conflicts         int
	Handled           int
	Duplicates        int
	SupplementalAdded int
}

// Resolution holds the two maps built from one set of candidates.
//
// Full is valid for every consumer. Filtered only holds entries a consumer
// still needs when it does not NFKC-normalize input itself.
type Resolution struct {
	Full     *Map
	Filtered *Map
	Stats    ResolveStats
}

// Resolve splits candidates into the full and filtered maps. The full map is
// never pruned by normalization; only first-seen deduplication applies.
func Resolve(candidates []Entry) Resolution {
	res := Resolution{Full: NewMap(), Filtered: NewMap()}
	for _, c := range candidates {
		if !res.Full.Add(c) {
			res.Stats.Duplicates++
			continue
		}
		switch Classify(c) {
		case Redundant:
			res.Stats.Redundant++
		case Conflict:
			res.Stats.Conflicts++
		case Handled:
			res.Stats.Handled++
		default:
			res.Filtered.Add(c)
		}
	}
	return res
}
