package footnote

// Report summarizes the footnote structure of a document without modifying
// it.
type Report struct {
	References int      `json:"references"`
	Order      []string `json:"order,omitempty"`
	Missing    []string `json:"missing,omitempty"`
	Unused     []string `json:"unused,omitempty"`
	Duplicates []string `json:"duplicates,omitempty"`
	Adjacent   int      `json:"adjacent"`
}

// Check scans text and reports the total number of inline markers, the
// distinct labels in first-reference order, labels referenced without a
// definition, definitions never referenced, labels defined more than once,
// and the marker pairs the adjacency fixer would separate.
func (d Dialect) Check(text string) Report {
	markers := d.Markers(text)
	defs := d.Definitions(text)
	order := Order(markers)

	defined := make(map[string]int, len(defs))
	for _, def := range defs {
		defined[def.Label]++
	}
	referenced := make(map[string]bool, len(order))
	for _, label := range order {
		referenced[label] = true
	}

	rep := Report{References: len(markers), Order: order}

	for _, label := range order {
		if defined[label] == 0 {
			rep.Missing = append(rep.Missing, label)
		}
	}

	seen := make(map[string]bool, len(defs))
	for _, def := range defs {
		if seen[def.Label] {
			continue
		}
		seen[def.Label] = true
		if !referenced[def.Label] {
			rep.Unused = append(rep.Unused, def.Label)
		}
		if defined[def.Label] > 1 {
			rep.Duplicates = append(rep.Duplicates, def.Label)
		}
	}

	for _, m := range findOverlapping(d.adjacent, text) {
		if m[0] == 0 || text[m[0]-1] == '\n' {
			continue
		}
		rep.Adjacent++
	}

	return rep
}
