package catalog

import "strings"

// Filter returns the order-preserving subsequence of the dataset matching
// the filter state. All four predicates are AND-combined; an all-empty
// state returns every record. Single pass, no copy of record contents.
func Filter(d *Dataset, state FilterState) []Program {
	if d == nil {
		return nil
	}
	if state.IsEmpty() {
		return d.Programs
	}

	term := strings.ToLower(state.SearchTerm)

	out := make([]Program, 0, len(d.Programs))
	for _, p := range d.Programs {
		if term != "" && !matchesSearch(p, term) {
			continue
		}
		if state.Institution != "" && state.Institution != p.InstitutionName {
			continue
		}
		if state.Department != "" && state.Department != p.Department {
			continue
		}
		if state.ProgramName != "" && state.ProgramName != p.ProgramName {
			continue
		}
		out = append(out, p)
	}
	return out
}

// matchesSearch checks the lowered term against the four searchable text
// fields. Empty fields are treated as missing and never match.
func matchesSearch(p Program, loweredTerm string) bool {
	for _, field := range [...]string{p.InstitutionName, p.ProgramName, p.Department, p.Municipality} {
		if field == "" {
			continue
		}
		if strings.Contains(strings.ToLower(field), loweredTerm) {
			return true
		}
	}
	return false
}
