package catalog

import "sort"

// FacetValues collects the distinct non-empty values of a facet dimension
// across the full dataset, sorted ascending. Option sets always come from
// the unfiltered dataset so selecting one facet never narrows another
// facet's dropdown.
func FacetValues(d *Dataset, field FacetField) []string {
	if d == nil {
		return nil
	}

	seen := make(map[string]bool)
	values := make([]string, 0)
	for _, p := range d.Programs {
		v := facetValue(p, field)
		if v == "" || seen[v] {
			continue
		}
		seen[v] = true
		values = append(values, v)
	}

	sort.Strings(values)
	return values
}

// FacetOptions bundles the three option sets the presentation layer
// needs to populate its dropdowns.
type FacetOptions struct {
	Institutions []string `json:"institutions"`
	Departments  []string `json:"departments"`
	Programs     []string `json:"programs"`
}

// AllFacetValues computes the three option sets in one call.
func AllFacetValues(d *Dataset) FacetOptions {
	return FacetOptions{
		Institutions: FacetValues(d, FacetInstitution),
		Departments:  FacetValues(d, FacetDepartment),
		Programs:     FacetValues(d, FacetProgram),
	}
}
