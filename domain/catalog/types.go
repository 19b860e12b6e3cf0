package catalog

// Program is a single program offering from the source spreadsheet.
// Every string field may be empty, which means the source cell was blank
// or the column was absent. Tuition is a pointer so a genuine 0 value can
// be told apart from a missing cell during aggregation.
type Program struct {
	InstitutionName string   `json:"institutionName"`
	ProgramName     string   `json:"programName"`
	Department      string   `json:"department"`
	Municipality    string   `json:"municipality"`
	CoverageType    string   `json:"coverageType"`
	Tuition         *float64 `json:"tuition,omitempty"`
	ProgramCode     string   `json:"programCode"`
	InstitutionCode string   `json:"institutionCode"`

	// Extra carries source columns the browser does not recognize.
	// They survive decoding but nothing downstream reads them.
	Extra map[string]string `json:"-"`
}

// TuitionOrZero applies the summation policy: a missing tuition
// contributes zero.
func (p Program) TuitionOrZero() float64 {
	if p.Tuition == nil {
		return 0
	}
	return *p.Tuition
}

// Dataset is the ordered record sequence as decoded from the source file.
// It is never mutated after load; source order is kept and carries no
// meaning.
type Dataset struct {
	Programs []Program
}

// Len returns the number of records in the dataset.
func (d *Dataset) Len() int {
	if d == nil {
		return 0
	}
	return len(d.Programs)
}

// FilterState is the user's current query. Empty string means
// "no constraint" for every field. SearchTerm matches case-insensitively
// as a substring; the three facet fields match by exact equality.
//
// The struct is comparable so it can key a memoized view.
type FilterState struct {
	SearchTerm  string `json:"q" form:"q"`
	Institution string `json:"institution" form:"institution"`
	Department  string `json:"department" form:"department"`
	ProgramName string `json:"program" form:"program"`
}

// IsEmpty reports whether the state constrains nothing.
func (s FilterState) IsEmpty() bool {
	return s.SearchTerm == "" && s.Institution == "" && s.Department == "" && s.ProgramName == ""
}

// Statistics summarizes a filtered view.
type Statistics struct {
	Count                int     `json:"count"`
	DistinctInstitutions int     `json:"distinctInstitutions"`
	DistinctDepartments  int     `json:"distinctDepartments"`
	MeanTuition          float64 `json:"meanTuition"`
}

// FacetField selects one of the three exact-match filter dimensions.
type FacetField string

const (
	FacetInstitution FacetField = "institution"
	FacetDepartment  FacetField = "department"
	FacetProgram     FacetField = "program"
)

// facetValue returns the record field backing a facet dimension.
// Unknown fields read as missing.
func facetValue(p Program, field FacetField) string {
	switch field {
	case FacetInstitution:
		return p.InstitutionName
	case FacetDepartment:
		return p.Department
	case FacetProgram:
		return p.ProgramName
	}
	return ""
}
