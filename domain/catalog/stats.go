package catalog

import "github.com/montanaflynn/stats"

// Summarize computes the aggregate statistics for a filtered view.
// Distinct counts collapse all missing values into a single shared set
// member; a missing tuition contributes zero to the mean. An empty view
// yields all zeros.
func Summarize(view []Program) Statistics {
	if len(view) == 0 {
		return Statistics{}
	}

	institutions := make(map[string]bool, len(view))
	departments := make(map[string]bool, len(view))
	tuitions := make([]float64, len(view))
	for i, p := range view {
		institutions[p.InstitutionName] = true
		departments[p.Department] = true
		tuitions[i] = p.TuitionOrZero()
	}

	mean, err := stats.Mean(tuitions)
	if err != nil {
		mean = 0
	}

	return Statistics{
		Count:                len(view),
		DistinctInstitutions: len(institutions),
		DistinctDepartments:  len(departments),
		MeanTuition:          mean,
	}
}
