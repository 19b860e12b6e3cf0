package catalog

import (
	"reflect"
	"sort"
	"testing"
)

func TestFacetValues(t *testing.T) {
	d := &Dataset{Programs: []Program{
		{InstitutionName: "Zeta", Department: "R2", ProgramName: "B"},
		{InstitutionName: "Alfa", Department: "R1", ProgramName: "A"},
		{InstitutionName: "Zeta", Department: "R1", ProgramName: "B"}, // duplicates
		{Department: "R3"}, // missing institution and program
	}}

	tests := []struct {
		name  string
		field FacetField
		want  []string
	}{
		{
			name:  "institutions sorted and deduplicated",
			field: FacetInstitution,
			want:  []string{"Alfa", "Zeta"},
		},
		{
			name:  "departments include every distinct value",
			field: FacetDepartment,
			want:  []string{"R1", "R2", "R3"},
		},
		{
			name:  "programs exclude missing values",
			field: FacetProgram,
			want:  []string{"A", "B"},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := FacetValues(d, tt.field)
			if !reflect.DeepEqual(got, tt.want) {
				t.Errorf("FacetValues(%s) = %v, want %v", tt.field, got, tt.want)
			}
			if !sort.StringsAreSorted(got) {
				t.Errorf("FacetValues(%s) not sorted: %v", tt.field, got)
			}
		})
	}
}

func TestFacetValuesUnknownField(t *testing.T) {
	d := testDataset()
	if got := FacetValues(d, FacetField("unknown")); len(got) != 0 {
		t.Errorf("unknown facet field should yield no options, got %v", got)
	}
}

func TestAllFacetValues(t *testing.T) {
	d := testDataset()

	got := AllFacetValues(d)

	if !reflect.DeepEqual(got.Institutions, []string{"X", "Y"}) {
		t.Errorf("Institutions = %v", got.Institutions)
	}
	if !reflect.DeepEqual(got.Departments, []string{"R1", "R2"}) {
		t.Errorf("Departments = %v", got.Departments)
	}
	if !reflect.DeepEqual(got.Programs, []string{"Derecho", "Ingeniería", "Medicina"}) {
		t.Errorf("Programs = %v", got.Programs)
	}
}
