package excel

import (
	"strconv"
	"strings"
	"unicode"

	"golang.org/x/text/runes"
	"golang.org/x/text/transform"
	"golang.org/x/text/unicode/norm"

	"programas/domain/catalog"
)

// headerAliases maps normalized source headers onto Program fields. The
// source catalogs circulate with both Spanish and English headers, so
// both spellings are accepted. Normalization (see normalizeHeader) strips
// accents, so "matrícula" and "matricula" land on the same key.
var headerAliases = map[string]string{
	"institutionname":          "institutionName",
	"institution":              "institutionName",
	"institucion":              "institutionName",
	"nombre institucion":       "institutionName",
	"nombre de la institucion": "institutionName",

	"programname":         "programName",
	"program":             "programName",
	"programa":            "programName",
	"nombre del programa": "programName",

	"region":       "department",
	"department":   "department",
	"departamento": "department",

	"locality":     "municipality",
	"municipality": "municipality",
	"municipio":    "municipality",

	"coveragetype":      "coverageType",
	"coverage":          "coverageType",
	"cobertura":         "coverageType",
	"tipo de cobertura": "coverageType",

	"tuitionvalue":    "tuition",
	"tuition":         "tuition",
	"matricula":       "tuition",
	"valor matricula": "tuition",

	"programcode":         "programCode",
	"codigo del programa": "programCode",
	"codigo snies":        "programCode",
	"snies":               "programCode",

	"institutioncode":          "institutionCode",
	"codigo institucion":       "institutionCode",
	"codigo de la institucion": "institutionCode",
}

// MapPrograms converts decoded sheet rows into the catalog's typed
// records. Unrecognized columns are carried through in Extra; recognized
// columns with blank cells stay missing. No validation is performed.
func MapPrograms(sheet *SheetData) []catalog.Program {
	fieldByHeader := make(map[string]string, len(sheet.Headers))
	for _, h := range sheet.Headers {
		if field, ok := headerAliases[normalizeHeader(h)]; ok {
			fieldByHeader[h] = field
		}
	}

	programs := make([]catalog.Program, 0, len(sheet.Rows))
	for _, row := range sheet.Rows {
		var p catalog.Program
		for header, cell := range row {
			field, recognized := fieldByHeader[header]
			if !recognized {
				if cell != "" {
					if p.Extra == nil {
						p.Extra = make(map[string]string)
					}
					p.Extra[header] = cell
				}
				continue
			}
			if cell == "" {
				continue
			}

			switch field {
			case "institutionName":
				p.InstitutionName = cell
			case "programName":
				p.ProgramName = cell
			case "department":
				p.Department = cell
			case "municipality":
				p.Municipality = cell
			case "coverageType":
				p.CoverageType = cell
			case "tuition":
				p.Tuition = parseTuition(cell)
			case "programCode":
				p.ProgramCode = cell
			case "institutionCode":
				p.InstitutionCode = cell
			}
		}
		programs = append(programs, p)
	}
	return programs
}

// parseTuition parses a tuition cell into a value. Currency symbols,
// spaces and thousands separators are tolerated; anything unparseable
// stays missing rather than failing the load.
func parseTuition(cell string) *float64 {
	s := strings.TrimSpace(strings.TrimLeft(cell, "$ "))
	if s == "" {
		return nil
	}

	if v, err := strconv.ParseFloat(s, 64); err == nil {
		return &v
	}

	// "1.234.567" / "1,234,567" style grouping
	stripped := strings.NewReplacer(".", "", ",", "", " ", "").Replace(s)
	if v, err := strconv.ParseFloat(stripped, 64); err == nil {
		return &v
	}

	return nil
}

// normalizeHeader lowercases a header, strips accents, and collapses
// underscores and runs of whitespace to single spaces.
func normalizeHeader(h string) string {
	h = strings.ToLower(strings.TrimSpace(h))
	h = strings.ReplaceAll(h, "_", " ")
	h = strings.Join(strings.Fields(h), " ")

	t := transform.Chain(norm.NFD, runes.Remove(runes.In(unicode.Mn)), norm.NFC)
	if folded, _, err := transform.String(t, h); err == nil {
		h = folded
	}
	return h
}
