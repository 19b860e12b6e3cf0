package excel

// RawRow is one decoded data row keyed by its trimmed header cell.
type RawRow map[string]string

// SheetData is the raw decode result before field mapping: the header
// row plus every data row.
type SheetData struct {
	Headers []string
	Rows    []RawRow
}
