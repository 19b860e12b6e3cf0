package excel

import (
	"bytes"
	"encoding/csv"
	"fmt"
	"log"
	"path"
	"strings"

	"github.com/xuri/excelize/v2"
)

// Decoder turns raw spreadsheet bytes into SheetData. Both xlsx and CSV
// payloads are handled; the format is picked from the source ref's
// extension, defaulting to xlsx.
type Decoder struct {
	fileType string // "xlsx" or "csv"
}

// NewDecoder creates a decoder for the given source ref (file path or
// URL). Only the extension is consulted.
func NewDecoder(ref string) *Decoder {
	fileType := "xlsx"
	if strings.ToLower(path.Ext(ref)) == ".csv" {
		fileType = "csv"
	}
	return &Decoder{fileType: fileType}
}

// Decode parses the payload into headers plus rows. The first row is the
// header row; every later row becomes a RawRow keyed by those headers,
// cells trimmed. A payload without at least a header and one data row is
// a decode failure.
func (d *Decoder) Decode(data []byte) (*SheetData, error) {
	log.Printf("[Decoder] Decoding %s payload (%d bytes)", d.fileType, len(data))

	switch d.fileType {
	case "csv":
		return d.decodeCSV(data)
	case "xlsx":
		return d.decodeExcel(data)
	default:
		return nil, fmt.Errorf("unsupported file type: %s", d.fileType)
	}
}

func (d *Decoder) decodeExcel(data []byte) (*SheetData, error) {
	f, err := excelize.OpenReader(bytes.NewReader(data))
	if err != nil {
		return nil, fmt.Errorf("failed to open workbook: %w", err)
	}
	defer f.Close()

	sheets := f.GetSheetList()
	if len(sheets) == 0 {
		return nil, fmt.Errorf("workbook has no sheets")
	}

	// Always the first worksheet.
	rows, err := f.GetRows(sheets[0])
	if err != nil {
		return nil, fmt.Errorf("failed to read sheet %s: %w", sheets[0], err)
	}

	return d.processRows(rows)
}

func (d *Decoder) decodeCSV(data []byte) (*SheetData, error) {
	reader := csv.NewReader(bytes.NewReader(data))
	reader.FieldsPerRecord = -1

	rows, err := reader.ReadAll()
	if err != nil {
		return nil, fmt.Errorf("failed to read CSV payload: %w", err)
	}

	return d.processRows(rows)
}

// processRows converts raw string rows into SheetData
func (d *Decoder) processRows(rows [][]string) (*SheetData, error) {
	if len(rows) < 2 {
		return nil, fmt.Errorf("payload must have at least a header row and one data row")
	}

	headerRow := rows[0]
	headers := make([]string, len(headerRow))
	for i, header := range headerRow {
		headers[i] = strings.TrimSpace(header)
	}

	dataRows := make([]RawRow, 0, len(rows)-1)
	for i := 1; i < len(rows); i++ {
		row := rows[i]
		rowData := make(RawRow)

		for j, cell := range row {
			if j < len(headers) {
				rowData[headers[j]] = strings.TrimSpace(cell)
			}
		}

		dataRows = append(dataRows, rowData)
	}

	log.Printf("[Decoder] Payload processed (%d columns, %d rows)", len(headers), len(dataRows))

	return &SheetData{
		Headers: headers,
		Rows:    dataRows,
	}, nil
}
