package utils

import (
	"encoding/csv"
	"errors"
	"io"
	"patient-sync-service/internal/pkg/dto/requests"
	"patient-sync-service/internal/pkg/exceptions"
	"strings"
)

const utf8BOM = "\ufeff"

// HeaderIndex maps a lowercased column name to its position in a row.
type HeaderIndex map[string]int

func MakeHeaderIndex(header []string) HeaderIndex {
	index := make(HeaderIndex, len(header))
	for i, column := range header {
		name := strings.ToLower(strings.TrimSpace(strings.TrimPrefix(column, utf8BOM)))
		if _, exists := index[name]; !exists {
			index[name] = i
		}
	}
	return index
}

// Value returns the trimmed cell for column, or "" when the column or cell is missing.
func (h HeaderIndex) Value(row []string, column string) string {
	pos, ok := h[strings.ToLower(column)]
	if !ok || pos >= len(row) {
		return ""
	}
	return strings.TrimSpace(row[pos])
}

// ReadCsvRecords reads a header-driven delimited file. Blank rows are dropped.
func ReadCsvRecords(r io.Reader, delimiter rune) (HeaderIndex, [][]string, error) {
	reader := csv.NewReader(r)
	reader.Comma = delimiter
	reader.FieldsPerRecord = -1
	reader.LazyQuotes = true

	header, err := reader.Read()
	if errors.Is(err, io.EOF) {
		return HeaderIndex{}, nil, nil
	}
	if err != nil {
		return nil, nil, err
	}

	var rows [][]string
	for {
		row, err := reader.Read()
		if errors.Is(err, io.EOF) {
			break
		}
		if err != nil {
			return nil, nil, err
		}
		if isBlankRow(row) {
			continue
		}
		rows = append(rows, row)
	}
	return MakeHeaderIndex(header), rows, nil
}

func isBlankRow(row []string) bool {
	for _, cell := range row {
		if strings.TrimSpace(cell) != "" {
			return false
		}
	}
	return true
}

// ParsePatientsCsv turns an uploaded patient table into flat records, in file order.
func ParsePatientsCsv(r io.Reader, delimiter rune) ([]requests.PatientCsv, error) {
	header, rows, err := ReadCsvRecords(r, delimiter)
	if err != nil {
		return nil, exceptions.ErrCannotParseCsv(err)
	}

	records := make([]requests.PatientCsv, 0, len(rows))
	for _, row := range rows {
		records = append(records, requests.PatientCsv{
			Nr:                  header.Value(row, "Nr"),
			Prefix:              header.Value(row, "Prefix"),
			Identifier:          header.Value(row, "Identifier"),
			FirstName:           header.Value(row, "FirstName"),
			LastName:            header.Value(row, "LastName"),
			BirthDate:           header.Value(row, "BirthDate"),
			BirthPlace:          header.Value(row, "BirthPlace"),
			CitizenshipCode:     header.Value(row, "CitizenshipCode"),
			Gender:              header.Value(row, "Gender"),
			AddressStreetName:   header.Value(row, "AddressStreetName"),
			AddressStreetNo:     header.Value(row, "AddressStreetNo"),
			AddressAppartmentNo: header.Value(row, "AddressAppartmentNo"),
			AddressPostalCode:   header.Value(row, "AddressPostalCode"),
			AddressCity:         header.Value(row, "AddressCity"),
			AddressCountry:      header.Value(row, "AddressCountry"),
			AddressType:         header.Value(row, "AddressType"),
		})
	}
	return records, nil
}

// DelimiterFromString returns the first rune of value, or fallback when value is empty.
func DelimiterFromString(value string, fallback rune) rune {
	for _, r := range value {
		return r
	}
	return fallback
}
