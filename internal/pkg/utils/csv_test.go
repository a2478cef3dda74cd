package utils

import (
	"patient-sync-service/internal/pkg/dto/requests"
	"patient-sync-service/internal/pkg/exceptions"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
)

const patientsHeader = "Nr;Prefix;Identifier;FirstName;LastName;BirthDate;BirthPlace;CitizenshipCode;Gender;" +
	"AddressStreetName;AddressStreetNo;AddressAppartmentNo;AddressPostalCode;AddressCity;AddressCountry;AddressType\n"

func validPatientCsv(nr, identifier string) requests.PatientCsv {
	return requests.PatientCsv{
		Nr:         nr,
		Identifier: identifier,
		FirstName:  "Jane",
		LastName:   "Doe",
		BirthDate:  "1980-02-01",
	}
}

func TestParsePatientsCsv(t *testing.T) {
	t.Run("trims padded cells", func(t *testing.T) {
		input := patientsHeader +
			" 1 ; Mrs ; PAT1 ;Jane; Doe ; 1980-02-01 ; Utrecht ; NL ; F ; Main St ; 12 ; b ; 1234AB ; Utrecht ; NL ; home \n"

		records, err := ParsePatientsCsv(strings.NewReader(input), ';')

		assert.NoError(t, err)
		assert.Equal(t, []requests.PatientCsv{{
			Nr:                  "1",
			Prefix:              "Mrs",
			Identifier:          "PAT1",
			FirstName:           "Jane",
			LastName:            "Doe",
			BirthDate:           "1980-02-01",
			BirthPlace:          "Utrecht",
			CitizenshipCode:     "NL",
			Gender:              "F",
			AddressStreetName:   "Main St",
			AddressStreetNo:     "12",
			AddressAppartmentNo: "b",
			AddressPostalCode:   "1234AB",
			AddressCity:         "Utrecht",
			AddressCountry:      "NL",
			AddressType:         "home",
		}}, records)
	})

	t.Run("finds columns by name in any order and case", func(t *testing.T) {
		input := "LASTNAME;identifier;Nr;firstname;BirthDate\n" +
			"Doe;PAT1;1;Jane;1980-02-01\n"

		records, err := ParsePatientsCsv(strings.NewReader(input), ';')

		assert.NoError(t, err)
		if assert.Len(t, records, 1) {
			assert.Equal(t, validPatientCsv("1", "PAT1"), records[0])
		}
	})

	t.Run("strips byte order mark from first header", func(t *testing.T) {
		input := "\ufeffNr;Identifier;FirstName;LastName;BirthDate\n" +
			"7;PAT7;Jane;Doe;1980-02-01\n"

		records, err := ParsePatientsCsv(strings.NewReader(input), ';')

		assert.NoError(t, err)
		if assert.Len(t, records, 1) {
			assert.Equal(t, "7", records[0].Nr)
		}
	})

	t.Run("skips blank rows", func(t *testing.T) {
		input := "Nr;Identifier;FirstName;LastName;BirthDate\n" +
			"1;PAT1;Jane;Doe;1980-02-01\n" +
			";;;;\n" +
			" ; ;  ; ; \n" +
			"2;PAT2;Jane;Doe;1980-02-01\n"

		records, err := ParsePatientsCsv(strings.NewReader(input), ';')

		assert.NoError(t, err)
		assert.Equal(t, []requests.PatientCsv{
			validPatientCsv("1", "PAT1"),
			validPatientCsv("2", "PAT2"),
		}, records)
	})

	t.Run("missing column reads as empty", func(t *testing.T) {
		input := "Nr;Identifier\n" +
			"1;PAT1\n" +
			"2\n"

		records, err := ParsePatientsCsv(strings.NewReader(input), ';')

		assert.NoError(t, err)
		if assert.Len(t, records, 2) {
			assert.Equal(t, "", records[0].FirstName)
			assert.Equal(t, "", records[0].AddressType)
			assert.Equal(t, "2", records[1].Nr)
			assert.Equal(t, "", records[1].Identifier)
		}
	})

	t.Run("empty input yields no records", func(t *testing.T) {
		records, err := ParsePatientsCsv(strings.NewReader(""), ';')

		assert.NoError(t, err)
		assert.Empty(t, records)
	})

	t.Run("malformed input is a parse error", func(t *testing.T) {
		_, err := ParsePatientsCsv(strings.NewReader("Nr;Identifier\n1;PAT1\n"), '\n')

		var customErr *exceptions.CustomError
		assert.ErrorAs(t, err, &customErr)
	})
}

func TestMakeHeaderIndex(t *testing.T) {
	index := MakeHeaderIndex([]string{"\ufeff Code ", "Explanation", "code"})

	assert.Equal(t, HeaderIndex{"code": 0, "explanation": 1}, index)
	assert.Equal(t, "NL", index.Value([]string{" NL ", "Netherlands"}, "CODE"))
	assert.Equal(t, "", index.Value([]string{"NL"}, "Explanation"))
	assert.Equal(t, "", index.Value([]string{"NL", "Netherlands"}, "From"))
}

func TestDelimiterFromString(t *testing.T) {
	t.Run("empty falls back", func(t *testing.T) {
		assert.Equal(t, ';', DelimiterFromString("", ';'))
	})

	t.Run("first rune wins", func(t *testing.T) {
		assert.Equal(t, ',', DelimiterFromString(",;", ';'))
		assert.Equal(t, '\t', DelimiterFromString("\t", ';'))
	})
}

func TestValidatePatientsCsv(t *testing.T) {
	t.Run("valid records have no violations", func(t *testing.T) {
		records := []requests.PatientCsv{validPatientCsv("1", "PAT1"), validPatientCsv("2", "PAT2")}

		assert.Empty(t, ValidatePatientsCsv(records))
	})

	t.Run("collects violations from every row", func(t *testing.T) {
		missingIdentifier := validPatientCsv("2", "")
		missingNames := validPatientCsv("3", "PAT3")
		missingNames.FirstName = ""
		missingNames.LastName = ""

		records := []requests.PatientCsv{
			validPatientCsv("1", "PAT1"),
			missingIdentifier,
			missingNames,
		}

		assert.Equal(t, []exceptions.FieldError{
			{Field: "[1].Identifier", Message: "identifier is required"},
			{Field: "[2].FirstName", Message: "firstname is required"},
			{Field: "[2].LastName", Message: "lastname is required"},
		}, ValidatePatientsCsv(records))
	})

	t.Run("trimmed blank cells fail required", func(t *testing.T) {
		input := "Nr;Identifier;FirstName;LastName;BirthDate\n" +
			" 1 ; PAT1 ;Jane; Doe ;1980-02-01\n" +
			";;;;\n" +
			"2;   ;Jane;Doe;1980-02-01\n"

		records, err := ParsePatientsCsv(strings.NewReader(input), ';')

		assert.NoError(t, err)
		assert.Equal(t, []exceptions.FieldError{
			{Field: "[1].Identifier", Message: "identifier is required"},
		}, ValidatePatientsCsv(records))
	})
}
