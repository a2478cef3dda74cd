package citizenship

import (
	"io"
	"patient-sync-service/internal/app/models"
	"patient-sync-service/internal/pkg/constvars"
	"patient-sync-service/internal/pkg/utils"
	"strings"

	"go.uber.org/zap"
)

// Table is an immutable code to entry mapping. It is never modified after
// construction; a reload builds a new Table.
type Table struct {
	entries map[string]models.CitizenshipEntry
}

// NewTable keeps the first entry for each code.
func NewTable(entries []models.CitizenshipEntry) *Table {
	table := &Table{entries: make(map[string]models.CitizenshipEntry, len(entries))}
	for _, entry := range entries {
		if entry.Code == "" {
			continue
		}
		if _, exists := table.entries[entry.Code]; exists {
			continue
		}
		table.entries[entry.Code] = entry
	}
	return table
}

func (t *Table) Get(code string) (models.CitizenshipEntry, bool) {
	code = strings.TrimSpace(code)
	if t == nil || code == "" {
		return models.CitizenshipEntry{}, false
	}
	entry, ok := t.entries[code]
	return entry, ok
}

func (t *Table) Len() int {
	if t == nil {
		return 0
	}
	return len(t.entries)
}

// ParseTable reads Code;Explanation;From;Through rows. Rows whose From is not a
// dd/MM/yyyy date are dropped so every loaded entry yields a valid period start.
func ParseTable(r io.Reader, log *zap.Logger) (*Table, error) {
	header, rows, err := utils.ReadCsvRecords(r, constvars.CitizenshipCsvDelimiter)
	if err != nil {
		return nil, err
	}

	entries := make([]models.CitizenshipEntry, 0, len(rows))
	for i, row := range rows {
		entry := models.CitizenshipEntry{
			Code:        header.Value(row, "Code"),
			Explanation: header.Value(row, "Explanation"),
			From:        header.Value(row, "From"),
			Through:     header.Value(row, "Through"),
		}
		if _, err := utils.ConvertDayMonthYearToISO(entry.From); err != nil {
			log.Warn("citizenship.ParseTable skipping row with invalid From date",
				zap.Int("row", i),
				zap.String(constvars.LoggingCitizenshipCodeKey, entry.Code),
				zap.Error(err),
			)
			continue
		}
		entries = append(entries, entry)
	}
	return NewTable(entries), nil
}
