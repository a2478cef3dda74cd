package citizenship

import (
	"context"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"go.uber.org/zap"
	"go.uber.org/zap/zapcore"
	"go.uber.org/zap/zaptest/observer"
)

const citizenshipsCsv = "Code;Explanation;From;Through\n" +
	"US;United States;04/07/1776;31/12/9999\n" +
	"NL;Netherlands;01/01/1815;31/12/9999\n" +
	"US;Duplicate United States;01/01/2000;31/12/9999\n" +
	"XX;Broken;not-a-date;31/12/9999\n" +
	"\n"

func writeSource(t *testing.T, content string) string {
	t.Helper()
	path := filepath.Join(t.TempDir(), "citizenships.csv")
	assert.NoError(t, os.WriteFile(path, []byte(content), 0o600))
	return path
}

func TestParseTable(t *testing.T) {
	table, err := ParseTable(strings.NewReader(citizenshipsCsv), zap.NewNop())

	assert.NoError(t, err)
	assert.Equal(t, 2, table.Len())

	entry, ok := table.Get("US")
	assert.True(t, ok)
	assert.Equal(t, "United States", entry.Explanation)
	assert.Equal(t, "04/07/1776", entry.From)

	_, ok = table.Get("XX")
	assert.False(t, ok)
	_, ok = table.Get("")
	assert.False(t, ok)
	_, ok = table.Get("   ")
	assert.False(t, ok)
}

func TestParseTableLogsSkippedRowIndex(t *testing.T) {
	core, logs := observer.New(zapcore.WarnLevel)
	input := "Code;Explanation;From;Through\n" +
		"US;United States;04/07/1776;31/12/9999\n" +
		";;;\n" +
		"XX;Broken;not-a-date;31/12/9999\n"

	table, err := ParseTable(strings.NewReader(input), zap.New(core))

	assert.NoError(t, err)
	assert.Equal(t, 1, table.Len())
	if assert.Equal(t, 1, logs.Len()) {
		fields := logs.All()[0].ContextMap()
		assert.Equal(t, int64(1), fields["row"])
		assert.Equal(t, "XX", fields["citizenship_code"])
	}
}

func TestCitizenshipService(t *testing.T) {
	ctx := context.Background()

	t.Run("lookup before initialize finds nothing", func(t *testing.T) {
		service := NewCitizenshipService(writeSource(t, citizenshipsCsv), zap.NewNop())

		_, ok := service.Get("US")
		assert.False(t, ok)
		_, ok = service.Lookup().Get("US")
		assert.False(t, ok)
	})

	t.Run("initialize then get", func(t *testing.T) {
		service := NewCitizenshipService(writeSource(t, citizenshipsCsv), zap.NewNop())

		assert.NoError(t, service.Initialize(ctx))
		entry, ok := service.Get("NL")
		assert.True(t, ok)
		assert.Equal(t, "Netherlands", entry.Explanation)
	})

	t.Run("reload swaps while old lookups stay intact", func(t *testing.T) {
		path := writeSource(t, citizenshipsCsv)
		service := NewCitizenshipService(path, zap.NewNop())
		assert.NoError(t, service.Initialize(ctx))
		before := service.Lookup()

		assert.NoError(t, os.WriteFile(path, []byte("Code;Explanation;From;Through\nDE;Germany;03/10/1990;31/12/9999\n"), 0o600))
		count, err := service.Reload(ctx)

		assert.NoError(t, err)
		assert.Equal(t, 1, count)
		_, ok := service.Get("US")
		assert.False(t, ok)
		_, ok = service.Get("DE")
		assert.True(t, ok)

		_, ok = before.Get("US")
		assert.True(t, ok)
	})

	t.Run("failed reload keeps previous table", func(t *testing.T) {
		path := writeSource(t, citizenshipsCsv)
		service := NewCitizenshipService(path, zap.NewNop())
		assert.NoError(t, service.Initialize(ctx))

		assert.NoError(t, os.Remove(path))
		_, err := service.Reload(ctx)

		assert.Error(t, err)
		_, ok := service.Get("US")
		assert.True(t, ok)
	})

	t.Run("missing source fails initialize", func(t *testing.T) {
		service := NewCitizenshipService(filepath.Join(t.TempDir(), "missing.csv"), zap.NewNop())
		assert.Error(t, service.Initialize(ctx))
	})
}
