package export

import (
	"bytes"
	"testing"

	"github.com/precast-erp/backend/internal/application/common"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/xuri/excelize/v2"
)

func TestXLSXExporter_ExportXLSX(t *testing.T) {
	data, err := NewXLSXExporter().ExportXLSX(
		common.Table{
			Title:   "Timesheets",
			Headers: []string{"Employee", "Hours"},
			Rows:    [][]any{{"Dana Ruiz", 40.5}, {"Lee Park", 38}},
		},
		common.Table{Title: "A very long sheet title that exceeds the limit", Headers: []string{"X"}},
	)
	require.NoError(t, err)

	f, err := excelize.OpenReader(bytes.NewReader(data))
	require.NoError(t, err)
	defer f.Close()

	sheets := f.GetSheetList()
	require.Len(t, sheets, 2)
	assert.Equal(t, "Timesheets", sheets[0])
	assert.Len(t, []rune(sheets[1]), 31)

	rows, err := f.GetRows("Timesheets")
	require.NoError(t, err)
	require.Len(t, rows, 3)
	assert.Equal(t, []string{"Employee", "Hours"}, rows[0])
	assert.Equal(t, "Dana Ruiz", rows[1][0])
	assert.Equal(t, "40.5", rows[1][1])
}

func TestXLSXExporter_Empty(t *testing.T) {
	data, err := NewXLSXExporter().ExportXLSX()
	require.NoError(t, err)

	f, err := excelize.OpenReader(bytes.NewReader(data))
	require.NoError(t, err)
	defer f.Close()
	assert.Equal(t, []string{"Export"}, f.GetSheetList())
}
