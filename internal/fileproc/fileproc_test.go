package fileproc

import (
	"bytes"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/xuri/excelize/v2"
)

func TestProcessCSV(t *testing.T) {
	data := []byte("name,hours\nkickoff,8\ndesign,24\n")

	result, err := Process("plan.csv", "text/csv", data)
	require.NoError(t, err)

	assert.Equal(t, "csv", result["type"])
	assert.Equal(t, 3, result["rowCount"])
	assert.Equal(t, 2, result["columnCount"])
	assert.Equal(t, []string{"name", "hours"}, result["headers"])
}

func TestProcessCSVRaggedRows(t *testing.T) {
	data := []byte("a,b,c\nd\n")

	result, err := Process("ragged.csv", "text/csv", data)
	require.NoError(t, err)
	assert.Equal(t, 2, result["rowCount"])
	assert.Equal(t, 3, result["columnCount"])
}

func TestProcessText(t *testing.T) {
	data := []byte("one two three\nfour five")

	result, err := Process("notes.txt", "text/plain", data)
	require.NoError(t, err)

	assert.Equal(t, "text", result["type"])
	assert.Equal(t, 5, result["wordCount"])
	assert.Equal(t, 2, result["lineCount"])
}

func TestProcessUnknownFallsBackToRawText(t *testing.T) {
	result, err := Process("data.bin", "application/octet-stream", []byte("payload"))
	require.NoError(t, err)

	assert.Equal(t, "raw_text", result["type"])
	assert.Equal(t, "payload", result["content"])
}

func TestProcessExcel(t *testing.T) {
	f := excelize.NewFile()
	require.NoError(t, f.SetCellValue("Sheet1", "A1", "task"))
	require.NoError(t, f.SetCellValue("Sheet1", "B1", "owner"))
	require.NoError(t, f.SetCellValue("Sheet1", "A2", "kickoff"))
	require.NoError(t, f.SetCellValue("Sheet1", "B2", "alice"))

	var buf bytes.Buffer
	require.NoError(t, f.Write(&buf))

	result, err := Process("plan.xlsx", "application/vnd.openxmlformats-officedocument.spreadsheetml.sheet", buf.Bytes())
	require.NoError(t, err)

	assert.Equal(t, "excel", result["type"])
	summary := result["summary"].(map[string]any)
	assert.Equal(t, 1, summary["totalSheets"])

	sheets := result["sheets"].(map[string]any)
	sheet := sheets["Sheet1"].(map[string]any)
	assert.Equal(t, 2, sheet["rowCount"])
}

func TestProcessExcelCorrupt(t *testing.T) {
	_, err := Process("broken.xlsx", "application/vnd.ms-excel", []byte("not a workbook"))
	assert.Error(t, err)
}
