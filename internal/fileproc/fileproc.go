package fileproc

import (
	"bytes"
	"encoding/csv"
	"fmt"
	"strings"

	"github.com/xuri/excelize/v2"
)

// Process extracts structured content from an uploaded file based on
// its name and MIME type. Unknown formats degrade to raw text rather
// than failing the upload.
func Process(fileName, mimeType string, data []byte) (map[string]any, error) {
	switch {
	case strings.Contains(mimeType, "spreadsheet"),
		strings.HasSuffix(fileName, ".xlsx"),
		strings.HasSuffix(fileName, ".xls"):
		return processExcel(data)
	case strings.HasSuffix(fileName, ".csv"):
		return processCSV(data)
	case strings.Contains(mimeType, "text"),
		strings.HasSuffix(fileName, ".txt"):
		return processText(data), nil
	default:
		return map[string]any{
			"content": string(data),
			"type":    "raw_text",
		}, nil
	}
}

func processExcel(data []byte) (map[string]any, error) {
	f, err := excelize.OpenReader(bytes.NewReader(data))
	if err != nil {
		return nil, fmt.Errorf("open workbook: %w", err)
	}
	defer f.Close()

	sheetNames := f.GetSheetList()
	sheets := map[string]any{}

	for _, name := range sheetNames {
		rows, err := f.GetRows(name)
		if err != nil {
			return nil, fmt.Errorf("read sheet %q: %w", name, err)
		}

		columnCount := 0
		if len(rows) > 0 {
			columnCount = len(rows[0])
		}
		sheets[name] = map[string]any{
			"data":        rows,
			"rowCount":    len(rows),
			"columnCount": columnCount,
		}
	}

	return map[string]any{
		"type":   "excel",
		"sheets": sheets,
		"summary": map[string]any{
			"totalSheets": len(sheetNames),
			"sheetNames":  sheetNames,
		},
	}, nil
}

func processCSV(data []byte) (map[string]any, error) {
	reader := csv.NewReader(bytes.NewReader(data))
	reader.FieldsPerRecord = -1

	records, err := reader.ReadAll()
	if err != nil {
		return nil, fmt.Errorf("parse csv: %w", err)
	}

	columnCount := 0
	headers := []string{}
	if len(records) > 0 {
		columnCount = len(records[0])
		headers = records[0]
	}

	return map[string]any{
		"type":        "csv",
		"data":        records,
		"rowCount":    len(records),
		"columnCount": columnCount,
		"headers":     headers,
	}, nil
}

func processText(data []byte) map[string]any {
	text := string(data)
	return map[string]any{
		"type":      "text",
		"content":   text,
		"wordCount": len(strings.Fields(text)),
		"lineCount": len(strings.Split(text, "\n")),
	}
}
