package export

import (
	"bytes"
	"encoding/csv"
	"fmt"
	"io"
)

// Column names one field of an export and how wide it renders in a PDF.
type Column struct {
	Key   string
	Title string
	Width float64
}

// Table is tabular export content. Rows are keyed by Column.Key.
type Table struct {
	Title   string
	Columns []Column
	Rows    []map[string]string
}

func (t Table) validate() error {
	if len(t.Columns) == 0 {
		return fmt.Errorf("export requires at least one column")
	}
	return nil
}

// CSVExporter renders a Table as CSV with a header row of column titles.
type CSVExporter struct {
	// BOM prefixes the output with a UTF-8 byte order mark so spreadsheet
	// tools detect the encoding of Bengali names.
	BOM bool
}

// NewCSVExporter builds a CSV exporter that writes a byte order mark.
func NewCSVExporter() *CSVExporter {
	return &CSVExporter{BOM: true}
}

// ContentType is the media type of Render's output.
func (e *CSVExporter) ContentType() string { return "text/csv; charset=utf-8" }

// Extension is the file extension of Render's output.
func (e *CSVExporter) Extension() string { return "csv" }

// Render produces CSV bytes for the table.
func (e *CSVExporter) Render(t Table) ([]byte, error) {
	buf := &bytes.Buffer{}
	if err := e.Write(buf, t); err != nil {
		return nil, err
	}
	return buf.Bytes(), nil
}

// Write streams the table as CSV to w.
func (e *CSVExporter) Write(w io.Writer, t Table) error {
	if err := t.validate(); err != nil {
		return err
	}
	if e.BOM {
		if _, err := w.Write([]byte{0xEF, 0xBB, 0xBF}); err != nil {
			return fmt.Errorf("write csv bom: %w", err)
		}
	}
	writer := csv.NewWriter(w)
	header := make([]string, len(t.Columns))
	for i, col := range t.Columns {
		header[i] = col.Title
		if header[i] == "" {
			header[i] = col.Key
		}
	}
	if err := writer.Write(header); err != nil {
		return fmt.Errorf("write csv headers: %w", err)
	}
	record := make([]string, len(t.Columns))
	for _, row := range t.Rows {
		for i, col := range t.Columns {
			record[i] = row[col.Key]
		}
		if err := writer.Write(record); err != nil {
			return fmt.Errorf("write csv row: %w", err)
		}
	}
	writer.Flush()
	if err := writer.Error(); err != nil {
		return fmt.Errorf("flush csv: %w", err)
	}
	return nil
}
