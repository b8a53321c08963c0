package sheetstore

import (
	"fmt"
	"strconv"
	"time"

	"pricebench/internal/records"
)

// Column order is fixed by the existing sheet layout.
const (
	colID = iota
	colTimestamp
	colSubmittedBy
	colProduct
	colPrice
	colLocation
	colRemark
	colCount
)

func recordToRow(r records.Record) []any {
	row := make([]any, colCount)
	row[colID] = r.ID
	row[colTimestamp] = r.Timestamp.Format(time.RFC3339)
	row[colSubmittedBy] = r.SubmittedBy
	row[colProduct] = r.Product
	row[colPrice] = r.Price
	row[colLocation] = r.Location
	row[colRemark] = r.Remark
	return row
}

// rowToRecord is tolerant of short rows and odd cell types; the sheet can
// be edited by hand and must not break listing.
func rowToRecord(row []any) records.Record {
	var r records.Record
	r.ID = cell(row, colID)
	if ts, err := time.Parse(time.RFC3339, cell(row, colTimestamp)); err == nil {
		r.Timestamp = ts
	}
	r.SubmittedBy = cell(row, colSubmittedBy)
	r.Product = cell(row, colProduct)
	r.Price = cellFloat(row, colPrice)
	r.Location = cell(row, colLocation)
	r.Remark = cell(row, colRemark)
	return r
}

func cell(row []any, i int) string {
	if i >= len(row) {
		return ""
	}
	return str(row[i])
}

func cellFloat(row []any, i int) float64 {
	if i >= len(row) {
		return 0
	}
	switch v := row[i].(type) {
	case float64:
		return v
	case string:
		f, _ := strconv.ParseFloat(v, 64)
		return f
	default:
		return 0
	}
}

func str(v any) string {
	if s, ok := v.(string); ok {
		return s
	}
	return fmt.Sprint(v)
}
