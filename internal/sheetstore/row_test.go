package sheetstore

import (
	"testing"
	"time"

	"pricebench/internal/records"
)

func TestRecordToRowOrder(t *testing.T) {
	ts := time.Date(2026, 8, 1, 12, 0, 0, 0, time.UTC)
	r := records.Record{
		ID: "abc", Timestamp: ts, SubmittedBy: "tester",
		Product: "onion", Price: 12.5, Location: "Gerji", Remark: "weekly",
	}
	row := recordToRow(r)
	if len(row) != colCount {
		t.Fatalf("row has %d cells, want %d", len(row), colCount)
	}
	if row[colID] != "abc" || row[colTimestamp] != "2026-08-01T12:00:00Z" {
		t.Errorf("id/timestamp cells wrong: %v", row)
	}
	if row[colPrice] != 12.5 || row[colRemark] != "weekly" {
		t.Errorf("price/remark cells wrong: %v", row)
	}
}

func TestRowToRecordTolerance(t *testing.T) {
	// short, hand-edited row: no remark column, price typed as text
	row := []any{"abc", "2026-08-01T12:00:00Z", "tester", "onion", "12.5", "Gerji"}
	r := rowToRecord(row)
	if r.ID != "abc" || r.Product != "onion" || r.Location != "Gerji" {
		t.Errorf("unexpected record: %+v", r)
	}
	if r.Price != 12.5 {
		t.Errorf("price = %v, want 12.5", r.Price)
	}
	if r.Remark != "" {
		t.Errorf("remark = %q, want empty", r.Remark)
	}
	if r.Timestamp.IsZero() {
		t.Error("timestamp not parsed")
	}

	// garbage timestamp must not panic or fail
	r = rowToRecord([]any{"x", "not-a-time"})
	if !r.Timestamp.IsZero() {
		t.Errorf("garbage timestamp parsed to %v", r.Timestamp)
	}
}
