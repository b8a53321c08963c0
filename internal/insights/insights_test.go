package insights

import (
	"testing"

	"pricebench/internal/records"
)

func rec(product string, price float64, location string) records.Record {
	return records.Record{Product: product, Price: price, Location: location}
}

func TestByProductMergesRawVariants(t *testing.T) {
	recs := []records.Record{
		rec("red_onion_(elfora)", 10, "gerji"),
		rec("Red Onion Elfora", 20, "garment"),
		rec("tomatoes", 5, "gerji"),
	}
	rows := ByProduct(recs)
	if len(rows) != 2 {
		t.Fatalf("got %d groups, want 2: %+v", len(rows), rows)
	}
	if rows[0].Product != "Red Onion Elfora" || rows[0].Average != 15 || rows[0].Count != 2 {
		t.Errorf("unexpected first group: %+v", rows[0])
	}
	if rows[1].Product != "Tomatoes" || rows[1].Count != 1 {
		t.Errorf("unexpected second group: %+v", rows[1])
	}
}

func TestCountsSumToInputSize(t *testing.T) {
	recs := []records.Record{
		rec("onion", 10, "gerji"),
		rec("onion", 12, "garment"),
		rec("tomato", 7, "gerji"),
		rec("carrot", 3, "garment"),
	}
	for name, fn := range map[string]func([]records.Record) []Row{
		"ByProduct":  ByProduct,
		"ByLocation": ByLocation,
		"ByBoth":     ByBoth,
	} {
		if got := TotalCount(fn(recs)); got != len(recs) {
			t.Errorf("%s: counts sum to %d, want %d", name, got, len(recs))
		}
	}
}

func TestEmptyInput(t *testing.T) {
	if rows := ByProduct(nil); len(rows) != 0 {
		t.Errorf("ByProduct(nil) = %+v, want empty", rows)
	}
	if rows := ByBoth([]records.Record{}); len(rows) != 0 {
		t.Errorf("ByBoth([]) = %+v, want empty", rows)
	}
}

func TestRoundingAndCleaning(t *testing.T) {
	recs := []records.Record{
		rec("onion", 10, "gerji"),
		rec("onion", 10.333, "gerji"),
		rec("onion", -4, "gerji"), // skipped during cleaning
		rec("", 99, "gerji"),      // blank product skipped for ByProduct
	}
	rows := ByProduct(recs)
	if len(rows) != 1 {
		t.Fatalf("got %d groups, want 1: %+v", len(rows), rows)
	}
	if rows[0].Average != 10.17 {
		t.Errorf("average = %v, want 10.17", rows[0].Average)
	}
	if rows[0].Count != 2 {
		t.Errorf("count = %d, want 2", rows[0].Count)
	}
}

func TestByBothGroupLabel(t *testing.T) {
	rows := ByBoth([]records.Record{rec("onion", 10, "gerji")})
	if len(rows) != 1 {
		t.Fatalf("got %d rows", len(rows))
	}
	if rows[0].GroupLabel() != "Onion @ Gerji" {
		t.Errorf("label = %q", rows[0].GroupLabel())
	}
}
