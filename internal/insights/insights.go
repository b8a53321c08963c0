package insights

import (
	"math"
	"sort"

	"pricebench/internal/records"
	"pricebench/internal/textutil"
)

// Row is one aggregate result: the average buying price of a group of
// records and how many records contributed. Product and Location hold
// normalized labels; one of them is empty for single-key groupings.
type Row struct {
	Product  string
	Location string
	Average  float64
	Count    int
}

// ByProduct averages prices per normalized product label.
func ByProduct(recs []records.Record) []Row {
	return aggregate(recs, func(r records.Record) (string, string) {
		return textutil.Normalize(r.Product), ""
	})
}

// ByLocation averages prices per normalized location label.
func ByLocation(recs []records.Record) []Row {
	return aggregate(recs, func(r records.Record) (string, string) {
		return "", textutil.Normalize(r.Location)
	})
}

// ByBoth averages prices per (product, location) pair.
func ByBoth(recs []records.Record) []Row {
	return aggregate(recs, func(r records.Record) (string, string) {
		return textutil.Normalize(r.Product), textutil.Normalize(r.Location)
	})
}

type accumulator struct {
	product  string
	location string
	sum      float64
	count    int
}

// aggregate cleans the input, groups it by the derived key and computes
// the mean rounded to two decimals. Rows with a non-positive price or a
// blank grouping label are skipped.
func aggregate(recs []records.Record, key func(records.Record) (string, string)) []Row {
	groups := make(map[string]*accumulator)
	for _, r := range recs {
		if r.Price <= 0 {
			continue
		}
		product, location := key(r)
		if product == "" && location == "" {
			continue
		}
		k := product + "\x00" + location
		acc, ok := groups[k]
		if !ok {
			acc = &accumulator{product: product, location: location}
			groups[k] = acc
		}
		acc.sum += r.Price
		acc.count++
	}

	rows := make([]Row, 0, len(groups))
	for _, acc := range groups {
		rows = append(rows, Row{
			Product:  acc.product,
			Location: acc.location,
			Average:  round2(acc.sum / float64(acc.count)),
			Count:    acc.count,
		})
	}
	sort.Slice(rows, func(i, j int) bool {
		if rows[i].Product != rows[j].Product {
			return rows[i].Product < rows[j].Product
		}
		return rows[i].Location < rows[j].Location
	})
	return rows
}

func round2(v float64) float64 {
	return math.Round(v*100) / 100
}

// GroupLabel renders the grouping key of a row for display.
func (r Row) GroupLabel() string {
	switch {
	case r.Product != "" && r.Location != "":
		return r.Product + " @ " + r.Location
	case r.Product != "":
		return r.Product
	default:
		return r.Location
	}
}

// TotalCount sums the record counts over rows.
func TotalCount(rows []Row) int {
	total := 0
	for _, r := range rows {
		total += r.Count
	}
	return total
}
