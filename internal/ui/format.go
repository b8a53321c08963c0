package ui

import (
	"fmt"
	"strings"

	"pricebench/core/telegram/format"
	"pricebench/internal/insights"
	"pricebench/internal/records"
	"pricebench/internal/textutil"
)

// PageSize is how many entries a view page shows.
const PageSize = 5

func esc(s string) string { return format.EscapeMarkdown(s) }

// RecordDetails renders one record as a MarkdownV2 block.
func RecordDetails(r records.Record) string {
	var b strings.Builder
	fmt.Fprintf(&b, "🆔 %s\n", format.Code(r.ID))
	fmt.Fprintf(&b, "📦 Product: %s\n", esc(textutil.Normalize(r.Product)))
	fmt.Fprintf(&b, "💰 Price: %s\n", esc(fmt.Sprintf("%.2f", r.Price)))
	fmt.Fprintf(&b, "📍 Location: %s\n", esc(textutil.Normalize(r.Location)))
	if r.Remark != "" {
		fmt.Fprintf(&b, "📝 Remark: %s\n", esc(r.Remark))
	}
	if !r.Timestamp.IsZero() {
		fmt.Fprintf(&b, "🕐 %s\n", esc(r.Timestamp.Format("2006-01-02 15:04")))
	}
	if r.SubmittedBy != "" {
		fmt.Fprintf(&b, "👤 %s\n", esc(r.SubmittedBy))
	}
	return b.String()
}

// BatchSummary renders the pre-submit confirmation for a batch entry.
func BatchSummary(location, remark string, products []string, prices []float64) string {
	var b strings.Builder
	b.WriteString(format.Bold("Batch entry summary") + "\n\n")
	fmt.Fprintf(&b, "📍 Location: %s\n", esc(textutil.Normalize(location)))
	if remark != "" {
		fmt.Fprintf(&b, "📝 Remark: %s\n", esc(remark))
	}
	b.WriteString("\n")
	for i, p := range products {
		fmt.Fprintf(&b, "• %s: %s\n", esc(textutil.Normalize(p)), esc(fmt.Sprintf("%.2f", prices[i])))
	}
	fmt.Fprintf(&b, "\n%s", esc(fmt.Sprintf("%d record(s) will be added.", len(products))))
	return b.String()
}

// SingleSummary renders the pre-submit confirmation for a single entry.
func SingleSummary(d records.Draft) string {
	var b strings.Builder
	b.WriteString(format.Bold("New entry") + "\n\n")
	fmt.Fprintf(&b, "📦 Product: %s\n", esc(textutil.Normalize(d.Product)))
	fmt.Fprintf(&b, "💰 Price: %s\n", esc(fmt.Sprintf("%.2f", d.Price)))
	fmt.Fprintf(&b, "📍 Location: %s\n", esc(textutil.Normalize(d.Location)))
	if d.Remark != "" {
		fmt.Fprintf(&b, "📝 Remark: %s\n", esc(d.Remark))
	}
	return b.String()
}

// UpdateSummary renders current values against the collected changes.
func UpdateSummary(target records.Record, changes records.FieldMap) string {
	var b strings.Builder
	b.WriteString(format.Bold("Update summary") + "\n\n")
	fmt.Fprintf(&b, "🆔 %s\n\n", format.Code(target.ID))
	writeChange := func(label, old, new string) {
		fmt.Fprintf(&b, "%s: %s → %s\n", esc(label), esc(old), esc(new))
	}
	if v, ok := changes[records.FieldProduct]; ok {
		writeChange("📦 Product", textutil.Normalize(target.Product), textutil.Normalize(v.(string)))
	}
	if v, ok := changes[records.FieldPrice]; ok {
		writeChange("💰 Price", fmt.Sprintf("%.2f", target.Price), fmt.Sprintf("%.2f", v.(float64)))
	}
	if v, ok := changes[records.FieldLocation]; ok {
		writeChange("📍 Location", textutil.Normalize(target.Location), textutil.Normalize(v.(string)))
	}
	if v, ok := changes[records.FieldRemark]; ok {
		writeChange("📝 Remark", target.Remark, v.(string))
	}
	return b.String()
}

// RenderInsights formats an aggregate report. The combined report is
// grouped under each product with its per-location averages indented.
func RenderInsights(kind string, rows []insights.Row) string {
	if len(rows) == 0 {
		return esc("No records yet. Add some entries first.")
	}
	var b strings.Builder
	switch kind {
	case InsightProduct:
		b.WriteString(format.Bold("Average price by product") + "\n\n")
		for _, r := range rows {
			fmt.Fprintf(&b, "• %s: %s %s\n",
				esc(r.Product), esc(fmt.Sprintf("%.2f", r.Average)), esc(countSuffix(r.Count)))
		}
	case InsightLocation:
		b.WriteString(format.Bold("Average price by location") + "\n\n")
		for _, r := range rows {
			fmt.Fprintf(&b, "• %s: %s %s\n",
				esc(r.Location), esc(fmt.Sprintf("%.2f", r.Average)), esc(countSuffix(r.Count)))
		}
	default:
		b.WriteString(format.Bold("Average price by product and location") + "\n\n")
		prev := ""
		for _, r := range rows {
			if r.Product != prev {
				fmt.Fprintf(&b, "%s\n", format.Bold(esc(r.Product)))
				prev = r.Product
			}
			fmt.Fprintf(&b, "   %s: %s %s\n",
				esc(r.Location), esc(fmt.Sprintf("%.2f", r.Average)), esc(countSuffix(r.Count)))
		}
	}
	return b.String()
}

func countSuffix(n int) string {
	if n == 1 {
		return "(1 entry)"
	}
	return fmt.Sprintf("(%d entries)", n)
}

// RenderPage formats one page of the newest-first record listing and
// reports whether earlier or later pages exist.
func RenderPage(snapshot []records.Record, page int) (text string, hasPrev, hasNext bool) {
	start := page * PageSize
	if start >= len(snapshot) || page < 0 {
		return esc("Nothing on this page."), page > 0, false
	}
	end := start + PageSize
	if end > len(snapshot) {
		end = len(snapshot)
	}
	var b strings.Builder
	header := fmt.Sprintf("Entries %d-%d of %d", start+1, end, len(snapshot))
	b.WriteString(format.Bold(esc(header)) + "\n\n")
	for _, r := range snapshot[start:end] {
		b.WriteString(RecordDetails(r))
		b.WriteString("\n")
	}
	return b.String(), page > 0, end < len(snapshot)
}
