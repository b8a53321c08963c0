package records

import (
	"strings"
	"time"
)

// Record is one benchmarked product price entry. The store owns id
// assignment; ids are stable for the lifetime of the row.
type Record struct {
	ID          string
	Timestamp   time.Time
	SubmittedBy string
	Product     string
	Price       float64
	Location    string
	Remark      string
}

// Draft carries the fields of a record before the store assigns identity.
type Draft struct {
	SubmittedBy string
	Product     string
	Price       float64
	Location    string
	Remark      string
}

// Field names accepted by UpdateFields.
const (
	FieldProduct  = "product"
	FieldPrice    = "price"
	FieldLocation = "location"
	FieldRemark   = "remark"
)

// FieldMap holds the subset of record fields an update touches.
// Only keys present in the map are written; price values must be float64,
// the rest strings.
type FieldMap map[string]any

// Apply copies the fields of m onto r. Unknown keys are ignored.
func (m FieldMap) Apply(r *Record) {
	for k, v := range m {
		switch k {
		case FieldProduct:
			if s, ok := v.(string); ok {
				r.Product = s
			}
		case FieldPrice:
			if f, ok := v.(float64); ok {
				r.Price = f
			}
		case FieldLocation:
			if s, ok := v.(string); ok {
				r.Location = s
			}
		case FieldRemark:
			if s, ok := v.(string); ok {
				r.Remark = s
			}
		}
	}
}

// ValidField reports whether name is an updatable record field.
func ValidField(name string) bool {
	switch strings.ToLower(name) {
	case FieldProduct, FieldPrice, FieldLocation, FieldRemark:
		return true
	}
	return false
}
