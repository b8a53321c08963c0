package session

import "pricebench/internal/records"

// Flow is the tagged union of per-user conversation states. Each variant
// carries its own step enum and the data collected so far, so a session
// can never mix steps from different wizards.
type Flow interface {
	flow()
}

// Single entry wizard: one product, price, location, optional remark.

type SingleStep int

const (
	SingleStepProduct SingleStep = iota
	SingleStepPrice
	SingleStepLocation
	SingleStepRemark
	SingleStepConfirm
)

type SingleEntryFlow struct {
	Step  SingleStep
	Draft records.Draft
}

// Batch entry wizard: shared location and remark, a product checklist,
// then one price per selected product, submitted as a single batch.

type BatchStep int

const (
	BatchStepLocation BatchStep = iota
	BatchStepRemark
	BatchStepProducts
	BatchStepPrices
	BatchStepConfirm
)

type BatchEntryFlow struct {
	Step     BatchStep
	Location string
	Remark   string
	// Selected holds toggled product catalog indexes.
	Selected map[int]bool
	// Queue fixes the price-entry order once the checklist is done.
	Queue    []string
	QueuePos int
	Prices   []float64
}

// Update wizard: locate a record, pick fields, collect new values.

type UpdateStep int

const (
	UpdateStepID UpdateStep = iota
	UpdateStepFields
	UpdateStepValues
	UpdateStepConfirm
)

type UpdateFlow struct {
	Step   UpdateStep
	Target records.Record
	// Fields holds the toggled field names from the checklist.
	Fields map[string]bool
	// Queue fixes the value-entry order once the checklist is done.
	Queue    []string
	QueuePos int
	Changes  records.FieldMap
}

// Delete wizard: locate a record, show it, confirm.

type DeleteStep int

const (
	DeleteStepID DeleteStep = iota
	DeleteStepConfirm
)

type DeleteFlow struct {
	Step   DeleteStep
	Target records.Record
}

// View wizard: last-N pagination over a snapshot, or lookup by id.

type ViewStep int

const (
	ViewStepChoice ViewStep = iota
	ViewStepID
	ViewStepPaging
)

type ViewFlow struct {
	Step ViewStep
	// Snapshot holds the listing at the moment the flow started,
	// newest first, so page boundaries stay stable while browsing.
	Snapshot []records.Record
	Page     int
}

// InsightsFlow waits for a single report-kind selection.

type InsightsFlow struct{}

func (*SingleEntryFlow) flow() {}
func (*BatchEntryFlow) flow()  {}
func (*UpdateFlow) flow()      {}
func (*DeleteFlow) flow()      {}
func (*ViewFlow) flow()        {}
func (*InsightsFlow) flow()    {}
