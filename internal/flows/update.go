package flows

import (
	"context"
	"errors"
	"fmt"

	"pricebench/internal/records"
	"pricebench/internal/session"
	"pricebench/internal/textutil"
	"pricebench/internal/ui"
)

// fieldOrder fixes the sequence in which selected fields are collected.
var fieldOrder = []string{
	records.FieldProduct,
	records.FieldPrice,
	records.FieldLocation,
	records.FieldRemark,
}

func (c *Controller) updateText(ctx context.Context, userID int64, fl *session.UpdateFlow, text string) Reply {
	switch fl.Step {
	case session.UpdateStepID:
		id, err := CleanID(text)
		if err != nil {
			return Reply{Text: "Please send a record ID."}
		}
		rec, err := c.store.GetByID(ctx, id)
		if errors.Is(err, records.ErrNotFound) {
			return Reply{Text: "No record with that ID. Check it and send again."}
		}
		if err != nil {
			return c.storeFailure(userID, "get", err)
		}
		fl.Target = rec
		fl.Step = session.UpdateStepFields
		return Reply{
			Text:     ui.RecordDetails(rec) + "\nPick the fields to change:",
			Markup:   ui.FieldChecklistMarkup(fieldOrder, fl.Fields),
			Markdown: true,
		}
	case session.UpdateStepValues:
		return c.updateValueText(userID, fl, text)
	default:
		return Reply{Text: "Use the buttons above to continue."}
	}
}

func (c *Controller) updateValueText(userID int64, fl *session.UpdateFlow, text string) Reply {
	switch fl.Queue[fl.QueuePos] {
	case records.FieldPrice:
		price, err := ParsePrice(text)
		if err != nil {
			return Reply{Text: "Please send a positive number for the new price."}
		}
		fl.Changes[records.FieldPrice] = price
		return c.updateAdvance(userID, fl)
	case records.FieldRemark:
		fl.Changes[records.FieldRemark] = text
		return c.updateAdvance(userID, fl)
	default:
		return Reply{Text: "Pick the new value from the buttons above."}
	}
}

// updateAdvance moves to the next queued field or to the summary.
func (c *Controller) updateAdvance(userID int64, fl *session.UpdateFlow) Reply {
	fl.QueuePos++
	if fl.QueuePos < len(fl.Queue) {
		return c.updatePrompt(fl)
	}
	fl.Step = session.UpdateStepConfirm
	return Reply{
		Text:     ui.UpdateSummary(fl.Target, fl.Changes),
		Markup:   ui.ConfirmMarkup("✅ Apply", ui.KeyUpdateApply, "❌ Cancel", ui.KeyUpdateCancel),
		Markdown: true,
	}
}

// updatePrompt asks for the value of the current queued field.
func (c *Controller) updatePrompt(fl *session.UpdateFlow) Reply {
	switch fl.Queue[fl.QueuePos] {
	case records.FieldProduct:
		return Reply{
			Text:   "Choose the new product:",
			Markup: ui.CatalogMarkup(c.products, ui.KeyUpdateProduct),
			Edit:   true,
		}
	case records.FieldLocation:
		return Reply{
			Text:   "Choose the new location:",
			Markup: ui.CatalogMarkup(c.locations, ui.KeyUpdateLocation),
			Edit:   true,
		}
	case records.FieldPrice:
		return Reply{Text: "Send the new price:", Edit: true}
	default:
		return Reply{Text: "Send the new remark, or /skip to clear it.", Edit: true}
	}
}

func (c *Controller) updateCallback(ctx context.Context, userID int64, key, payload string) Reply {
	fl, ok := c.activeUpdate(userID)
	if !ok {
		return Reply{Alert: "This update form has expired."}
	}
	switch key {
	case ui.KeyUpdateField:
		if fl.Step != session.UpdateStepFields {
			return Reply{Alert: "Field selection is closed."}
		}
		if !records.ValidField(payload) {
			return Reply{Alert: "Unknown field."}
		}
		fl.Fields[payload] = !fl.Fields[payload]
		return Reply{
			Text:     ui.RecordDetails(fl.Target) + "\nPick the fields to change:",
			Markup:   ui.FieldChecklistMarkup(fieldOrder, fl.Fields),
			Markdown: true,
			Edit:     true,
		}
	case ui.KeyUpdateProceed:
		if fl.Step != session.UpdateStepFields {
			return Reply{Alert: "Field selection is closed."}
		}
		fl.Queue = fl.Queue[:0]
		for _, f := range fieldOrder {
			if fl.Fields[f] {
				fl.Queue = append(fl.Queue, f)
			}
		}
		if len(fl.Queue) == 0 {
			return Reply{Alert: "Select at least one field first."}
		}
		fl.QueuePos = 0
		fl.Step = session.UpdateStepValues
		return c.updatePrompt(fl)
	case ui.KeyUpdateProduct:
		if fl.Step != session.UpdateStepValues || fl.Queue[fl.QueuePos] != records.FieldProduct {
			return Reply{Alert: "Not expecting a product now."}
		}
		idx, ok := catalogIndex(payload, len(c.products))
		if !ok {
			return Reply{Alert: "Unknown product."}
		}
		fl.Changes[records.FieldProduct] = c.products[idx]
		return c.updateAdvance(userID, fl)
	case ui.KeyUpdateLocation:
		if fl.Step != session.UpdateStepValues || fl.Queue[fl.QueuePos] != records.FieldLocation {
			return Reply{Alert: "Not expecting a location now."}
		}
		idx, ok := catalogIndex(payload, len(c.locations))
		if !ok {
			return Reply{Alert: "Unknown location."}
		}
		fl.Changes[records.FieldLocation] = c.locations[idx]
		return c.updateAdvance(userID, fl)
	case ui.KeyUpdateApply:
		if fl.Step != session.UpdateStepConfirm {
			return Reply{Alert: "Nothing to apply yet."}
		}
		updated, err := c.store.UpdateFields(ctx, fl.Target.ID, fl.Changes)
		if errors.Is(err, records.ErrNotFound) {
			c.sessions.Clear(userID)
			return done("That record no longer exists.")
		}
		if err != nil {
			return c.storeFailure(userID, "update", err)
		}
		c.sessions.Clear(userID)
		return done(fmt.Sprintf("Updated %s (%s).", updated.ID, textutil.Normalize(updated.Product)))
	case ui.KeyUpdateCancel:
		c.sessions.Clear(userID)
		return done("Cancelled. Nothing was changed.")
	}
	return Reply{Alert: "Unsupported action"}
}

func (c *Controller) activeUpdate(userID int64) (*session.UpdateFlow, bool) {
	f, ok := c.sessions.Active(userID)
	if !ok {
		return nil, false
	}
	fl, ok := f.(*session.UpdateFlow)
	return fl, ok
}
