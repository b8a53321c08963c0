package flows

import (
	"context"
	"fmt"
	"sort"

	"pricebench/core/telegram/callbacks"
	"pricebench/internal/records"
	"pricebench/internal/session"
	"pricebench/internal/textutil"
	"pricebench/internal/ui"
)

// Single entry wizard.

func (c *Controller) beginSingle(userID int64) Reply {
	c.sessions.Start(userID, &session.SingleEntryFlow{Step: session.SingleStepProduct})
	return Reply{
		Text:   "Choose a product:",
		Markup: ui.CatalogMarkup(c.products, ui.KeySingleProduct),
		Edit:   true,
	}
}

func (c *Controller) singleText(userID int64, fl *session.SingleEntryFlow, text string) Reply {
	switch fl.Step {
	case session.SingleStepPrice:
		price, err := ParsePrice(text)
		if err != nil {
			return Reply{Text: "Please send a positive number for the price, e.g. 12.50."}
		}
		fl.Draft.Price = price
		fl.Step = session.SingleStepLocation
		return Reply{
			Text:   "Choose the location:",
			Markup: ui.CatalogMarkup(c.locations, ui.KeySingleLocation),
		}
	case session.SingleStepRemark:
		return c.singleRemark(userID, fl, text)
	default:
		return Reply{Text: "Use the buttons above to continue."}
	}
}

func (c *Controller) singleRemark(userID int64, fl *session.SingleEntryFlow, remark string) Reply {
	fl.Draft.Remark = remark
	fl.Step = session.SingleStepConfirm
	return Reply{
		Text:     ui.SingleSummary(fl.Draft),
		Markup:   ui.ConfirmMarkup("✅ Submit", ui.KeySingleSubmit, "❌ Cancel", ui.KeySingleCancel),
		Markdown: true,
	}
}

func (c *Controller) singleCallback(ctx context.Context, userID int64, author, key, payload string) Reply {
	fl, ok := c.activeSingle(userID)
	if !ok {
		return Reply{Alert: "This entry form has expired."}
	}
	switch key {
	case ui.KeySingleProduct:
		if fl.Step != session.SingleStepProduct {
			return Reply{Alert: "Already picked."}
		}
		idx, ok := catalogIndex(payload, len(c.products))
		if !ok {
			return Reply{Alert: "Unknown product."}
		}
		fl.Draft.Product = c.products[idx]
		fl.Step = session.SingleStepPrice
		return Reply{
			Text: fmt.Sprintf("Enter the buying price for %s:", textutil.Normalize(fl.Draft.Product)),
			Edit: true,
		}
	case ui.KeySingleLocation:
		if fl.Step != session.SingleStepLocation {
			return Reply{Alert: "Not expecting a location now."}
		}
		idx, ok := catalogIndex(payload, len(c.locations))
		if !ok {
			return Reply{Alert: "Unknown location."}
		}
		fl.Draft.Location = c.locations[idx]
		fl.Step = session.SingleStepRemark
		return Reply{Text: "Add a remark, or /skip.", Edit: true}
	case ui.KeySingleSubmit:
		if fl.Step != session.SingleStepConfirm {
			return Reply{Alert: "Nothing to submit yet."}
		}
		draft := fl.Draft
		draft.SubmittedBy = author
		saved, err := c.store.AppendBatch(ctx, []records.Draft{draft})
		if err != nil {
			return c.storeFailure(userID, "append", err)
		}
		c.sessions.Clear(userID)
		return done(fmt.Sprintf("Saved. Your entry ID is %s.", saved[0].ID))
	case ui.KeySingleCancel:
		c.sessions.Clear(userID)
		return done("Cancelled. Nothing was saved.")
	}
	return Reply{Alert: "Unsupported action"}
}

func (c *Controller) activeSingle(userID int64) (*session.SingleEntryFlow, bool) {
	f, ok := c.sessions.Active(userID)
	if !ok {
		return nil, false
	}
	fl, ok := f.(*session.SingleEntryFlow)
	return fl, ok
}

// Batch entry wizard.

func (c *Controller) beginBatch(userID int64) Reply {
	c.sessions.Start(userID, &session.BatchEntryFlow{
		Step:     session.BatchStepLocation,
		Selected: make(map[int]bool),
	})
	return Reply{
		Text:   "Choose the location for this batch:",
		Markup: ui.CatalogMarkup(c.locations, ui.KeyBatchLocation),
		Edit:   true,
	}
}

func (c *Controller) batchText(userID int64, fl *session.BatchEntryFlow, text string) Reply {
	switch fl.Step {
	case session.BatchStepRemark:
		return c.batchRemark(userID, fl, text)
	case session.BatchStepPrices:
		price, err := ParsePrice(text)
		if err != nil {
			return Reply{Text: fmt.Sprintf(
				"Please send a positive number for %s.",
				textutil.Normalize(fl.Queue[fl.QueuePos]),
			)}
		}
		fl.Prices = append(fl.Prices, price)
		fl.QueuePos++
		if fl.QueuePos < len(fl.Queue) {
			return Reply{Text: fmt.Sprintf(
				"Price for %s:", textutil.Normalize(fl.Queue[fl.QueuePos]),
			)}
		}
		fl.Step = session.BatchStepConfirm
		return Reply{
			Text:     ui.BatchSummary(fl.Location, fl.Remark, fl.Queue, fl.Prices),
			Markup:   ui.ConfirmMarkup("✅ Submit all", ui.KeyBatchSubmit, "❌ Cancel", ui.KeyBatchCancel),
			Markdown: true,
		}
	default:
		return Reply{Text: "Use the buttons above to continue."}
	}
}

func (c *Controller) batchRemark(userID int64, fl *session.BatchEntryFlow, remark string) Reply {
	fl.Remark = remark
	fl.Step = session.BatchStepProducts
	return Reply{
		Text:   "Select the products you benchmarked, then press Done:",
		Markup: ui.ChecklistMarkup(c.products, fl.Selected, ui.KeyBatchToggle, ui.KeyBatchDone, "Done ▶️"),
	}
}

func (c *Controller) batchCallback(ctx context.Context, userID int64, author, key, payload string) Reply {
	fl, ok := c.activeBatch(userID)
	if !ok {
		return Reply{Alert: "This batch form has expired."}
	}
	switch key {
	case ui.KeyBatchLocation:
		if fl.Step != session.BatchStepLocation {
			return Reply{Alert: "Already picked."}
		}
		idx, ok := catalogIndex(payload, len(c.locations))
		if !ok {
			return Reply{Alert: "Unknown location."}
		}
		fl.Location = c.locations[idx]
		fl.Step = session.BatchStepRemark
		return Reply{Text: "Add a remark shared by all entries, or /skip.", Edit: true}
	case ui.KeyBatchToggle:
		if fl.Step != session.BatchStepProducts {
			return Reply{Alert: "Checklist is closed."}
		}
		idx, ok := catalogIndex(payload, len(c.products))
		if !ok {
			return Reply{Alert: "Unknown product."}
		}
		fl.Selected[idx] = !fl.Selected[idx]
		return Reply{
			Text:   "Select the products you benchmarked, then press Done:",
			Markup: ui.ChecklistMarkup(c.products, fl.Selected, ui.KeyBatchToggle, ui.KeyBatchDone, "Done ▶️"),
			Edit:   true,
		}
	case ui.KeyBatchDone:
		if fl.Step != session.BatchStepProducts {
			return Reply{Alert: "Checklist is closed."}
		}
		queue := selectedProducts(c.products, fl.Selected)
		if len(queue) == 0 {
			return Reply{Alert: "Select at least one product first."}
		}
		fl.Queue = queue
		fl.QueuePos = 0
		fl.Prices = fl.Prices[:0]
		fl.Step = session.BatchStepPrices
		return Reply{
			Text: fmt.Sprintf("Price for %s:", textutil.Normalize(queue[0])),
			Edit: true,
		}
	case ui.KeyBatchSubmit:
		if fl.Step != session.BatchStepConfirm {
			return Reply{Alert: "Nothing to submit yet."}
		}
		drafts := make([]records.Draft, len(fl.Queue))
		for i, p := range fl.Queue {
			drafts[i] = records.Draft{
				SubmittedBy: author,
				Product:     p,
				Price:       fl.Prices[i],
				Location:    fl.Location,
				Remark:      fl.Remark,
			}
		}
		saved, err := c.store.AppendBatch(ctx, drafts)
		if err != nil {
			return c.storeFailure(userID, "append_batch", err)
		}
		c.sessions.Clear(userID)
		return done(fmt.Sprintf("Saved %d entries.", len(saved)))
	case ui.KeyBatchCancel:
		c.sessions.Clear(userID)
		return done("Cancelled. Nothing was saved.")
	}
	return Reply{Alert: "Unsupported action"}
}

func (c *Controller) activeBatch(userID int64) (*session.BatchEntryFlow, bool) {
	f, ok := c.sessions.Active(userID)
	if !ok {
		return nil, false
	}
	fl, ok := f.(*session.BatchEntryFlow)
	return fl, ok
}

// selectedProducts resolves toggled indexes to catalog entries in catalog order.
func selectedProducts(catalog []string, selected map[int]bool) []string {
	idxs := make([]int, 0, len(selected))
	for i, on := range selected {
		if on && i >= 0 && i < len(catalog) {
			idxs = append(idxs, i)
		}
	}
	sort.Ints(idxs)
	out := make([]string, len(idxs))
	for n, i := range idxs {
		out[n] = catalog[i]
	}
	return out
}

func catalogIndex(payload string, size int) (int, bool) {
	idx, ok := callbacks.PayloadInt(payload)
	if !ok || idx < 0 || idx >= size {
		return 0, false
	}
	return idx, true
}
