package flows

import (
	"context"
	"errors"

	"pricebench/core/telegram/callbacks"
	"pricebench/internal/records"
	"pricebench/internal/session"
	"pricebench/internal/ui"
)

func (c *Controller) viewText(ctx context.Context, userID int64, fl *session.ViewFlow, text string) Reply {
	if fl.Step != session.ViewStepID {
		return Reply{Text: "Use the buttons above to continue."}
	}
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
	c.sessions.Clear(userID)
	return Reply{Text: ui.RecordDetails(rec), Markup: ui.NavMarkup(), Markdown: true}
}

func (c *Controller) viewCallback(ctx context.Context, userID int64, key, payload string) Reply {
	fl, ok := c.activeView(userID)
	if !ok {
		return Reply{Alert: "This view has expired."}
	}
	switch key {
	case ui.KeyViewLast:
		if fl.Step != session.ViewStepChoice {
			return Reply{Alert: "Already browsing."}
		}
		recs, err := c.store.ListAll(ctx)
		if err != nil {
			return c.storeFailure(userID, "list", err)
		}
		fl.Snapshot = newestFirst(recs)
		fl.Page = 0
		fl.Step = session.ViewStepPaging
		return c.renderViewPage(fl)
	case ui.KeyViewByID:
		if fl.Step != session.ViewStepChoice {
			return Reply{Alert: "Already browsing."}
		}
		fl.Step = session.ViewStepID
		return Reply{Text: "Send the record ID to look up.", Edit: true}
	case ui.KeyViewPage:
		if fl.Step != session.ViewStepPaging {
			return Reply{Alert: "Not browsing right now."}
		}
		page, ok := callbacks.PayloadInt(payload)
		if !ok || page < 0 {
			return Reply{Alert: "Bad page."}
		}
		fl.Page = page
		return c.renderViewPage(fl)
	}
	return Reply{Alert: "Unsupported action"}
}

func (c *Controller) renderViewPage(fl *session.ViewFlow) Reply {
	if len(fl.Snapshot) == 0 {
		return Reply{Text: "No entries yet.", Markup: ui.NavMarkup(), Edit: true}
	}
	text, hasPrev, hasNext := ui.RenderPage(fl.Snapshot, fl.Page)
	return Reply{
		Text:     text,
		Markup:   ui.ViewPagingMarkup(fl.Page, hasPrev, hasNext),
		Markdown: true,
		Edit:     true,
	}
}

func (c *Controller) activeView(userID int64) (*session.ViewFlow, bool) {
	f, ok := c.sessions.Active(userID)
	if !ok {
		return nil, false
	}
	fl, ok := f.(*session.ViewFlow)
	return fl, ok
}

// newestFirst reverses append order without touching the input slice.
func newestFirst(recs []records.Record) []records.Record {
	out := make([]records.Record, len(recs))
	for i, r := range recs {
		out[len(recs)-1-i] = r
	}
	return out
}
