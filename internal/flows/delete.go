package flows

import (
	"context"
	"errors"

	"pricebench/internal/records"
	"pricebench/internal/session"
	"pricebench/internal/ui"
)

func (c *Controller) deleteText(ctx context.Context, userID int64, fl *session.DeleteFlow, text string) Reply {
	if fl.Step != session.DeleteStepID {
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
	fl.Target = rec
	fl.Step = session.DeleteStepConfirm
	return Reply{
		Text:     ui.RecordDetails(rec) + "\nDelete this record?",
		Markup:   ui.ConfirmMarkup("🗑 Delete", ui.KeyDeleteYes, "❌ Keep", ui.KeyDeleteNo),
		Markdown: true,
	}
}

func (c *Controller) deleteCallback(ctx context.Context, userID int64, key string) Reply {
	fl, ok := c.activeDelete(userID)
	if !ok || fl.Step != session.DeleteStepConfirm {
		return Reply{Alert: "This confirmation has expired."}
	}
	switch key {
	case ui.KeyDeleteYes:
		err := c.store.DeleteByID(ctx, fl.Target.ID)
		if errors.Is(err, records.ErrNotFound) {
			c.sessions.Clear(userID)
			return done("That record was already gone.")
		}
		if err != nil {
			return c.storeFailure(userID, "delete", err)
		}
		c.sessions.Clear(userID)
		return done("Deleted.")
	case ui.KeyDeleteNo:
		c.sessions.Clear(userID)
		return done("Kept. Nothing was deleted.")
	}
	return Reply{Alert: "Unsupported action"}
}

func (c *Controller) activeDelete(userID int64) (*session.DeleteFlow, bool) {
	f, ok := c.sessions.Active(userID)
	if !ok {
		return nil, false
	}
	fl, ok := f.(*session.DeleteFlow)
	return fl, ok
}
