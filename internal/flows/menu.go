package flows

import (
	"pricebench/internal/records"
	"pricebench/internal/session"
	"pricebench/internal/ui"
)

// StartNew abandons any active flow and asks for the entry type.
func (c *Controller) StartNew(userID int64) Reply {
	defer c.sessions.Acquire(userID)()
	return c.startNew(userID)
}

func (c *Controller) startNew(userID int64) Reply {
	c.sessions.Clear(userID)
	return Reply{
		Text:   "How do you want to add entries?",
		Markup: ui.EntryTypeMarkup(),
	}
}

// StartUpdate begins the update wizard at the id prompt.
func (c *Controller) StartUpdate(userID int64) Reply {
	defer c.sessions.Acquire(userID)()
	return c.startUpdate(userID)
}

func (c *Controller) startUpdate(userID int64) Reply {
	c.sessions.Start(userID, &session.UpdateFlow{
		Step:    session.UpdateStepID,
		Fields:  make(map[string]bool),
		Changes: make(records.FieldMap),
	})
	return Reply{Text: "Send the ID of the record you want to update."}
}

// StartDelete begins the delete wizard at the id prompt.
func (c *Controller) StartDelete(userID int64) Reply {
	defer c.sessions.Acquire(userID)()
	return c.startDelete(userID)
}

func (c *Controller) startDelete(userID int64) Reply {
	c.sessions.Start(userID, &session.DeleteFlow{Step: session.DeleteStepID})
	return Reply{Text: "Send the ID of the record you want to delete."}
}

// StartView begins the view wizard at the mode choice.
func (c *Controller) StartView(userID int64) Reply {
	defer c.sessions.Acquire(userID)()
	return c.startView(userID)
}

func (c *Controller) startView(userID int64) Reply {
	c.sessions.Start(userID, &session.ViewFlow{Step: session.ViewStepChoice})
	return Reply{Text: "How do you want to view entries?", Markup: ui.ViewChoiceMarkup()}
}

// StartInsights begins the insights wizard at the report kind choice.
func (c *Controller) StartInsights(userID int64) Reply {
	defer c.sessions.Acquire(userID)()
	return c.startInsights(userID)
}

func (c *Controller) startInsights(userID int64) Reply {
	c.sessions.Start(userID, &session.InsightsFlow{})
	return Reply{Text: "Which report would you like?", Markup: ui.InsightsMarkup()}
}
