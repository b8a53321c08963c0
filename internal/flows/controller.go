package flows

import (
	"context"
	"errors"

	"log/slog"
	"pricebench/core/logger"
	"pricebench/internal/records"
	"pricebench/internal/session"
	"pricebench/internal/ui"

	tele "gopkg.in/telebot.v4"
)

// Reply is what the controller asks the transport to do: send or edit a
// message, optionally with an inline keyboard, optionally answering a
// callback with a popup alert.
type Reply struct {
	Text   string
	Markup *tele.ReplyMarkup
	// Markdown marks Text as pre-escaped MarkdownV2.
	Markdown bool
	// Edit asks to edit the originating callback message in place.
	Edit bool
	// Alert answers the callback with a popup instead of a message.
	Alert string
}

// Controller drives every conversation wizard. All state lives in the
// session store; exported entry points take the user's event lock, so one
// event per user is processed to completion before the next.
type Controller struct {
	store     records.Store
	sessions  *session.Store
	products  []string
	locations []string
}

func NewController(store records.Store, sessions *session.Store, products, locations []string) *Controller {
	return &Controller{
		store:     store,
		sessions:  sessions,
		products:  products,
		locations: locations,
	}
}

const greeting = "Welcome to the price benchmark bot.\n" +
	"Record buying prices per product and location, browse entries and get average-price reports."

// Greet abandons any active flow and shows the welcome message with the
// main menu. Backs /start and its aliases.
func (c *Controller) Greet(userID int64) Reply {
	defer c.sessions.Acquire(userID)()
	c.sessions.Clear(userID)
	return Reply{Text: greeting, Markup: ui.MainMenu()}
}

// Menu abandons any active flow and shows the main menu.
func (c *Controller) Menu(userID int64) Reply {
	defer c.sessions.Acquire(userID)()
	return c.menu(userID)
}

func (c *Controller) menu(userID int64) Reply {
	c.sessions.Clear(userID)
	return Reply{
		Text:   "What would you like to do?",
		Markup: ui.MainMenu(),
	}
}

// Cancel abandons the active flow, if any.
func (c *Controller) Cancel(userID int64) Reply {
	defer c.sessions.Acquire(userID)()
	if _, active := c.sessions.Active(userID); !active {
		return Reply{Text: "Nothing to cancel.", Markup: ui.MainMenu()}
	}
	c.sessions.Clear(userID)
	return Reply{Text: "Cancelled. Nothing was saved.", Markup: ui.NavMarkup()}
}

// Stats returns the total number of stored records.
func (c *Controller) Stats(ctx context.Context) (int, error) {
	recs, err := c.store.ListAll(ctx)
	if err != nil {
		return 0, err
	}
	return len(recs), nil
}

// HandleText routes free-form text to the step of the user's active flow.
// Idle users get a nudge towards the menu.
func (c *Controller) HandleText(ctx context.Context, userID int64, author, text string) Reply {
	defer c.sessions.Acquire(userID)()
	f, active := c.sessions.Active(userID)
	if !active {
		return Reply{
			Text:   "Use the menu below or /help to get started.",
			Markup: ui.MainMenu(),
		}
	}
	switch fl := f.(type) {
	case *session.SingleEntryFlow:
		return c.singleText(userID, fl, text)
	case *session.BatchEntryFlow:
		return c.batchText(userID, fl, text)
	case *session.UpdateFlow:
		return c.updateText(ctx, userID, fl, text)
	case *session.DeleteFlow:
		return c.deleteText(ctx, userID, fl, text)
	case *session.ViewFlow:
		return c.viewText(ctx, userID, fl, text)
	default:
		return Reply{Text: "Pick an option from the keyboard above."}
	}
}

// Skip is only meaningful on optional remark steps; anywhere else it is
// treated like any other malformed input and re-prompts.
func (c *Controller) Skip(ctx context.Context, userID int64, author string) Reply {
	defer c.sessions.Acquire(userID)()
	f, active := c.sessions.Active(userID)
	if !active {
		return Reply{Text: "Nothing to skip.", Markup: ui.MainMenu()}
	}
	switch fl := f.(type) {
	case *session.SingleEntryFlow:
		if fl.Step == session.SingleStepRemark {
			return c.singleRemark(userID, fl, "")
		}
	case *session.BatchEntryFlow:
		if fl.Step == session.BatchStepRemark {
			return c.batchRemark(userID, fl, "")
		}
	case *session.UpdateFlow:
		if fl.Step == session.UpdateStepValues && fl.Queue[fl.QueuePos] == records.FieldRemark {
			fl.Changes[records.FieldRemark] = ""
			return c.updateAdvance(userID, fl)
		}
	}
	return Reply{Text: "There is nothing to skip at this step."}
}

// HandleCallback routes an inline button press by its callback key.
func (c *Controller) HandleCallback(ctx context.Context, userID int64, author, key, payload string) Reply {
	defer c.sessions.Acquire(userID)()
	switch key {
	case ui.KeyNavMenu, ui.KeyViewBack:
		r := c.menu(userID)
		r.Edit = true
		return r
	case ui.KeyNavNew, ui.KeyMenuNew:
		r := c.startNew(userID)
		r.Edit = true
		return r
	case ui.KeyMenuUpdate:
		r := c.startUpdate(userID)
		r.Edit = true
		return r
	case ui.KeyMenuDelete:
		r := c.startDelete(userID)
		r.Edit = true
		return r
	case ui.KeyMenuView:
		r := c.startView(userID)
		r.Edit = true
		return r
	case ui.KeyMenuInsights:
		r := c.startInsights(userID)
		r.Edit = true
		return r
	case ui.KeyCreateSingle:
		return c.beginSingle(userID)
	case ui.KeyCreateBatch:
		return c.beginBatch(userID)
	case ui.KeySingleProduct, ui.KeySingleLocation, ui.KeySingleSubmit, ui.KeySingleCancel:
		return c.singleCallback(ctx, userID, author, key, payload)
	case ui.KeyBatchLocation, ui.KeyBatchToggle, ui.KeyBatchDone, ui.KeyBatchSubmit, ui.KeyBatchCancel:
		return c.batchCallback(ctx, userID, author, key, payload)
	case ui.KeyUpdateField, ui.KeyUpdateProceed, ui.KeyUpdateCancel,
		ui.KeyUpdateProduct, ui.KeyUpdateLocation, ui.KeyUpdateApply:
		return c.updateCallback(ctx, userID, key, payload)
	case ui.KeyDeleteYes, ui.KeyDeleteNo:
		return c.deleteCallback(ctx, userID, key)
	case ui.KeyViewLast, ui.KeyViewByID, ui.KeyViewPage:
		return c.viewCallback(ctx, userID, key, payload)
	case ui.KeyInsightsKind:
		return c.insightsCallback(ctx, userID, payload)
	default:
		return Reply{Alert: "Unsupported action"}
	}
}

// storeFailure terminates the active flow on an unrecoverable store error.
func (c *Controller) storeFailure(userID int64, op string, err error) Reply {
	c.sessions.Clear(userID)
	var partial *records.PartialWriteError
	msg := "The store is unreachable right now. Nothing was saved. Please try again later."
	if errors.As(err, &partial) {
		msg = "The write did not complete fully. Please review your entries before retrying."
	}
	logger.FLOW.Error("store operation failed",
		slog.String("event", "flow.store_error"),
		slog.String("op", op),
		slog.Int64("user_id", userID),
		slog.Any("err", err),
	)
	return Reply{Text: msg, Markup: ui.NavMarkup(), Edit: true}
}

func done(text string) Reply {
	return Reply{Text: text, Markup: ui.NavMarkup(), Edit: true}
}
