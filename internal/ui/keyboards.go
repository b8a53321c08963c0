package ui

import (
	"pricebench/core/telegram/callbacks"
	"pricebench/core/telegram/keyboard"

	tele "gopkg.in/telebot.v4"
)

// MainMenu is the top-level action keyboard.
func MainMenu() *tele.ReplyMarkup {
	return keyboard.Rows(
		[]keyboard.Btn{{Text: "➕ New Entry", Key: KeyMenuNew}},
		[]keyboard.Btn{
			{Text: "✏️ Update", Key: KeyMenuUpdate},
			{Text: "🗑 Delete", Key: KeyMenuDelete},
		},
		[]keyboard.Btn{
			{Text: "📄 View", Key: KeyMenuView},
			{Text: "📊 Insights", Key: KeyMenuInsights},
		},
	)
}

// NavMarkup is offered after every terminal action.
func NavMarkup() *tele.ReplyMarkup {
	return keyboard.Rows([]keyboard.Btn{
		{Text: "➕ New Entry", Key: KeyNavNew},
		{Text: "📋 Main Menu", Key: KeyNavMenu},
	})
}

// EntryTypeMarkup asks single versus batch entry.
func EntryTypeMarkup() *tele.ReplyMarkup {
	return keyboard.Column(
		keyboard.Btn{Text: "Single entry", Key: KeyCreateSingle},
		keyboard.Btn{Text: "Batch entry", Key: KeyCreateBatch},
	)
}

// CatalogMarkup lays out catalog options two per row; payloads are the
// catalog indexes.
func CatalogMarkup(options []string, key string) *tele.ReplyMarkup {
	btns := make([]keyboard.Btn, len(options))
	for i, opt := range options {
		btns[i] = keyboard.Btn{Text: opt, Key: key, Payload: callbacks.IntPayload(i)}
	}
	return keyboard.Grid(btns, 2)
}

// ChecklistMarkup renders a multi-select catalog with toggle markers and
// a done button at the bottom.
func ChecklistMarkup(options []string, selected map[int]bool, toggleKey, doneKey, doneLabel string) *tele.ReplyMarkup {
	btns := make([]keyboard.Btn, len(options))
	for i, opt := range options {
		marker := "☑️"
		if selected[i] {
			marker = "✅"
		}
		btns[i] = keyboard.Btn{Text: marker + " " + opt, Key: toggleKey, Payload: callbacks.IntPayload(i)}
	}
	markup := keyboard.Grid(btns, 2)
	done := &tele.ReplyMarkup{}
	doneRow := []tele.InlineButton{*done.Data(doneLabel, doneKey, "").Inline()}
	markup.InlineKeyboard = append(markup.InlineKeyboard, doneRow)
	return markup
}

// FieldChecklistMarkup renders the update field selection with toggle
// markers; payloads are field names.
func FieldChecklistMarkup(fields []string, selected map[string]bool) *tele.ReplyMarkup {
	btns := make([]keyboard.Btn, len(fields))
	for i, f := range fields {
		marker := "☑️"
		if selected[f] {
			marker = "✅"
		}
		btns[i] = keyboard.Btn{Text: marker + " " + f, Key: KeyUpdateField, Payload: f}
	}
	markup := keyboard.Grid(btns, 2)
	extra := &tele.ReplyMarkup{}
	row := []tele.InlineButton{
		*extra.Data("Proceed ▶️", KeyUpdateProceed, "").Inline(),
		*extra.Data("❌ Cancel", KeyUpdateCancel, "").Inline(),
	}
	markup.InlineKeyboard = append(markup.InlineKeyboard, row)
	return markup
}

// ConfirmMarkup is a two-button yes/no row.
func ConfirmMarkup(yesLabel, yesKey, noLabel, noKey string) *tele.ReplyMarkup {
	return keyboard.Rows([]keyboard.Btn{
		{Text: yesLabel, Key: yesKey},
		{Text: noLabel, Key: noKey},
	})
}

// ViewChoiceMarkup offers last-entries browsing or lookup by id.
func ViewChoiceMarkup() *tele.ReplyMarkup {
	return keyboard.Column(
		keyboard.Btn{Text: "🕐 Last entries", Key: KeyViewLast},
		keyboard.Btn{Text: "🔎 Find by ID", Key: KeyViewByID},
	)
}

// ViewPagingMarkup builds previous/next controls around the current page.
func ViewPagingMarkup(page int, hasPrev, hasNext bool) *tele.ReplyMarkup {
	var row []keyboard.Btn
	if hasPrev {
		row = append(row, keyboard.Btn{Text: "⬅️ Prev", Key: KeyViewPage, Payload: callbacks.IntPayload(page - 1)})
	}
	if hasNext {
		row = append(row, keyboard.Btn{Text: "Next ➡️", Key: KeyViewPage, Payload: callbacks.IntPayload(page + 1)})
	}
	back := []keyboard.Btn{{Text: "📋 Main Menu", Key: KeyViewBack}}
	if len(row) == 0 {
		return keyboard.Rows(back)
	}
	return keyboard.Rows(row, back)
}

// InsightsMarkup selects the report kind.
func InsightsMarkup() *tele.ReplyMarkup {
	return keyboard.Column(
		keyboard.Btn{Text: "By product", Key: KeyInsightsKind, Payload: InsightProduct},
		keyboard.Btn{Text: "By location", Key: KeyInsightsKind, Payload: InsightLocation},
		keyboard.Btn{Text: "By product and location", Key: KeyInsightsKind, Payload: InsightBoth},
	)
}
