package keyboard

import (
	"pricebench/core/telegram/callbacks"

	tele "gopkg.in/telebot.v4"
)

// Btn describes an inline button: label, callback key and payload.
type Btn struct {
	Text    string
	Key     string
	Payload string
}

// Rows builds an inline keyboard from explicit rows of buttons.
// Callback data is encoded with callbacks.Join.
func Rows(rows ...[]Btn) *tele.ReplyMarkup {
	markup := &tele.ReplyMarkup{}
	inline := make([][]tele.InlineButton, len(rows))
	for i, row := range rows {
		r := make([]tele.InlineButton, len(row))
		for j, b := range row {
			r[j] = *markup.Data(b.Text, callbacks.Join(b.Key, b.Payload)).Inline()
		}
		inline[i] = r
	}
	markup.InlineKeyboard = inline
	return markup
}

// Column places each button on its own row.
func Column(buttons ...Btn) *tele.ReplyMarkup {
	rows := make([][]Btn, len(buttons))
	for i, b := range buttons {
		rows[i] = []Btn{b}
	}
	return Rows(rows...)
}

// Grid splits a flat button list into rows of up to n buttons.
func Grid(buttons []Btn, n int) *tele.ReplyMarkup {
	if n <= 1 {
		return Column(buttons...)
	}
	var rows [][]Btn
	for i := 0; i < len(buttons); i += n {
		end := i + n
		if end > len(buttons) {
			end = len(buttons)
		}
		rows = append(rows, buttons[i:end])
	}
	return Rows(rows...)
}
