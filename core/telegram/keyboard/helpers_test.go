package keyboard

import (
	"testing"

	"pricebench/core/telegram/callbacks"
)

func TestRowsEncodesCallbackData(t *testing.T) {
	m := Rows([]Btn{{Text: "Next", Key: "view.page", Payload: callbacks.IntPayload(2)}})
	b := m.InlineKeyboard[0][0]
	key, payload := callbacks.Split(b.Unique)
	if key != "view.page" || payload != "2" {
		t.Errorf("callback data decoded as (%q, %q), want (view.page, 2)", key, payload)
	}

	m = Rows([]Btn{{Text: "Menu", Key: "nav.menu"}})
	if got := m.InlineKeyboard[0][0].Unique; got != "nav.menu" {
		t.Errorf("payload-less button encoded as %q, want bare key", got)
	}
}

func TestGridSplitsRows(t *testing.T) {
	btns := []Btn{{Text: "a", Key: "k"}, {Text: "b", Key: "k"}, {Text: "c", Key: "k"}}
	m := Grid(btns, 2)
	if len(m.InlineKeyboard) != 2 {
		t.Fatalf("got %d rows, want 2", len(m.InlineKeyboard))
	}
	if len(m.InlineKeyboard[0]) != 2 || len(m.InlineKeyboard[1]) != 1 {
		t.Errorf("row sizes = %d,%d, want 2,1",
			len(m.InlineKeyboard[0]), len(m.InlineKeyboard[1]))
	}
}
