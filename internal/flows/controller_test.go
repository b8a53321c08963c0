package flows

import (
	"context"
	"strings"
	"sync"
	"testing"

	"pricebench/internal/records"
	"pricebench/internal/session"
	"pricebench/internal/ui"
)

type fakeStore struct {
	recs map[string]records.Record

	// onAppend, when set, runs at the top of AppendBatch.
	onAppend func()

	appendCalls int
	lastBatch   []records.Draft
	updateCalls int
	lastFields  records.FieldMap
	deleteCalls int
	lastDeleted string
}

func newFakeStore(recs ...records.Record) *fakeStore {
	m := make(map[string]records.Record, len(recs))
	for _, r := range recs {
		m[r.ID] = r
	}
	return &fakeStore{recs: m}
}

func (f *fakeStore) ListAll(ctx context.Context) ([]records.Record, error) {
	out := make([]records.Record, 0, len(f.recs))
	for _, r := range f.recs {
		out = append(out, r)
	}
	return out, nil
}

func (f *fakeStore) GetByID(ctx context.Context, id string) (records.Record, error) {
	r, ok := f.recs[id]
	if !ok {
		return records.Record{}, records.ErrNotFound
	}
	return r, nil
}

func (f *fakeStore) AppendBatch(ctx context.Context, drafts []records.Draft) ([]records.Record, error) {
	if f.onAppend != nil {
		f.onAppend()
	}
	f.appendCalls++
	f.lastBatch = append([]records.Draft(nil), drafts...)
	out := make([]records.Record, len(drafts))
	for i, d := range drafts {
		out[i] = records.Record{ID: "id", Product: d.Product, Price: d.Price, Location: d.Location, Remark: d.Remark}
	}
	return out, nil
}

func (f *fakeStore) UpdateFields(ctx context.Context, id string, fields records.FieldMap) (records.Record, error) {
	f.updateCalls++
	f.lastFields = fields
	r, ok := f.recs[id]
	if !ok {
		return records.Record{}, records.ErrNotFound
	}
	fields.Apply(&r)
	return r, nil
}

func (f *fakeStore) DeleteByID(ctx context.Context, id string) error {
	f.deleteCalls++
	f.lastDeleted = id
	if _, ok := f.recs[id]; !ok {
		return records.ErrNotFound
	}
	delete(f.recs, id)
	return nil
}

func newTestController(store records.Store) (*Controller, *session.Store) {
	sessions := session.NewStore()
	products := []string{"onion", "tomato"}
	locations := []string{"Addis"}
	return NewController(store, sessions, products, locations), sessions
}

const user = int64(42)

func TestBatchFlowSubmitsOneBatch(t *testing.T) {
	ctx := context.Background()
	store := newFakeStore()
	c, _ := newTestController(store)

	c.HandleCallback(ctx, user, "tester", ui.KeyCreateBatch, "")
	c.HandleCallback(ctx, user, "tester", ui.KeyBatchLocation, "0")
	c.HandleText(ctx, user, "tester", "weekly")
	c.HandleCallback(ctx, user, "tester", ui.KeyBatchToggle, "0")
	c.HandleCallback(ctx, user, "tester", ui.KeyBatchToggle, "1")
	c.HandleCallback(ctx, user, "tester", ui.KeyBatchDone, "")
	c.HandleText(ctx, user, "tester", "10")
	c.HandleText(ctx, user, "tester", "20")
	c.HandleCallback(ctx, user, "tester", ui.KeyBatchSubmit, "")

	if store.appendCalls != 1 {
		t.Fatalf("AppendBatch called %d times, want exactly 1", store.appendCalls)
	}
	want := []records.Draft{
		{SubmittedBy: "tester", Product: "onion", Price: 10, Location: "Addis", Remark: "weekly"},
		{SubmittedBy: "tester", Product: "tomato", Price: 20, Location: "Addis", Remark: "weekly"},
	}
	if len(store.lastBatch) != len(want) {
		t.Fatalf("batch has %d drafts, want %d", len(store.lastBatch), len(want))
	}
	for i := range want {
		if store.lastBatch[i] != want[i] {
			t.Errorf("draft %d = %+v, want %+v", i, store.lastBatch[i], want[i])
		}
	}
}

func TestChecklistToggleAndEmptyDone(t *testing.T) {
	ctx := context.Background()
	c, _ := newTestController(newFakeStore())

	c.HandleCallback(ctx, user, "tester", ui.KeyCreateBatch, "")
	c.HandleCallback(ctx, user, "tester", ui.KeyBatchLocation, "0")
	c.HandleText(ctx, user, "tester", "weekly")

	// toggle on, then off again
	c.HandleCallback(ctx, user, "tester", ui.KeyBatchToggle, "0")
	c.HandleCallback(ctx, user, "tester", ui.KeyBatchToggle, "0")

	r := c.HandleCallback(ctx, user, "tester", ui.KeyBatchDone, "")
	if r.Alert == "" {
		t.Error("proceeding with an empty selection should alert, not advance")
	}
}

func TestInvalidPriceLeavesStateUnchanged(t *testing.T) {
	ctx := context.Background()
	store := newFakeStore()
	c, sessions := newTestController(store)

	c.HandleCallback(ctx, user, "tester", ui.KeyCreateSingle, "")
	c.HandleCallback(ctx, user, "tester", ui.KeySingleProduct, "0")

	r := c.HandleText(ctx, user, "tester", "abc")
	if !strings.Contains(r.Text, "positive number") {
		t.Errorf("expected a price re-prompt, got %q", r.Text)
	}

	f, _ := sessions.Active(user)
	fl, ok := f.(*session.SingleEntryFlow)
	if !ok {
		t.Fatalf("flow type changed: %T", f)
	}
	if fl.Step != session.SingleStepPrice {
		t.Errorf("step advanced to %v on bad input", fl.Step)
	}
	if fl.Draft.Price != 0 {
		t.Errorf("draft price corrupted: %v", fl.Draft.Price)
	}
}

func TestUpdateSendsOnlySelectedFields(t *testing.T) {
	ctx := context.Background()
	store := newFakeStore(records.Record{ID: "7", Product: "onion", Price: 10, Location: "Addis"})
	c, _ := newTestController(store)

	c.StartUpdate(user)
	c.HandleText(ctx, user, "tester", "7")
	c.HandleCallback(ctx, user, "tester", ui.KeyUpdateField, records.FieldPrice)
	c.HandleCallback(ctx, user, "tester", ui.KeyUpdateProceed, "")
	c.HandleText(ctx, user, "tester", "15")
	c.HandleCallback(ctx, user, "tester", ui.KeyUpdateApply, "")

	if store.updateCalls != 1 {
		t.Fatalf("UpdateFields called %d times, want 1", store.updateCalls)
	}
	if len(store.lastFields) != 1 {
		t.Fatalf("sent %d fields, want only price: %v", len(store.lastFields), store.lastFields)
	}
	if v, ok := store.lastFields[records.FieldPrice].(float64); !ok || v != 15 {
		t.Errorf("price field = %v, want 15", store.lastFields[records.FieldPrice])
	}
}

func TestUpdateNotFoundReprompts(t *testing.T) {
	ctx := context.Background()
	c, sessions := newTestController(newFakeStore())

	c.StartUpdate(user)
	r := c.HandleText(ctx, user, "tester", "missing")
	if !strings.Contains(r.Text, "No record") {
		t.Errorf("expected a not-found re-prompt, got %q", r.Text)
	}
	f, ok := sessions.Active(user)
	if !ok {
		t.Fatal("flow should stay active after a bad id")
	}
	if fl := f.(*session.UpdateFlow); fl.Step != session.UpdateStepID {
		t.Errorf("step = %v, want UpdateStepID", fl.Step)
	}
}

func TestDeleteConfirmAndDecline(t *testing.T) {
	ctx := context.Background()
	store := newFakeStore(records.Record{ID: "7", Product: "onion", Price: 10, Location: "Addis"})
	c, sessions := newTestController(store)

	c.StartDelete(user)
	c.HandleText(ctx, user, "tester", "7")
	c.HandleCallback(ctx, user, "tester", ui.KeyDeleteYes, "")
	if store.deleteCalls != 1 || store.lastDeleted != "7" {
		t.Fatalf("DeleteByID calls=%d id=%q, want one call for 7", store.deleteCalls, store.lastDeleted)
	}

	store2 := newFakeStore(records.Record{ID: "8", Product: "onion", Price: 10, Location: "Addis"})
	c2, _ := newTestController(store2)
	c2.StartDelete(user)
	c2.HandleText(ctx, user, "tester", "8")
	c2.HandleCallback(ctx, user, "tester", ui.KeyDeleteNo, "")
	if store2.deleteCalls != 0 {
		t.Errorf("declining still called DeleteByID %d times", store2.deleteCalls)
	}
	if _, active := sessions.Active(user); active {
		t.Error("session should be idle after a terminal action")
	}
}

func TestGreetAbandonsActiveFlow(t *testing.T) {
	ctx := context.Background()
	store := newFakeStore()
	c, sessions := newTestController(store)

	c.HandleCallback(ctx, user, "tester", ui.KeyCreateSingle, "")
	c.HandleCallback(ctx, user, "tester", ui.KeySingleProduct, "0")

	r := c.Greet(user)
	if r.Markup == nil {
		t.Error("greeting should carry the main menu")
	}
	if _, active := sessions.Active(user); active {
		t.Error("session should be cleared by /start")
	}

	// the next text must not resume the abandoned wizard
	r = c.HandleText(ctx, user, "tester", "12.50")
	if !strings.Contains(r.Text, "menu") {
		t.Errorf("text after /start reached a wizard step: %q", r.Text)
	}
	if store.appendCalls != 0 {
		t.Errorf("abandoned flow wrote %d batches", store.appendCalls)
	}
}

func TestConcurrentTogglesKeepSelection(t *testing.T) {
	ctx := context.Background()
	c, sessions := newTestController(newFakeStore())

	c.HandleCallback(ctx, user, "tester", ui.KeyCreateBatch, "")
	c.HandleCallback(ctx, user, "tester", ui.KeyBatchLocation, "0")
	c.HandleText(ctx, user, "tester", "weekly")

	var wg sync.WaitGroup
	for _, payload := range []string{"0", "1"} {
		wg.Add(1)
		go func(p string) {
			defer wg.Done()
			c.HandleCallback(ctx, user, "tester", ui.KeyBatchToggle, p)
		}(payload)
	}
	wg.Wait()

	f, _ := sessions.Active(user)
	fl, ok := f.(*session.BatchEntryFlow)
	if !ok {
		t.Fatalf("flow type changed: %T", f)
	}
	if !fl.Selected[0] || !fl.Selected[1] {
		t.Errorf("selection lost under concurrent toggles: %v", fl.Selected)
	}
}

func TestDoubleSubmitWritesBatchOnce(t *testing.T) {
	ctx := context.Background()
	store := newFakeStore()
	c, _ := newTestController(store)

	c.HandleCallback(ctx, user, "tester", ui.KeyCreateBatch, "")
	c.HandleCallback(ctx, user, "tester", ui.KeyBatchLocation, "0")
	c.HandleText(ctx, user, "tester", "weekly")
	c.HandleCallback(ctx, user, "tester", ui.KeyBatchToggle, "0")
	c.HandleCallback(ctx, user, "tester", ui.KeyBatchDone, "")
	c.HandleText(ctx, user, "tester", "10")

	// the store stalls so the second press arrives mid-write
	entered := make(chan struct{}, 2)
	release := make(chan struct{})
	store.onAppend = func() {
		entered <- struct{}{}
		<-release
	}

	var wg sync.WaitGroup
	for i := 0; i < 2; i++ {
		wg.Add(1)
		go func() {
			defer wg.Done()
			c.HandleCallback(ctx, user, "tester", ui.KeyBatchSubmit, "")
		}()
	}
	<-entered
	close(release)
	wg.Wait()

	if store.appendCalls != 1 {
		t.Fatalf("AppendBatch called %d times, want exactly 1", store.appendCalls)
	}
}

func TestStartNewMidFlowAbandonsWithoutWrites(t *testing.T) {
	ctx := context.Background()
	store := newFakeStore()
	c, sessions := newTestController(store)

	c.HandleCallback(ctx, user, "tester", ui.KeyCreateBatch, "")
	c.HandleCallback(ctx, user, "tester", ui.KeyBatchLocation, "0")
	c.HandleText(ctx, user, "tester", "weekly")
	c.HandleCallback(ctx, user, "tester", ui.KeyBatchToggle, "0")

	c.StartNew(user)

	if store.appendCalls != 0 {
		t.Errorf("abandoning a flow wrote %d batches", store.appendCalls)
	}
	if _, active := sessions.Active(user); active {
		t.Error("session should be cleared by a fresh /new")
	}
}

func TestSkipOutsideRemarkStep(t *testing.T) {
	ctx := context.Background()
	c, sessions := newTestController(newFakeStore())

	c.HandleCallback(ctx, user, "tester", ui.KeyCreateSingle, "")
	c.HandleCallback(ctx, user, "tester", ui.KeySingleProduct, "0")

	r := c.Skip(ctx, user, "tester")
	if !strings.Contains(r.Text, "nothing to skip") {
		t.Errorf("got %q", r.Text)
	}
	f, _ := sessions.Active(user)
	if fl := f.(*session.SingleEntryFlow); fl.Step != session.SingleStepPrice {
		t.Errorf("skip advanced the price step to %v", fl.Step)
	}
}
