package ui

// Callback keys shared by the keyboards below and the flow controller.
// Payloads are catalog indexes or short tokens, see each keyboard.
const (
	KeyMenuNew      = "menu.new"
	KeyMenuUpdate   = "menu.update"
	KeyMenuDelete   = "menu.delete"
	KeyMenuView     = "menu.view"
	KeyMenuInsights = "menu.insights"

	KeyCreateSingle = "create.single"
	KeyCreateBatch  = "create.batch"

	KeySingleProduct  = "sgl.prod"
	KeySingleLocation = "sgl.loc"
	KeySingleSubmit   = "sgl.submit"
	KeySingleCancel   = "sgl.cancel"

	KeyBatchLocation = "bat.loc"
	KeyBatchToggle   = "bat.prod"
	KeyBatchDone     = "bat.done"
	KeyBatchSubmit   = "bat.submit"
	KeyBatchCancel   = "bat.cancel"

	KeyUpdateField    = "upd.field"
	KeyUpdateProceed  = "upd.proceed"
	KeyUpdateCancel   = "upd.cancel"
	KeyUpdateProduct  = "upd.prod"
	KeyUpdateLocation = "upd.loc"
	KeyUpdateApply    = "upd.apply"

	KeyDeleteYes = "del.yes"
	KeyDeleteNo  = "del.no"

	KeyViewLast = "view.last"
	KeyViewByID = "view.byid"
	KeyViewPage = "view.page"
	KeyViewBack = "view.back"

	KeyInsightsKind = "ins.kind"

	KeyNavNew  = "nav.new"
	KeyNavMenu = "nav.menu"
)

// Insight kind payloads for KeyInsightsKind.
const (
	InsightProduct  = "product"
	InsightLocation = "location"
	InsightBoth     = "both"
)

// AllKeys lists every callback key for registry wiring.
func AllKeys() []string {
	return []string{
		KeyMenuNew, KeyMenuUpdate, KeyMenuDelete, KeyMenuView, KeyMenuInsights,
		KeyCreateSingle, KeyCreateBatch,
		KeySingleProduct, KeySingleLocation, KeySingleSubmit, KeySingleCancel,
		KeyBatchLocation, KeyBatchToggle, KeyBatchDone, KeyBatchSubmit, KeyBatchCancel,
		KeyUpdateField, KeyUpdateProceed, KeyUpdateCancel,
		KeyUpdateProduct, KeyUpdateLocation, KeyUpdateApply,
		KeyDeleteYes, KeyDeleteNo,
		KeyViewLast, KeyViewByID, KeyViewPage, KeyViewBack,
		KeyInsightsKind,
		KeyNavNew, KeyNavMenu,
	}
}
