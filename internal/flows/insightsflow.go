package flows

import (
	"context"

	"pricebench/internal/insights"
	"pricebench/internal/session"
	"pricebench/internal/ui"
)

func (c *Controller) insightsCallback(ctx context.Context, userID int64, kind string) Reply {
	if _, ok := c.activeInsights(userID); !ok {
		return Reply{Alert: "This report menu has expired."}
	}
	recs, err := c.store.ListAll(ctx)
	if err != nil {
		return c.storeFailure(userID, "list", err)
	}

	var rows []insights.Row
	switch kind {
	case ui.InsightProduct:
		rows = insights.ByProduct(recs)
	case ui.InsightLocation:
		rows = insights.ByLocation(recs)
	case ui.InsightBoth:
		rows = insights.ByBoth(recs)
	default:
		return Reply{Alert: "Unknown report."}
	}

	c.sessions.Clear(userID)
	return Reply{
		Text:     ui.RenderInsights(kind, rows),
		Markup:   ui.NavMarkup(),
		Markdown: true,
		Edit:     true,
	}
}

func (c *Controller) activeInsights(userID int64) (*session.InsightsFlow, bool) {
	f, ok := c.sessions.Active(userID)
	if !ok {
		return nil, false
	}
	fl, ok := f.(*session.InsightsFlow)
	return fl, ok
}
