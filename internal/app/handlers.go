package app

import (
	"context"
	"fmt"
	"strconv"

	"pricebench/core/telegram"
	"pricebench/core/telegram/callbacks"
	"pricebench/core/telegram/commands"
	"pricebench/core/telegram/helpers"
	"pricebench/internal/flows"
	"pricebench/internal/ui"

	tele "gopkg.in/telebot.v4"
)

func registerCommands(reg *telegram.Registry, ctrl *flows.Controller) {
	reg.RegisterCommand("/start", commands.Command{
		Description: "Show the main menu",
		Handler: func(c tele.Context) error {
			return render(c, ctrl.Greet(helpers.SenderID(c)))
		},
		Aliases: []string{"help"},
	})
	reg.RegisterCommand("/menu", commands.Command{
		Description: "Back to the main menu",
		Handler: func(c tele.Context) error {
			return render(c, ctrl.Menu(helpers.SenderID(c)))
		},
	})
	reg.RegisterCommand("/new", commands.Command{
		Description: "Add price entries",
		Handler: func(c tele.Context) error {
			return render(c, ctrl.StartNew(helpers.SenderID(c)))
		},
	})
	reg.RegisterCommand("/update", commands.Command{
		Description: "Update an entry",
		Handler: func(c tele.Context) error {
			return render(c, ctrl.StartUpdate(helpers.SenderID(c)))
		},
	})
	reg.RegisterCommand("/delete", commands.Command{
		Description: "Delete an entry",
		Handler: func(c tele.Context) error {
			return render(c, ctrl.StartDelete(helpers.SenderID(c)))
		},
	})
	reg.RegisterCommand("/view", commands.Command{
		Description: "Browse entries",
		Handler: func(c tele.Context) error {
			return render(c, ctrl.StartView(helpers.SenderID(c)))
		},
	})
	reg.RegisterCommand("/insights", commands.Command{
		Description: "Average-price reports",
		Handler: func(c tele.Context) error {
			return render(c, ctrl.StartInsights(helpers.SenderID(c)))
		},
	})
	reg.RegisterCommand("/cancel", commands.Command{
		Description: "Abort the current action",
		Handler: func(c tele.Context) error {
			return render(c, ctrl.Cancel(helpers.SenderID(c)))
		},
	})
	reg.RegisterCommand("/skip", commands.Command{
		Description: "Skip an optional step",
		Handler: func(c tele.Context) error {
			ctx := helpers.BuildContext(context.Background(), c)
			return render(c, ctrl.Skip(ctx, helpers.SenderID(c), author(c)))
		},
	})
	reg.RegisterCommand("/stats", commands.Command{
		Description: "Record count",
		AdminOnly:   true,
		Hidden:      true,
		Handler: func(c tele.Context) error {
			ctx := helpers.BuildContext(context.Background(), c)
			n, err := ctrl.Stats(ctx)
			if err != nil {
				return c.Send("Store unavailable.")
			}
			return c.Send(fmt.Sprintf("%d records stored.", n))
		},
	})
}

func registerCallbacks(reg *telegram.Registry, ctrl *flows.Controller) {
	for _, key := range ui.AllKeys() {
		k := key
		_ = reg.RegisterCallback(k, func(c tele.Context) error {
			ctx := helpers.BuildContext(context.Background(), c)
			_, payload := callbacks.Split(c.Callback().Data)
			reply := ctrl.HandleCallback(ctx, helpers.SenderID(c), author(c), k, payload)
			return render(c, reply)
		})
	}
}

func textHandler(ctrl *flows.Controller) tele.HandlerFunc {
	return func(c tele.Context) error {
		ctx := helpers.BuildContext(context.Background(), c)
		reply := ctrl.HandleText(ctx, helpers.SenderID(c), author(c), c.Text())
		return render(c, reply)
	}
}

// render executes a controller reply against the Telegram context.
func render(c tele.Context, r flows.Reply) error {
	if r.Alert != "" {
		return c.Respond(&tele.CallbackResponse{Text: r.Alert})
	}
	if c.Callback() != nil {
		_ = c.Respond()
	}
	if r.Markdown {
		if r.Edit {
			return helpers.EditOrSendMD(c, r.Text, r.Markup)
		}
		return helpers.SendMD(c, r.Text, r.Markup)
	}
	if r.Edit && c.Callback() != nil {
		if err := editPlain(c, r.Text, r.Markup); err == nil {
			return nil
		}
	}
	return helpers.SendText(c, r.Text, r.Markup)
}

func editPlain(c tele.Context, text string, markup *tele.ReplyMarkup) error {
	if markup != nil {
		return c.Edit(text, markup)
	}
	return c.Edit(text)
}

// author identifies the sender for the submitted_by column.
func author(c tele.Context) string {
	s := c.Sender()
	if s == nil {
		return ""
	}
	if s.Username != "" {
		return s.Username
	}
	return strconv.FormatInt(s.ID, 10)
}
