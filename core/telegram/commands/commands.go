package commands

import tele "gopkg.in/telebot.v4"

// Command binds a handler to a slash command plus its menu metadata.
// AdminOnly commands are wrapped with an access check during routing;
// Hidden ones never appear in the Telegram command menu.
type Command struct {
	Handler     tele.HandlerFunc
	Description string
	Aliases     []string
	AdminOnly   bool
	Hidden      bool
}

// Visible reports whether the command belongs in the public command menu.
func (c Command) Visible() bool {
	return !c.Hidden && !c.AdminOnly
}
