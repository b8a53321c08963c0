package router

import (
	"pricebench/core/telegram"
	"pricebench/core/telegram/middleware"
)

// CommandRoutes builds a route per registered command, including aliases.
// Admin-only commands are wrapped with an access check.
func CommandRoutes(reg *telegram.Registry, adminID int64) []telegram.Route {
	var routes []telegram.Route
	for name, cmd := range reg.Commands() {
		h := cmd.Handler
		if cmd.AdminOnly {
			h = middleware.AdminOnly(adminID, h)
		}
		routes = append(routes, telegram.Route{Endpoint: name, Handler: h})
		for _, alias := range cmd.Aliases {
			if alias == "" {
				continue
			}
			if alias[0] != '/' {
				alias = "/" + alias
			}
			routes = append(routes, telegram.Route{Endpoint: alias, Handler: h})
		}
	}
	return routes
}
