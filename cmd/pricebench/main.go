package main

import (
	"pricebench/core/cmd"
	"pricebench/internal/app"
)

func main() {
	cmd.Execute(app.Setup)
}
