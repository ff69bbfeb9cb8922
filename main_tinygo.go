//go:build tinygo

package main

import (
	"enlarger/app"
	"enlarger/hal"
)

func main() {
	app.Run(hal.New(), app.DefaultConfig())
}
