//go:build tinygo && baremetal

package main

import (
	"colorpicky/app"
	"colorpicky/hal"
)

func main() {
	app.Run(hal.New())
}
