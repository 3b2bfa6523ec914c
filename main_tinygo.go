//go:build tinygo

package main

import (
	"tracegraph/app"
	"tracegraph/hal"
)

func main() {
	app.Run(hal.New())
}

