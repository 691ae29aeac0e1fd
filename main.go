package main

import (
	"roadwatch.dev/backend/cmd/app"
)

// @title          Roadwatch API
// @version        1.0.0
// @description    Photo reports of road issues: potholes, broken lighting, drains and other hazards.
// @BasePath       /api
func main() {
	app.Run()
}
