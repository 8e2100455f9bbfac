package main

import "tarokatalog_backend/internal/app"

func main() {
	app.Run()
}
