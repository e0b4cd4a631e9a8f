package main

import "homeserve_backend/internal/app"

func main() {
	app.Run()
}
