package main

import (
	"talentboard/internal/app"
)

func main() {
	app.Run()
}
