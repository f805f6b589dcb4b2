package main

import (
	"log"

	"github.com/grantboard/grantboard/internal/app"
)

func main() {
	if err := app.New().Run(); err != nil {
		log.Fatalf("❌ grantboard failed to start: %v", err)
	}
}
