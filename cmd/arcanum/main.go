package main

import (
	"log"

	"github.com/arcanum-obscurum/arcanum/internal/app"
)

func main() {
	if err := app.New().Run(); err != nil {
		log.Fatalf("❌ arcanum failed to start: %v", err)
	}
}
