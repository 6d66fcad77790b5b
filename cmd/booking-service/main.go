// Package main is the booking-service entry point (HTTP + WebSocket).
package main

import (
	"log"

	"github.com/manas360/booking-service/cmd"
)

func main() {
	if err := cmd.Execute(); err != nil {
		log.Fatal(err)
	}
}
