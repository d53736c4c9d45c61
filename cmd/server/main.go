// Package main implements the entry point for the board API server, which
// exposes member join/login and post read/write endpoints over HTTP.
package main

import (
	"context"
	"log"
)

// main is the entry point for the board API server.
// It initializes configuration, logging, the database connection and the
// request handlers, then serves HTTP until interrupted.
func main() {
	app, err := newApplication()
	if err != nil {
		log.Fatalf("Failed to initialize application: %v", err)
	}
	defer app.cleanup()

	if err := app.startHTTPServer(context.Background(), app.setupRouter()); err != nil {
		log.Fatalf("Server error: %v", err)
	}
}
