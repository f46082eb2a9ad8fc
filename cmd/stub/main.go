// The stub binary serves an in-memory rendition of the booking backend
// for local development and end-to-end runs of the client.
package main

import (
	"alloggi/config"
	"alloggi/di"
	"alloggi/shared/logger"
)

func main() {
	cfg := config.Get()

	logger.InitLogger()

	logger.SetLogLevel(cfg)

	http := di.InitializeStubServer()
	http.Serve()
}
