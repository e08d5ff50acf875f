// Command server runs the freshfest HTTP gateway: it terminates REST/JSON
// traffic and translates it onto the gRPC backends behind it.
package main

import (
	"context"
	"fmt"
	"os"
)

func main() {
	app, err := newApplication()
	if err != nil {
		fmt.Fprintf(os.Stderr, "startup failed: %v\n", err)
		os.Exit(1)
	}

	router := app.setupRouter()

	if err := app.startHTTPServer(context.Background(), router); err != nil {
		app.logger.Error("server exited with error", "error", err)
		app.cleanup()
		os.Exit(1)
	}
}
