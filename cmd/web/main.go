// Command web runs the layoffs dashboard HTTP service.
package main

import (
	"fmt"
	"os"

	"github.com/saibhavana-turai/layoffsanalysis/internal/app"
)

func main() {
	application, err := app.NewApplication()
	if err != nil {
		// The logger may not exist yet; report plainly and halt before any
		// computation.
		fmt.Fprintf(os.Stderr, "failed to start: %v\n", err)
		os.Exit(1)
	}

	if err := application.Run(); err != nil {
		fmt.Fprintf(os.Stderr, "server error: %v\n", err)
		os.Exit(1)
	}
}
