package main

import (
	"fmt"
	"os"

	"github.com/fairhill1/csv-app/internal/app"
)

func main() {
	application := app.New()
	if err := application.Run(); err != nil {
		fmt.Fprintf(os.Stderr, "csvapp failed: %v\n", err)
		os.Exit(1)
	}
}
