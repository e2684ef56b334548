package main

import (
	"fmt"
	"os"

	"github.com/wheelibin/berlinuhr/internal/cli"
)

func main() {
	app := cli.NewApp()
	err := app.Execute()
	_ = app.Close()

	if err != nil {
		fmt.Fprintf(os.Stderr, "error: %v\n", err)
		os.Exit(1)
	}
}
