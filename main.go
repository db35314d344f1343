package main

import (
	"context"
	"errors"
	"fmt"
	"os"

	"github.com/thenoetrevino/syllabus/cmd"
	"github.com/thenoetrevino/syllabus/internal/cli"
)

func main() {
	err := cmd.Execute(context.Background())
	if err == nil {
		return
	}

	// Commands report their own errors; anything else is printed here
	var exitErr *cli.ExitError
	if !errors.As(err, &exitErr) {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
	}
	os.Exit(cli.ExitCode(err))
}
