package main

import (
	"fmt"
	"io"
	"os"

	"github.com/nadvotsky/archible/logger"
	"github.com/nadvotsky/archible/util"
)

func main() {
	if err := run(os.Stdout); err != nil {
		logger.Error("%v", err)
		os.Exit(1)
	}
}

func run(w io.Writer) error {
	if _, err := fmt.Fprintln(w, util.JoinStrings("Hello", "World!")); err != nil {
		return fmt.Errorf("write greeting: %w", err)
	}
	return nil
}
