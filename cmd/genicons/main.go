// genicons writes the placeholder PWA icons (images/icon-<size>.png) into
// the current directory.
// Usage: go run ./cmd/genicons
package main

import (
	"fmt"
	"os"

	"golang.org/x/term"

	"github.com/nce-learn/icons/internal/config"
	"github.com/nce-learn/icons/internal/icon"
)

func main() {
	g := icon.New(config.Default(), os.Stdout)
	g.Fancy = term.IsTerminal(int(os.Stdout.Fd()))
	if err := g.Run(); err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}
}
