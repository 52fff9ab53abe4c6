package cmd

import (
	"fmt"
	"log"
	"os"

	"github.com/charmbracelet/glamour"
	"golang.org/x/term"
)

// printMarkdown prints md to stdout, styled when stdout is a terminal and
// as raw markdown otherwise, so that it can be piped.
func printMarkdown(md string) {
	if !term.IsTerminal(int(os.Stdout.Fd())) {
		fmt.Print(md)
		return
	}
	out, err := glamour.Render(md, "auto")
	if err != nil {
		log.Printf("cannot style markdown: %v", err)
		fmt.Print(md)
		return
	}
	fmt.Print(out)
}
