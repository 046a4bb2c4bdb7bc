package main

import (
	"fmt"
	"os"
	"runtime/debug"
)

func main() {
	defer func() {
		if r := recover(); r != nil {
			// restore the terminal in case a TUI was mid-frame
			fmt.Fprint(os.Stderr, "\x1b[?1049l\x1b[?25h")
			fmt.Fprintf(os.Stderr, "cps251: panic: %v\n\n%s", r, debug.Stack())
			os.Exit(1)
		}
	}()

	Execute()
}
