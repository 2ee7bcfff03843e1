package main

import (
	"fmt"
	"os"
	"runtime/debug"

	"github.com/kovka-shop/productseed/internal/cli"
	"github.com/kovka-shop/productseed/pkg/productseed"
)

func main() {
	// Recover from panics to ensure graceful exits with stack traces
	defer func() {
		if r := recover(); r != nil {
			fmt.Fprintf(os.Stderr, "panic: %v\n%s\n", r, debug.Stack())
			os.Exit(productseed.ExitPanic)
		}
	}()

	if os.Getenv("PRODUCTSEED_TEST_PANIC") == "1" {
		panic("intentional test panic")
	}

	if err := cli.Execute(); err != nil {
		os.Exit(productseed.ExitCodeForError(err))
	}
}
