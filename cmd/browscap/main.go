// Command browscap resolves user agent strings against a Browscap database
// and serves the lookup API.
//
// Usage:
//
//	browscap <database-file> [user agent ...]
//	browscap schema <database-file>
//	browscap serve [database-file]
package main

import (
	"context"
	"fmt"
	"os"
	"os/signal"
	"syscall"
)

func main() {
	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	err := newRootCmd().ExecuteContext(ctx)
	stop()
	if err != nil {
		fmt.Fprintln(os.Stderr, "Error:", err)
		os.Exit(1)
	}
}
