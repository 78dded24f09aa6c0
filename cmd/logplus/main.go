// Command logplus emits structured log records from the command line.
//
//	logplus emit warn "disk almost full" free=3%
//	tail -f app.log | logplus pipe --format pretty
//
// Output is configured with flags or a YAML file (--config) in the format
// read by logger.LoadConfig.
package main

import (
	"context"
	"fmt"
	"os"
	"os/signal"
	"syscall"
)

var version = "dev" // set by ldflags

func main() {
	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	cmd, opts := newRootCmd(version)
	if err := execute(ctx, cmd, opts); err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}
}
