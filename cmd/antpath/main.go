// SPDX-License-Identifier: MIT

// Command antpath searches multi-modal transport networks for cheap routes
// with independent ant colonies.
package main

import (
	"context"
	"os"
	"os/signal"
)

var version = "dev"

func main() {
	ctx := context.Background()
	ctx, cancel := context.WithCancel(ctx)

	// trap Ctrl+C and call cancel on the context
	c := make(chan os.Signal, 1)
	signal.Notify(c, os.Interrupt)
	defer func() {
		signal.Stop(c)
		cancel()
	}()
	go func() {
		select {
		case <-c:
			cancel()
		case <-ctx.Done():
		}
	}()

	if err := newRootCmd(ctx, version).Execute(); err != nil {
		cancel()
		os.Exit(1)
	}
}
