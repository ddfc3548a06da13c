// Command mstctl builds minimum spanning trees from YAML edge lists.
package main

import (
	"context"
	"errors"
	"fmt"
	"os"
	"os/signal"
	"syscall"

	"github.com/katalvlaran/spanning/internal/cli"
)

func main() {
	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()
	sigCh := make(chan os.Signal, 1)
	var sig os.Signal
	signal.Notify(sigCh, syscall.SIGHUP, syscall.SIGINT, syscall.SIGTERM, syscall.SIGQUIT)
	go func() {
		select {
		case <-ctx.Done():
			return
		case sig = <-sigCh:
			cancel()
		}
	}()

	if err := cli.Execute(ctx); err != nil {
		if errors.Is(err, context.Canceled) {
			fmt.Fprintf(os.Stderr, "mstctl cancelled by signal %s\n", sig)
		}
		os.Exit(1)
	}
}
