package main

import (
	"context"
	"flag"
	"fmt"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/revell/cuetime/internal/app"
)

func main() {
	os.Exit(run())
}

func run() int {
	configPath := flag.String("config", "", "override config path (optional)")
	serverURL := flag.String("server", "", "override the Ontime server URL (optional)")
	tickMS := flag.Int("tick", 0, "render tick interval in milliseconds (optional, defaults to 1000)")
	flag.Parse()

	ctx, cancel := signal.NotifyContext(context.Background(), syscall.SIGINT, syscall.SIGTERM)
	defer cancel()

	opts := app.Options{
		ConfigPath: *configPath,
		ServerURL:  *serverURL,
	}
	if ms := *tickMS; ms > 0 {
		opts.TickEvery = time.Duration(ms) * time.Millisecond
	}

	if err := app.Run(ctx, opts); err != nil {
		fmt.Fprintf(os.Stderr, "cuetime: %v\n", err)
		return 1
	}
	return 0
}
