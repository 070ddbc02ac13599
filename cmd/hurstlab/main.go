package main

import (
	"context"
	"log"
	"os"
	"os/signal"
	"syscall"
)

func main() {
	log.SetFlags(log.LstdFlags | log.Lshortfile)

	ctx, cancel := signal.NotifyContext(context.Background(), syscall.SIGINT, syscall.SIGTERM)
	defer cancel()

	if err := newRootCmd(ctx).ExecuteContext(ctx); err != nil {
		log.Printf("[FATAL] %v", err)
		cancel()
		os.Exit(1)
	}
}
