// Package main starts the terminal venture preview.
package main

import (
	"context"
	"flag"
	"log"
	"os"
	"os/signal"
	"syscall"

	previewcmd "github.com/lazyeholdings/site/internal/cmd/preview"
)

func main() {
	cfg, err := previewcmd.ParseConfig(flag.CommandLine, os.Args[1:])
	if err != nil {
		log.Fatalf("parse flags: %v", err)
	}
	log.SetPrefix("[PREVIEW] ")
	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	if err := previewcmd.Run(ctx, cfg); err != nil {
		log.Fatalf("preview: %v", err)
	}
}
