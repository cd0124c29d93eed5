// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package main

import (
	"context"
	"errors"
	"flag"
	"fmt"
	"io"
	"os"
	"os/signal"
	"syscall"

	"github.com/MKhiriev/starwars-blog/internal/adapter"
	"github.com/MKhiriev/starwars-blog/internal/config"
	"github.com/MKhiriev/starwars-blog/internal/logger"
)

var (
	buildVersion string
	buildDate    string
	buildCommit  string
)

func main() {
	log := logger.NewClientLogger("starwars-blog-client")
	cfg, err := config.GetClientConfig()
	if err != nil {
		log.Fatal().Err(err).Msg("error getting configs")
	}

	if cfg.LogLevel != "" {
		if err = logger.SetLevel(cfg.LogLevel); err != nil {
			log.Fatal().Err(err).Msg("error setting log level")
		}
	}

	serverAdapter, err := adapter.NewHTTPServerAdapter(cfg.Adapter, log)
	if err != nil {
		log.Fatal().Err(err).Msg("create server adapter")
	}
	serverAdapter.SetToken(cfg.Adapter.Token)

	ctx, stop := signal.NotifyContext(context.Background(), syscall.SIGINT, syscall.SIGTERM)
	defer stop()

	cli := newCommands(serverAdapter, os.Stdout)
	if err = cli.run(ctx, flag.Args()); err != nil {
		if errors.Is(err, errUsage) {
			flag.Usage()
			fmt.Fprintln(os.Stderr)
			fmt.Fprint(os.Stderr, usage)
		}
		log.Error().Err(err).Msg("command failed")
		stop()
		os.Exit(1)
	}
}

func printBuildInfo(w io.Writer) {
	if buildVersion == "" {
		buildVersion = "N/A"
	}
	if buildDate == "" {
		buildDate = "N/A"
	}
	if buildCommit == "" {
		buildCommit = "N/A"
	}

	fmt.Fprintf(w, "Build version: %s\n", buildVersion)
	fmt.Fprintf(w, "Build date: %s\n", buildDate)
	fmt.Fprintf(w, "Build commit: %s\n", buildCommit)
}
