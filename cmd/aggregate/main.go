// Command aggregate derives the customer directory and item catalog from a
// raw orders JSON file. It runs as an all-or-nothing batch: either both
// artifacts (customers.json, items.json) are written to the output
// directory, or the run fails before emitting either.
package main

import (
	"flag"
	"fmt"
	"log/slog"
	"os"

	"github.com/ghuser/orderline/pkg/config"
	"github.com/ghuser/orderline/pkg/logger"
	feedsvcs "github.com/ghuser/orderline/services/feed/application/services"
)

func main() {
	outDir := flag.String("out", ".", "directory to write the derived artifacts into")
	flag.Usage = usage
	flag.Parse()

	if flag.NArg() != 1 {
		usage()
		os.Exit(2)
	}
	ordersPath := flag.Arg(0)

	cfg, err := config.Load()
	if err != nil {
		slog.Error("failed to load config", "error", err)
		os.Exit(1)
	}
	log := logger.New(cfg)

	f, err := os.Open(ordersPath)
	if err != nil {
		log.Error("failed to open orders file", "path", ordersPath, "error", err)
		os.Exit(1)
	}
	defer f.Close() //nolint:errcheck

	batch, err := feedsvcs.ParseBatch(f)
	if err != nil {
		log.Error("failed to parse orders batch", "path", ordersPath, "error", err)
		os.Exit(1)
	}

	directory, catalog := feedsvcs.Derive(batch)

	if err := feedsvcs.WriteArtifacts(*outDir, directory, catalog); err != nil {
		log.Error("failed to write artifacts", "dir", *outDir, "error", err)
		os.Exit(1)
	}

	log.Info("artifacts written",
		"orders", len(batch),
		"customers", len(directory),
		"items", len(catalog),
		"dir", *outDir,
	)
}

func usage() {
	fmt.Fprintf(os.Stderr, "Usage: %s [-out dir] <orders_file.json>\n", os.Args[0])
	flag.PrintDefaults()
}
