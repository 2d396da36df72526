package main

import (
	"context"
	"flag"
	"os"
	"os/signal"
	"syscall"

	"go.vocdoni.io/dvote/db"
	"go.vocdoni.io/dvote/db/metadb"
	"go.vocdoni.io/dvote/log"

	"github.com/vocdoni/kzg-sandbox/service"
	"github.com/vocdoni/kzg-sandbox/storage"
)

func main() {
	host := flag.String("host", "0.0.0.0", "API host address")
	port := flag.Int("port", 8080, "API port")
	dataDir := flag.String("dataDir", os.Getenv("CENSUSD_DATADIR"), "data directory (defaults to a temporary one)")
	logLevel := flag.String("logLevel", "info", "log level (debug, info, warn, error)")
	flag.Parse()
	log.Init(*logLevel, "stdout", nil)

	dir := *dataDir
	if dir == "" {
		var err error
		if dir, err = os.MkdirTemp("", "censusd"); err != nil {
			log.Fatalf("failed to create data directory: %v", err)
		}
		log.Warnw("using temporary data directory", "dir", dir)
	}

	database, err := metadb.New(db.TypePebble, dir)
	if err != nil {
		log.Fatalf("failed to open database: %v", err)
	}

	api, err := service.NewAPI(storage.New(database), nil, *host, *port)
	if err != nil {
		log.Fatalf("failed to create API service: %v", err)
	}
	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()
	if err := api.Start(ctx); err != nil {
		log.Fatalf("failed to start API service: %v", err)
	}
	defer api.Stop()

	sig := make(chan os.Signal, 1)
	signal.Notify(sig, syscall.SIGINT, syscall.SIGTERM)
	<-sig
	log.Info("shutting down")
}
