package main

import (
	"log"
	"os"

	"dentalflow/internal/config"
	"dentalflow/internal/portal"
	"dentalflow/internal/provider"
	"dentalflow/internal/session"
	"dentalflow/internal/storage"
)

func main() {
	cfg, err := config.Load()
	if err != nil {
		log.Fatalf("config: %v", err)
	}

	store, err := storage.Open(cfg.StorePath)
	if err != nil {
		log.Fatalf("storage: %v", err)
	}
	defer store.Close()
	log.Printf("store open at %s", cfg.StorePath)

	var opts []provider.Option
	if cfg.UUIDIDs {
		opts = append(opts, provider.WithUUIDIDs())
	}
	data, err := provider.New(store, opts...)
	if err != nil {
		log.Fatalf("data provider: %v", err)
	}

	sess, route, err := session.Restore(store)
	if err != nil {
		log.Fatalf("session: %v", err)
	}
	log.Printf("starting at %s", route)

	if err := portal.New(data, sess, os.Stdin, os.Stdout).Run(route); err != nil {
		log.Fatalf("portal: %v", err)
	}
}
