package main

import (
	"flag"
	"log"
	"os"
	"os/signal"
	"syscall"

	"github.com/JaimeStill/ots-portal/internal/config"
	"github.com/JaimeStill/ots-portal/pkg/openapi"
)

func main() {
	specOut := flag.String("openapi", "", "write the OpenAPI document to this file and exit")
	flag.Parse()

	cfg, err := config.Load()
	if err != nil {
		log.Fatal("config load failed: ", err)
	}

	srv, err := NewServer(cfg)
	if err != nil {
		log.Fatal("server init failed: ", err)
	}

	if *specOut != "" {
		if err := openapi.WriteJSON(srv.modules.API.Spec, *specOut); err != nil {
			log.Fatal("write openapi failed: ", err)
		}
		log.Println("openapi document written to", *specOut)
		return
	}

	if err := srv.Start(); err != nil {
		log.Fatal("server start failed: ", err)
	}

	sigChan := make(chan os.Signal, 1)
	signal.Notify(sigChan, os.Interrupt, syscall.SIGTERM)

	<-sigChan

	if err := srv.Shutdown(cfg.ShutdownTimeoutDuration()); err != nil {
		log.Fatal("shutdown failed: ", err)
	}

	log.Println("server stopped gracefully")
}
