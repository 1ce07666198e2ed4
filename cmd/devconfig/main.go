package main

import (
	"flag"
	"fmt"
	"log"
	"os"

	"github.com/JaimeStill/ots-portal/internal/config"
	"github.com/JaimeStill/ots-portal/pkg/devserver"
)

func main() {
	format := flag.String("format", "json", "Output format: json or yaml")
	flag.Parse()

	cfg, err := config.Load()
	if err != nil {
		log.Fatalf("config load failed: %v", err)
	}

	out, err := render(&cfg.DevServer, *format)
	if err != nil {
		log.Fatal(err)
	}
	os.Stdout.Write(out)
}

func render(cfg *devserver.Config, format string) ([]byte, error) {
	switch format {
	case "json":
		data, err := cfg.JSON()
		if err != nil {
			return nil, err
		}
		return append(data, '\n'), nil
	case "yaml", "yml":
		return cfg.YAML()
	}
	return nil, fmt.Errorf("unknown format %q: want json or yaml", format)
}
