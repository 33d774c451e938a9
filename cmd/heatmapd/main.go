package main

import (
	"flag"
	"fmt"
	"log"
	"os"

	"github.com/sightline-labs/heatmap-overlay/internal/config"
	"github.com/sightline-labs/heatmap-overlay/internal/server"
)

// Version information - set by ldflags during build
var (
	Version   = "dev"
	BuildTime = "unknown"
	GitCommit = "unknown"
)

func main() {
	if len(os.Args) > 1 {
		switch os.Args[1] {
		case "--version", "-v", "version":
			fmt.Printf("heatmapd %s\n", Version)
			fmt.Printf("  Build time: %s\n", BuildTime)
			fmt.Printf("  Git commit: %s\n", GitCommit)
			return
		}
	}

	configPath := flag.String("config", "heatmapd.yaml", "path to YAML configuration file")
	addr := flag.String("addr", "", "listen address override, e.g. :8000")
	flag.Parse()

	log.SetOutput(os.Stderr)
	log.SetFlags(log.Ldate | log.Ltime | log.Lshortfile)

	cfg, err := config.LoadConfig(*configPath)
	if err != nil {
		log.Fatalf("Config error: %v", err)
	}
	if *addr != "" {
		cfg.Server.Addr = *addr
	}

	log.Printf("heatmapd v%s listening on %s (class=%s, %dx%d)",
		Version, cfg.Server.Addr, cfg.Heatmap.Class, cfg.Heatmap.Width, cfg.Heatmap.Height)

	srv := server.New(cfg)
	if err := srv.Run(); err != nil {
		log.Fatalf("Server error: %v", err)
	}
}
