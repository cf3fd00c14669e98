package main

import (
	"flag"
	"os"
	"path/filepath"
	"strings"
	"vrgaze/internal/config"
	"vrgaze/internal/game"
	"vrgaze/internal/logging"
)

func main() {
	// Change working directory to executable location for deployed builds.
	// Skip this for "go run" which puts the binary in a temp directory.
	if execPath, err := os.Executable(); err == nil {
		execDir := filepath.Dir(execPath)
		if !strings.Contains(execDir, "go-build") {
			os.Chdir(execDir)
		}
	}

	configDir := flag.String("config", ".", "directory containing "+config.FileName)
	flag.Parse()

	if err := config.Load(*configDir); err != nil {
		logging.Init("info", os.Stderr)
		logging.Logger.Warn().Err(err).Msg("using default configuration")
	} else {
		logging.Init(config.GetString("logLevel"), os.Stderr)
	}

	g := game.New()
	if err := g.Run(); err != nil {
		logging.Logger.Fatal().Err(err).Msg("gaze demo failed")
	}
}
