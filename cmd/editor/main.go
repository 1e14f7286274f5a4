package main

import (
	"errors"
	"flag"
	"io/fs"
	"log"
	"os"

	"github.com/hajimehoshi/ebiten/v2"
	"github.com/joho/godotenv"
	"github.com/milk9111/mapeditor/config"
)

func main() {
	if err := godotenv.Load(); err != nil && !errors.Is(err, fs.ErrNotExist) {
		log.Printf("Note: .env file not loaded: %v", err)
	}

	defaultConfig := os.Getenv("MAPEDITOR_CONFIG")
	if defaultConfig == "" {
		defaultConfig = config.DefaultPath
	}
	configPath := flag.String("config", defaultConfig, "Editor config file (YAML); embedded defaults are used when missing")
	outPath := flag.String("out", "", "Export file, overrides export.path from the config")
	watch := flag.Bool("watch", true, "Reload colors and key bindings when the config file changes")
	flag.Parse()

	log.Println("Editor starting...")
	cfg, err := config.Load(*configPath)
	if err != nil {
		log.Fatalf("Failed to load config: %v", err)
	}
	if *outPath != "" {
		cfg.Export.Path = *outPath
	}

	var watcher *config.Watcher
	if *watch {
		watcher, err = config.NewWatcher(*configPath)
		if err != nil {
			log.Printf("Config hot reload disabled: %v", err)
			watcher = nil
		}
	}

	game, err := NewEditorGame(cfg, *configPath, watcher)
	if err != nil {
		log.Fatalf("Failed to create editor: %v", err)
	}

	w, h := game.Layout(0, 0)
	ebiten.SetWindowSize(w, h)
	ebiten.SetWindowTitle(cfg.Window.Title)
	ebiten.SetTPS(cfg.TPS)
	ebiten.SetWindowClosingHandled(true)

	err = ebiten.RunGame(game)
	if watcher != nil {
		_ = watcher.Close()
	}
	if err != nil {
		log.Fatal(err)
	}
}
