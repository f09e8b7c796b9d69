package main

import (
	"flag"
	"fmt"
	"io"
	"log/slog"
	"os"
	"time"

	tea "charm.land/bubbletea/v2"
	"github.com/golangsnmp/overlaykit/internal/profile"
)

func main() {
	var configPath string
	var profileName string
	var logPath string
	var debug bool
	var writeConfig bool

	flag.Usage = func() {
		fmt.Fprintf(os.Stderr, `overlaykit - anchored overlay panels in the terminal

Usage:
  overlaykit [options]

Options:
  -config PATH     profiles file (default: user config dir/overlaykit/profiles.yaml)
  -profile NAME    profile to start with
  -log PATH        write a debug log to PATH
  -debug           log overlay lifecycle events at debug level
  -write-config    write the current profiles to the profiles file and exit

Environment:
  OVERLAYKIT_ACTIVE             active profile name
  OVERLAYKIT_FRAME_INTERVAL_MS  delay between animation frames

Right click in a pane opens a menu, middle click a description and a click
on the outer column of a pane slides in the side menu.

Press ? inside overlaykit for key bindings.
`)
	}

	flag.StringVar(&configPath, "config", "", "profiles file")
	flag.StringVar(&profileName, "profile", "", "profile to start with")
	flag.StringVar(&logPath, "log", "", "debug log file")
	flag.BoolVar(&debug, "debug", false, "debug level logging")
	flag.BoolVar(&writeConfig, "write-config", false, "write profiles and exit")
	flag.Parse()

	store := profile.NewStore()
	if configPath != "" {
		store = profile.NewStoreAt(configPath)
	}
	profileErr := store.Load()
	if profileErr != nil {
		store.Profiles = profile.DefaultProfiles()
		store.Active = ""
	}

	if writeConfig {
		if profileErr != nil {
			fmt.Fprintf(os.Stderr, "error: %v\n", profileErr)
			os.Exit(1)
		}
		if err := store.Save(); err != nil {
			fmt.Fprintf(os.Stderr, "error: %v\n", err)
			os.Exit(1)
		}
		fmt.Println(store.Path())
		return
	}

	if profileName != "" {
		if _, ok := store.Get(profileName); !ok {
			fmt.Fprintf(os.Stderr, "error: unknown profile %q (have %v)\n", profileName, store.Names())
			os.Exit(1)
		}
	}

	logger, closeLog, err := openLogger(logPath, debug)
	if err != nil {
		fmt.Fprintf(os.Stderr, "error: %v\n", err)
		os.Exit(1)
	}
	defer closeLog()

	cfg := appConfig{
		profile:       profileName,
		frameInterval: time.Duration(store.FrameIntervalMS) * time.Millisecond,
	}
	app, err := newApp(cfg, store, logger)
	if err != nil {
		fmt.Fprintf(os.Stderr, "error: %v\n", err)
		os.Exit(1)
	}
	if profileErr != nil {
		logger.Warn("using built-in profiles", "err", profileErr)
		app.initWarning = "Could not load profiles: " + profileErr.Error()
	}

	p := tea.NewProgram(app)
	if _, err := p.Run(); err != nil {
		fmt.Fprintf(os.Stderr, "error: %v\n", err)
		os.Exit(1)
	}
}

// openLogger returns a text logger writing to path, or a discarding one
// when path is empty.
func openLogger(path string, debug bool) (*slog.Logger, func(), error) {
	if path == "" {
		return slog.New(slog.NewTextHandler(io.Discard, nil)), func() {}, nil
	}
	f, err := tea.LogToFile(path, "overlaykit")
	if err != nil {
		return nil, nil, fmt.Errorf("opening log %s: %w", path, err)
	}
	level := slog.LevelInfo
	if debug {
		level = slog.LevelDebug
	}
	logger := slog.New(slog.NewTextHandler(f, &slog.HandlerOptions{Level: level}))
	return logger, func() { _ = f.Close() }, nil
}
