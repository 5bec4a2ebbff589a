package main

import (
	"fmt"
	"io"
	"log"
	"os"

	tea "github.com/charmbracelet/bubbletea"

	"github.com/llehouerou/sombox/internal/app"
	"github.com/llehouerou/sombox/internal/catalog"
	"github.com/llehouerou/sombox/internal/config"
	"github.com/llehouerou/sombox/internal/errmsg"
	"github.com/llehouerou/sombox/internal/mpris"
	"github.com/llehouerou/sombox/internal/notify"
	"github.com/llehouerou/sombox/internal/player"
	"github.com/llehouerou/sombox/internal/state"
	"github.com/llehouerou/sombox/internal/stderr"
)

func loadCatalog(cfg *config.Config) (*catalog.Catalog, error) {
	if !cfg.HasPlaylist() {
		return catalog.Default(), nil
	}
	channels, err := catalog.LoadM3U(cfg.Playlist)
	if err != nil {
		return nil, err
	}
	return catalog.New(channels, nil), nil
}

func run() error {
	cfg, err := config.Load()
	if err != nil {
		return errmsg.Wrap(errmsg.OpConfigLoad, "", err)
	}

	if cfg.LogFile != "" {
		f, err := tea.LogToFile(cfg.LogFile, "sombox")
		if err != nil {
			return fmt.Errorf("open log file: %w", err)
		}
		defer f.Close()
	} else {
		log.SetOutput(io.Discard)
	}

	cat, err := loadCatalog(cfg)
	if err != nil {
		return errmsg.Wrap(errmsg.OpPlaylistLoad, cfg.Playlist, err)
	}

	stateMgr, err := state.Open()
	if err != nil {
		return errmsg.Wrap(errmsg.OpInitialize, "", err)
	}
	defer stateMgr.Close()

	// Capture stderr before any audio library or player process starts.
	if err := stderr.Start(); err != nil {
		log.Printf("capture stderr: %v", err)
	}
	defer stderr.Stop()

	pc := cfg.GetPlayerConfig()
	p := player.NewRouter(player.NewExternal(pc.Command, pc.Args), player.NewAudio(nil))
	defer p.Stop()

	deps := app.Deps{
		Catalog: cat,
		Player:  p,
		State:   stateMgr,
		Stderr:  stderr.Messages,
	}

	if cfg.NotificationsEnabled() {
		n, err := notify.New()
		if err != nil {
			log.Printf("%s: %v", errmsg.OpNotify, err)
		} else {
			deps.Notifier = n
		}
	}

	if cfg.MPRISEnabled() {
		deps.Remote = mpris.NewRemote()
		adapter, err := mpris.New(deps.Remote)
		if err != nil {
			log.Printf("%s: %v", errmsg.OpRemote, err)
			deps.Remote = nil
		} else {
			defer adapter.Close()
		}
	}

	prog := tea.NewProgram(app.New(cfg, deps), tea.WithAltScreen(), tea.WithMouseCellMotion())
	if deps.Remote != nil {
		deps.Remote.Attach(func(msg mpris.CommandMsg) { prog.Send(msg) })
	}
	_, err = prog.Run()
	return err
}

func main() {
	if err := run(); err != nil {
		fmt.Printf("Error: %v\n", err)
		os.Exit(1)
	}
}
