package main

import (
	"fmt"
	"log"
	"os"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/x/term"

	"github.com/jask/teakit/cursor"
	"github.com/jask/teakit/internal/config"
	applog "github.com/jask/teakit/internal/log"
	"github.com/jask/teakit/internal/tui"
)

func main() {
	cfg, err := config.Load()
	if err != nil {
		log.Fatalf("config: %v", err)
	}

	applog.Setup(cfg.Log.File, cfg.Log.Debug)

	if !term.IsTerminal(os.Stdout.Fd()) {
		fmt.Fprintln(os.Stderr, "teakit-demo needs an interactive terminal")
		os.Exit(1)
	}

	slot := cursor.NewTerminal(os.Stdout)
	// the terminal keeps whatever shape we last wrote, so leave it clean
	defer applog.RecoverPanic("main", func() { cursor.Reset(slot) })

	p := tea.NewProgram(tui.New(cfg, slot), tea.WithAltScreen())
	if _, err := p.Run(); err != nil {
		cursor.Reset(slot)
		log.Fatalf("run: %v", err)
	}
	cursor.Reset(slot)
}
