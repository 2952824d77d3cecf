// SPDX-License-Identifier: Unlicense OR MIT

// Command dragdemo drags a box around the terminal with the mouse.
// Released boxes slide back to their rest position.
package main

import (
	"flag"
	"io"
	"log"

	tea "github.com/charmbracelet/bubbletea"

	"draghelper.org/internal/config"
)

var (
	configPath = flag.String("config", "", "TOML configuration file")
	logPath    = flag.String("log", "", "write a debug log to this file")
)

func main() {
	flag.Parse()

	cfg, err := config.Load(*configPath)
	if err != nil {
		log.Fatalf("config: %v", err)
	}

	logger := log.New(io.Discard, "", 0)
	if *logPath != "" {
		f, err := tea.LogToFile(*logPath, "dragdemo")
		if err != nil {
			log.Fatalf("log: %v", err)
		}
		defer f.Close()
		logger = log.Default()
	}

	m, err := newModel(cfg, logger)
	if err != nil {
		log.Fatalf("dragdemo: %v", err)
	}
	p := tea.NewProgram(m, tea.WithAltScreen(), tea.WithMouseAllMotion())
	if _, err := p.Run(); err != nil {
		log.Printf("dragdemo: %v", err)
	}
	if err := m.save(); err != nil {
		log.Printf("save state: %v", err)
	}
}
