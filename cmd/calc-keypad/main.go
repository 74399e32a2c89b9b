// Package main runs the keypad front end in the terminal.
package main

import (
	"log"

	tea "github.com/charmbracelet/bubbletea"

	"github.com/calclab/calc/internal/keypad"
)

func main() {
	log.SetFlags(0)
	p := tea.NewProgram(keypad.New())
	if _, err := p.Run(); err != nil {
		log.Fatal(err)
	}
}
