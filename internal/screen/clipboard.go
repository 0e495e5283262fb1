package screen

import (
	"log"

	"github.com/atotto/clipboard"

	"github.com/lightcycle/lightcycle/internal/game"
)

const reportEntries = 40

// copyReport places the round report on the system clipboard and returns a
// short status line for the HUD.
func copyReport(m *game.Match) string {
	if clipboard.Unsupported {
		return "clipboard unavailable"
	}
	if err := clipboard.WriteAll(game.RoundReport(m, reportEntries)); err != nil {
		log.Printf("copy round report: %v", err)
		return "copy failed"
	}
	return "report copied"
}
