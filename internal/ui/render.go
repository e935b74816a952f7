package ui

import (
	"fmt"
	"io"

	"github.com/appengine-ltd/timetamer/internal/game"
)

func (a *App) renderMenu(session *game.Session) {
	a.println("")
	a.println(a.styles.Status.Render(session.Player.StatusSummary()))
	a.println(a.styles.Muted.Render("Choose an activity:"))
	for i, act := range session.Catalog.Activities {
		a.println(fmt.Sprintf("%d) %s", i+1, act.Name))
	}
	a.println(fmt.Sprintf("%d) View history", session.HistoryChoice()))
	a.println(fmt.Sprintf("%d) End simulation", session.EndChoice()))
	a.print("Choice: ")
}

func (a *App) renderHistory(entries []game.HistoryEntry) {
	a.println(a.styles.Section.Render("--- History ---"))
	for _, e := range entries {
		a.println(e.String())
	}
}

// PrintActivities writes the catalog as a numbered list with descriptions.
func PrintActivities(w io.Writer, c game.Catalog) error {
	for i, act := range c.Activities {
		if _, err := fmt.Fprintf(w, "%d) %s - %s\n", i+1, act.Name, act.Description); err != nil {
			return err
		}
	}
	return nil
}
