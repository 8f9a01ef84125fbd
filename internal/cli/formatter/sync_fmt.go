package formatter

import (
	"strings"
	"time"

	"github.com/alexanderramin/lessonplan/internal/planner"
)

// SyncIndicator renders the one-word sync light used in headers.
func SyncIndicator(ind planner.Indicator) string {
	switch ind {
	case planner.IndicatorSyncing:
		return StyleBlue.Render("⟳ syncing")
	case planner.IndicatorError:
		return StyleRed.Render("✖ sync error")
	case planner.IndicatorReady:
		return StyleGreen.Render("● online")
	default:
		return StyleDim.Render("○ offline")
	}
}

// FormatSyncStatus renders the endpoint and the state of the last sync.
func FormatSyncStatus(url string, st planner.SyncState) string {
	lines := []string{
		field("Endpoint", Placeholder(url)),
		field("State", SyncIndicator(st.Indicator())),
	}
	if st.Err != "" {
		lines = append(lines, field("Error", StyleRed.Render(st.Err)))
	}
	lines = append(lines,
		field("Last pull", stamp(st.LastPull)),
		field("Last push", stamp(st.LastPush)),
	)
	return RenderBox("Sync", strings.Join(lines, "\n"))
}

func stamp(t time.Time) string {
	if t.IsZero() {
		return StyleDim.Render("never (this session)")
	}
	return t.Local().Format("2006-01-02 15:04:05")
}
