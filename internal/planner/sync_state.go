package planner

import "time"

// Indicator is the single status light consumers show for sync.
type Indicator string

const (
	IndicatorOffline Indicator = "offline"
	IndicatorSyncing Indicator = "syncing"
	IndicatorError   Indicator = "error"
	IndicatorReady   Indicator = "ready"
)

// User-visible sync messages. Transport and remote details are logged, not
// shown.
const (
	MsgInvalidURL = "invalid URL: it must start with http:// or https://"
	MsgPullFailed = "failed to download data: check the URL and that the endpoint allows anonymous access"
	MsgPushFailed = "online sync failed while sending data"
)

// SyncState is the shared sync status. Overlapping pulls and pushes are not
// serialised, so the last one to finish decides both fields.
type SyncState struct {
	Configured bool
	Syncing    bool
	Err        string
	LastPull   time.Time
	LastPush   time.Time
}

// Indicator folds the state into one of four display values.
func (s SyncState) Indicator() Indicator {
	switch {
	case !s.Configured:
		return IndicatorOffline
	case s.Syncing:
		return IndicatorSyncing
	case s.Err != "":
		return IndicatorError
	default:
		return IndicatorReady
	}
}
