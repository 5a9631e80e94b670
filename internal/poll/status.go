package poll

import (
	"sync/atomic"
	"time"
)

// ScanStatus describes the latest cycle.
type ScanStatus struct {
	CycleID   string `json:"cycle_id"`
	Profile   string `json:"profile"`
	LastRunAt string `json:"last_run_at"`
	LastOkAt  string `json:"last_ok_at"`
	LastError string `json:"last_error"`
	LastSent  int    `json:"last_sent"`
	TotalSent int    `json:"total_sent"`
	Running   bool   `json:"running"`
}

// Tracker holds the status for concurrent readers such as the status server.
type Tracker struct {
	v atomic.Value
}

func NewTracker(profile string) *Tracker {
	t := &Tracker{}
	t.v.Store(ScanStatus{Profile: profile})
	return t
}

func (t *Tracker) Snapshot() ScanStatus {
	return t.v.Load().(ScanStatus)
}

func (t *Tracker) begin(cycleID string, now time.Time) {
	st := t.Snapshot()
	st.CycleID = cycleID
	st.Running = true
	st.LastRunAt = now.Format(time.RFC3339)
	t.v.Store(st)
}

func (t *Tracker) finish(sent int, err error, now time.Time) {
	st := t.Snapshot()
	st.Running = false
	st.LastSent = sent
	st.TotalSent += sent
	if err != nil {
		st.LastError = err.Error()
	} else {
		st.LastError = ""
		st.LastOkAt = now.Format(time.RFC3339)
	}
	t.v.Store(st)
}
