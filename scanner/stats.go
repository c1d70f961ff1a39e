package scanner

import (
	"sync"
	"sync/atomic"
	"time"
)

// Stats is updated by a running Runner and may be read concurrently. The
// counters are reset when a run starts.
type Stats struct {
	Active         atomic.Int32
	Skipped        atomic.Int64
	Archives       atomic.Int64
	DICOM          atomic.Int64
	NonDICOM       atomic.Int64
	WrongInstitute atomic.Int64
	Failed         atomic.Int64
	Forwarded      atomic.Int64
	ForwardFailed  atomic.Int64

	mu       sync.Mutex
	runID    string
	started  time.Time
	finished time.Time
	running  bool
}

// Snapshot is a point in time copy of Stats.
type Snapshot struct {
	RunID          string    `json:"runId"`
	Running        bool      `json:"running"`
	Started        time.Time `json:"started"`
	Finished       time.Time `json:"finished,omitempty"`
	Active         int32     `json:"active"`
	Skipped        int64     `json:"skippedAlreadyProcessed"`
	Archives       int64     `json:"tarProcessed"`
	DICOM          int64     `json:"importedDicom"`
	NonDICOM       int64     `json:"importedNonDicom"`
	WrongInstitute int64     `json:"skippedWrongInstitute"`
	Failed         int64     `json:"failed"`
	Forwarded      int64     `json:"forwarded"`
	ForwardFailed  int64     `json:"forwardFailed"`
}

// Processed counts every file that reached the catalog or was skipped.
func (s Snapshot) Processed() int64 {
	return s.Skipped + s.DICOM + s.NonDICOM + s.WrongInstitute
}

func (s *Stats) start(runID string, at time.Time) {
	s.Skipped.Store(0)
	s.Archives.Store(0)
	s.DICOM.Store(0)
	s.NonDICOM.Store(0)
	s.WrongInstitute.Store(0)
	s.Failed.Store(0)
	s.Forwarded.Store(0)
	s.ForwardFailed.Store(0)

	s.mu.Lock()
	defer s.mu.Unlock()
	s.runID = runID
	s.started = at
	s.finished = time.Time{}
	s.running = true
}

func (s *Stats) finish(at time.Time) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.finished = at
	s.running = false
}

func (s *Stats) Snapshot() Snapshot {
	s.mu.Lock()
	snap := Snapshot{
		RunID:    s.runID,
		Running:  s.running,
		Started:  s.started,
		Finished: s.finished,
	}
	s.mu.Unlock()

	snap.Active = s.Active.Load()
	snap.Skipped = s.Skipped.Load()
	snap.Archives = s.Archives.Load()
	snap.DICOM = s.DICOM.Load()
	snap.NonDICOM = s.NonDICOM.Load()
	snap.WrongInstitute = s.WrongInstitute.Load()
	snap.Failed = s.Failed.Load()
	snap.Forwarded = s.Forwarded.Load()
	snap.ForwardFailed = s.ForwardFailed.Load()
	return snap
}
