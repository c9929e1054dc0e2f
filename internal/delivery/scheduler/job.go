package scheduler

import (
	"context"
	"sync"
	"sync/atomic"
	"time"

	"github.com/robfig/cron/v3"
)

// Job names, also used as metric labels and admin trigger paths.
const (
	JobImport  = "import"
	JobCleanup = "cleanup"
	JobDigest  = "digest"
)

// Job runs one pass of periodic work as of now.
type Job func(ctx context.Context, now time.Time) error

// JobState tracks a registered job. A job is either idle or running; a tick that
// arrives while it is running is skipped.
type JobState struct {
	name    string
	spec    string
	run     Job
	entryID cron.EntryID

	running atomic.Bool

	mu       sync.Mutex
	lastRun  time.Time
	lastErr  string
	duration time.Duration
}

// JobStatus is a point-in-time view of a job for the health endpoint.
type JobStatus struct {
	Name      string     `json:"name"`
	Spec      string     `json:"spec"`
	Running   bool       `json:"running"`
	LastRun   *time.Time `json:"last_run,omitempty"`
	LastError string     `json:"last_error,omitempty"`
	Duration  string     `json:"last_duration,omitempty"`
	Next      *time.Time `json:"next,omitempty"`
}

func newJobState(name, spec string, run Job) *JobState {
	return &JobState{name: name, spec: spec, run: run}
}

// Name returns the job name.
func (j *JobState) Name() string {
	return j.name
}

// Running reports whether a pass is in progress.
func (j *JobState) Running() bool {
	return j.running.Load()
}

func (j *JobState) tryStart() bool {
	return j.running.CompareAndSwap(false, true)
}

func (j *JobState) finish(start time.Time, elapsed time.Duration, err error) {
	j.mu.Lock()
	j.lastRun = start
	j.duration = elapsed
	j.lastErr = ""
	if err != nil {
		j.lastErr = err.Error()
	}
	j.mu.Unlock()

	j.running.Store(false)
}

func (j *JobState) status() JobStatus {
	j.mu.Lock()
	defer j.mu.Unlock()

	st := JobStatus{
		Name:      j.name,
		Spec:      j.spec,
		Running:   j.running.Load(),
		LastError: j.lastErr,
	}
	if !j.lastRun.IsZero() {
		lastRun := j.lastRun
		st.LastRun = &lastRun
		st.Duration = j.duration.String()
	}

	return st
}
