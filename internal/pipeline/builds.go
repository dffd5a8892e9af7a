package pipeline

import (
	"crypto/sha256"
	"fmt"
	"sync"
	"time"

	"github.com/google/uuid"
)

// BuildStatus represents the state of a deck build.
type BuildStatus string

const (
	StatusRunning   BuildStatus = "running"
	StatusCompleted BuildStatus = "completed"
	StatusFailed    BuildStatus = "failed"
	StatusUnchanged BuildStatus = "unchanged"
)

// Build tracks a single load, assemble and write cycle.
type Build struct {
	mu sync.Mutex

	ID      string
	Source  string
	Trigger string

	status      BuildStatus
	slides      int
	contentHash string
	err         string
	startedAt   time.Time
	finishedAt  time.Time
}

func newBuild(source, trigger string) *Build {
	id, err := uuid.NewV7()
	if err != nil {
		id = uuid.New()
	}
	return &Build{
		ID:        id.String(),
		Source:    source,
		Trigger:   trigger,
		status:    StatusRunning,
		startedAt: time.Now(),
	}
}

func (b *Build) setHash(h string) {
	b.mu.Lock()
	defer b.mu.Unlock()
	b.contentHash = h
}

func (b *Build) complete(status BuildStatus, slides int) {
	b.mu.Lock()
	defer b.mu.Unlock()
	b.status = status
	b.slides = slides
	b.finishedAt = time.Now()
}

func (b *Build) fail(err error) {
	b.mu.Lock()
	defer b.mu.Unlock()
	b.status = StatusFailed
	b.err = err.Error()
	b.finishedAt = time.Now()
}

// BuildSnapshot is a read-only, JSON-safe copy of build state.
type BuildSnapshot struct {
	ID          string      `json:"build_id"`
	Source      string      `json:"source"`
	Trigger     string      `json:"trigger"`
	Status      BuildStatus `json:"status"`
	Slides      int         `json:"slides"`
	ContentHash string      `json:"content_hash,omitempty"`
	Error       string      `json:"error,omitempty"`
	StartedAt   time.Time   `json:"started_at"`
	DurationMS  int64       `json:"duration_ms"`
}

// Snapshot returns a JSON-safe copy of the build state.
func (b *Build) Snapshot() BuildSnapshot {
	b.mu.Lock()
	defer b.mu.Unlock()
	var dur int64
	if !b.finishedAt.IsZero() {
		dur = b.finishedAt.Sub(b.startedAt).Milliseconds()
	}
	return BuildSnapshot{
		ID:          b.ID,
		Source:      b.Source,
		Trigger:     b.Trigger,
		Status:      b.status,
		Slides:      b.slides,
		ContentHash: b.contentHash,
		Error:       b.err,
		StartedAt:   b.startedAt,
		DurationMS:  dur,
	}
}

// BuildLog keeps the most recent builds, newest last.
type BuildLog struct {
	mu     sync.Mutex
	builds []*Build
	limit  int
}

func NewBuildLog(limit int) *BuildLog {
	if limit <= 0 {
		limit = 1
	}
	return &BuildLog{limit: limit}
}

func (l *BuildLog) Put(b *Build) {
	l.mu.Lock()
	defer l.mu.Unlock()
	l.builds = append(l.builds, b)
	if over := len(l.builds) - l.limit; over > 0 {
		l.builds = append([]*Build(nil), l.builds[over:]...)
	}
}

func (l *BuildLog) Get(id string) *Build {
	l.mu.Lock()
	defer l.mu.Unlock()
	for _, b := range l.builds {
		if b.ID == id {
			return b
		}
	}
	return nil
}

// Snapshots returns the retained builds, newest first.
func (l *BuildLog) Snapshots() []BuildSnapshot {
	l.mu.Lock()
	defer l.mu.Unlock()
	out := make([]BuildSnapshot, 0, len(l.builds))
	for i := len(l.builds) - 1; i >= 0; i-- {
		out = append(out, l.builds[i].Snapshot())
	}
	return out
}

// ContentHashHex computes SHA-256 of content and returns hex string.
func ContentHashHex(data []byte) string {
	h := sha256.Sum256(data)
	return fmt.Sprintf("%x", h[:])
}
