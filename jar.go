package cookiestore

import (
	"net/http"
	"slices"
	"strings"
	"sync"
	"time"
)

// Jar is the storage collaborator every Store operation goes through. The
// host environment owns all durable state; the store only ever sees the full
// serialized cookie string on read and hands over one formatted entry on
// write.
type Jar interface {
	// ReadAll returns the full "; "-joined set of entries currently visible,
	// already filtered for expiration.
	ReadAll() string
	// WriteOne applies a single formatted entry with create, update, or
	// delete semantics derived from its key, expiration, and scope.
	WriteOne(entry string)
}

// RequestJar adapts an HTTP exchange to the Jar contract: reads come from
// the request's Cookie header and writes become Set-Cookie response headers.
// It is scoped to a single request/response pair.
type RequestJar struct {
	w http.ResponseWriter
	r *http.Request
}

func NewRequestJar(w http.ResponseWriter, r *http.Request) *RequestJar {
	return &RequestJar{w: w, r: r}
}

func (j *RequestJar) ReadAll() string {
	return j.r.Header.Get("Cookie")
}

func (j *RequestJar) WriteOne(entry string) {
	j.w.Header().Add("Set-Cookie", entry)
}

// MemoryJar simulates a browser cookie jar in memory. It preserves insertion
// order, upserts by (name, path), filters expired entries on read, and
// deletes entries written with a past expiration. The clock can be shifted
// with Advance or replaced with SetNow to exercise expiration behavior.
//
// MemoryJar is safe for concurrent use.
type MemoryJar struct {
	mu      sync.Mutex
	entries []memoryEntry
	nowFn   func() time.Time
	offset  time.Duration
}

type memoryEntry struct {
	name      string
	value     string
	path      string
	expires   time.Time
	hasExpiry bool
}

func NewMemoryJar() *MemoryJar {
	return &MemoryJar{nowFn: time.Now}
}

// SetNow replaces the jar's time source.
func (j *MemoryJar) SetNow(now func() time.Time) {
	j.mu.Lock()
	defer j.mu.Unlock()
	j.nowFn = now
}

// Advance shifts the jar's clock forward by d.
func (j *MemoryJar) Advance(d time.Duration) {
	j.mu.Lock()
	defer j.mu.Unlock()
	j.offset += d
}

// now must be called with the mutex held.
func (j *MemoryJar) now() time.Time {
	return j.nowFn().Add(j.offset)
}

func (j *MemoryJar) ReadAll() string {
	j.mu.Lock()
	defer j.mu.Unlock()

	now := j.now()
	parts := make([]string, 0, len(j.entries))
	for _, e := range j.entries {
		if e.hasExpiry && !e.expires.After(now) {
			continue
		}
		if e.value == "" {
			parts = append(parts, e.name)
		} else {
			parts = append(parts, e.name+"="+e.value)
		}
	}
	return strings.Join(parts, "; ")
}

func (j *MemoryJar) WriteOne(entry string) {
	segments := strings.Split(entry, ";")

	name, value, _ := strings.Cut(strings.TrimSpace(segments[0]), "=")
	e := memoryEntry{name: name, value: value}
	for _, segment := range segments[1:] {
		k, v, _ := strings.Cut(strings.TrimSpace(segment), "=")
		switch strings.ToLower(k) {
		case "expires":
			if t, err := http.ParseTime(v); err == nil {
				e.expires = t
				e.hasExpiry = true
			}
		case "path":
			e.path = v
		}
	}

	j.mu.Lock()
	defer j.mu.Unlock()

	// A past expiration deletes the entry within the same (name, path) scope.
	if e.hasExpiry && !e.expires.After(j.now()) {
		j.entries = slices.DeleteFunc(j.entries, func(existing memoryEntry) bool {
			return existing.name == e.name && existing.path == e.path
		})
		return
	}

	for i := range j.entries {
		if j.entries[i].name == e.name && j.entries[i].path == e.path {
			j.entries[i] = e
			return
		}
	}
	j.entries = append(j.entries, e)
}
