package cookiestore

import (
	"log/slog"
	"regexp"
	"strings"
	"time"
)

// Entry is one key/value pair as currently visible in the jar.
type Entry struct {
	Key   string
	Value Value
}

// Store reads and writes cookie entries through an injected Jar. It holds no
// entry state of its own: every read re-derives its answer from the jar's
// current string and every write is a single formatted entry handed over to
// the jar. The only mutable state is the default TTL, which lives on the
// instance rather than in a package global so independent configurations can
// coexist.
type Store struct {
	jar        Jar
	defaults   Attributes
	defaultTTL int
	log        *slog.Logger
	now        func() time.Time
}

// Option configures a Store at construction time.
type Option func(*Store)

// WithDefaults sets attributes applied to every write unless overridden per
// call.
func WithDefaults(attrs ...Attribute) Option {
	return func(s *Store) {
		s.defaults = applyAttributes(s.defaults, attrs)
	}
}

// WithDefaultTTL sets the store-wide default time-to-live in seconds.
func WithDefaultTTL(seconds int) Option {
	return func(s *Store) {
		s.defaultTTL = seconds
	}
}

// WithLogger sets the logger used by Dump.
func WithLogger(log *slog.Logger) Option {
	return func(s *Store) {
		if log != nil {
			s.log = log
		}
	}
}

// WithClock replaces the time source used for TTL resolution.
func WithClock(now func() time.Time) Option {
	return func(s *Store) {
		if now != nil {
			s.now = now
		}
	}
}

// New creates a Store over the given jar.
func New(jar Jar, opts ...Option) (*Store, error) {
	if jar == nil {
		return nil, ErrNilJar
	}

	s := &Store{
		jar: jar,
		log: slog.Default(),
		now: time.Now,
	}
	for _, opt := range opts {
		opt(s)
	}
	return s, nil
}

// TTL sets the store-wide default time-to-live in seconds, consulted by Set
// and Touch whenever a call carries no TTL of its own. Zero restores the
// no-default behavior.
func (s *Store) TTL(seconds int) {
	s.defaultTTL = seconds
}

// Set encodes v, formats an entry for key with the resolved attributes, and
// writes it to the jar. The formatted string is returned so callers can
// inspect exactly what was written.
func (s *Store) Set(key string, v Value, attrs ...Attribute) (string, error) {
	entry, err := s.format(key, v.Encode(), applyAttributes(s.defaults, attrs))
	if err != nil {
		return "", err
	}
	s.jar.WriteOne(entry)
	return entry, nil
}

// Get returns the decoded value stored under key, or Null when the key is
// absent or carries no value.
func (s *Store) Get(key string) Value {
	return s.GetOr(key, Null())
}

// GetOr returns the decoded value stored under key, or fallback when the key
// is absent or carries no value.
func (s *Store) GetOr(key string, fallback Value) Value {
	raw, ok := s.lookup(key)
	if !ok || raw == "" {
		return fallback
	}
	return decodeValue(raw)
}

// GetOrFunc is GetOr with a lazily produced fallback; fallback is invoked
// only when the key does not resolve to a value.
func (s *Store) GetOrFunc(key string, fallback func() Value) Value {
	raw, ok := s.lookup(key)
	if !ok || raw == "" {
		return fallback()
	}
	return decodeValue(raw)
}

// Remember returns the value stored under key if one exists; otherwise it
// invokes produce, stores the result under key with the given attributes,
// and returns it.
func (s *Store) Remember(key string, produce func() Value, attrs ...Attribute) (Value, error) {
	if existing := s.Get(key); !existing.IsNull() {
		return existing, nil
	}

	v := produce()
	if _, err := s.Set(key, v, attrs...); err != nil {
		return Null(), err
	}
	return v, nil
}

// All returns every entry currently visible in the jar, in the jar's native
// order. The result is nil when the jar is empty.
func (s *Store) All() []Entry {
	all := s.jar.ReadAll()
	if all == "" {
		return nil
	}

	segments := strings.Split(all, ";")
	entries := make([]Entry, 0, len(segments))
	for _, segment := range segments {
		segment = strings.TrimSpace(segment)
		if segment == "" {
			continue
		}
		name, _, _ := strings.Cut(segment, "=")
		entries = append(entries, Entry{Key: name, Value: s.Get(name)})
	}
	return entries
}

// Has reports whether key resolves to a truthy value. An entry stored with
// an empty string, false, or 0 therefore reads as absent; this mirrors the
// truthiness check the read path has always used and is intentional.
func (s *Store) Has(key string) bool {
	return s.Get(key).isTruthy()
}

// HasAny reports whether any of the keys satisfies Has.
func (s *Store) HasAny(keys ...string) bool {
	for _, key := range keys {
		if s.Has(key) {
			return true
		}
	}
	return false
}

// IsEmpty reports whether the jar holds no visible entries.
func (s *Store) IsEmpty() bool {
	return s.jar.ReadAll() == ""
}

// IsNotEmpty reports whether the jar holds at least one visible entry.
func (s *Store) IsNotEmpty() bool {
	return !s.IsEmpty()
}

// Keys returns the key projection of All.
func (s *Store) Keys() []string {
	entries := s.All()
	if len(entries) == 0 {
		return nil
	}

	keys := make([]string, len(entries))
	for i, e := range entries {
		keys[i] = e.Key
	}
	return keys
}

// Count returns the number of entries currently visible in the jar.
func (s *Store) Count() int {
	return len(s.All())
}

// Remove expires key immediately. Only the Path attribute is honored so the
// deletion targets the same scope the entry was written under; store-wide
// defaults, including the default TTL, do not apply.
func (s *Store) Remove(key string, attrs ...Attribute) {
	resolved := applyAttributes(Attributes{}, attrs)
	entry, err := s.format(key, "", Attributes{TTL: -1, Path: resolved.Path})
	if err == nil {
		s.jar.WriteOne(entry)
	}
}

// Clear removes every entry currently visible in the jar, applying the same
// Path attribute to each removal. Clearing an empty jar is a no-op.
func (s *Store) Clear(attrs ...Attribute) {
	for _, key := range s.Keys() {
		s.Remove(key, attrs...)
	}
}

// Touch refreshes the expiration of an existing entry by re-writing its
// current value with the given TTL; zero resolves to the store-wide default.
// Only the Path attribute is honored. A missing key is left untouched.
func (s *Store) Touch(key string, ttlSeconds int, attrs ...Attribute) error {
	raw, ok := s.lookup(key)
	if !ok || raw == "" {
		return nil
	}

	if ttlSeconds == 0 {
		ttlSeconds = s.defaultTTL
	}
	resolved := applyAttributes(Attributes{}, attrs)
	entry, err := s.format(key, decodeValue(raw).Encode(), Attributes{TTL: ttlSeconds, Path: resolved.Path})
	if err != nil {
		return err
	}
	s.jar.WriteOne(entry)
	return nil
}

// Dump writes the decoded value of key to the store's logger.
func (s *Store) Dump(key string) {
	s.log.Info("cookie dump",
		slog.String("key", key),
		slog.Any("value", s.Get(key).native()),
	)
}

// lookup scans the jar's full cookie string for the entry with the given
// key. The key is meta-escaped so keys containing regexp specials match
// literally. The second return is false when no entry exists; an entry
// written with no value yields "" and true.
func (s *Store) lookup(key string) (string, bool) {
	all := s.jar.ReadAll()
	if all == "" {
		return "", false
	}

	re := regexp.MustCompile(`(?:^|;\s*)` + regexp.QuoteMeta(key) + `(?:=([^;]*))?(?:;|$)`)
	m := re.FindStringSubmatch(all)
	if m == nil {
		return "", false
	}
	return m[1], true
}
