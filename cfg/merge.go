package cfg

import (
	"bufio"
	"io"
	"log/slog"
	"slices"

	"github.com/ardnew/cfgpatch/log"
)

// identity is the map key under which a statement is stored. Payload is
// deliberately absent.
type identity struct {
	kind Kind
	key  string
}

// Set is an identity-keyed collection of statements.
//
// Inserting a statement whose (kind, key) identity is already present
// replaces the stored statement wholesale. Iteration and serialization
// always follow the total order of [Statement.Compare] regardless of
// insertion order.
type Set struct {
	items  map[identity]Statement
	logger log.Logger
}

// Option configures a [Set].
type Option func(*Set)

// WithLogger sets the logger used for trace records during load and merge.
func WithLogger(logger log.Logger) Option {
	return func(s *Set) { s.logger = logger }
}

// NewSet returns an empty statement collection.
func NewSet(opts ...Option) *Set {
	s := &Set{items: make(map[identity]Statement)}

	for _, opt := range opts {
		opt(s)
	}

	return s
}

// Len returns the number of distinct statement identities held.
func (s *Set) Len() int { return len(s.items) }

// Insert adds st to the collection, replacing any statement with the same
// identity. It reports whether an existing statement was replaced.
func (s *Set) Insert(st Statement) bool {
	id := identity{kind: st.Kind, key: st.Key}

	prev, replaced := s.items[id]
	s.items[id] = st

	if replaced {
		s.logger.Trace("replaced statement",
			slog.Any("previous", prev),
			slog.Any("current", st),
		)
	}

	return replaced
}

// Get returns the statement with the given identity, if present.
func (s *Set) Get(kind Kind, key string) (Statement, bool) {
	st, ok := s.items[identity{kind: kind, key: key}]

	return st, ok
}

// Lookup returns every statement whose key matches, across all kinds, in
// total order. A key can name at most one statement per kind.
func (s *Set) Lookup(key string) []Statement {
	var match []Statement

	for id, st := range s.items {
		if id.key == key {
			match = append(match, st)
		}
	}

	slices.SortFunc(match, Statement.Compare)

	return match
}

// Keys returns the sorted, deduplicated keys of every statement held.
func (s *Set) Keys() []string {
	keys := make([]string, 0, len(s.items))

	for id := range s.items {
		keys = append(keys, id.key)
	}

	slices.Sort(keys)

	return slices.Compact(keys)
}

// Statements returns every statement held, in total order: commands, then
// binds, then settings, each group sorted lexically by key.
func (s *Set) Statements() []Statement {
	list := make([]Statement, 0, len(s.items))

	for _, st := range s.items {
		list = append(list, st)
	}

	slices.SortFunc(list, Statement.Compare)

	return list
}

// Load parses every line of r into the collection, in order. The first
// malformed line aborts the load with a [LineError] carrying its zero-based
// index; the collection retains statements from the lines preceding it.
// Callers needing atomicity load into a fresh Set and discard it on error.
func (s *Set) Load(r io.Reader) error {
	return s.LoadFiltered(r, nil)
}

// maxLineBytes caps the length of a single input line. Bind actions can
// carry long command chains, so this is well above the bufio default.
const maxLineBytes = 1 << 20

// LoadFiltered is [Set.Load] with an optional filter restricting which
// parsed statements are inserted. Lines are still fully parsed when
// filtered out, so the error behavior is identical with and without a
// filter.
func (s *Set) LoadFiltered(r io.Reader, filter *Filter) error {
	scanner := bufio.NewScanner(r)
	scanner.Buffer(make([]byte, 0, bufio.MaxScanTokenSize), maxLineBytes)

	index := 0

	for ; scanner.Scan(); index++ {
		st, err := ParseLine(scanner.Text())
		if err != nil {
			return &LineError{Index: index, Err: err}
		}

		if st == nil {
			continue
		}

		if filter != nil {
			ok, err := filter.Match(*st)
			if err != nil {
				return &LineError{Index: index, Err: err}
			}

			if !ok {
				s.logger.Trace("filtered statement", slog.Any("statement", *st))

				continue
			}
		}

		s.Insert(*st)
	}

	if err := scanner.Err(); err != nil {
		// Read failures and over-long lines stopped the scan at index, so
		// attribute them to that line like any parse failure.
		return &LineError{Index: index, Err: err}
	}

	return nil
}

// Merge loads target and then patch into a new collection, so every patch
// statement overrides the target statement with the same identity and every
// other patch statement is appended. On error the returned collection is
// nil; nothing observable has been modified.
func Merge(target, patch io.Reader, opts ...Option) (*Set, error) {
	return MergeFiltered(target, patch, nil, opts...)
}

// MergeFiltered is [Merge] with an optional filter restricting which patch
// statements participate. The target is always loaded unfiltered.
func MergeFiltered(
	target, patch io.Reader,
	filter *Filter,
	opts ...Option,
) (*Set, error) {
	s := NewSet(opts...)

	if err := s.Load(target); err != nil {
		return nil, err
	}

	loaded := s.Len()

	if err := s.LoadFiltered(patch, filter); err != nil {
		return nil, err
	}

	s.logger.Debug("merged statements",
		slog.Int("target", loaded),
		slog.Int("merged", s.Len()),
	)

	return s, nil
}

// WriteTo serializes the collection to w in total order, one canonical
// statement per line, each line newline-terminated. It implements
// [io.WriterTo], returning the number of bytes that reached w.
func (s *Set) WriteTo(w io.Writer) (int64, error) {
	// Count at the destination, not inside the buffer, so a failed flush
	// never overstates what was delivered.
	count := &countWriter{w: w}
	buf := bufio.NewWriter(count)

	for _, st := range s.Statements() {
		if _, err := buf.WriteString(st.String()); err != nil {
			return count.n, err
		}

		if err := buf.WriteByte('\n'); err != nil {
			return count.n, err
		}
	}

	return count.n, buf.Flush()
}

// countWriter tracks how many bytes its underlying writer accepted.
type countWriter struct {
	w io.Writer
	n int64
}

func (c *countWriter) Write(p []byte) (int, error) {
	n, err := c.w.Write(p)
	c.n += int64(n)

	return n, err
}
