// Package merge combines two timestamp-sorted record streams into one.
package merge

import (
	"go.uber.org/zap"
)

// Stats counts the records emitted from each input.
type Stats struct {
	FromA int
	FromB int
}

// Total is the number of records written to the sink.
func (s Stats) Total() int { return s.FromA + s.FromB }

// Merger performs a two-way streaming merge. It keeps no state between
// calls, so one Merger may serve any number of independent merges.
type Merger struct {
	logger *zap.Logger
}

// Option configures a Merger.
type Option func(*Merger)

// WithLogger sets the logger used for debug output.
func WithLogger(logger *zap.Logger) Option {
	return func(m *Merger) {
		if logger != nil {
			m.logger = logger
		}
	}
}

// New returns a Merger.
func New(opts ...Option) *Merger {
	m := &Merger{logger: zap.NewNop()}
	for _, opt := range opts {
		opt(m)
	}
	return m
}

// cursor tracks the pending head of one input.
type cursor struct {
	name    string
	src     Source
	head    Record
	emitted int
}

func (c *cursor) advance() (bool, error) {
	rec, ok, err := c.src.Next()
	if err != nil || !ok {
		return false, err
	}
	c.head = rec
	return true, nil
}

func (c *cursor) emit(dst Sink) error {
	if err := dst.Write(c.head); err != nil {
		return err
	}
	c.emitted++
	return nil
}

// drain emits the pending head and then every remaining record of c.
func (c *cursor) drain(dst Sink) error {
	for {
		if err := c.emit(dst); err != nil {
			return err
		}
		ok, err := c.advance()
		if err != nil {
			return err
		}
		if !ok {
			return nil
		}
	}
}

// Merge reads a and b to exhaustion and writes every record to dst in
// non-decreasing timestamp order. On equal timestamps the record from a is
// written first. An empty input is not an error: the other input is copied
// through unchanged. The first error from either input or from dst aborts
// the merge; records already written stay written.
func (m *Merger) Merge(a, b Source, dst Sink) (Stats, error) {
	ca := &cursor{name: "A", src: a}
	cb := &cursor{name: "B", src: b}
	stats := func() Stats { return Stats{FromA: ca.emitted, FromB: cb.emitted} }

	okA, err := ca.advance()
	if err != nil {
		return stats(), err
	}
	okB, err := cb.advance()
	if err != nil {
		return stats(), err
	}

	switch {
	case !okA && !okB:
		m.logger.Debug("Both inputs are empty")
		return stats(), nil
	case !okA:
		m.logger.Debug("Input is empty, copying the other", zap.String("empty", ca.name))
		return stats(), cb.drain(dst)
	case !okB:
		m.logger.Debug("Input is empty, copying the other", zap.String("empty", cb.name))
		return stats(), ca.drain(dst)
	}

	for {
		next, other := ca, cb
		if ca.head.Timestamp.Compare(cb.head.Timestamp) > 0 {
			next, other = cb, ca
		}

		if err := next.emit(dst); err != nil {
			return stats(), err
		}
		ok, err := next.advance()
		if err != nil {
			return stats(), err
		}
		if !ok {
			m.logger.Debug("Input exhausted, draining the other",
				zap.String("exhausted", next.name),
				zap.String("draining", other.name),
				zap.Int("emitted", ca.emitted+cb.emitted))
			return stats(), other.drain(dst)
		}
	}
}
