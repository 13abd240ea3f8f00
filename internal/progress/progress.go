// Package progress carries search progress from the prime finders to the
// presentation layers through an observer fan-out.
package progress

import (
	"sync"

	"github.com/agbru/primecalc/internal/logging"
)

// ProgressUpdate is a progress notification from one search.
type ProgressUpdate struct {
	// WorkerIndex identifies the search among concurrent ones.
	WorkerIndex int
	// Value is the fraction, 0 to 1, of the divisor range of the current
	// candidate already tried.
	Value float64
	// Candidate is the decimal rendering of the current candidate.
	Candidate string
	// Candidates counts the candidates examined so far, the current one
	// included.
	Candidates uint64
	// Divisions counts the trial divisions performed so far.
	Divisions uint64
}

// ProgressCallback receives the updates of a single search. The worker
// index is already filled in.
type ProgressCallback func(ProgressUpdate)

// ProgressObserver is notified of updates from any search.
type ProgressObserver interface {
	Update(ProgressUpdate)
}

// ProgressSubject fans updates out to its registered observers.
type ProgressSubject struct {
	mu        sync.RWMutex
	observers []ProgressObserver
}

// NewProgressSubject creates a subject without observers.
func NewProgressSubject() *ProgressSubject {
	return &ProgressSubject{}
}

// Register adds an observer. Nil observers are ignored.
func (s *ProgressSubject) Register(o ProgressObserver) {
	if o == nil {
		return
	}
	s.mu.Lock()
	defer s.mu.Unlock()
	s.observers = append(s.observers, o)
}

// Unregister removes the first registration of o.
func (s *ProgressSubject) Unregister(o ProgressObserver) {
	s.mu.Lock()
	defer s.mu.Unlock()
	for i, registered := range s.observers {
		if registered == o {
			s.observers = append(s.observers[:i:i], s.observers[i+1:]...)
			return
		}
	}
}

// Len returns the number of registered observers.
func (s *ProgressSubject) Len() int {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return len(s.observers)
}

// Freeze returns a callback for the search with the given index that
// notifies the observers registered at the time of the call. Observers
// registered later are not notified through it.
func (s *ProgressSubject) Freeze(workerIndex int) ProgressCallback {
	s.mu.RLock()
	snapshot := make([]ProgressObserver, len(s.observers))
	copy(snapshot, s.observers)
	s.mu.RUnlock()

	return func(u ProgressUpdate) {
		u.WorkerIndex = workerIndex
		for _, o := range snapshot {
			o.Update(u)
		}
	}
}

// ChannelObserver forwards updates to a channel. Updates are dropped when
// the channel is full so that a slow reader never stalls a search.
type ChannelObserver struct {
	ch chan<- ProgressUpdate
}

// NewChannelObserver creates an observer sending to ch.
func NewChannelObserver(ch chan<- ProgressUpdate) *ChannelObserver {
	return &ChannelObserver{ch: ch}
}

// Update implements ProgressObserver.
func (o *ChannelObserver) Update(u ProgressUpdate) {
	select {
	case o.ch <- u:
	default:
	}
}

// LoggingObserver logs updates at debug level, at most once per step of
// progress per worker and on every new candidate.
type LoggingObserver struct {
	logger logging.Logger
	step   float64

	mu   sync.Mutex
	last map[int]ProgressUpdate
}

// NewLoggingObserver creates an observer logging every step of progress,
// e.g. 0.1 for every 10%.
func NewLoggingObserver(logger logging.Logger, step float64) *LoggingObserver {
	if step <= 0 {
		step = 0.1
	}
	return &LoggingObserver{logger: logger, step: step, last: make(map[int]ProgressUpdate)}
}

// Update implements ProgressObserver.
func (o *LoggingObserver) Update(u ProgressUpdate) {
	o.mu.Lock()
	prev, seen := o.last[u.WorkerIndex]
	newCandidate := !seen || prev.Candidate != u.Candidate
	if !newCandidate && u.Value-prev.Value < o.step && u.Value < 1 {
		o.mu.Unlock()
		return
	}
	o.last[u.WorkerIndex] = u
	o.mu.Unlock()

	o.logger.Debug("search progress",
		logging.Int("worker", u.WorkerIndex),
		logging.String("candidate", u.Candidate),
		logging.Float64("progress", u.Value),
		logging.Uint64("candidates", u.Candidates),
		logging.Uint64("divisions", u.Divisions),
	)
}

// NoOpObserver discards updates.
type NoOpObserver struct{}

// NewNoOpObserver creates a NoOpObserver.
func NewNoOpObserver() NoOpObserver { return NoOpObserver{} }

// Update implements ProgressObserver.
func (NoOpObserver) Update(ProgressUpdate) {}
