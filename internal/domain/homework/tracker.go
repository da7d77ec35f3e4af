// internal/domain/homework/tracker.go
package homework

// Decision is the outcome of observing one homework status.
// Notify is false when nothing should be sent.
type Decision struct {
	Notify  bool
	Verdict string
}

// Tracker remembers the last seen status per homework name.
// It is owned by a single poll loop and is not safe for concurrent use.
type Tracker struct {
	statuses map[string]Status
}

func NewTracker() *Tracker {
	return &Tracker{statuses: make(map[string]Status)}
}

// Observe records status for name and reports whether a notification is due.
// The first sighting of a name is adopted as baseline and never notifies.
// An unknown status is rejected before any state changes.
func (t *Tracker) Observe(name string, status Status) (Decision, error) {
	verdict, err := Verdict(status)
	if err != nil {
		return Decision{}, err
	}

	prev, seen := t.statuses[name]
	t.statuses[name] = status
	if !seen || prev == status {
		return Decision{}, nil
	}
	return Decision{Notify: true, Verdict: verdict}, nil
}

// Len returns the number of distinct homeworks seen so far.
func (t *Tracker) Len() int {
	return len(t.statuses)
}
