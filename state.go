package amp

import (
	"sync/atomic"
)

// threadState represents the lifecycle state of a [Thread].
//
// State Machine:
//
//	statePreLaunch → stateJoinable  [Thread.Launch]
//	stateJoinable  → stateJoined    [Thread.Join]
//
// There is no path back from stateJoined, and no path directly from
// statePreLaunch to stateJoined: a thread that is never launched can only be
// destroyed, not joined (spec §4.7).
type threadState uint64

const (
	// statePreLaunch is the state of a configured-but-not-yet-launched
	// thread.
	statePreLaunch threadState = 0
	// stateJoinable is the state of a launched, running-or-finished thread
	// that has not yet been joined.
	stateJoinable threadState = 1
	// stateJoined is the terminal state: Join has completed.
	stateJoined threadState = 2
)

// String returns a human-readable representation of the state.
func (s threadState) String() string {
	switch s {
	case statePreLaunch:
		return "pre-launch"
	case stateJoinable:
		return "joinable"
	case stateJoined:
		return "joined"
	default:
		return "unknown"
	}
}

// fastState is a lock-free state machine with cache-line padding, adapted
// from the event-loop teacher's FastState: pure atomic CAS with no mutex,
// and padding on both sides of the value to avoid false sharing when many
// Thread values sit adjacent in a ThreadArray's backing slice.
type fastState struct { // betteralign:ignore
	_ [64]byte      //nolint:unused
	v atomic.Uint64 //nolint:unused
	_ [56]byte      //nolint:unused
}

// newFastState creates a state machine starting in statePreLaunch.
func newFastState() *fastState {
	s := &fastState{}
	s.v.Store(uint64(statePreLaunch))
	return s
}

// load returns the current state atomically.
func (s *fastState) load() threadState {
	return threadState(s.v.Load())
}

// tryTransition attempts to atomically transition from one state to
// another, returning true if it succeeded.
func (s *fastState) tryTransition(from, to threadState) bool {
	return s.v.CompareAndSwap(uint64(from), uint64(to))
}
