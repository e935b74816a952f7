package game

import "testing"

// scriptedRand returns queued draws in order, then zero. Each draw is
// reduced modulo n so it always satisfies the IntN contract.
type scriptedRand struct {
	draws []int
	calls int
}

func (r *scriptedRand) IntN(n int) int {
	r.calls++
	if len(r.draws) == 0 {
		return 0
	}
	v := r.draws[0]
	r.draws = r.draws[1:]
	return v % n
}

func newTestSession(t *testing.T, rng Rand) *Session {
	t.Helper()

	s, err := NewSession(SessionConfig{PlayerName: "Ada", PlayerAge: 20, Seed: 42, Rand: rng})
	if err != nil {
		t.Fatalf("new session: %v", err)
	}
	return s
}
