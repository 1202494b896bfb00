package bridge

import (
	"sync"
	"testing"
	"time"

	"github.com/actorisle/isle/core"
	"github.com/actorisle/isle/interop"
)

// pinger drives a bounded cross-island exchange.
type pinger struct {
	island *Island
	target string
	max    int32
	ref    ActorRef
	done   chan int32
}

func (a *pinger) Receive(msg interop.Message, sender string) {
	switch m := msg.(type) {
	case core.Start:
		ref, ok := a.island.Resolve(a.target, "ping")
		if !ok {
			a.done <- -1
			return
		}
		a.ref = ref
		a.ref.Send(interop.Ping{Count: 1})
	case interop.Pong:
		if m.Count >= a.max {
			a.done <- m.Count
			return
		}
		a.ref.Send(interop.Ping{Count: m.Count + 1})
	}
}

func TestTwoIslandPingPong(t *testing.T) {
	alpha := New("alpha")
	beta := New("beta")
	alpha.CreateManager()
	beta.CreateManager()

	done := make(chan int32, 1)
	alpha.RegisterActor("ping", &pinger{island: alpha, target: "pong", max: 5, done: done}, core.ThreadConfig{})
	beta.RegisterActor("pong", &ponger{island: beta, name: "pong"}, core.ThreadConfig{})

	Link(alpha, beta)

	beta.Init()
	alpha.Init()

	select {
	case count := <-done:
		if count != 5 {
			t.Errorf("exchange finished at count %d, want 5", count)
		}
	case <-time.After(5 * time.Second):
		t.Fatal("cross-island exchange did not finish")
	}

	alpha.Shutdown()
	beta.Shutdown()
}

func TestLinkInstallsBothDirections(t *testing.T) {
	alpha := New("alpha")
	beta := New("beta")
	alpha.CreateManager()
	beta.CreateManager()
	defer alpha.Shutdown()
	defer beta.Shutdown()

	alpha.RegisterActor("a", &ponger{island: alpha, name: "a"}, core.ThreadConfig{})
	beta.RegisterActor("b", &ponger{island: beta, name: "b"}, core.ThreadConfig{})

	Link(alpha, beta)

	if ref, ok := alpha.Resolve("b", "a"); !ok {
		t.Error("alpha cannot resolve beta's actor")
	} else if _, isRemote := ref.(*remoteRef); !isRemote {
		t.Errorf("expected remote variant from alpha, got %T", ref)
	}
	if ref, ok := beta.Resolve("a", "b"); !ok {
		t.Error("beta cannot resolve alpha's actor")
	} else if _, isRemote := ref.(*remoteRef); !isRemote {
		t.Errorf("expected remote variant from beta, got %T", ref)
	}
}

// TestReentrantRegistrationDuringBoundaryCall exercises the lock
// discipline: the peer's deliver handler turns around and registers a new
// actor on the calling island. The island lock must not be held across the
// boundary call or this deadlocks.
func TestReentrantRegistrationDuringBoundaryCall(t *testing.T) {
	isle := New("alpha")
	isle.CreateManager()
	defer isle.Shutdown()

	registered := make(chan bool, 1)
	peer := Peer{
		Deliver: func(target, sender string, typeID interop.TypeID, data []byte) Status {
			h := isle.RegisterActor("reentrant", &ponger{island: isle, name: "reentrant"}, core.ThreadConfig{})
			registered <- h != nil
			return StatusOK
		},
		Exists: func(name string) bool { return true },
	}
	isle.InstallPeer(peer)

	ref, ok := isle.Resolve("remote", "me")
	if !ok {
		t.Fatal("remote name did not resolve")
	}

	finished := make(chan Status, 1)
	go func() {
		finished <- ref.Send(interop.Ping{Count: 1})
	}()

	select {
	case st := <-finished:
		if st != StatusOK {
			t.Errorf("Send returned %d", st)
		}
	case <-time.After(2 * time.Second):
		t.Fatal("boundary call deadlocked against a re-entrant registration")
	}

	if ok := <-registered; !ok {
		t.Error("re-entrant registration failed")
	}
	if !isle.Exists("reentrant") {
		t.Error("re-entrant actor not visible afterwards")
	}
}

// TestConcurrentResolves exercises read-only lookups from many goroutines
// after the registration phase.
func TestConcurrentResolves(t *testing.T) {
	isle := New("alpha")
	isle.CreateManager()
	defer isle.Shutdown()

	for _, name := range []string{"a", "b", "c"} {
		isle.RegisterActor(name, &ponger{island: isle, name: name}, core.ThreadConfig{})
	}
	isle.Init()

	var wg sync.WaitGroup
	for i := 0; i < 8; i++ {
		wg.Add(1)
		go func() {
			defer wg.Done()
			for j := 0; j < 200; j++ {
				for _, name := range []string{"a", "b", "c"} {
					if _, ok := isle.Resolve(name, "tester"); !ok {
						t.Errorf("lost registration for %q", name)
						return
					}
				}
			}
		}()
	}
	wg.Wait()
}
