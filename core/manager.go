package core

import (
	"log"
	"sync"

	"github.com/actorisle/isle/interop"
)

// mailbox is the run context for one registered actor: a buffered channel
// drained by a dedicated goroutine.
type mailbox struct {
	name  string
	actor Actor
	ch    chan envelope
	quit  chan struct{}
	drain bool
}

// Manager owns the actor instances of one runtime island and schedules
// their message processing. Each registered actor runs in its own goroutine
// and processes messages sequentially.
//
// Registration is expected during a startup phase, but remains legal while
// the island is running: a peer's handler may register new actors re-entrantly.
type Manager struct {
	mu      sync.RWMutex
	actors  map[string]*mailbox
	order   []string
	started bool
	ended   bool

	// Joined by End before it returns
	wg sync.WaitGroup
}

// NewManager creates an empty Manager.
func NewManager() *Manager {
	return &Manager{
		actors: make(map[string]*mailbox),
	}
}

// Manage registers an actor under name and starts its run context.
// Registering a name that is already taken is rejected with
// ErrDuplicateName; the existing actor is never replaced.
//
// If the Manager has already been initialized the new actor receives its
// Start notification immediately.
func (m *Manager) Manage(name string, actor Actor, cfg ThreadConfig) error {
	if name == "" {
		return ErrEmptyName
	}
	if actor == nil {
		return ErrNilActor
	}
	if cfg.MailboxSize <= 0 {
		cfg = DefaultThreadConfig()
	}

	mb := &mailbox{
		name:  name,
		actor: actor,
		ch:    make(chan envelope, cfg.MailboxSize),
		quit:  make(chan struct{}),
		drain: cfg.DrainOnStop,
	}

	m.mu.Lock()
	if m.ended {
		m.mu.Unlock()
		return ErrManagerEnded
	}
	if _, exists := m.actors[name]; exists {
		m.mu.Unlock()
		return ErrDuplicateName
	}
	m.actors[name] = mb
	m.order = append(m.order, name)
	started := m.started
	m.wg.Add(1)
	m.mu.Unlock()

	go m.run(mb)

	if started {
		mb.ch <- envelope{msg: Start{}}
	}
	return nil
}

// Lookup reports whether an actor is registered under name.
func (m *Manager) Lookup(name string) bool {
	m.mu.RLock()
	defer m.mu.RUnlock()
	_, ok := m.actors[name]
	return ok
}

// Names returns the registered actor names in registration order.
func (m *Manager) Names() []string {
	m.mu.RLock()
	defer m.mu.RUnlock()
	names := make([]string, len(m.order))
	copy(names, m.order)
	return names
}

// Post enqueues a message for the named actor. It blocks while the mailbox
// is full and returns false when the target is unknown or its run context
// has stopped.
func (m *Manager) Post(name string, msg interop.Message, sender string) bool {
	m.mu.RLock()
	mb, ok := m.actors[name]
	m.mu.RUnlock()
	if !ok {
		return false
	}

	// The registry lock is already released here; a full mailbox blocks
	// the caller, it never blocks registration.
	select {
	case mb.ch <- envelope{msg: msg, sender: sender}:
		return true
	case <-mb.quit:
		return false
	}
}

// GetHandle returns a Handle bound to this Manager. One is issued to each
// actor at registration time by the bridge.
func (m *Manager) GetHandle() *Handle {
	return &Handle{m: m}
}

// Init broadcasts the Start notification to every registered actor, in
// registration order. Only the first call broadcasts; actors registered
// afterwards are started by Manage.
func (m *Manager) Init() {
	m.mu.Lock()
	if m.started || m.ended {
		m.mu.Unlock()
		return
	}
	m.started = true
	boxes := make([]*mailbox, 0, len(m.order))
	for _, name := range m.order {
		boxes = append(boxes, m.actors[name])
	}
	m.mu.Unlock()

	for _, mb := range boxes {
		mb.ch <- envelope{msg: Start{}}
	}
}

// End stops every actor's run context and waits for all of them to finish.
// It is idempotent; a second call returns immediately.
func (m *Manager) End() {
	m.mu.Lock()
	if m.ended {
		m.mu.Unlock()
		return
	}
	m.ended = true
	boxes := make([]*mailbox, 0, len(m.order))
	for _, name := range m.order {
		boxes = append(boxes, m.actors[name])
	}
	m.mu.Unlock()

	for _, mb := range boxes {
		close(mb.quit)
	}

	// Join outside the lock so re-entrant lookups from draining actors
	// cannot deadlock.
	m.wg.Wait()
}

// run is the message loop for one actor.
func (m *Manager) run(mb *mailbox) {
	defer m.wg.Done()

	for {
		select {
		case env := <-mb.ch:
			m.deliver(mb, env)
		case <-mb.quit:
			if mb.drain {
				m.drainMailbox(mb)
			}
			m.deliver(mb, envelope{msg: Stop{}})
			return
		}
	}
}

// drainMailbox processes messages still queued at shutdown.
func (m *Manager) drainMailbox(mb *mailbox) {
	for {
		select {
		case env := <-mb.ch:
			m.deliver(mb, env)
		default:
			return
		}
	}
}

// deliver invokes the actor, containing panics so a faulty actor cannot
// take the island down.
func (m *Manager) deliver(mb *mailbox, env envelope) {
	defer func() {
		if r := recover(); r != nil {
			log.Printf("[core] actor %q panicked on message %d: %v",
				mb.name, env.msg.TypeID(), r)
		}
	}()
	mb.actor.Receive(env.msg, env.sender)
}
