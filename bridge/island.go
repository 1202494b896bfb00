package bridge

import (
	"errors"
	"log"
	"sync"

	"github.com/actorisle/isle/config"
	"github.com/actorisle/isle/core"
	"github.com/actorisle/isle/interop"
)

// Island is the application context for one runtime island. It owns the
// single Manager slot of the island and the peer capabilities installed by
// the linking code.
//
// The slot is empty before CreateManager and after Shutdown; every
// management operation invoked while the slot is empty is a no-op that
// returns a sentinel. The mutex is held only around slot and peer access,
// never across a boundary call or the shutdown join.
type Island struct {
	name     string
	defaults core.ThreadConfig

	mu   sync.Mutex
	mgr  *core.Manager
	peer *Peer
}

// Peer bundles the boundary-crossing capabilities this island calls on the
// other one. Both functions must be safe for concurrent use.
type Peer struct {
	// Deliver hands a marshalled message to the peer island.
	Deliver DeliverFunc

	// Exists reports whether the peer island hosts an actor under name.
	Exists ExistsFunc
}

// New creates an Island with default actor settings.
func New(name string) *Island {
	return &Island{
		name:     name,
		defaults: core.DefaultThreadConfig(),
	}
}

// NewFromConfig creates an Island configured from cfg.
func NewFromConfig(cfg *config.Config) *Island {
	return &Island{
		name: cfg.Island.Name,
		defaults: core.ThreadConfig{
			MailboxSize: cfg.Actor.MailboxSize,
			DrainOnStop: cfg.Actor.DrainOnStop,
		},
	}
}

// Name returns the island name.
func (i *Island) Name() string { return i.name }

// CreateManager creates the island's Manager. Calling it while a Manager
// already exists is a no-op.
func (i *Island) CreateManager() {
	i.mu.Lock()
	defer i.mu.Unlock()
	if i.mgr == nil {
		i.mgr = core.NewManager()
	}
}

// manager reads the slot under the lock.
func (i *Island) manager() *core.Manager {
	i.mu.Lock()
	defer i.mu.Unlock()
	return i.mgr
}

// RegisterActor registers an actor under name and returns the Handle the
// actor may keep for posting further work. It returns nil before
// CreateManager and when the name is already taken; an existing
// registration is never replaced.
func (i *Island) RegisterActor(name string, actor core.Actor, cfg core.ThreadConfig) *core.Handle {
	mgr := i.manager()
	if mgr == nil {
		return nil
	}
	if cfg.MailboxSize <= 0 {
		cfg = i.defaults
	}
	if err := mgr.Manage(name, actor, cfg); err != nil {
		if errors.Is(err, core.ErrDuplicateName) {
			log.Printf("[bridge] %s: rejecting duplicate registration of %q", i.name, name)
		}
		return nil
	}
	return mgr.GetHandle()
}

// GetManagerHandle returns a Handle bound to the island's Manager, or nil
// before CreateManager.
func (i *Island) GetManagerHandle() *core.Handle {
	mgr := i.manager()
	if mgr == nil {
		return nil
	}
	return mgr.GetHandle()
}

// Init broadcasts the start notification to every registered actor.
func (i *Island) Init() Status {
	mgr := i.manager()
	if mgr == nil {
		return StatusNoManager
	}
	mgr.Init()
	return StatusOK
}

// Shutdown stops every registered actor and waits for their run contexts
// to finish. It is idempotent: a second call succeeds trivially. The slot
// is cleared under the lock; the join happens outside it.
func (i *Island) Shutdown() Status {
	i.mu.Lock()
	mgr := i.mgr
	i.mgr = nil
	i.mu.Unlock()

	if mgr != nil {
		mgr.End()
	}
	return StatusOK
}

// InstallPeer installs the peer island's capabilities. Only the first
// install takes effect; later calls are no-ops and return false. Install
// the peer after that island has completed its own initialization:
// resolving a foreign name before installation yields NotFound.
func (i *Island) InstallPeer(p Peer) bool {
	i.mu.Lock()
	defer i.mu.Unlock()
	if i.peer != nil {
		return false
	}
	i.peer = &p
	return true
}

// Resolve maps a name to an ActorRef: the local registry first, then the
// peer island's lookup capability. The boolean is false when the name is
// unknown on both sides or no peer is installed yet. Results are not
// cached; callers may hold a resolved ref across many sends.
func (i *Island) Resolve(target, sender string) (ActorRef, bool) {
	i.mu.Lock()
	mgr := i.mgr
	peer := i.peer
	i.mu.Unlock()

	if mgr != nil && mgr.Lookup(target) {
		return &localRef{mgr: mgr, target: target, sender: sender}, true
	}

	// The peer lookup is a boundary call; the island lock is already
	// released here.
	if peer != nil && peer.Exists != nil && peer.Exists(target) {
		return &remoteRef{target: target, sender: sender, deliver: peer.Deliver}, true
	}
	return nil, false
}

// Deliver is the inbound boundary entry point: it unmarshals the wire form
// and enqueues the message for the target actor. The distinct failure
// codes are part of the wire contract; see StatusString.
func (i *Island) Deliver(target, sender string, typeID interop.TypeID, data []byte) Status {
	mgr := i.manager()
	if mgr == nil {
		return StatusNoManager
	}

	msg, err := interop.Decode(typeID, data)
	if err != nil {
		if errors.Is(err, interop.ErrUnknownType) {
			return StatusUnknownType
		}
		log.Printf("[bridge] %s: undecodable wire payload for id %d to %q: %v",
			i.name, typeID, target, err)
		return StatusTypeMismatch
	}

	if !mgr.Post(target, msg, sender) {
		return StatusNotFound
	}
	return StatusOK
}

// Exists is the inbound lookup entry point. It reports false before
// CreateManager rather than failing.
func (i *Island) Exists(name string) bool {
	mgr := i.manager()
	if mgr == nil {
		return false
	}
	return mgr.Lookup(name)
}

// Link cross-installs the boundary capabilities of two islands hosted in
// the same process. Call it after both islands have registered their
// actors and before Init.
func Link(a, b *Island) {
	a.InstallPeer(Peer{Deliver: b.Deliver, Exists: b.Exists})
	b.InstallPeer(Peer{Deliver: a.Deliver, Exists: a.Exists})
}
