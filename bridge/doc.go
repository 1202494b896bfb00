// Package bridge links two independently-scheduled actor runtime islands.
//
// It provides location-transparent actor references, name resolution that
// consults the local registry before the peer island, foreign-call dispatch
// over the closed interop catalog, and the guarded lifecycle of the
// island-local Manager. Every boundary operation reports failure through a
// sentinel value or a small negative status code; none of them panic.
//
// Sends are synchronous: a remote send blocks the calling actor's run
// context until the peer's handler returns a status. The bridge implements
// no timeout or cancellation; pacing a slow peer is the scheduler
// collaborator's responsibility.
package bridge
