// Package core implements the actor scheduler for one runtime island.
//
// This package provides the Manager that owns actor instances and their
// run contexts, the Handle capability issued to each registered actor,
// and the control messages broadcast at startup and shutdown. The bridge
// package builds location-transparent references on top of it.
package core
