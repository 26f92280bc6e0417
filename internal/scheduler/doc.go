// Package scheduler provides the event queue and watch loop behind task
// notifications. It keeps a min-heap of start/deadline Events sorted by
// trigger time and a cooperative Watcher that fires due events, asks the
// caller whether to keep watching and then sleeps in slices capped at
// MaxWait (five minutes by default), so a stop request is honored quickly.
//
// The scheduler does not own tasks. Events carry an opaque Handle that the
// caller resolves against its own task arena.
package scheduler
