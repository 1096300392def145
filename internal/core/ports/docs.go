// Package ports defines the contracts between the attendance core and the
// outside world: repositories and the unit of work for the aggregates this
// core owns, and the collaborators it consumes (location feed, invoicing,
// rota store, event publishing, tracking control).
package ports
