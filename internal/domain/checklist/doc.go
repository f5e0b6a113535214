// Package checklist holds the List and Blueprint aggregates, their items,
// the item sort strategies and the conversions between the two container
// kinds (materialization and capture).
//
// Everything here operates on caller-supplied snapshots. Uniqueness checks
// take the current names of the relevant scope as naming.Entry values, so
// the package never talks to storage and never caches results.
package checklist
