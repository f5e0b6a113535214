// Package ports defines interfaces between layers in the hexagonal architecture.
// Service ports are implemented by the application layer and called by handlers.
// The repository port is implemented by the storage adapters and called by the
// application layer.
package ports
