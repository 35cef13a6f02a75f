package persistence

import (
	"context"
)

// Backend hides the underlying implementation of the persistence
type Backend interface {
	// ListKeyspaces should return the names of every keyspace in the cluster
	ListKeyspaces(ctx context.Context) ([]string, error)

	// KeyspaceExists should check whether a keyspace is present in the schema catalog
	KeyspaceExists(ctx context.Context, name string) (bool, error)

	// CreateKeyspace should create a keyspace, failing if it already exists
	CreateKeyspace(ctx context.Context, ks Keyspace) error

	// DropKeyspace should delete a keyspace and all of its tables
	DropKeyspace(ctx context.Context, name string) error
}
