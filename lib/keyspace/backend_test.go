package keyspace

import (
	"context"
	"errors"
	"fmt"
	"sort"

	"github.com/uol/cqlsync/lib/persistence"
)

// fakeBackend - in memory schema catalog recording every call
type fakeBackend struct {
	keyspaces map[string]persistence.Keyspace
	calls     []string

	listErr   error
	existsErr error
	createErr error
	dropErrs  map[string]error
}

func newFakeBackend(names ...string) *fakeBackend {

	backend := &fakeBackend{
		keyspaces: map[string]persistence.Keyspace{},
		dropErrs:  map[string]error{},
	}

	for _, name := range names {
		backend.keyspaces[name] = persistence.Keyspace{Name: name, ReplicationFactor: 1, DurableWrites: true}
	}

	return backend
}

func (f *fakeBackend) names() []string {

	names := make([]string, 0, len(f.keyspaces))
	for name := range f.keyspaces {
		names = append(names, name)
	}

	sort.Strings(names)

	return names
}

func (f *fakeBackend) ListKeyspaces(ctx context.Context) ([]string, error) {

	f.calls = append(f.calls, "list")

	if f.listErr != nil {
		return nil, f.listErr
	}

	names := f.names()

	// the catalog does not return names in any particular order
	for i, j := 0, len(names)-1; i < j; i, j = i+1, j-1 {
		names[i], names[j] = names[j], names[i]
	}

	return names, nil
}

func (f *fakeBackend) KeyspaceExists(ctx context.Context, name string) (bool, error) {

	f.calls = append(f.calls, "exists "+name)

	if f.existsErr != nil {
		return false, f.existsErr
	}

	_, ok := f.keyspaces[name]

	return ok, nil
}

func (f *fakeBackend) CreateKeyspace(ctx context.Context, ks persistence.Keyspace) error {

	f.calls = append(f.calls, "create "+ks.Name)

	if f.createErr != nil {
		return f.createErr
	}

	if _, ok := f.keyspaces[ks.Name]; ok {
		return fmt.Errorf("Cannot add existing keyspace %q", ks.Name)
	}

	f.keyspaces[ks.Name] = ks

	return nil
}

func (f *fakeBackend) DropKeyspace(ctx context.Context, name string) error {

	f.calls = append(f.calls, "drop "+name)

	if err, ok := f.dropErrs[name]; ok {
		return err
	}

	if _, ok := f.keyspaces[name]; !ok {
		return errors.New("Cannot drop non existing keyspace '" + name + "'.")
	}

	delete(f.keyspaces, name)

	return nil
}
