package keyspace

import (
	"sort"

	"github.com/uol/cqlsync/lib/config"
	"github.com/uol/cqlsync/lib/constants"
	"github.com/uol/cqlsync/lib/persistence"
	"github.com/uol/logh"
)

var systemKeyspaces = map[string]struct{}{
	"system":             {},
	"system_auth":        {},
	"system_schema":      {},
	"system_distributed": {},
	"system_traces":      {},
}

// SystemKeyspaces - returns the sorted allow-list of keyspaces a wipe keeps
func SystemKeyspaces() []string {

	names := make([]string, 0, len(systemKeyspaces))
	for name := range systemKeyspaces {
		names = append(names, name)
	}

	sort.Strings(names)

	return names
}

// IsSystem - checks if the keyspace is reserved by the database engine
func IsSystem(name string) bool {

	_, ok := systemKeyspaces[name]

	return ok
}

// Manager - brings the cluster keyspaces back to a known baseline
type Manager struct {
	backend persistence.Backend
	policy  config.ResetPolicy
	target  persistence.Keyspace
	logger  *logh.ContextualLogger
}

// New creates a new keyspace manager. The target keyspace is only used by
// the recreate policy.
func New(
	backend persistence.Backend,
	policy config.ResetPolicy,
	target persistence.Keyspace,
) *Manager {
	return &Manager{
		backend: backend,
		policy:  policy,
		target:  target,
		logger:  logh.CreateContextualLogger(constants.StringsPKG, cPackage),
	}
}
