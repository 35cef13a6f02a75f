package persistence

import (
	"context"
	"fmt"
	"strings"
	"time"

	"github.com/gocql/gocql"
	"github.com/uol/cqlsync/lib/constants"
	"github.com/uol/logh"
)

const (
	cPackage string = "persistence"
)

type scylladb struct {
	session *gocql.Session
	logger  *logh.ContextualLogger
}

// New - creates the gocql backed persistence over an existing session
func New(session *gocql.Session) Backend {

	return &scylladb{
		session: session,
		logger:  logh.CreateContextualLogger(constants.StringsPKG, cPackage),
	}
}

// quoteIdentifier - quotes a name so cassandra keeps its case
func quoteIdentifier(name string) string {
	return `"` + strings.Replace(name, `"`, `""`, -1) + `"`
}

func (backend *scylladb) ListKeyspaces(ctx context.Context) ([]string, error) {

	start := time.Now()

	iter := backend.session.Query(cqlListKeyspaces).WithContext(ctx).Iter()

	var (
		name      string
		keyspaces []string
	)

	for iter.Scan(&name) {
		keyspaces = append(keyspaces, name)
	}

	if err := iter.Close(); err != nil {
		return nil, err
	}

	backend.statsQuery("ListKeyspaces", constants.StringsSystemSchema, scyllaSelect, time.Since(start))
	return keyspaces, nil
}

func (backend *scylladb) KeyspaceExists(ctx context.Context, name string) (bool, error) {

	start := time.Now()

	var found string

	if err := backend.session.Query(cqlKeyspaceExists, name).WithContext(ctx).Scan(&found); err != nil {
		if err == gocql.ErrNotFound {
			backend.statsQuery("KeyspaceExists", constants.StringsSystemSchema, scyllaSelect, time.Since(start))
			return false, nil
		}

		return false, err
	}

	backend.statsQuery("KeyspaceExists", constants.StringsSystemSchema, scyllaSelect, time.Since(start))
	return true, nil
}

func (backend *scylladb) CreateKeyspace(ctx context.Context, ks Keyspace) error {

	start := time.Now()

	query := fmt.Sprintf(
		formatCreateKeyspace,
		quoteIdentifier(ks.Name),
		ks.ReplicationFactor,
		ks.DurableWrites,
	)

	if err := backend.session.Query(query).WithContext(ctx).Exec(); err != nil {
		return err
	}

	backend.statsQuery("CreateKeyspace", ks.Name, scyllaCreate, time.Since(start))
	return nil
}

func (backend *scylladb) DropKeyspace(ctx context.Context, name string) error {

	start := time.Now()

	if err := backend.session.Query(
		fmt.Sprintf(formatDropKeyspace, quoteIdentifier(name)),
	).WithContext(ctx).Exec(); err != nil {
		return err
	}

	backend.statsQuery("DropKeyspace", name, scyllaDrop, time.Since(start))
	return nil
}
