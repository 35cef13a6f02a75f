package keyspace

import (
	"context"

	"github.com/gocql/gocql"
	"github.com/uol/cqlsync/lib/config"
	"github.com/uol/cqlsync/lib/constants"
	"github.com/uol/cqlsync/lib/persistence"
	"github.com/uol/logh"
)

// syncer - the session operations used by Sync
type syncer struct {
	connect    func(settings *config.Settings, keyspace string) (*gocql.Session, error)
	newBackend func(session *gocql.Session) persistence.Backend
	close      func(session *gocql.Session)
}

var driverSyncer = syncer{
	connect:    persistence.Connect,
	newBackend: persistence.New,
	close:      (*gocql.Session).Close,
}

// Sync - opens one authenticated session, resets the keyspaces following the
// configured policy and returns the session callers should keep using. When a
// keyspace was created the returned session is bound to it. The caller owns
// the session and must close it.
func Sync(ctx context.Context, settings *config.Settings) (*gocql.Session, Result, error) {
	return driverSyncer.sync(ctx, settings)
}

func (s syncer) sync(ctx context.Context, settings *config.Settings) (*gocql.Session, Result, error) {

	session, err := s.connect(settings, constants.StringsEmpty)
	if err != nil {
		return nil, Result{Policy: settings.ResetPolicy}, err
	}

	manager := New(
		s.newBackend(session),
		settings.ResetPolicy,
		persistence.Keyspace{
			Name:              settings.Keyspace,
			ReplicationFactor: settings.ReplicationFactor,
			DurableWrites:     true,
		},
	)

	result, err := manager.Reset(ctx)
	if err != nil {
		s.close(session)
		return nil, result, err
	}

	if result.Created == constants.StringsEmpty {
		return session, result, nil
	}

	// a gocql session can not switch keyspaces, bind a new one to the created keyspace
	s.close(session)

	bound, err := s.connect(settings, result.Created)
	if err != nil {
		return nil, result, err
	}

	if logh.InfoEnabled {
		manager.logger.Info().Str(constants.StringsFunc, "Sync").Str(constants.StringsKeyspace, result.Created).Msg("session bound to keyspace")
	}

	return bound, result, nil
}
