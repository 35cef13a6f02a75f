package persistence

import (
	"github.com/gocql/gocql"
	"github.com/uol/cqlsync/lib/config"
	"github.com/uol/cqlsync/lib/constants"
	"github.com/uol/logh"
)

// newClusterConfig - builds the driver configuration from the settings
func newClusterConfig(settings *config.Settings, keyspace string) *gocql.ClusterConfig {

	cluster := gocql.NewCluster(settings.Hosts()...)
	cluster.Port = settings.Port
	cluster.Keyspace = keyspace
	cluster.Authenticator = gocql.PasswordAuthenticator{
		Username: settings.Username,
		Password: settings.Password,
	}

	if settings.Timeout > 0 {
		cluster.Timeout = settings.Timeout
		cluster.ConnectTimeout = settings.Timeout
	}

	if settings.ProtoVersion > 0 {
		cluster.ProtoVersion = settings.ProtoVersion
	}

	return cluster
}

// Connect - opens an authenticated session. An empty keyspace leaves the
// session unbound so it can run cluster wide DDL.
func Connect(settings *config.Settings, keyspace string) (*gocql.Session, error) {

	useDriverLogger()

	session, err := newClusterConfig(settings, keyspace).CreateSession()
	if err != nil {
		return nil, err
	}

	if logh.InfoEnabled {
		logger := logh.CreateContextualLogger(constants.StringsPKG, cPackage, constants.StringsFunc, "Connect")
		logger.Info().Str(constants.StringsKeyspace, keyspace).Msgf("connected to %s:%d as %q", settings.Host, settings.Port, settings.Username)
	}

	return session, nil
}
