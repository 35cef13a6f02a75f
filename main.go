package main

import (
	"context"
	"fmt"
	"log"
	"os"
	"os/signal"
	"syscall"

	"github.com/gocql/gocql"
	jsoniter "github.com/json-iterator/go"
	"github.com/uol/logh"

	"github.com/uol/cqlsync/lib/config"
	"github.com/uol/cqlsync/lib/constants"
	"github.com/uol/cqlsync/lib/keyspace"
)

var (
	json   = jsoniter.ConfigCompatibleWithStandardLibrary
	logger *logh.ContextualLogger
)

func main() {

	fmt.Println("Starting cqlsync")

	settings, err := config.NewLoader(config.DefaultEnvFile).Load()
	if err != nil {
		log.Fatalln("error loading settings: ", err)
	}

	logger = configureLogger(&settings)

	if logh.DebugEnabled {
		logger.Debug().Msgf("settings: %s", marshalForLog(settings))
	}

	ctx, cancel := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer cancel()

	session := syncKeyspaces(ctx, &settings)
	defer session.Close()

	if logh.InfoEnabled {
		logger.Info().Msg("cqlsync finished successfully")
	}
}

// configureLogger - configures all loggers
func configureLogger(settings *config.Settings) *logh.ContextualLogger {

	logh.ConfigureGlobalLogger(settings.LogLevel, settings.LogFormat)

	cl := logh.CreateContextualLogger(constants.StringsPKG, "main")

	if logh.InfoEnabled {
		cl.Info().Msg("log configured")
	}

	return cl
}

// syncKeyspaces - resets the cluster keyspaces and returns the session bound by the reset
func syncKeyspaces(ctx context.Context, settings *config.Settings) *gocql.Session {

	if logh.InfoEnabled {
		logger.Info().Str(constants.StringsPolicy, string(settings.ResetPolicy)).Msgf("resetting keyspaces on %s:%d", settings.Host, settings.Port)
	}

	session, result, err := keyspace.Sync(ctx, settings)
	if err != nil {
		if logh.FatalEnabled {
			logger.Fatal().Err(err).Str(constants.StringsPolicy, string(settings.ResetPolicy)).Msg("error resetting keyspaces")
		}
		os.Exit(1)
	}

	if logh.InfoEnabled {
		logger.Info().Msgf("keyspaces were reset: %s", marshalForLog(result))
	}

	return session
}

// marshalForLog - renders a value as json for log lines, warning when it can not be marshalled
func marshalForLog(v interface{}) []byte {

	jsonStr, err := json.Marshal(v)
	if err != nil {
		if logh.WarnEnabled {
			logger.Warn().Err(err).Msgf("error marshalling %T for logging", v)
		}
		return nil
	}

	return jsonStr
}
