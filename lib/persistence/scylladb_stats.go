package persistence

import (
	"time"

	"github.com/uol/cqlsync/lib/constants"
	"github.com/uol/logh"
)

type scyllaOperation string

const (
	scyllaCreate scyllaOperation = "create"
	scyllaSelect scyllaOperation = "select"
	scyllaDrop   scyllaOperation = "drop"
)

func (backend *scylladb) statsQuery(function, keyspace string, operation scyllaOperation, d time.Duration) {

	if logh.DebugEnabled {
		backend.logger.Debug().
			Str(constants.StringsFunc, function).
			Str(constants.StringsKeyspace, keyspace).
			Str(constants.StringsOperation, string(operation)).
			Float64(constants.StringsDuration, float64(d.Nanoseconds())/float64(time.Millisecond)).
			Msg("query executed")
	}
}
