package persistence

import (
	"fmt"
	"strings"

	"github.com/gocql/gocql"
	"github.com/uol/cqlsync/lib/constants"
	"github.com/uol/logh"
)

// driverLogger - sends the gocql diagnostics to logh at debug level
type driverLogger struct {
	logger *logh.ContextualLogger
}

func newDriverLogger() gocql.StdLogger {

	return &driverLogger{
		logger: logh.CreateContextualLogger(constants.StringsPKG, "gocql"),
	}
}

func (l *driverLogger) Print(v ...interface{}) {
	l.write(fmt.Sprint(v...))
}

func (l *driverLogger) Printf(format string, v ...interface{}) {
	l.write(fmt.Sprintf(format, v...))
}

func (l *driverLogger) Println(v ...interface{}) {
	l.write(fmt.Sprintln(v...))
}

func (l *driverLogger) write(msg string) {

	if logh.DebugEnabled {
		l.logger.Debug().Msg(strings.TrimRight(msg, "\n"))
	}
}

// useDriverLogger - routes the driver logging through logh
func useDriverLogger() {
	gocql.Logger = newDriverLogger()
}
