package config

import (
	"fmt"
	"strings"
	"time"

	"github.com/uol/logh"
)

// ResetPolicy - how the cluster keyspaces are brought back to the baseline
type ResetPolicy string

const (
	// PolicyWipe - drops every keyspace outside the system allow-list
	PolicyWipe ResetPolicy = "wipe"

	// PolicyRecreate - drops the configured keyspace if present and creates it again
	PolicyRecreate ResetPolicy = "recreate"
)

// Decode - decodes the policy from its environment value
func (p *ResetPolicy) Decode(value string) error {

	switch policy := ResetPolicy(strings.ToLower(strings.TrimSpace(value))); policy {
	case PolicyWipe, PolicyRecreate:
		*p = policy
		return nil
	}

	return fmt.Errorf("unknown reset policy %q, expected %q or %q", value, PolicyWipe, PolicyRecreate)
}

// Settings - cassandra connection and reset settings, loaded from the environment
type Settings struct {
	Host              string        `envconfig:"CASSANDRA_HOST" default:"127.0.0.1" json:"host"`
	Port              int           `envconfig:"CASSANDRA_PORT" default:"9042" json:"port"`
	Username          string        `envconfig:"CASSANDRA_USER" default:"cassandra" json:"username"`
	Password          string        `envconfig:"CASSANDRA_PWD" default:"cassandra" json:"-"`
	Keyspace          string        `envconfig:"CASSANDRA_KEYSPACE" default:"testing" json:"keyspace"`
	ResetPolicy       ResetPolicy   `envconfig:"CASSANDRA_RESET_POLICY" default:"wipe" json:"resetPolicy"`
	ReplicationFactor int           `envconfig:"CASSANDRA_REPLICATION_FACTOR" default:"1" json:"replicationFactor"`
	Timeout           time.Duration `envconfig:"CASSANDRA_TIMEOUT" json:"timeout"`
	ProtoVersion      int           `envconfig:"CASSANDRA_PROTO_VERSION" json:"protoVersion"`
	LogLevel          logh.Level    `envconfig:"CASSANDRA_LOG_LEVEL" default:"info" json:"logLevel"`
	LogFormat         logh.Format   `envconfig:"CASSANDRA_LOG_FORMAT" default:"console" json:"logFormat"`
}

// Hosts - returns the configured contact points
func (s *Settings) Hosts() []string {

	parts := strings.Split(s.Host, ",")
	hosts := make([]string, 0, len(parts))

	for _, h := range parts {
		if h = strings.TrimSpace(h); h != "" {
			hosts = append(hosts, h)
		}
	}

	return hosts
}

// validate - range checks not covered by the decoder
func (s *Settings) validate() error {

	if len(s.Hosts()) == 0 {
		return errValidation("validate", "CASSANDRA_HOST must name at least one host")
	}

	if s.Port < 1 || s.Port > 65535 {
		return errValidation("validate", fmt.Sprintf("CASSANDRA_PORT must be between 1 and 65535, got %d", s.Port))
	}

	if s.ReplicationFactor < 1 {
		return errValidation("validate", fmt.Sprintf("CASSANDRA_REPLICATION_FACTOR must be at least 1, got %d", s.ReplicationFactor))
	}

	if s.ProtoVersion < 0 || s.ProtoVersion > 4 {
		return errValidation("validate", fmt.Sprintf("CASSANDRA_PROTO_VERSION must be between 0 and 4, got %d", s.ProtoVersion))
	}

	if s.Timeout < 0 {
		return errValidation("validate", "CASSANDRA_TIMEOUT can not be negative")
	}

	switch s.LogLevel {
	case logh.INFO, logh.DEBUG, logh.WARN, logh.ERROR, logh.FATAL, logh.PANIC, logh.NONE, logh.SILENT:
	default:
		return errValidation("validate", fmt.Sprintf("unknown CASSANDRA_LOG_LEVEL %q", s.LogLevel))
	}

	switch s.LogFormat {
	case logh.CONSOLE, logh.JSON:
	default:
		return errValidation("validate", fmt.Sprintf("unknown CASSANDRA_LOG_FORMAT %q", s.LogFormat))
	}

	return nil
}
