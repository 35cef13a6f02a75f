package persistence

import "regexp"

// MaxKeyspaceNameLength is the longest keyspace name accepted by cassandra
const MaxKeyspaceNameLength = 48

var reValidKey = regexp.MustCompile(`^[0-9A-Za-z_]{1,48}$`)

// ValidateKey validates a keyspace name with the same rule cassandra applies
func ValidateKey(name string) bool {
	return reValidKey.MatchString(name)
}
