package persistence

// Keyspace represents a keyspace to be created within the database
type Keyspace struct {
	// Name is the exact (case sensitive) keyspace name
	Name string `json:"name"`
	// ReplicationFactor is the SimpleStrategy replication factor
	ReplicationFactor int `json:"replicationFactor"`
	// DurableWrites enables the commit log for the keyspace
	DurableWrites bool `json:"durableWrites"`
}
