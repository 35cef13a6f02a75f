package constants

//
// Defines all error codes.
//

const (
	// ErrorCodeConfig - an environment variable could not be decoded or is out of range
	ErrorCodeConfig string = "VECFG"

	// ErrorCodeKeyspaceName - the configured keyspace name is not a valid cql identifier
	ErrorCodeKeyspaceName string = "VEKSN"
)
