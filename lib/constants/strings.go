package constants

const (
	// StringsEmpty - a empty space
	StringsEmpty = ""

	// StringsPKG - the package abbreviation
	StringsPKG = "pkg"

	// StringsFunc - the function abbreviation
	StringsFunc = "func"

	// StringsKeyspace - the keyspace log key
	StringsKeyspace = "keyspace"

	// StringsOperation - the cql operation log key
	StringsOperation = "operation"

	// StringsPolicy - the reset policy log key
	StringsPolicy = "policy"

	// StringsDuration - the query duration log key (milliseconds)
	StringsDuration = "durationMs"

	// StringsSystemSchema - the keyspace holding the schema catalog
	StringsSystemSchema = "system_schema"
)
