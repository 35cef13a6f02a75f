package persistence

const formatCreateKeyspace = `CREATE KEYSPACE %s WITH replication = {
        'class': 'SimpleStrategy',
        'replication_factor': '%d'
    } AND durable_writes = %t`

const formatDropKeyspace = `DROP KEYSPACE %s`

const cqlListKeyspaces = `SELECT keyspace_name FROM system_schema.keyspaces`

const cqlKeyspaceExists = `SELECT keyspace_name FROM system_schema.keyspaces WHERE keyspace_name = ?`
