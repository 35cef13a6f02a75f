package keyspace

import (
	"context"
	"errors"
	"net/http"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/uol/cqlsync/lib/config"
	"github.com/uol/cqlsync/lib/constants"
	"github.com/uol/cqlsync/lib/persistence"
	"github.com/uol/gobol"
)

var testingKeyspace = persistence.Keyspace{
	Name:              "testing",
	ReplicationFactor: 1,
	DurableWrites:     true,
}

func TestSystemKeyspaces(t *testing.T) {

	assert.Equal(t, []string{"system", "system_auth", "system_distributed", "system_schema", "system_traces"}, SystemKeyspaces())

	for _, name := range SystemKeyspaces() {
		assert.True(t, IsSystem(name), name)
	}

	assert.False(t, IsSystem("testing"))
	assert.False(t, IsSystem("System"))
	assert.False(t, IsSystem("system_views"))
}

func TestWipeDropsUserKeyspaces(t *testing.T) {

	backend := newFakeBackend("system", "system_auth", "foo", "bar")

	result, err := New(backend, config.PolicyWipe, testingKeyspace).Reset(context.Background())
	require.NoError(t, err)

	assert.Equal(t, config.PolicyWipe, result.Policy)
	assert.Equal(t, []string{"bar", "foo"}, result.Dropped)
	assert.Empty(t, result.Created)
	assert.Equal(t, []string{"system", "system_auth"}, backend.names())
	assert.Equal(t, []string{"list", "drop bar", "drop foo"}, backend.calls)
}

func TestWipeKeepsEverySystemKeyspace(t *testing.T) {

	backend := newFakeBackend(append(SystemKeyspaces(), "testing", "timeseries")...)

	result, err := New(backend, config.PolicyWipe, testingKeyspace).Reset(context.Background())
	require.NoError(t, err)

	assert.Equal(t, []string{"testing", "timeseries"}, result.Dropped)
	assert.Equal(t, SystemKeyspaces(), backend.names())
}

func TestWipeOnlySystemKeyspaces(t *testing.T) {

	backend := newFakeBackend(SystemKeyspaces()...)

	result, err := New(backend, config.PolicyWipe, testingKeyspace).Reset(context.Background())
	require.NoError(t, err)

	assert.Empty(t, result.Dropped)
	assert.Equal(t, []string{"list"}, backend.calls)
}

func TestWipeStopsOnFirstFailure(t *testing.T) {

	dropErr := errors.New("Unauthorized: User cassandra has no DROP permission")

	backend := newFakeBackend("system", "a", "b", "c")
	backend.dropErrs["b"] = dropErr

	result, err := New(backend, config.PolicyWipe, testingKeyspace).Reset(context.Background())

	assert.Equal(t, dropErr, err, "the driver error must be returned unmodified")
	assert.Equal(t, []string{"a"}, result.Dropped)
	assert.Equal(t, []string{"b", "c", "system"}, backend.names())
	assert.Equal(t, []string{"list", "drop a", "drop b"}, backend.calls)
}

func TestWipeListFailure(t *testing.T) {

	listErr := errors.New("gocql: no hosts available in the pool")

	backend := newFakeBackend("foo")
	backend.listErr = listErr

	_, err := New(backend, config.PolicyWipe, testingKeyspace).Reset(context.Background())

	assert.Equal(t, listErr, err)
	assert.Equal(t, []string{"foo"}, backend.names())
}

func TestRecreateCreatesMissingKeyspace(t *testing.T) {

	backend := newFakeBackend("system", "system_schema")

	result, err := New(backend, config.PolicyRecreate, testingKeyspace).Reset(context.Background())
	require.NoError(t, err)

	assert.Equal(t, config.PolicyRecreate, result.Policy)
	assert.Equal(t, "testing", result.Created)
	assert.Empty(t, result.Dropped)
	assert.Equal(t, []string{"exists testing", "create testing"}, backend.calls)

	created := backend.keyspaces["testing"]
	assert.Equal(t, 1, created.ReplicationFactor)
	assert.True(t, created.DurableWrites)
}

func TestRecreateDropsExistingKeyspace(t *testing.T) {

	backend := newFakeBackend("system", "testing", "other")

	result, err := New(backend, config.PolicyRecreate, testingKeyspace).Reset(context.Background())
	require.NoError(t, err)

	assert.Equal(t, "testing", result.Created)
	assert.Equal(t, []string{"testing"}, result.Dropped)
	assert.Equal(t, []string{"exists testing", "drop testing", "create testing"}, backend.calls)
	assert.Equal(t, []string{"other", "system", "testing"}, backend.names(), "only the target keyspace is touched")
}

func TestRecreateTwiceKeepsOneKeyspace(t *testing.T) {

	backend := newFakeBackend("system")
	manager := New(backend, config.PolicyRecreate, testingKeyspace)

	for i := 0; i < 2; i++ {
		_, err := manager.Reset(context.Background())
		require.NoError(t, err)
	}

	assert.Equal(t, []string{"system", "testing"}, backend.names())
}

func TestRecreateFailures(t *testing.T) {

	existsErr := errors.New("gocql: connection closed")
	backend := newFakeBackend()
	backend.existsErr = existsErr

	_, err := New(backend, config.PolicyRecreate, testingKeyspace).Reset(context.Background())
	assert.Equal(t, existsErr, err)
	assert.Equal(t, []string{"exists testing"}, backend.calls)

	createErr := errors.New("SyntaxException: line 1:0 no viable alternative")
	backend = newFakeBackend("testing")
	backend.createErr = createErr

	result, err := New(backend, config.PolicyRecreate, testingKeyspace).Reset(context.Background())
	assert.Equal(t, createErr, err)
	assert.Equal(t, []string{"testing"}, result.Dropped)
	assert.Empty(t, result.Created)
	assert.Empty(t, backend.names(), "no cleanup happens after a failure")
}

func TestRecreateRejectsBadNames(t *testing.T) {

	for _, name := range []string{"", "bad-name", "with space", strings.Repeat("a", 49), "system_auth", "system"} {
		backend := newFakeBackend("system", "system_auth")

		target := testingKeyspace
		target.Name = name

		_, err := New(backend, config.PolicyRecreate, target).Reset(context.Background())
		require.Error(t, err, name)

		gerr, ok := err.(gobol.Error)
		require.True(t, ok, name)
		assert.Equal(t, cPackage, gerr.Package())
		assert.Equal(t, http.StatusBadRequest, gerr.StatusCode())
		assert.Equal(t, constants.ErrorCodeKeyspaceName, gerr.ErrorCode())
		assert.Empty(t, backend.calls, "no statement is sent for an invalid name")
	}
}

func TestRecreateAcceptsShortAndUnderscoreNames(t *testing.T) {

	for _, name := range []string{"a", "_scratch", "t1", strings.Repeat("z", 48)} {
		backend := newFakeBackend("system")

		target := testingKeyspace
		target.Name = name

		result, err := New(backend, config.PolicyRecreate, target).Reset(context.Background())
		require.NoError(t, err, name)

		assert.Equal(t, name, result.Created)
		assert.Equal(t, []string{"exists " + name, "create " + name}, backend.calls)
	}
}

func TestResetUnknownPolicy(t *testing.T) {

	backend := newFakeBackend("foo")

	_, err := New(backend, config.ResetPolicy("truncate"), testingKeyspace).Reset(context.Background())
	require.Error(t, err)
	assert.Empty(t, backend.calls)
}
