package keyspace

import (
	"context"
	"fmt"
	"sort"

	"github.com/uol/cqlsync/lib/config"
	"github.com/uol/cqlsync/lib/constants"
	"github.com/uol/cqlsync/lib/persistence"
	"github.com/uol/logh"
)

// Result - what a reset did to the cluster
type Result struct {
	Policy  config.ResetPolicy `json:"policy"`
	Dropped []string           `json:"dropped"`
	Created string             `json:"created,omitempty"`
}

// Reset - applies the configured policy. The first failing statement stops
// the reset and its error is returned as is, along with what was done so far.
func (m *Manager) Reset(ctx context.Context) (Result, error) {

	switch m.policy {
	case config.PolicyWipe:
		return m.wipe(ctx)
	case config.PolicyRecreate:
		return m.recreate(ctx)
	}

	return Result{Policy: m.policy}, errValidation("Reset", fmt.Sprintf("unknown reset policy %q", m.policy), constants.ErrorCodeConfig)
}

// wipe - drops every keyspace outside the system allow-list
func (m *Manager) wipe(ctx context.Context) (Result, error) {

	result := Result{Policy: config.PolicyWipe, Dropped: []string{}}

	keyspaces, err := m.backend.ListKeyspaces(ctx)
	if err != nil {
		return result, err
	}

	sort.Strings(keyspaces)

	for _, name := range keyspaces {
		if IsSystem(name) {
			continue
		}

		if err := m.backend.DropKeyspace(ctx, name); err != nil {
			return result, err
		}

		result.Dropped = append(result.Dropped, name)

		if logh.InfoEnabled {
			m.logger.Info().Str(constants.StringsFunc, "wipe").Str(constants.StringsKeyspace, name).Msg("dropped keyspace")
		}
	}

	return result, nil
}

// recreate - drops the target keyspace when it exists and creates it again
func (m *Manager) recreate(ctx context.Context) (Result, error) {

	result := Result{Policy: config.PolicyRecreate, Dropped: []string{}}
	name := m.target.Name

	if !persistence.ValidateKey(name) {
		return result, errValidation(
			"recreate",
			fmt.Sprintf("keyspace name %q is not well formed", name),
			constants.ErrorCodeKeyspaceName,
		)
	}

	if IsSystem(name) {
		return result, errValidation(
			"recreate",
			fmt.Sprintf("keyspace %q is a system keyspace", name),
			constants.ErrorCodeKeyspaceName,
		)
	}

	exists, err := m.backend.KeyspaceExists(ctx, name)
	if err != nil {
		return result, err
	}

	if exists {
		if logh.InfoEnabled {
			m.logger.Info().Str(constants.StringsFunc, "recreate").Str(constants.StringsKeyspace, name).Msg("dropping existing keyspace...")
		}

		if err := m.backend.DropKeyspace(ctx, name); err != nil {
			return result, err
		}

		result.Dropped = append(result.Dropped, name)
	}

	if err := m.backend.CreateKeyspace(ctx, m.target); err != nil {
		return result, err
	}

	result.Created = name

	if logh.InfoEnabled {
		m.logger.Info().Str(constants.StringsFunc, "recreate").Str(constants.StringsKeyspace, name).Msgf("created keyspace with replication factor %d", m.target.ReplicationFactor)
	}

	return result, nil
}
