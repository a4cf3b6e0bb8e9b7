// Package inventory lists AWS resources of one kind in one region and
// normalizes them into fixed-schema rows.
package inventory

import (
	"context"
	"fmt"
	"time"

	"github.com/rs/zerolog"

	"github.com/awsinv/awsinv/internal/awsapi"
)

// Row is one normalized, displayable record. Its columns follow the
// kind's fixed schema and are never mutated after creation.
type Row []string

// Result is the success outcome of one listing attempt. Zero rows is
// an ordinary Result, not a failure.
type Result struct {
	Kind   Kind
	Region string
	Rows   []Row
}

type fetchFunc func(ctx context.Context, clients awsapi.Clients, region string) ([]Row, error)

var adapters = map[Kind]fetchFunc{
	KindInstance: listInstances,
	KindBucket:   listBuckets,
	KindTable:    listTables,
	KindDatabase: listDatabases,
	KindFunction: listFunctions,
}

// Inventory dispatches listing requests to the per-kind adapters.
type Inventory struct {
	clients awsapi.Clients
	logger  zerolog.Logger
}

// New creates an Inventory over already-authenticated clients.
func New(clients awsapi.Clients, logger zerolog.Logger) *Inventory {
	return &Inventory{clients: clients, logger: logger}
}

// List performs exactly one enumeration of the named service in the
// region. It either returns a Result or a classified *Error; unknown
// service names fail before any backend call, and backend faults are
// caught here rather than crashing the run. No retries happen at this
// layer; retry policy belongs to the SDK clients.
func (inv *Inventory) List(ctx context.Context, service, region string) (*Result, error) {
	kind, ok := ParseKind(service)
	if !ok {
		return nil, &Error{
			Service:  service,
			Region:   region,
			Category: CategoryUnsupported,
			Err:      fmt.Errorf("unsupported service %q (supported: %s)", service, SupportedNames()),
		}
	}

	start := time.Now()
	rows, err := adapters[kind](ctx, inv.clients, region)
	if err != nil {
		lerr := classify(service, region, err)
		inv.logger.Error().
			Err(err).
			Str("service", service).
			Str("region", region).
			Str("category", string(lerr.Category)).
			Msg("listing failed")
		return nil, lerr
	}

	inv.logger.Debug().
		Str("service", service).
		Str("region", region).
		Int("rows", len(rows)).
		Dur("took", time.Since(start)).
		Msg("listing complete")

	return &Result{Kind: kind, Region: region, Rows: rows}, nil
}
