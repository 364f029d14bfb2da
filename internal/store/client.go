package store

import (
	"context"
	"fmt"
	"strings"
	"time"

	"housingready/internal/db"
	"housingready/internal/utils"
	"housingready/pkg/types"

	sq "github.com/Masterminds/squirrel"
	"github.com/georgysavva/scany/v2/sqlscan"
)

const clientTableName = "clients"

var clientColumns = utils.StructTagValues(types.Client{})

// Columns that an update never touches. housing_date is only ever written
// on create.
var clientImmutableColumns = []string{"id", "date_of_entry", "created_at", "housing_date"}

type ClientRepository struct {
	db  *db.DB
	now func() time.Time
}

func NewClientRepository(db *db.DB) *ClientRepository {
	return &ClientRepository{db: db, now: clock}
}

// Clients returns every client, newest first.
func (r *ClientRepository) Clients(ctx context.Context) ([]*types.Client, error) {
	query, args, err := r.db.Builder().
		Select(clientColumns...).
		From(clientTableName).
		OrderBy("created_at DESC").
		ToSql()
	if err != nil {
		return nil, fmt.Errorf("failed to generate clients query: %w", err)
	}

	var clients = make([]*types.Client, 0)
	err = sqlscan.Select(ctx, r.db, &clients, query, args...)
	if err != nil {
		return nil, types.StorageError(err, "failed to fetch clients")
	}

	return clients, nil
}

func (r *ClientRepository) Client(ctx context.Context, clientID string) (*types.Client, error) {
	query, args, err := r.db.Builder().
		Select(clientColumns...).
		From(clientTableName).
		Where(sq.Eq{"id": clientID}).
		Limit(1).
		ToSql()
	if err != nil {
		return nil, fmt.Errorf("failed to generate client query: %w", err)
	}

	var client = new(types.Client)
	err = sqlscan.Get(ctx, r.db, client, query, args...)
	if err != nil {
		if sqlscan.NotFound(err) {
			return nil, types.ErrClientNotFound
		}
		return nil, types.StorageError(err, "failed to fetch client")
	}

	return client, nil
}

// Create inserts a new client and returns the stored record. Only name is
// required; unset flags are stored as 0.
func (r *ClientRepository) Create(ctx context.Context, client *types.Client) (*types.Client, error) {
	if err := validateClient(client); err != nil {
		return nil, err
	}

	now := r.now()
	client.ID = newID()
	client.CreatedAt = now
	client.UpdatedAt = now
	if client.DateOfEntry.IsZero() {
		client.DateOfEntry = now
	}
	normalizeClient(client)

	query, args, err := r.db.Builder().
		Insert(clientTableName).
		SetMap(storageValues(client)).
		ToSql()
	if err != nil {
		return nil, fmt.Errorf("failed to generate create client query: %w", err)
	}

	_, err = r.db.ExecContext(ctx, query, args...)
	if err != nil {
		return nil, clientWriteError(err, "failed to create client")
	}

	return r.Client(ctx, client.ID)
}

// Update replaces every mutable column of the client. Flags and optional
// fields left out of client are written as false/NULL; there is no
// partial update. The stored housing date is kept as is.
func (r *ClientRepository) Update(ctx context.Context, clientID string, client *types.Client) (*types.Client, error) {
	if err := validateClient(client); err != nil {
		return nil, err
	}

	client.ID = clientID
	client.UpdatedAt = r.now()
	normalizeClient(client)

	values := storageValues(client)
	for _, column := range clientImmutableColumns {
		delete(values, column)
	}

	query, args, err := r.db.Builder().
		Update(clientTableName).
		SetMap(values).
		Where(sq.Eq{"id": clientID}).
		ToSql()
	if err != nil {
		return nil, fmt.Errorf("failed to generate update client query for client %s: %w", clientID, err)
	}

	result, err := r.db.ExecContext(ctx, query, args...)
	if err != nil {
		return nil, clientWriteError(err, "failed to update client")
	}

	affected, err := result.RowsAffected()
	if err != nil {
		return nil, types.StorageError(err, "failed to read update result")
	}

	if affected == 0 {
		return nil, types.ErrClientNotFound
	}

	return r.Client(ctx, clientID)
}

// Delete removes the client and, through the foreign key, all of its
// documents. Deleting an unknown id changes nothing and reports
// ErrClientNotFound.
func (r *ClientRepository) Delete(ctx context.Context, clientID string) error {
	query, args, err := r.db.Builder().
		Delete(clientTableName).
		Where(sq.Eq{"id": clientID}).
		ToSql()
	if err != nil {
		return fmt.Errorf("failed to generate delete client query for client %s: %w", clientID, err)
	}

	result, err := r.db.ExecContext(ctx, query, args...)
	if err != nil {
		return types.StorageError(err, "failed to delete client")
	}

	affected, err := result.RowsAffected()
	if err != nil {
		return types.StorageError(err, "failed to read delete result")
	}

	if affected == 0 {
		return types.ErrClientNotFound
	}

	return nil
}

func validateClient(client *types.Client) error {
	if client == nil || strings.TrimSpace(client.Name) == "" {
		return types.ValidationError("name is required")
	}
	return nil
}

func normalizeClient(client *types.Client) {
	client.ClarityID = utils.NilIfBlank(client.ClarityID)
	client.OutreachWorker = utils.NilIfBlank(client.OutreachWorker)
	client.DetoxReferralMadeTo = utils.NilIfBlank(client.DetoxReferralMadeTo)
	client.MentalHealthReferralMadeTo = utils.NilIfBlank(client.MentalHealthReferralMadeTo)
	client.Notes = utils.NilIfBlank(client.Notes)

	client.DateOfEntry = client.DateOfEntry.UTC().Truncate(time.Microsecond)
	if client.HousingDate != nil {
		client.HousingDate = utils.TimePtr(client.HousingDate.UTC().Truncate(time.Microsecond))
	}
}

func clientWriteError(err error, msg string) error {
	if db.IsUniqueViolation(err) {
		return types.ErrDuplicateClarityID
	}
	return types.StorageError(err, msg)
}
