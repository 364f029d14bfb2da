package store

import (
	"context"
	"fmt"
	"strings"
	"time"

	"housingready/internal/db"
	"housingready/internal/utils"
	"housingready/pkg/types"

	"github.com/Masterminds/squirrel"
	"github.com/georgysavva/scany/v2/sqlscan"
)

const documentTableName = "documents"

// documentInfoColumns deliberately excludes file_data.
var (
	documentInfoColumns = utils.StructTagValues(types.DocumentInfo{})
	documentColumns     = utils.StructTagValues(types.Document{})
)

type DocumentRepository struct {
	db  *db.DB
	now func() time.Time
}

func NewDocumentRepository(db *db.DB) *DocumentRepository {
	return &DocumentRepository{db: db, now: clock}
}

// Document retrieves a single document including its content
func (r *DocumentRepository) Document(ctx context.Context, documentID string) (*types.Document, error) {
	query, args, err := r.db.Builder().
		Select(documentColumns...).
		From(documentTableName).
		Where(squirrel.Eq{"id": documentID}).
		Limit(1).
		ToSql()
	if err != nil {
		return nil, fmt.Errorf("failed to generate document query: %w", err)
	}

	var doc = new(types.Document)
	err = sqlscan.Get(ctx, r.db, doc, query, args...)
	if err != nil {
		if sqlscan.NotFound(err) {
			return nil, types.ErrDocumentNotFound
		}
		return nil, types.StorageError(err, "failed to fetch document")
	}

	return doc, nil
}

// DocumentsByClientID lists document metadata for a client, newest upload
// first. File contents are never loaded here.
func (r *DocumentRepository) DocumentsByClientID(ctx context.Context, clientID string) ([]*types.DocumentInfo, error) {
	query, args, err := r.db.Builder().
		Select(documentInfoColumns...).
		From(documentTableName).
		Where(squirrel.Eq{"client_id": clientID}).
		OrderBy("uploaded_at DESC").
		ToSql()
	if err != nil {
		return nil, fmt.Errorf("failed to generate documents query: %w", err)
	}

	var docs = make([]*types.DocumentInfo, 0)
	err = sqlscan.Select(ctx, r.db, &docs, query, args...)
	if err != nil {
		return nil, types.StorageError(err, "failed to fetch documents")
	}

	return docs, nil
}

// Create stores a new document. ID and UploadedAt are assigned here and
// UploadedBy falls back to types.DefaultUploader.
func (r *DocumentRepository) Create(ctx context.Context, doc *types.Document) error {
	if doc == nil || strings.TrimSpace(doc.ClientID) == "" {
		return types.ValidationError("clientId is required")
	}

	if len(doc.FileData) == 0 {
		return types.ValidationError("file is required")
	}

	doc.ID = newID()
	doc.UploadedAt = r.now()
	if strings.TrimSpace(doc.UploadedBy) == "" {
		doc.UploadedBy = types.DefaultUploader
	}

	query, args, err := r.db.Builder().
		Insert(documentTableName).
		SetMap(storageValues(doc)).
		ToSql()
	if err != nil {
		return fmt.Errorf("failed to generate create document query: %w", err)
	}

	_, err = r.db.ExecContext(ctx, query, args...)
	if err != nil {
		if db.IsForeignKeyViolation(err) {
			return types.ErrClientNotFound
		}
		return types.StorageError(err, "failed to create document")
	}

	return nil
}

// Delete removes a document record. Documents are never updated in place.
func (r *DocumentRepository) Delete(ctx context.Context, documentID string) error {
	query, args, err := r.db.Builder().
		Delete(documentTableName).
		Where(squirrel.Eq{"id": documentID}).
		ToSql()
	if err != nil {
		return fmt.Errorf("failed to generate delete document query: %w", err)
	}

	result, err := r.db.ExecContext(ctx, query, args...)
	if err != nil {
		return types.StorageError(err, "failed to delete document")
	}

	affected, err := result.RowsAffected()
	if err != nil {
		return types.StorageError(err, "failed to read delete result")
	}

	if affected == 0 {
		return types.ErrDocumentNotFound
	}

	return nil
}
