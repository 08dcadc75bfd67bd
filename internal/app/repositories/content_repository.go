package repositories

import (
	"context"
	"fmt"

	"github.com/Masterminds/squirrel"
	"github.com/yigit/educa/internal/app/models"
	"github.com/yigit/educa/internal/db"
	"github.com/yigit/educa/internal/pkg/apperrors"
	"github.com/yigit/educa/internal/pkg/logger"
)

// ContentRepository handles content placement rows
type ContentRepository struct {
	db db.DBTX
	sb squirrel.StatementBuilderType
}

// NewContentRepository creates a new ContentRepository
func NewContentRepository(pool db.DBTX) *ContentRepository {
	return &ContentRepository{
		db: pool,
		sb: squirrel.StatementBuilder.PlaceholderFormat(squirrel.Dollar),
	}
}

// CreateContent inserts a content row. The kind is checked by the database;
// object_id is not.
func (r *ContentRepository) CreateContent(ctx context.Context, content *models.Content) error {
	sql, args, err := r.sb.Insert("contents").
		Columns("module_id", "kind", "object_id").
		Values(content.ModuleID, string(content.Kind), content.ObjectID).
		Suffix("RETURNING id").
		ToSql()
	if err != nil {
		logger.Error().Err(err).Msg("Error building create content SQL")
		return fmt.Errorf("failed to build create content query: %w", err)
	}

	if err := r.db.QueryRow(ctx, sql, args...).Scan(&content.ID); err != nil {
		if mapped := translateWriteError(err); mapped != nil {
			return mapped
		}
		logger.Error().Err(err).Int64("moduleID", content.ModuleID).Msg("Error executing create content query")
		return fmt.Errorf("error creating content: %w", err)
	}
	return nil
}

// GetContentByID retrieves a content row without resolving its item
func (r *ContentRepository) GetContentByID(ctx context.Context, id int64) (*models.Content, error) {
	sql, args, err := r.sb.Select("id", "module_id", "kind", "object_id").
		From("contents").
		Where(squirrel.Eq{"id": id}).
		Limit(1).
		ToSql()
	if err != nil {
		logger.Error().Err(err).Msg("Error building get content by ID SQL")
		return nil, fmt.Errorf("failed to build get content query: %w", err)
	}

	c := &models.Content{}
	var kind string
	if err := r.db.QueryRow(ctx, sql, args...).Scan(&c.ID, &c.ModuleID, &kind, &c.ObjectID); err != nil {
		if isNoRows(err) {
			return nil, apperrors.NotFound(apperrors.ErrContentNotFound)
		}
		logger.Error().Err(err).Int64("contentID", id).Msg("Error scanning content row")
		return nil, fmt.Errorf("error getting content by ID: %w", err)
	}
	c.Kind = models.Kind(kind)
	return c, nil
}

// ListContentsByModule returns a module's contents in insertion order
func (r *ContentRepository) ListContentsByModule(ctx context.Context, moduleID int64) ([]*models.Content, error) {
	sql, args, err := r.sb.Select("id", "module_id", "kind", "object_id").
		From("contents").
		Where(squirrel.Eq{"module_id": moduleID}).
		OrderBy("id ASC").
		ToSql()
	if err != nil {
		logger.Error().Err(err).Msg("Error building list contents SQL")
		return nil, fmt.Errorf("failed to build list contents query: %w", err)
	}

	rows, err := r.db.Query(ctx, sql, args...)
	if err != nil {
		logger.Error().Err(err).Int64("moduleID", moduleID).Msg("Error executing list contents query")
		return nil, fmt.Errorf("error querying contents: %w", err)
	}
	defer rows.Close()

	contents := []*models.Content{}
	for rows.Next() {
		c := &models.Content{}
		var kind string
		if err := rows.Scan(&c.ID, &c.ModuleID, &kind, &c.ObjectID); err != nil {
			logger.Error().Err(err).Msg("Error scanning content row during list")
			return nil, fmt.Errorf("error scanning content row: %w", err)
		}
		c.Kind = models.Kind(kind)
		contents = append(contents, c)
	}
	if err := rows.Err(); err != nil {
		logger.Error().Err(err).Msg("Error iterating content rows")
		return nil, fmt.Errorf("error iterating content rows: %w", err)
	}
	return contents, nil
}

// DeleteContent deletes a content row. The referenced item is left alone.
func (r *ContentRepository) DeleteContent(ctx context.Context, id int64) error {
	sql, args, err := r.sb.Delete("contents").Where(squirrel.Eq{"id": id}).ToSql()
	if err != nil {
		logger.Error().Err(err).Msg("Error building delete content SQL")
		return fmt.Errorf("failed to build delete content query: %w", err)
	}

	tag, err := r.db.Exec(ctx, sql, args...)
	if err != nil {
		logger.Error().Err(err).Int64("contentID", id).Msg("Error executing delete content query")
		return fmt.Errorf("error deleting content: %w", err)
	}
	if tag.RowsAffected() == 0 {
		return apperrors.NotFound(apperrors.ErrContentNotFound)
	}
	return nil
}
