package repositories

import (
	"context"
	"fmt"

	"github.com/Masterminds/squirrel"
	"github.com/yigit/educa/internal/app/models"
	"github.com/yigit/educa/internal/db"
	"github.com/yigit/educa/internal/pkg/apperrors"
	"github.com/yigit/educa/internal/pkg/helpers"
	"github.com/yigit/educa/internal/pkg/logger"
)

// SubjectRepository handles subject database operations
type SubjectRepository struct {
	db db.DBTX
	sb squirrel.StatementBuilderType
}

// NewSubjectRepository creates a new SubjectRepository
func NewSubjectRepository(pool db.DBTX) *SubjectRepository {
	return &SubjectRepository{
		db: pool,
		sb: squirrel.StatementBuilder.PlaceholderFormat(squirrel.Dollar),
	}
}

// CreateSubject inserts a subject and sets its ID
func (r *SubjectRepository) CreateSubject(ctx context.Context, subject *models.Subject) error {
	sql, args, err := r.sb.Insert("subjects").
		Columns("title", "slug").
		Values(subject.Title, subject.Slug).
		Suffix("RETURNING id").
		ToSql()
	if err != nil {
		logger.Error().Err(err).Msg("Error building create subject SQL")
		return fmt.Errorf("failed to build create subject query: %w", err)
	}

	if err := r.db.QueryRow(ctx, sql, args...).Scan(&subject.ID); err != nil {
		if mapped := translateWriteError(err); mapped != nil {
			return mapped
		}
		logger.Error().Err(err).Str("slug", subject.Slug).Msg("Error executing create subject query")
		return fmt.Errorf("error creating subject: %w", err)
	}
	return nil
}

// GetSubjectByID retrieves a subject by ID
func (r *SubjectRepository) GetSubjectByID(ctx context.Context, id int64) (*models.Subject, error) {
	sql, args, err := r.sb.Select("id", "title", "slug").
		From("subjects").
		Where(squirrel.Eq{"id": id}).
		Limit(1).
		ToSql()
	if err != nil {
		logger.Error().Err(err).Msg("Error building get subject by ID SQL")
		return nil, fmt.Errorf("failed to build get subject query: %w", err)
	}

	s := &models.Subject{}
	if err := r.db.QueryRow(ctx, sql, args...).Scan(&s.ID, &s.Title, &s.Slug); err != nil {
		if isNoRows(err) {
			return nil, apperrors.NotFound(apperrors.ErrSubjectNotFound)
		}
		logger.Error().Err(err).Int64("subjectID", id).Msg("Error scanning subject row")
		return nil, fmt.Errorf("error getting subject by ID: %w", err)
	}
	return s, nil
}

// ListSubjects returns one page of subjects ordered by title, plus the total count.
// search, when non-empty, matches the title case-insensitively.
func (r *SubjectRepository) ListSubjects(ctx context.Context, search string, page, size int) ([]*models.Subject, int64, error) {
	where := squirrel.And{}
	if search != "" {
		where = append(where, squirrel.ILike{"title": helpers.ContainsPattern(search)})
	}

	countSQL, countArgs, err := r.sb.Select("COUNT(*)").From("subjects").Where(where).ToSql()
	if err != nil {
		logger.Error().Err(err).Msg("Error building count subjects SQL")
		return nil, 0, fmt.Errorf("failed to build count subjects query: %w", err)
	}

	var total int64
	if err := r.db.QueryRow(ctx, countSQL, countArgs...).Scan(&total); err != nil {
		logger.Error().Err(err).Msg("Error executing count subjects query")
		return nil, 0, fmt.Errorf("error counting subjects: %w", err)
	}

	offset, limit := helpers.CalculateOffsetLimit(page, size)
	sql, args, err := r.sb.Select("id", "title", "slug").
		From("subjects").
		Where(where).
		OrderBy("title ASC", "id ASC").
		Limit(limit).
		Offset(offset).
		ToSql()
	if err != nil {
		logger.Error().Err(err).Msg("Error building list subjects SQL")
		return nil, 0, fmt.Errorf("failed to build list subjects query: %w", err)
	}

	rows, err := r.db.Query(ctx, sql, args...)
	if err != nil {
		logger.Error().Err(err).Msg("Error executing list subjects query")
		return nil, 0, fmt.Errorf("error querying subjects: %w", err)
	}
	defer rows.Close()

	subjects := []*models.Subject{}
	for rows.Next() {
		s := &models.Subject{}
		if err := rows.Scan(&s.ID, &s.Title, &s.Slug); err != nil {
			logger.Error().Err(err).Msg("Error scanning subject row during list")
			return nil, 0, fmt.Errorf("error scanning subject row: %w", err)
		}
		subjects = append(subjects, s)
	}
	if err := rows.Err(); err != nil {
		logger.Error().Err(err).Msg("Error iterating subject rows")
		return nil, 0, fmt.Errorf("error iterating subject rows: %w", err)
	}

	return subjects, total, nil
}

// UpdateSubject updates title and slug
func (r *SubjectRepository) UpdateSubject(ctx context.Context, subject *models.Subject) error {
	sql, args, err := r.sb.Update("subjects").
		SetMap(map[string]interface{}{
			"title": subject.Title,
			"slug":  subject.Slug,
		}).
		Where(squirrel.Eq{"id": subject.ID}).
		ToSql()
	if err != nil {
		logger.Error().Err(err).Msg("Error building update subject SQL")
		return fmt.Errorf("failed to build update subject query: %w", err)
	}

	tag, err := r.db.Exec(ctx, sql, args...)
	if err != nil {
		if mapped := translateWriteError(err); mapped != nil {
			return mapped
		}
		logger.Error().Err(err).Int64("subjectID", subject.ID).Msg("Error executing update subject query")
		return fmt.Errorf("error updating subject: %w", err)
	}
	if tag.RowsAffected() == 0 {
		return apperrors.NotFound(apperrors.ErrSubjectNotFound)
	}
	return nil
}

// DeleteSubject deletes a subject. Its courses, their modules and contents go with it.
func (r *SubjectRepository) DeleteSubject(ctx context.Context, id int64) error {
	sql, args, err := r.sb.Delete("subjects").Where(squirrel.Eq{"id": id}).ToSql()
	if err != nil {
		logger.Error().Err(err).Msg("Error building delete subject SQL")
		return fmt.Errorf("failed to build delete subject query: %w", err)
	}

	tag, err := r.db.Exec(ctx, sql, args...)
	if err != nil {
		logger.Error().Err(err).Int64("subjectID", id).Msg("Error executing delete subject query")
		return fmt.Errorf("error deleting subject: %w", err)
	}
	if tag.RowsAffected() == 0 {
		return apperrors.NotFound(apperrors.ErrSubjectNotFound)
	}
	return nil
}

// SubjectExists reports whether a subject with the given id exists
func (r *SubjectRepository) SubjectExists(ctx context.Context, id int64) (bool, error) {
	return exists(ctx, r.db, "subjects", id)
}
