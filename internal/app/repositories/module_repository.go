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

var moduleColumns = []string{"id", "course_id", "title", "description"}

// ModuleRepository handles module database operations
type ModuleRepository struct {
	db db.DBTX
	sb squirrel.StatementBuilderType
}

// NewModuleRepository creates a new ModuleRepository
func NewModuleRepository(pool db.DBTX) *ModuleRepository {
	return &ModuleRepository{
		db: pool,
		sb: squirrel.StatementBuilder.PlaceholderFormat(squirrel.Dollar),
	}
}

// CreateModule inserts a module under its course
func (r *ModuleRepository) CreateModule(ctx context.Context, module *models.Module) error {
	return insertModule(ctx, r.db, r.sb, module)
}

// GetModuleByID retrieves a module by ID
func (r *ModuleRepository) GetModuleByID(ctx context.Context, id int64) (*models.Module, error) {
	sql, args, err := r.sb.Select(moduleColumns...).
		From("modules").
		Where(squirrel.Eq{"id": id}).
		Limit(1).
		ToSql()
	if err != nil {
		logger.Error().Err(err).Msg("Error building get module by ID SQL")
		return nil, fmt.Errorf("failed to build get module query: %w", err)
	}

	m := &models.Module{}
	if err := r.db.QueryRow(ctx, sql, args...).Scan(&m.ID, &m.CourseID, &m.Title, &m.Description); err != nil {
		if isNoRows(err) {
			return nil, apperrors.NotFound(apperrors.ErrModuleNotFound)
		}
		logger.Error().Err(err).Int64("moduleID", id).Msg("Error scanning module row")
		return nil, fmt.Errorf("error getting module by ID: %w", err)
	}
	return m, nil
}

// ListModulesByCourse returns the modules of a course in insertion order
func (r *ModuleRepository) ListModulesByCourse(ctx context.Context, courseID int64) ([]*models.Module, error) {
	return listModules(ctx, r.db, r.sb, courseID)
}

// UpdateModule updates a module's title and description. The course cannot change.
func (r *ModuleRepository) UpdateModule(ctx context.Context, module *models.Module) error {
	return updateModule(ctx, r.db, r.sb, module, 0)
}

// DeleteModule deletes a module and, through the foreign key, its contents
func (r *ModuleRepository) DeleteModule(ctx context.Context, id int64) error {
	return deleteModule(ctx, r.db, r.sb, id, 0)
}

// ModuleExists reports whether a module with the given id exists
func (r *ModuleRepository) ModuleExists(ctx context.Context, id int64) (bool, error) {
	return exists(ctx, r.db, "modules", id)
}

// The helpers below take a DBTX so the course repository can run them inside
// its transaction. A non-zero courseID scopes the statement to that course.

func insertModule(ctx context.Context, q db.DBTX, sb squirrel.StatementBuilderType, module *models.Module) error {
	sql, args, err := sb.Insert("modules").
		Columns("course_id", "title", "description").
		Values(module.CourseID, module.Title, module.Description).
		Suffix("RETURNING id").
		ToSql()
	if err != nil {
		logger.Error().Err(err).Msg("Error building create module SQL")
		return fmt.Errorf("failed to build create module query: %w", err)
	}

	if err := q.QueryRow(ctx, sql, args...).Scan(&module.ID); err != nil {
		if mapped := translateWriteError(err); mapped != nil {
			return mapped
		}
		logger.Error().Err(err).Int64("courseID", module.CourseID).Msg("Error executing create module query")
		return fmt.Errorf("error creating module: %w", err)
	}
	return nil
}

func updateModule(ctx context.Context, q db.DBTX, sb squirrel.StatementBuilderType, module *models.Module, courseID int64) error {
	where := squirrel.Eq{"id": module.ID}
	if courseID != 0 {
		where["course_id"] = courseID
	}

	sql, args, err := sb.Update("modules").
		SetMap(map[string]interface{}{
			"title":       module.Title,
			"description": module.Description,
		}).
		Where(where).
		Suffix("RETURNING course_id").
		ToSql()
	if err != nil {
		logger.Error().Err(err).Msg("Error building update module SQL")
		return fmt.Errorf("failed to build update module query: %w", err)
	}

	if err := q.QueryRow(ctx, sql, args...).Scan(&module.CourseID); err != nil {
		if isNoRows(err) {
			return apperrors.NotFound(apperrors.ErrModuleNotFound)
		}
		logger.Error().Err(err).Int64("moduleID", module.ID).Msg("Error executing update module query")
		return fmt.Errorf("error updating module: %w", err)
	}
	return nil
}

func deleteModule(ctx context.Context, q db.DBTX, sb squirrel.StatementBuilderType, id, courseID int64) error {
	where := squirrel.Eq{"id": id}
	if courseID != 0 {
		where["course_id"] = courseID
	}

	sql, args, err := sb.Delete("modules").Where(where).ToSql()
	if err != nil {
		logger.Error().Err(err).Msg("Error building delete module SQL")
		return fmt.Errorf("failed to build delete module query: %w", err)
	}

	tag, err := q.Exec(ctx, sql, args...)
	if err != nil {
		logger.Error().Err(err).Int64("moduleID", id).Msg("Error executing delete module query")
		return fmt.Errorf("error deleting module: %w", err)
	}
	if tag.RowsAffected() == 0 {
		return apperrors.NotFound(apperrors.ErrModuleNotFound)
	}
	return nil
}

func listModules(ctx context.Context, q db.DBTX, sb squirrel.StatementBuilderType, courseID int64) ([]*models.Module, error) {
	sql, args, err := sb.Select(moduleColumns...).
		From("modules").
		Where(squirrel.Eq{"course_id": courseID}).
		OrderBy("id ASC").
		ToSql()
	if err != nil {
		logger.Error().Err(err).Msg("Error building list modules SQL")
		return nil, fmt.Errorf("failed to build list modules query: %w", err)
	}

	rows, err := q.Query(ctx, sql, args...)
	if err != nil {
		logger.Error().Err(err).Int64("courseID", courseID).Msg("Error executing list modules query")
		return nil, fmt.Errorf("error querying modules: %w", err)
	}
	defer rows.Close()

	modules := []*models.Module{}
	for rows.Next() {
		m := &models.Module{}
		if err := rows.Scan(&m.ID, &m.CourseID, &m.Title, &m.Description); err != nil {
			logger.Error().Err(err).Msg("Error scanning module row during list")
			return nil, fmt.Errorf("error scanning module row: %w", err)
		}
		modules = append(modules, m)
	}
	if err := rows.Err(); err != nil {
		logger.Error().Err(err).Msg("Error iterating module rows")
		return nil, fmt.Errorf("error iterating module rows: %w", err)
	}
	return modules, nil
}
