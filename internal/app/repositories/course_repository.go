package repositories

import (
	"context"
	"fmt"
	"time"

	"github.com/Masterminds/squirrel"
	"github.com/jackc/pgx/v5"
	"github.com/yigit/educa/internal/app/models"
	"github.com/yigit/educa/internal/db"
	"github.com/yigit/educa/internal/pkg/apperrors"
	"github.com/yigit/educa/internal/pkg/helpers"
	"github.com/yigit/educa/internal/pkg/logger"
)

// CourseSearchColumns are the columns a course search may target
var CourseSearchColumns = []string{"title", "overview"}

var courseSelectColumns = []string{
	"c.id", "c.owner_id", "c.subject_id", "c.title", "c.slug", "c.overview", "c.created_at",
	"s.id", "s.title", "s.slug",
}

// CourseRepository handles course database operations
type CourseRepository struct {
	db  db.Pool
	sb  squirrel.StatementBuilderType
	now func() time.Time
}

// NewCourseRepository creates a new CourseRepository
func NewCourseRepository(pool db.Pool) *CourseRepository {
	return &CourseRepository{
		db:  pool,
		sb:  squirrel.StatementBuilder.PlaceholderFormat(squirrel.Dollar),
		now: time.Now,
	}
}

// CreateCourse inserts the course and its inline modules in one transaction.
// Inline rows flagged for deletion are ignored on create.
func (r *CourseRepository) CreateCourse(ctx context.Context, course *models.Course, inlines []models.ModuleInline) error {
	return db.WithTransaction(ctx, r.db, func(ctx context.Context, tx pgx.Tx) error {
		sql, args, err := r.sb.Insert("courses").
			Columns("owner_id", "subject_id", "title", "slug", "overview").
			Values(course.OwnerID, course.SubjectID, course.Title, course.Slug, course.Overview).
			Suffix("RETURNING id, created_at").
			ToSql()
		if err != nil {
			logger.Error().Err(err).Msg("Error building create course SQL")
			return fmt.Errorf("failed to build create course query: %w", err)
		}

		if err := tx.QueryRow(ctx, sql, args...).Scan(&course.ID, &course.CreatedAt); err != nil {
			if mapped := translateWriteError(err); mapped != nil {
				return mapped
			}
			logger.Error().Err(err).Str("slug", course.Slug).Msg("Error executing create course query")
			return fmt.Errorf("error creating course: %w", err)
		}

		return r.applyInlines(ctx, tx, course.ID, inlines)
	})
}

// UpdateCourse updates the course row and applies the inline module edits in
// one transaction. created_at and owner are never changed.
func (r *CourseRepository) UpdateCourse(ctx context.Context, course *models.Course, inlines []models.ModuleInline) error {
	return db.WithTransaction(ctx, r.db, func(ctx context.Context, tx pgx.Tx) error {
		sql, args, err := r.sb.Update("courses").
			SetMap(map[string]interface{}{
				"subject_id": course.SubjectID,
				"title":      course.Title,
				"slug":       course.Slug,
				"overview":   course.Overview,
			}).
			Where(squirrel.Eq{"id": course.ID}).
			Suffix("RETURNING owner_id, created_at").
			ToSql()
		if err != nil {
			logger.Error().Err(err).Msg("Error building update course SQL")
			return fmt.Errorf("failed to build update course query: %w", err)
		}

		if err := tx.QueryRow(ctx, sql, args...).Scan(&course.OwnerID, &course.CreatedAt); err != nil {
			if isNoRows(err) {
				return apperrors.NotFound(apperrors.ErrCourseNotFound)
			}
			if mapped := translateWriteError(err); mapped != nil {
				return mapped
			}
			logger.Error().Err(err).Int64("courseID", course.ID).Msg("Error executing update course query")
			return fmt.Errorf("error updating course: %w", err)
		}

		return r.applyInlines(ctx, tx, course.ID, inlines)
	})
}

func (r *CourseRepository) applyInlines(ctx context.Context, tx db.DBTX, courseID int64, inlines []models.ModuleInline) error {
	for _, in := range inlines {
		m := &models.Module{ID: in.ID, CourseID: courseID, Title: in.Title, Description: in.Description}

		var err error
		switch {
		case in.Delete && in.ID == 0:
			continue
		case in.Delete:
			err = deleteModule(ctx, tx, r.sb, in.ID, courseID)
		case in.ID == 0:
			err = insertModule(ctx, tx, r.sb, m)
		default:
			err = updateModule(ctx, tx, r.sb, m, courseID)
		}
		if err != nil {
			return err
		}
	}
	return nil
}

// GetCourseByID retrieves a course with its subject and modules
func (r *CourseRepository) GetCourseByID(ctx context.Context, id int64) (*models.Course, error) {
	sql, args, err := r.sb.Select(courseSelectColumns...).
		From("courses c").
		Join("subjects s ON s.id = c.subject_id").
		Where(squirrel.Eq{"c.id": id}).
		Limit(1).
		ToSql()
	if err != nil {
		logger.Error().Err(err).Msg("Error building get course by ID SQL")
		return nil, fmt.Errorf("failed to build get course query: %w", err)
	}

	course, err := scanCourse(r.db.QueryRow(ctx, sql, args...))
	if err != nil {
		if isNoRows(err) {
			return nil, apperrors.NotFound(apperrors.ErrCourseNotFound)
		}
		logger.Error().Err(err).Int64("courseID", id).Msg("Error scanning course row")
		return nil, fmt.Errorf("error getting course by ID: %w", err)
	}

	course.Modules, err = listModules(ctx, r.db, r.sb, course.ID)
	if err != nil {
		return nil, err
	}
	return course, nil
}

// ListCourses returns one page of courses, newest first, and the total count
// matching the filter.
func (r *CourseRepository) ListCourses(ctx context.Context, filter models.CourseFilter) ([]*models.Course, int64, error) {
	where := r.courseConditions(filter)

	countSQL, countArgs, err := r.sb.Select("COUNT(*)").From("courses c").Where(where).ToSql()
	if err != nil {
		logger.Error().Err(err).Msg("Error building count courses SQL")
		return nil, 0, fmt.Errorf("failed to build count courses query: %w", err)
	}

	var total int64
	if err := r.db.QueryRow(ctx, countSQL, countArgs...).Scan(&total); err != nil {
		logger.Error().Err(err).Msg("Error executing count courses query")
		return nil, 0, fmt.Errorf("error counting courses: %w", err)
	}

	offset, limit := helpers.CalculateOffsetLimit(filter.Page, filter.Size)
	sql, args, err := r.sb.Select(courseSelectColumns...).
		From("courses c").
		Join("subjects s ON s.id = c.subject_id").
		Where(where).
		OrderBy("c.created_at DESC", "c.id DESC").
		Limit(limit).
		Offset(offset).
		ToSql()
	if err != nil {
		logger.Error().Err(err).Msg("Error building list courses SQL")
		return nil, 0, fmt.Errorf("failed to build list courses query: %w", err)
	}

	rows, err := r.db.Query(ctx, sql, args...)
	if err != nil {
		logger.Error().Err(err).Msg("Error executing list courses query")
		return nil, 0, fmt.Errorf("error querying courses: %w", err)
	}
	defer rows.Close()

	courses := []*models.Course{}
	for rows.Next() {
		c, err := scanCourse(rows)
		if err != nil {
			logger.Error().Err(err).Msg("Error scanning course row during list")
			return nil, 0, fmt.Errorf("error scanning course row: %w", err)
		}
		courses = append(courses, c)
	}
	if err := rows.Err(); err != nil {
		logger.Error().Err(err).Msg("Error iterating course rows")
		return nil, 0, fmt.Errorf("error iterating course rows: %w", err)
	}

	return courses, total, nil
}

func (r *CourseRepository) courseConditions(filter models.CourseFilter) squirrel.And {
	where := squirrel.And{}

	if filter.Search != "" {
		pattern := helpers.ContainsPattern(filter.Search)
		or := squirrel.Or{}
		for _, col := range searchColumns(filter.SearchFields) {
			or = append(or, squirrel.ILike{"c." + col: pattern})
		}
		where = append(where, or)
	}
	if filter.SubjectID != nil {
		where = append(where, squirrel.Eq{"c.subject_id": *filter.SubjectID})
	}
	if filter.OwnerID != nil {
		where = append(where, squirrel.Eq{"c.owner_id": *filter.OwnerID})
	}
	if from, to, ok := filter.Created.Range(r.now()); ok {
		where = append(where,
			squirrel.GtOrEq{"c.created_at": from},
			squirrel.Lt{"c.created_at": to},
		)
	}
	return where
}

// searchColumns keeps only whitelisted columns, defaulting to all of them
func searchColumns(requested []string) []string {
	cols := make([]string, 0, len(CourseSearchColumns))
	for _, want := range requested {
		for _, allowed := range CourseSearchColumns {
			if want == allowed {
				cols = append(cols, allowed)
				break
			}
		}
	}
	if len(cols) == 0 {
		return CourseSearchColumns
	}
	return cols
}

// DeleteCourse deletes a course. Its modules and their contents go with it.
func (r *CourseRepository) DeleteCourse(ctx context.Context, id int64) error {
	sql, args, err := r.sb.Delete("courses").Where(squirrel.Eq{"id": id}).ToSql()
	if err != nil {
		logger.Error().Err(err).Msg("Error building delete course SQL")
		return fmt.Errorf("failed to build delete course query: %w", err)
	}

	tag, err := r.db.Exec(ctx, sql, args...)
	if err != nil {
		logger.Error().Err(err).Int64("courseID", id).Msg("Error executing delete course query")
		return fmt.Errorf("error deleting course: %w", err)
	}
	if tag.RowsAffected() == 0 {
		return apperrors.NotFound(apperrors.ErrCourseNotFound)
	}
	return nil
}

// CourseExists reports whether a course with the given id exists
func (r *CourseRepository) CourseExists(ctx context.Context, id int64) (bool, error) {
	return exists(ctx, r.db, "courses", id)
}

func scanCourse(row pgx.Row) (*models.Course, error) {
	c := &models.Course{Subject: &models.Subject{}}
	err := row.Scan(
		&c.ID, &c.OwnerID, &c.SubjectID, &c.Title, &c.Slug, &c.Overview, &c.CreatedAt,
		&c.Subject.ID, &c.Subject.Title, &c.Subject.Slug,
	)
	if err != nil {
		return nil, err
	}
	return c, nil
}
