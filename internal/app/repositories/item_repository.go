package repositories

import (
	"context"
	"fmt"

	"github.com/Masterminds/squirrel"
	"github.com/jackc/pgx/v5"
	"github.com/yigit/educa/internal/app/models"
	"github.com/yigit/educa/internal/db"
	"github.com/yigit/educa/internal/pkg/apperrors"
	"github.com/yigit/educa/internal/pkg/helpers"
	"github.com/yigit/educa/internal/pkg/logger"
)

// ItemStore is the storage accessor for one content kind.
type ItemStore interface {
	Kind() models.Kind
	Create(ctx context.Context, item models.Item) error
	GetByID(ctx context.Context, id int64) (models.Item, error)
	Update(ctx context.Context, item models.Item) error
	Delete(ctx context.Context, id int64) error
	Exists(ctx context.Context, id int64) (bool, error)
	ListByOwner(ctx context.Context, ownerID int64, page, size int) ([]models.Item, int64, error)
}

// kindTable describes where a kind lives and how its payload column maps
// onto the Go type.
type kindTable struct {
	kind    models.Kind
	table   string
	payload string
	// value returns the payload for writes, target the scan destination
	value  func(models.Item) interface{}
	target func(models.Item) interface{}
}

var kindTables = map[models.Kind]kindTable{
	models.KindText: {
		kind: models.KindText, table: "texts", payload: "content",
		value:  func(i models.Item) interface{} { return i.(*models.Text).Content },
		target: func(i models.Item) interface{} { return &i.(*models.Text).Content },
	},
	models.KindFile: {
		kind: models.KindFile, table: "files", payload: "file",
		value:  func(i models.Item) interface{} { return i.(*models.File).File },
		target: func(i models.Item) interface{} { return &i.(*models.File).File },
	},
	models.KindImage: {
		kind: models.KindImage, table: "images", payload: "file",
		value:  func(i models.Item) interface{} { return i.(*models.Image).File },
		target: func(i models.Item) interface{} { return &i.(*models.Image).File },
	},
	models.KindVideo: {
		kind: models.KindVideo, table: "videos", payload: "url",
		value:  func(i models.Item) interface{} { return i.(*models.Video).URL },
		target: func(i models.Item) interface{} { return &i.(*models.Video).URL },
	},
}

// ItemRepository implements ItemStore for a single kind table
type ItemRepository struct {
	db db.DBTX
	sb squirrel.StatementBuilderType
	t  kindTable
}

// NewItemRepository creates the store for kind
func NewItemRepository(pool db.DBTX, kind models.Kind) (*ItemRepository, error) {
	t, ok := kindTables[kind]
	if !ok {
		return nil, apperrors.ErrInvalidContentKind
	}
	return &ItemRepository{
		db: pool,
		sb: squirrel.StatementBuilder.PlaceholderFormat(squirrel.Dollar),
		t:  t,
	}, nil
}

// NewItemStores creates one store per registered kind
func NewItemStores(pool db.DBTX) map[models.Kind]ItemStore {
	stores := make(map[models.Kind]ItemStore, len(models.Kinds))
	for _, k := range models.Kinds {
		repo, _ := NewItemRepository(pool, k)
		stores[k] = repo
	}
	return stores
}

// Kind implements ItemStore
func (r *ItemRepository) Kind() models.Kind {
	return r.t.kind
}

func (r *ItemRepository) columns() []string {
	return []string{"id", "owner_id", "title", "created_at", "updated_at", r.t.payload}
}

func (r *ItemRepository) check(item models.Item) error {
	if item == nil || item.Kind() != r.t.kind {
		return apperrors.ErrInvalidContentKind
	}
	return nil
}

func (r *ItemRepository) scan(row pgx.Row) (models.Item, error) {
	item := models.NewItem(r.t.kind)
	b := item.Base()
	if err := row.Scan(&b.ID, &b.OwnerID, &b.Title, &b.CreatedAt, &b.UpdatedAt, r.t.target(item)); err != nil {
		return nil, err
	}
	return item, nil
}

// Create inserts the item and fills in its id and timestamps
func (r *ItemRepository) Create(ctx context.Context, item models.Item) error {
	if err := r.check(item); err != nil {
		return err
	}
	b := item.Base()

	sql, args, err := r.sb.Insert(r.t.table).
		Columns("owner_id", "title", r.t.payload).
		Values(b.OwnerID, b.Title, r.t.value(item)).
		Suffix("RETURNING id, created_at, updated_at").
		ToSql()
	if err != nil {
		logger.Error().Err(err).Str("kind", r.t.kind.String()).Msg("Error building create item SQL")
		return fmt.Errorf("failed to build create %s query: %w", r.t.kind, err)
	}

	if err := r.db.QueryRow(ctx, sql, args...).Scan(&b.ID, &b.CreatedAt, &b.UpdatedAt); err != nil {
		if mapped := translateWriteError(err); mapped != nil {
			return mapped
		}
		logger.Error().Err(err).Str("kind", r.t.kind.String()).Msg("Error executing create item query")
		return fmt.Errorf("error creating %s: %w", r.t.kind, err)
	}
	return nil
}

// GetByID fetches the item with the given id
func (r *ItemRepository) GetByID(ctx context.Context, id int64) (models.Item, error) {
	sql, args, err := r.sb.Select(r.columns()...).
		From(r.t.table).
		Where(squirrel.Eq{"id": id}).
		Limit(1).
		ToSql()
	if err != nil {
		logger.Error().Err(err).Str("kind", r.t.kind.String()).Msg("Error building get item SQL")
		return nil, fmt.Errorf("failed to build get %s query: %w", r.t.kind, err)
	}

	item, err := r.scan(r.db.QueryRow(ctx, sql, args...))
	if err != nil {
		if isNoRows(err) {
			return nil, apperrors.NotFound(apperrors.ErrItemNotFound)
		}
		logger.Error().Err(err).Str("kind", r.t.kind.String()).Int64("id", id).Msg("Error scanning item row")
		return nil, fmt.Errorf("error getting %s by ID: %w", r.t.kind, err)
	}
	return item, nil
}

// Update writes title and payload and refreshes updated_at
func (r *ItemRepository) Update(ctx context.Context, item models.Item) error {
	if err := r.check(item); err != nil {
		return err
	}
	b := item.Base()

	sql, args, err := r.sb.Update(r.t.table).
		Set("title", b.Title).
		Set(r.t.payload, r.t.value(item)).
		Set("updated_at", squirrel.Expr("NOW()")).
		Where(squirrel.Eq{"id": b.ID}).
		Suffix("RETURNING owner_id, created_at, updated_at").
		ToSql()
	if err != nil {
		logger.Error().Err(err).Str("kind", r.t.kind.String()).Msg("Error building update item SQL")
		return fmt.Errorf("failed to build update %s query: %w", r.t.kind, err)
	}

	if err := r.db.QueryRow(ctx, sql, args...).Scan(&b.OwnerID, &b.CreatedAt, &b.UpdatedAt); err != nil {
		if isNoRows(err) {
			return apperrors.NotFound(apperrors.ErrItemNotFound)
		}
		logger.Error().Err(err).Str("kind", r.t.kind.String()).Int64("id", b.ID).Msg("Error executing update item query")
		return fmt.Errorf("error updating %s: %w", r.t.kind, err)
	}
	return nil
}

// Delete removes the row. Content rows pointing at it are left dangling.
func (r *ItemRepository) Delete(ctx context.Context, id int64) error {
	sql, args, err := r.sb.Delete(r.t.table).Where(squirrel.Eq{"id": id}).ToSql()
	if err != nil {
		logger.Error().Err(err).Str("kind", r.t.kind.String()).Msg("Error building delete item SQL")
		return fmt.Errorf("failed to build delete %s query: %w", r.t.kind, err)
	}

	tag, err := r.db.Exec(ctx, sql, args...)
	if err != nil {
		logger.Error().Err(err).Str("kind", r.t.kind.String()).Int64("id", id).Msg("Error executing delete item query")
		return fmt.Errorf("error deleting %s: %w", r.t.kind, err)
	}
	if tag.RowsAffected() == 0 {
		return apperrors.NotFound(apperrors.ErrItemNotFound)
	}
	return nil
}

// Exists reports whether a row with the given id exists in this kind's table
func (r *ItemRepository) Exists(ctx context.Context, id int64) (bool, error) {
	return exists(ctx, r.db, r.t.table, id)
}

// ListByOwner returns one page of an owner's items, most recently updated first
func (r *ItemRepository) ListByOwner(ctx context.Context, ownerID int64, page, size int) ([]models.Item, int64, error) {
	countSQL, countArgs, err := r.sb.Select("COUNT(*)").
		From(r.t.table).
		Where(squirrel.Eq{"owner_id": ownerID}).
		ToSql()
	if err != nil {
		logger.Error().Err(err).Str("kind", r.t.kind.String()).Msg("Error building count items SQL")
		return nil, 0, fmt.Errorf("failed to build count %s query: %w", r.t.kind, err)
	}

	var total int64
	if err := r.db.QueryRow(ctx, countSQL, countArgs...).Scan(&total); err != nil {
		logger.Error().Err(err).Str("kind", r.t.kind.String()).Msg("Error executing count items query")
		return nil, 0, fmt.Errorf("error counting %s: %w", r.t.kind, err)
	}

	offset, limit := helpers.CalculateOffsetLimit(page, size)
	sql, args, err := r.sb.Select(r.columns()...).
		From(r.t.table).
		Where(squirrel.Eq{"owner_id": ownerID}).
		OrderBy("updated_at DESC", "id DESC").
		Limit(limit).
		Offset(offset).
		ToSql()
	if err != nil {
		logger.Error().Err(err).Str("kind", r.t.kind.String()).Msg("Error building list items SQL")
		return nil, 0, fmt.Errorf("failed to build list %s query: %w", r.t.kind, err)
	}

	rows, err := r.db.Query(ctx, sql, args...)
	if err != nil {
		logger.Error().Err(err).Str("kind", r.t.kind.String()).Msg("Error executing list items query")
		return nil, 0, fmt.Errorf("error querying %s: %w", r.t.kind, err)
	}
	defer rows.Close()

	items := []models.Item{}
	for rows.Next() {
		item, err := r.scan(rows)
		if err != nil {
			logger.Error().Err(err).Str("kind", r.t.kind.String()).Msg("Error scanning item row during list")
			return nil, 0, fmt.Errorf("error scanning %s row: %w", r.t.kind, err)
		}
		items = append(items, item)
	}
	if err := rows.Err(); err != nil {
		logger.Error().Err(err).Str("kind", r.t.kind.String()).Msg("Error iterating item rows")
		return nil, 0, fmt.Errorf("error iterating %s rows: %w", r.t.kind, err)
	}

	return items, total, nil
}
