package services

import (
	"context"
	"errors"

	"github.com/yigit/educa/internal/app/models"
	"github.com/yigit/educa/internal/app/repositories"
	"github.com/yigit/educa/internal/pkg/apperrors"
)

// ContentRegistry maps each content kind to its storage accessor.
type ContentRegistry struct {
	stores map[models.Kind]repositories.ItemStore
}

// NewContentRegistry builds a registry from the given stores
func NewContentRegistry(stores map[models.Kind]repositories.ItemStore) *ContentRegistry {
	r := &ContentRegistry{stores: make(map[models.Kind]repositories.ItemStore, len(stores))}
	for k, s := range stores {
		r.stores[k] = s
	}
	return r
}

// Kinds lists the registered kinds in their canonical order
func (r *ContentRegistry) Kinds() []models.Kind {
	kinds := make([]models.Kind, 0, len(r.stores))
	for _, k := range models.Kinds {
		if _, ok := r.stores[k]; ok {
			kinds = append(kinds, k)
		}
	}
	return kinds
}

// Store returns the accessor for kind
func (r *ContentRegistry) Store(kind models.Kind) (repositories.ItemStore, error) {
	s, ok := r.stores[kind]
	if !ok {
		return nil, apperrors.ErrInvalidContentKind
	}
	return s, nil
}

// ObjectExists reports whether (kind, id) names an existing row
func (r *ContentRegistry) ObjectExists(ctx context.Context, kind models.Kind, id int64) (bool, error) {
	s, err := r.Store(kind)
	if err != nil {
		return false, err
	}
	return s.Exists(ctx, id)
}

// Resolve fetches the item a content row points at. A missing row yields an
// error matching both ErrContentObjectNotFound and ErrResourceNotFound.
func (r *ContentRegistry) Resolve(ctx context.Context, content *models.Content) (models.Item, error) {
	if content == nil {
		return nil, apperrors.NotFound(apperrors.ErrContentNotFound)
	}

	s, err := r.Store(content.Kind)
	if err != nil {
		return nil, err
	}

	item, err := s.GetByID(ctx, content.ObjectID)
	if err != nil {
		if errors.Is(err, apperrors.ErrResourceNotFound) {
			return nil, apperrors.DanglingReference(content.Kind.String(), content.ObjectID)
		}
		return nil, err
	}
	return item, nil
}
