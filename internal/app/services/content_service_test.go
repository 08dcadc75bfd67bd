package services

import (
	"context"
	"errors"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/yigit/educa/internal/app/models"
	"github.com/yigit/educa/internal/pkg/apperrors"
)

type contentFixture struct {
	svc      ContentService
	contents *fakeContents
	items    map[models.Kind]*fakeItemStore
}

func newContentFixture() contentFixture {
	registry, items := newFakeRegistry()
	contents := &fakeContents{}
	modules := &fakeModules{rows: map[int64]*models.Module{1: {ID: 1, CourseID: 1, Title: "Basics"}}}
	return contentFixture{
		svc:      NewContentService(contents, modules, registry),
		contents: contents,
		items:    items,
	}
}

func TestCreateContentRejectsUnknownKind(t *testing.T) {
	fx := newContentFixture()

	for _, kind := range []string{"audio", "", "quiz"} {
		_, err := fx.svc.CreateContent(context.Background(), 1, kind, 5)
		assert.ErrorIs(t, err, apperrors.ErrInvalidContentKind, kind)

		var custom *apperrors.CustomError
		require.True(t, errors.As(err, &custom))
		assert.Equal(t, "kind", custom.Field)
	}
	assert.Empty(t, fx.contents.rows)
}

func TestCreateContentRequiresExistingObject(t *testing.T) {
	fx := newContentFixture()

	_, err := fx.svc.CreateContent(context.Background(), 1, "text", 5)
	assert.ErrorIs(t, err, apperrors.ErrContentObjectNotFound)
	assert.NotErrorIs(t, err, apperrors.ErrResourceNotFound)

	_, err = fx.svc.CreateContent(context.Background(), 99, "text", 5)
	var custom *apperrors.CustomError
	require.True(t, errors.As(err, &custom))
	assert.Equal(t, "moduleId", custom.Field)
}

func TestCreateContentResolvesTextItem(t *testing.T) {
	fx := newContentFixture()
	created := time.Date(2026, 3, 1, 9, 0, 0, 0, time.UTC)
	fx.items[models.KindText].items[5] = &models.Text{
		ItemBase: models.ItemBase{ID: 5, OwnerID: 7, Title: "Reading list", CreatedAt: created, UpdatedAt: created},
		Content:  "Chapter 1",
	}

	content, err := fx.svc.CreateContent(context.Background(), 1, "text", 5)
	require.NoError(t, err)
	assert.Equal(t, models.KindText, content.Kind)

	item, err := fx.svc.ResolveContent(context.Background(), content.ID)
	require.NoError(t, err)
	text, ok := item.(*models.Text)
	require.True(t, ok)
	assert.Equal(t, int64(5), text.ID)
	assert.Equal(t, "Chapter 1", text.Content)
	assert.Equal(t, "Reading list", text.Title)
	assert.Equal(t, created, text.CreatedAt)
	assert.Equal(t, created, text.UpdatedAt)
}

func TestDanglingContentResolvesToNotFound(t *testing.T) {
	fx := newContentFixture()
	fx.items[models.KindVideo].items[3] = &models.Video{ItemBase: models.ItemBase{ID: 3, Title: "Lecture"}, URL: "https://example.com/v"}

	content, err := fx.svc.CreateContent(context.Background(), 1, "video", 3)
	require.NoError(t, err)

	delete(fx.items[models.KindVideo].items, 3)

	_, err = fx.svc.ResolveContent(context.Background(), content.ID)
	assert.ErrorIs(t, err, apperrors.ErrResourceNotFound)
	assert.ErrorIs(t, err, apperrors.ErrContentObjectNotFound)

	got, err := fx.svc.GetContent(context.Background(), content.ID)
	require.NoError(t, err)
	assert.Nil(t, got.Item)

	list, err := fx.svc.ListContentsByModule(context.Background(), 1)
	require.NoError(t, err)
	require.Len(t, list, 1)
	assert.Nil(t, list[0].Item)
}

func TestSameItemInSeveralContents(t *testing.T) {
	fx := newContentFixture()
	fx.items[models.KindText].items[5] = &models.Text{ItemBase: models.ItemBase{ID: 5, Title: "Shared"}, Content: "x"}

	_, err := fx.svc.CreateContent(context.Background(), 1, "text", 5)
	require.NoError(t, err)
	second, err := fx.svc.CreateContent(context.Background(), 1, "text", 5)
	require.NoError(t, err)

	require.NoError(t, fx.svc.DeleteContent(context.Background(), second.ID))

	_, stillThere := fx.items[models.KindText].items[5]
	assert.True(t, stillThere)
	list, err := fx.svc.ListContentsByModule(context.Background(), 1)
	require.NoError(t, err)
	assert.Len(t, list, 1)
}

func TestListContentsUnknownModule(t *testing.T) {
	fx := newContentFixture()

	_, err := fx.svc.ListContentsByModule(context.Background(), 42)
	assert.ErrorIs(t, err, apperrors.ErrModuleNotFound)
}

func TestRegistryStoreUnknownKind(t *testing.T) {
	registry, _ := newFakeRegistry()

	_, err := registry.Store("audio")
	assert.ErrorIs(t, err, apperrors.ErrInvalidContentKind)
	assert.Equal(t, models.Kinds, registry.Kinds())
}
