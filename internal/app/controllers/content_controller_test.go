package controllers

import (
	"fmt"
	"net/http"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/yigit/educa/internal/app/models"
	"github.com/yigit/educa/internal/app/models/dto"
	"github.com/yigit/educa/internal/pkg/apperrors"
)

func newContentRouter(svc *fakeContentService) http.Handler {
	r := newTestRouter()
	c := NewContentController(svc, func(p string) string { return "http://test/uploads/" + p })
	r.POST("/contents", c.CreateContent)
	r.GET("/contents/:id", c.GetContent)
	r.GET("/contents/:id/item", c.ResolveContent)
	r.DELETE("/contents/:id", c.DeleteContent)
	r.GET("/modules/:id/contents", c.ListContentsByModule)
	return r
}

func textContent() *fakeContentService {
	text := &models.Text{Content: "Chapter 1"}
	text.ID = 5
	text.Title = "Reading"
	file := &models.File{File: "files/a.pdf"}
	file.ID = 8

	return &fakeContentService{contents: map[int64]*models.Content{
		1: {ID: 1, ModuleID: 2, Kind: models.KindText, ObjectID: 5, Item: text},
		2: {ID: 2, ModuleID: 2, Kind: models.KindFile, ObjectID: 8, Item: file},
		3: {ID: 3, ModuleID: 2, Kind: models.KindVideo, ObjectID: 99},
	}}
}

func TestResolveContentReturnsText(t *testing.T) {
	w, env := doJSON(t, newContentRouter(textContent()), http.MethodGet, "/contents/1/item", nil)

	require.Equal(t, http.StatusOK, w.Code)
	var got dto.ItemResponse
	decodeData(t, env, &got)
	assert.Equal(t, int64(5), got.ID)
	assert.Equal(t, models.KindText, got.Kind)
	assert.Equal(t, "Chapter 1", got.Content)
	assert.Equal(t, "Reading", got.Title)
}

func TestResolveDanglingContentIsNotFound(t *testing.T) {
	svc := &fakeContentService{err: apperrors.NotFound(fmt.Errorf("%w: video #99", apperrors.ErrContentObjectNotFound))}
	w, env := doJSON(t, newContentRouter(svc), http.MethodGet, "/contents/3/item", nil)

	assert.Equal(t, http.StatusNotFound, w.Code)
	require.NotNil(t, env.Error)
	assert.Equal(t, "content object not found: video #99", env.Error.Message)
}

func TestListContentsKeepsDanglingEntries(t *testing.T) {
	w, env := doJSON(t, newContentRouter(textContent()), http.MethodGet, "/modules/2/contents", nil)

	require.Equal(t, http.StatusOK, w.Code)
	var got []dto.ContentResponse
	decodeData(t, env, &got)
	require.Len(t, got, 3)
	assert.Equal(t, "http://test/uploads/files/a.pdf", got[1].Item.FileURL)
	assert.Nil(t, got[2].Item)
}

func TestCreateContentRejectsUnknownKind(t *testing.T) {
	svc := &fakeContentService{err: &apperrors.CustomError{Err: apperrors.ErrInvalidContentKind, Message: apperrors.ErrInvalidContentKind.Error(), Field: "kind"}}
	w, env := doJSON(t, newContentRouter(svc), http.MethodPost, "/contents", dto.ContentRequest{ModuleID: 1, Kind: "audio", ObjectID: 1})

	assert.Equal(t, http.StatusBadRequest, w.Code)
	require.NotNil(t, env.Error)
	assert.Equal(t, "kind", env.Error.Field)
}

func TestCreateContentMissingObject(t *testing.T) {
	svc := &fakeContentService{err: &apperrors.CustomError{Err: apperrors.ErrContentObjectNotFound, Message: "text #5 does not exist", Field: "objectId"}}
	w, env := doJSON(t, newContentRouter(svc), http.MethodPost, "/contents", dto.ContentRequest{ModuleID: 1, Kind: "text", ObjectID: 5})

	assert.Equal(t, http.StatusBadRequest, w.Code)
	require.NotNil(t, env.Error)
	assert.Equal(t, "objectId", env.Error.Field)
}

func TestCreateContent(t *testing.T) {
	w, env := doJSON(t, newContentRouter(&fakeContentService{}), http.MethodPost, "/contents", dto.ContentRequest{ModuleID: 1, Kind: "text", ObjectID: 5})

	require.Equal(t, http.StatusCreated, w.Code)
	var got dto.ContentResponse
	decodeData(t, env, &got)
	assert.Equal(t, models.KindText, got.Kind)
	assert.Equal(t, int64(5), got.ObjectID)
}
