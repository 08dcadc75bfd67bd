package controllers

import (
	"bytes"
	"context"
	"encoding/json"
	"mime/multipart"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/require"
	"github.com/yigit/educa/internal/app/models"
	"github.com/yigit/educa/internal/middleware"
)

const testUserID int64 = 7

// newTestRouter returns an engine that acts as if user 7 is logged in
func newTestRouter() *gin.Engine {
	gin.SetMode(gin.TestMode)
	middleware.RegisterBindingValidators()

	r := gin.New()
	r.Use(func(c *gin.Context) {
		c.Set(middleware.ContextUserID, testUserID)
		c.Set(middleware.ContextIsStaff, true)
		c.Next()
	})
	return r
}

type envelope struct {
	Success bool            `json:"success"`
	Data    json.RawMessage `json:"data"`
	Error   *struct {
		Code    string `json:"code"`
		Message string `json:"message"`
		Field   string `json:"field"`
	} `json:"error"`
}

func doJSON(t *testing.T, r http.Handler, method, path string, body interface{}) (*httptest.ResponseRecorder, envelope) {
	t.Helper()

	var buf bytes.Buffer
	if body != nil {
		if s, ok := body.(string); ok {
			buf.WriteString(s)
		} else {
			require.NoError(t, json.NewEncoder(&buf).Encode(body))
		}
	}
	req := httptest.NewRequest(method, path, &buf)
	req.Header.Set("Content-Type", "application/json")

	w := httptest.NewRecorder()
	r.ServeHTTP(w, req)

	var env envelope
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &env), w.Body.String())
	return w, env
}

func decodeData(t *testing.T, env envelope, v interface{}) {
	t.Helper()
	require.NoError(t, json.Unmarshal(env.Data, v))
}

type fakeSubjectService struct {
	subjects map[int64]*models.Subject
	created  *models.Subject
	err      error
	search   string
}

func (f *fakeSubjectService) CreateSubject(_ context.Context, s *models.Subject) error {
	if f.err != nil {
		return f.err
	}
	s.ID = 1
	if s.Slug == "" {
		s.Slug = "derived"
	}
	f.created = s
	return nil
}

func (f *fakeSubjectService) GetSubjectByID(_ context.Context, id int64) (*models.Subject, error) {
	if f.err != nil {
		return nil, f.err
	}
	return f.subjects[id], nil
}

func (f *fakeSubjectService) ListSubjects(_ context.Context, search string, page, size int) ([]*models.Subject, int64, error) {
	f.search = search
	out := make([]*models.Subject, 0, len(f.subjects))
	for _, s := range f.subjects {
		out = append(out, s)
	}
	return out, int64(len(out)), f.err
}

func (f *fakeSubjectService) UpdateSubject(_ context.Context, s *models.Subject) error {
	return f.err
}

func (f *fakeSubjectService) DeleteSubject(_ context.Context, id int64) error {
	return f.err
}

type fakeCourseService struct {
	lastCourse  *models.Course
	lastInlines []models.ModuleInline
	lastFilter  models.CourseFilter
	err         error
}

func (f *fakeCourseService) CreateCourse(_ context.Context, c *models.Course, inlines []models.ModuleInline) (*models.Course, error) {
	f.lastCourse, f.lastInlines = c, inlines
	if f.err != nil {
		return nil, f.err
	}
	c.ID = 10
	return c, nil
}

func (f *fakeCourseService) GetCourseByID(_ context.Context, id int64) (*models.Course, error) {
	if f.err != nil {
		return nil, f.err
	}
	return &models.Course{ID: id, Title: "Intro", Modules: []*models.Module{{ID: 1, CourseID: id, Title: "M1"}}}, nil
}

func (f *fakeCourseService) ListCourses(_ context.Context, filter models.CourseFilter) ([]*models.Course, int64, error) {
	f.lastFilter = filter
	if f.err != nil {
		return nil, 0, f.err
	}
	return []*models.Course{{ID: 3}, {ID: 2}, {ID: 1}}, 3, nil
}

func (f *fakeCourseService) UpdateCourse(_ context.Context, c *models.Course, inlines []models.ModuleInline) (*models.Course, error) {
	f.lastCourse, f.lastInlines = c, inlines
	return c, f.err
}

func (f *fakeCourseService) DeleteCourse(_ context.Context, id int64) error {
	return f.err
}

type fakeContentService struct {
	contents map[int64]*models.Content
	err      error
}

func (f *fakeContentService) CreateContent(_ context.Context, moduleID int64, kind string, objectID int64) (*models.Content, error) {
	if f.err != nil {
		return nil, f.err
	}
	return &models.Content{ID: 1, ModuleID: moduleID, Kind: models.Kind(kind), ObjectID: objectID}, nil
}

func (f *fakeContentService) GetContent(_ context.Context, id int64) (*models.Content, error) {
	if f.err != nil {
		return nil, f.err
	}
	return f.contents[id], nil
}

func (f *fakeContentService) ResolveContent(_ context.Context, id int64) (models.Item, error) {
	if f.err != nil {
		return nil, f.err
	}
	return f.contents[id].Item, nil
}

func (f *fakeContentService) ListContentsByModule(_ context.Context, moduleID int64) ([]*models.Content, error) {
	out := make([]*models.Content, 0, len(f.contents))
	for id := int64(1); id <= int64(len(f.contents)); id++ {
		out = append(out, f.contents[id])
	}
	return out, f.err
}

func (f *fakeContentService) DeleteContent(_ context.Context, id int64) error {
	return f.err
}

type fakeItemService struct {
	created  models.Item
	updated  models.Item
	upload   *multipart.FileHeader
	owner    int64
	title    string
	listKind models.Kind
	err      error
}

func (f *fakeItemService) CreateItem(_ context.Context, item models.Item) error {
	if f.err != nil {
		return f.err
	}
	item.Base().ID = 5
	f.created = item
	return nil
}

func (f *fakeItemService) CreateUpload(_ context.Context, kind models.Kind, ownerID int64, title string, upload *multipart.FileHeader) (models.Item, error) {
	if f.err != nil {
		return nil, f.err
	}
	f.owner, f.title, f.upload = ownerID, title, upload
	item := models.NewItem(kind)
	item.Base().ID = 6
	item.Base().OwnerID = ownerID
	item.Base().Title = title
	if fi, ok := item.(*models.File); ok {
		fi.File = "files/stored-" + upload.Filename
	}
	return item, nil
}

func (f *fakeItemService) GetItem(_ context.Context, kind models.Kind, id int64) (models.Item, error) {
	if f.err != nil {
		return nil, f.err
	}
	item := models.NewItem(kind)
	item.Base().ID = id
	return item, nil
}

func (f *fakeItemService) ListItems(_ context.Context, kind models.Kind, ownerID int64, page, size int) ([]models.Item, int64, error) {
	f.listKind, f.owner = kind, ownerID
	return []models.Item{}, 0, f.err
}

func (f *fakeItemService) UpdateItem(_ context.Context, item models.Item) error {
	f.updated = item
	return f.err
}

func (f *fakeItemService) UpdateUpload(_ context.Context, kind models.Kind, id int64, title string, upload *multipart.FileHeader) (models.Item, error) {
	f.title, f.upload = title, upload
	item := models.NewItem(kind)
	item.Base().ID = id
	item.Base().Title = title
	return item, f.err
}

func (f *fakeItemService) DeleteItem(_ context.Context, kind models.Kind, id int64) error {
	return f.err
}

func (f *fakeItemService) FileURL(path string) string {
	return "http://test/uploads/" + path
}
