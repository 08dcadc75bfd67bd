package services

import (
	"context"
	"io"
	"mime/multipart"
	"sort"
	"time"

	"github.com/yigit/educa/internal/app/models"
	"github.com/yigit/educa/internal/app/repositories"
	"github.com/yigit/educa/internal/pkg/apperrors"
)

type fakeUsers struct {
	users map[int64]*models.User
}

func newFakeUsers(users ...*models.User) *fakeUsers {
	f := &fakeUsers{users: map[int64]*models.User{}}
	for _, u := range users {
		f.users[u.ID] = u
	}
	return f
}

func (f *fakeUsers) CreateUser(_ context.Context, u *models.User) error {
	for _, existing := range f.users {
		if existing.Username == u.Username {
			return apperrors.ErrUsernameTaken
		}
	}
	u.ID = int64(len(f.users) + 1)
	f.users[u.ID] = u
	return nil
}

func (f *fakeUsers) GetUserByID(_ context.Context, id int64) (*models.User, error) {
	if u, ok := f.users[id]; ok {
		return u, nil
	}
	return nil, apperrors.NotFound(apperrors.ErrUserNotFound)
}

func (f *fakeUsers) GetUserByUsername(_ context.Context, username string) (*models.User, error) {
	for _, u := range f.users {
		if u.Username == username {
			return u, nil
		}
	}
	return nil, apperrors.NotFound(apperrors.ErrUserNotFound)
}

func (f *fakeUsers) UserExists(_ context.Context, id int64) (bool, error) {
	_, ok := f.users[id]
	return ok, nil
}

func (f *fakeUsers) UpdatePassword(_ context.Context, id int64, hash string) error {
	u, ok := f.users[id]
	if !ok {
		return apperrors.NotFound(apperrors.ErrUserNotFound)
	}
	u.Password = hash
	return nil
}

type fakeSubjects struct {
	rows   map[int64]*models.Subject
	nextID int64
}

func newFakeSubjects(subjects ...*models.Subject) *fakeSubjects {
	f := &fakeSubjects{rows: map[int64]*models.Subject{}}
	for _, s := range subjects {
		f.rows[s.ID] = s
		if s.ID > f.nextID {
			f.nextID = s.ID
		}
	}
	return f
}

func (f *fakeSubjects) slugTaken(slug string, except int64) bool {
	for _, s := range f.rows {
		if s.Slug == slug && s.ID != except {
			return true
		}
	}
	return false
}

func (f *fakeSubjects) CreateSubject(_ context.Context, s *models.Subject) error {
	if f.slugTaken(s.Slug, 0) {
		return apperrors.ErrSlugAlreadyExists
	}
	f.nextID++
	s.ID = f.nextID
	cp := *s
	f.rows[s.ID] = &cp
	return nil
}

func (f *fakeSubjects) GetSubjectByID(_ context.Context, id int64) (*models.Subject, error) {
	if s, ok := f.rows[id]; ok {
		return s, nil
	}
	return nil, apperrors.NotFound(apperrors.ErrSubjectNotFound)
}

func (f *fakeSubjects) ListSubjects(_ context.Context, _ string, _, _ int) ([]*models.Subject, int64, error) {
	out := []*models.Subject{}
	for _, s := range f.rows {
		out = append(out, s)
	}
	sort.Slice(out, func(i, j int) bool { return out[i].Title < out[j].Title })
	return out, int64(len(out)), nil
}

func (f *fakeSubjects) UpdateSubject(_ context.Context, s *models.Subject) error {
	if _, ok := f.rows[s.ID]; !ok {
		return apperrors.NotFound(apperrors.ErrSubjectNotFound)
	}
	if f.slugTaken(s.Slug, s.ID) {
		return apperrors.ErrSlugAlreadyExists
	}
	cp := *s
	f.rows[s.ID] = &cp
	return nil
}

func (f *fakeSubjects) DeleteSubject(_ context.Context, id int64) error {
	if _, ok := f.rows[id]; !ok {
		return apperrors.NotFound(apperrors.ErrSubjectNotFound)
	}
	delete(f.rows, id)
	return nil
}

func (f *fakeSubjects) SubjectExists(_ context.Context, id int64) (bool, error) {
	_, ok := f.rows[id]
	return ok, nil
}

type fakeCourses struct {
	rows        map[int64]*models.Course
	lastInlines []models.ModuleInline
	lastFilter  models.CourseFilter
	nextID      int64
}

func newFakeCourses() *fakeCourses {
	return &fakeCourses{rows: map[int64]*models.Course{}}
}

func (f *fakeCourses) CreateCourse(_ context.Context, c *models.Course, inlines []models.ModuleInline) error {
	for _, existing := range f.rows {
		if existing.Slug == c.Slug {
			return apperrors.ErrSlugAlreadyExists
		}
	}
	f.nextID++
	c.ID = f.nextID
	c.CreatedAt = time.Now()
	f.lastInlines = inlines
	cp := *c
	f.rows[c.ID] = &cp
	return nil
}

func (f *fakeCourses) UpdateCourse(_ context.Context, c *models.Course, inlines []models.ModuleInline) error {
	existing, ok := f.rows[c.ID]
	if !ok {
		return apperrors.NotFound(apperrors.ErrCourseNotFound)
	}
	c.OwnerID = existing.OwnerID
	c.CreatedAt = existing.CreatedAt
	f.lastInlines = inlines
	cp := *c
	f.rows[c.ID] = &cp
	return nil
}

func (f *fakeCourses) GetCourseByID(_ context.Context, id int64) (*models.Course, error) {
	if c, ok := f.rows[id]; ok {
		return c, nil
	}
	return nil, apperrors.NotFound(apperrors.ErrCourseNotFound)
}

func (f *fakeCourses) ListCourses(_ context.Context, filter models.CourseFilter) ([]*models.Course, int64, error) {
	f.lastFilter = filter
	out := []*models.Course{}
	for _, c := range f.rows {
		out = append(out, c)
	}
	return out, int64(len(out)), nil
}

func (f *fakeCourses) DeleteCourse(_ context.Context, id int64) error {
	if _, ok := f.rows[id]; !ok {
		return apperrors.NotFound(apperrors.ErrCourseNotFound)
	}
	delete(f.rows, id)
	return nil
}

func (f *fakeCourses) CourseExists(_ context.Context, id int64) (bool, error) {
	_, ok := f.rows[id]
	return ok, nil
}

type fakeModules struct {
	rows map[int64]*models.Module
}

func (f *fakeModules) CreateModule(_ context.Context, m *models.Module) error {
	m.ID = int64(len(f.rows) + 1)
	f.rows[m.ID] = m
	return nil
}

func (f *fakeModules) GetModuleByID(_ context.Context, id int64) (*models.Module, error) {
	if m, ok := f.rows[id]; ok {
		return m, nil
	}
	return nil, apperrors.NotFound(apperrors.ErrModuleNotFound)
}

func (f *fakeModules) ListModulesByCourse(_ context.Context, courseID int64) ([]*models.Module, error) {
	out := []*models.Module{}
	for _, m := range f.rows {
		if m.CourseID == courseID {
			out = append(out, m)
		}
	}
	sort.Slice(out, func(i, j int) bool { return out[i].ID < out[j].ID })
	return out, nil
}

func (f *fakeModules) UpdateModule(_ context.Context, m *models.Module) error {
	existing, ok := f.rows[m.ID]
	if !ok {
		return apperrors.NotFound(apperrors.ErrModuleNotFound)
	}
	m.CourseID = existing.CourseID
	f.rows[m.ID] = m
	return nil
}

func (f *fakeModules) DeleteModule(_ context.Context, id int64) error {
	if _, ok := f.rows[id]; !ok {
		return apperrors.NotFound(apperrors.ErrModuleNotFound)
	}
	delete(f.rows, id)
	return nil
}

func (f *fakeModules) ModuleExists(_ context.Context, id int64) (bool, error) {
	_, ok := f.rows[id]
	return ok, nil
}

type fakeContents struct {
	rows []*models.Content
}

func (f *fakeContents) CreateContent(_ context.Context, c *models.Content) error {
	c.ID = int64(len(f.rows) + 1)
	f.rows = append(f.rows, c)
	return nil
}

func (f *fakeContents) GetContentByID(_ context.Context, id int64) (*models.Content, error) {
	for _, c := range f.rows {
		if c.ID == id {
			cp := *c
			return &cp, nil
		}
	}
	return nil, apperrors.NotFound(apperrors.ErrContentNotFound)
}

func (f *fakeContents) ListContentsByModule(_ context.Context, moduleID int64) ([]*models.Content, error) {
	out := []*models.Content{}
	for _, c := range f.rows {
		if c.ModuleID == moduleID {
			cp := *c
			out = append(out, &cp)
		}
	}
	return out, nil
}

func (f *fakeContents) DeleteContent(_ context.Context, id int64) error {
	for i, c := range f.rows {
		if c.ID == id {
			f.rows = append(f.rows[:i], f.rows[i+1:]...)
			return nil
		}
	}
	return apperrors.NotFound(apperrors.ErrContentNotFound)
}

type fakeItemStore struct {
	kind  models.Kind
	items map[int64]models.Item
	next  int64
}

var _ repositories.ItemStore = (*fakeItemStore)(nil)

func (f *fakeItemStore) Kind() models.Kind { return f.kind }

func (f *fakeItemStore) Create(_ context.Context, item models.Item) error {
	if item.Kind() != f.kind {
		return apperrors.ErrInvalidContentKind
	}
	f.next++
	b := item.Base()
	b.ID = f.next
	b.CreatedAt = time.Now()
	b.UpdatedAt = b.CreatedAt
	f.items[b.ID] = item
	return nil
}

func (f *fakeItemStore) GetByID(_ context.Context, id int64) (models.Item, error) {
	if it, ok := f.items[id]; ok {
		return it, nil
	}
	return nil, apperrors.NotFound(apperrors.ErrItemNotFound)
}

func (f *fakeItemStore) Update(_ context.Context, item models.Item) error {
	b := item.Base()
	if _, ok := f.items[b.ID]; !ok {
		return apperrors.NotFound(apperrors.ErrItemNotFound)
	}
	b.UpdatedAt = time.Now()
	f.items[b.ID] = item
	return nil
}

func (f *fakeItemStore) Delete(_ context.Context, id int64) error {
	if _, ok := f.items[id]; !ok {
		return apperrors.NotFound(apperrors.ErrItemNotFound)
	}
	delete(f.items, id)
	return nil
}

func (f *fakeItemStore) Exists(_ context.Context, id int64) (bool, error) {
	_, ok := f.items[id]
	return ok, nil
}

func (f *fakeItemStore) ListByOwner(_ context.Context, ownerID int64, _, _ int) ([]models.Item, int64, error) {
	out := []models.Item{}
	for _, it := range f.items {
		if it.Base().OwnerID == ownerID {
			out = append(out, it)
		}
	}
	return out, int64(len(out)), nil
}

func newFakeRegistry() (*ContentRegistry, map[models.Kind]*fakeItemStore) {
	fakes := map[models.Kind]*fakeItemStore{}
	stores := map[models.Kind]repositories.ItemStore{}
	for _, k := range models.Kinds {
		f := &fakeItemStore{kind: k, items: map[int64]models.Item{}}
		fakes[k] = f
		stores[k] = f
	}
	return NewContentRegistry(stores), fakes
}

type fakeStorage struct {
	saved   map[string]bool
	deleted []string
}

func newFakeStorage() *fakeStorage {
	return &fakeStorage{saved: map[string]bool{}}
}

func (f *fakeStorage) Save(_ io.Reader, filename, dir string) (string, error) {
	p := dir + "/stored-" + filename
	f.saved[p] = true
	return p, nil
}

func (f *fakeStorage) SaveUpload(fh *multipart.FileHeader, dir string) (string, error) {
	return f.Save(nil, fh.Filename, dir)
}

func (f *fakeStorage) Delete(p string) error {
	delete(f.saved, p)
	f.deleted = append(f.deleted, p)
	return nil
}

func (f *fakeStorage) URL(p string) string {
	return "http://localhost/uploads/" + p
}
