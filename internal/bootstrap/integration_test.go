package bootstrap

import (
	"context"
	"os"
	"testing"
	"time"

	"github.com/jackc/pgx/v5/pgxpool"
	"github.com/rs/zerolog"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/yigit/educa/internal/app/models"
	"github.com/yigit/educa/internal/pkg/apperrors"
)

// integrationDeps migrates the database named by EDUCA_TEST_DATABASE_URL,
// empties it and wires the real repositories on top.
func integrationDeps(t *testing.T) *Dependencies {
	t.Helper()

	url := os.Getenv("EDUCA_TEST_DATABASE_URL")
	if url == "" {
		t.Skip("EDUCA_TEST_DATABASE_URL not set")
	}

	ctx, cancel := context.WithTimeout(context.Background(), 30*time.Second)
	defer cancel()

	pool, err := pgxpool.New(ctx, url)
	require.NoError(t, err)
	t.Cleanup(pool.Close)

	require.NoError(t, RunMigrations(ctx, pool, zerolog.Nop()))
	_, err = pool.Exec(ctx, `TRUNCATE contents, texts, files, images, videos, modules, courses, subjects, users RESTART IDENTITY CASCADE`)
	require.NoError(t, err)

	deps, err := BuildDependencies(testConfig(t), pool, zerolog.Nop())
	require.NoError(t, err)
	return deps
}

func TestIntegrationCatalogCascade(t *testing.T) {
	deps := integrationDeps(t)
	svc := deps.Services
	ctx := context.Background()

	owner, err := svc.AuthService.CreateUser(ctx, "lecturer", "lecturer@example.com", "secret-pass", true)
	require.NoError(t, err)

	subject := &models.Subject{Title: "Mathematics"}
	require.NoError(t, svc.SubjectService.CreateSubject(ctx, subject))
	assert.Equal(t, "mathematics", subject.Slug)

	course, err := svc.CourseService.CreateCourse(ctx, &models.Course{
		OwnerID:   owner.ID,
		SubjectID: subject.ID,
		Title:     "Linear Algebra",
		Overview:  "Vector spaces and linear maps.",
	}, []models.ModuleInline{{Title: "Vectors"}, {Title: "Matrices"}})
	require.NoError(t, err)
	assert.Equal(t, "linear-algebra", course.Slug)

	modules, err := svc.ModuleService.ListModulesByCourse(ctx, course.ID)
	require.NoError(t, err)
	require.Len(t, modules, 2)
	assert.Equal(t, "Vectors", modules[0].Title)

	text := &models.Text{ItemBase: models.ItemBase{OwnerID: owner.ID, Title: "Notes"}, Content: "Span and basis"}
	require.NoError(t, svc.ItemService.CreateItem(ctx, text))

	content, err := svc.ContentService.CreateContent(ctx, modules[0].ID, "text", text.ID)
	require.NoError(t, err)

	item, err := svc.ContentService.ResolveContent(ctx, content.ID)
	require.NoError(t, err)
	resolved, ok := item.(*models.Text)
	require.True(t, ok)
	assert.Equal(t, text.ID, resolved.ID)
	assert.Equal(t, "Span and basis", resolved.Content)
	assert.Equal(t, "Notes", resolved.Title)
	assert.Equal(t, owner.ID, resolved.OwnerID)
	assert.False(t, resolved.CreatedAt.IsZero())
	assert.True(t, text.CreatedAt.Equal(resolved.CreatedAt))
	assert.True(t, text.UpdatedAt.Equal(resolved.UpdatedAt))

	require.NoError(t, svc.SubjectService.DeleteSubject(ctx, subject.ID))

	_, err = svc.CourseService.GetCourseByID(ctx, course.ID)
	assert.ErrorIs(t, err, apperrors.ErrResourceNotFound)
	_, err = svc.ModuleService.GetModuleByID(ctx, modules[1].ID)
	assert.ErrorIs(t, err, apperrors.ErrResourceNotFound)
	_, err = svc.ContentService.GetContent(ctx, content.ID)
	assert.ErrorIs(t, err, apperrors.ErrResourceNotFound)

	// the item itself outlives its placement
	_, err = svc.ItemService.GetItem(ctx, models.KindText, text.ID)
	assert.NoError(t, err)
}

func TestIntegrationSubjectSlugIsUnique(t *testing.T) {
	deps := integrationDeps(t)
	ctx := context.Background()

	require.NoError(t, deps.Services.SubjectService.CreateSubject(ctx, &models.Subject{Title: "Music"}))

	err := deps.Services.SubjectService.CreateSubject(ctx, &models.Subject{Title: "Music!", Slug: "music"})
	assert.ErrorIs(t, err, apperrors.ErrSlugAlreadyExists)
}

func TestIntegrationItemsNewestFirst(t *testing.T) {
	deps := integrationDeps(t)
	svc := deps.Services
	ctx := context.Background()

	owner, err := svc.AuthService.CreateUser(ctx, "writer", "", "secret-pass", true)
	require.NoError(t, err)

	for _, title := range []string{"T1", "T2", "T3"} {
		text := &models.Text{ItemBase: models.ItemBase{OwnerID: owner.ID, Title: title}, Content: title}
		require.NoError(t, svc.ItemService.CreateItem(ctx, text))
	}

	items, total, err := svc.ItemService.ListItems(ctx, models.KindText, owner.ID, 1, 20)
	require.NoError(t, err)
	assert.Equal(t, int64(3), total)

	var titles []string
	for _, item := range items {
		titles = append(titles, item.Base().Title)
	}
	assert.Equal(t, []string{"T3", "T2", "T1"}, titles)
}
