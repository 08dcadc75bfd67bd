package seed

import (
	"context"
	"errors"

	"github.com/rs/zerolog"
	appModels "github.com/yigit/educa/internal/app/models"
	"github.com/yigit/educa/internal/pkg/apperrors"
)

// DefaultSubjects are created when missing
var DefaultSubjects = []string{"Mathematics", "Music", "Physics", "Programming"}

// SubjectCreator creates subjects, deriving empty slugs from titles
type SubjectCreator interface {
	CreateSubject(ctx context.Context, subject *appModels.Subject) error
}

// UserCreator creates users with a hashed password
type UserCreator interface {
	CreateUser(ctx context.Context, username, email, password string, isStaff bool) (*appModels.User, error)
}

// Admin describes the staff account to create. An empty password skips it.
type Admin struct {
	Username string
	Email    string
	Password string
}

// CreateDefaultData creates the default subjects and the admin user if they
// don't exist. It keeps going after a failure and returns every error joined.
func CreateDefaultData(ctx context.Context, subjects SubjectCreator, users UserCreator, admin Admin, lgr zerolog.Logger) error {
	lgr.Info().Msg("Checking/Creating default data (Subjects/Admin)...")
	var finalErr error

	for _, title := range DefaultSubjects {
		subject := &appModels.Subject{Title: title}
		err := subjects.CreateSubject(ctx, subject)
		switch {
		case err == nil:
			lgr.Info().Str("slug", subject.Slug).Msg("Default subject created")
		case errors.Is(err, apperrors.ErrSlugAlreadyExists):
			lgr.Debug().Str("title", title).Msg("Subject already exists, skipping")
		default:
			lgr.Error().Err(err).Str("title", title).Msg("Error creating default subject")
			finalErr = errors.Join(finalErr, err)
		}
	}

	if admin.Password == "" {
		lgr.Info().Msg("No admin password configured, skipping admin user")
	} else {
		user, err := users.CreateUser(ctx, admin.Username, admin.Email, admin.Password, true)
		switch {
		case err == nil:
			lgr.Info().Int64("adminID", user.ID).Msg("Default admin user created successfully")
		case errors.Is(err, apperrors.ErrUsernameTaken):
			lgr.Info().Msg("Admin user already exists, skipping creation")
		default:
			lgr.Error().Err(err).Msg("Error creating admin user")
			finalErr = errors.Join(finalErr, err)
		}
	}

	lgr.Info().Msg("Default data check/creation finished.")
	return finalErr
}
