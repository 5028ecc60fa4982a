package service

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/rs/zerolog"

	"medialist/api/internal/apperr"
	"medialist/api/internal/ids"
	"medialist/api/internal/models"
	"medialist/api/internal/security"
	"medialist/api/internal/validate"
)

// Profile is the client-safe view of a user record. The password hash, the
// token set and the avatar bytes never appear here.
type Profile struct {
	ID         string            `json:"id"`
	Name       string            `json:"name"`
	Username   string            `json:"username"`
	Favourites []models.Favorite `json:"favs"`
	CreatedAt  time.Time         `json:"createdAt"`
	UpdatedAt  time.Time         `json:"updatedAt"`
	Code       string            `json:"code"`
}

type AccountService struct {
	users   UserStore
	favs    FavoriteStore
	auth    *Authenticator
	avatars AvatarCache
	log     zerolog.Logger
}

func NewAccountService(users UserStore, favs FavoriteStore, auth *Authenticator, avatars AvatarCache, log zerolog.Logger) *AccountService {
	return &AccountService{
		users:   users,
		favs:    favs,
		auth:    auth,
		avatars: avatars,
		log:     log,
	}
}

type RegisterInput struct {
	Name     string
	Username string
	Password string
}

// Register creates the account and opens its first session. The username
// collision is checked with an explicit pre-query on top of the store's
// uniqueness constraint.
func (s *AccountService) Register(ctx context.Context, input RegisterInput) (Profile, string, error) {
	username, err := validate.Username(input.Username)
	if err != nil {
		return Profile{}, "", err
	}

	if _, err := s.users.FindByUsername(ctx, username); err == nil {
		return Profile{}, "", apperr.ErrDuplicateUsername
	} else if !errors.Is(err, apperr.ErrUserNotFound) {
		return Profile{}, "", err
	}

	name, err := validate.Name(input.Name)
	if err != nil {
		return Profile{}, "", err
	}
	password, err := validate.Password(input.Password)
	if err != nil {
		return Profile{}, "", err
	}

	passwordHash, err := security.HashPassword(password)
	if err != nil {
		return Profile{}, "", fmt.Errorf("hash password: %w", err)
	}

	user := models.User{
		ID:           ids.New(),
		Name:         name,
		Username:     username,
		PasswordHash: passwordHash,
	}
	now := time.Now().UTC()
	user.CreatedAt = now
	user.UpdatedAt = now

	if err := s.users.Create(ctx, user); err != nil {
		return Profile{}, "", err
	}

	token, err := s.auth.IssueToken(ctx, user)
	if err != nil {
		return Profile{}, "", err
	}

	return s.profileOf(user, []models.Favorite{}), token, nil
}

// Login collapses unknown-username and wrong-password into the same error.
func (s *AccountService) Login(ctx context.Context, username string, password string) (Profile, string, error) {
	user, err := s.users.FindByUsername(ctx, username)
	if err != nil {
		if errors.Is(err, apperr.ErrUserNotFound) {
			return Profile{}, "", apperr.ErrLoginFailed
		}
		return Profile{}, "", err
	}

	ok, err := security.VerifyPassword(password, user.PasswordHash)
	if err != nil || !ok {
		return Profile{}, "", apperr.ErrLoginFailed
	}

	token, err := s.auth.IssueToken(ctx, user)
	if err != nil {
		return Profile{}, "", err
	}

	profile, err := s.Profile(ctx, user)
	if err != nil {
		return Profile{}, "", err
	}
	return profile, token, nil
}

func (s *AccountService) Logout(ctx context.Context, user models.User, token string) error {
	return s.auth.Revoke(ctx, user, token)
}

func (s *AccountService) LogoutAll(ctx context.Context, user models.User) error {
	return s.auth.RevokeAll(ctx, user)
}

func (s *AccountService) Profile(ctx context.Context, user models.User) (Profile, error) {
	favorites, err := s.favs.List(ctx, user.ID, "")
	if err != nil {
		return Profile{}, err
	}
	return s.profileOf(user, favorites), nil
}

var updatableFields = map[string]struct{}{
	"name":     {},
	"username": {},
	"password": {},
}

// Update applies a partial profile update. Any key outside the updatable set
// rejects the request wholesale; every supplied field is re-validated under
// the registration rules.
func (s *AccountService) Update(ctx context.Context, user models.User, fields map[string]any) (Profile, error) {
	for key := range fields {
		if _, ok := updatableFields[key]; !ok {
			return Profile{}, apperr.ErrUnknownField
		}
	}

	oldUsername := user.Username

	if raw, ok := fields["username"]; ok {
		value, ok := raw.(string)
		if !ok {
			return Profile{}, apperr.ErrValidation
		}
		username, err := validate.Username(value)
		if err != nil {
			return Profile{}, err
		}
		if username != user.Username {
			if other, err := s.users.FindByUsername(ctx, username); err == nil && other.ID != user.ID {
				return Profile{}, apperr.ErrDuplicateUsername
			} else if err != nil && !errors.Is(err, apperr.ErrUserNotFound) {
				return Profile{}, err
			}
		}
		user.Username = username
	}

	if raw, ok := fields["name"]; ok {
		value, ok := raw.(string)
		if !ok {
			return Profile{}, apperr.ErrValidation
		}
		name, err := validate.Name(value)
		if err != nil {
			return Profile{}, err
		}
		user.Name = name
	}

	if raw, ok := fields["password"]; ok {
		value, ok := raw.(string)
		if !ok {
			return Profile{}, apperr.ErrValidation
		}
		password, err := validate.Password(value)
		if err != nil {
			return Profile{}, err
		}
		passwordHash, err := security.HashPassword(password)
		if err != nil {
			return Profile{}, fmt.Errorf("hash password: %w", err)
		}
		user.PasswordHash = passwordHash
	}

	user.UpdatedAt = time.Now().UTC()
	if err := s.users.Update(ctx, user); err != nil {
		return Profile{}, err
	}

	if user.Username != oldUsername {
		s.avatars.Invalidate(ctx, oldUsername)
	}

	return s.Profile(ctx, user)
}

// Delete removes the account unconditionally. Tokens and favorites go with
// the row; the avatar cache entry is dropped eagerly.
func (s *AccountService) Delete(ctx context.Context, user models.User) error {
	if err := s.users.Delete(ctx, user.ID); err != nil {
		return err
	}
	s.avatars.Invalidate(ctx, user.Username)
	return nil
}

func (s *AccountService) profileOf(user models.User, favorites []models.Favorite) Profile {
	return Profile{
		ID:         user.ID,
		Name:       user.Name,
		Username:   user.Username,
		Favourites: favorites,
		CreatedAt:  user.CreatedAt,
		UpdatedAt:  user.UpdatedAt,
		Code:       "200",
	}
}
