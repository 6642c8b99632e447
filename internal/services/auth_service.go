package services

import (
	"errors"
	"strings"
	"time"

	"github.com/dfarina/communio/internal/models"
	"golang.org/x/crypto/bcrypt"
	"gorm.io/gorm"
)

type AuthUserRepository interface {
	CountUsers() (int64, error)
	FindByID(userID uint) (models.User, error)
	FindByNormalizedEmail(email string) (models.User, error)
	ExistsOtherWithEmail(userID uint, email string) (bool, error)
	Create(user *models.User) error
	UpdateByID(userID uint, updates map[string]any) error
	SetAdmin(userID uint, isAdmin bool) error
}

type AuthService struct {
	users AuthUserRepository
}

func NewAuthService(users AuthUserRepository) *AuthService {
	return &AuthService{users: users}
}

// ProfileUpdate carries the optional fields of a self-update. Nil fields keep
// their stored value.
type ProfileUpdate struct {
	Name     *string
	Email    *string
	Password *string
}

// Register creates a user. The admin flag is never taken from the caller: the
// first account ever created becomes the administrator, every later one starts
// as a regular user and must be promoted through SetAdmin.
func (service *AuthService) Register(name string, email string, password string) (models.User, error) {
	email = NormalizeEmail(email)
	if email == "" || strings.TrimSpace(password) == "" {
		return models.User{}, ErrMissingCredentials
	}

	passwordHash, err := bcrypt.GenerateFromPassword([]byte(password), bcrypt.DefaultCost)
	if err != nil {
		return models.User{}, err
	}

	existingUsers, err := service.users.CountUsers()
	if err != nil {
		return models.User{}, err
	}

	user := models.User{
		Name:         strings.TrimSpace(name),
		Email:        email,
		PasswordHash: string(passwordHash),
		IsAdmin:      existingUsers == 0,
		CreatedAt:    time.Now(),
	}
	if err := service.users.Create(&user); err != nil {
		// Insert failures are not told apart here: the unique email
		// constraint is by far the common cause.
		return models.User{}, ErrEmailTaken
	}
	return user, nil
}

func (service *AuthService) Login(email string, password string) (models.User, error) {
	user, err := service.users.FindByNormalizedEmail(NormalizeEmail(email))
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return models.User{}, ErrUserNotFound
		}
		return models.User{}, err
	}

	if err := bcrypt.CompareHashAndPassword([]byte(user.PasswordHash), []byte(password)); err != nil {
		return models.User{}, ErrInvalidCredentials
	}
	return user, nil
}

// UpdateProfile applies a partial self-update. A new email must not belong to
// another user; a new password is re-hashed before storage.
func (service *AuthService) UpdateProfile(userID uint, update ProfileUpdate) error {
	if _, err := service.users.FindByID(userID); err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return ErrUserNotFound
		}
		return err
	}

	updates := make(map[string]any)
	if update.Name != nil {
		updates["name"] = strings.TrimSpace(*update.Name)
	}
	if update.Email != nil {
		email := NormalizeEmail(*update.Email)
		if email == "" {
			return ErrMissingCredentials
		}
		taken, err := service.users.ExistsOtherWithEmail(userID, email)
		if err != nil {
			return err
		}
		if taken {
			return ErrEmailTaken
		}
		updates["email"] = email
	}
	if update.Password != nil && strings.TrimSpace(*update.Password) != "" {
		passwordHash, err := bcrypt.GenerateFromPassword([]byte(*update.Password), bcrypt.DefaultCost)
		if err != nil {
			return err
		}
		updates["password_hash"] = string(passwordHash)
	}
	if len(updates) == 0 {
		return nil
	}
	return service.users.UpdateByID(userID, updates)
}

func (service *AuthService) SetAdmin(userID uint, isAdmin bool) error {
	if err := service.users.SetAdmin(userID, isAdmin); err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return ErrUserNotFound
		}
		return err
	}
	return nil
}

func NormalizeEmail(raw string) string {
	return strings.ToLower(strings.TrimSpace(raw))
}
