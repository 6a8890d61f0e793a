package repository

import (
	"errors"

	"brainstorm-api/internal/models"

	"gorm.io/gorm"
)

var (
	// ErrUsernameTaken indicates a register attempt with a username
	// that already exists.
	ErrUsernameTaken = errors.New("username already taken")

	// ErrUserNotFound indicates a lookup for an unknown username.
	ErrUserNotFound = errors.New("user not found")
)

// UserRepository is the narrow store surface the auth handlers need.
type UserRepository interface {
	Create(user *models.User) error
	FindByUsername(username string) (*models.User, error)
}

type userRepository struct {
	db *gorm.DB
}

func NewUserRepository(db *gorm.DB) UserRepository {
	return &userRepository{db: db}
}

func (r *userRepository) Create(user *models.User) error {
	if err := r.db.Create(user).Error; err != nil {
		if errors.Is(err, gorm.ErrDuplicatedKey) {
			return ErrUsernameTaken
		}
		return err
	}
	return nil
}

func (r *userRepository) FindByUsername(username string) (*models.User, error) {
	var user models.User
	if err := r.db.Where("username = ?", username).First(&user).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ErrUserNotFound
		}
		return nil, err
	}
	return &user, nil
}
