package services

import (
	"golang.org/x/crypto/bcrypt"
	"gorm.io/gorm"

	"github.com/finboard/finboard/internal/models"
)

// UserService defines the interface for user-related operations
type UserService interface {
	GetUsers() ([]models.User, error)
	GetUserByUsername(username string) (models.User, error)
	CreateUser(user models.User) (models.User, error)
}

type userService struct {
	db *gorm.DB
}

// NewUserService creates a new user service
func NewUserService(db *gorm.DB) UserService {
	return &userService{db: db}
}

// GetUsers returns all users, excluding credential fields.
func (s *userService) GetUsers() ([]models.User, error) {
	var users []models.User
	result := s.db.Select("id, username, email, role").Find(&users)
	return users, result.Error
}

// GetUserByUsername returns a user by username
func (s *userService) GetUserByUsername(username string) (models.User, error) {
	var user models.User
	result := s.db.Where("username = ?", username).First(&user)
	return user, result.Error
}

// CreateUser hashes the plaintext password and stores the user.
func (s *userService) CreateUser(user models.User) (models.User, error) {
	if user.Password != "" {
		hashed, err := bcrypt.GenerateFromPassword([]byte(user.Password), bcrypt.DefaultCost)
		if err != nil {
			return models.User{}, err
		}
		user.HashedPassword = string(hashed)
		user.Password = ""
	}
	if err := s.db.Create(&user).Error; err != nil {
		return models.User{}, translateStoreError(err)
	}
	return user, nil
}
