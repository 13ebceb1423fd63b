package services

import (
	"errors"
	"fmt"

	"github.com/baytrack/baytrack/database"
	"github.com/baytrack/baytrack/dto"
	"github.com/baytrack/baytrack/models"
	"github.com/baytrack/baytrack/utils"
	"golang.org/x/crypto/bcrypt"
)

// UserService handles admin-side user management
type UserService struct{}

// NewUserService creates a new user service instance
func NewUserService() *UserService {
	return &UserService{}
}

// ListUsers retrieves all user accounts
func (s *UserService) ListUsers() ([]models.User, error) {
	var users []models.User
	result := database.DB.Order("created_at desc").Find(&users)
	return users, result.Error
}

// CreateUser provisions an account with an assigned role. When no password
// is supplied a secure one is generated and returned alongside the user so
// it can be handed over once.
func (s *UserService) CreateUser(req dto.CreateUserRequest) (*models.User, string, error) {
	var existingUser models.User
	result := database.DB.Where("email = ?", req.Email).First(&existingUser)
	if result.RowsAffected > 0 {
		return nil, "", errors.New("email already registered")
	}

	password := req.Password
	generated := ""
	if password == "" {
		password = utils.GenerateSecurePassword(12)
		generated = password
	}

	hashedPassword, err := bcrypt.GenerateFromPassword([]byte(password), bcrypt.DefaultCost)
	if err != nil {
		return nil, "", err
	}

	user := models.User{
		Email:    req.Email,
		Password: string(hashedPassword),
		Username: req.Username,
		Name:     req.Name,
		Role:     models.Role(req.Role),
	}

	if err := database.DB.Create(&user).Error; err != nil {
		return nil, "", err
	}

	user.Password = ""
	return &user, generated, nil
}

// UpdateUserRole changes a user's role
func (s *UserService) UpdateUserRole(userID string, role models.Role) (*models.User, error) {
	var user models.User
	if err := database.DB.First(&user, "id = ?", userID).Error; err != nil {
		return nil, err
	}

	user.Role = role
	if err := database.DB.Save(&user).Error; err != nil {
		return nil, err
	}

	user.Password = ""
	return &user, nil
}

// DeleteUser removes a user account (soft delete). The requesting admin
// cannot delete themselves.
func (s *UserService) DeleteUser(userID string, requestingUserID string) error {
	if userID == requestingUserID {
		return fmt.Errorf("cannot delete your own account")
	}

	result := database.DB.Delete(&models.User{}, "id = ?", userID)
	if result.Error != nil {
		return result.Error
	}
	if result.RowsAffected == 0 {
		return fmt.Errorf("user not found")
	}
	return nil
}
