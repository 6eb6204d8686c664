package services

import (
	"errors"
	"fmt"

	"github.com/ashurar25/FoodOrder-sub000/internal/models"
	log "github.com/sirupsen/logrus"
	"gorm.io/gorm"
)

var (
	ErrUserExists   = errors.New("user_already_exists")
	ErrUserNotFound = errors.New("user_not_found")
)

type UserService interface {
	CreateUser(user *models.User) error
	GetUserByEmail(email string) (*models.User, error)
	GetUserByID(id string) (*models.User, error)
	ListUsers() ([]models.User, error)
	UpdateProfile(id string, name string) (*models.User, error)
	UpdateRole(id string, role string) (*models.User, error)
	// DeleteUser removes a user, recording the acting admin in the audit log
	DeleteUser(id, actorID string) error
}

type userService struct {
	db *gorm.DB
}

func NewUserService(db *gorm.DB) UserService {
	return &userService{db: db}
}

func (s *userService) CreateUser(user *models.User) error {
	var existing models.User
	if err := s.db.Where("email = ?", user.Email).First(&existing).Error; err == nil {
		return ErrUserExists
	}

	return s.db.Create(user).Error
}

func (s *userService) GetUserByEmail(email string) (*models.User, error) {
	var user models.User
	if err := s.db.Where("email = ?", email).First(&user).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ErrUserNotFound
		}
		return nil, err
	}
	return &user, nil
}

func (s *userService) GetUserByID(id string) (*models.User, error) {
	var user models.User
	if err := s.db.Where("id = ?", id).First(&user).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ErrUserNotFound
		}
		return nil, err
	}
	return &user, nil
}

func (s *userService) ListUsers() ([]models.User, error) {
	var users []models.User
	if err := s.db.Order("created_at asc").Find(&users).Error; err != nil {
		return nil, err
	}
	return users, nil
}

func (s *userService) UpdateProfile(id string, name string) (*models.User, error) {
	user, err := s.GetUserByID(id)
	if err != nil {
		return nil, err
	}

	user.Name = name
	if err := s.db.Save(user).Error; err != nil {
		return nil, err
	}
	return user, nil
}

func (s *userService) UpdateRole(id string, role string) (*models.User, error) {
	if role != models.RoleCustomer && role != models.RoleAdmin {
		return nil, errors.New("invalid_role")
	}

	user, err := s.GetUserByID(id)
	if err != nil {
		return nil, err
	}

	user.Role = role
	if err := s.db.Save(user).Error; err != nil {
		return nil, err
	}
	return user, nil
}

func (s *userService) DeleteUser(id, actorID string) error {
	err := s.db.Transaction(func(tx *gorm.DB) error {
		result := tx.Where("id = ?", id).Delete(&models.User{})
		if result.Error != nil {
			return result.Error
		}
		if result.RowsAffected == 0 {
			return ErrUserNotFound
		}

		audit := models.AuditLog{
			ActorID: actorID,
			Action:  "users.delete",
			Detail:  fmt.Sprintf("deleted user %s", id),
		}
		return tx.Create(&audit).Error
	})
	if err != nil {
		return err
	}

	log.WithFields(log.Fields{"user_id": id, "actor_id": actorID}).Warn("User deleted by administrator")
	return nil
}
