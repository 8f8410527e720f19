package services

import (
	"errors"
	"time"

	"github.com/habitat-caracas/habitat/backend/internal/config"
	"github.com/habitat-caracas/habitat/backend/internal/models"
	"github.com/habitat-caracas/habitat/backend/internal/utils"
	"github.com/habitat-caracas/habitat/backend/pkg/response"
	"gorm.io/gorm"
)

type AuthService struct {
	db        *gorm.DB
	jwtConfig *config.JWTConfig
}

func NewAuthService(db *gorm.DB, jwtCfg *config.JWTConfig) *AuthService {
	return &AuthService{db: db, jwtConfig: jwtCfg}
}

type LoginRequest struct {
	Username string `json:"username" form:"username" binding:"required"`
	Password string `json:"password" form:"password" binding:"required"`
}

type LoginResult struct {
	AccessToken string       `json:"access_token"`
	TokenType   string       `json:"token_type"`
	ExpireAt    time.Time    `json:"expire_at"`
	User        *models.User `json:"user"`
}

// Login authenticates a user against the stored bcrypt hash and issues a
// bearer token carrying the user's identity and role.
func (s *AuthService) Login(req *LoginRequest) (*LoginResult, error) {
	var user models.User
	if err := s.db.Where("username = ?", req.Username).First(&user).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, response.NewUnauthorized("incorrect username or password")
		}
		return nil, err
	}

	if !utils.CheckPassword(req.Password, user.PasswordHash) {
		return nil, response.NewUnauthorized("incorrect username or password")
	}

	minutes := s.jwtConfig.ExpireMinutes
	token, err := utils.GenerateToken(user.ID, user.Username, user.Role, minutes)
	if err != nil {
		return nil, err
	}

	return &LoginResult{
		AccessToken: token,
		TokenType:   "bearer",
		ExpireAt:    time.Now().Add(time.Duration(minutes) * time.Minute),
		User:        &user,
	}, nil
}

// GetUserByID retrieves a user by ID.
func (s *AuthService) GetUserByID(id uint) (*models.User, error) {
	var user models.User
	if err := s.db.First(&user, id).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, response.NewNotFound("user not found")
		}
		return nil, err
	}
	return &user, nil
}

// CreateAdminIfNotExists seeds the default admin account on first boot.
func (s *AuthService) CreateAdminIfNotExists() error {
	var count int64
	s.db.Model(&models.User{}).Where("role = ?", models.RoleAdmin).Count(&count)
	if count > 0 {
		return nil
	}

	hashed, err := utils.HashPassword("Admin123!")
	if err != nil {
		return err
	}

	admin := models.User{
		Username:     "admin",
		Email:        "admin@habitat.local",
		PasswordHash: hashed,
		Role:         models.RoleAdmin,
	}
	return s.db.Create(&admin).Error
}
