package services

import (
	"context"
	stderrors "errors"
	"time"

	"golang.org/x/crypto/bcrypt"
	"gorm.io/gorm"

	"github.com/PrinceS45/SIH-CampusOne-sub000/config"
	"github.com/PrinceS45/SIH-CampusOne-sub000/constants"
	"github.com/PrinceS45/SIH-CampusOne-sub000/errors"
	"github.com/PrinceS45/SIH-CampusOne-sub000/models"
	"github.com/PrinceS45/SIH-CampusOne-sub000/services/logger"
	"github.com/PrinceS45/SIH-CampusOne-sub000/validator"
)

const accessTokenMinutes = 60 * 24

type AuthService struct {
	db     *gorm.DB
	logger logger.Logger
}

type AuthServiceOptions struct {
	DB     *gorm.DB
	Logger logger.Logger
}

func NewAuthService(opts AuthServiceOptions) *AuthService {
	return &AuthService{
		db:     opts.DB,
		logger: opts.Logger,
	}
}

// HashPassword hashes a plaintext password for storage.
func HashPassword(password string) (string, error) {
	hashed, err := bcrypt.GenerateFromPassword([]byte(password), bcrypt.DefaultCost)
	if err != nil {
		return "", err
	}
	return string(hashed), nil
}

// CheckPassword compares a stored hash against a plaintext candidate.
func CheckPassword(hashed, password string) bool {
	return bcrypt.CompareHashAndPassword([]byte(hashed), []byte(password)) == nil
}

// LoginResult carries the issued token and the authenticated user.
type LoginResult struct {
	AccessToken string       `json:"accessToken"`
	User        *models.User `json:"user"`
}

// Login authenticates by email and password and issues an access token.
func (s *AuthService) Login(ctx context.Context, email, password string) (*LoginResult, error) {
	var user models.User
	err := s.db.WithContext(ctx).Where("email = ?", email).First(&user).Error
	if err != nil {
		if stderrors.Is(err, gorm.ErrRecordNotFound) {
			return nil, errors.ErrInvalidPassword
		}
		return nil, err
	}

	if user.Status != constants.UserStatusActive {
		return nil, errors.ErrUserInactive
	}
	if !CheckPassword(user.Password, password) {
		return nil, errors.ErrInvalidPassword
	}

	token, err := GenerateToken(UserInfo{UserId: user.ID, Role: user.Role}, accessTokenMinutes)
	if err != nil {
		return nil, err
	}

	now := time.Now()
	if err := s.db.WithContext(ctx).Model(&models.User{}).Where("id = ?", user.ID).
		Update("last_login_at", now).Error; err != nil {
		s.logger.Error("could not stamp last login for user %d: %v", user.ID, err)
	}
	user.LastLoginAt = &now

	s.logger.Info("user %d logged in", user.ID)
	return &LoginResult{AccessToken: token, User: &user}, nil
}

// CreateUser registers a staff account. Admin only.
func (s *AuthService) CreateUser(ctx context.Context, user *models.User, password string) error {
	user.Password = password
	if err := validator.ValidateUser(user); err != nil {
		return err
	}

	var count int64
	if err := s.db.WithContext(ctx).Model(&models.User{}).
		Where("email = ?", user.Email).Count(&count).Error; err != nil {
		return err
	}
	if count > 0 {
		return errors.ErrUserAlreadyExists
	}

	hashed, err := HashPassword(password)
	if err != nil {
		return err
	}
	user.Password = hashed
	user.Status = constants.UserStatusActive

	return s.db.WithContext(ctx).Create(user).Error
}

// GetUser returns one staff account.
func (s *AuthService) GetUser(ctx context.Context, id uint) (*models.User, error) {
	var user models.User
	err := s.db.WithContext(ctx).First(&user, id).Error
	if err != nil {
		if stderrors.Is(err, gorm.ErrRecordNotFound) {
			return nil, errors.ErrUserNotFound
		}
		return nil, err
	}
	return &user, nil
}

// ChangePassword verifies the current password before setting a new one.
func (s *AuthService) ChangePassword(ctx context.Context, id uint, current, next string) error {
	user, err := s.GetUser(ctx, id)
	if err != nil {
		return err
	}
	if !CheckPassword(user.Password, current) {
		return errors.ErrInvalidPassword
	}
	if len(next) < 6 {
		return errors.NewAppError(errors.ErrCodeValidation, "Password must be at least 6 characters", nil)
	}

	hashed, err := HashPassword(next)
	if err != nil {
		return err
	}
	return s.db.WithContext(ctx).Model(&models.User{}).Where("id = ?", id).
		Update("password", hashed).Error
}

// SeedAdmin creates the bootstrap admin account when no user exists.
// Credentials come from ADMIN_EMAIL / ADMIN_PASSWORD.
func (s *AuthService) SeedAdmin(ctx context.Context) error {
	var count int64
	if err := s.db.WithContext(ctx).Model(&models.User{}).Count(&count).Error; err != nil {
		return err
	}
	if count > 0 {
		return nil
	}

	email := config.GetEnvDefault("ADMIN_EMAIL", "admin@campusone.local")
	password := config.GetEnv("ADMIN_PASSWORD")
	if password == "" {
		s.logger.Error("ADMIN_PASSWORD is not set, skipping admin seed")
		return nil
	}

	hashed, err := HashPassword(password)
	if err != nil {
		return err
	}
	admin := models.User{
		Name:     "Administrator",
		Email:    email,
		Password: hashed,
		Role:     constants.RoleAdmin,
		Status:   constants.UserStatusActive,
	}
	if err := s.db.WithContext(ctx).Create(&admin).Error; err != nil {
		return err
	}
	s.logger.Info("seeded admin account %s", email)
	return nil
}
