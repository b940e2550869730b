package services

import (
	"errors"
	"fmt"
	"time"

	"github.com/google/uuid"
	"github.com/sirupsen/logrus"

	"github.com/projectpulse/projectpulse-api/internal/models"
	"github.com/projectpulse/projectpulse-api/internal/utils"
)

// AuthService provides methods for user authentication and JWT operations
type AuthService struct {
	userService         *UserService
	jwtSecret           []byte
	passwordResetSecret []byte
}

// NewAuthService creates a new AuthService
func NewAuthService(us *UserService, jwtSecret, passwordResetSecret []byte) *AuthService {
	return &AuthService{
		userService:         us,
		jwtSecret:           jwtSecret,
		passwordResetSecret: passwordResetSecret,
	}
}

// RegisterUser handles user registration. New accounts always start with the
// "user" role; promotion to admin goes through the role endpoint.
func (s *AuthService) RegisterUser(req models.RegisterRequest) (*models.User, error) {
	existingUser, _ := s.userService.GetUserByEmail(req.Email)
	if existingUser != nil {
		return nil, errors.New("email already registered")
	}

	hashedPassword, err := utils.HashPassword(req.Password)
	if err != nil {
		return nil, errors.New("failed to hash password")
	}

	newUser := &models.User{
		UID:      uuid.NewString(),
		Name:     req.Name,
		Email:    req.Email,
		Password: hashedPassword,
		Role:     models.RoleUser,
	}

	user, err := s.userService.CreateUser(newUser)
	if err != nil {
		return nil, err
	}

	emailData := struct {
		Name string
		Year int
	}{
		Name: user.Name,
		Year: time.Now().Year(),
	}
	go utils.SendEmail("welcome", "Welcome to ProjectPulse", req.Email, emailData)

	return user, nil
}

// LoginUser handles user login and JWT generation
func (s *AuthService) LoginUser(req models.LoginRequest) (*models.LoginResponse, error) {
	user, err := s.userService.GetUserByEmail(req.Email)
	if err != nil {
		return nil, errors.New("invalid credentials")
	}

	if !utils.CheckPasswordHash(req.Password, user.Password) {
		return nil, errors.New("invalid credentials")
	}

	tokenString, err := utils.GenerateToken(user.ID, user.UID, user.Email, string(user.Role), s.jwtSecret)
	if err != nil {
		return nil, errors.New("failed to generate token")
	}

	return &models.LoginResponse{
		Message: "Login successful",
		Token:   tokenString,
		UID:     user.UID,
		Name:    user.Name,
		Role:    user.Role,
	}, nil
}

// ForgotPassword generates a password reset token and emails it to the user
func (s *AuthService) ForgotPassword(email string) error {
	user, err := s.userService.GetUserByEmail(email)
	if err != nil {
		// Don't reveal whether the email exists.
		logrus.WithField("email", email).Debug("password reset requested for unknown email")
		return nil
	}

	resetToken, err := utils.GeneratePasswordResetToken(user.ID, s.passwordResetSecret)
	if err != nil {
		return errors.New("failed to generate reset token")
	}

	emailData := struct {
		Name      string
		ResetLink string
		Year      int
	}{
		Name:      user.Name,
		ResetLink: fmt.Sprintf("http://localhost:3000/reset-password?token=%s", resetToken),
		Year:      time.Now().Year(),
	}
	go utils.SendEmail("password_reset", "Reset your ProjectPulse password", email, emailData)

	return nil
}

// ResetPassword validates a reset token and updates the user's password
func (s *AuthService) ResetPassword(token, newPassword string) error {
	userID, err := utils.ValidatePasswordResetToken(token, s.passwordResetSecret)
	if err != nil {
		return errors.New("invalid or expired reset token")
	}

	hashedPassword, err := utils.HashPassword(newPassword)
	if err != nil {
		return errors.New("failed to hash password")
	}

	return s.userService.UpdatePassword(userID, hashedPassword)
}

// AuthenticatedUserContext resolves the full auth context for a token's user,
// including the permission set of their role. Used by the middleware on every
// protected request.
func (s *AuthService) AuthenticatedUserContext(uid string) (*models.AuthContext, error) {
	user, err := s.userService.GetUserByUID(uid)
	if err != nil {
		return nil, err
	}

	role, err := s.userService.GetRoleByName(user.Role)
	if err != nil {
		return nil, err
	}

	return &models.AuthContext{
		UserID:      user.ID,
		UID:         user.UID,
		Name:        user.Name,
		Role:        user.Role,
		Permissions: role.Permissions,
	}, nil
}
