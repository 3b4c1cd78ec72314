package service

import (
	"context"
	"fmt"
	"log"
	"time"

	"github.com/caloria/webadmin/internal/domain"
	"github.com/caloria/webadmin/internal/repository"
	"github.com/go-playground/validator/v10"
	"github.com/golang-jwt/jwt/v5"
	"golang.org/x/crypto/bcrypt"
)

const sessionTTL = 24 * time.Hour

// Claims is the decoded admin session.
type Claims struct {
	Sub   string
	Email string
	Role  string
}

// LoginForm is the admin login submission.
type LoginForm struct {
	Email    string `validate:"required,email"`
	Password string `validate:"required"`
}

// AuthService handles panel operator authentication and sessions.
type AuthService struct {
	jwtSecret     string
	adminEmail    string
	adminPassword string
	admins        *repository.AdminRepository
	validate      *validator.Validate
}

// NewAuthService creates a new AuthService.
func NewAuthService(jwtSecret, adminEmail, adminPassword string, admins *repository.AdminRepository) *AuthService {
	return &AuthService{
		jwtSecret:     jwtSecret,
		adminEmail:    adminEmail,
		adminPassword: adminPassword,
		admins:        admins,
		validate:      validator.New(),
	}
}

// SeedAdmin creates the default operator account if it doesn't exist.
func (s *AuthService) SeedAdmin(ctx context.Context) error {
	exists, err := s.admins.Exists(ctx, s.adminEmail)
	if err != nil {
		return fmt.Errorf("failed to check admin existence: %w", err)
	}
	if exists {
		log.Printf("admin account already exists (%s)", s.adminEmail)
		return nil
	}
	if s.adminPassword == "" {
		return fmt.Errorf("ADMIN_PASSWORD is required to seed the first admin account")
	}

	hashedPassword, err := bcrypt.GenerateFromPassword([]byte(s.adminPassword), bcrypt.DefaultCost)
	if err != nil {
		return fmt.Errorf("failed to hash admin password: %w", err)
	}

	admin := &repository.AdminUser{
		ID:        domain.NewID(),
		Email:     s.adminEmail,
		Password:  string(hashedPassword),
		Role:      "admin",
		CreatedAt: time.Now(),
	}
	if err := s.admins.Create(ctx, admin); err != nil {
		return fmt.Errorf("failed to create admin account: %w", err)
	}

	log.Printf("admin account created (%s)", s.adminEmail)
	return nil
}

// Login validates credentials and returns a signed session token.
func (s *AuthService) Login(ctx context.Context, form LoginForm) (string, error) {
	if err := s.validate.Struct(form); err != nil {
		return "", domain.ErrValidation("email and password are required")
	}

	admin, err := s.admins.FindByEmail(ctx, form.Email)
	if err != nil {
		return "", domain.ErrInternal("failed to find admin account", err)
	}
	if admin == nil {
		return "", domain.ErrUnauthorized("invalid credentials")
	}
	if err := bcrypt.CompareHashAndPassword([]byte(admin.Password), []byte(form.Password)); err != nil {
		return "", domain.ErrUnauthorized("invalid credentials")
	}

	return s.IssueSession(admin.ID, admin.Email, admin.Role)
}

// IssueSession signs a session token for an operator.
func (s *AuthService) IssueSession(id, email, role string) (string, error) {
	claims := jwt.MapClaims{
		"sub":   id,
		"email": email,
		"role":  role,
		"exp":   time.Now().Add(sessionTTL).Unix(),
		"iat":   time.Now().Unix(),
	}
	token := jwt.NewWithClaims(jwt.SigningMethodHS256, claims)
	signed, err := token.SignedString([]byte(s.jwtSecret))
	if err != nil {
		return "", domain.ErrInternal("failed to sign session token", err)
	}
	return signed, nil
}

// VerifyToken validates a session token and returns the claims.
func (s *AuthService) VerifyToken(tokenStr string) (*Claims, error) {
	token, err := jwt.Parse(tokenStr, func(t *jwt.Token) (interface{}, error) {
		if _, ok := t.Method.(*jwt.SigningMethodHMAC); !ok {
			return nil, fmt.Errorf("unexpected signing method: %v", t.Header["alg"])
		}
		return []byte(s.jwtSecret), nil
	})
	if err != nil {
		return nil, domain.ErrUnauthorized("invalid or expired session")
	}

	claims, ok := token.Claims.(jwt.MapClaims)
	if !ok || !token.Valid {
		return nil, domain.ErrUnauthorized("invalid session claims")
	}

	return &Claims{
		Sub:   getClaimString(claims, "sub"),
		Email: getClaimString(claims, "email"),
		Role:  getClaimString(claims, "role"),
	}, nil
}

func getClaimString(claims jwt.MapClaims, key string) string {
	if v, ok := claims[key].(string); ok {
		return v
	}
	return ""
}
