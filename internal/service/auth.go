package service

import (
	"errors"
	"fmt"
	"strconv"
	"time"

	"github.com/golang-jwt/jwt/v5"
	"golang.org/x/crypto/bcrypt"
	"gorm.io/gorm"

	"github.com/jawhara/restaurant-backend/internal/middleware"
	"github.com/jawhara/restaurant-backend/internal/models"
)

var (
	ErrEmailTaken         = errors.New("email already registered")
	ErrInvalidCredentials = errors.New("invalid credentials")
)

// AuthService registers customers and issues JWT tokens. Passwords are
// stored as bcrypt hashes, never in clear text.
type AuthService struct {
	db        *gorm.DB
	jwtSecret string
}

func NewAuthService(db *gorm.DB, jwtSecret string) *AuthService {
	return &AuthService{
		db:        db,
		jwtSecret: jwtSecret,
	}
}

// RegisterInput carries the fields accepted at registration.
type RegisterInput struct {
	FirstName       string
	LastName        string
	Email           string
	Username        string
	Phone           string
	Address         string
	Password        string
	Age             *int
	HealthCondition string
}

// Register creates a customer and returns a signed token for it.
func (s *AuthService) Register(in RegisterInput) (string, *models.Customer, error) {
	var existing models.Customer
	if err := s.db.Where("email = ?", in.Email).First(&existing).Error; err == nil {
		return "", nil, ErrEmailTaken
	}

	hashed, err := bcrypt.GenerateFromPassword([]byte(in.Password), bcrypt.DefaultCost)
	if err != nil {
		return "", nil, err
	}

	customer := models.Customer{
		FirstName:       in.FirstName,
		LastName:        in.LastName,
		Email:           in.Email,
		Username:        in.Username,
		Phone:           in.Phone,
		Address:         in.Address,
		PasswordHash:    string(hashed),
		Age:             in.Age,
		HealthCondition: in.HealthCondition,
	}
	if err := s.db.Create(&customer).Error; err != nil {
		return "", nil, err
	}

	token, err := s.generateToken(customer.ID)
	if err != nil {
		return "", nil, err
	}
	return token, &customer, nil
}

// Login checks the credentials and returns a token with the customer row.
func (s *AuthService) Login(email, password string) (string, *models.Customer, error) {
	var customer models.Customer
	if err := s.db.Where("email = ?", email).First(&customer).Error; err != nil {
		return "", nil, ErrInvalidCredentials
	}

	if err := bcrypt.CompareHashAndPassword([]byte(customer.PasswordHash), []byte(password)); err != nil {
		return "", nil, ErrInvalidCredentials
	}

	token, err := s.generateToken(customer.ID)
	if err != nil {
		return "", nil, err
	}
	return token, &customer, nil
}

func (s *AuthService) generateToken(customerID uint) (string, error) {
	claims := jwt.MapClaims{
		"customer_id": strconv.FormatUint(uint64(customerID), 10),
		"exp":         time.Now().Add(24 * time.Hour).Unix(),
	}

	token := jwt.NewWithClaims(jwt.SigningMethodHS256, claims)
	return token.SignedString([]byte(s.jwtSecret))
}

// ValidateToken parses and verifies a token, returning its claims.
func (s *AuthService) ValidateToken(tokenString string) (*middleware.TokenClaims, error) {
	token, err := jwt.Parse(tokenString, func(token *jwt.Token) (interface{}, error) {
		if _, ok := token.Method.(*jwt.SigningMethodHMAC); !ok {
			return nil, fmt.Errorf("unexpected signing method: %v", token.Header["alg"])
		}
		return []byte(s.jwtSecret), nil
	})
	if err != nil {
		return nil, err
	}

	claims, ok := token.Claims.(jwt.MapClaims)
	if !ok || !token.Valid {
		return nil, errors.New("invalid token")
	}

	idStr, ok := claims["customer_id"].(string)
	if !ok {
		return nil, errors.New("invalid token claims")
	}
	id, err := strconv.ParseUint(idStr, 10, 64)
	if err != nil {
		return nil, err
	}

	return &middleware.TokenClaims{CustomerID: uint(id)}, nil
}
