package services

import (
	"fmt"
	"time"

	"github.com/golang-jwt/jwt/v4"
	"golang.org/x/crypto/bcrypt"
)

// AuthService issues and verifies admin tokens. Credentials come from
// configuration: a username and a bcrypt hash of the password.
type AuthService struct {
	adminUsername     string
	adminPasswordHash string
	jwtSecret         []byte
	tokenTTL          time.Duration
}

// AdminClaims are the JWT claims carried by an admin token.
type AdminClaims struct {
	Username string `json:"username"`
	Role     string `json:"role"`
	jwt.RegisteredClaims
}

func NewAuthService(adminUsername, adminPasswordHash, jwtSecret string) *AuthService {
	return &AuthService{
		adminUsername:     adminUsername,
		adminPasswordHash: adminPasswordHash,
		jwtSecret:         []byte(jwtSecret),
		tokenTTL:          24 * time.Hour,
	}
}

// Login verifies the admin credentials and returns a signed token.
func (s *AuthService) Login(username, password string) (string, *ServiceError) {
	if username != s.adminUsername {
		return "", &ServiceError{StatusCode: 401, Code: CodeValidation, Message: "Credenciales inválidas"}
	}
	if err := bcrypt.CompareHashAndPassword([]byte(s.adminPasswordHash), []byte(password)); err != nil {
		return "", &ServiceError{StatusCode: 401, Code: CodeValidation, Message: "Credenciales inválidas"}
	}

	now := time.Now()
	claims := AdminClaims{
		Username: username,
		Role:     "admin",
		RegisteredClaims: jwt.RegisteredClaims{
			IssuedAt:  jwt.NewNumericDate(now),
			ExpiresAt: jwt.NewNumericDate(now.Add(s.tokenTTL)),
		},
	}

	token, err := jwt.NewWithClaims(jwt.SigningMethodHS256, claims).SignedString(s.jwtSecret)
	if err != nil {
		return "", unexpectedError("No se pudo generar el token")
	}
	return token, nil
}

// VerifyAdminToken parses and validates an admin token.
func (s *AuthService) VerifyAdminToken(tokenString string) (*AdminClaims, error) {
	claims := &AdminClaims{}
	token, err := jwt.ParseWithClaims(tokenString, claims, func(t *jwt.Token) (interface{}, error) {
		if _, ok := t.Method.(*jwt.SigningMethodHMAC); !ok {
			return nil, fmt.Errorf("unexpected signing method: %v", t.Header["alg"])
		}
		return s.jwtSecret, nil
	})
	if err != nil {
		return nil, err
	}
	if !token.Valid || claims.Role != "admin" {
		return nil, fmt.Errorf("invalid admin token")
	}
	return claims, nil
}
