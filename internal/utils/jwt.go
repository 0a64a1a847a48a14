// Package utils holds small helpers shared across the transport
// layer.
package utils

import (
	"fmt"
	"time"

	"github.com/golang-jwt/jwt/v5"

	"simplewallet/internal/config"
	"simplewallet/internal/models"
)

func jwtSecret() []byte {
	return []byte(config.GetEnv("JWT_SECRET", "your-secret-key"))
}

// GenerateToken signs an access token for the user.
func GenerateToken(user *models.User) (string, error) {
	expiry := time.Duration(config.GetIntEnv("JWT_EXPIRY_MINUTES", 1440)) * time.Minute

	claims := &models.UserClaims{
		UserID: user.ID,
		Email:  user.Email,
		Role:   user.Role,
		RegisteredClaims: jwt.RegisteredClaims{
			Subject:   user.ID.String(),
			IssuedAt:  jwt.NewNumericDate(time.Now()),
			ExpiresAt: jwt.NewNumericDate(time.Now().Add(expiry)),
		},
	}

	token := jwt.NewWithClaims(jwt.SigningMethodHS256, claims)
	return token.SignedString(jwtSecret())
}

// ParseToken validates a token string and returns its claims.
func ParseToken(tokenString string) (*models.UserClaims, error) {
	token, err := jwt.ParseWithClaims(tokenString, &models.UserClaims{}, func(token *jwt.Token) (interface{}, error) {
		if _, ok := token.Method.(*jwt.SigningMethodHMAC); !ok {
			return nil, fmt.Errorf("unexpected signing method: %v", token.Header["alg"])
		}
		return jwtSecret(), nil
	})
	if err != nil {
		return nil, err
	}

	claims, ok := token.Claims.(*models.UserClaims)
	if !ok || !token.Valid {
		return nil, fmt.Errorf("invalid token")
	}
	return claims, nil
}
