package utils

import (
	"errors"
	"os"
	"time"

	"github.com/mhoffmann-dev/GigSphere/models"

	"github.com/golang-jwt/jwt"
	"golang.org/x/crypto/bcrypt"
	"gorm.io/gorm"
)

// HashPassword creates a bcrypt hash of the password
func HashPassword(password string) (string, error) {
	bytes, err := bcrypt.GenerateFromPassword([]byte(password), bcrypt.DefaultCost)
	return string(bytes), err
}

// CheckPassword compares a password against a hash
func CheckPassword(password, hash string) bool {
	err := bcrypt.CompareHashAndPassword([]byte(hash), []byte(password))
	return err == nil
}

// GenerateToken creates a JWT token for a user
func GenerateToken(user *models.User) (string, error) {
	token := jwt.New(jwt.SigningMethodHS256)

	claims := token.Claims.(jwt.MapClaims)
	claims["user_id"] = user.ID
	claims["username"] = user.Username
	claims["type"] = user.Type
	claims["exp"] = time.Now().Add(time.Hour * 24).Unix() // 24 hour expiration

	tokenString, err := token.SignedString([]byte(os.Getenv("JWT_SECRET")))
	if err != nil {
		return "", err
	}

	return tokenString, nil
}

// ValidateToken validates a JWT token and returns the user ID and expiry
func ValidateToken(tokenString string) (uint, time.Time, error) {
	token, err := jwt.Parse(tokenString, func(token *jwt.Token) (interface{}, error) {
		if _, ok := token.Method.(*jwt.SigningMethodHMAC); !ok {
			return nil, errors.New("unexpected signing method")
		}
		return []byte(os.Getenv("JWT_SECRET")), nil
	})

	if err != nil {
		return 0, time.Time{}, err
	}

	if claims, ok := token.Claims.(jwt.MapClaims); ok && token.Valid {
		userID, ok := claims["user_id"].(float64)
		if !ok {
			return 0, time.Time{}, errors.New("invalid user ID in token")
		}
		expiresAt := time.Time{}
		if exp, ok := claims["exp"].(float64); ok {
			expiresAt = time.Unix(int64(exp), 0)
		}
		return uint(userID), expiresAt, nil
	}

	return 0, time.Time{}, errors.New("invalid token")
}

// BlacklistToken marks a token as invalid until it would have expired anyway
func BlacklistToken(db *gorm.DB, tokenString string, expiresAt time.Time) error {
	entry := models.BlacklistedToken{
		Token:     tokenString,
		ExpiresAt: expiresAt,
	}
	return db.Create(&entry).Error
}

// IsTokenBlacklisted reports whether a token has been invalidated by logout
func IsTokenBlacklisted(db *gorm.DB, tokenString string) bool {
	var entry models.BlacklistedToken
	err := db.Where("token = ?", tokenString).First(&entry).Error
	return err == nil
}
