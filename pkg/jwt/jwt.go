package jwt

import (
	"fmt"
	"time"

	"github.com/golang-jwt/jwt/v5"
)

// Claims incluye los claims estándar JWT más la sesión del tablero.
// Role y BaseID viajan en el token para que el middleware no consulte ningún repositorio.
type Claims struct {
	jwt.RegisteredClaims
	SessionID string `json:"sid"`
	UserID    string `json:"user_id"`
	UserName  string `json:"name"`
	Role      string `json:"role"` // "commander" | "logistics"
	BaseID    string `json:"base_id"`
}

// Session datos de sesión que se firman y recuperan del token.
type Session struct {
	SessionID string
	UserID    string
	UserName  string
	Role      string
	BaseID    string
	IssuedAt  time.Time
}

// Generate genera un token JWT firmado (HS256) para la sesión.
func Generate(secret, issuer string, expMinutes int, s Session) (string, error) {
	if secret == "" {
		return "", fmt.Errorf("jwt: secret vacío")
	}
	issued := s.IssuedAt
	if issued.IsZero() {
		issued = time.Now()
	}
	claims := Claims{
		RegisteredClaims: jwt.RegisteredClaims{
			Issuer:    issuer,
			Subject:   s.UserID,
			ID:        s.SessionID,
			IssuedAt:  jwt.NewNumericDate(issued),
			ExpiresAt: jwt.NewNumericDate(issued.Add(time.Duration(expMinutes) * time.Minute)),
		},
		SessionID: s.SessionID,
		UserID:    s.UserID,
		UserName:  s.UserName,
		Role:      s.Role,
		BaseID:    s.BaseID,
	}
	token := jwt.NewWithClaims(jwt.SigningMethodHS256, claims)
	return token.SignedString([]byte(secret))
}

// Parse valida el token y devuelve la sesión.
// Retorna error si el token es inválido, expirado o tiene firma incorrecta.
func Parse(secret, tokenString string) (*Session, error) {
	if secret == "" {
		return nil, fmt.Errorf("jwt: secret vacío")
	}
	token, err := jwt.ParseWithClaims(tokenString, &Claims{}, func(t *jwt.Token) (interface{}, error) {
		if _, ok := t.Method.(*jwt.SigningMethodHMAC); !ok {
			return nil, fmt.Errorf("método de firma inesperado: %v", t.Header["alg"])
		}
		return []byte(secret), nil
	})
	if err != nil {
		return nil, err
	}
	claims, ok := token.Claims.(*Claims)
	if !ok || !token.Valid {
		return nil, fmt.Errorf("claims inválidos")
	}
	s := &Session{
		SessionID: claims.SessionID,
		UserID:    claims.UserID,
		UserName:  claims.UserName,
		Role:      claims.Role,
		BaseID:    claims.BaseID,
	}
	if claims.IssuedAt != nil {
		s.IssuedAt = claims.IssuedAt.Time
	}
	return s, nil
}
