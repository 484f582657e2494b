// Package token emite los tokens de sesión que devuelve el login. La emisión
// está detrás de un puerto para poder cambiar el mecanismo sin tocar la
// lógica de cuentas.
package token

import (
	"fmt"
	"strconv"
	"time"

	"github.com/golang-jwt/jwt/v5"
	"github.com/google/uuid"
)

// Issuer emite un token de sesión para el usuario autenticado.
type Issuer interface {
	Issue(userID int, email string) (string, error)
}

// Claims incluye los claims estándar JWT más el email del usuario.
type Claims struct {
	jwt.RegisteredClaims
	Email string `json:"email"`
}

// JWTIssuer firma tokens HS256 con jti único por emisión.
type JWTIssuer struct {
	secret     string
	issuer     string
	expMinutes int
}

// NewJWTIssuer construye el emisor JWT.
func NewJWTIssuer(secret, issuer string, expMinutes int) *JWTIssuer {
	return &JWTIssuer{secret: secret, issuer: issuer, expMinutes: expMinutes}
}

// Issue genera un token firmado para el usuario.
func (i *JWTIssuer) Issue(userID int, email string) (string, error) {
	if i.secret == "" {
		return "", fmt.Errorf("token: secret vacío")
	}
	now := time.Now()
	claims := Claims{
		RegisteredClaims: jwt.RegisteredClaims{
			ID:        uuid.New().String(),
			Issuer:    i.issuer,
			Subject:   strconv.Itoa(userID),
			IssuedAt:  jwt.NewNumericDate(now),
			ExpiresAt: jwt.NewNumericDate(now.Add(time.Duration(i.expMinutes) * time.Minute)),
		},
		Email: email,
	}
	t := jwt.NewWithClaims(jwt.SigningMethodHS256, claims)
	return t.SignedString([]byte(i.secret))
}

// Parse valida un token emitido por JWTIssuer y devuelve userID y email.
func (i *JWTIssuer) Parse(tokenString string) (userID int, email string, err error) {
	t, err := jwt.ParseWithClaims(tokenString, &Claims{}, func(t *jwt.Token) (interface{}, error) {
		if _, ok := t.Method.(*jwt.SigningMethodHMAC); !ok {
			return nil, fmt.Errorf("método de firma inesperado: %v", t.Header["alg"])
		}
		return []byte(i.secret), nil
	})
	if err != nil {
		return 0, "", err
	}
	claims, ok := t.Claims.(*Claims)
	if !ok || !t.Valid {
		return 0, "", fmt.Errorf("claims inválidos")
	}
	id, err := strconv.Atoi(claims.Subject)
	if err != nil {
		return 0, "", fmt.Errorf("subject inválido: %w", err)
	}
	return id, claims.Email, nil
}

// StaticIssuer devuelve siempre el mismo valor. Reproduce el token fijo del
// sistema original y sirve para tests; no es un mecanismo de sesión real.
type StaticIssuer struct {
	Token string
}

func (s StaticIssuer) Issue(int, string) (string, error) {
	return s.Token, nil
}
