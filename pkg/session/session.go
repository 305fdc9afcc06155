package session

import (
	"fmt"
	"time"

	"github.com/golang-jwt/jwt/v5"
)

// Payload datos de la sesión que viajan dentro de la cookie firmada.
// TenantID define la partición de datos del usuario; StoreName es la
// etiqueta derivada del username (tienda_<usuario>) que ve el frontend.
type Payload struct {
	Username  string `json:"username"`
	TenantID  string `json:"tenant_id"`
	StoreName string `json:"store_name"`
	Email     string `json:"email"`
}

// Claims incluye los claims estándar JWT más el payload de sesión.
type Claims struct {
	jwt.RegisteredClaims
	Payload
}

// Generate genera el token de sesión firmado (HS256) con vigencia en horas.
func Generate(secret, issuer string, expHours int, p Payload) (string, error) {
	if secret == "" {
		return "", fmt.Errorf("session: secret vacío")
	}
	now := time.Now()
	claims := Claims{
		RegisteredClaims: jwt.RegisteredClaims{
			Issuer:    issuer,
			Subject:   p.Username,
			IssuedAt:  jwt.NewNumericDate(now),
			ExpiresAt: jwt.NewNumericDate(now.Add(time.Duration(expHours) * time.Hour)),
		},
		Payload: p,
	}
	token := jwt.NewWithClaims(jwt.SigningMethodHS256, claims)
	return token.SignedString([]byte(secret))
}

// Parse valida el token y devuelve el payload de sesión.
// Retorna error si el token es inválido, expirado o tiene firma incorrecta.
func Parse(secret, tokenString string) (*Payload, error) {
	if secret == "" {
		return nil, fmt.Errorf("session: secret vacío")
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
	if claims.TenantID == "" {
		return nil, fmt.Errorf("sesión sin tenant")
	}
	return &claims.Payload, nil
}
