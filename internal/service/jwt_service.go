package service

import (
	"errors"
	"strings"
	"time"

	"github.com/golang-jwt/jwt/v5"
)

// JWTService emite y valida tokens de acceso firmados.
// El token lleva solamente el subject (email de la cuenta) y la expiración;
// no hay refresh ni lista de revocación: al expirar, el cliente vuelve a loguearse.
type JWTService struct {
	secret []byte
	ttl    time.Duration
	issuer string
}

var (
	ErrJWTInvalid = errors.New("jwt invalid")
	ErrJWTExpired = errors.New("jwt expired")
)

func NewJWTService(secret string, ttl time.Duration) *JWTService {
	if ttl <= 0 {
		ttl = 24 * time.Hour
	}
	return &JWTService{
		secret: []byte(secret),
		ttl:    ttl,
		issuer: "yoga-studio",
	}
}

// Issue firma un token HS256 con subject igual al email recibido.
func (s *JWTService) Issue(email string) (string, error) {
	if len(s.secret) == 0 {
		return "", ErrJWTInvalid
	}
	email = strings.TrimSpace(email)
	if email == "" {
		return "", ErrJWTInvalid
	}
	now := time.Now().UTC()
	claims := jwt.RegisteredClaims{
		Issuer:    s.issuer,
		Subject:   email,
		IssuedAt:  jwt.NewNumericDate(now),
		ExpiresAt: jwt.NewNumericDate(now.Add(s.ttl)),
	}
	token := jwt.NewWithClaims(jwt.SigningMethodHS256, claims)
	return token.SignedString(s.secret)
}

// Parse valida firma, estructura y expiración, y devuelve el subject.
// Un token inválido degrada a error, nunca a pánico.
func (s *JWTService) Parse(tokenString string) (string, error) {
	if len(s.secret) == 0 {
		return "", ErrJWTInvalid
	}
	if strings.TrimSpace(tokenString) == "" {
		return "", ErrJWTInvalid
	}

	var claims jwt.RegisteredClaims
	parser := jwt.NewParser(jwt.WithValidMethods([]string{jwt.SigningMethodHS256.Alg()}))
	_, err := parser.ParseWithClaims(tokenString, &claims, func(_ *jwt.Token) (any, error) {
		return s.secret, nil
	})
	if err != nil {
		if errors.Is(err, jwt.ErrTokenExpired) {
			return "", ErrJWTExpired
		}
		return "", ErrJWTInvalid
	}

	if strings.TrimSpace(claims.Subject) == "" || claims.Issuer != s.issuer {
		return "", ErrJWTInvalid
	}
	return claims.Subject, nil
}
