package auth

import (
	"errors"
	"fmt"
	"time"

	"github.com/golang-jwt/jwt/v5"
)

var jwtSecret []byte

// ErrNaoConfigurado indica que o segredo JWT não foi definido na subida.
var ErrNaoConfigurado = errors.New("segredo JWT não configurado")

// Configurar define o segredo de assinatura. Chamar uma vez na subida.
func Configurar(segredo string) error {
	if segredo == "" {
		return ErrNaoConfigurado
	}
	jwtSecret = []byte(segredo)
	return nil
}

// Claims do token de acesso (RBAC simples: IsAdmin).
type Claims struct {
	UsuarioID uint `json:"usuarioId"`
	IsAdmin   bool `json:"isAdmin"`
	jwt.RegisteredClaims
}

// Tempo de vida do access token.
const AccessTTL = 24 * time.Hour

// GerarToken gera um JWT HS256 com validade de 24h.
func GerarToken(usuarioID uint, isAdmin bool) (string, error) {
	if jwtSecret == nil {
		return "", ErrNaoConfigurado
	}
	claims := &Claims{
		UsuarioID: usuarioID,
		IsAdmin:   isAdmin,
		RegisteredClaims: jwt.RegisteredClaims{
			ExpiresAt: jwt.NewNumericDate(time.Now().Add(AccessTTL)),
			IssuedAt:  jwt.NewNumericDate(time.Now()),
		},
	}
	token := jwt.NewWithClaims(jwt.SigningMethodHS256, claims)
	return token.SignedString(jwtSecret)
}

// ValidarToken valida o token e devolve as claims.
func ValidarToken(tokenStr string) (*Claims, error) {
	if jwtSecret == nil {
		return nil, ErrNaoConfigurado
	}
	parser := jwt.NewParser(jwt.WithValidMethods([]string{"HS256"}))
	token, err := parser.ParseWithClaims(tokenStr, &Claims{}, func(t *jwt.Token) (interface{}, error) {
		return jwtSecret, nil
	})
	if err != nil || !token.Valid {
		return nil, fmt.Errorf("token inválido ou expirado: %w", err)
	}
	claims, ok := token.Claims.(*Claims)
	if !ok {
		return nil, errors.New("não foi possível extrair claims")
	}
	return claims, nil
}
