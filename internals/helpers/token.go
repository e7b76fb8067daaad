package helper

import (
	"errors"
	"fmt"
	"strings"
	"time"

	"github.com/gofiber/fiber/v2"
	"github.com/golang-jwt/jwt/v4"
	"github.com/google/uuid"

	"classmanager_backend/internals/constants"
)

const tokenTypeAccess = "access"

// TokenIssuer menandatangani dan memverifikasi access token HS256.
type TokenIssuer struct {
	Secret []byte
	TTL    time.Duration
	Now    func() time.Time
}

func NewTokenIssuer(secret string, ttl time.Duration) *TokenIssuer {
	if ttl <= 0 {
		ttl = 24 * time.Hour
	}
	return &TokenIssuer{Secret: []byte(secret), TTL: ttl, Now: time.Now}
}

func (t *TokenIssuer) now() time.Time {
	if t.Now == nil {
		return time.Now().UTC()
	}
	return t.Now().UTC()
}

// Issue membuat token berisi {id, user_name, role}.
func (t *TokenIssuer) Issue(caller Caller) (string, error) {
	now := t.now()
	claims := jwt.MapClaims{
		"typ":       tokenTypeAccess,
		"sub":       fmt.Sprint(caller.UserID),
		"id":        caller.UserID,
		"user_name": caller.UserName,
		"role":      string(caller.Role),
		"jti":       uuid.NewString(),
		"iat":       now.Unix(),
		"exp":       now.Add(t.TTL).Unix(),
	}
	return jwt.NewWithClaims(jwt.SigningMethodHS256, claims).SignedString(t.Secret)
}

// Parse memverifikasi signature + exp dan mengembalikan Caller.
func (t *TokenIssuer) Parse(raw string) (Caller, error) {
	claims := jwt.MapClaims{}
	parser := jwt.Parser{ValidMethods: []string{jwt.SigningMethodHS256.Alg()}}
	if _, err := parser.ParseWithClaims(raw, claims, func(token *jwt.Token) (interface{}, error) {
		return t.Secret, nil
	}); err != nil {
		return Caller{}, err
	}

	if typ, _ := claims["typ"].(string); typ != tokenTypeAccess {
		return Caller{}, errors.New("not an access token")
	}
	if _, ok := claims["exp"]; !ok {
		return Caller{}, errors.New("token has no exp")
	}

	idF, ok := claims["id"].(float64)
	if !ok || idF <= 0 {
		return Caller{}, errors.New("invalid or missing user id")
	}
	roleStr, _ := claims["role"].(string)
	role, err := constants.ParseRole(roleStr)
	if err != nil {
		return Caller{}, err
	}
	name, _ := claims["user_name"].(string)
	return Caller{UserID: uint(idF), UserName: name, Role: role}, nil
}

// ExtractBearerToken ambil token dari Authorization: Bearer <token> atau
// header x-auth-token yang dipakai SPA.
func ExtractBearerToken(c *fiber.Ctx) (string, error) {
	if tok := strings.TrimSpace(c.Get("x-auth-token")); tok != "" {
		return strings.Trim(tok, "\"'"), nil
	}

	auth := strings.TrimSpace(c.Get(fiber.HeaderAuthorization))
	if auth == "" {
		return "", errors.New("no token provided")
	}
	fields := strings.Fields(auth)
	if len(fields) < 2 || !strings.EqualFold(fields[0], "Bearer") {
		return "", errors.New("invalid token format")
	}
	tok := strings.Trim(strings.TrimSpace(fields[1]), "\"'")
	if tok == "" {
		return "", errors.New("empty token")
	}
	return tok, nil
}
