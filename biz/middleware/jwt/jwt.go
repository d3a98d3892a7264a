package jwt

import (
	"context"
	"errors"
	"net/http"
	"strings"
	"time"

	"placehub/be/biz/config"
	"placehub/be/biz/model/errs"
	"placehub/be/biz/util/resp"

	"github.com/cloudwego/hertz/pkg/app"
	"github.com/cloudwego/hertz/pkg/common/hlog"
	"github.com/golang-jwt/jwt/v5"
	"github.com/google/uuid"
)

var (
	ErrSigningKeyMissing   = errors.New("jwt signing key is not configured")
	ErrUnexpectedJwtMethod = errors.New("unexpected jwt method")
	ErrJwtInvalid          = errors.New("jwt is invalid")
	ErrJwtExpired          = errors.New("jwt is expired")
)

const defaultExpiration = time.Hour

// Payload is the claim set carried by every issued token.
type Payload struct {
	UserID string `json:"user_id,omitempty"`
	Email  string `json:"email,omitempty"`
}

type Claims struct {
	jwt.RegisteredClaims
	Payload
}

// Issuer signs time-bounded credential assertions. The signing secret is
// injected once at construction and immutable for the process lifetime.
// Tokens are stateless: expiry lives only in the signed claims.
type Issuer struct {
	secret     []byte
	issuer     string
	expiration time.Duration
}

func NewIssuer(conf config.JWTConf) *Issuer {
	exp := defaultExpiration
	if conf.TokenExpiration > 0 {
		exp = time.Duration(conf.TokenExpiration) * time.Second
	}
	return &Issuer{
		secret:     []byte(conf.TokenSecret),
		issuer:     conf.Issuer,
		expiration: exp,
	}
}

// Issue signs the claim set and returns the token with its expiry unix time.
// The key is configured at process start, but a missing key is still
// defended against here.
func (i *Issuer) Issue(ctx context.Context, payload Payload) (string, int64, error) {
	if len(i.secret) == 0 {
		return "", 0, ErrSigningKeyMissing
	}

	now := time.Now()
	expAt := now.Add(i.expiration)
	claims := Claims{
		RegisteredClaims: jwt.RegisteredClaims{
			IssuedAt:  jwt.NewNumericDate(now),
			ExpiresAt: jwt.NewNumericDate(expAt),
			Issuer:    i.issuer,
			ID:        uuid.New().String(),
		},
		Payload: payload,
	}

	token := jwt.NewWithClaims(jwt.SigningMethodHS256, claims)
	jwtStr, err := token.SignedString(i.secret)
	if err != nil {
		hlog.CtxErrorf(ctx, "sign token err: %v", err)
		return "", 0, err
	}

	return jwtStr, expAt.Unix(), nil
}

// Validate parses a previously issued token with the same signing key.
func (i *Issuer) Validate(tokenStr string) (*Claims, error) {
	var claims Claims
	token, err := jwt.ParseWithClaims(tokenStr, &claims, func(token *jwt.Token) (interface{}, error) {
		if _, ok := token.Method.(*jwt.SigningMethodHMAC); !ok {
			return nil, jwt.ErrHashUnavailable
		}
		return i.secret, nil
	})
	if err != nil {
		if errors.Is(err, jwt.ErrHashUnavailable) {
			return nil, ErrUnexpectedJwtMethod
		}
		if errors.Is(err, jwt.ErrTokenExpired) {
			return nil, ErrJwtExpired
		}
		if errors.Is(err, jwt.ErrTokenSignatureInvalid) {
			return nil, ErrJwtInvalid
		}
		return nil, err
	}
	if !token.Valid {
		return nil, ErrJwtInvalid
	}

	return &claims, nil
}

// ValidateMW guards the resource routes owned by the surrounding CRUD
// subsystem. Verification is not part of register/login themselves.
func ValidateMW(issuer *Issuer) app.HandlerFunc {
	return func(ctx context.Context, c *app.RequestContext) {
		jwtStr := extractJWT(c)
		if jwtStr == "" {
			hlog.CtxInfof(ctx, "authorization failed, token is empty")
			resp.AbortWithErr(c, errs.Unauthorized, http.StatusUnauthorized)
			return
		}

		claims, err := issuer.Validate(jwtStr)
		if err != nil {
			hlog.CtxInfof(ctx, "jwt invalid: %v", err)
			resp.AbortWithErr(c, errs.Unauthorized, http.StatusUnauthorized)
			return
		}

		ctx = context.WithValue(ctx, Payload{}, claims)

		c.Next(ctx)
	}
}

func GetPayload(ctx context.Context) Payload {
	claims, ok := ctx.Value(Payload{}).(*Claims)
	if ok {
		return claims.Payload
	}
	return Payload{}
}

func extractJWT(c *app.RequestContext) string {
	auth := c.Request.Header.Get("Authorization")
	return strings.TrimPrefix(auth, "Bearer ")
}
