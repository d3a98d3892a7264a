package jwt

import (
	"context"
	"testing"
	"time"

	"placehub/be/biz/config"
	"placehub/be/biz/util/random"

	"github.com/stretchr/testify/assert"
)

func TestIssueAndValidate(t *testing.T) {
	issuer := NewIssuer(config.JWTConf{
		Issuer:          "go test",
		TokenSecret:     "secret",
		TokenExpiration: 1,
	})

	payload := Payload{
		UserID: random.RandStr(32),
		Email:  "ana@x.com",
	}

	before := time.Now()
	jwtStr, expAt, err := issuer.Issue(context.Background(), payload)
	assert.Nil(t, err)
	assert.NotEmpty(t, jwtStr)
	assert.GreaterOrEqual(t, expAt, before.Add(time.Second).Unix())

	t.Run("success", func(t *testing.T) {
		claims, err := issuer.Validate(jwtStr)
		assert.Nil(t, err)
		assert.Equal(t, payload, claims.Payload)
		assert.NotEmpty(t, claims.ID)
	})

	t.Run("secret key invalid", func(t *testing.T) {
		other := NewIssuer(config.JWTConf{TokenSecret: "secret123"})
		_, err := other.Validate(jwtStr)
		assert.ErrorIs(t, ErrJwtInvalid, err)
	})

	t.Run("expired", func(t *testing.T) {
		time.Sleep(time.Second * 2)
		_, err := issuer.Validate(jwtStr)
		assert.ErrorIs(t, ErrJwtExpired, err)
	})
}

func TestIssueDefaultsToOneHour(t *testing.T) {
	issuer := NewIssuer(config.JWTConf{TokenSecret: "secret"})

	_, expAt, err := issuer.Issue(context.Background(), Payload{UserID: "u1"})
	assert.Nil(t, err)

	delta := expAt - time.Now().Unix()
	assert.InDelta(t, time.Hour.Seconds(), float64(delta), 5)
}

func TestIssueWithoutKey(t *testing.T) {
	issuer := NewIssuer(config.JWTConf{})
	_, _, err := issuer.Issue(context.Background(), Payload{UserID: "u1"})
	assert.ErrorIs(t, err, ErrSigningKeyMissing)
}

func TestGetPayload(t *testing.T) {
	t.Run("default empty", func(t *testing.T) {
		p := GetPayload(context.Background())
		assert.Equal(t, Payload{}, p)
	})

	t.Run("from context", func(t *testing.T) {
		claims := &Claims{Payload: Payload{UserID: "u1", Email: "ana@x.com"}}
		ctx := context.WithValue(context.Background(), Payload{}, claims)
		p := GetPayload(ctx)
		assert.Equal(t, "u1", p.UserID)
		assert.Equal(t, "ana@x.com", p.Email)
	})
}
