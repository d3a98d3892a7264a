package auth

import (
	"context"

	"placehub/be/biz/config"
	"placehub/be/biz/dal/repo"
	"placehub/be/biz/db/mysql"
	"placehub/be/biz/middleware/jwt"
	"placehub/be/biz/model/domain"
	"placehub/be/biz/model/errs"
	"placehub/be/biz/util/encode"

	"github.com/cloudwego/hertz/pkg/common/hlog"
)

type Service struct {
	users  repo.UserRepository
	tokens *jwt.Issuer
}

func New(users repo.UserRepository, tokens *jwt.Issuer) *Service {
	return &Service{users: users, tokens: tokens}
}

func NewDefault() *Service {
	return New(
		repo.NewUserRepositoryGorm(mysql.GetDbConn()),
		jwt.NewIssuer(config.GetJWTConfig()),
	)
}

// Register runs the short-circuiting pipeline lookup -> hash -> create ->
// issue. Once the create step commits there is no rollback: a token failure
// afterwards leaves the account in place and the caller logs in instead.
func (s *Service) Register(ctx context.Context, name, email, password, image string) (*domain.AuthResult, errs.Error) {
	existing, err := s.users.FindByEmail(ctx, email)
	if err != nil {
		hlog.CtxErrorf(ctx, "find user err: %v", err)
		return nil, errs.StoreUnavailable
	}
	if existing != nil {
		return nil, errs.AccountExists
	}

	digest, err := encode.HashPassword(password)
	if err != nil {
		hlog.CtxErrorf(ctx, "hash password err: %v", err)
		return nil, errs.CredentialProcessing
	}

	u := &domain.User{
		Name:           name,
		Email:          email,
		PasswordDigest: digest,
		Image:          image,
	}
	created, err := s.users.Create(ctx, u)
	if err != nil {
		// the unique index decides races the pre-check read cannot see
		if errs.IsDuplicatedErr(err) {
			return nil, errs.AccountExists
		}
		hlog.CtxErrorf(ctx, "create user err: %v", err)
		return nil, errs.StoreUnavailable
	}

	token, expAt, err := s.tokens.Issue(ctx, jwt.Payload{UserID: created.UserID, Email: created.Email})
	if err != nil {
		hlog.CtxErrorf(ctx, "issue token after signup err: %v, user %s persisted", err, created.UserID)
		return nil, errs.TokenIssuance
	}

	return &domain.AuthResult{
		UserID:    created.UserID,
		Email:     created.Email,
		Token:     token,
		ExpiresAt: expAt,
	}, nil
}

// Login folds an unknown email, a wrong password and a hashing fault into
// one outward signal; the log lines keep them apart.
func (s *Service) Login(ctx context.Context, email, password string) (*domain.AuthResult, errs.Error) {
	u, err := s.users.FindByEmail(ctx, email)
	if err != nil {
		hlog.CtxErrorf(ctx, "find user err: %v", err)
		return nil, errs.StoreUnavailable
	}
	if u == nil {
		hlog.CtxNoticef(ctx, "login rejected: email not registered")
		return nil, errs.InvalidCredentials
	}

	ok, err := encode.VerifyPassword(password, u.PasswordDigest)
	if err != nil {
		hlog.CtxErrorf(ctx, "verify password err: %v", err)
		return nil, errs.InvalidCredentials
	}
	if !ok {
		hlog.CtxNoticef(ctx, "login rejected: password mismatch for %s", u.UserID)
		return nil, errs.InvalidCredentials
	}

	token, expAt, err := s.tokens.Issue(ctx, jwt.Payload{UserID: u.UserID, Email: u.Email})
	if err != nil {
		hlog.CtxErrorf(ctx, "issue token err: %v", err)
		return nil, errs.TokenIssuance
	}

	return &domain.AuthResult{
		UserID:    u.UserID,
		Email:     u.Email,
		Token:     token,
		ExpiresAt: expAt,
	}, nil
}

func (s *Service) ListUsers(ctx context.Context) ([]*domain.User, errs.Error) {
	users, err := s.users.ListAll(ctx)
	if err != nil {
		hlog.CtxErrorf(ctx, "list users err: %v", err)
		return nil, errs.StoreUnavailable
	}
	return users, nil
}
