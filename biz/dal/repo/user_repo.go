package repo

import (
	"context"

	"placehub/be/biz/model/convert"
	"placehub/be/biz/model/domain"
	"placehub/be/biz/model/storage"
	"placehub/be/biz/util/id_gen"

	"gorm.io/gorm"
)

// UserRepository is the credential store. Absence is a normal result:
// lookups return (nil, nil) when no record matches.
type UserRepository interface {
	Create(ctx context.Context, u *domain.User) (*domain.User, error)
	FindByEmail(ctx context.Context, email string) (*domain.User, error)
	ListAll(ctx context.Context) ([]*domain.User, error)
}

type userRepositoryGorm struct {
	db *gorm.DB
}

func NewUserRepositoryGorm(db *gorm.DB) UserRepository {
	return &userRepositoryGorm{db: db}
}

func (r *userRepositoryGorm) Create(ctx context.Context, u *domain.User) (*domain.User, error) {
	m := convert.UserDomainToRecord(u)
	if m.UserId == "" {
		m.UserId = id_gen.NewID()
	}
	if err := r.db.WithContext(ctx).Create(m).Error; err != nil {
		return nil, err
	}
	return convert.UserRecordToDomain(m), nil
}

func (r *userRepositoryGorm) FindByEmail(ctx context.Context, email string) (*domain.User, error) {
	var m storage.UserRecord
	err := r.db.WithContext(ctx).Preload("Places").Where("email = ?", email).First(&m).Error
	if err != nil {
		if err == gorm.ErrRecordNotFound {
			return nil, nil
		}
		return nil, err
	}
	return convert.UserRecordToDomain(&m), nil
}

// ListAll omits the password digest column; the projection handed to the
// admin read path never contains it.
func (r *userRepositoryGorm) ListAll(ctx context.Context) ([]*domain.User, error) {
	var ms []storage.UserRecord
	err := r.db.WithContext(ctx).Omit("password_digest").Preload("Places").Find(&ms).Error
	if err != nil {
		return nil, err
	}
	users := make([]*domain.User, 0, len(ms))
	for i := range ms {
		users = append(users, convert.UserRecordToDomain(&ms[i]))
	}
	return users, nil
}
