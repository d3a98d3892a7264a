package repo

import (
	"context"
	"testing"

	"placehub/be/biz/model/domain"
	"placehub/be/biz/model/errs"
	"placehub/be/biz/model/storage"

	"github.com/glebarez/sqlite"
	"github.com/stretchr/testify/assert"
	"gorm.io/gorm"
)

func setupTestDB(t *testing.T) *gorm.DB {
	db, err := gorm.Open(sqlite.Open(":memory:"), &gorm.Config{})
	assert.NoError(t, err)
	err = db.AutoMigrate(&storage.UserRecord{}, &storage.PlaceRecord{})
	assert.NoError(t, err)
	return db
}

func TestUserRepository_Create(t *testing.T) {
	db := setupTestDB(t)
	r := NewUserRepositoryGorm(db)
	ctx := context.Background()

	u := &domain.User{
		Name:           "Ana",
		Email:          "ana@x.com",
		PasswordDigest: "digest",
		Image:          "/img/a.png",
	}

	created, err := r.Create(ctx, u)
	assert.NoError(t, err)
	assert.NotEmpty(t, created.UserID)
	assert.Equal(t, u.Email, created.Email)
	assert.Empty(t, created.PlaceIDs)

	// Verify in DB
	var m storage.UserRecord
	err = db.First(&m, "user_id = ?", created.UserID).Error
	assert.NoError(t, err)
	assert.Equal(t, u.Email, m.Email)
	assert.Equal(t, u.PasswordDigest, m.PasswordDigest)
}

func TestUserRepository_CreateDuplicateEmail(t *testing.T) {
	db := setupTestDB(t)
	r := NewUserRepositoryGorm(db)
	ctx := context.Background()

	first := &domain.User{Name: "Ana", Email: "ana@x.com", PasswordDigest: "d1", Image: "/img/a.png"}
	_, err := r.Create(ctx, first)
	assert.NoError(t, err)

	second := &domain.User{Name: "Ana2", Email: "ana@x.com", PasswordDigest: "d2", Image: "/img/b.png"}
	_, err = r.Create(ctx, second)
	assert.Error(t, err)
	assert.True(t, errs.IsDuplicatedErr(err))
}

func TestUserRepository_FindByEmail(t *testing.T) {
	db := setupTestDB(t)
	r := NewUserRepositoryGorm(db)
	ctx := context.Background()

	db.Create(&storage.UserRecord{
		UserId:         "u1",
		Name:           "Ana",
		Email:          "ana@x.com",
		PasswordDigest: "digest",
		Image:          "/img/a.png",
	})

	// Test found
	found, err := r.FindByEmail(ctx, "ana@x.com")
	assert.NoError(t, err)
	assert.NotNil(t, found)
	assert.Equal(t, "u1", found.UserID)
	assert.Equal(t, "digest", found.PasswordDigest)

	// Test not found: absence is not an error
	found, err = r.FindByEmail(ctx, "nobody@x.com")
	assert.NoError(t, err)
	assert.Nil(t, found)
}

func TestUserRepository_FindByEmailLoadsPlaces(t *testing.T) {
	db := setupTestDB(t)
	r := NewUserRepositoryGorm(db)
	ctx := context.Background()

	db.Create(&storage.UserRecord{UserId: "u1", Name: "Ana", Email: "ana@x.com", PasswordDigest: "d", Image: "/img/a.png"})
	db.Create(&storage.PlaceRecord{PlaceId: "p1", OwnerId: "u1", Title: "Empire State"})
	db.Create(&storage.PlaceRecord{PlaceId: "p2", OwnerId: "u1", Title: "Central Park"})

	found, err := r.FindByEmail(ctx, "ana@x.com")
	assert.NoError(t, err)
	assert.Equal(t, []string{"p1", "p2"}, found.PlaceIDs)
}

func TestUserRepository_ListAll(t *testing.T) {
	db := setupTestDB(t)
	r := NewUserRepositoryGorm(db)
	ctx := context.Background()

	db.Create(&storage.UserRecord{UserId: "u1", Name: "Ana", Email: "ana@x.com", PasswordDigest: "secret-digest", Image: "/img/a.png"})
	db.Create(&storage.UserRecord{UserId: "u2", Name: "Bob", Email: "bob@x.com", PasswordDigest: "secret-digest", Image: "/img/b.png"})

	users, err := r.ListAll(ctx)
	assert.NoError(t, err)
	assert.Len(t, users, 2)
	for _, u := range users {
		assert.NotEmpty(t, u.Email)
		// digest column is excluded from the projection
		assert.Empty(t, u.PasswordDigest)
	}
}
