package storage

import (
	"time"

	"gorm.io/plugin/soft_delete"
)

type GormModel struct {
	ID        uint `gorm:"primarykey"`
	CreatedAt time.Time
	UpdatedAt time.Time
	DeletedAt soft_delete.DeletedAt
}

type UserRecord struct {
	GormModel
	UserId         string `gorm:"size:64;not null;uniqueIndex"`
	Name           string `gorm:"size:64;not null"`
	Email          string `gorm:"size:128;not null;uniqueIndex"` // uniqueness enforced here, atomically with the insert
	PasswordDigest string `gorm:"size:128;not null"`
	Image          string `gorm:"size:256;not null"`

	// Places are written only by the place CRUD subsystem; the credential
	// core reads them back as owned-resource ids.
	Places []PlaceRecord `gorm:"foreignKey:OwnerId;references:UserId"`
}

func (UserRecord) TableName() string {
	return "users"
}

type PlaceRecord struct {
	GormModel
	PlaceId string `gorm:"size:64;not null;uniqueIndex"`
	OwnerId string `gorm:"size:64;not null;index"`
	Title   string `gorm:"size:128;not null"`
}

func (PlaceRecord) TableName() string {
	return "places"
}
