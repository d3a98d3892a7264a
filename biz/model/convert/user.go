package convert

import (
	"placehub/be/biz/model/domain"
	"placehub/be/biz/model/storage"
)

func UserDomainToRecord(u *domain.User) *storage.UserRecord {
	if u == nil {
		return nil
	}
	return &storage.UserRecord{
		GormModel: storage.GormModel{
			CreatedAt: u.CreatedAt,
			UpdatedAt: u.UpdatedAt,
		},
		UserId:         u.UserID,
		Name:           u.Name,
		Email:          u.Email,
		PasswordDigest: u.PasswordDigest,
		Image:          u.Image,
	}
}

func UserRecordToDomain(m *storage.UserRecord) *domain.User {
	if m == nil {
		return nil
	}
	placeIDs := make([]string, 0, len(m.Places))
	for _, p := range m.Places {
		placeIDs = append(placeIDs, p.PlaceId)
	}
	return &domain.User{
		UserID:         m.UserId,
		Name:           m.Name,
		Email:          m.Email,
		PasswordDigest: m.PasswordDigest,
		Image:          m.Image,
		PlaceIDs:       placeIDs,
		CreatedAt:      m.CreatedAt,
		UpdatedAt:      m.UpdatedAt,
	}
}
