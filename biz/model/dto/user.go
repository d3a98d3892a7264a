package dto

// RegisterReq arrives as a multipart form together with the profile image
// file; hertz binds the plain fields, the file goes through c.FormFile.
type RegisterReq struct {
	Name     string `form:"name" validate:"required,max=64"`
	Email    string `form:"email" validate:"required,email,max=128"`
	Password string `form:"password" validate:"required,min=6,max=128"`
}

type RegisterResp struct {
	UserID string `json:"userId"`
	Email  string `json:"email"`
	Token  string `json:"token"`
}

type LoginReq struct {
	Email    string `json:"email" form:"email" validate:"required,max=128"`
	Password string `json:"password" form:"password" validate:"required,max=128"`
}

type LoginResp struct {
	UserID    string `json:"userId"`
	Email     string `json:"email"`
	Token     string `json:"token"`
	ExpiresAt int64  `json:"expiresAt"`
}

// UserProjection never carries the password digest.
type UserProjection struct {
	UserID   string   `json:"userId"`
	Name     string   `json:"name"`
	Email    string   `json:"email"`
	Image    string   `json:"image"`
	PlaceIDs []string `json:"places"`
}

type GetUsersResp struct {
	Users []UserProjection `json:"users"`
}
