package handler

import (
	"context"
	"net/http"
	"path/filepath"

	"placehub/be/biz/config"
	"placehub/be/biz/model/dto"
	"placehub/be/biz/model/errs"
	"placehub/be/biz/service/auth"
	"placehub/be/biz/util/random"
	"placehub/be/biz/util/resp"
	"placehub/be/biz/util/validate"

	"github.com/cloudwego/hertz/pkg/app"
	"github.com/cloudwego/hertz/pkg/common/hlog"
)

// Register 用户注册接口
//
//	@Tags			user
//	@Summary		sign up with profile image
//	@Description	multipart form: name, email, password fields plus an image file
//	@Accept			mpfd
//	@Produce		json
//	@Param			name		formData	string	true	"display name"
//	@Param			email		formData	string	true	"email, unique"
//	@Param			password	formData	string	true	"plaintext password"
//	@Param			image		formData	file	true	"profile image"
//	@Success		200	{object}	dto.CommonResp{data=dto.RegisterResp}
//	@Router			/api/v1/user/register [POST]
func Register(ctx context.Context, c *app.RequestContext) {
	req := dto.RegisterReq{
		Name:     c.PostForm("name"),
		Email:    c.PostForm("email"),
		Password: c.PostForm("password"),
	}
	if err := validate.Struct(&req); err != nil {
		hlog.CtxNoticef(ctx, "register validate err: %v", err)
		resp.AbortWithErr(c, errs.ParamError.SetMsg(err.Error()), http.StatusBadRequest)
		return
	}

	file, err := c.FormFile("image")
	if err != nil {
		hlog.CtxNoticef(ctx, "register image missing: %v", err)
		resp.AbortWithErr(c, errs.ParamError.SetMsg("image file is required"), http.StatusBadRequest)
		return
	}

	imagePath := filepath.Join(uploadDir(), random.RandStr(16)+filepath.Ext(file.Filename))
	if err := c.SaveUploadedFile(file, imagePath); err != nil {
		hlog.CtxErrorf(ctx, "save uploaded image err: %v", err)
		resp.FailResp(c, errs.ServerError)
		return
	}

	res, bizErr := auth.NewDefault().Register(ctx, req.Name, req.Email, req.Password, imagePath)
	if bizErr != nil {
		resp.FailResp(c, bizErr)
		return
	}

	resp.SuccessResp(c, dto.RegisterResp{
		UserID: res.UserID,
		Email:  res.Email,
		Token:  res.Token,
	})
}

// Login 用户登录接口
//
//	@Tags			user
//	@Summary		log in with email and password
//	@Accept			json
//	@Produce		json
//	@Param			req	body		dto.LoginReq	true	"login request body"
//	@Success		200	{object}	dto.CommonResp{data=dto.LoginResp}
//	@Router			/api/v1/user/login [POST]
func Login(ctx context.Context, c *app.RequestContext) {
	var req dto.LoginReq
	if err := c.BindAndValidate(&req); err != nil {
		hlog.CtxNoticef(ctx, "login bind err: %v", err)
		resp.AbortWithErr(c, errs.ParamError.SetMsg(err.Error()), http.StatusBadRequest)
		return
	}
	if err := validate.Struct(&req); err != nil {
		hlog.CtxNoticef(ctx, "login validate err: %v", err)
		resp.AbortWithErr(c, errs.ParamError.SetMsg(err.Error()), http.StatusBadRequest)
		return
	}

	res, bizErr := auth.NewDefault().Login(ctx, req.Email, req.Password)
	if bizErr != nil {
		resp.FailResp(c, bizErr)
		return
	}

	resp.SuccessResp(c, dto.LoginResp{
		UserID:    res.UserID,
		Email:     res.Email,
		Token:     res.Token,
		ExpiresAt: res.ExpiresAt,
	})
}

// GetUsers 用户列表接口
//
//	@Tags			user
//	@Summary		administrative user listing, digest stripped
//	@Produce		json
//	@Success		200	{object}	dto.CommonResp{data=dto.GetUsersResp}
//	@Router			/api/v1/users [GET]
func GetUsers(ctx context.Context, c *app.RequestContext) {
	users, bizErr := auth.NewDefault().ListUsers(ctx)
	if bizErr != nil {
		resp.FailResp(c, bizErr)
		return
	}

	projections := make([]dto.UserProjection, 0, len(users))
	for _, u := range users {
		projections = append(projections, dto.UserProjection{
			UserID:   u.UserID,
			Name:     u.Name,
			Email:    u.Email,
			Image:    u.Image,
			PlaceIDs: u.PlaceIDs,
		})
	}

	resp.SuccessResp(c, dto.GetUsersResp{Users: projections})
}

func uploadDir() string {
	dir := config.GetUploadConf().Dir
	if dir == "" {
		dir = "./uploads"
	}
	return dir
}
