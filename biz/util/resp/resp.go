package resp

import (
	"net/http"

	"placehub/be/biz/model/dto"
	"placehub/be/biz/model/errs"

	"github.com/cloudwego/hertz/pkg/app"
)

// statusOf maps each business error to exactly one external status class.
// A signup persistence failure is a server fault here, not a 422.
func statusOf(bizErr errs.Error) int {
	switch bizErr.Code() {
	case errs.ParamError.Code():
		return http.StatusBadRequest
	case errs.Unauthorized.Code():
		return http.StatusUnauthorized
	case errs.AccountExists.Code():
		return http.StatusUnprocessableEntity
	case errs.InvalidCredentials.Code():
		return http.StatusForbidden
	}
	return http.StatusInternalServerError
}

func SuccessResp(c *app.RequestContext, data any) {
	c.JSON(http.StatusOK, &dto.CommonResp{
		Success: true,
		Code:    int(errs.Success.Code()),
		Message: errs.Success.Msg(),
		Data:    data,
	})
}

func FailResp(c *app.RequestContext, bizErr errs.Error) {
	if bizErr == nil {
		bizErr = errs.ServerError
	}
	c.JSON(statusOf(bizErr), &dto.CommonResp{
		Success: false,
		Code:    int(bizErr.Code()),
		Message: bizErr.Msg(),
	})
}

func AbortWithErr(c *app.RequestContext, bizErr errs.Error, httpCode int) {
	c.AbortWithStatusJSON(httpCode, &dto.CommonResp{
		Success: false,
		Code:    int(bizErr.Code()),
		Message: bizErr.Msg(),
	})
}
