package be

import (
	"placehub/be/biz/config"
	"placehub/be/biz/handler"
	"placehub/be/biz/middleware"

	"github.com/cloudwego/hertz/pkg/app/server"
	"github.com/hertz-contrib/swagger"
	swaggerFiles "github.com/swaggo/files"

	_ "placehub/be/docs"
)

func NewEngine() *server.Hertz {
	addr := config.GetServerConf().Address
	if addr == "" {
		addr = ":8080"
	}

	h := server.New(server.WithHostPorts(addr))
	h.Use(middleware.Suite()...)

	v1 := h.Group("/api/v1")
	v1.POST("/user/register", handler.Register)
	v1.POST("/user/login", handler.Login)
	v1.GET("/users", handler.GetUsers)

	h.GET("/swagger/*any", swagger.WrapHandler(swaggerFiles.Handler))

	return h
}

func Run() {
	NewEngine().Spin()
}
