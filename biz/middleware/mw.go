package middleware

import (
	"placehub/be/biz/middleware/accesslog"
	"placehub/be/biz/middleware/cors"
	"placehub/be/biz/middleware/recovery"
	"placehub/be/biz/middleware/trace"

	"github.com/cloudwego/hertz/pkg/app"
)

func Suite() []app.HandlerFunc {
	return []app.HandlerFunc{
		recovery.New(),  // panic handler
		trace.New(),     // request log id
		accesslog.New(), // access log
		cors.New(),      // cross-origin requests
	}
}
