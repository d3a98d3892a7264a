package db

import (
	"placehub/be/biz/db/mysql"
)

func Init() {
	mysql.Init()
}
