package mysql

import (
	"fmt"

	"placehub/be/biz/config"
	"placehub/be/biz/model/storage"

	"gorm.io/driver/mysql"
	"gorm.io/gorm"
)

var dbConn *gorm.DB

func Init() {
	conf := config.GetMySQLConf()
	dsn := fmt.Sprintf("%s:%s@tcp(%s:%d)/%s?charset=utf8mb4&parseTime=True&loc=Local",
		conf.Username, conf.Password, conf.IP, conf.Port, conf.DBName)

	conn, err := gorm.Open(mysql.Open(dsn), &gorm.Config{
		TranslateError: true,
	})
	if err != nil {
		panic(err)
	}

	if err := conn.AutoMigrate(&storage.UserRecord{}, &storage.PlaceRecord{}); err != nil {
		panic(err)
	}

	dbConn = conn
}

func GetDbConn() *gorm.DB {
	return dbConn
}
