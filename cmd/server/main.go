package main

import (
	"flag"

	be "placehub/be"
	"placehub/be/biz/config"
	"placehub/be/biz/db"
	"placehub/be/biz/util/logger"
)

func main() {
	confPath := flag.String("conf", "./conf/deploy.yml", "path to the yaml config file")
	flag.Parse()

	config.Init(*confPath)
	logger.Init()
	db.Init()

	be.Run()
}
