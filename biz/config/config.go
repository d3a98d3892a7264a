package config

import (
	"os"

	"github.com/cloudwego/hertz/pkg/common/hlog"
	"gopkg.in/yaml.v3"
)

func Init(filepath string) {
	content, err := os.ReadFile(filepath)
	if err != nil {
		panic(err)
	}

	if err := yaml.Unmarshal(content, &globalConfig); err != nil {
		panic(err)
	}

	hlog.Debugf("config debug: %+v", globalConfig)
}

func GetServerConf() ServerConf {
	return globalConfig.Server
}

func GetMySQLConf() MySQLConf {
	return globalConfig.MySQL
}

func GetJWTConfig() JWTConf {
	return globalConfig.JWT
}

func GetCORSConf() CORSConf {
	return globalConfig.CORS
}

func GetUploadConf() UploadConf {
	return globalConfig.Upload
}

func GetLoggerConf() LoggerConf {
	return globalConfig.Logger
}

var globalConfig ServiceConf

type ServiceConf struct {
	Server ServerConf `yaml:"server"`
	MySQL  MySQLConf  `yaml:"mysql"`
	JWT    JWTConf    `yaml:"jwt"`
	CORS   CORSConf   `yaml:"cors"`
	Upload UploadConf `yaml:"upload"`
	Logger LoggerConf `yaml:"logger"`
}

type ServerConf struct {
	Address string `yaml:"address"`
}

type MySQLConf struct {
	DBName   string `yaml:"db_name"`
	IP       string `yaml:"ip"`
	Port     int    `yaml:"port"`
	Username string `yaml:"username"`
	Password string `yaml:"password"`
}

// JWTConf holds the signing secret for bearer tokens. The secret is read
// once at process start and handed to the issuer at construction; it is
// immutable for the process lifetime.
type JWTConf struct {
	Issuer string `yaml:"issuer"`

	TokenSecret string `yaml:"token_secret"`

	// TokenExpiration is in seconds; tokens live one hour when unset.
	TokenExpiration int `yaml:"token_expiration"`
}

type CORSConf struct {
	AllowOrigins     []string `yaml:"allow_origins"`
	AllowMethods     []string `yaml:"allow_methods"`
	AllowHeaders     []string `yaml:"allow_headers"`
	AllowCredentials bool     `yaml:"allow_credentials"`
	MaxAge           int      `yaml:"max_age"`
}

type UploadConf struct {
	Dir string `yaml:"dir"`
}

type LoggerConf struct {
	Level      string `yaml:"level"`
	Dir        string `yaml:"dir"`
	FileName   string `yaml:"file_name"`
	MaxSize    int    `yaml:"max_size"`
	MaxBackups int    `yaml:"max_backups"`
	MaxAge     int    `yaml:"max_age"`
}
