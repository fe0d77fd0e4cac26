package config

import (
	_ "embed"
	"os"

	"school-api/biz/infrastructure/util/log"

	"github.com/zeromicro/go-zero/core/conf"
	"github.com/zeromicro/go-zero/core/service"
	"github.com/zeromicro/go-zero/core/stores/cache"
	"github.com/zeromicro/go-zero/core/stores/redis"
)

// //go:embed config.local.yaml
var embeddedConfig []byte

var config *Config

type Auth struct {
	SecretKey    string
	AccessExpire int64
}

// Bootstrap is the coordinator created on first start so that an empty
// deployment has at least one account able to register others.
type Bootstrap struct {
	Name         string `json:",default=Admin"`
	Email        string `json:",optional"`
	Password     string `json:",optional"`
	Registration string `json:",default=001"`
}

type Config struct {
	service.ServiceConf
	ListenOn  string
	State     string `json:",default=prod"`
	Auth      Auth
	Bootstrap Bootstrap
	Mongo     struct {
		URL string
		DB  string
	}
	Cache cache.CacheConf `json:",optional"`
	Redis *redis.RedisConf `json:",optional"`
}

func NewConfig() (*Config, error) {
	c := new(Config)

	if len(embeddedConfig) == 0 {
		path := os.Getenv("CONFIG_PATH")
		if path == "" {
			path = "etc/config.yaml"
		}
		log.Info("NewConfig load config from path: %s", path)
		err := conf.Load(path, c)
		if err != nil {
			return nil, err
		}
	} else {
		err := conf.LoadFromYamlBytes(embeddedConfig, c)
		if err != nil {
			return nil, err
		}
	}

	err := c.SetUp()
	if err != nil {
		return nil, err
	}
	config = c
	return c, nil
}

func GetConfig() *Config {
	return config
}
