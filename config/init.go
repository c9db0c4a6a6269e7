package config

import (
	"strings"
	"sync"

	"participant-registration/tools"

	"github.com/kelseyhightower/envconfig"
	"github.com/spf13/viper"
)

var (
	cfg  *Config
	once sync.Once
)

// defaults 在配置文件缺失时使用
func defaults() *Config {
	return &Config{
		Host: "0.0.0.0",
		Port: "3000",
		Mode: ModeDebug,
		Mysql: Mysql{
			Host:   "127.0.0.1",
			Port:   "3306",
			DBName: "participant_registration",
		},
		Cache: Cache{OptionsTTL: 300},
		Log: Log{
			Level:      "info",
			MaxSize:    100,
			MaxBackups: 7,
			MaxAge:     30,
		},
		OTel: OTel{ServiceName: "participant-registration"},
	}
}

// load 依次读取 config.yaml 和 APP_ 前缀的环境变量，后者覆盖前者
func load(paths ...string) (*Config, error) {
	c := defaults()

	v := viper.New()
	v.SetConfigName("config")
	v.SetConfigType("yaml")
	for _, p := range paths {
		v.AddConfigPath(p)
	}
	if err := v.ReadInConfig(); err != nil {
		// 没有配置文件时只使用默认值和环境变量
		if _, ok := err.(viper.ConfigFileNotFoundError); !ok {
			return nil, err
		}
	} else if err := v.Unmarshal(c); err != nil {
		return nil, err
	}

	if err := envconfig.Process("APP", c); err != nil {
		return nil, err
	}
	c.Mode = Mode(strings.ToLower(string(c.Mode)))
	if c.Mode != ModeRelease {
		c.Mode = ModeDebug
	}
	return c, nil
}

func Init() {
	once.Do(func() {
		c, err := load(".", "./config")
		tools.PanicOnErr(err)
		cfg = c
	})
}

// Get 返回全局配置，未初始化时先执行 Init
func Get() *Config {
	if cfg == nil {
		Init()
	}
	return cfg
}

// Set 替换全局配置，供测试使用
func Set(c *Config) {
	once.Do(func() {})
	cfg = c
}
