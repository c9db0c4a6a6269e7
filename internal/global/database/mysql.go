package database

import (
	"net"
	"time"

	"participant-registration/config"
	"participant-registration/internal/global/sentry/tracing"
	"participant-registration/internal/model"
	"participant-registration/tools"

	mysqldriver "github.com/go-sql-driver/mysql"
	"gorm.io/driver/mysql"
	"gorm.io/gorm"
	"gorm.io/gorm/logger"
	"gorm.io/gorm/schema"
)

var DB *gorm.DB

// autoMigrateModels 定义需要自动迁移的模型列表
// 高中和课题由其他系统维护，这里只保证表存在
var autoMigrateModels = []any{
	&model.HighSchool{},
	&model.Topic{},
	&model.Participant{},
}

// DSN 根据配置生成 MySQL 连接串
// ClientFoundRows 让 UPDATE 返回匹配行数，字段未变化时也能判断记录是否存在
func DSN(cfg config.Mysql) string {
	c := mysqldriver.NewConfig()
	c.User = cfg.Username
	c.Passwd = cfg.Password
	c.Net = "tcp"
	c.Addr = net.JoinHostPort(cfg.Host, cfg.Port)
	c.DBName = cfg.DBName
	c.ParseTime = true
	c.Loc = time.Local
	c.ClientFoundRows = true
	c.Params = map[string]string{"charset": "utf8mb4"}
	return c.FormatDSN()
}

// GormConfig 按运行模式配置 gorm 日志，单数表名
func GormConfig(mode config.Mode) *gorm.Config {
	gormConfig := &gorm.Config{
		NamingStrategy: schema.NamingStrategy{SingularTable: true}, // 还是单数表名好
	}

	switch mode {
	case config.ModeDebug:
		gormConfig.Logger = logger.Default.LogMode(logger.Info)
	case config.ModeRelease:
		gormConfig.Logger = logger.Discard
	}
	return gormConfig
}

// Setup 注册追踪插件并迁移表结构，测试库也走这里
func Setup(db *gorm.DB) error {
	if tracing.IsEnabled() {
		if err := db.Use(tracing.NewGormTracingPlugin()); err != nil {
			return err
		}
	}
	return db.AutoMigrate(autoMigrateModels...)
}

func Init() {
	db, err := gorm.Open(mysql.Open(DSN(config.Get().Mysql)), GormConfig(config.Get().Mode))
	tools.PanicOnErr(err)
	tools.PanicOnErr(Setup(db))
	DB = db
}
