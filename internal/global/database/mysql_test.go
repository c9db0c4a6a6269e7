package database

import (
	"testing"

	"participant-registration/config"

	mysqldriver "github.com/go-sql-driver/mysql"
	"github.com/stretchr/testify/require"
	"gorm.io/gorm/logger"
)

func TestDSN(t *testing.T) {
	dsn := DSN(config.Mysql{
		Host:     "db.internal",
		Port:     "3307",
		Username: "registrar",
		Password: "p@ss:word",
		DBName:   "participant_registration",
	})

	c, err := mysqldriver.ParseDSN(dsn)
	require.NoError(t, err)
	require.Equal(t, "db.internal:3307", c.Addr)
	require.Equal(t, "registrar", c.User)
	require.Equal(t, "p@ss:word", c.Passwd)
	require.Equal(t, "participant_registration", c.DBName)
	require.True(t, c.ClientFoundRows)
	require.True(t, c.ParseTime)
}

func TestGormConfig(t *testing.T) {
	require.Equal(t, logger.Discard, GormConfig(config.ModeRelease).Logger)
	require.Equal(t, "participant", GormConfig(config.ModeDebug).NamingStrategy.TableName("Participant"))
}
