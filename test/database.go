package test

import (
	"fmt"
	"testing"

	"participant-registration/internal/global/database"
	"participant-registration/internal/model"

	"github.com/google/uuid"
	"github.com/stretchr/testify/require"
	"gorm.io/driver/sqlite"
	"gorm.io/gorm"
	"gorm.io/gorm/logger"
	"gorm.io/gorm/schema"
)

// SetupDB 为每个测试建立独立的内存 SQLite 库并替换 database.DB
func SetupDB(t *testing.T) *gorm.DB {
	t.Helper()

	dsn := fmt.Sprintf("file:%s?mode=memory&cache=shared", uuid.NewString())
	db, err := gorm.Open(sqlite.Open(dsn), &gorm.Config{
		NamingStrategy: schema.NamingStrategy{SingularTable: true},
		Logger:         logger.Discard,
	})
	require.NoError(t, err)

	sqlDB, err := db.DB()
	require.NoError(t, err)
	// 单连接，errgroup 并发查询在连接上排队
	sqlDB.SetMaxOpenConns(1)

	require.NoError(t, database.Setup(db))

	prev := database.DB
	database.DB = db
	t.Cleanup(func() {
		database.DB = prev
		_ = sqlDB.Close()
	})
	return db
}

// Fixtures 一所高中和六个课题
type Fixtures struct {
	HighSchools []model.HighSchool
	Topics      []model.Topic
}

func Seed(t *testing.T, db *gorm.DB) *Fixtures {
	t.Helper()

	f := &Fixtures{
		HighSchools: []model.HighSchool{{Name: "Westfield High"}, {Name: "Central High"}},
		Topics: []model.Topic{
			{Name: "Astronomy"}, {Name: "Biology"}, {Name: "Chemistry"},
			{Name: "Drama"}, {Name: "Economics"}, {Name: "French"},
		},
	}
	require.NoError(t, db.Create(&f.HighSchools).Error)
	require.NoError(t, db.Create(&f.Topics).Error)
	return f
}

// TopicIDs 前 n 个课题的 id
func (f *Fixtures) TopicIDs(n int) []string {
	ids := make([]string, 0, n)
	for _, topic := range f.Topics[:n] {
		ids = append(ids, topic.ID)
	}
	return ids
}
