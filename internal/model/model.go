package model

import (
	"github.com/google/uuid"
	"gorm.io/gorm"
)

// Model 文档式主键：创建时生成 UUID 字符串
type Model struct {
	ID string `gorm:"type:varchar(36);primaryKey" json:"id"`
}

func (m *Model) BeforeCreate(tx *gorm.DB) error {
	if m.ID == "" {
		m.ID = uuid.NewString()
	}
	return nil
}
