package model

import (
	"errors"
	"time"

	"gorm.io/gorm"
)

// ErrMissingReference 保存时高中或任一兴趣课题为空
var ErrMissingReference = errors.New("participant: high school and all five interests are required")

const participantPath = "/index/participant/"

type Participant struct {
	Model
	LastName        string     `gorm:"type:varchar(100);not null;index" json:"last_name"`
	FirstName       string     `gorm:"type:varchar(100);not null" json:"first_name"`
	Address         string     `gorm:"type:varchar(600);not null" json:"address"` // 转义后的长度，原文不超过 100 字符
	Email           string     `gorm:"type:varchar(600);not null" json:"email"`
	HighSchoolID    string     `gorm:"column:high_school_id;type:varchar(36);not null;index" json:"high_school_id"`
	HighSchool      HighSchool `gorm:"foreignKey:HighSchoolID" json:"high_school"`
	TimeStamp       time.Time  `gorm:"autoCreateTime" json:"time_stamp"`
	ParticipantType string     `gorm:"type:varchar(600)" json:"participant_type"`
	Interest1ID     string     `gorm:"column:interest1_id;type:varchar(36);not null" json:"interest1_id"`
	Interest1       Topic      `gorm:"foreignKey:Interest1ID" json:"interest1"`
	Interest2ID     string     `gorm:"column:interest2_id;type:varchar(36);not null" json:"interest2_id"`
	Interest2       Topic      `gorm:"foreignKey:Interest2ID" json:"interest2"`
	Interest3ID     string     `gorm:"column:interest3_id;type:varchar(36);not null" json:"interest3_id"`
	Interest3       Topic      `gorm:"foreignKey:Interest3ID" json:"interest3"`
	Interest4ID     string     `gorm:"column:interest4_id;type:varchar(36);not null" json:"interest4_id"`
	Interest4       Topic      `gorm:"foreignKey:Interest4ID" json:"interest4"`
	Interest5ID     string     `gorm:"column:interest5_id;type:varchar(36);not null" json:"interest5_id"`
	Interest5       Topic      `gorm:"foreignKey:Interest5ID" json:"interest5"`
}

// Name 显示名 "lastName, firstName"
func (p *Participant) Name() string {
	return p.LastName + ", " + p.FirstName
}

func (p *Participant) URL() string {
	return participantPath + p.ID
}

func (p *Participant) InterestIDs() []string {
	return []string{p.Interest1ID, p.Interest2ID, p.Interest3ID, p.Interest4ID, p.Interest5ID}
}

// Interests 预加载后的五个课题
func (p *Participant) Interests() []Topic {
	return []Topic{p.Interest1, p.Interest2, p.Interest3, p.Interest4, p.Interest5}
}

func (p *Participant) BeforeSave(tx *gorm.DB) error {
	if p.HighSchoolID == "" {
		return ErrMissingReference
	}
	for _, id := range p.InterestIDs() {
		if id == "" {
			return ErrMissingReference
		}
	}
	return nil
}

// ParticipantURL 只有 id 时拼接详情页地址
func ParticipantURL(id string) string {
	return participantPath + id
}
