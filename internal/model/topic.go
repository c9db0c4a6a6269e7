package model

type Topic struct {
	Model
	Name string `gorm:"type:varchar(100);not null" json:"name"`
}

func (t *Topic) URL() string {
	return "/index/topic/" + t.ID
}
