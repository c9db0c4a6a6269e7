package model

type HighSchool struct {
	Model
	Name string `gorm:"type:varchar(100);not null;index" json:"name"`
}

func (h *HighSchool) URL() string {
	return "/index/highschool/" + h.ID
}
