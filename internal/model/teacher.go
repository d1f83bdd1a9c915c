package model

// Teacher 指導教授 — 對應 teachers
type Teacher struct {
	Base
	Name      string `gorm:"type:varchar(100);not null" json:"name"`
	Title     string `gorm:"type:varchar(100)"          json:"title"`
	Email     string `gorm:"type:varchar(255)"          json:"email"`
	Office    string `gorm:"type:varchar(200)"          json:"office"`
	Bio       string `gorm:"type:text"                  json:"bio"`
	IsPrimary bool   `gorm:"not null;default:false"     json:"is_primary"`
	PhotoURL  string `gorm:"type:text"                  json:"photo_url"`
}

// TableName 指定表名
func (Teacher) TableName() string { return "teachers" }
