package model

// Contact 聯絡資訊 — 對應 contacts
// 實務上只有一筆，但資料層仍以一般集合處理
type Contact struct {
	Base
	LabName    string  `gorm:"type:varchar(200)"  json:"lab_name"`
	Department string  `gorm:"type:varchar(200)"  json:"department"`
	University string  `gorm:"type:varchar(200)"  json:"university"`
	Address    string  `gorm:"type:text"          json:"address"`
	Phone      string  `gorm:"type:varchar(50)"   json:"phone"`
	Email      string  `gorm:"type:varchar(255)"  json:"email"`
	Latitude   float64 `gorm:"not null;default:0" json:"latitude"`
	Longitude  float64 `gorm:"not null;default:0" json:"longitude"`
}

// TableName 指定表名
func (Contact) TableName() string { return "contacts" }
