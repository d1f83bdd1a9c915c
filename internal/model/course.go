package model

// Course 開設課程 — 對應 courses
type Course struct {
	Base
	Title      string `gorm:"type:varchar(200);not null" json:"title"`
	Code       string `gorm:"type:varchar(50)"           json:"code"`
	Semester   string `gorm:"type:varchar(10)"           json:"semester"` // 1 | 2 | 暑期
	Year       int    `gorm:"not null;default:0"         json:"year"`
	Credits    int    `gorm:"not null;default:0"         json:"credits"`
	Level      string `gorm:"type:varchar(50)"           json:"level"` // 大學部 | 碩士班 | 博士班
	Instructor string `gorm:"type:varchar(100)"          json:"instructor"`
}

// TableName 指定表名
func (Course) TableName() string { return "courses" }
