package model

// Publication 論文著作 — 對應 publications
type Publication struct {
	Base
	Title    string `gorm:"type:text;not null" json:"title"`
	Authors  string `gorm:"type:text"          json:"authors"`
	Journal  string `gorm:"type:text"          json:"journal"`
	Year     int    `gorm:"not null;default:0" json:"year"`
	Type     string `gorm:"type:varchar(50)"   json:"type"` // 期刊論文 | 會議論文 ...
	DOI      string `gorm:"type:varchar(200)"  json:"doi"`
	PDFURL   string `gorm:"type:text"          json:"pdf_url"`
	Abstract string `gorm:"type:text"          json:"abstract"`
}

// TableName 指定表名
func (Publication) TableName() string { return "publications" }
