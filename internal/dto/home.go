package dto

import "github.com/Rogerszheng0724/my-lab-website/internal/model"

// HomeResponse 首頁聚合資料
// 對應首頁一次載入的區塊：師資、近三年著作、研究方向、在學成員數
type HomeResponse struct {
	Teachers           []model.Teacher     `json:"teachers"`
	RecentPublications []model.Publication `json:"recent_publications"`
	ResearchAreas      []model.Research    `json:"research_areas"`
	CurrentMemberCount int64               `json:"current_member_count"`
}

// StatsResponse 管理後台儀表板的各集合筆數
type StatsResponse struct {
	Teachers     int64 `json:"teachers"`
	Members      int64 `json:"members"`
	Publications int64 `json:"publications"`
	Research     int64 `json:"research"`
	Courses      int64 `json:"courses"`
	Awards       int64 `json:"awards"`
	Galleries    int64 `json:"galleries"`
}
