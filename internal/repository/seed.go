package repository

import (
	"context"

	"github.com/Rogerszheng0724/my-lab-website/internal/model"
)

// Seed 寫入展示模式的示範資料
// 只在記憶體資料層啟動時呼叫，內容對應網站上線前的範例頁面
func Seed(ctx context.Context, repo *Repository) error {
	teachers := []model.Teacher{
		{
			Name:      "陳建宏",
			Title:     "指導教授",
			Email:     "chchen@test.com",
			Office:    "電資大樓 707室",
			Bio:       "專長於機器學習與資料探勘...",
			IsPrimary: true,
			PhotoURL:  "https://images.unsplash.com/photo-1573496359142-b8d87734a5a2?w=100&h=100&fit=crop",
		},
	}
	for i := range teachers {
		if err := repo.Teachers.Create(ctx, &teachers[i]); err != nil {
			return err
		}
	}

	members := []model.Member{
		{Name: "王小明", Position: "碩士生", Status: model.MemberStatusActive, Year: "2023", ResearchTopic: "深度學習應用"},
		{Name: "李美麗", Position: "博士生", Status: model.MemberStatusActive, Year: "2021", ResearchTopic: "自然語言處理"},
	}
	for i := range members {
		if err := repo.Members.Create(ctx, &members[i]); err != nil {
			return err
		}
	}

	publications := []model.Publication{
		{Title: "一個新的演算法", Authors: "陳建宏, 王小明", Journal: "IEEE Transactions", Year: 2024, Type: "期刊論文"},
	}
	for i := range publications {
		if err := repo.Publications.Create(ctx, &publications[i]); err != nil {
			return err
		}
	}

	research := []model.Research{
		{Title: "AI於醫療影像的應用", Description: "本研究旨在利用深度學習模型分析醫療影像...", Type: model.ResearchTypeArea, Status: "進行中"},
	}
	for i := range research {
		if err := repo.Research.Create(ctx, &research[i]); err != nil {
			return err
		}
	}

	courses := []model.Course{
		{Title: "機器學習導論", Code: "CS501", Semester: "1", Year: 2023, Credits: 3, Level: "碩士班", Instructor: "陳建宏"},
	}
	for i := range courses {
		if err := repo.Courses.Create(ctx, &courses[i]); err != nil {
			return err
		}
	}

	awards := []model.Award{
		{Title: "最佳論文獎", Recipient: "王小明", Organization: "全國計算機會議", Year: 2023, Category: "學生獎項"},
	}
	for i := range awards {
		if err := repo.Awards.Create(ctx, &awards[i]); err != nil {
			return err
		}
	}

	galleries := []model.Gallery{
		{
			Title:         "2023 實驗室尾牙",
			Description:   "年度實驗室聚餐",
			CoverImageURL: "https://images.unsplash.com/photo-1527529482837-4698179dc6ce?w=400&h=300&fit=crop",
			Images:        model.ImageList{},
			EventDate:     "2023-12-31",
			Category:      "實驗室活動",
		},
	}
	for i := range galleries {
		if err := repo.Galleries.Create(ctx, &galleries[i]); err != nil {
			return err
		}
	}

	contacts := []model.Contact{
		{
			LabName:    "多媒體機器學習實驗室",
			Department: "資訊管理學系",
			University: "國立中央大學",
			Address:    "320桃園市中壢區中大路300號",
			Phone:      "03-4227151 #66500",
			Email:      "swgke@ncu.edu.tw",
			Latitude:   24.9678,
			Longitude:  121.1915,
		},
	}
	for i := range contacts {
		if err := repo.Contacts.Create(ctx, &contacts[i]); err != nil {
			return err
		}
	}

	return nil
}
