package service

import (
	"bytes"
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/xuri/excelize/v2"
	"go.uber.org/zap"

	"github.com/Rogerszheng0724/my-lab-website/internal/repository"
)

// ── 匯出模組業務錯誤 ──

var (
	ErrExportUnknownEntity = errors.New("不支援的匯出項目")
	ErrExportEmpty         = errors.New("沒有可匯出的資料")
)

// ExportService 匯出業務介面
//
// 設計說明：
//   - 後台各列表可匯出為 Excel (.xlsx)，供填寫系所年度報告使用
//   - 匯出以 bytes.Buffer 回傳，由 Handler 層設定 HTTP 回應標頭後寫入 Response
//   - 每種項目一個 Sheet，第一列為欄位標題
type ExportService interface {
	// Export 將指定集合匯出為 Excel；回傳內容緩衝與建議檔名
	Export(ctx context.Context, entity string) (*bytes.Buffer, string, error)
}

type exportService struct {
	repo   *repository.Repository
	logger *zap.Logger
}

// NewExportService 建立 ExportService 實例
func NewExportService(repo *repository.Repository, logger *zap.Logger) ExportService {
	return &exportService{repo: repo, logger: logger}
}

func (s *exportService) Export(ctx context.Context, entity string) (*bytes.Buffer, string, error) {
	var (
		sheet  string
		header []string
		rows   [][]any
	)

	switch entity {
	case "publications":
		sheet = "論文著作"
		header = []string{"ID", "標題", "作者", "期刊/會議", "年份", "類型", "DOI"}
		pubs, err := s.repo.Publications.List(ctx, repository.Query{Sort: "-year"})
		if err != nil {
			s.logger.Error("查詢論文失敗", zap.Error(err))
			return nil, "", err
		}
		for _, p := range pubs {
			rows = append(rows, []any{p.ID, p.Title, p.Authors, p.Journal, p.Year, p.Type, p.DOI})
		}
	case "members":
		sheet = "實驗室成員"
		header = []string{"ID", "姓名", "職位", "狀態", "入學年", "研究主題", "畢業年"}
		members, err := s.repo.Members.List(ctx, repository.Query{Sort: "year"})
		if err != nil {
			s.logger.Error("查詢成員失敗", zap.Error(err))
			return nil, "", err
		}
		for _, m := range members {
			rows = append(rows, []any{m.ID, m.Name, m.Position, m.Status, m.Year, m.ResearchTopic, m.GraduationYear})
		}
	case "awards":
		sheet = "獲獎紀錄"
		header = []string{"ID", "獎項名稱", "得獎人", "頒獎單位", "年份", "類別"}
		awards, err := s.repo.Awards.List(ctx, repository.Query{Sort: "-year"})
		if err != nil {
			s.logger.Error("查詢獲獎失敗", zap.Error(err))
			return nil, "", err
		}
		for _, a := range awards {
			rows = append(rows, []any{a.ID, a.Title, a.Recipient, a.Organization, a.Year, a.Category})
		}
	case "courses":
		sheet = "開設課程"
		header = []string{"ID", "課程名稱", "課號", "學期", "學年", "學分", "開課班別", "授課教師"}
		courses, err := s.repo.Courses.List(ctx, repository.Query{Sort: "-year"})
		if err != nil {
			s.logger.Error("查詢課程失敗", zap.Error(err))
			return nil, "", err
		}
		for _, c := range courses {
			rows = append(rows, []any{c.ID, c.Title, c.Code, c.Semester, c.Year, c.Credits, c.Level, c.Instructor})
		}
	default:
		return nil, "", ErrExportUnknownEntity
	}

	if len(rows) == 0 {
		return nil, "", ErrExportEmpty
	}

	buf, err := s.writeWorkbook(sheet, header, rows)
	if err != nil {
		s.logger.Error("產生 Excel 檔案失敗", zap.Error(err))
		return nil, "", err
	}

	filename := fmt.Sprintf("%s_%s.xlsx", entity, time.Now().Format("20060102"))
	return buf, filename, nil
}

// writeWorkbook 將標題列與資料列寫入單一 Sheet 的活頁簿
func (s *exportService) writeWorkbook(sheet string, header []string, rows [][]any) (*bytes.Buffer, error) {
	f := excelize.NewFile()
	defer f.Close()

	if err := f.SetSheetName("Sheet1", sheet); err != nil {
		return nil, err
	}

	headerCells := make([]interface{}, len(header))
	for i, h := range header {
		headerCells[i] = h
	}
	if err := f.SetSheetRow(sheet, "A1", &headerCells); err != nil {
		return nil, err
	}

	for i, row := range rows {
		cell, err := excelize.CoordinatesToCellName(1, i+2)
		if err != nil {
			return nil, err
		}
		if err := f.SetSheetRow(sheet, cell, &row); err != nil {
			return nil, err
		}
	}

	buf, err := f.WriteToBuffer()
	if err != nil {
		return nil, err
	}
	return buf, nil
}
