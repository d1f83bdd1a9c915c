package service

import (
	"context"
	"errors"
	"strings"
	"testing"

	"go.uber.org/zap"

	"github.com/Rogerszheng0724/my-lab-website/internal/model"
	"github.com/Rogerszheng0724/my-lab-website/internal/repository"
)

func TestExportServicePublications(t *testing.T) {
	repo := repository.NewMemoryRepository()
	svc := NewExportService(repo, zap.NewNop())
	ctx := context.Background()

	repo.Publications.Create(ctx, &model.Publication{Title: "甲論文", Year: 2023})
	repo.Publications.Create(ctx, &model.Publication{Title: "乙論文", Year: 2024})

	buf, filename, err := svc.Export(ctx, "publications")
	if err != nil {
		t.Fatalf("匯出失敗: %v", err)
	}
	if buf.Len() == 0 {
		t.Error("匯出內容不應為空")
	}
	if !strings.HasPrefix(filename, "publications_") || !strings.HasSuffix(filename, ".xlsx") {
		t.Errorf("檔名格式不符: %q", filename)
	}
}

func TestExportServiceUnknownEntity(t *testing.T) {
	svc := NewExportService(repository.NewMemoryRepository(), zap.NewNop())

	_, _, err := svc.Export(context.Background(), "nonsense")
	if !errors.Is(err, ErrExportUnknownEntity) {
		t.Fatalf("未知項目應回傳 ErrExportUnknownEntity，實際為 %v", err)
	}
}

func TestExportServiceEmpty(t *testing.T) {
	svc := NewExportService(repository.NewMemoryRepository(), zap.NewNop())

	_, _, err := svc.Export(context.Background(), "awards")
	if !errors.Is(err, ErrExportEmpty) {
		t.Fatalf("空集合應回傳 ErrExportEmpty，實際為 %v", err)
	}
}
