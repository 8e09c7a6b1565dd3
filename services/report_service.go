package services

import (
	"context"

	"tourbooking/repository"
)

type ReportService struct {
	Repo *repository.ReportRepository
}

func NewReportService(repo *repository.ReportRepository) *ReportService {
	return &ReportService{Repo: repo}
}

func (s *ReportService) Dashboard(ctx context.Context) (*repository.Summary, error) {
	return s.Repo.Summary(ctx)
}
