package services

import (
	"tarokatalog_backend/internal/appErrors"
	"tarokatalog_backend/internal/models"
	"tarokatalog_backend/internal/repositories"
	"tarokatalog_backend/internal/services/dto"

	"gorm.io/gorm"
)

type StatsService interface {
	Dashboard(db *gorm.DB) (*dto.StatsResponse, error)
}

type statsService struct {
	tarologistRepo repositories.TarologistRepository
	reviewRepo     repositories.ReviewRepository
	codeRepo       repositories.ReviewCodeRepository
}

func NewStatsService(
	tarologistRepo repositories.TarologistRepository,
	reviewRepo repositories.ReviewRepository,
	codeRepo repositories.ReviewCodeRepository,
) StatsService {
	return &statsService{
		tarologistRepo: tarologistRepo,
		reviewRepo:     reviewRepo,
		codeRepo:       codeRepo,
	}
}

func (s *statsService) Dashboard(db *gorm.DB) (*dto.StatsResponse, error) {
	stats := &dto.StatsResponse{}

	var err error
	if stats.Tarologists, err = s.tarologistRepo.Count(db); err != nil {
		return nil, appErrors.DatabaseError(err)
	}
	if stats.ActiveTarologists, err = s.tarologistRepo.CountActive(db); err != nil {
		return nil, appErrors.DatabaseError(err)
	}
	if stats.PendingReviews, err = s.reviewRepo.CountByStatus(db, models.ReviewStatusPending); err != nil {
		return nil, appErrors.DatabaseError(err)
	}
	if stats.ApprovedReviews, err = s.reviewRepo.CountByStatus(db, models.ReviewStatusApproved); err != nil {
		return nil, appErrors.DatabaseError(err)
	}
	if stats.IssuedCodes, err = s.codeRepo.CountByStatus(db, models.CodeStatusIssued); err != nil {
		return nil, appErrors.DatabaseError(err)
	}
	if stats.UsedCodes, err = s.codeRepo.CountByStatus(db, models.CodeStatusUsed); err != nil {
		return nil, appErrors.DatabaseError(err)
	}

	return stats, nil
}
