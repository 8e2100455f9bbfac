package services

import (
	"fmt"
	"strings"
	"time"
	"unicode/utf8"

	"tarokatalog_backend/internal/appErrors"
	"tarokatalog_backend/internal/config"
	"tarokatalog_backend/internal/email"
	"tarokatalog_backend/internal/logger"
	"tarokatalog_backend/internal/models"
	"tarokatalog_backend/internal/repositories"
	"tarokatalog_backend/internal/services/dto"

	"gorm.io/gorm"
)

type ReviewService interface {
	// SubmitReview - финальный шаг мастера отзыва: повторная
	// проверка кода, создание pending отзыва и погашение кода.
	SubmitReview(db *gorm.DB, req *dto.SubmitReviewRequest) error
	ModerateReview(db *gorm.DB, adminID, reviewID string, req *dto.ModerateReviewRequest) (*dto.ReviewResponse, error)
	ListByStatus(db *gorm.DB, status string) ([]dto.ReviewResponse, error)
}

type reviewService struct {
	reviewRepo     repositories.ReviewRepository
	codeRepo       repositories.ReviewCodeRepository
	tarologistRepo repositories.TarologistRepository
	emailProvider  email.Provider
}

func NewReviewService(
	reviewRepo repositories.ReviewRepository,
	codeRepo repositories.ReviewCodeRepository,
	tarologistRepo repositories.TarologistRepository,
	emailProvider email.Provider,
) ReviewService {
	return &reviewService{
		reviewRepo:     reviewRepo,
		codeRepo:       codeRepo,
		tarologistRepo: tarologistRepo,
		emailProvider:  emailProvider,
	}
}

func (s *reviewService) SubmitReview(db *gorm.DB, req *dto.SubmitReviewRequest) error {
	clientName := strings.TrimSpace(req.ClientName)
	text := strings.TrimSpace(req.Text)

	// Все проверки ввода до какой-либо записи
	if clientName == "" {
		return appErrors.NewBadRequestError("Все поля обязательны")
	}
	if req.Rating < 1 || req.Rating > 5 {
		return appErrors.NewBadRequestError("Рейтинг должен быть от 1 до 5")
	}
	textLen := utf8.RuneCountInString(text)
	if textLen < models.ReviewTextMinLen || textLen > models.ReviewTextMaxLen {
		return appErrors.NewBadRequestError(
			fmt.Sprintf("Отзыв должен содержать от %d до %d символов",
				models.ReviewTextMinLen, models.ReviewTextMaxLen))
	}

	// Повторная проверка кода. Любое несовпадение (чужой таролог,
	// уже использован, не найден) наружу выглядит одинаково: в
	// отличие от валидатора, финальный шаг не раскрывает причину.
	rc, err := s.codeRepo.FindByID(db, req.CodeID)
	if err != nil {
		if err == repositories.ErrCodeNotFound {
			return appErrors.ErrInvalidCode
		}
		return appErrors.DatabaseError(err)
	}
	if rc.TarologistID != req.TarologistID || rc.Status != models.CodeStatusIssued {
		return appErrors.ErrInvalidCode
	}

	// Между валидацией и отправкой могло пройти время
	if rc.IsTimeExpired(time.Now()) {
		if err := s.codeRepo.MarkExpired(db, rc.ID); err != nil {
			return appErrors.DatabaseError(err)
		}
		return appErrors.ErrCodeExpired
	}

	review := &models.Review{
		TarologistID: req.TarologistID,
		CodeID:       &req.CodeID,
		ClientName:   clientName,
		Rating:       req.Rating,
		Text:         text,
		Status:       models.ReviewStatusPending,
	}

	// Отзыв и погашение кода фиксируются атомарно: сбой между двумя
	// записями не оставит pending отзыв с переиспользуемым кодом.
	err = db.Transaction(func(tx *gorm.DB) error {
		if err := s.reviewRepo.Create(tx, review); err != nil {
			return err
		}
		return s.codeRepo.MarkUsed(tx, rc.ID, time.Now())
	})
	if err != nil {
		if err == repositories.ErrCodeConsumed {
			// Проигранная гонка за тот же код
			return appErrors.ErrInvalidCode
		}
		return appErrors.DatabaseError(err)
	}

	go s.notifyModerators(review)

	return nil
}

// ModerateReview выставляет терминальный статус и синхронно
// пересчитывает кэшированный рейтинг таролога.
func (s *reviewService) ModerateReview(db *gorm.DB, adminID, reviewID string, req *dto.ModerateReviewRequest) (*dto.ReviewResponse, error) {
	review, err := s.reviewRepo.FindByID(db, reviewID)
	if err != nil {
		if err == repositories.ErrReviewNotFound {
			return nil, appErrors.ErrReviewNotFound
		}
		return nil, appErrors.DatabaseError(err)
	}

	now := time.Now()
	review.Status = req.Status
	review.ModeratedAt = &now
	review.ModeratedBy = &adminID

	err = db.Transaction(func(tx *gorm.DB) error {
		if err := s.reviewRepo.Update(tx, review); err != nil {
			return err
		}
		return s.tarologistRepo.UpdateRating(tx, review.TarologistID)
	})
	if err != nil {
		return nil, appErrors.DatabaseError(err)
	}

	resp := buildReviewResponse(review, "")
	return &resp, nil
}

func (s *reviewService) ListByStatus(db *gorm.DB, status string) ([]dto.ReviewResponse, error) {
	var (
		reviews []models.Review
		err     error
	)
	if status == "" {
		reviews, err = s.reviewRepo.FindAll(db)
	} else {
		reviews, err = s.reviewRepo.FindByStatus(db, status)
	}
	if err != nil {
		return nil, appErrors.DatabaseError(err)
	}

	result := make([]dto.ReviewResponse, 0, len(reviews))
	for _, r := range reviews {
		result = append(result, buildReviewResponse(&r, r.Tarologist.Name))
	}
	return result, nil
}

// notifyModerators шлет best-effort письмо о новом отзыве в очереди.
// Ошибка отправки логируется и никогда не валит сам запрос.
func (s *reviewService) notifyModerators(review *models.Review) {
	cfg := config.GetConfig()
	if s.emailProvider == nil || len(cfg.Email.ModeratorsTo) == 0 {
		return
	}

	msg := &email.Email{
		From:    cfg.Email.FromEmail,
		To:      cfg.Email.ModeratorsTo,
		Subject: "Новый отзыв на модерации",
		Body: fmt.Sprintf(
			"Клиент %s оставил отзыв с оценкой %d. Отзыв ждет модерации в админке.",
			review.ClientName, review.Rating),
	}
	if err := s.emailProvider.Send(msg); err != nil {
		logger.Warn("failed to send moderation notification",
			"review_id", review.ID, "error", err.Error())
	}
}

func buildReviewResponse(r *models.Review, tarologistName string) dto.ReviewResponse {
	return dto.ReviewResponse{
		ID:             r.ID,
		TarologistID:   r.TarologistID,
		TarologistName: tarologistName,
		ClientName:     r.ClientName,
		Rating:         r.Rating,
		Text:           r.Text,
		Status:         r.Status,
		CreatedAt:      r.CreatedAt,
		ModeratedAt:    r.ModeratedAt,
	}
}
