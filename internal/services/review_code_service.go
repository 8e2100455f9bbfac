package services

import (
	"math/rand"
	"time"

	"tarokatalog_backend/internal/appErrors"
	"tarokatalog_backend/internal/config"
	"tarokatalog_backend/internal/logger"
	"tarokatalog_backend/internal/models"
	"tarokatalog_backend/internal/repositories"
	"tarokatalog_backend/internal/services/dto"

	"gorm.io/gorm"
)

const (
	// Предел попыток подбора одного кода. При 32^6 комбинаций
	// исчерпание означает баг генератора, а не заполненность таблицы.
	maxCodeAttempts = 100

	// Предел повторных вставок партии при конфликте уникального
	// индекса (гонка с параллельной выдачей).
	maxBatchAttempts = 3
)

type ReviewCodeService interface {
	IssueCodes(db *gorm.DB, req *dto.IssueCodesRequest) (*dto.IssueCodesResponse, error)
	ValidateCode(db *gorm.DB, req *dto.ValidateCodeRequest) (*dto.ValidateCodeResponse, error)
	ListCodes(db *gorm.DB, filter repositories.CodeFilter) ([]dto.CodeResponse, error)
}

type reviewCodeService struct {
	codeRepo       repositories.ReviewCodeRepository
	tarologistRepo repositories.TarologistRepository
}

func NewReviewCodeService(
	codeRepo repositories.ReviewCodeRepository,
	tarologistRepo repositories.TarologistRepository,
) ReviewCodeService {
	return &reviewCodeService{
		codeRepo:       codeRepo,
		tarologistRepo: tarologistRepo,
	}
}

// GenerateCode возвращает случайный код из алфавита
func GenerateCode() string {
	b := make([]byte, models.ReviewCodeLength)
	for i := range b {
		b[i] = models.ReviewCodeAlphabet[rand.Intn(len(models.ReviewCodeAlphabet))]
	}
	return string(b)
}

// ClampCount приводит запрошенное количество кодов к [1, max].
// nil означает, что поле не передано - берется дефолт партии;
// явный 0 приводится к 1, как и любое значение меньше единицы.
func ClampCount(count *int, def, max int) int {
	n := def
	if count != nil {
		n = *count
	}
	if n < 1 {
		return 1
	}
	if n > max {
		return max
	}
	return n
}

// IssueCodes выдает партию уникальных кодов для таролога.
// Уникальность обеспечивается в два слоя: проверка перед вставкой
// плюс уникальный индекс на колонке code; конфликт индекса — сигнал
// повторить партию.
func (s *reviewCodeService) IssueCodes(db *gorm.DB, req *dto.IssueCodesRequest) (*dto.IssueCodesResponse, error) {
	cfg := config.GetConfig()

	if _, err := s.tarologistRepo.FindByID(db, req.TarologistID); err != nil {
		if err == repositories.ErrTarologistNotFound {
			return nil, appErrors.ErrTarologistNotFound
		}
		return nil, appErrors.DatabaseError(err)
	}

	count := ClampCount(req.Count, cfg.Codes.DefaultBatch, cfg.Codes.MaxBatch)
	expiresAt := time.Now().Add(time.Duration(cfg.Codes.TTLDays) * 24 * time.Hour)

	for attempt := 1; ; attempt++ {
		codes, records, err := s.generateBatch(db, req.TarologistID, count, expiresAt)
		if err != nil {
			return nil, err
		}

		err = s.codeRepo.BulkCreate(db, records)
		if err == nil {
			return &dto.IssueCodesResponse{Codes: codes}, nil
		}
		if err != repositories.ErrDuplicateCode || attempt >= maxBatchAttempts {
			return nil, appErrors.DatabaseError(err)
		}
		// Параллельная выдача успела занять один из кодов между
		// проверкой и вставкой. Вся партия не зафиксирована,
		// генерируем заново.
		logger.Warn("review code batch collided, retrying",
			"tarologist_id", req.TarologistID, "attempt", attempt)
	}
}

// generateBatch подбирает count кодов, не встречающихся ни в
// хранилище, ни внутри самой партии.
func (s *reviewCodeService) generateBatch(db *gorm.DB, tarologistID string, count int, expiresAt time.Time) ([]string, []models.ReviewCode, error) {
	codes := make([]string, 0, count)
	records := make([]models.ReviewCode, 0, count)
	inBatch := make(map[string]bool, count)

	for len(codes) < count {
		var accepted bool
		for attempt := 0; attempt < maxCodeAttempts; attempt++ {
			code := GenerateCode()
			if inBatch[code] {
				continue
			}
			exists, err := s.codeRepo.CodeExists(db, code)
			if err != nil {
				return nil, nil, appErrors.DatabaseError(err)
			}
			if exists {
				continue
			}

			inBatch[code] = true
			codes = append(codes, code)
			records = append(records, models.ReviewCode{
				TarologistID: tarologistID,
				Code:         code,
				Status:       models.CodeStatusIssued,
				ExpiresAt:    expiresAt,
			})
			accepted = true
			break
		}
		if !accepted {
			return nil, nil, appErrors.NewBadRequestError("Не удалось сгенерировать уникальный код")
		}
	}

	return codes, records, nil
}

// ValidateCode проверяет код, введенный клиентом в мастере отзыва.
// На успехе ничего не мутирует; единственный side effect — ленивый
// перевод просроченного issued кода в expired.
func (s *reviewCodeService) ValidateCode(db *gorm.DB, req *dto.ValidateCodeRequest) (*dto.ValidateCodeResponse, error) {
	code := NormalizeCode(req.Code)

	rc, err := s.codeRepo.FindByCode(db, code)
	if err != nil {
		if err == repositories.ErrCodeNotFound {
			return nil, appErrors.ErrCodeNotFound
		}
		return nil, appErrors.DatabaseError(err)
	}

	switch {
	case rc.Status == models.CodeStatusUsed:
		return nil, appErrors.ErrCodeUsed
	case rc.Status == models.CodeStatusExpired:
		return nil, appErrors.ErrCodeExpired
	case rc.IsTimeExpired(time.Now()):
		// Ленивый переход issued -> expired при первом чтении
		if err := s.codeRepo.MarkExpired(db, rc.ID); err != nil {
			return nil, appErrors.DatabaseError(err)
		}
		return nil, appErrors.ErrCodeExpired
	}

	return &dto.ValidateCodeResponse{
		CodeID:         rc.ID,
		TarologistID:   rc.TarologistID,
		TarologistName: rc.Tarologist.Name,
	}, nil
}

func (s *reviewCodeService) ListCodes(db *gorm.DB, filter repositories.CodeFilter) ([]dto.CodeResponse, error) {
	codes, err := s.codeRepo.List(db, filter)
	if err != nil {
		return nil, appErrors.DatabaseError(err)
	}

	result := make([]dto.CodeResponse, 0, len(codes))
	for _, c := range codes {
		result = append(result, dto.CodeResponse{
			ID:             c.ID,
			TarologistID:   c.TarologistID,
			TarologistName: c.Tarologist.Name,
			Code:           c.Code,
			Status:         effectiveCodeStatus(&c, time.Now()),
			CreatedAt:      c.CreatedAt,
			ExpiresAt:      c.ExpiresAt,
			UsedAt:         c.UsedAt,
		})
	}
	return result, nil
}

// effectiveCodeStatus - статус кода с учетом времени: просроченный
// issued показывается как expired еще до ленивого обновления записи.
func effectiveCodeStatus(c *models.ReviewCode, now time.Time) string {
	if c.Status == models.CodeStatusIssued && c.IsTimeExpired(now) {
		return models.CodeStatusExpired
	}
	return c.Status
}
