package workers

import (
	"context"
	"time"

	"tarokatalog_backend/internal/logger"
	"tarokatalog_backend/internal/repositories"

	"gorm.io/gorm"
)

// CodeWorker переводит просроченные коды отзывов в статус expired.
// Проверка статуса на чтении остается основной защитой, фоновая
// очистка только приводит данные в порядок для листингов и статистики.
type CodeWorker struct {
	db       *gorm.DB
	codeRepo repositories.ReviewCodeRepository
	interval time.Duration
}

func NewCodeWorker(db *gorm.DB, codeRepo repositories.ReviewCodeRepository, interval time.Duration) *CodeWorker {
	return &CodeWorker{
		db:       db,
		codeRepo: codeRepo,
		interval: interval,
	}
}

// Start запускает фоновую очистку кодов
func (w *CodeWorker) Start(ctx context.Context) {
	go w.sweepExpiredCodes(ctx)
}

func (w *CodeWorker) sweepExpiredCodes(ctx context.Context) {
	ticker := time.NewTicker(w.interval)
	defer ticker.Stop()

	for {
		select {
		case <-ctx.Done():
			logger.Info("Code worker stopped")
			return
		case <-ticker.C:
			affected, err := w.codeRepo.SweepExpired(w.db, time.Now())
			if err != nil {
				logger.WorkerLog("code_worker", "sweep_expired", err)
			} else if affected > 0 {
				logger.Info("Marked review codes as expired", "count", affected)
			}
		}
	}
}
