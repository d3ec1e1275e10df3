//go:generate mockery --name CounterService --output ./mocks --outpkg mocks --case=underscore
package service

import (
	"context"
	"errors"
	"fmt"
	"time"

	"cloud.google.com/go/firestore"

	"sentencebase/internal/config"
	"sentencebase/internal/middleware"
	"sentencebase/internal/model"
	"sentencebase/internal/repository"
)

type CounterService interface {
	ApplyChangeEvent(ctx context.Context, event *model.ChangeEvent) error
	CleanupEventIDs(ctx context.Context) error
	RunEventIDCleanup(ctx context.Context, interval time.Duration)
}

type counterService struct {
	runner    repository.TxRunner
	userRepo  repository.UserRepository
	metaRepo  repository.MetaRepository
	eventRepo repository.EventRepository
	cfg       *config.Config
}

func NewCounterService(
	runner repository.TxRunner,
	userRepo repository.UserRepository,
	metaRepo repository.MetaRepository,
	eventRepo repository.EventRepository,
	cfg *config.Config,
) CounterService {
	return &counterService{
		runner:    runner,
		userRepo:  userRepo,
		metaRepo:  metaRepo,
		eventRepo: eventRepo,
		cfg:       cfg,
	}
}

// ApplyChangeEvent は変更通知1件をカウンタに反映します。
// イベントIDの台帳で重複配信を検知し、処理済みのイベントは黙って無視します。
// カウンタの更新と台帳への記録は同一トランザクションで行うため、
// 同じイベントが2回数えられることはありません。
func (s *counterService) ApplyChangeEvent(ctx context.Context, event *model.ChangeEvent) error {
	logger := middleware.GetLogger(ctx)

	// meta / eventIds への変更を数えると通知がループするので対象外
	if !event.Collection.Counted() {
		logger.Debug("Skipping change event for uncounted collection", "collection", event.Collection.String(), "event_id", event.EventID)
		return nil
	}

	var delta int64
	switch event.Type {
	case model.ChangeTypeCreate:
		delta = 1
	case model.ChangeTypeDelete:
		delta = -1
	default:
		return model.NewAppError("INVALID_CHANGE_TYPE", "変更種別が不正です。", "changeType", model.ErrInvalidInput)
	}

	err := s.runner.RunTransaction(ctx, func(ctx context.Context, tx *firestore.Transaction) error {
		// --- 読み取りフェーズ ---

		// 1. 台帳を確認。既に処理済みなら何もしない
		processed, err := s.eventRepo.Exists(ctx, tx, event.EventID)
		if err != nil {
			return fmt.Errorf("check event ledger: %w", err)
		}
		if processed {
			logger.Info("Duplicate change event ignored", "event_id", event.EventID)
			return nil
		}

		// 2. ユーザー別カウンタの対象を確認。ユーザーが消えていればグローバルのみ更新する
		updateUserCounter := false
		if event.UserUID != "" {
			_, err := s.userRepo.Get(ctx, tx, event.UserUID)
			switch {
			case err == nil:
				updateUserCounter = true
			case errors.Is(err, model.ErrNotFound):
				logger.Warn("Change event references missing user, skipping user counter", "event_id", event.EventID, "user_uid", event.UserUID)
			default:
				return fmt.Errorf("get user: %w", err)
			}
		}

		// --- 書き込みフェーズ ---

		if updateUserCounter {
			if err := s.userRepo.IncrementCounter(ctx, tx, event.UserUID, event.Collection, delta); err != nil {
				return fmt.Errorf("increment user counter: %w", err)
			}
		}
		if err := s.metaRepo.IncrementCounter(ctx, tx, event.Collection, delta); err != nil {
			return fmt.Errorf("increment global counter: %w", err)
		}
		if err := s.eventRepo.Record(ctx, tx, event.EventID); err != nil {
			return fmt.Errorf("record event id: %w", err)
		}
		return nil
	})

	if err != nil {
		var appErr *model.AppError
		if errors.As(err, &appErr) {
			return err
		}
		logger.Error("Transaction failed for ApplyChangeEvent", "error", err, "event_id", event.EventID)
		return model.ErrInternalServer
	}
	return nil
}

// CleanupEventIDs は保持期間を過ぎた台帳エントリをページ単位で削除します。
// 保持期間は配信の再試行窓より長く設定されている前提です。
func (s *counterService) CleanupEventIDs(ctx context.Context) error {
	logger := middleware.GetLogger(ctx)

	threshold := time.Now().Add(-s.cfg.App.EventIDRetention)
	total := 0

	for {
		ids, err := s.eventRepo.FindExpired(ctx, threshold, config.EventIDCleanupPageSize)
		if err != nil {
			logger.Error("Error finding expired event IDs", "error", err)
			return model.ErrInternalServer
		}
		if len(ids) == 0 {
			break
		}
		if err := s.eventRepo.DeleteMulti(ctx, ids); err != nil {
			logger.Error("Error deleting expired event IDs", "error", err)
			return model.ErrInternalServer
		}
		total += len(ids)
	}

	if total > 0 {
		logger.Info("Expired event IDs cleaned up", "count", total)
	}
	return nil
}

// RunEventIDCleanup は台帳掃除を一定間隔で実行し続けます。
// コンテキストがキャンセルされると停止します。
func (s *counterService) RunEventIDCleanup(ctx context.Context, interval time.Duration) {
	logger := middleware.GetLogger(ctx)
	ticker := time.NewTicker(interval)
	defer ticker.Stop()

	logger.Info("Event ID cleanup loop started", "interval", interval.String())

	for {
		select {
		case <-ctx.Done():
			logger.Info("Event ID cleanup loop stopped")
			return
		case <-ticker.C:
			if err := s.CleanupEventIDs(ctx); err != nil {
				logger.Error("Event ID cleanup run failed", "error", err)
			}
		}
	}
}
