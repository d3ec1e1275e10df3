//go:generate mockery --name EventRepository --output ./mocks --outpkg mocks --case=underscore
package repository

import (
	"context"
	"fmt"
	"time"

	"sentencebase/internal/middleware"
	"sentencebase/internal/model"

	"cloud.google.com/go/firestore"
	"google.golang.org/grpc/codes"
	"google.golang.org/grpc/status"
)

// EventRepository は処理済みイベントIDの台帳 (eventIds コレクション) のアクセッサです。
type EventRepository interface {
	Exists(ctx context.Context, tx *firestore.Transaction, eventID string) (bool, error)
	Record(ctx context.Context, tx *firestore.Transaction, eventID string) error
	FindExpired(ctx context.Context, olderThan time.Time, limit int) ([]string, error)
	DeleteMulti(ctx context.Context, eventIDs []string) error
}

type firestoreEventRepository struct {
	client *firestore.Client
}

func NewFirestoreEventRepository(client *firestore.Client) EventRepository {
	return &firestoreEventRepository{client: client}
}

func (r *firestoreEventRepository) col() *firestore.CollectionRef {
	return r.client.Collection(model.CollectionEventIDs.String())
}

func (r *firestoreEventRepository) Exists(ctx context.Context, tx *firestore.Transaction, eventID string) (bool, error) {
	logger := middleware.GetLogger(ctx)

	snap, err := getDoc(ctx, tx, r.col().Doc(eventID))
	if err != nil {
		if status.Code(err) == codes.NotFound {
			return false, nil
		}
		logger.Error("Error checking event ID record", "error", err, "event_id", eventID)
		return false, fmt.Errorf("firestoreEventRepository.Exists: %w", err)
	}
	return snap.Exists(), nil
}

func (r *firestoreEventRepository) Record(ctx context.Context, tx *firestore.Transaction, eventID string) error {
	err := tx.Create(r.col().Doc(eventID), map[string]interface{}{
		"createdAt": firestore.ServerTimestamp,
	})
	if err != nil {
		return fmt.Errorf("firestoreEventRepository.Record: %w", err)
	}
	return nil
}

// FindExpired は保持期間を過ぎた台帳エントリのIDを最大 limit 件返します。
func (r *firestoreEventRepository) FindExpired(ctx context.Context, olderThan time.Time, limit int) ([]string, error) {
	logger := middleware.GetLogger(ctx)

	snaps, err := r.col().
		Where("createdAt", "<", olderThan).
		Limit(limit).
		Documents(ctx).GetAll()
	if err != nil {
		logger.Error("Error querying expired event ID records", "error", err)
		return nil, fmt.Errorf("firestoreEventRepository.FindExpired: %w", err)
	}

	ids := make([]string, 0, len(snaps))
	for _, snap := range snaps {
		ids = append(ids, snap.Ref.ID)
	}
	return ids, nil
}

// DeleteMulti は台帳エントリをまとめて削除します。
// 台帳掃除はリクエスト処理から独立しているためトランザクションは不要です。
func (r *firestoreEventRepository) DeleteMulti(ctx context.Context, eventIDs []string) error {
	logger := middleware.GetLogger(ctx)

	bw := r.client.BulkWriter(ctx)
	jobs := make([]*firestore.BulkWriterJob, 0, len(eventIDs))
	for _, id := range eventIDs {
		job, err := bw.Delete(r.col().Doc(id))
		if err != nil {
			bw.End()
			logger.Error("Error enqueueing event ID deletion", "error", err, "event_id", id)
			return fmt.Errorf("firestoreEventRepository.DeleteMulti: %w", err)
		}
		jobs = append(jobs, job)
	}
	bw.End()

	for _, job := range jobs {
		if _, err := job.Results(); err != nil {
			logger.Error("Error deleting event ID record", "error", err)
			return fmt.Errorf("firestoreEventRepository.DeleteMulti: %w", err)
		}
	}
	return nil
}
