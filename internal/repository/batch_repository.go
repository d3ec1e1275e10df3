//go:generate mockery --name BatchRepository --output ./mocks --outpkg mocks --case=underscore
package repository

import (
	"context"
	"fmt"

	"sentencebase/internal/middleware"
	"sentencebase/internal/model"

	"cloud.google.com/go/firestore"
)

// BatchRepository インターフェース
// バッチは不変のスナップショットなので作成のみを提供します。
type BatchRepository interface {
	Create(ctx context.Context, tx *firestore.Transaction, batch *model.Batch) (string, error)
}

type firestoreBatchRepository struct {
	client *firestore.Client
}

func NewFirestoreBatchRepository(client *firestore.Client) BatchRepository {
	return &firestoreBatchRepository{client: client}
}

func (r *firestoreBatchRepository) Create(ctx context.Context, tx *firestore.Transaction, batch *model.Batch) (string, error) {
	logger := middleware.GetLogger(ctx)

	ref := r.client.Collection(model.CollectionBatches.String()).NewDoc()
	err := tx.Create(ref, map[string]interface{}{
		"userUid":   batch.UserUID,
		"sentences": batch.Sentences,
		"createdAt": firestore.ServerTimestamp,
		"updatedAt": firestore.ServerTimestamp,
	})
	if err != nil {
		logger.Error("Error creating batch",
			"error", err,
			"user_uid", batch.UserUID,
			"sentence_count", len(batch.Sentences),
		)
		return "", fmt.Errorf("firestoreBatchRepository.Create: %w", err)
	}
	return ref.ID, nil
}
