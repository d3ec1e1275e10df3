//go:generate mockery --name MetaRepository --output ./mocks --outpkg mocks --case=underscore
package repository

import (
	"context"
	"fmt"

	"sentencebase/internal/model"

	"cloud.google.com/go/firestore"
)

// MetaRepository は meta/counters シングルトン文書のアクセッサです。
type MetaRepository interface {
	IncrementCounter(ctx context.Context, tx *firestore.Transaction, collection model.Collection, delta int64) error
}

type firestoreMetaRepository struct {
	client *firestore.Client
}

func NewFirestoreMetaRepository(client *firestore.Client) MetaRepository {
	return &firestoreMetaRepository{client: client}
}

// IncrementCounter はグローバルなコレクション別カウンタを原子的に増減します。
func (r *firestoreMetaRepository) IncrementCounter(ctx context.Context, tx *firestore.Transaction, collection model.Collection, delta int64) error {
	ref := r.client.Collection(model.CollectionMeta.String()).Doc(model.MetaCountersDocumentID)
	err := tx.Set(ref, map[string]interface{}{
		collection.String(): firestore.Increment(delta),
	}, firestore.MergeAll)
	if err != nil {
		return fmt.Errorf("firestoreMetaRepository.IncrementCounter: %w", err)
	}
	return nil
}
