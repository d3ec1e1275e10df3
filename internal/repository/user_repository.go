//go:generate mockery --name UserRepository --output ./mocks --outpkg mocks --case=underscore
package repository

import (
	"context"
	"fmt"

	"sentencebase/internal/middleware"
	"sentencebase/internal/model"

	"cloud.google.com/go/firestore"
	"google.golang.org/grpc/codes"
	"google.golang.org/grpc/status"
)

// UserRepository インターフェース
type UserRepository interface {
	Get(ctx context.Context, tx *firestore.Transaction, userUID string) (*model.User, error)
	Create(ctx context.Context, tx *firestore.Transaction, userUID string) error
	IncrementPendingSentences(ctx context.Context, tx *firestore.Transaction, userUID string, delta int64) error
	ResetPendingSentences(ctx context.Context, tx *firestore.Transaction, userUID string) error
	IncrementCounter(ctx context.Context, tx *firestore.Transaction, userUID string, collection model.Collection, delta int64) error
}

type firestoreUserRepository struct {
	client *firestore.Client
}

func NewFirestoreUserRepository(client *firestore.Client) UserRepository {
	return &firestoreUserRepository{client: client}
}

func (r *firestoreUserRepository) doc(userUID string) *firestore.DocumentRef {
	return r.client.Collection(model.CollectionUsers.String()).Doc(userUID)
}

func (r *firestoreUserRepository) Get(ctx context.Context, tx *firestore.Transaction, userUID string) (*model.User, error) {
	logger := middleware.GetLogger(ctx)

	snap, err := getDoc(ctx, tx, r.doc(userUID))
	if err != nil {
		if status.Code(err) == codes.NotFound {
			return nil, model.ErrNotFound
		}
		logger.Error("Error getting user", "error", err, "user_uid", userUID)
		return nil, fmt.Errorf("firestoreUserRepository.Get: %w", err)
	}

	var user model.User
	if err := snap.DataTo(&user); err != nil {
		return nil, fmt.Errorf("firestoreUserRepository.Get: %w", err)
	}
	user.UserUID = snap.Ref.ID
	return &user, nil
}

func (r *firestoreUserRepository) Create(ctx context.Context, tx *firestore.Transaction, userUID string) error {
	logger := middleware.GetLogger(ctx)

	err := tx.Create(r.doc(userUID), map[string]interface{}{
		"pendingSentences": int64(0),
	})
	if err != nil {
		logger.Error("Error creating user document", "error", err, "user_uid", userUID)
		return fmt.Errorf("firestoreUserRepository.Create: %w", err)
	}
	return nil
}

func (r *firestoreUserRepository) IncrementPendingSentences(ctx context.Context, tx *firestore.Transaction, userUID string, delta int64) error {
	err := tx.Update(r.doc(userUID), []firestore.Update{
		{Path: "pendingSentences", Value: firestore.Increment(delta)},
	})
	if err != nil {
		return fmt.Errorf("firestoreUserRepository.IncrementPendingSentences: %w", err)
	}
	return nil
}

// ResetPendingSentences は保留カウンタを0に戻します。
// バッチ作成は保留プール全体を処理するため、減算ではなくリセットになります。
func (r *firestoreUserRepository) ResetPendingSentences(ctx context.Context, tx *firestore.Transaction, userUID string) error {
	err := tx.Update(r.doc(userUID), []firestore.Update{
		{Path: "pendingSentences", Value: int64(0)},
	})
	if err != nil {
		return fmt.Errorf("firestoreUserRepository.ResetPendingSentences: %w", err)
	}
	return nil
}

// IncrementCounter はユーザーごとのコレクション別カウンタを原子的に増減します。
// counters フィールドが無いドキュメントでも動くよう merge set を使います。
func (r *firestoreUserRepository) IncrementCounter(ctx context.Context, tx *firestore.Transaction, userUID string, collection model.Collection, delta int64) error {
	err := tx.Set(r.doc(userUID), map[string]interface{}{
		"counters": map[string]interface{}{
			collection.String(): firestore.Increment(delta),
		},
	}, firestore.MergeAll)
	if err != nil {
		return fmt.Errorf("firestoreUserRepository.IncrementCounter: %w", err)
	}
	return nil
}
