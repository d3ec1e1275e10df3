//go:generate mockery --name SentenceRepository --output ./mocks --outpkg mocks --case=underscore
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

// SentenceRepository インターフェース
type SentenceRepository interface {
	FindPendingByUser(ctx context.Context, tx *firestore.Transaction, userUID string) ([]*model.Sentence, error)
	GetPending(ctx context.Context, tx *firestore.Transaction, userUID, sentenceID string) (*model.Sentence, error)
	GetBacklog(ctx context.Context, tx *firestore.Transaction, userUID, sentenceID string) (*model.Sentence, error)
	Create(ctx context.Context, tx *firestore.Transaction, sentence *model.Sentence) (string, error)
	UpdateText(ctx context.Context, tx *firestore.Transaction, sentenceID, text string, tags []string) error
	MarkProcessed(ctx context.Context, tx *firestore.Transaction, sentenceID string, mined bool) error
	MarkMined(ctx context.Context, tx *firestore.Transaction, sentenceID string) error
	Delete(ctx context.Context, tx *firestore.Transaction, sentenceID string) error
}

type firestoreSentenceRepository struct {
	client *firestore.Client
}

func NewFirestoreSentenceRepository(client *firestore.Client) SentenceRepository {
	return &firestoreSentenceRepository{client: client}
}

func (r *firestoreSentenceRepository) col() *firestore.CollectionRef {
	return r.client.Collection(model.CollectionSentences.String())
}

// FindPendingByUser はユーザーの保留中の例文プール全体を返します。
func (r *firestoreSentenceRepository) FindPendingByUser(ctx context.Context, tx *firestore.Transaction, userUID string) ([]*model.Sentence, error) {
	logger := middleware.GetLogger(ctx)

	query := r.col().
		Where("userUid", "==", userUID).
		Where("isPending", "==", true).
		OrderBy("createdAt", firestore.Desc)

	snaps, err := getDocs(ctx, tx, query)
	if err != nil {
		logger.Error("Error querying pending sentences",
			"error", err,
			"user_uid", userUID,
		)
		return nil, fmt.Errorf("firestoreSentenceRepository.FindPendingByUser: %w", err)
	}

	sentences := make([]*model.Sentence, 0, len(snaps))
	for _, snap := range snaps {
		sentence, err := sentenceFromSnapshot(snap)
		if err != nil {
			return nil, err
		}
		sentences = append(sentences, sentence)
	}
	return sentences, nil
}

// GetPending は保留中の例文をIDで取得します。
// 存在しない・他ユーザー所有・保留中でない、はいずれも ErrNotFound になります
// (他ユーザーへの存在情報の漏えいを防ぐため区別しない)。
func (r *firestoreSentenceRepository) GetPending(ctx context.Context, tx *firestore.Transaction, userUID, sentenceID string) (*model.Sentence, error) {
	sentence, err := r.get(ctx, tx, userUID, sentenceID)
	if err != nil {
		return nil, err
	}
	if !sentence.IsPending {
		return nil, model.ErrNotFound
	}
	return sentence, nil
}

// GetBacklog はバックログ (処理済みだが未採掘) の例文をIDで取得します。
func (r *firestoreSentenceRepository) GetBacklog(ctx context.Context, tx *firestore.Transaction, userUID, sentenceID string) (*model.Sentence, error) {
	sentence, err := r.get(ctx, tx, userUID, sentenceID)
	if err != nil {
		return nil, err
	}
	if sentence.IsPending || sentence.IsMined {
		return nil, model.ErrNotFound
	}
	return sentence, nil
}

func (r *firestoreSentenceRepository) get(ctx context.Context, tx *firestore.Transaction, userUID, sentenceID string) (*model.Sentence, error) {
	logger := middleware.GetLogger(ctx)

	snap, err := getDoc(ctx, tx, r.col().Doc(sentenceID))
	if err != nil {
		if status.Code(err) == codes.NotFound {
			return nil, model.ErrNotFound
		}
		logger.Error("Error getting sentence by ID",
			"error", err,
			"user_uid", userUID,
			"sentence_id", sentenceID,
		)
		return nil, fmt.Errorf("firestoreSentenceRepository.get: %w", err)
	}

	sentence, err := sentenceFromSnapshot(snap)
	if err != nil {
		return nil, err
	}
	if sentence.UserUID != userUID {
		return nil, model.ErrNotFound
	}
	return sentence, nil
}

func (r *firestoreSentenceRepository) Create(ctx context.Context, tx *firestore.Transaction, sentence *model.Sentence) (string, error) {
	logger := middleware.GetLogger(ctx)

	ref := r.col().NewDoc()
	err := tx.Create(ref, map[string]interface{}{
		"userUid":   sentence.UserUID,
		"wordId":    sentence.WordID,
		"sentence":  sentence.Sentence,
		"tags":      sentence.Tags,
		"isPending": true,
		"isMined":   false,
		"createdAt": firestore.ServerTimestamp,
		"updatedAt": firestore.ServerTimestamp,
	})
	if err != nil {
		logger.Error("Error creating sentence",
			"error", err,
			"user_uid", sentence.UserUID,
			"word_id", sentence.WordID,
		)
		return "", fmt.Errorf("firestoreSentenceRepository.Create: %w", err)
	}
	return ref.ID, nil
}

func (r *firestoreSentenceRepository) UpdateText(ctx context.Context, tx *firestore.Transaction, sentenceID, text string, tags []string) error {
	err := tx.Update(r.col().Doc(sentenceID), []firestore.Update{
		{Path: "sentence", Value: text},
		{Path: "tags", Value: tags},
		{Path: "updatedAt", Value: firestore.ServerTimestamp},
	})
	if err != nil {
		return fmt.Errorf("firestoreSentenceRepository.UpdateText: %w", err)
	}
	return nil
}

// MarkProcessed は例文を保留プールから外します。
// mined が true の場合はバッチに選択されたことを示し、採掘済みにもします。
func (r *firestoreSentenceRepository) MarkProcessed(ctx context.Context, tx *firestore.Transaction, sentenceID string, mined bool) error {
	updates := []firestore.Update{
		{Path: "isPending", Value: false},
		{Path: "updatedAt", Value: firestore.ServerTimestamp},
	}
	if mined {
		updates = append(updates, firestore.Update{Path: "isMined", Value: true})
	}

	err := tx.Update(r.col().Doc(sentenceID), updates)
	if err != nil {
		return fmt.Errorf("firestoreSentenceRepository.MarkProcessed: %w", err)
	}
	return nil
}

// MarkMined はバックログの例文を採掘済みにします。isPending には触れません。
func (r *firestoreSentenceRepository) MarkMined(ctx context.Context, tx *firestore.Transaction, sentenceID string) error {
	err := tx.Update(r.col().Doc(sentenceID), []firestore.Update{
		{Path: "isMined", Value: true},
		{Path: "updatedAt", Value: firestore.ServerTimestamp},
	})
	if err != nil {
		return fmt.Errorf("firestoreSentenceRepository.MarkMined: %w", err)
	}
	return nil
}

func (r *firestoreSentenceRepository) Delete(ctx context.Context, tx *firestore.Transaction, sentenceID string) error {
	err := tx.Delete(r.col().Doc(sentenceID))
	if err != nil {
		return fmt.Errorf("firestoreSentenceRepository.Delete: %w", err)
	}
	return nil
}

func sentenceFromSnapshot(snap *firestore.DocumentSnapshot) (*model.Sentence, error) {
	var sentence model.Sentence
	if err := snap.DataTo(&sentence); err != nil {
		return nil, fmt.Errorf("sentenceFromSnapshot: %w", err)
	}
	sentence.SentenceID = snap.Ref.ID
	return &sentence, nil
}
