//go:generate mockery --name WordRepository --output ./mocks --outpkg mocks --case=underscore
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

// WordRepository インターフェース
// 読み取り系は tx に nil を渡すとトランザクション外で実行されます。
type WordRepository interface {
	FindByForm(ctx context.Context, tx *firestore.Transaction, userUID, dictionaryForm, reading string) (*model.Word, error)
	Get(ctx context.Context, tx *firestore.Transaction, userUID, wordID string) (*model.Word, error)
	GetMulti(ctx context.Context, tx *firestore.Transaction, userUID string, wordIDs []string) (map[string]*model.Word, error)
	Create(ctx context.Context, tx *firestore.Transaction, word *model.Word) (string, error)
	Resurface(ctx context.Context, tx *firestore.Transaction, wordID string) error
	DecrementFrequency(ctx context.Context, tx *firestore.Transaction, wordID string) error
	UpdateMiningState(ctx context.Context, tx *firestore.Transaction, wordID string, mined bool, buryDelta int64) error
}

type firestoreWordRepository struct {
	client *firestore.Client
}

func NewFirestoreWordRepository(client *firestore.Client) WordRepository {
	return &firestoreWordRepository{client: client}
}

func (r *firestoreWordRepository) col() *firestore.CollectionRef {
	return r.client.Collection(model.CollectionWords.String())
}

// FindByForm は (userUid, dictionaryForm, reading) で単語を検索します。
// この組み合わせは一意なので高々1件しか存在しません。
func (r *firestoreWordRepository) FindByForm(ctx context.Context, tx *firestore.Transaction, userUID, dictionaryForm, reading string) (*model.Word, error) {
	logger := middleware.GetLogger(ctx)

	query := r.col().
		Where("userUid", "==", userUID).
		Where("dictionaryForm", "==", dictionaryForm).
		Where("reading", "==", reading).
		Limit(1)

	snaps, err := getDocs(ctx, tx, query)
	if err != nil {
		logger.Error("Error querying word by form",
			"error", err,
			"user_uid", userUID,
			"dictionary_form", dictionaryForm,
		)
		return nil, fmt.Errorf("firestoreWordRepository.FindByForm: %w", err)
	}
	if len(snaps) == 0 {
		return nil, model.ErrNotFound
	}

	return wordFromSnapshot(snaps[0])
}

func (r *firestoreWordRepository) Get(ctx context.Context, tx *firestore.Transaction, userUID, wordID string) (*model.Word, error) {
	logger := middleware.GetLogger(ctx)

	snap, err := getDoc(ctx, tx, r.col().Doc(wordID))
	if err != nil {
		if status.Code(err) == codes.NotFound {
			return nil, model.ErrNotFound
		}
		logger.Error("Error getting word by ID",
			"error", err,
			"user_uid", userUID,
			"word_id", wordID,
		)
		return nil, fmt.Errorf("firestoreWordRepository.Get: %w", err)
	}

	word, err := wordFromSnapshot(snap)
	if err != nil {
		return nil, err
	}
	// 他ユーザーの単語は存在しないのと区別しない
	if word.UserUID != userUID {
		return nil, model.ErrNotFound
	}
	return word, nil
}

// GetMulti は複数の単語IDをまとめて取得し、ID→Word のマップを返します。
// 存在しないIDや他ユーザー所有のIDはマップに含めず、エラーにもしません。
func (r *firestoreWordRepository) GetMulti(ctx context.Context, tx *firestore.Transaction, userUID string, wordIDs []string) (map[string]*model.Word, error) {
	logger := middleware.GetLogger(ctx)

	if len(wordIDs) == 0 {
		return map[string]*model.Word{}, nil
	}

	refs := make([]*firestore.DocumentRef, 0, len(wordIDs))
	for _, id := range wordIDs {
		refs = append(refs, r.col().Doc(id))
	}

	snaps, err := getDocsMulti(ctx, tx, r.client, refs)
	if err != nil {
		logger.Error("Error getting words by IDs",
			"error", err,
			"user_uid", userUID,
			"count", len(wordIDs),
		)
		return nil, fmt.Errorf("firestoreWordRepository.GetMulti: %w", err)
	}

	words := make(map[string]*model.Word, len(snaps))
	for _, snap := range snaps {
		if !snap.Exists() {
			continue
		}
		word, err := wordFromSnapshot(snap)
		if err != nil {
			return nil, err
		}
		if word.UserUID != userUID {
			continue
		}
		words[word.WordID] = word
	}
	return words, nil
}

func (r *firestoreWordRepository) Create(ctx context.Context, tx *firestore.Transaction, word *model.Word) (string, error) {
	logger := middleware.GetLogger(ctx)

	ref := r.col().NewDoc()
	err := tx.Create(ref, map[string]interface{}{
		"userUid":        word.UserUID,
		"dictionaryForm": word.DictionaryForm,
		"reading":        word.Reading,
		"frequency":      int64(1),
		"isMined":        false,
		"buryLevel":      int64(0),
		"createdAt":      firestore.ServerTimestamp,
		"updatedAt":      firestore.ServerTimestamp,
	})
	if err != nil {
		logger.Error("Error creating word",
			"error", err,
			"user_uid", word.UserUID,
			"dictionary_form", word.DictionaryForm,
		)
		return "", fmt.Errorf("firestoreWordRepository.Create: %w", err)
	}
	return ref.ID, nil
}

// Resurface は既存の単語に新しい例文が追加された際の再浮上処理です。
// frequency を原子的に+1し、採掘済みフラグを下ろして再び採掘対象に戻します。
func (r *firestoreWordRepository) Resurface(ctx context.Context, tx *firestore.Transaction, wordID string) error {
	err := tx.Update(r.col().Doc(wordID), []firestore.Update{
		{Path: "frequency", Value: firestore.Increment(1)},
		{Path: "isMined", Value: false},
		{Path: "updatedAt", Value: firestore.ServerTimestamp},
	})
	if err != nil {
		return fmt.Errorf("firestoreWordRepository.Resurface: %w", err)
	}
	return nil
}

func (r *firestoreWordRepository) DecrementFrequency(ctx context.Context, tx *firestore.Transaction, wordID string) error {
	err := tx.Update(r.col().Doc(wordID), []firestore.Update{
		{Path: "frequency", Value: firestore.Increment(-1)},
		{Path: "updatedAt", Value: firestore.ServerTimestamp},
	})
	if err != nil {
		return fmt.Errorf("firestoreWordRepository.DecrementFrequency: %w", err)
	}
	return nil
}

// UpdateMiningState は採掘済みフラグと後回しカウンタを1回の書き込みで更新します。
// 同一トランザクション内で同じ単語に複数回書き込まないよう、呼び出し側は
// 単語ごとの効果をまとめてから呼び出します。
func (r *firestoreWordRepository) UpdateMiningState(ctx context.Context, tx *firestore.Transaction, wordID string, mined bool, buryDelta int64) error {
	updates := []firestore.Update{
		{Path: "updatedAt", Value: firestore.ServerTimestamp},
	}
	if mined {
		updates = append(updates, firestore.Update{Path: "isMined", Value: true})
	}
	if buryDelta != 0 {
		// 読み書きではなく原子的インクリメント。並行呼び出しでも順序に依存しない。
		updates = append(updates, firestore.Update{Path: "buryLevel", Value: firestore.Increment(buryDelta)})
	}

	err := tx.Update(r.col().Doc(wordID), updates)
	if err != nil {
		return fmt.Errorf("firestoreWordRepository.UpdateMiningState: %w", err)
	}
	return nil
}

func wordFromSnapshot(snap *firestore.DocumentSnapshot) (*model.Word, error) {
	var word model.Word
	if err := snap.DataTo(&word); err != nil {
		return nil, fmt.Errorf("wordFromSnapshot: %w", err)
	}
	word.WordID = snap.Ref.ID
	return &word, nil
}
