//go:generate mockery --name BatchService --output ./mocks --outpkg mocks --case=underscore
package service

import (
	"context"
	"errors"
	"fmt"

	"cloud.google.com/go/firestore"

	"sentencebase/internal/middleware"
	"sentencebase/internal/model"
	"sentencebase/internal/repository"
)

type BatchService interface {
	CreateBatch(ctx context.Context, userUID string, sentenceIDs []string) (string, error)
	CreateBatchFromBacklog(ctx context.Context, userUID string, req *model.CreateBacklogBatchRequest) (string, error)
}

type batchService struct {
	runner       repository.TxRunner
	wordRepo     repository.WordRepository
	sentenceRepo repository.SentenceRepository
	batchRepo    repository.BatchRepository
	userRepo     repository.UserRepository
}

func NewBatchService(
	runner repository.TxRunner,
	wordRepo repository.WordRepository,
	sentenceRepo repository.SentenceRepository,
	batchRepo repository.BatchRepository,
	userRepo repository.UserRepository,
) BatchService {
	return &batchService{
		runner:       runner,
		wordRepo:     wordRepo,
		sentenceRepo: sentenceRepo,
		batchRepo:    batchRepo,
		userRepo:     userRepo,
	}
}

// CreateBatch は保留プール全体を清算してバッチを作成します。
// 指定されたID集合は保留中の例文と完全一致しなければなりません。
// 選ばれなかった保留中の例文はバックログへ降格します。
func (s *batchService) CreateBatch(ctx context.Context, userUID string, sentenceIDs []string) (string, error) {
	logger := middleware.GetLogger(ctx)

	idSet, err := toIDSet(sentenceIDs)
	if err != nil {
		return "", model.NewAppError("DUPLICATE_IDS", "例文IDが重複しています。", "sentences", model.ErrDuplicateIDs)
	}

	var batchID string

	err = s.runner.RunTransaction(ctx, func(ctx context.Context, tx *firestore.Transaction) error {
		// --- 読み取りフェーズ ---

		// 1. 保留プール全体を取得し、選択分とそれ以外に分ける
		pending, err := s.sentenceRepo.FindPendingByUser(ctx, tx, userUID)
		if err != nil {
			return fmt.Errorf("list pending sentences: %w", err)
		}

		var selected, untouched []*model.Sentence
		for _, sentence := range pending {
			if idSet[sentence.SentenceID] {
				selected = append(selected, sentence)
			} else {
				untouched = append(untouched, sentence)
			}
		}

		// 2. 選択された例文の単語を取得
		wordIDs := make([]string, 0, len(selected))
		seen := make(map[string]bool, len(selected))
		for _, sentence := range selected {
			if !seen[sentence.WordID] {
				seen[sentence.WordID] = true
				wordIDs = append(wordIDs, sentence.WordID)
			}
		}
		words, err := s.wordRepo.GetMulti(ctx, tx, userUID, wordIDs)
		if err != nil {
			return fmt.Errorf("fetch words: %w", err)
		}
		for _, sentence := range selected {
			if _, ok := words[sentence.WordID]; !ok {
				return model.NewAppError("WORD_NOT_FOUND", "例文が参照する単語が見つかりません。", "", model.ErrMissingWord)
			}
		}

		// 3. 完全一致チェック。保留プールに無いIDが混ざっていれば拒否する
		if len(selected) != len(idSet) {
			return model.NewAppError("INVALID_SENTENCE_IDS", "指定された例文IDが保留中の例文と一致しません。", "sentences", model.ErrInvalidSelection)
		}

		// --- 書き込みフェーズ ---

		// 選ばれなかった例文はバックログへ (保留解除のみ)
		for _, sentence := range untouched {
			if err := s.sentenceRepo.MarkProcessed(ctx, tx, sentence.SentenceID, false); err != nil {
				return fmt.Errorf("demote sentence: %w", err)
			}
		}

		// 選ばれた例文は採掘済みに
		snapshots := make([]model.BatchSentence, 0, len(selected))
		for _, sentence := range selected {
			if err := s.sentenceRepo.MarkProcessed(ctx, tx, sentence.SentenceID, true); err != nil {
				return fmt.Errorf("mark sentence mined: %w", err)
			}
			word := words[sentence.WordID]
			snapshots = append(snapshots, model.BatchSentence{
				SentenceID:         sentence.SentenceID,
				Sentence:           sentence.Sentence,
				WordDictionaryForm: word.DictionaryForm,
				WordReading:        word.Reading,
				Tags:               sentence.Tags,
			})
		}

		// 選ばれた例文の単語も採掘済みに (単語ごとに1回だけ書く)
		for _, wordID := range wordIDs {
			if err := s.wordRepo.UpdateMiningState(ctx, tx, wordID, true, 0); err != nil {
				return fmt.Errorf("mark word mined: %w", err)
			}
		}

		batchID, err = s.batchRepo.Create(ctx, tx, &model.Batch{
			UserUID:   userUID,
			Sentences: snapshots,
		})
		if err != nil {
			return fmt.Errorf("create batch: %w", err)
		}

		// 保留プールは空になったのでキャッシュをリセット
		if err := s.userRepo.ResetPendingSentences(ctx, tx, userUID); err != nil {
			return fmt.Errorf("reset pending sentences: %w", err)
		}
		return nil
	})

	if err != nil {
		var appErr *model.AppError
		if errors.As(err, &appErr) {
			return "", err
		}
		logger.Error("Transaction failed for CreateBatch", "error", err, "user_uid", userUID)
		return "", model.ErrInternalServer
	}

	logger.Info("Batch created", "user_uid", userUID, "batch_id", batchID, "sentence_count", len(sentenceIDs))
	return batchID, nil
}

// CreateBatchFromBacklog はバックログ (保留でも採掘済みでもない例文) からバッチを作成します。
// 保留プールには一切触れません。markAsMined / pushToTheEnd は単語IDの配列で、
// 例文の選択とは独立に単語の状態だけを変更します。
func (s *batchService) CreateBatchFromBacklog(ctx context.Context, userUID string, req *model.CreateBacklogBatchRequest) (string, error) {
	logger := middleware.GetLogger(ctx)

	markSet, pushSet, err := disjointIDSets(req.Sentences, req.MarkAsMined, req.PushToTheEnd)
	if err != nil {
		return "", model.NewAppError("DUPLICATE_IDS", "ID集合が重複または交差しています。", "", model.ErrDuplicateIDs)
	}

	var batchID string

	err = s.runner.RunTransaction(ctx, func(ctx context.Context, tx *firestore.Transaction) error {
		// --- 読み取りフェーズ ---

		// 1. 指定された例文をバックログから取得
		sentences := make([]*model.Sentence, 0, len(req.Sentences))
		for _, sentenceID := range req.Sentences {
			sentence, err := s.sentenceRepo.GetBacklog(ctx, tx, userUID, sentenceID)
			if err != nil {
				if errors.Is(err, model.ErrNotFound) {
					return model.NewAppError("INVALID_SENTENCE_IDS", "指定された例文がバックログに見つかりません。", "sentences", model.ErrInvalidSelection)
				}
				return fmt.Errorf("get backlog sentence: %w", err)
			}
			sentences = append(sentences, sentence)
		}

		// 2. 例文の参照先単語を取得。既に採掘済みの単語は選択できない
		wordIDs := make([]string, 0, len(sentences))
		seen := make(map[string]bool, len(sentences))
		for _, sentence := range sentences {
			if !seen[sentence.WordID] {
				seen[sentence.WordID] = true
				wordIDs = append(wordIDs, sentence.WordID)
			}
		}
		words, err := s.wordRepo.GetMulti(ctx, tx, userUID, wordIDs)
		if err != nil {
			return fmt.Errorf("fetch words: %w", err)
		}
		for _, sentence := range sentences {
			word, ok := words[sentence.WordID]
			if !ok || word.IsMined {
				return model.NewAppError("WORD_NOT_FOUND", "例文が参照する単語が見つからないか、既に採掘済みです。", "", model.ErrMissingWord)
			}
		}

		// 3. markAsMined / pushToTheEnd の単語を検証
		if err := s.validateBacklogWords(ctx, tx, userUID, req.MarkAsMined, "markAsMined"); err != nil {
			return err
		}
		if err := s.validateBacklogWords(ctx, tx, userUID, req.PushToTheEnd, "pushToTheEnd"); err != nil {
			return err
		}

		// --- 書き込みフェーズ ---

		// 単語ごとの効果をまとめてから書く (同一文書への書き込みは1回まで)
		type wordEffect struct {
			mined bool
			bury  int64
		}
		effects := make(map[string]*wordEffect)
		effect := func(wordID string) *wordEffect {
			e, ok := effects[wordID]
			if !ok {
				e = &wordEffect{}
				effects[wordID] = e
			}
			return e
		}
		order := make([]string, 0)

		for _, wordID := range wordIDs {
			if _, ok := effects[wordID]; !ok {
				order = append(order, wordID)
			}
			effect(wordID).mined = true
		}
		for wordID := range markSet {
			if _, ok := effects[wordID]; !ok {
				order = append(order, wordID)
			}
			effect(wordID).mined = true
		}
		for wordID := range pushSet {
			if _, ok := effects[wordID]; !ok {
				order = append(order, wordID)
			}
			effect(wordID).bury++
		}

		for _, wordID := range order {
			e := effects[wordID]
			if err := s.wordRepo.UpdateMiningState(ctx, tx, wordID, e.mined, e.bury); err != nil {
				return fmt.Errorf("update word state: %w", err)
			}
		}

		snapshots := make([]model.BatchSentence, 0, len(sentences))
		for _, sentence := range sentences {
			if err := s.sentenceRepo.MarkMined(ctx, tx, sentence.SentenceID); err != nil {
				return fmt.Errorf("mark sentence mined: %w", err)
			}
			word := words[sentence.WordID]
			snapshots = append(snapshots, model.BatchSentence{
				SentenceID:         sentence.SentenceID,
				Sentence:           sentence.Sentence,
				WordDictionaryForm: word.DictionaryForm,
				WordReading:        word.Reading,
				Tags:               sentence.Tags,
			})
		}

		batchID, err = s.batchRepo.Create(ctx, tx, &model.Batch{
			UserUID:   userUID,
			Sentences: snapshots,
		})
		if err != nil {
			return fmt.Errorf("create batch: %w", err)
		}

		// バックログからの作成は保留プールに影響しないため pendingSentences は更新しない
		return nil
	})

	if err != nil {
		var appErr *model.AppError
		if errors.As(err, &appErr) {
			return "", err
		}
		logger.Error("Transaction failed for CreateBatchFromBacklog", "error", err, "user_uid", userUID)
		return "", model.ErrInternalServer
	}

	logger.Info("Backlog batch created", "user_uid", userUID, "batch_id", batchID, "sentence_count", len(req.Sentences))
	return batchID, nil
}

// validateBacklogWords は単語IDの配列がすべて実在し、未採掘であることを検証します。
func (s *batchService) validateBacklogWords(ctx context.Context, tx *firestore.Transaction, userUID string, wordIDs []string, field string) error {
	if len(wordIDs) == 0 {
		return nil
	}
	words, err := s.wordRepo.GetMulti(ctx, tx, userUID, wordIDs)
	if err != nil {
		return fmt.Errorf("fetch %s words: %w", field, err)
	}
	if len(words) != len(wordIDs) {
		return model.NewAppError("INVALID_WORD_IDS", "指定された単語が見つかりません。", field, model.ErrInvalidSelection)
	}
	for _, word := range words {
		if word.IsMined {
			return model.NewAppError("INVALID_WORD_IDS", "指定された単語は既に採掘済みです。", field, model.ErrInvalidSelection)
		}
	}
	return nil
}

// toIDSet はIDの配列を集合に変換します。重複があればエラーを返します。
func toIDSet(ids []string) (map[string]bool, error) {
	set := make(map[string]bool, len(ids))
	for _, id := range ids {
		if set[id] {
			return nil, model.ErrDuplicateIDs
		}
		set[id] = true
	}
	return set, nil
}

// disjointIDSets は3つのID配列を検証し、markAsMined / pushToTheEnd の集合を返します。
// 配列内の重複、または集合同士の交差があればエラーになります。
func disjointIDSets(sentences, markAsMined, pushToTheEnd []string) (map[string]bool, map[string]bool, error) {
	sentenceSet, err := toIDSet(sentences)
	if err != nil {
		return nil, nil, err
	}
	markSet, err := toIDSet(markAsMined)
	if err != nil {
		return nil, nil, err
	}
	pushSet, err := toIDSet(pushToTheEnd)
	if err != nil {
		return nil, nil, err
	}
	for id := range markSet {
		if sentenceSet[id] || pushSet[id] {
			return nil, nil, model.ErrDuplicateIDs
		}
	}
	for id := range pushSet {
		if sentenceSet[id] {
			return nil, nil, model.ErrDuplicateIDs
		}
	}
	return markSet, pushSet, nil
}
