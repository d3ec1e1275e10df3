//go:generate mockery --name SentenceService --output ./mocks --outpkg mocks --case=underscore
package service

import (
	"context"
	"errors"
	"fmt"

	"cloud.google.com/go/firestore"

	"sentencebase/internal/config"
	"sentencebase/internal/middleware"
	"sentencebase/internal/model"
	"sentencebase/internal/repository"
)

type SentenceService interface {
	GetPendingSentences(ctx context.Context, userUID string) ([]*model.PendingSentenceResponse, error)
	AddSentence(ctx context.Context, userUID string, req *model.AddSentenceRequest) (*model.Sentence, error)
	EditSentence(ctx context.Context, userUID, sentenceID string, req *model.EditSentenceRequest) error
	DeleteSentence(ctx context.Context, userUID, sentenceID string) error
}

type sentenceService struct {
	runner       repository.TxRunner
	wordRepo     repository.WordRepository
	sentenceRepo repository.SentenceRepository
	userRepo     repository.UserRepository
	cfg          *config.Config
}

func NewSentenceService(
	runner repository.TxRunner,
	wordRepo repository.WordRepository,
	sentenceRepo repository.SentenceRepository,
	userRepo repository.UserRepository,
	cfg *config.Config,
) SentenceService {
	return &sentenceService{
		runner:       runner,
		wordRepo:     wordRepo,
		sentenceRepo: sentenceRepo,
		userRepo:     userRepo,
		cfg:          cfg,
	}
}

// GetPendingSentences は保留中の例文を新しい順に、参照先の単語情報と結合して返します。
func (s *sentenceService) GetPendingSentences(ctx context.Context, userUID string) ([]*model.PendingSentenceResponse, error) {
	logger := middleware.GetLogger(ctx)

	// 読み取りのみなのでトランザクションは使わない
	sentences, err := s.sentenceRepo.FindPendingByUser(ctx, nil, userUID)
	if err != nil {
		logger.Error("Error listing pending sentences", "error", err, "user_uid", userUID)
		return nil, model.ErrInternalServer
	}

	wordIDs := make([]string, 0, len(sentences))
	seen := make(map[string]bool, len(sentences))
	for _, sentence := range sentences {
		if !seen[sentence.WordID] {
			seen[sentence.WordID] = true
			wordIDs = append(wordIDs, sentence.WordID)
		}
	}

	words, err := s.wordRepo.GetMulti(ctx, nil, userUID, wordIDs)
	if err != nil {
		logger.Error("Error fetching words for pending sentences", "error", err, "user_uid", userUID)
		return nil, model.ErrInternalServer
	}

	responses := make([]*model.PendingSentenceResponse, 0, len(sentences))
	for _, sentence := range sentences {
		resp := &model.PendingSentenceResponse{
			SentenceID: sentence.SentenceID,
			WordID:     sentence.WordID,
			Sentence:   sentence.Sentence,
			Tags:       sentence.Tags,
		}
		if word, ok := words[sentence.WordID]; ok {
			resp.DictionaryForm = word.DictionaryForm
			resp.Reading = word.Reading
			resp.Frequency = word.Frequency
		} else {
			// 参照先の単語が消えている場合でも一覧自体は返す
			logger.Warn("Pending sentence references missing word", "sentence_id", sentence.SentenceID, "word_id", sentence.WordID)
			resp.DictionaryForm = "unknown"
		}
		responses = append(responses, resp)
	}
	return responses, nil
}

// AddSentence は例文を1件追加します。
// 同じ (辞書形, 読み) の単語が既にあれば頻度を上げて再浮上させ、
// なければ新規作成します。保留中の例文数が上限に達している場合は拒否します。
func (s *sentenceService) AddSentence(ctx context.Context, userUID string, req *model.AddSentenceRequest) (*model.Sentence, error) {
	logger := middleware.GetLogger(ctx)

	var created *model.Sentence

	err := s.runner.RunTransaction(ctx, func(ctx context.Context, tx *firestore.Transaction) error {
		// --- 読み取りフェーズ ---

		// 1. ユーザーの存在と上限を確認
		user, err := s.userRepo.Get(ctx, tx, userUID)
		if err != nil {
			if errors.Is(err, model.ErrNotFound) {
				return model.NewAppError("USER_NOT_FOUND", "ユーザーが登録されていません。", "", model.ErrNotFound)
			}
			return fmt.Errorf("get user: %w", err)
		}
		if user.PendingSentences >= int64(s.cfg.App.MaximumPendingSentences) {
			return model.NewAppError("PENDING_LIMIT_REACHED", "保留中の例文数が上限に達しています。先にバッチを作成してください。", "", model.ErrLimitExceeded)
		}

		// 2. 既存の単語を検索
		word, err := s.wordRepo.FindByForm(ctx, tx, userUID, req.DictionaryForm, req.Reading)
		if err != nil && !errors.Is(err, model.ErrNotFound) {
			return fmt.Errorf("find word: %w", err)
		}

		// --- 書き込みフェーズ ---

		var wordID string
		if word != nil {
			// 既存単語: 頻度を上げ、採掘済みなら保留に戻す (再浮上)
			wordID = word.WordID
			if err := s.wordRepo.Resurface(ctx, tx, wordID); err != nil {
				return fmt.Errorf("resurface word: %w", err)
			}
		} else {
			newWord := &model.Word{
				UserUID:        userUID,
				DictionaryForm: req.DictionaryForm,
				Reading:        req.Reading,
			}
			wordID, err = s.wordRepo.Create(ctx, tx, newWord)
			if err != nil {
				return fmt.Errorf("create word: %w", err)
			}
		}

		sentence := &model.Sentence{
			UserUID:   userUID,
			WordID:    wordID,
			Sentence:  req.Sentence,
			Tags:      uniqueStrings(req.Tags),
			IsPending: true,
			IsMined:   false,
		}
		sentenceID, err := s.sentenceRepo.Create(ctx, tx, sentence)
		if err != nil {
			return fmt.Errorf("create sentence: %w", err)
		}
		sentence.SentenceID = sentenceID

		if err := s.userRepo.IncrementPendingSentences(ctx, tx, userUID, 1); err != nil {
			return fmt.Errorf("increment pending sentences: %w", err)
		}

		created = sentence
		return nil
	})

	if err != nil {
		var appErr *model.AppError
		if errors.As(err, &appErr) {
			return nil, err
		}
		logger.Error("Transaction failed for AddSentence", "error", err, "user_uid", userUID)
		return nil, model.ErrInternalServer
	}

	logger.Info("Sentence added", "user_uid", userUID, "sentence_id", created.SentenceID, "word_id", created.WordID)
	return created, nil
}

// EditSentence は保留中の例文の本文とタグを書き換えます。
// 保留中でない例文は編集できません (存在しないものとして扱う)。
func (s *sentenceService) EditSentence(ctx context.Context, userUID, sentenceID string, req *model.EditSentenceRequest) error {
	logger := middleware.GetLogger(ctx)

	err := s.runner.RunTransaction(ctx, func(ctx context.Context, tx *firestore.Transaction) error {
		sentence, err := s.sentenceRepo.GetPending(ctx, tx, userUID, sentenceID)
		if err != nil {
			if errors.Is(err, model.ErrNotFound) {
				return model.NewAppError("SENTENCE_NOT_FOUND", "指定された保留中の例文が見つかりません。", "", model.ErrInvalidReference)
			}
			return fmt.Errorf("get pending sentence: %w", err)
		}

		if err := s.sentenceRepo.UpdateText(ctx, tx, sentence.SentenceID, req.Sentence, uniqueStrings(req.Tags)); err != nil {
			return fmt.Errorf("update sentence: %w", err)
		}
		return nil
	})

	if err != nil {
		var appErr *model.AppError
		if errors.As(err, &appErr) {
			return err
		}
		logger.Error("Transaction failed for EditSentence", "error", err, "user_uid", userUID, "sentence_id", sentenceID)
		return model.ErrInternalServer
	}
	return nil
}

// DeleteSentence は保留中の例文を1件削除します。
// 参照先の単語の頻度を下げ、ユーザーの保留数キャッシュを減らします。
func (s *sentenceService) DeleteSentence(ctx context.Context, userUID, sentenceID string) error {
	logger := middleware.GetLogger(ctx)

	err := s.runner.RunTransaction(ctx, func(ctx context.Context, tx *firestore.Transaction) error {
		sentence, err := s.sentenceRepo.GetPending(ctx, tx, userUID, sentenceID)
		if err != nil {
			if errors.Is(err, model.ErrNotFound) {
				return model.NewAppError("SENTENCE_NOT_FOUND", "指定された保留中の例文が見つかりません。", "", model.ErrInvalidReference)
			}
			return fmt.Errorf("get pending sentence: %w", err)
		}

		if err := s.sentenceRepo.Delete(ctx, tx, sentence.SentenceID); err != nil {
			return fmt.Errorf("delete sentence: %w", err)
		}
		if err := s.wordRepo.DecrementFrequency(ctx, tx, sentence.WordID); err != nil {
			return fmt.Errorf("decrement word frequency: %w", err)
		}
		if err := s.userRepo.IncrementPendingSentences(ctx, tx, userUID, -1); err != nil {
			return fmt.Errorf("decrement pending sentences: %w", err)
		}
		return nil
	})

	if err != nil {
		var appErr *model.AppError
		if errors.As(err, &appErr) {
			return err
		}
		logger.Error("Transaction failed for DeleteSentence", "error", err, "user_uid", userUID, "sentence_id", sentenceID)
		return model.ErrInternalServer
	}

	logger.Info("Sentence deleted", "user_uid", userUID, "sentence_id", sentenceID)
	return nil
}

// uniqueStrings は順序を保ったまま重複を取り除きます。
func uniqueStrings(values []string) []string {
	if values == nil {
		return []string{}
	}
	seen := make(map[string]bool, len(values))
	result := make([]string, 0, len(values))
	for _, v := range values {
		if !seen[v] {
			seen[v] = true
			result = append(result, v)
		}
	}
	return result
}
