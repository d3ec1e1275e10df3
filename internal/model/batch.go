// internal/model/batch.go
package model

import "time"

// BatchSentence はバッチ作成時点の例文スナップショットです。
// 単語の辞書形・読みを非正規化して保持するため、後から Word が
// 変更されてもバッチの内容は変わりません。
type BatchSentence struct {
	SentenceID         string   `firestore:"sentenceId" json:"sentenceId"`
	Sentence           string   `firestore:"sentence" json:"sentence"`
	WordDictionaryForm string   `firestore:"wordDictionaryForm" json:"wordDictionaryForm"`
	WordReading        string   `firestore:"wordReading" json:"wordReading"`
	Tags               []string `firestore:"tags" json:"tags"`
}

// Batch はまとめて復習される例文の不変スナップショットです。
// 作成後に更新されることはありません。
type Batch struct {
	BatchID   string          `firestore:"-" json:"batchId"`
	UserUID   string          `firestore:"userUid" json:"-"`
	Sentences []BatchSentence `firestore:"sentences" json:"sentences"`
	CreatedAt time.Time       `firestore:"createdAt" json:"createdAt"`
	UpdatedAt time.Time       `firestore:"updatedAt" json:"updatedAt"`
}

// バッチ作成リクエストDTO
// 配列長の上限 (maximumPendingSentences) は設定値に依存するためハンドラ側で検証する
type CreateBatchRequest struct {
	Sentences []string `json:"sentences" validate:"required,min=1,dive,required"`
}

// バックログからのバッチ作成リクエストDTO
// markAsMined / pushToTheEnd は単語IDの配列。3つのID集合は互いに素でなければならない。
type CreateBacklogBatchRequest struct {
	Sentences    []string `json:"sentences" validate:"required,min=1,dive,required"`
	MarkAsMined  []string `json:"markAsMined" validate:"omitempty,dive,required"`
	PushToTheEnd []string `json:"pushToTheEnd" validate:"omitempty,dive,required"`
}
