// internal/model/sentence.go
package model

import "time"

// Sentence は単語の用例となる例文を表します。
// Word は複数の Sentence から参照され、Sentence より長く生存します。
type Sentence struct {
	SentenceID string    `firestore:"-" json:"sentenceId"`
	UserUID    string    `firestore:"userUid" json:"-"`
	WordID     string    `firestore:"wordId" json:"wordId"`
	Sentence   string    `firestore:"sentence" json:"sentence"`
	Tags       []string  `firestore:"tags" json:"tags"`
	IsPending  bool      `firestore:"isPending" json:"isPending"`
	IsMined    bool      `firestore:"isMined" json:"isMined"`
	CreatedAt  time.Time `firestore:"createdAt" json:"createdAt"`
	UpdatedAt  time.Time `firestore:"updatedAt" json:"updatedAt"`
}

// 例文追加リクエストDTO
// 文字列長の上限は API レイヤーでのみ検証する (コアは検証済み入力を前提とする)
type AddSentenceRequest struct {
	DictionaryForm string   `json:"dictionaryForm" validate:"required,min=1,max=32"`
	Reading        string   `json:"reading" validate:"required,min=1,max=64"`
	Sentence       string   `json:"sentence" validate:"required,min=1,max=512"`
	Tags           []string `json:"tags" validate:"omitempty,dive,max=128"`
}

// 例文編集リクエストDTO
type EditSentenceRequest struct {
	Sentence string   `json:"sentence" validate:"required,min=1,max=512"`
	Tags     []string `json:"tags" validate:"omitempty,dive,max=128"`
}

// PendingSentenceResponse は保留中の例文を参照先の単語情報と結合したレスポンスです。
type PendingSentenceResponse struct {
	SentenceID     string   `json:"sentenceId"`
	WordID         string   `json:"wordId"`
	DictionaryForm string   `json:"dictionaryForm"`
	Reading        string   `json:"reading"`
	Sentence       string   `json:"sentence"`
	Frequency      int64    `json:"frequency"`
	Tags           []string `json:"tags"`
}
