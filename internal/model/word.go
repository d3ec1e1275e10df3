// internal/model/word.go
package model

import "time"

// Word はユーザーが採掘対象とする単語を表します。
// (userUid, dictionaryForm, reading) の組につき最大1ドキュメントです。
type Word struct {
	WordID         string    `firestore:"-" json:"wordId"`
	UserUID        string    `firestore:"userUid" json:"-"`
	DictionaryForm string    `firestore:"dictionaryForm" json:"dictionaryForm"`
	Reading        string    `firestore:"reading" json:"reading"`
	Frequency      int64     `firestore:"frequency" json:"frequency"` // この単語を参照する例文の数
	IsMined        bool      `firestore:"isMined" json:"isMined"`
	BuryLevel      int64     `firestore:"buryLevel" json:"buryLevel"` // 復習の後回し回数
	CreatedAt      time.Time `firestore:"createdAt" json:"createdAt"`
	UpdatedAt      time.Time `firestore:"updatedAt" json:"updatedAt"`
}
