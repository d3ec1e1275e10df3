// internal/model/collection.go
package model

import "fmt"

// Collection は永続化対象のコレクション名を表す閉じた列挙です。
// 変更通知の collection パラメータを任意文字列のまま扱わないために使います。
type Collection string

const (
	CollectionWords     Collection = "words"
	CollectionSentences Collection = "sentences"
	CollectionBatches   Collection = "batches"
	CollectionUsers     Collection = "users"
	CollectionMeta      Collection = "meta"
	CollectionEventIDs  Collection = "eventIds"
)

// MetaCountersDocumentID は meta コレクション内のグローバルカウンタ文書のIDです。
const MetaCountersDocumentID = "counters"

func (c Collection) String() string {
	return string(c)
}

// Counted はこのコレクションがカウンタ集計の対象かどうかを返します。
// meta と eventIds はカウンタ更新自体が書き込みを発生させるため、
// 集計対象にすると通知がループします。
func (c Collection) Counted() bool {
	switch c {
	case CollectionMeta, CollectionEventIDs:
		return false
	default:
		return true
	}
}

// ParseCollection は文字列を既知のコレクション名として解釈します。
func ParseCollection(s string) (Collection, error) {
	switch c := Collection(s); c {
	case CollectionWords, CollectionSentences, CollectionBatches,
		CollectionUsers, CollectionMeta, CollectionEventIDs:
		return c, nil
	default:
		return "", fmt.Errorf("unknown collection %q: %w", s, ErrInvalidInput)
	}
}
