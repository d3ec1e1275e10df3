// internal/model/user.go
package model

// User は認証済みアイデンティティごとに1ドキュメント存在します。
// PendingSentences は保留中の例文数のキャッシュで、クエリで再計算せず
// 各操作がトランザクション内で維持します。
type User struct {
	UserUID          string           `firestore:"-" json:"userUid"`
	PendingSentences int64            `firestore:"pendingSentences" json:"pendingSentences"`
	Counters         map[string]int64 `firestore:"counters" json:"counters"`
}
