// internal/model/event.go
package model

import "time"

// ChangeType は変更通知イベントの種別です。
type ChangeType string

const (
	ChangeTypeCreate ChangeType = "create"
	ChangeTypeDelete ChangeType = "delete"
)

// ChangeEvent はドキュメントの作成・削除1回分の論理イベントです。
// EventID は通知機構が1つの論理イベントに割り当てる一意なIDで、
// at-least-once 配信の重複排除に使います。
type ChangeEvent struct {
	EventID    string
	Collection Collection
	DocumentID string
	Type       ChangeType
	UserUID    string // 対象ドキュメントの userUid フィールド。無い場合は空文字列。
}

// EventIDRecord は処理済みイベントIDの台帳エントリです。
// ドキュメントIDがイベントIDそのものになります。
type EventIDRecord struct {
	EventID   string    `firestore:"-"`
	CreatedAt time.Time `firestore:"createdAt"`
}

// 変更通知の受信リクエストDTO
type ChangeEventRequest struct {
	EventID    string `json:"eventId" validate:"required"`
	Collection string `json:"collection" validate:"required"`
	DocumentID string `json:"documentId" validate:"required"`
	ChangeType string `json:"changeType" validate:"required,oneof=create delete"`
	UserUID    string `json:"userUid"`
}
