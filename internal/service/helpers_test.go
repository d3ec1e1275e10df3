// internal/service/helpers_test.go
package service

import (
	"context"

	"cloud.google.com/go/firestore"
)

// passthroughTxRunner はトランザクションを素通しするテスト用ランナーです。
// リポジトリはモックなので tx は nil のまま渡します。
type passthroughTxRunner struct{}

func (passthroughTxRunner) RunTransaction(ctx context.Context, fn func(ctx context.Context, tx *firestore.Transaction) error) error {
	return fn(ctx, nil)
}
