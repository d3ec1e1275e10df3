// internal/repository/db.go
package repository

import (
	"context"
	"log/slog"

	"cloud.google.com/go/firestore"
	"google.golang.org/api/option"
)

// NewClient は Firestore クライアントを初期化します。
// credentialsFile が空の場合は Application Default Credentials を使います。
func NewClient(ctx context.Context, projectID, credentialsFile string, appLogger *slog.Logger) (*firestore.Client, error) {
	var opts []option.ClientOption
	if credentialsFile != "" {
		opts = append(opts, option.WithCredentialsFile(credentialsFile))
	}

	client, err := firestore.NewClient(ctx, projectID, opts...)
	if err != nil {
		appLogger.Error("Failed to create Firestore client", slog.Any("error", err), slog.String("project_id", projectID))
		return nil, err
	}

	appLogger.Info("Firestore client initialized", slog.String("project_id", projectID))
	return client, nil
}

// TxRunner はトランザクションの実行を抽象化します。
// サービス層のテストでトランザクションを素通しする実装に差し替えるために使います。
type TxRunner interface {
	RunTransaction(ctx context.Context, fn func(ctx context.Context, tx *firestore.Transaction) error) error
}

type firestoreTxRunner struct {
	client *firestore.Client
}

func NewTxRunner(client *firestore.Client) TxRunner {
	return &firestoreTxRunner{client: client}
}

func (r *firestoreTxRunner) RunTransaction(ctx context.Context, fn func(ctx context.Context, tx *firestore.Transaction) error) error {
	return r.client.RunTransaction(ctx, fn)
}

// --- 読み取りヘルパー ---
// tx が nil の場合はトランザクション外の読み取りにフォールバックします。

func getDoc(ctx context.Context, tx *firestore.Transaction, ref *firestore.DocumentRef) (*firestore.DocumentSnapshot, error) {
	if tx != nil {
		return tx.Get(ref)
	}
	return ref.Get(ctx)
}

func getDocs(ctx context.Context, tx *firestore.Transaction, query firestore.Query) ([]*firestore.DocumentSnapshot, error) {
	if tx != nil {
		return tx.Documents(query).GetAll()
	}
	return query.Documents(ctx).GetAll()
}

func getDocsMulti(ctx context.Context, tx *firestore.Transaction, client *firestore.Client, refs []*firestore.DocumentRef) ([]*firestore.DocumentSnapshot, error) {
	if tx != nil {
		return tx.GetAll(refs)
	}
	return client.GetAll(ctx, refs)
}
