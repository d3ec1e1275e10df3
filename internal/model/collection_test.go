// internal/model/collection_test.go
package model

import (
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestParseCollection(t *testing.T) {
	tests := []struct {
		name    string
		input   string
		want    Collection
		wantErr bool
	}{
		{name: "正常系: words", input: "words", want: CollectionWords},
		{name: "正常系: sentences", input: "sentences", want: CollectionSentences},
		{name: "正常系: batches", input: "batches", want: CollectionBatches},
		{name: "正常系: users", input: "users", want: CollectionUsers},
		{name: "正常系: meta", input: "meta", want: CollectionMeta},
		{name: "正常系: eventIds", input: "eventIds", want: CollectionEventIDs},
		{name: "異常系: 未知の名前", input: "somethingElse", wantErr: true},
		{name: "異常系: 空文字列", input: "", wantErr: true},
		{name: "異常系: 大文字小文字は区別する", input: "Words", wantErr: true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, err := ParseCollection(tt.input)
			if tt.wantErr {
				require.Error(t, err)
				assert.True(t, errors.Is(err, ErrInvalidInput))
			} else {
				require.NoError(t, err)
				assert.Equal(t, tt.want, got)
			}
		})
	}
}

func TestCollection_Counted(t *testing.T) {
	assert.True(t, CollectionWords.Counted())
	assert.True(t, CollectionSentences.Counted())
	assert.True(t, CollectionBatches.Counted())
	assert.True(t, CollectionUsers.Counted())
	// カウンタ更新自体が書き込みを発生させるコレクションは対象外
	assert.False(t, CollectionMeta.Counted())
	assert.False(t, CollectionEventIDs.Counted())
}
