// internal/config/constants.go
package config

import "time"

// アプリケーション情報
const (
	AppName    = "sentence-base"
	AppVersion = "1.0.0"
)

// デフォルト設定値
const (
	DefaultServerPort              = ":8080"
	DefaultLogLevel                = "info"
	DefaultMaximumPendingSentences = 15
	DefaultEventIDRetention        = time.Hour
	DefaultEventIDCleanupInterval  = time.Hour
)

// イベントID台帳掃除の1ページあたりの削除件数
const EventIDCleanupPageSize = 100
