// internal/config/config.go
package config

import (
	"log"
	"time"

	"github.com/spf13/viper"
)

type ServerConfig struct {
	Port string `mapstructure:"port"`
}

type LogConfig struct {
	Level  string `mapstructure:"level"`
	Format string `mapstructure:"format"`
}

type FirestoreConfig struct {
	ProjectID string `mapstructure:"project_id"`
	// サービスアカウントの鍵ファイル。空なら Application Default Credentials を使う。
	CredentialsFile string `mapstructure:"credentials_file"`
}

type AppConfig struct {
	// 保留中の例文数の上限 (入場制御の閾値)
	MaximumPendingSentences int `mapstructure:"maximum_pending_sentences"`
	// イベントID台帳の保持期間。これより早く消すと重複配信の窓が開く。
	EventIDRetention time.Duration `mapstructure:"event_id_retention"`
	// 台帳掃除の実行間隔
	EventIDCleanupInterval time.Duration `mapstructure:"event_id_cleanup_interval"`
}

type JWTConfig struct {
	SecretKey string `mapstructure:"secret_key"`
}

type InternalConfig struct {
	// 変更通知の受信エンドポイントを保護する共有トークン
	EventToken string `mapstructure:"event_token"`
}

type CORSConfig struct {
	AllowedOrigins   []string `mapstructure:"allowed_origins"`
	AllowedMethods   []string `mapstructure:"allowed_methods"`
	AllowedHeaders   []string `mapstructure:"allowed_headers"`
	AllowCredentials bool     `mapstructure:"allow_credentials"`
	MaxAge           int      `mapstructure:"max_age"`
}

type Config struct {
	Server    ServerConfig    `mapstructure:"server"`
	Log       LogConfig       `mapstructure:"log"`
	Firestore FirestoreConfig `mapstructure:"firestore"`
	App       AppConfig       `mapstructure:"app"`
	JWT       JWTConfig       `mapstructure:"jwt"`
	Internal  InternalConfig  `mapstructure:"internal"`
	CORS      CORSConfig      `mapstructure:"cors"`
}

var Cfg Config

func LoadConfig(path string) error {
	viper.SetConfigName("config")
	viper.SetConfigType("yaml")
	viper.AddConfigPath(path)
	viper.AddConfigPath(".")

	// 環境変数での上書き (例: APP_JWT_SECRET_KEY, APP_FIRESTORE_PROJECT_ID)
	viper.SetEnvPrefix("APP")
	viper.AutomaticEnv()
	viper.BindEnv("jwt.secret_key", "APP_JWT_SECRET_KEY")
	viper.BindEnv("firestore.project_id", "APP_FIRESTORE_PROJECT_ID")
	viper.BindEnv("firestore.credentials_file", "APP_FIRESTORE_CREDENTIALS_FILE")
	viper.BindEnv("internal.event_token", "APP_INTERNAL_EVENT_TOKEN")

	if err := viper.ReadInConfig(); err != nil {
		if _, ok := err.(viper.ConfigFileNotFoundError); ok {
			log.Println("Warning: Config file not found. Using default settings or environment variables if available.")
		} else {
			log.Printf("Error reading config file: %s\n", err)
			return err
		}
	}

	if err := viper.Unmarshal(&Cfg); err != nil {
		log.Printf("Error unmarshalling config: %s\n", err)
		return err
	}

	// --- デフォルト値の設定 ---
	if Cfg.Server.Port == "" {
		Cfg.Server.Port = DefaultServerPort
	}
	if Cfg.Log.Level == "" {
		Cfg.Log.Level = DefaultLogLevel
	}
	if Cfg.App.MaximumPendingSentences <= 0 {
		log.Printf("App maximum pending sentences not set or invalid, using default '%d'", DefaultMaximumPendingSentences)
		Cfg.App.MaximumPendingSentences = DefaultMaximumPendingSentences
	}
	if Cfg.App.EventIDRetention <= 0 {
		Cfg.App.EventIDRetention = DefaultEventIDRetention
	}
	if Cfg.App.EventIDCleanupInterval <= 0 {
		Cfg.App.EventIDCleanupInterval = DefaultEventIDCleanupInterval
	}
	if Cfg.Firestore.ProjectID == "" {
		log.Println("Warning: Firestore project ID is not set in config.")
	}
	if Cfg.JWT.SecretKey == "" {
		log.Println("Warning: JWT secret key is not set in config.")
	}

	log.Println("Config loaded successfully")
	log.Printf("Server Port: %s", Cfg.Server.Port)
	log.Printf("Maximum Pending Sentences: %d", Cfg.App.MaximumPendingSentences)
	log.Printf("Event ID Retention: %s", Cfg.App.EventIDRetention)

	return nil
}
