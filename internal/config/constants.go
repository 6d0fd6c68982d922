// internal/config/constants.go
package config

// アプリケーション情報
const (
	AppName    = "kanjiquiz"
	AppVersion = "0.3.0"
)

// デフォルト設定値
const (
	DefaultServerPort = ":8080"
	DefaultLogLevel   = "info"
	DefaultTimezone   = "UTC"
)

// ProfileFileName はユーザー設定ディレクトリ配下の表示名ファイル名です
const ProfileFileName = "profile.yaml"
