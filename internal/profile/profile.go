// Package profile はターミナル版で使う表示名を端末ごとに保存します。
// 認証ではなく「自分の単語」を区別するためだけのものです。
package profile

import (
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"github.com/spf13/viper"

	"go_4_kanji_quiz/internal/config"
	"go_4_kanji_quiz/internal/model"
)

const displayNameKey = "display_name"

// DefaultPath はユーザー設定ディレクトリ配下の保存先を返します
func DefaultPath() (string, error) {
	dir, err := os.UserConfigDir()
	if err != nil {
		return "", fmt.Errorf("profile.DefaultPath: %w", err)
	}
	return filepath.Join(dir, config.AppName, config.ProfileFileName), nil
}

// Load は保存済みの表示名を返します。未保存なら空文字です。
func Load(path string) (string, error) {
	v := viper.New()
	v.SetConfigFile(path)
	v.SetConfigType("yaml")
	if err := v.ReadInConfig(); err != nil {
		if errors.Is(err, os.ErrNotExist) {
			return "", nil
		}
		var notFound viper.ConfigFileNotFoundError
		if errors.As(err, &notFound) {
			return "", nil
		}
		return "", fmt.Errorf("profile.Load: %w", err)
	}
	return strings.TrimSpace(v.GetString(displayNameKey)), nil
}

// Save は表示名を保存します。空の名前は保存しません。
func Save(path, name string) error {
	name = strings.TrimSpace(name)
	if name == "" {
		return model.NewValidationError(displayNameKey, "表示名を入力してください。")
	}
	if err := os.MkdirAll(filepath.Dir(path), 0o755); err != nil {
		return fmt.Errorf("profile.Save: %w", err)
	}
	v := viper.New()
	v.SetConfigType("yaml")
	v.Set(displayNameKey, name)
	if err := v.WriteConfigAs(path); err != nil {
		return fmt.Errorf("profile.Save: %w", err)
	}
	return nil
}
