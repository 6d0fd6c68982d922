package main

import (
	"errors"
	"log/slog"
	"os"

	"github.com/spf13/cobra"

	"go_4_kanji_quiz/internal/config"
	"go_4_kanji_quiz/internal/console"
	"go_4_kanji_quiz/internal/profile"
	"go_4_kanji_quiz/internal/reading"
)

var playName string

var playCmd = &cobra.Command{
	Use:   "play",
	Short: "ターミナルで単語帳とクイズを操作します",
	RunE: func(cmd *cobra.Command, args []string) error {
		owner, err := resolveOwner(playName)
		if err != nil {
			return err
		}

		a, err := newApp(cmd.Context())
		if err != nil {
			return err
		}
		defer a.Close()

		// 読み候補は任意。辞書がなければ補完なしで続ける
		var suggester console.Suggester
		if s, err := reading.NewSuggester(); err != nil {
			a.logger.Warn("Reading suggestions disabled", slog.Any("error", err))
		} else {
			suggester = s
		}

		runner := console.NewRunner(os.Stdin, cmd.OutOrStdout(), a.words, a.quiz, suggester, owner)
		return runner.Run(cmd.Context())
	},
}

func init() {
	playCmd.Flags().StringVar(&playName, "name", "", "表示名 (省略時は保存済みの名前)")
	rootCmd.AddCommand(playCmd)
}

// resolveOwner はフラグ、保存済みの名前の順に表示名を決めます。
// 単一ユーザーモードでは名前を使いません。
func resolveOwner(flagName string) (string, error) {
	if config.Cfg.App.SingleUser {
		return "", nil
	}
	if flagName != "" {
		return flagName, nil
	}
	path, err := profilePath()
	if err != nil {
		return "", err
	}
	name, err := profile.Load(path)
	if err != nil {
		return "", err
	}
	if name == "" {
		return "", errors.New("表示名が未設定です。`kanjiquiz name <表示名>` で設定するか --name を指定してください")
	}
	return name, nil
}

func profilePath() (string, error) {
	if config.Cfg.Profile.Path != "" {
		return config.Cfg.Profile.Path, nil
	}
	return profile.DefaultPath()
}
