package main

import (
	"fmt"

	"github.com/spf13/cobra"

	"go_4_kanji_quiz/internal/profile"
)

var nameCmd = &cobra.Command{
	Use:   "name [表示名]",
	Short: "ターミナル版で使う表示名を表示・設定します",
	Args:  cobra.MaximumNArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		path, err := profilePath()
		if err != nil {
			return err
		}
		if len(args) == 0 {
			name, err := profile.Load(path)
			if err != nil {
				return err
			}
			if name == "" {
				fmt.Fprintln(cmd.OutOrStdout(), "表示名は未設定です。")
				return nil
			}
			fmt.Fprintln(cmd.OutOrStdout(), name)
			return nil
		}
		if err := profile.Save(path, args[0]); err != nil {
			return err
		}
		fmt.Fprintf(cmd.OutOrStdout(), "表示名を保存しました: %s\n", args[0])
		return nil
	},
}

func init() {
	rootCmd.AddCommand(nameCmd)
}
