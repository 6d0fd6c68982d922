package main

import (
	"fmt"

	"github.com/spf13/cobra"

	"go_4_kanji_quiz/internal/reading"
)

var suggestCmd = &cobra.Command{
	Use:   "suggest <漢字>",
	Short: "漢字の読み候補 (ひらがな) を表示します",
	Args:  cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		s, err := reading.NewSuggester()
		if err != nil {
			return err
		}
		yomi, err := s.Suggest(args[0])
		if err != nil {
			return err
		}
		fmt.Fprintln(cmd.OutOrStdout(), yomi)
		return nil
	},
}

func init() {
	rootCmd.AddCommand(suggestCmd)
}
