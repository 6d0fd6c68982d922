package main

import (
	"fmt"
	"io"
	"strings"

	"github.com/google/uuid"
	"github.com/spf13/cobra"

	"go_4_kanji_quiz/internal/model"
	"go_4_kanji_quiz/internal/vocab"
)

var (
	wordsName string
	listSort  string
	listDay   string
)

var addCmd = &cobra.Command{
	Use:   "add <漢字> <読み> <意味>",
	Short: "単語を追加します (読みと意味はカンマ区切りで複数可)",
	Args:  cobra.ExactArgs(3),
	RunE: func(cmd *cobra.Command, args []string) error {
		owner, err := resolveOwner(wordsName)
		if err != nil {
			return err
		}
		a, err := newApp(cmd.Context())
		if err != nil {
			return err
		}
		defer a.Close()

		word, err := a.words.AddWord(cmd.Context(), owner, &model.PostWordRequest{Kanji: args[0], Reading: args[1], Meaning: args[2]})
		if err != nil {
			return err
		}
		fmt.Fprintf(cmd.OutOrStdout(), "追加しました: %s (%s)\n", word.Kanji, word.WordID)
		return nil
	},
}

var removeCmd = &cobra.Command{
	Use:   "remove <word_id>",
	Short: "単語を削除します",
	Args:  cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		wordID, err := uuid.Parse(args[0])
		if err != nil {
			return model.NewValidationError("word_id", "単語IDの形式が正しくありません。")
		}
		owner, err := resolveOwner(wordsName)
		if err != nil {
			return err
		}
		a, err := newApp(cmd.Context())
		if err != nil {
			return err
		}
		defer a.Close()

		if err := a.words.RemoveWord(cmd.Context(), owner, wordID); err != nil {
			return err
		}
		fmt.Fprintf(cmd.OutOrStdout(), "削除しました: %s\n", wordID)
		return nil
	},
}

var listCmd = &cobra.Command{
	Use:   "list",
	Short: "単語の一覧を表示します",
	RunE: func(cmd *cobra.Command, args []string) error {
		order, err := vocab.ParseSortOrder(listSort)
		if err != nil {
			return err
		}
		state := model.ViewState{Mode: model.ViewAll, SortOrder: order}
		if cmd.Flags().Changed("day") {
			state.Mode = model.ViewByDay
			state.SelectedDay = listDay
		}

		owner, err := resolveOwner(wordsName)
		if err != nil {
			return err
		}
		a, err := newApp(cmd.Context())
		if err != nil {
			return err
		}
		defer a.Close()

		view, err := a.words.View(cmd.Context(), owner, state)
		if err != nil {
			return err
		}
		printView(cmd.OutOrStdout(), view)
		return nil
	},
}

var daysCmd = &cobra.Command{
	Use:   "days",
	Short: "単語を追加した日付の一覧を表示します",
	RunE: func(cmd *cobra.Command, args []string) error {
		owner, err := resolveOwner(wordsName)
		if err != nil {
			return err
		}
		a, err := newApp(cmd.Context())
		if err != nil {
			return err
		}
		defer a.Close()

		days, err := a.words.Days(cmd.Context(), owner)
		if err != nil {
			return err
		}
		for _, day := range days {
			fmt.Fprintln(cmd.OutOrStdout(), day)
		}
		return nil
	},
}

func printView(w io.Writer, view *model.VocabularyView) {
	if view.Mode == model.ViewByDay && view.SelectedDay != "" {
		fmt.Fprintf(w, "日付別: %s (日付: %s)\n", view.SelectedDay, strings.Join(view.Days, ", "))
	}
	if len(view.Words) == 0 {
		fmt.Fprintln(w, "単語がありません。")
		return
	}
	fmt.Fprintf(w, "%d語 (並び順: %s)\n", view.Total, view.SortOrder)
	for _, word := range view.Words {
		fmt.Fprintf(w, "%s  %s  %s  %s  (間違い %d回)\n", word.WordID, word.Kanji, word.Reading, word.Meaning, word.MissCount)
	}
}

func init() {
	for _, c := range []*cobra.Command{addCmd, removeCmd, listCmd, daysCmd} {
		c.Flags().StringVar(&wordsName, "name", "", "表示名 (省略時は保存済みの名前)")
		rootCmd.AddCommand(c)
	}
	listCmd.Flags().StringVar(&listSort, "sort", string(model.SortNewest), "並び順 (newest, oldest, wrong_count)")
	listCmd.Flags().StringVar(&listDay, "day", "", "日付 (YYYY-MM-DD)。空なら最新の日付")
}
