// internal/repository/word_repository_test.go
package repository

import (
	"context"
	"io"
	"log/slog"
	"testing"
	"time"

	"go_4_kanji_quiz/internal/model"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gorm.io/gorm"
)

var discardLogger = slog.New(slog.NewTextHandler(io.Discard, nil))

// setupTestDB はテストごとに独立したインメモリDBを用意します
func setupTestDB(t *testing.T) *gorm.DB {
	t.Helper()
	db, err := NewDB("sqlite://file:"+uuid.NewString()+"?mode=memory&cache=shared", discardLogger)
	require.NoError(t, err)
	t.Cleanup(func() {
		if sqlDB, err := db.DB(); err == nil {
			sqlDB.Close()
		}
	})
	return db
}

// fixedClock は呼ばれるたびに返す時刻を差し替えられる時計です
type fixedClock struct{ at time.Time }

func (c *fixedClock) Now() time.Time { return c.at }

func newWord(owner, kanji string) *model.Word {
	return &model.Word{Owner: owner, Kanji: kanji, Reading: "よみ", Meaning: "뜻"}
}

func TestWordRepository_CreateAndList(t *testing.T) {
	ctx := context.Background()
	db := setupTestDB(t)
	require.NoError(t, AutoMigrate(db))

	clock := &fixedClock{at: time.Date(2024, 5, 1, 9, 0, 0, 0, time.UTC)}
	repo := NewGormWordRepository(db, WithClock(clock.Now))
	assert.True(t, repo.SupportsTombstone())

	first := newWord("alice", "日本")
	require.NoError(t, repo.Create(ctx, first))
	assert.NotEqual(t, uuid.Nil, first.WordID)
	require.NotNil(t, first.CreatedAt)

	clock.at = clock.at.Add(time.Hour)
	second := newWord("alice", "学校")
	require.NoError(t, repo.Create(ctx, second))

	require.NoError(t, repo.Create(ctx, newWord("bob", "猫")))

	words, err := repo.ListActive(ctx, "alice")
	require.NoError(t, err)
	require.Len(t, words, 2)
	assert.Equal(t, "学校", words[0].Kanji, "新しい順")
	assert.Equal(t, "日本", words[1].Kanji)
	assert.Equal(t, 0, words[0].MissCount)

	all, err := repo.ListActive(ctx, "")
	require.NoError(t, err)
	assert.Len(t, all, 3, "owner 未指定なら全件")
}

func TestWordRepository_Remove_SoftDelete(t *testing.T) {
	ctx := context.Background()
	db := setupTestDB(t)
	require.NoError(t, AutoMigrate(db))
	repo := NewGormWordRepository(db)

	word := newWord("alice", "日本")
	require.NoError(t, repo.Create(ctx, word))

	assert.ErrorIs(t, repo.Remove(ctx, "bob", word.WordID), model.ErrNotFound, "他人の単語は削除できない")

	require.NoError(t, repo.Remove(ctx, "alice", word.WordID))

	words, err := repo.ListActive(ctx, "alice")
	require.NoError(t, err)
	assert.Empty(t, words)

	// 行は残っていてフラグだけ立っている
	var stored model.Word
	require.NoError(t, db.Where("id = ?", word.WordID).Take(&stored).Error)
	assert.True(t, stored.Deleted)

	err = repo.Remove(ctx, "alice", word.WordID)
	assert.ErrorIs(t, err, model.ErrNotFound, "2回目の削除は NotFound")

	err = repo.Remove(ctx, "alice", uuid.New())
	assert.ErrorIs(t, err, model.ErrNotFound)
}

func TestWordRepository_Remove_HardDeleteWithoutTombstoneColumn(t *testing.T) {
	ctx := context.Background()
	db := setupTestDB(t)
	require.NoError(t, db.Exec(`CREATE TABLE japanese_quiz (
		id TEXT PRIMARY KEY,
		user_name TEXT,
		kanji TEXT NOT NULL,
		yomigana TEXT NOT NULL,
		korean TEXT NOT NULL,
		wrong_count INTEGER NOT NULL DEFAULT 0,
		created_at DATETIME
	)`).Error)

	repo := NewGormWordRepository(db)
	assert.False(t, repo.SupportsTombstone())

	word := newWord("alice", "日本")
	require.NoError(t, repo.Create(ctx, word))

	words, err := repo.ListActive(ctx, "alice")
	require.NoError(t, err)
	require.Len(t, words, 1)

	require.NoError(t, repo.Remove(ctx, "alice", word.WordID))

	var count int64
	require.NoError(t, db.Table("japanese_quiz").Count(&count).Error)
	assert.Equal(t, int64(0), count, "行ごと消える")

	assert.ErrorIs(t, repo.Remove(ctx, "alice", word.WordID), model.ErrNotFound)
}

func TestWordRepository_FallsBackWhenColumnDisappears(t *testing.T) {
	ctx := context.Background()
	db := setupTestDB(t)
	require.NoError(t, AutoMigrate(db))
	repo := NewGormWordRepository(db)
	require.True(t, repo.SupportsTombstone())

	word := newWord("alice", "日本")
	require.NoError(t, repo.Create(ctx, word))

	// 起動後にカラムが消えたケース
	require.NoError(t, db.Migrator().DropColumn(&model.Word{}, tombstoneColumn))

	words, err := repo.ListActive(ctx, "alice")
	require.NoError(t, err)
	assert.Len(t, words, 1)
	assert.False(t, repo.SupportsTombstone())

	require.NoError(t, repo.Remove(ctx, "alice", word.WordID))
	words, err = repo.ListActive(ctx, "alice")
	require.NoError(t, err)
	assert.Empty(t, words)
}

func TestWordRepository_IncrementMissCount(t *testing.T) {
	ctx := context.Background()
	db := setupTestDB(t)
	require.NoError(t, AutoMigrate(db))
	repo := NewGormWordRepository(db)

	word := newWord("alice", "日本")
	require.NoError(t, repo.Create(ctx, word))

	require.NoError(t, repo.IncrementMissCount(ctx, word.WordID))
	require.NoError(t, repo.IncrementMissCount(ctx, word.WordID))

	words, err := repo.ListActive(ctx, "alice")
	require.NoError(t, err)
	require.Len(t, words, 1)
	assert.Equal(t, 2, words[0].MissCount)

	assert.ErrorIs(t, repo.IncrementMissCount(ctx, uuid.New()), model.ErrNotFound)
}

func TestWordRepository_ByDay(t *testing.T) {
	ctx := context.Background()
	db := setupTestDB(t)
	require.NoError(t, AutoMigrate(db))

	jst := time.FixedZone("JST", 9*60*60)
	clock := &fixedClock{}
	repo := NewGormWordRepository(db, WithClock(clock.Now), WithLocation(jst))

	// 2024-05-01 23:30 UTC は JST では 05-02
	clock.at = time.Date(2024, 5, 1, 23, 30, 0, 0, time.UTC)
	require.NoError(t, repo.Create(ctx, newWord("alice", "夜")))
	clock.at = time.Date(2024, 5, 1, 3, 0, 0, 0, time.UTC)
	require.NoError(t, repo.Create(ctx, newWord("alice", "朝")))
	clock.at = time.Date(2024, 5, 1, 4, 0, 0, 0, time.UTC)
	require.NoError(t, repo.Create(ctx, newWord("bob", "昼")))

	words, err := repo.ListActiveByDay(ctx, "alice", "2024-05-02")
	require.NoError(t, err)
	require.Len(t, words, 1)
	assert.Equal(t, "夜", words[0].Kanji)

	words, err = repo.ListActiveByDay(ctx, "alice", "2024-05-01")
	require.NoError(t, err)
	require.Len(t, words, 1)
	assert.Equal(t, "朝", words[0].Kanji)

	groups, err := repo.GroupActiveByDay(ctx, "alice")
	require.NoError(t, err)
	assert.Len(t, groups, 2)
	assert.Len(t, groups["2024-05-01"], 1)
	assert.Len(t, groups["2024-05-02"], 1)

	_, err = repo.ListActiveByDay(ctx, "alice", "05/01/2024")
	assert.ErrorIs(t, err, model.ErrInvalidInput)
}
