//go:generate mockery --name WordRepository --output ./mocks --outpkg mocks --case=underscore
package repository

import (
	"context"
	"errors"
	"fmt"
	"sync/atomic"
	"time"

	"go_4_kanji_quiz/internal/middleware"
	"go_4_kanji_quiz/internal/model"
	"go_4_kanji_quiz/internal/vocab"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

// WordRepository は単語ストアです。owner が空の場合は全ユーザーの単語を対象にします (単一ユーザー運用)。
type WordRepository interface {
	ListActive(ctx context.Context, owner string) ([]*model.Word, error)
	ListActiveByDay(ctx context.Context, owner, day string) ([]*model.Word, error)
	GroupActiveByDay(ctx context.Context, owner string) (model.DateGroup, error)
	Create(ctx context.Context, word *model.Word) error
	// Remove は論理削除に対応していれば論理削除、そうでなければ物理削除します。
	// 呼び出し側からはどちらが行われたか区別できません。owner が空でなければ、その利用者の単語だけが対象です。
	Remove(ctx context.Context, owner string, wordID uuid.UUID) error
	IncrementMissCount(ctx context.Context, wordID uuid.UUID) error
	SupportsTombstone() bool
}

type gormWordRepository struct {
	db        *gorm.DB
	loc       *time.Location // 日付の基準タイムゾーン
	now       func() time.Time
	tombstone atomic.Bool
}

type WordRepositoryOption func(*gormWordRepository)

// WithLocation は日付グループの基準タイムゾーンを指定します (デフォルトはUTC)
func WithLocation(loc *time.Location) WordRepositoryOption {
	return func(r *gormWordRepository) {
		if loc != nil {
			r.loc = loc
		}
	}
}

// WithClock は作成日時に使う時計を差し替えます
func WithClock(now func() time.Time) WordRepositoryOption {
	return func(r *gormWordRepository) {
		r.now = now
	}
}

// NewGormWordRepository はテーブル作成後に呼び出してください。
// 論理削除カラムの有無はここで一度だけ確認します。
func NewGormWordRepository(db *gorm.DB, opts ...WordRepositoryOption) WordRepository {
	r := &gormWordRepository{
		db:  db,
		loc: time.UTC,
		now: time.Now,
	}
	for _, opt := range opts {
		opt(r)
	}
	r.tombstone.Store(db.Migrator().HasColumn(&model.Word{}, tombstoneColumn))
	return r
}

func (r *gormWordRepository) SupportsTombstone() bool {
	return r.tombstone.Load()
}

// active は削除されていない単語に絞り込みます
func (r *gormWordRepository) active(q *gorm.DB, owner string) *gorm.DB {
	if r.tombstone.Load() {
		q = q.Where(tombstoneColumn+" = ?", false)
	}
	if owner != "" {
		q = q.Where("user_name = ?", owner)
	}
	return q
}

// run はクエリを実行し、論理削除カラムが無いと分かった場合は物理削除モードに切り替えて再実行します
func (r *gormWordRepository) run(ctx context.Context, fn func(q *gorm.DB) error) error {
	err := fn(r.db.WithContext(ctx))
	if err != nil && r.tombstone.Load() && isMissingTombstoneColumn(err) {
		middleware.GetLogger(ctx).Warn("Tombstone column is missing, falling back to hard delete", "error", err)
		r.tombstone.Store(false)
		err = fn(r.db.WithContext(ctx))
	}
	return err
}

func (r *gormWordRepository) ListActive(ctx context.Context, owner string) ([]*model.Word, error) {
	logger := middleware.GetLogger(ctx)
	var words []*model.Word
	err := r.run(ctx, func(q *gorm.DB) error {
		words = nil
		return r.active(q, owner).Order("created_at DESC NULLS LAST").Find(&words).Error
	})
	if err != nil {
		logger.Error("Error listing active words in DB", "error", err, "owner", owner)
		return nil, fmt.Errorf("gormWordRepository.ListActive: %w", err)
	}
	return words, nil
}

func (r *gormWordRepository) ListActiveByDay(ctx context.Context, owner, day string) ([]*model.Word, error) {
	logger := middleware.GetLogger(ctx)
	start, end, err := vocab.DayWindow(day, r.loc)
	if err != nil {
		return nil, err
	}
	var words []*model.Word
	err = r.run(ctx, func(q *gorm.DB) error {
		words = nil
		return r.active(q, owner).
			Where("created_at >= ? AND created_at < ?", start.UTC(), end.UTC()).
			Order("created_at DESC").
			Find(&words).Error
	})
	if err != nil {
		logger.Error("Error listing words by day in DB", "error", err, "owner", owner, "day", day)
		return nil, fmt.Errorf("gormWordRepository.ListActiveByDay: %w", err)
	}
	return words, nil
}

func (r *gormWordRepository) GroupActiveByDay(ctx context.Context, owner string) (model.DateGroup, error) {
	words, err := r.ListActive(ctx, owner)
	if err != nil {
		return nil, fmt.Errorf("gormWordRepository.GroupActiveByDay: %w", err)
	}
	return vocab.GroupByDay(words, r.loc), nil
}

func (r *gormWordRepository) Create(ctx context.Context, word *model.Word) error {
	logger := middleware.GetLogger(ctx)
	if word.WordID == uuid.Nil {
		word.WordID = uuid.New()
	}
	createdAt := r.now().UTC()
	word.CreatedAt = &createdAt
	word.Deleted = false

	q := r.db.WithContext(ctx)
	if !r.tombstone.Load() {
		q = q.Omit("Deleted")
	}
	if err := q.Create(word).Error; err != nil {
		logger.Error("Error creating word in DB",
			"error", err,
			"owner", word.Owner,
			"kanji", word.Kanji,
		)
		return fmt.Errorf("gormWordRepository.Create: %w", err)
	}
	return nil
}

func (r *gormWordRepository) Remove(ctx context.Context, owner string, wordID uuid.UUID) error {
	logger := middleware.GetLogger(ctx)
	err := r.run(ctx, func(q *gorm.DB) error {
		var word model.Word
		if err := r.active(q, owner).Where("id = ?", wordID).Take(&word).Error; err != nil {
			return err
		}
		var result *gorm.DB
		if r.tombstone.Load() {
			result = q.Model(&model.Word{}).
				Where("id = ? AND "+tombstoneColumn+" = ?", wordID, false).
				Update(tombstoneColumn, true)
		} else {
			result = q.Where("id = ?", wordID).Delete(&model.Word{})
		}
		if result.Error != nil {
			return result.Error
		}
		if result.RowsAffected == 0 {
			return gorm.ErrRecordNotFound
		}
		return nil
	})
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return model.ErrNotFound
	}
	if err != nil {
		logger.Error("Error removing word in DB", "error", err, "word_id", wordID.String())
		return fmt.Errorf("gormWordRepository.Remove: %w", err)
	}
	return nil
}

// IncrementMissCount は現在の回数を読んでから +1 を書き込みます。
// 2往復で CAS も無いため、同じ単語を同時に更新すると片方が失われます (後勝ち)。
func (r *gormWordRepository) IncrementMissCount(ctx context.Context, wordID uuid.UUID) error {
	logger := middleware.GetLogger(ctx)
	db := r.db.WithContext(ctx)

	var current model.Word
	if err := db.Select("id", "wrong_count").Where("id = ?", wordID).Take(&current).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return model.ErrNotFound
		}
		logger.Error("Error reading miss count in DB", "error", err, "word_id", wordID.String())
		return fmt.Errorf("gormWordRepository.IncrementMissCount: %w", err)
	}

	result := db.Model(&model.Word{}).Where("id = ?", wordID).Update("wrong_count", current.MissCount+1)
	if result.Error != nil {
		logger.Error("Error updating miss count in DB", "error", result.Error, "word_id", wordID.String())
		return fmt.Errorf("gormWordRepository.IncrementMissCount: %w", result.Error)
	}
	if result.RowsAffected == 0 {
		return model.ErrNotFound
	}
	return nil
}
