package postgresadapter

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"log/slog"
	"strings"
	"time"

	"gorm.io/gorm"

	domainerrors "clubtrack/contexts/platform-integration/connector-service/domain/errors"
	"clubtrack/contexts/platform-integration/connector-service/domain/profile"
	"clubtrack/contexts/platform-integration/connector-service/ports"
)

type Repository struct {
	db     *gorm.DB
	logger *slog.Logger
}

func NewRepository(db *gorm.DB, logger *slog.Logger) *Repository {
	if logger == nil {
		logger = slog.Default()
	}
	return &Repository{db: db, logger: logger}
}

func (r *Repository) GetMember(ctx context.Context, userID string) (ports.MemberRecord, error) {
	var row memberModel
	err := r.db.WithContext(ctx).
		Where("id = ?", strings.TrimSpace(userID)).
		First(&row).
		Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return ports.MemberRecord{}, domainerrors.ErrMemberNotFound
		}
		return ports.MemberRecord{}, r.logError("connector_repo_get_member_failed", err, "user_id", strings.TrimSpace(userID))
	}
	return row.toRecord()
}

// PutPlatformProfile merges one platform document and the stats block into
// the member row. Other columns are untouched, matching the document store's
// partial-update contract.
func (r *Repository) PutPlatformProfile(
	ctx context.Context,
	userID string,
	platform profile.Platform,
	prof profile.Profile,
	stats ports.StatsSnapshot,
) error {
	return r.mutatePlatforms(ctx, userID, stats, func(docs map[profile.Platform]platformDoc) {
		docs[platform] = platformDocFromProfile(prof)
	})
}

func (r *Repository) RemovePlatformProfile(
	ctx context.Context,
	userID string,
	platform profile.Platform,
	stats ports.StatsSnapshot,
) error {
	return r.mutatePlatforms(ctx, userID, stats, func(docs map[profile.Platform]platformDoc) {
		delete(docs, platform)
	})
}

func (r *Repository) ListConnectedMembers(ctx context.Context) ([]ports.MemberRecord, error) {
	var rows []memberModel
	err := r.db.WithContext(ctx).
		Where("platforms IS NOT NULL").
		Where("platforms::text <> '{}'").
		Find(&rows).
		Error
	if err != nil {
		return nil, r.logError("connector_repo_list_connected_failed", err)
	}

	records := make([]ports.MemberRecord, 0, len(rows))
	for _, row := range rows {
		record, convErr := row.toRecord()
		if convErr != nil {
			// One corrupt row must not stop the sync sweep for everyone else.
			r.logger.Warn("skipping malformed member row",
				"event", "connector_repo_row_skipped",
				"module", "platform-integration/connector-service",
				"layer", "adapter",
				"user_id", row.ID,
				"error", convErr.Error(),
			)
			continue
		}
		records = append(records, record)
	}
	return records, nil
}

func (r *Repository) mutatePlatforms(
	ctx context.Context,
	userID string,
	stats ports.StatsSnapshot,
	mutate func(map[profile.Platform]platformDoc),
) error {
	userID = strings.TrimSpace(userID)
	return r.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		var row memberModel
		if err := tx.Where("id = ?", userID).First(&row).Error; err != nil {
			if errors.Is(err, gorm.ErrRecordNotFound) {
				return domainerrors.ErrMemberNotFound
			}
			return r.logError("connector_repo_load_member_failed", err, "user_id", userID)
		}

		docs, err := row.platformDocs()
		if err != nil {
			return r.logError("connector_repo_decode_platforms_failed", err, "user_id", userID)
		}
		mutate(docs)

		raw, err := json.Marshal(docs)
		if err != nil {
			return r.logError("connector_repo_encode_platforms_failed", err, "user_id", userID)
		}

		update := tx.Model(&memberModel{}).Where("id = ?", userID).Updates(map[string]any{
			"platforms":        raw,
			"total_problems":   stats.TotalProblems,
			"easy_problems":    stats.EasyProblems,
			"medium_problems":  stats.MediumProblems,
			"hard_problems":    stats.HardProblems,
			"weekly_problems":  stats.WeeklyProblems,
			"monthly_problems": stats.MonthlyProblems,
			"current_streak":   stats.CurrentStreak,
			"max_streak":       stats.MaxStreak,
		})
		if update.Error != nil {
			return r.logError("connector_repo_update_member_failed", update.Error, "user_id", userID)
		}
		return nil
	})
}

func (r *Repository) logError(event string, err error, args ...any) error {
	fields := append([]any{
		"event", event,
		"module", "platform-integration/connector-service",
		"layer", "adapter",
		"error", err.Error(),
	}, args...)
	r.logger.Error("connector repository failure", fields...)
	return fmt.Errorf("connector repository: %w", err)
}

// SystemClock satisfies the Clock port with wall-clock time.
type SystemClock struct{}

func (SystemClock) Now() time.Time {
	return time.Now().UTC()
}
