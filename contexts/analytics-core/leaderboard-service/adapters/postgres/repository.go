package postgresadapter

import (
	"context"
	"encoding/json"
	"fmt"
	"log/slog"

	"gorm.io/gorm"

	"clubtrack/contexts/analytics-core/leaderboard-service/ports"
)

// Repository projects the shared members table into ranking snapshots. It is
// read-only: the connector and membership services own the writes.
type Repository struct {
	db     *gorm.DB
	logger *slog.Logger
}

func NewRepository(db *gorm.DB, logger *slog.Logger) *Repository {
	return &Repository{db: db, logger: logger}
}

type memberRow struct {
	ID              string `gorm:"column:id"`
	Name            string `gorm:"column:name"`
	Batch           string `gorm:"column:batch"`
	RollNumber      string `gorm:"column:roll_number"`
	Role            string `gorm:"column:role"`
	Approved        bool   `gorm:"column:approved"`
	Platforms       []byte `gorm:"column:platforms;type:jsonb"`
	WeeklyProblems  int    `gorm:"column:weekly_problems"`
	MonthlyProblems int    `gorm:"column:monthly_problems"`
	CurrentStreak   int    `gorm:"column:current_streak"`
}

func (memberRow) TableName() string {
	return "members"
}

type platformDoc struct {
	Connected      bool `json:"connected"`
	ProblemsSolved int  `json:"problems_solved"`
	Rating         int  `json:"rating"`
}

func (r *Repository) SnapshotUsers(ctx context.Context) ([]ports.UserSnapshot, error) {
	var rows []memberRow
	if err := r.db.WithContext(ctx).Find(&rows).Error; err != nil {
		return nil, fmt.Errorf("leaderboard snapshot query: %w", err)
	}

	users := make([]ports.UserSnapshot, 0, len(rows))
	for _, row := range rows {
		user, err := row.toSnapshot()
		if err != nil {
			// One corrupt document must not blank the whole board.
			if r.logger != nil {
				r.logger.Warn("skipping malformed member row",
					"event", "leaderboard_repo_row_skipped",
					"module", "analytics-core/leaderboard-service",
					"layer", "adapter",
					"user_id", row.ID,
					"error", err.Error(),
				)
			}
			continue
		}
		users = append(users, user)
	}
	return users, nil
}

func (row memberRow) toSnapshot() (ports.UserSnapshot, error) {
	docs := make(map[string]platformDoc)
	if len(row.Platforms) > 0 {
		if err := json.Unmarshal(row.Platforms, &docs); err != nil {
			return ports.UserSnapshot{}, fmt.Errorf("decode platforms document: %w", err)
		}
	}
	platforms := make(map[string]ports.PlatformSnapshot, len(docs))
	for name, doc := range docs {
		platforms[name] = ports.PlatformSnapshot{
			Connected:      doc.Connected,
			ProblemsSolved: doc.ProblemsSolved,
			Rating:         doc.Rating,
		}
	}
	return ports.UserSnapshot{
		UserID:          row.ID,
		Name:            row.Name,
		Batch:           row.Batch,
		RollNumber:      row.RollNumber,
		Role:            row.Role,
		Approved:        row.Approved,
		Platforms:       platforms,
		WeeklyProblems:  row.WeeklyProblems,
		MonthlyProblems: row.MonthlyProblems,
		CurrentStreak:   row.CurrentStreak,
	}, nil
}
