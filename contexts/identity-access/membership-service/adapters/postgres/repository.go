package postgresadapter

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"time"

	"github.com/jackc/pgx/v5/pgconn"
	"gorm.io/gorm"

	domainerrors "clubtrack/contexts/identity-access/membership-service/domain/errors"
	"clubtrack/contexts/identity-access/membership-service/domain/member"
)

const uniqueViolationCode = "23505"

type Repository struct {
	db     *gorm.DB
	logger *slog.Logger
}

func NewRepository(db *gorm.DB, logger *slog.Logger) *Repository {
	return &Repository{db: db, logger: logger}
}

type memberModel struct {
	ID         string    `gorm:"column:id;primaryKey"`
	Name       string    `gorm:"column:name"`
	Email      string    `gorm:"column:email;uniqueIndex"`
	Batch      string    `gorm:"column:batch"`
	RollNumber string    `gorm:"column:roll_number"`
	Role       string    `gorm:"column:role"`
	Approved   bool      `gorm:"column:approved"`
	JoinedAt   time.Time `gorm:"column:joined_at"`
}

func (memberModel) TableName() string {
	return "members"
}

func (r *Repository) CreateMember(ctx context.Context, account member.Member) error {
	model := memberModel{
		ID:         account.UserID,
		Name:       account.Name,
		Email:      account.Email,
		Batch:      account.Batch,
		RollNumber: account.RollNumber,
		Role:       string(account.Role),
		Approved:   account.Approved,
		JoinedAt:   account.JoinedAt,
	}
	if err := r.db.WithContext(ctx).Create(&model).Error; err != nil {
		var pgErr *pgconn.PgError
		if errors.As(err, &pgErr) && pgErr.Code == uniqueViolationCode {
			return domainerrors.ErrAlreadyRegistered
		}
		return r.logError("membership_repo_create_failed", err)
	}
	return nil
}

func (r *Repository) GetMember(ctx context.Context, userID string) (member.Member, error) {
	var model memberModel
	err := r.db.WithContext(ctx).First(&model, "id = ?", userID).Error
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return member.Member{}, domainerrors.ErrMemberNotFound
	}
	if err != nil {
		return member.Member{}, r.logError("membership_repo_get_failed", err)
	}
	return model.toMember(), nil
}

func (r *Repository) SetApproved(ctx context.Context, userID string, approved bool) error {
	result := r.db.WithContext(ctx).
		Model(&memberModel{}).
		Where("id = ?", userID).
		Update("approved", approved)
	if result.Error != nil {
		return r.logError("membership_repo_approve_failed", result.Error)
	}
	if result.RowsAffected == 0 {
		return domainerrors.ErrMemberNotFound
	}
	return nil
}

func (r *Repository) ListMembers(ctx context.Context) ([]member.Member, error) {
	var models []memberModel
	if err := r.db.WithContext(ctx).Order("joined_at").Find(&models).Error; err != nil {
		return nil, r.logError("membership_repo_list_failed", err)
	}
	members := make([]member.Member, 0, len(models))
	for _, model := range models {
		members = append(members, model.toMember())
	}
	return members, nil
}

func (m memberModel) toMember() member.Member {
	return member.Member{
		UserID:     m.ID,
		Name:       m.Name,
		Email:      m.Email,
		Batch:      m.Batch,
		RollNumber: m.RollNumber,
		Role:       member.Role(m.Role),
		Approved:   m.Approved,
		JoinedAt:   m.JoinedAt,
	}
}

func (r *Repository) logError(event string, err error) error {
	if r.logger != nil {
		r.logger.Error("membership repository failure",
			"event", event,
			"module", "identity-access/membership-service",
			"layer", "adapter",
			"error", err.Error(),
		)
	}
	return fmt.Errorf("membership repository: %w", err)
}
