package repository

import (
	"context"
	"log/slog"

	"github.com/google/uuid"

	"github.com/contractwise/backend/gen/ent"
	"github.com/contractwise/backend/gen/ent/user"
	"github.com/contractwise/backend/internal/common"
	"github.com/contractwise/backend/internal/entity"
	"github.com/contractwise/backend/internal/utils"
)

type UserRepository interface {
	UpsertByGoogleID(ctx context.Context, u *entity.User) (*entity.User, error)
	GetByID(ctx context.Context, id uuid.UUID) (*entity.User, error)
	SetPremium(ctx context.Context, id uuid.UUID, premium bool) (*entity.User, error)
}

type userRepository struct {
	client *ent.Client
	logger *slog.Logger
}

func NewUserRepository(client *ent.Client, logger *slog.Logger) UserRepository {
	return &userRepository{
		client: client,
		logger: logger,
	}
}

// UpsertByGoogleID finds the user by OAuth subject, refreshing the profile
// fields, or creates a new record on first sign-in.
func (r *userRepository) UpsertByGoogleID(ctx context.Context, u *entity.User) (*entity.User, error) {
	existing, err := r.client.User.Query().
		Where(user.GoogleID(u.GoogleID)).
		Only(ctx)
	if err == nil {
		rec, uerr := existing.Update().
			SetEmail(u.Email).
			SetDisplayName(u.DisplayName).
			SetProfilePicture(u.ProfilePicture).
			Save(ctx)
		if uerr != nil {
			r.logger.Error("failed to update user", "google_id", u.GoogleID, "error", uerr)
			return nil, uerr
		}
		return utils.ToUser(rec), nil
	}
	if !ent.IsNotFound(err) {
		r.logger.Error("failed to query user", "google_id", u.GoogleID, "error", err)
		return nil, err
	}

	rec, err := r.client.User.Create().
		SetGoogleID(u.GoogleID).
		SetEmail(u.Email).
		SetDisplayName(u.DisplayName).
		SetProfilePicture(u.ProfilePicture).
		Save(ctx)
	if err != nil {
		r.logger.Error("failed to create user", "google_id", u.GoogleID, "error", err)
		return nil, err
	}
	r.logger.Info("user created", "user_id", rec.ID, "email", rec.Email)
	return utils.ToUser(rec), nil
}

func (r *userRepository) GetByID(ctx context.Context, id uuid.UUID) (*entity.User, error) {
	rec, err := r.client.User.Get(ctx, id)
	if err != nil {
		if ent.IsNotFound(err) {
			return nil, common.ErrNotFound
		}
		r.logger.Error("failed to get user", "id", id, "error", err)
		return nil, err
	}
	return utils.ToUser(rec), nil
}

func (r *userRepository) SetPremium(ctx context.Context, id uuid.UUID, premium bool) (*entity.User, error) {
	rec, err := r.client.User.UpdateOneID(id).
		SetIsPremium(premium).
		Save(ctx)
	if err != nil {
		if ent.IsNotFound(err) {
			return nil, common.ErrNotFound
		}
		r.logger.Error("failed to update premium status", "id", id, "error", err)
		return nil, err
	}
	return utils.ToUser(rec), nil
}
