package repositories

import (
	"context"
	"errors"
	"fmt"

	"github.com/Masterminds/squirrel"
	"github.com/google/uuid"
	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"

	"github.com/necfeedback/coursefeedback/internal/app/models"
	"github.com/necfeedback/coursefeedback/internal/pkg/apperrors"
	"github.com/necfeedback/coursefeedback/internal/pkg/dberrors"
	"github.com/necfeedback/coursefeedback/internal/pkg/logger"
)

var adminColumns = []string{"id", "name", "email", "password", "created_at"}

// AdminRepository handles admin database operations
type AdminRepository struct {
	db *pgxpool.Pool
	sb squirrel.StatementBuilderType
}

// NewAdminRepository creates a new AdminRepository
func NewAdminRepository(db *pgxpool.Pool) *AdminRepository {
	return &AdminRepository{db: db, sb: psql}
}

// Create inserts a new admin. The ID is generated when unset.
func (r *AdminRepository) Create(ctx context.Context, admin *models.Admin) error {
	if admin.ID == uuid.Nil {
		admin.ID = uuid.New()
	}

	sql, args, err := r.sb.Insert("admins").
		Columns("id", "name", "email", "password").
		Values(admin.ID, admin.Name, admin.Email, admin.Password).
		Suffix("RETURNING created_at").
		ToSql()
	if err != nil {
		logger.Error().Err(err).Msg("Error building create admin SQL")
		return fmt.Errorf("failed to build create admin query: %w", err)
	}

	if err := r.db.QueryRow(ctx, sql, args...).Scan(&admin.CreatedAt); err != nil {
		if dberrors.IsDuplicateConstraintError(err, "admins_email_key") {
			return apperrors.ErrAdminAlreadyExists
		}
		logger.Error().Err(err).Str("email", admin.Email).Msg("Error executing create admin query")
		return fmt.Errorf("error creating admin: %w", err)
	}
	return nil
}

// GetByEmail retrieves an admin by email
func (r *AdminRepository) GetByEmail(ctx context.Context, email string) (*models.Admin, error) {
	return r.getOne(ctx, squirrel.Eq{"email": email})
}

// GetByName retrieves the oldest admin with the given name
func (r *AdminRepository) GetByName(ctx context.Context, name string) (*models.Admin, error) {
	return r.getOne(ctx, squirrel.Eq{"name": name})
}

// GetFirst retrieves the oldest admin account
func (r *AdminRepository) GetFirst(ctx context.Context) (*models.Admin, error) {
	return r.getOne(ctx, nil)
}

func (r *AdminRepository) getOne(ctx context.Context, where squirrel.Sqlizer) (*models.Admin, error) {
	q := r.sb.Select(adminColumns...).From("admins").OrderBy("created_at ASC").Limit(1)
	if where != nil {
		q = q.Where(where)
	}

	sql, args, err := q.ToSql()
	if err != nil {
		logger.Error().Err(err).Msg("Error building get admin SQL")
		return nil, fmt.Errorf("failed to build get admin query: %w", err)
	}

	admin := &models.Admin{}
	err = r.db.QueryRow(ctx, sql, args...).Scan(&admin.ID, &admin.Name, &admin.Email, &admin.Password, &admin.CreatedAt)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, apperrors.ErrAdminNotFound
		}
		logger.Error().Err(err).Msg("Error scanning admin row")
		return nil, fmt.Errorf("error getting admin: %w", err)
	}
	return admin, nil
}
