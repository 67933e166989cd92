package repo

import (
	"context"
	"errors"
	"fmt"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgtype"

	"github.com/odtrace/survey-api/internal/domain"
)

// WeightMethodRepo defines the persistence operations for WeightMethods.
type WeightMethodRepo interface {
	// Create inserts a new weight method and returns the persisted record
	// (with DB-generated id and created_at populated).
	Create(ctx context.Context, method domain.WeightMethod) (domain.WeightMethod, error)

	// GetByID retrieves a single weight method by its UUID primary key.
	// Returns domain.ErrNotFound if no method with that ID exists.
	GetByID(ctx context.Context, id uuid.UUID) (domain.WeightMethod, error)

	// List returns all weight methods ordered by short_name.
	List(ctx context.Context) ([]domain.WeightMethod, error)
}

// pgWeightMethodRepo is the Postgres implementation of WeightMethodRepo.
type pgWeightMethodRepo struct {
	db db
}

// NewWeightMethodRepo constructs a WeightMethodRepo backed by the provided
// db connection.
func NewWeightMethodRepo(db db) WeightMethodRepo {
	return &pgWeightMethodRepo{db: db}
}

// Create inserts a new weight method row and returns the persisted record.
func (r *pgWeightMethodRepo) Create(ctx context.Context, method domain.WeightMethod) (domain.WeightMethod, error) {
	const q = `
		INSERT INTO weight_methods (short_name, name, description)
		VALUES (@short_name, @name, @description)
		RETURNING id, short_name, name, description, created_at`

	args := pgx.NamedArgs{
		"short_name":  method.ShortName,
		"name":        method.Name,
		"description": method.Description,
	}

	row := r.db.QueryRow(ctx, q, args)
	result, err := scanWeightMethod(row)
	if err != nil {
		return domain.WeightMethod{}, fmt.Errorf("repo.WeightMethodRepo.Create: %w", err)
	}
	return result, nil
}

// GetByID retrieves a weight method by primary key.
func (r *pgWeightMethodRepo) GetByID(ctx context.Context, id uuid.UUID) (domain.WeightMethod, error) {
	const q = `
		SELECT id, short_name, name, description, created_at
		FROM weight_methods
		WHERE id = @id`

	row := r.db.QueryRow(ctx, q, pgx.NamedArgs{"id": id})
	result, err := scanWeightMethod(row)
	if err != nil {
		return domain.WeightMethod{}, fmt.Errorf("repo.WeightMethodRepo.GetByID: %w", err)
	}
	return result, nil
}

// List returns all weight methods ordered by short_name.
func (r *pgWeightMethodRepo) List(ctx context.Context) ([]domain.WeightMethod, error) {
	const q = `
		SELECT id, short_name, name, description, created_at
		FROM weight_methods
		ORDER BY short_name`

	rows, err := r.db.Query(ctx, q)
	if err != nil {
		return nil, fmt.Errorf("repo.WeightMethodRepo.List: %w", err)
	}
	defer rows.Close()

	var methods []domain.WeightMethod
	for rows.Next() {
		m, err := scanWeightMethod(rows)
		if err != nil {
			return nil, fmt.Errorf("repo.WeightMethodRepo.List: scan: %w", err)
		}
		methods = append(methods, m)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("repo.WeightMethodRepo.List: rows: %w", err)
	}

	return methods, nil
}

// scanWeightMethod maps a single database row into a domain.WeightMethod.
func scanWeightMethod(s scanner) (domain.WeightMethod, error) {
	var (
		m  domain.WeightMethod
		id pgtype.UUID
	)

	err := s.Scan(&id, &m.ShortName, &m.Name, &m.Description, &m.CreatedAt)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return domain.WeightMethod{}, domain.ErrNotFound
		}
		return domain.WeightMethod{}, err
	}

	m.ID = uuid.UUID(id.Bytes)
	return m, nil
}
