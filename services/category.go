package services

import (
	"context"
	"database/sql"
	"errors"
	"fmt"
	"log"
	"strings"

	"github.com/DavidRCh56/prisma-api/models"
	"github.com/DavidRCh56/prisma-api/utils"

	"github.com/lib/pq"
	"github.com/shopspring/decimal"
)

// ErrDuplicateCategory is returned when a category name already exists.
// Handlers map it to a conflict response instead of letting the constraint
// violation escape as a server error.
var ErrDuplicateCategory = errors.New("category name already exists")

// DefaultCategories is seeded on first run, when the table is empty.
var DefaultCategories = []models.SeedCategory{
	{Name: "Comida", Budget: decimal.NewFromInt(200)},
	{Name: "Transporte", Budget: decimal.NewFromInt(100)},
	{Name: "Vivienda", Budget: decimal.NewFromInt(500)},
	{Name: "Ocio", Budget: decimal.NewFromInt(50)},
	{Name: "Suscripciones", Budget: decimal.NewFromInt(30)},
	{Name: "Salud", Budget: decimal.NewFromInt(50)},
	{Name: "Otros", Budget: decimal.NewFromInt(100)},
	{Name: "Nómina", Budget: decimal.NewFromInt(0)},
}

type CategoryService struct {
	db *sql.DB
}

func NewCategoryService(db *sql.DB) *CategoryService {
	return &CategoryService{db: db}
}

func (s *CategoryService) List(ctx context.Context) ([]models.Category, error) {
	rows, err := s.db.QueryContext(ctx, `SELECT id, name, budget FROM categories ORDER BY id`)
	if err != nil {
		return nil, fmt.Errorf("list categories: %w", err)
	}
	defer rows.Close()

	categories := []models.Category{}
	for rows.Next() {
		var c models.Category
		if err := rows.Scan(&c.ID, &c.Name, &c.Budget); err != nil {
			return nil, fmt.Errorf("scan category: %w", err)
		}
		categories = append(categories, c)
	}

	return categories, rows.Err()
}

// Create inserts a category. A duplicate name returns ErrDuplicateCategory,
// whether caught by the pre-check or by the UNIQUE constraint when two
// creates race.
func (s *CategoryService) Create(ctx context.Context, req models.CreateCategoryRequest) (*models.Category, error) {
	var exists bool
	err := s.db.QueryRowContext(ctx,
		`SELECT EXISTS(SELECT 1 FROM categories WHERE name = $1)`, req.Name,
	).Scan(&exists)
	if err != nil {
		return nil, fmt.Errorf("check category name: %w", err)
	}
	if exists {
		return nil, ErrDuplicateCategory
	}

	c := &models.Category{Name: req.Name, Budget: req.Budget}
	err = s.db.QueryRowContext(ctx,
		`INSERT INTO categories (name, budget) VALUES ($1, $2) RETURNING id`,
		c.Name, c.Budget,
	).Scan(&c.ID)
	if err != nil {
		if isUniqueViolation(err) {
			return nil, ErrDuplicateCategory
		}
		return nil, fmt.Errorf("create category: %w", err)
	}

	return c, nil
}

// Delete removes a category by id. Transactions referencing the name are left
// untouched; the label coupling is by convention only.
func (s *CategoryService) Delete(ctx context.Context, id int64) error {
	_, err := s.db.ExecContext(ctx, `DELETE FROM categories WHERE id = $1`, id)
	if err != nil {
		return fmt.Errorf("delete category: %w", err)
	}
	return nil
}

// Seed inserts the default category list if the table is empty. Runs once at
// startup, after migrations.
func (s *CategoryService) Seed(ctx context.Context) error {
	var count int
	if err := s.db.QueryRowContext(ctx, `SELECT COUNT(*) FROM categories`).Scan(&count); err != nil {
		return fmt.Errorf("count categories: %w", err)
	}
	if count > 0 {
		return nil
	}

	err := utils.WithTransaction(s.db, func(tx *sql.Tx) error {
		for _, c := range DefaultCategories {
			if _, err := tx.ExecContext(ctx,
				`INSERT INTO categories (name, budget) VALUES ($1, $2)`,
				c.Name, c.Budget,
			); err != nil {
				return fmt.Errorf("seed category %s: %w", c.Name, err)
			}
		}
		return nil
	})
	if err != nil {
		return err
	}

	log.Printf("🌱 Seeded %d default categories", len(DefaultCategories))
	return nil
}

// isUniqueViolation recognizes a UNIQUE constraint failure from either
// driver: pq exposes SQLSTATE 23505, modernc sqlite only a message.
func isUniqueViolation(err error) bool {
	var pqErr *pq.Error
	if errors.As(err, &pqErr) {
		return pqErr.Code == "23505"
	}
	return strings.Contains(err.Error(), "UNIQUE constraint failed")
}
