package services

import (
	"context"
	"database/sql"
	"errors"
	"fmt"

	"github.com/DavidRCh56/prisma-api/models"
	"github.com/DavidRCh56/prisma-api/utils"
)

// ErrFixedAlreadyApplied guards against importing fixed items twice into the
// same month.
var ErrFixedAlreadyApplied = errors.New("fixed items already applied this month")

type FixedItemService struct {
	db *sql.DB
}

func NewFixedItemService(db *sql.DB) *FixedItemService {
	return &FixedItemService{db: db}
}

func (s *FixedItemService) List(ctx context.Context) ([]models.FixedItem, error) {
	query := `
		SELECT id, amount, category, description, type
		FROM fixed_items
		ORDER BY id
	`

	rows, err := s.db.QueryContext(ctx, query)
	if err != nil {
		return nil, fmt.Errorf("list fixed items: %w", err)
	}
	defer rows.Close()

	items := []models.FixedItem{}
	for rows.Next() {
		var f models.FixedItem
		if err := rows.Scan(&f.ID, &f.Amount, &f.Category, &f.Description, &f.Type); err != nil {
			return nil, fmt.Errorf("scan fixed item: %w", err)
		}
		items = append(items, f)
	}

	return items, rows.Err()
}

func (s *FixedItemService) Create(ctx context.Context, req models.CreateFixedItemRequest) (*models.FixedItem, error) {
	f := &models.FixedItem{
		Amount:      req.Amount,
		Category:    req.Category,
		Description: req.Description,
		Type:        req.Type,
	}

	query := `
		INSERT INTO fixed_items (amount, category, description, type)
		VALUES ($1, $2, $3, $4)
		RETURNING id
	`
	err := s.db.QueryRowContext(ctx, query, f.Amount, f.Category, f.Description, f.Type).Scan(&f.ID)
	if err != nil {
		return nil, fmt.Errorf("create fixed item: %w", err)
	}

	return f, nil
}

func (s *FixedItemService) Delete(ctx context.Context, id int64) error {
	_, err := s.db.ExecContext(ctx, `DELETE FROM fixed_items WHERE id = $1`, id)
	if err != nil {
		return fmt.Errorf("delete fixed item: %w", err)
	}
	return nil
}

// Apply copies every fixed item into a real transaction dated the 1st of
// month ("YYYY-MM"), descriptions prefixed with the fixed marker. The marker
// doubles as the double-application guard: if any transaction in the month
// already carries it, the whole call fails with ErrFixedAlreadyApplied.
// All inserts share one transaction.
func (s *FixedItemService) Apply(ctx context.Context, month string) error {
	var applied bool
	err := s.db.QueryRowContext(ctx, `
		SELECT EXISTS(
			SELECT 1 FROM transactions
			WHERE date LIKE $1 AND description LIKE $2
		)
	`, month+"%", models.FixedMarker+"%").Scan(&applied)
	if err != nil {
		return fmt.Errorf("check applied fixed items: %w", err)
	}
	if applied {
		return ErrFixedAlreadyApplied
	}

	items, err := s.List(ctx)
	if err != nil {
		return err
	}

	return utils.WithTransaction(s.db, func(tx *sql.Tx) error {
		for _, item := range items {
			_, err := tx.ExecContext(ctx, `
				INSERT INTO transactions (amount, category, description, date, type)
				VALUES ($1, $2, $3, $4, $5)
			`, item.Amount, item.Category, models.FixedMarker+item.Description, month+"-01", item.Type)
			if err != nil {
				return fmt.Errorf("apply fixed item %d: %w", item.ID, err)
			}
		}
		return nil
	})
}
