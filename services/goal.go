package services

import (
	"context"
	"database/sql"
	"fmt"

	"github.com/DavidRCh56/prisma-api/models"
	"github.com/DavidRCh56/prisma-api/utils"
)

type GoalService struct {
	db *sql.DB
}

func NewGoalService(db *sql.DB) *GoalService {
	return &GoalService{db: db}
}

// List returns the stored goals. Under correct usage there are zero or one.
func (s *GoalService) List(ctx context.Context) ([]models.SavingsGoal, error) {
	rows, err := s.db.QueryContext(ctx,
		`SELECT id, name, target_amount, deadline FROM savings_goals ORDER BY id`)
	if err != nil {
		return nil, fmt.Errorf("list goals: %w", err)
	}
	defer rows.Close()

	goals := []models.SavingsGoal{}
	for rows.Next() {
		var g models.SavingsGoal
		if err := rows.Scan(&g.ID, &g.Name, &g.TargetAmount, &g.Deadline); err != nil {
			return nil, fmt.Errorf("scan goal: %w", err)
		}
		goals = append(goals, g)
	}

	return goals, rows.Err()
}

// Replace deletes every existing goal and inserts the new one inside a single
// transaction, so a crash mid-way cannot leave the table empty.
func (s *GoalService) Replace(ctx context.Context, req models.CreateGoalRequest) (*models.SavingsGoal, error) {
	g := &models.SavingsGoal{
		Name:         req.Name,
		TargetAmount: req.TargetAmount,
		Deadline:     req.Deadline,
	}

	err := utils.WithTransaction(s.db, func(tx *sql.Tx) error {
		if _, err := tx.ExecContext(ctx, `DELETE FROM savings_goals`); err != nil {
			return fmt.Errorf("clear goals: %w", err)
		}

		return tx.QueryRowContext(ctx, `
			INSERT INTO savings_goals (name, target_amount, deadline)
			VALUES ($1, $2, $3)
			RETURNING id
		`, g.Name, g.TargetAmount, g.Deadline).Scan(&g.ID)
	})
	if err != nil {
		return nil, fmt.Errorf("replace goal: %w", err)
	}

	return g, nil
}
