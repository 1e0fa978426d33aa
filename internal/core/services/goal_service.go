package services

import (
	"context"
	"fmt"
	"strings"
	"time"

	"github.com/google/uuid"

	"github.com/finsight-app/finsight_backend/internal/apperrors"
	"github.com/finsight-app/finsight_backend/internal/core/domain"
	portsrepo "github.com/finsight-app/finsight_backend/internal/core/ports/repositories"
	portssvc "github.com/finsight-app/finsight_backend/internal/core/ports/services"
	"github.com/finsight-app/finsight_backend/internal/dto"
)

// goalService manages a user's savings goals.
type goalService struct {
	BaseService
	goalRepo portsrepo.GoalRepositoryFacade
}

// NewGoalService creates a new goal service.
func NewGoalService(repo portsrepo.GoalRepositoryFacade) portssvc.GoalSvcFacade {
	return &goalService{goalRepo: repo}
}

var _ portssvc.GoalSvcFacade = (*goalService)(nil)

// CreateGoal handles the creation of a new savings goal.
func (s *goalService) CreateGoal(ctx context.Context, req dto.CreateGoalRequest, userID string) (*domain.Goal, error) {
	if err := domain.ValidateCurrencyCode(req.Currency); err != nil {
		return nil, err
	}
	if !req.TargetAmount.IsPositive() {
		return nil, fmt.Errorf("%w: target amount must be positive", apperrors.ErrValidation)
	}
	if req.CurrentAmount.IsNegative() {
		return nil, fmt.Errorf("%w: current amount cannot be negative", apperrors.ErrValidation)
	}

	now := time.Now()
	code := strings.ToUpper(req.Currency)
	goal := domain.Goal{
		GoalID:        uuid.NewString(),
		UserID:        userID,
		Name:          req.Name,
		TargetAmount:  domain.NewCurrencyAmount(req.TargetAmount, code),
		CurrentAmount: domain.NewCurrencyAmount(req.CurrentAmount, code),
		Currency:      code,
		TargetDate:    req.TargetDate,
		IsActive:      true,
		AuditFields: domain.AuditFields{
			CreatedAt:     now,
			CreatedBy:     userID,
			LastUpdatedAt: now,
			LastUpdatedBy: userID,
		},
	}

	if err := s.goalRepo.SaveGoal(ctx, goal); err != nil {
		return nil, fmt.Errorf("failed to create goal in service: %w", err)
	}
	return &goal, nil
}

// ListGoals retrieves all goals for a user.
func (s *goalService) ListGoals(ctx context.Context, userID string) ([]domain.Goal, error) {
	goals, err := s.goalRepo.ListGoalsByUser(ctx, userID)
	if err != nil {
		return nil, fmt.Errorf("failed to list goals in service: %w", err)
	}
	return goals, nil
}

// UpdateGoal applies the non-nil fields of the request.
func (s *goalService) UpdateGoal(ctx context.Context, goalID string, req dto.UpdateGoalRequest, userID string) (*domain.Goal, error) {
	goal, err := s.goalRepo.FindGoalByID(ctx, goalID, userID)
	if err != nil {
		return nil, fmt.Errorf("failed to find goal for update: %w", err)
	}

	if req.Name != nil {
		goal.Name = *req.Name
	}
	if req.TargetAmount != nil {
		if !req.TargetAmount.IsPositive() {
			return nil, fmt.Errorf("%w: target amount must be positive", apperrors.ErrValidation)
		}
		goal.TargetAmount.Amount = *req.TargetAmount
	}
	if req.CurrentAmount != nil {
		if req.CurrentAmount.IsNegative() {
			return nil, fmt.Errorf("%w: current amount cannot be negative", apperrors.ErrValidation)
		}
		goal.CurrentAmount.Amount = *req.CurrentAmount
	}
	if req.IsActive != nil {
		goal.IsActive = *req.IsActive
	}
	goal.LastUpdatedAt = time.Now()
	goal.LastUpdatedBy = userID

	if err := s.goalRepo.UpdateGoal(ctx, *goal); err != nil {
		return nil, fmt.Errorf("failed to update goal in service: %w", err)
	}
	return goal, nil
}

// DeleteGoal logically deletes a goal.
func (s *goalService) DeleteGoal(ctx context.Context, goalID, userID string) error {
	if err := s.goalRepo.DeleteGoal(ctx, goalID, userID, userID); err != nil {
		return fmt.Errorf("failed to delete goal in service: %w", err)
	}
	return nil
}
