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

// investmentService manages a user's investment records.
type investmentService struct {
	BaseService
	investmentRepo portsrepo.InvestmentRepositoryFacade
}

// NewInvestmentService creates a new investment service.
func NewInvestmentService(repo portsrepo.InvestmentRepositoryFacade) portssvc.InvestmentSvcFacade {
	return &investmentService{investmentRepo: repo}
}

var _ portssvc.InvestmentSvcFacade = (*investmentService)(nil)

// CreateInvestment handles the creation of a new investment.
func (s *investmentService) CreateInvestment(ctx context.Context, req dto.CreateInvestmentRequest, userID string) (*domain.Investment, error) {
	if err := domain.ValidateCurrencyCode(req.Currency); err != nil {
		return nil, err
	}
	if !req.Quantity.IsPositive() {
		return nil, fmt.Errorf("%w: quantity must be positive", apperrors.ErrValidation)
	}
	if req.PurchasePrice.IsNegative() {
		return nil, fmt.Errorf("%w: purchase price cannot be negative", apperrors.ErrValidation)
	}

	now := time.Now()
	code := strings.ToUpper(req.Currency)
	inv := domain.Investment{
		InvestmentID:  uuid.NewString(),
		UserID:        userID,
		Symbol:        strings.ToUpper(req.Symbol),
		Name:          req.Name,
		Type:          req.Type,
		Quantity:      req.Quantity,
		PurchasePrice: domain.NewCurrencyAmount(req.PurchasePrice, code),
		CurrentPrice:  req.CurrentPrice,
		Currency:      code,
		PurchaseDate:  req.PurchaseDate,
		AuditFields: domain.AuditFields{
			CreatedAt:     now,
			CreatedBy:     userID,
			LastUpdatedAt: now,
			LastUpdatedBy: userID,
		},
	}

	if err := s.investmentRepo.SaveInvestment(ctx, inv); err != nil {
		return nil, fmt.Errorf("failed to create investment in service: %w", err)
	}
	return &inv, nil
}

// GetInvestmentByID retrieves a single investment owned by the user.
func (s *investmentService) GetInvestmentByID(ctx context.Context, investmentID, userID string) (*domain.Investment, error) {
	inv, err := s.investmentRepo.FindInvestmentByID(ctx, investmentID, userID)
	if err != nil {
		return nil, fmt.Errorf("failed to get investment in service: %w", err)
	}
	return inv, nil
}

// ListInvestments retrieves all investments for a user.
func (s *investmentService) ListInvestments(ctx context.Context, userID string) ([]domain.Investment, error) {
	invs, err := s.investmentRepo.ListInvestmentsByUser(ctx, userID)
	if err != nil {
		return nil, fmt.Errorf("failed to list investments in service: %w", err)
	}
	return invs, nil
}

// UpdateInvestment applies the non-nil fields of the request.
func (s *investmentService) UpdateInvestment(ctx context.Context, investmentID string, req dto.UpdateInvestmentRequest, userID string) (*domain.Investment, error) {
	inv, err := s.investmentRepo.FindInvestmentByID(ctx, investmentID, userID)
	if err != nil {
		return nil, fmt.Errorf("failed to find investment for update: %w", err)
	}

	if req.Quantity != nil {
		if !req.Quantity.IsPositive() {
			return nil, fmt.Errorf("%w: quantity must be positive", apperrors.ErrValidation)
		}
		inv.Quantity = *req.Quantity
	}
	if req.CurrentPrice != nil {
		inv.CurrentPrice = req.CurrentPrice
	}
	if req.Name != nil {
		inv.Name = *req.Name
	}
	inv.LastUpdatedAt = time.Now()
	inv.LastUpdatedBy = userID

	if err := s.investmentRepo.UpdateInvestment(ctx, *inv); err != nil {
		return nil, fmt.Errorf("failed to update investment in service: %w", err)
	}
	return inv, nil
}

// DeleteInvestment logically deletes an investment.
func (s *investmentService) DeleteInvestment(ctx context.Context, investmentID, userID string) error {
	if err := s.investmentRepo.DeleteInvestment(ctx, investmentID, userID, userID); err != nil {
		return fmt.Errorf("failed to delete investment in service: %w", err)
	}
	return nil
}
