package pgsql

import (
	"github.com/jackc/pgx/v5/pgxpool"

	portsrepo "github.com/finsight-app/finsight_backend/internal/core/ports/repositories"
)

// NewRepositoryContainer builds the full set of pgx-backed repositories on a
// shared connection pool.
func NewRepositoryContainer(db *pgxpool.Pool) *portsrepo.RepositoryContainer {
	return &portsrepo.RepositoryContainer{
		Investment: NewInvestmentRepository(db),
		Income:     NewIncomeRepository(db),
		Expense:    NewExpenseRepository(db),
		Loan:       NewLoanRepository(db),
		Goal:       NewGoalRepository(db),
		Budget:     NewBudgetRepository(db),
	}
}
