package repositories

// RepositoryContainer bundles every repository the service layer needs.
type RepositoryContainer struct {
	Investment InvestmentRepositoryFacade
	Income     IncomeRepositoryFacade
	Expense    ExpenseRepositoryFacade
	Loan       LoanRepositoryFacade
	Goal       GoalRepositoryFacade
	Budget     BudgetRepositoryFacade
}
