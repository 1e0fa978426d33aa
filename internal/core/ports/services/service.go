package services

// ServiceContainer bundles every service interface the handlers depend on.
type ServiceContainer struct {
	Conversion ConversionSvc
	Analysis   CurrencyAnalysisSvc
	Loan       LoanSvcFacade
	Dashboard  DashboardSvc
	Investment InvestmentSvcFacade
	Income     IncomeSvcFacade
	Expense    ExpenseSvcFacade
	Goal       GoalSvcFacade
	Budget     BudgetSvcFacade
}
