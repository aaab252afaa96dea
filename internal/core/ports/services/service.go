package services

// ServiceContainer holds instances of all the application services.
// This is the main entry point for accessing service functionality and
// is used throughout the application, particularly in the handlers.
type ServiceContainer struct {
	Change   ChangeSvc
	Checkout CheckoutSvcFacade
	Wallet   WalletSvc
	Billing  BillingSvcFacade
	Loan     LoanSvc
	Day      DaySvc
	Pricing  PricingSvc
	Staff    StaffSvc
	Store    StoreSvc
}
