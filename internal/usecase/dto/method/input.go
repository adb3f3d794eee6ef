package methoddto

type CreatePaymentMethodInput struct {
	Type          string
	Provider      string
	AccountNumber string
	AccountName   string
	Default       bool
}

type UpdatePaymentMethodInput struct {
	MethodID      string
	Provider      string
	AccountNumber string
	AccountName   string
}

type WithdrawInput struct {
	PaymentMethodID string
	Amount          string
}
