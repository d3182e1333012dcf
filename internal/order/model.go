package order

// Stage is the order lifecycle state.
type Stage string

const (
	StageOrdering  Stage = "ordering"
	StagePayment   Stage = "payment"
	StageCompleted Stage = "completed"
)

// PaymentMethod is the fixed set of accepted payment methods.
type PaymentMethod string

const (
	PaymentCash      PaymentMethod = "Cash"
	PaymentEWallet   PaymentMethod = "E-Wallet"
	PaymentDebitCard PaymentMethod = "Debit Card"
)

func ValidPaymentMethod(m PaymentMethod) bool {
	switch m {
	case PaymentCash, PaymentEWallet, PaymentDebitCard:
		return true
	}
	return false
}

// Line is one row of the cart, unique per canonical item name.
// Subtotal is derived and recomputed on every quantity change, never
// mutated independently.
type Line struct {
	Name        string `json:"name"`
	DisplayName string `json:"display_name"`
	UnitPrice   int    `json:"unit_price"`
	Quantity    int    `json:"quantity"`
	Subtotal    int    `json:"subtotal"`
}
