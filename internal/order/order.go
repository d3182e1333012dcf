package order

import (
	"errors"

	"drivethru/internal/catalog"
)

var (
	ErrOrderLocked      = errors.New("order can only be edited while ordering")
	ErrEmptyOrder       = errors.New("order is empty")
	ErrWrongStage       = errors.New("operation not allowed in current stage")
	ErrNoPaymentMethod  = errors.New("payment method not set")
	ErrInvalidPayment   = errors.New("invalid payment method")
	ErrPaymentShortfall = errors.New("tendered amount is less than the total")
)

// Order is the running cart for one kiosk session. It is not safe for
// concurrent use: one order belongs to one session and every session
// interaction is a synchronous request/response cycle.
type Order struct {
	lines         []Line
	paymentMethod PaymentMethod
	tendered      int
	stage         Stage
}

func New() *Order {
	return &Order{stage: StageOrdering}
}

func (o *Order) Stage() Stage                 { return o.stage }
func (o *Order) PaymentMethod() PaymentMethod { return o.paymentMethod }
func (o *Order) Tendered() int                { return o.tendered }

// Lines returns a copy of the cart rows in insertion order.
func (o *Order) Lines() []Line {
	out := make([]Line, len(o.lines))
	copy(out, o.lines)
	return out
}

// AddItem merges quantity into the existing line for the item, or
// appends a new line. Quantities ≤ 0 are ignored.
func (o *Order) AddItem(item catalog.Item, quantity int) error {
	if o.stage != StageOrdering {
		return ErrOrderLocked
	}
	if quantity <= 0 {
		return nil
	}

	for i := range o.lines {
		if o.lines[i].Name == item.Name {
			o.lines[i].Quantity += quantity
			o.lines[i].Subtotal = o.lines[i].UnitPrice * o.lines[i].Quantity
			return nil
		}
	}

	o.lines = append(o.lines, Line{
		Name:        item.Name,
		DisplayName: item.DisplayName,
		UnitPrice:   item.Price,
		Quantity:    quantity,
		Subtotal:    item.Price * quantity,
	})
	return nil
}

// RemoveItem deletes the line at index. An out-of-bounds index is a
// no-op, not an error: the UI may race its own redraws.
func (o *Order) RemoveItem(index int) error {
	if o.stage != StageOrdering {
		return ErrOrderLocked
	}
	if index < 0 || index >= len(o.lines) {
		return nil
	}
	o.lines = append(o.lines[:index], o.lines[index+1:]...)
	return nil
}

// UpdateQuantity sets the quantity of the line at index and recomputes
// its subtotal. A quantity ≤ 0 removes the line; a line is never kept
// at quantity 0. An out-of-bounds index is a no-op.
func (o *Order) UpdateQuantity(index, newQuantity int) error {
	if o.stage != StageOrdering {
		return ErrOrderLocked
	}
	if index < 0 || index >= len(o.lines) {
		return nil
	}
	if newQuantity <= 0 {
		o.lines = append(o.lines[:index], o.lines[index+1:]...)
		return nil
	}
	o.lines[index].Quantity = newQuantity
	o.lines[index].Subtotal = o.lines[index].UnitPrice * newQuantity
	return nil
}

// Total is the sum of all line subtotals, 0 for an empty order.
func (o *Order) Total() int {
	total := 0
	for _, line := range o.lines {
		total += line.Subtotal
	}
	return total
}

func (o *Order) SetPaymentMethod(method PaymentMethod) error {
	if !ValidPaymentMethod(method) {
		return ErrInvalidPayment
	}
	o.paymentMethod = method
	// Non-cash methods settle at exactly the total: no change, no
	// shortfall possible.
	if method != PaymentCash {
		o.tendered = o.Total()
	}
	return nil
}

// SetTendered records the cash handed over. Only meaningful for the
// Cash payment method.
func (o *Order) SetTendered(amount int) {
	if amount < 0 {
		amount = 0
	}
	o.tendered = amount
}

// ProceedToPayment moves a non-empty order from ordering to payment.
func (o *Order) ProceedToPayment() error {
	if o.stage != StageOrdering {
		return ErrWrongStage
	}
	if len(o.lines) == 0 {
		return ErrEmptyOrder
	}
	o.stage = StagePayment
	return nil
}

// BackToOrdering is the explicit back-navigation from payment.
func (o *Order) BackToOrdering() error {
	if o.stage != StagePayment {
		return ErrWrongStage
	}
	o.stage = StageOrdering
	return nil
}

// Complete finishes payment. Cash must cover the total; a shortfall
// blocks completion and is reported, not swallowed.
func (o *Order) Complete() error {
	if o.stage != StagePayment {
		return ErrWrongStage
	}
	if o.paymentMethod == "" {
		return ErrNoPaymentMethod
	}
	if o.paymentMethod == PaymentCash && o.tendered < o.Total() {
		return ErrPaymentShortfall
	}
	o.stage = StageCompleted
	return nil
}

// Reset discards all lines, the payment method and the tendered
// amount. It does not touch the stage: stage transitions are driven by
// the caller. Calling it on an already empty order is harmless.
func (o *Order) Reset() {
	o.lines = nil
	o.paymentMethod = ""
	o.tendered = 0
}

// Restart resets the order and returns it to the ordering stage, as
// the "new order" action does after completion.
func (o *Order) Restart() {
	o.Reset()
	o.stage = StageOrdering
}
