package order

import (
	"testing"

	"drivethru/internal/catalog"
)

var (
	testBurger = catalog.Item{Name: "burger", DisplayName: "Burger", Price: 25000}
	testCola   = catalog.Item{Name: "cola", DisplayName: "Cola", Price: 10000}
)

func TestAddItem_MergesSameItemIntoOneLine(t *testing.T) {
	o := New()

	if err := o.AddItem(testBurger, 2); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if err := o.AddItem(testBurger, 3); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	lines := o.Lines()
	if len(lines) != 1 {
		t.Fatalf("expected 1 line, got %d", len(lines))
	}
	if lines[0].Quantity != 5 {
		t.Errorf("expected quantity 5, got %d", lines[0].Quantity)
	}
	if lines[0].Subtotal != 25000*5 {
		t.Errorf("expected subtotal %d, got %d", 25000*5, lines[0].Subtotal)
	}
}

func TestAddItem_NonPositiveQuantityIsIgnored(t *testing.T) {
	o := New()

	_ = o.AddItem(testBurger, 0)
	_ = o.AddItem(testBurger, -3)

	if len(o.Lines()) != 0 {
		t.Fatalf("expected empty order, got %v", o.Lines())
	}
}

func TestTotal(t *testing.T) {
	o := New()

	if o.Total() != 0 {
		t.Fatalf("empty order total = %d, want 0", o.Total())
	}

	_ = o.AddItem(testBurger, 2) // 50000
	_ = o.AddItem(testCola, 3)   // 30000

	if o.Total() != 80000 {
		t.Fatalf("total = %d, want 80000", o.Total())
	}
}

func TestUpdateQuantity_ZeroRemovesLine(t *testing.T) {
	o := New()
	_ = o.AddItem(testBurger, 2)
	_ = o.AddItem(testCola, 1)

	if err := o.UpdateQuantity(0, 0); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	lines := o.Lines()
	if len(lines) != 1 || lines[0].Name != "cola" {
		t.Fatalf("expected only cola to remain, got %v", lines)
	}
}

func TestUpdateQuantity_RecomputesSubtotal(t *testing.T) {
	o := New()
	_ = o.AddItem(testBurger, 2)

	if err := o.UpdateQuantity(0, 4); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	line := o.Lines()[0]
	if line.Quantity != 4 || line.Subtotal != 100000 {
		t.Fatalf("expected quantity 4 subtotal 100000, got %+v", line)
	}
}

func TestOutOfBoundsIndexIsNoOp(t *testing.T) {
	o := New()
	_ = o.AddItem(testBurger, 2)

	for _, index := range []int{-1, 1, 99} {
		if err := o.RemoveItem(index); err != nil {
			t.Fatalf("RemoveItem(%d) returned error: %v", index, err)
		}
		if err := o.UpdateQuantity(index, 7); err != nil {
			t.Fatalf("UpdateQuantity(%d) returned error: %v", index, err)
		}
	}

	lines := o.Lines()
	if len(lines) != 1 || lines[0].Quantity != 2 {
		t.Fatalf("order changed by out-of-bounds ops: %v", lines)
	}
}

func TestMutationsLockedOutsideOrdering(t *testing.T) {
	o := New()
	_ = o.AddItem(testBurger, 1)

	if err := o.ProceedToPayment(); err != nil {
		t.Fatalf("checkout failed: %v", err)
	}

	if err := o.AddItem(testCola, 1); err != ErrOrderLocked {
		t.Errorf("AddItem during payment = %v, want ErrOrderLocked", err)
	}
	if err := o.RemoveItem(0); err != ErrOrderLocked {
		t.Errorf("RemoveItem during payment = %v, want ErrOrderLocked", err)
	}
	if err := o.UpdateQuantity(0, 2); err != ErrOrderLocked {
		t.Errorf("UpdateQuantity during payment = %v, want ErrOrderLocked", err)
	}
}

func TestStageTransitions(t *testing.T) {
	o := New()

	if err := o.ProceedToPayment(); err != ErrEmptyOrder {
		t.Fatalf("checkout on empty order = %v, want ErrEmptyOrder", err)
	}

	_ = o.AddItem(testBurger, 1)
	if err := o.ProceedToPayment(); err != nil {
		t.Fatalf("checkout failed: %v", err)
	}
	if o.Stage() != StagePayment {
		t.Fatalf("stage = %s, want payment", o.Stage())
	}

	if err := o.BackToOrdering(); err != nil {
		t.Fatalf("back-navigation failed: %v", err)
	}
	if o.Stage() != StageOrdering {
		t.Fatalf("stage = %s, want ordering", o.Stage())
	}

	_ = o.ProceedToPayment()
	if err := o.SetPaymentMethod(PaymentEWallet); err != nil {
		t.Fatalf("set payment failed: %v", err)
	}
	if err := o.Complete(); err != nil {
		t.Fatalf("complete failed: %v", err)
	}
	if o.Stage() != StageCompleted {
		t.Fatalf("stage = %s, want completed", o.Stage())
	}

	// No transition out of completed except restart.
	if err := o.ProceedToPayment(); err != ErrWrongStage {
		t.Errorf("checkout after completion = %v, want ErrWrongStage", err)
	}
	o.Restart()
	if o.Stage() != StageOrdering || len(o.Lines()) != 0 {
		t.Fatalf("restart did not return to an empty ordering state")
	}
}

func TestComplete_CashShortfallBlocks(t *testing.T) {
	o := New()
	_ = o.AddItem(testBurger, 2) // 50000
	_ = o.ProceedToPayment()
	_ = o.SetPaymentMethod(PaymentCash)
	o.SetTendered(40000)

	if err := o.Complete(); err != ErrPaymentShortfall {
		t.Fatalf("complete with shortfall = %v, want ErrPaymentShortfall", err)
	}

	o.SetTendered(60000)
	if err := o.Complete(); err != nil {
		t.Fatalf("complete with sufficient cash failed: %v", err)
	}
}

func TestComplete_RequiresPaymentMethod(t *testing.T) {
	o := New()
	_ = o.AddItem(testCola, 1)
	_ = o.ProceedToPayment()

	if err := o.Complete(); err != ErrNoPaymentMethod {
		t.Fatalf("complete without method = %v, want ErrNoPaymentMethod", err)
	}
}

func TestNonCashSettlesAtTotal(t *testing.T) {
	o := New()
	_ = o.AddItem(testBurger, 2)
	_ = o.ProceedToPayment()
	_ = o.SetPaymentMethod(PaymentDebitCard)

	if o.Tendered() != o.Total() {
		t.Fatalf("tendered = %d, want total %d", o.Tendered(), o.Total())
	}
	if err := o.Complete(); err != nil {
		t.Fatalf("non-cash complete failed: %v", err)
	}
}

func TestSetPaymentMethod_RejectsUnknown(t *testing.T) {
	o := New()
	if err := o.SetPaymentMethod("Cek"); err != ErrInvalidPayment {
		t.Fatalf("expected ErrInvalidPayment, got %v", err)
	}
}

func TestReset_Idempotent(t *testing.T) {
	o := New()
	_ = o.AddItem(testBurger, 2)
	_ = o.SetPaymentMethod(PaymentCash)

	o.Reset()
	if len(o.Lines()) != 0 || o.PaymentMethod() != "" || o.Tendered() != 0 {
		t.Fatalf("reset left state behind: %v %q", o.Lines(), o.PaymentMethod())
	}

	o.Reset()
	if len(o.Lines()) != 0 {
		t.Fatalf("second reset changed state: %v", o.Lines())
	}
}
