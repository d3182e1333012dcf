package order

import (
	"fmt"
	"strings"
	"time"
)

const (
	receiptHeader  = "=== STRUK PEMBELIAN ==="
	receiptDivider = "---------------------------"
	receiptFooter  = "==========================="
	receiptThanks  = "Terima kasih!"
)

// Receipt renders the deterministic textual receipt. When
// amountTendered is non-nil a change line (tendered ≥ total) or a
// shortfall line (tendered < total) is included; when nil, neither is.
func (o *Order) Receipt(amountTendered *int) string {
	var b strings.Builder

	b.WriteString(receiptHeader + "\n")
	for _, line := range o.lines {
		fmt.Fprintf(&b, "%s x%d = Rp%s\n", line.DisplayName, line.Quantity, formatRupiah(line.Subtotal))
	}
	b.WriteString(receiptDivider + "\n")
	fmt.Fprintf(&b, "Total: Rp%s\n", formatRupiah(o.Total()))
	fmt.Fprintf(&b, "Metode Bayar: %s\n", o.paymentMethod)

	if amountTendered != nil {
		total := o.Total()
		fmt.Fprintf(&b, "Uang Diterima: Rp%s\n", formatRupiah(*amountTendered))
		if *amountTendered >= total {
			fmt.Fprintf(&b, "Uang Kembali: Rp%s\n", formatRupiah(*amountTendered-total))
		} else {
			fmt.Fprintf(&b, "Kekurangan: Rp%s\n", formatRupiah(total-*amountTendered))
		}
	}

	fmt.Fprintf(&b, "Waktu: %s\n", time.Now().Format("2006-01-02 15:04:05"))
	b.WriteString(receiptFooter + "\n")
	b.WriteString(receiptThanks)

	return b.String()
}

// formatRupiah renders a whole-rupiah amount with thousands
// separators: 1250000 → "1,250,000". Prices carry no cents.
func formatRupiah(amount int) string {
	if amount < 0 {
		return "-" + formatRupiah(-amount)
	}
	s := fmt.Sprintf("%d", amount)
	if len(s) <= 3 {
		return s
	}

	var b strings.Builder
	lead := len(s) % 3
	if lead > 0 {
		b.WriteString(s[:lead])
	}
	for i := lead; i < len(s); i += 3 {
		if b.Len() > 0 {
			b.WriteByte(',')
		}
		b.WriteString(s[i : i+3])
	}
	return b.String()
}
