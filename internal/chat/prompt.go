package chat

import (
	"fmt"
	"strings"

	"drivethru/internal/catalog"
)

const systemPrompt = "You are a friendly drive-thru assistant. " +
	"Answer questions about the menu below, in Indonesian or English, " +
	"matching the customer's language. Keep answers short. " +
	"Only recommend items that are on the menu."

// BuildMenuContext renders the catalog as the context message the
// assistant answers from.
func BuildMenuContext(items []catalog.Item) string {
	var b strings.Builder
	b.WriteString("Berikut adalah menu saat ini:\n\n")
	for _, item := range items {
		fmt.Fprintf(&b, "- %s: Rp%d", item.DisplayName, item.Price)
		if item.Description != "" {
			fmt.Fprintf(&b, " (%s)", item.Description)
		}
		b.WriteByte('\n')
	}
	return b.String()
}
