// Package whatsapp builds the checkout handoff: the shop never processes
// payment, it deep-links the customer into a chat with the order pre-filled.
package whatsapp

import (
	"fmt"
	"net/url"
	"strings"
)

// OrderItem is one saved-cart line destined for the order message.
type OrderItem struct {
	Name     string `json:"name" validate:"required"`
	Category string `json:"category"`
	Price    string `json:"price" validate:"required"`
	Quantity int    `json:"quantity" validate:"required,gt=0"`
}

const messageHeader = "Halo Kak, saya mau pesan produk berikut yaa:\n\n*Detail Pesanan*\n\n"
const messageFooter = "Boleh dibantu info ketersediaan dan cara pemesanannya? Terima kasih :)"

// BuildOrderMessage renders the order text for one or more saved items.
func BuildOrderMessage(items []OrderItem) string {
	var b strings.Builder
	b.WriteString(messageHeader)

	totalItems := 0
	for i, item := range items {
		category := item.Category
		if category == "" {
			category = "Umum"
		}
		fmt.Fprintf(&b, "%d. %s\n   Kategori: %s\n   Harga: %s\n   Jumlah: %d\n\n",
			i+1, item.Name, category, item.Price, item.Quantity)
		totalItems += item.Quantity
	}

	fmt.Fprintf(&b, "---\nTotal Item: %d produk\n\n", totalItems)
	b.WriteString(messageFooter)
	return b.String()
}

// OrderURL builds the wa.me deep link carrying the order message.
func OrderURL(number string, items []OrderItem) string {
	return fmt.Sprintf("https://wa.me/%s?text=%s", number, url.QueryEscape(BuildOrderMessage(items)))
}
