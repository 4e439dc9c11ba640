package notifier

import (
	"fmt"
	"html/template"
	"strings"

	"github.com/audiophile/storefront/internal/core/domain"
)

var confirmationTmpl = template.Must(template.New("confirmation").Parse(`<!DOCTYPE html>
<html lang="en">
<head>
  <meta charset="UTF-8">
  <title>Order Confirmation</title>
</head>
<body style="font-family: sans-serif; color: #333; max-width: 600px; margin: 0 auto; padding: 20px;">
  <h1 style="color: #D87D4A;">Order Confirmation</h1>

  <p>Hi {{.CustomerName}},</p>

  <p>Thank you for your order! We're excited to get your items ready for you.</p>

  <p><strong>Order ID:</strong> {{.OrderID}}</p>

  <h2>Order Summary</h2>
  <table width="100%" cellpadding="8" style="border-collapse: collapse;">
    <tr><th align="left">Item</th><th align="left">Quantity</th><th align="left">Price</th></tr>
    {{range .Items}}<tr><td>{{.Name}}</td><td>{{.Quantity}}</td><td>{{.Price}}</td></tr>
    {{end}}
  </table>

  <p>
    Subtotal: {{.Subtotal}}<br>
    Shipping: {{.Shipping}}<br>
    Tax: {{.Tax}}<br>
    <strong>Total: {{.Total}}</strong>
  </p>

  <h3>Shipping Address</h3>
  <p>
    {{.Address.Street}}<br>
    {{.Address.City}}, {{.Address.State}} {{.Address.ZipCode}}<br>
    {{.Address.Country}}
  </p>

  <p>We'll send you another email when your order ships.</p>

  <p><a href="{{.ViewURL}}" style="color: #D87D4A;">View Your Order</a></p>

  <p style="color: #666; font-size: 14px;">
    Thank you for shopping with Audiophile!<br>
    Need help? Contact us at support@audiophile.com
  </p>
</body>
</html>`))

type confirmationItem struct {
	Name     string
	Quantity int
	Price    string
}

type confirmationData struct {
	CustomerName string
	OrderID      string
	Items        []confirmationItem
	Subtotal     string
	Shipping     string
	Tax          string
	Total        string
	Address      domain.ShippingAddress
	ViewURL      string
}

func renderConfirmation(order domain.Order, appURL string) (string, error) {
	items := make([]confirmationItem, 0, len(order.Items))
	for _, it := range order.Items {
		items = append(items, confirmationItem{
			Name:     it.Name,
			Quantity: it.Quantity,
			Price:    formatMoney(it.Price),
		})
	}

	data := confirmationData{
		CustomerName: order.CustomerName,
		OrderID:      order.OrderID,
		Items:        items,
		Subtotal:     formatMoney(order.Subtotal),
		Shipping:     formatMoney(order.Shipping),
		Tax:          formatMoney(order.Tax),
		Total:        formatMoney(order.Total),
		Address:      order.ShippingAddress,
		ViewURL:      fmt.Sprintf("%s/order-confirmation/%s", strings.TrimRight(appURL, "/"), order.OrderID),
	}

	var buf strings.Builder
	if err := confirmationTmpl.Execute(&buf, data); err != nil {
		return "", err
	}
	return buf.String(), nil
}

func formatMoney(units int64) string {
	return fmt.Sprintf("$%d.00", units)
}
