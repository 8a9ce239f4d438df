package notify

import (
	"fmt"

	"github.com/Lacoustre/food-delivery-app-sub001/models"
)

// OrderEmailData carries what the transactional order emails need.
type OrderEmailData struct {
	OrderRef     string             `json:"orderNumber"`
	CustomerName string             `json:"customerName"`
	Email        string             `json:"email"`
	Phone        string             `json:"phone"`
	Total        float64            `json:"total"`
	Status       models.OrderStatus `json:"status"`
}

// WelcomeEmailData carries what the welcome email needs.
type WelcomeEmailData struct {
	Name  string `json:"name"`
	Email string `json:"email"`
}

// ComposeOrderConfirmation builds the subject and HTML body for a new order.
func ComposeOrderConfirmation(d OrderEmailData) (subject, html string) {
	subject = fmt.Sprintf("Order #%s confirmed", d.OrderRef)
	html = fmt.Sprintf(
		`<h2>Thanks for your order, %s!</h2>
<p>We received your order <strong>#%s</strong> and sent it to the kitchen.</p>
<p>Total: <strong>$%.2f</strong></p>
<p>We will keep you posted as it progresses.</p>`,
		d.CustomerName, d.OrderRef, d.Total,
	)
	return subject, html
}

// ComposeStatusUpdate builds the subject and HTML body for a status change.
// The body line comes from the order lifecycle model.
func ComposeStatusUpdate(d OrderEmailData) (subject, html string) {
	subject = fmt.Sprintf("Order #%s update", d.OrderRef)
	html = fmt.Sprintf(
		`<h2>Hi %s,</h2>
<p>%s</p>`,
		d.CustomerName, models.StatusMessage(d.Status, d.OrderRef),
	)
	return subject, html
}

// ComposeWelcome builds the subject and HTML body for a new account.
func ComposeWelcome(d WelcomeEmailData) (subject, html string) {
	subject = "Welcome!"
	html = fmt.Sprintf(
		`<h2>Welcome, %s!</h2>
<p>Your account is ready. Browse the menu and place your first order whenever you are hungry.</p>`,
		d.Name,
	)
	return subject, html
}

// ComposeStatusSMS builds the text-message body for a status change.
func ComposeStatusSMS(d OrderEmailData) string {
	return models.StatusMessage(d.Status, d.OrderRef)
}
