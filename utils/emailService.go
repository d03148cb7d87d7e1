package utils

import (
	"fmt"
	"net/smtp"
	"strings"

	"shopfit/config"
)

// Generic Send Email
func SendEmail(to []string, subject string, htmlBody string) error {
	smtpHost := "smtp.gmail.com"
	smtpPort := "587"

	from := config.AppConfig.EmailSender
	password := config.AppConfig.Password

	// MIME basics
	msg := "MIME-version: 1.0;\nContent-Type: text/html; charset=\"UTF-8\";\n"
	msg += fmt.Sprintf("From: ShopFit <%s>\r\n", from)
	msg += fmt.Sprintf("To: %s\r\n", strings.Join(to, ","))
	msg += fmt.Sprintf("Subject: %s\r\n\r\n", subject)
	msg += htmlBody

	auth := smtp.PlainAuth("", from, password, smtpHost)

	err := smtp.SendMail(smtpHost+":"+smtpPort, auth, from, to, []byte(msg))
	if err != nil {
		fmt.Println("Error sending email:", err)
		return err
	}
	return nil
}

func getEmailTemplate(title string, bodyContent string) string {
	return fmt.Sprintf(`
	<!DOCTYPE html>
	<html>
	<head>
		<style>
			body { font-family: 'Helvetica Neue', Helvetica, Arial, sans-serif; background-color: #F6F6F6; margin: 0; padding: 0; }
			.container { max-width: 600px; margin: 40px auto; background: #FFFFFF; border-radius: 8px; overflow: hidden; box-shadow: 0 4px 15px rgba(0,0,0,0.05); }
			.header { background-color: #1B5E20; padding: 30px; text-align: center; }
			.header h1 { color: #FFFFFF; margin: 0; font-size: 24px; letter-spacing: 1px; }
			.content { padding: 40px 30px; color: #333333; line-height: 1.6; }
			.info-box { background: #E8F5E9; padding: 15px; border-radius: 4px; border-left: 4px solid #66BB6A; margin: 20px 0; }
			.footer { background-color: #F6F6F6; padding: 20px; text-align: center; font-size: 12px; color: #666666; border-top: 1px solid #E0E0E0; }
		</style>
	</head>
	<body>
		<div class="container">
			<div class="header">
				<h1>SHOPFIT</h1>
			</div>
			<div class="content">
				<h2>%s</h2>
				%s
			</div>
			<div class="footer">
				&copy; 2026 ShopFit. All rights reserved.
			</div>
		</div>
	</body>
	</html>
	`, title, bodyContent)
}

// SendOrderConfirmationEmail notifies a user that their payment cleared and
// an order was created.
func SendOrderConfirmationEmail(email, name string, orderID uint, total float64) error {
	body := fmt.Sprintf(`
		<p>Dear %s,</p>
		<p>Thank you for your purchase! Your payment was received and your order is now booked.</p>
		<div class="info-box">
			<strong>Order ID:</strong> #%d<br>
			<strong>Total:</strong> $%.2f
		</div>
		<p>We will let you know once your order ships.</p>
	`, name, orderID, total)

	return SendEmail([]string{email}, "Order Confirmation - ShopFit", getEmailTemplate("Order Confirmed", body))
}

// SendSubscriptionActiveEmail notifies a user that their subscription payment
// cleared and the subscription is active.
func SendSubscriptionActiveEmail(email, name, planName string) error {
	body := fmt.Sprintf(`
		<p>Dear %s,</p>
		<p>Your subscription payment was received.</p>
		<div class="info-box">
			<strong>Plan:</strong> %s<br>
			<strong>Status:</strong> Active
		</div>
		<p>Enjoy your fitness journey!</p>
	`, name, planName)

	return SendEmail([]string{email}, "Subscription Active - ShopFit", getEmailTemplate("Subscription Active", body))
}
