package email

import (
	"crypto/tls"
	"fmt"
	"log"
	"strconv"
	"strings"

	"github.com/wneessen/go-mail"

	"github.com/jhalaharsh71/hotel-frontend-sub001/internal/domain"
)

// Client sends transactional email over SMTP.
type Client struct {
	host      string
	port      int
	user      string
	password  string
	fromName  string
	fromEmail string
}

// NewClient creates a new SMTP email client.
func NewClient(host, portStr, user, password, fromName, fromEmail string) (*Client, error) {
	port, err := strconv.Atoi(portStr)
	if err != nil {
		return nil, fmt.Errorf("invalid SMTP port: %w", err)
	}

	return &Client{
		host:      host,
		port:      port,
		user:      user,
		password:  password,
		fromName:  fromName,
		fromEmail: fromEmail,
	}, nil
}

// SendEmail sends one HTML email.
func (c *Client) SendEmail(to, subject, htmlBody string) error {
	m := mail.NewMsg()

	if err := m.From(fmt.Sprintf("%s <%s>", c.fromName, c.fromEmail)); err != nil {
		return fmt.Errorf("failed to set sender: %w", err)
	}
	if err := m.To(to); err != nil {
		return fmt.Errorf("failed to set recipient: %w", err)
	}

	m.Subject(subject)
	m.SetBodyString(mail.TypeTextHTML, htmlBody)

	log.Printf("SMTP: connecting to %s:%d as user=%s", c.host, c.port, c.user)

	client, err := mail.NewClient(c.host,
		mail.WithPort(c.port),
		mail.WithSMTPAuth(mail.SMTPAuthPlain),
		mail.WithUsername(c.user),
		mail.WithPassword(c.password),
		mail.WithTLSPolicy(mail.TLSMandatory),
		mail.WithTLSConfig(&tls.Config{
			ServerName: c.host,
		}),
	)
	if err != nil {
		return fmt.Errorf("failed to create SMTP client (host=%s port=%d user=%s): %w", c.host, c.port, c.user, err)
	}

	if err := client.DialAndSend(m); err != nil {
		return fmt.Errorf("failed to send email (host=%s port=%d user=%s): %w", c.host, c.port, c.user, err)
	}

	return nil
}

// SendBookingConfirmation mails the booking receipt to the booking contact.
func (c *Client) SendBookingConfirmation(receipt *domain.ReceiptSnapshot) error {
	subject := fmt.Sprintf("Booking Confirmation %s - %s", receipt.BookingID, c.fromName)
	htmlBody := buildConfirmationHTML(receipt)

	return c.SendEmail(receipt.Email, subject, htmlBody)
}

// buildConfirmationHTML renders the confirmation email body.
func buildConfirmationHTML(receipt *domain.ReceiptSnapshot) string {
	guestsHTML := ""
	for i, g := range receipt.Guests {
		name := strings.TrimSpace(g.FirstName + " " + g.LastName)
		role := ""
		if g.IsPrimary {
			role = " (primary)"
		}
		guestsHTML += fmt.Sprintf(`
			<tr>
				<td style="padding: 10px; border-bottom: 1px solid #e0e0e0;">%d</td>
				<td style="padding: 10px; border-bottom: 1px solid #e0e0e0;">%s%s</td>
			</tr>
		`, i+1, name, role)
	}

	return fmt.Sprintf(`
<!DOCTYPE html>
<html lang="en">
<head>
	<meta charset="UTF-8">
	<meta name="viewport" content="width=device-width, initial-scale=1.0">
	<title>Booking Confirmation</title>
</head>
<body style="margin: 0; padding: 0; font-family: Arial, sans-serif; background-color: #f4f4f4;">
	<table width="100%%" cellpadding="0" cellspacing="0" style="background-color: #f4f4f4; padding: 20px;">
		<tr>
			<td align="center">
				<table width="600" cellpadding="0" cellspacing="0" style="background-color: #ffffff; border-radius: 8px; overflow: hidden; box-shadow: 0 2px 4px rgba(0,0,0,0.1);">
					<tr>
						<td style="background: linear-gradient(135deg, #667eea 0%%, #764ba2 100%%); padding: 40px 20px; text-align: center;">
							<h1 style="color: #ffffff; margin: 0; font-size: 28px;">Booking Confirmed!</h1>
							<p style="color: #ffffff; margin: 10px 0 0 0; font-size: 16px;">Thank you for booking with us</p>
						</td>
					</tr>
					<tr>
						<td style="padding: 40px 30px;">
							<div style="background-color: #f8f9fa; border-left: 4px solid #667eea; padding: 20px; margin-bottom: 30px;">
								<h2 style="margin: 0 0 15px 0; color: #333; font-size: 20px;">Booking Details</h2>
								<table width="100%%" cellpadding="0" cellspacing="0">
									<tr>
										<td style="padding: 8px 0;"><strong>Booking No:</strong></td>
										<td style="padding: 8px 0; text-align: right;">%s</td>
									</tr>
									<tr>
										<td style="padding: 8px 0;"><strong>Check-in:</strong></td>
										<td style="padding: 8px 0; text-align: right;">%s</td>
									</tr>
									<tr>
										<td style="padding: 8px 0;"><strong>Check-out:</strong></td>
										<td style="padding: 8px 0; text-align: right;">%s</td>
									</tr>
									<tr>
										<td style="padding: 8px 0;"><strong>Nights:</strong></td>
										<td style="padding: 8px 0; text-align: right;">%d</td>
									</tr>
									<tr>
										<td style="padding: 8px 0;"><strong>Payment method:</strong></td>
										<td style="padding: 8px 0; text-align: right;">%s</td>
									</tr>
								</table>
							</div>

							<h3 style="color: #333; margin-bottom: 20px;">Guests</h3>
							<table width="100%%" cellpadding="0" cellspacing="0" style="border: 1px solid #e0e0e0; border-radius: 8px; overflow: hidden;">
								<tbody>
									%s
								</tbody>
							</table>

							<div style="margin-top: 30px; padding: 20px; background-color: #f8f9fa; border-radius: 8px;">
								<table width="100%%" cellpadding="0" cellspacing="0">
									<tr>
										<td style="padding: 8px 0;"><strong>Total:</strong></td>
										<td style="padding: 8px 0; text-align: right;">%.2f</td>
									</tr>
									<tr>
										<td style="padding: 8px 0;"><strong>Paid:</strong></td>
										<td style="padding: 8px 0; text-align: right; color: #28a745;">%.2f</td>
									</tr>
									<tr style="border-top: 2px solid #667eea;">
										<td style="padding: 15px 0 0 0;"><strong style="font-size: 18px;">Due at property:</strong></td>
										<td style="padding: 15px 0 0 0; text-align: right;"><strong style="font-size: 24px; color: #667eea;">%.2f</strong></td>
									</tr>
								</table>
							</div>

							<div style="margin-top: 30px; padding: 20px; background-color: #fff3cd; border-radius: 8px; border-left: 4px solid #ffc107;">
								<h4 style="margin: 0 0 10px 0; color: #856404;">Important Information</h4>
								<ul style="margin: 0; padding-left: 20px; color: #856404;">
									<li>Present this email at check-in</li>
									<li>Check-in: 15:00 hrs | Check-out: 12:00 hrs</li>
									<li>Cancellations are free while the booking is pending or active</li>
								</ul>
							</div>
						</td>
					</tr>
					<tr>
						<td style="background-color: #f8f9fa; padding: 30px; text-align: center; border-top: 1px solid #e0e0e0;">
							<p style="margin: 0 0 10px 0; color: #666; font-size: 14px;">
								If you have any questions, do not hesitate to contact us
							</p>
							<p style="margin: 0; color: #999; font-size: 12px;">
								This is an automated email, please do not reply directly
							</p>
						</td>
					</tr>
				</table>
			</td>
		</tr>
	</table>
</body>
</html>
	`,
		receipt.BookingID,
		receipt.CheckInDate.Format("02/01/2006"),
		receipt.CheckOutDate.Format("02/01/2006"),
		receipt.DurationNights,
		receipt.PaymentMethod,
		guestsHTML,
		receipt.TotalAmount,
		receipt.PaidAmount,
		receipt.TotalAmount-receipt.PaidAmount,
	)
}
