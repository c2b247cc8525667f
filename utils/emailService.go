package utils

import (
	"fmt"

	"eduplay/config"
	"eduplay/models"

	"github.com/sendgrid/sendgrid-go"
	"github.com/sendgrid/sendgrid-go/helpers/mail"
)

// SendEmail sends a single HTML email through SendGrid
func SendEmail(toName, toEmail, subject, htmlBody string) error {
	if config.AppConfig.SendgridAPIKey == "" {
		return fmt.Errorf("sendgrid api key is not configured")
	}

	from := mail.NewEmail("EduPlay", config.AppConfig.EmailSender)
	to := mail.NewEmail(toName, toEmail)
	message := mail.NewSingleEmail(from, subject, to, "", htmlBody)

	client := sendgrid.NewSendClient(config.AppConfig.SendgridAPIKey)
	response, err := client.Send(message)
	if err != nil {
		return err
	}
	if response.StatusCode >= 400 {
		return fmt.Errorf("sendgrid returned status %d: %s", response.StatusCode, response.Body)
	}
	return nil
}

// SendInstitutionWelcomeEmail greets a freshly registered institution
func SendInstitutionWelcomeEmail(institution models.Institution) error {
	body := getEmailTemplate("Welcome to EduPlay", fmt.Sprintf(`
		<h2>Hello %s,</h2>
		<p>Your institution has been registered on EduPlay.</p>
		<p>You can now publish courses, lessons and minigames for your learners.</p>
		<div class="info-box">Registered email: %s</div>
	`, institution.Name, institution.Email))

	return SendEmail(institution.Name, institution.Email, "Welcome to EduPlay!", body)
}

// getEmailTemplate wraps body content in the shared mail layout
func getEmailTemplate(title string, bodyContent string) string {
	return fmt.Sprintf(`
	<!DOCTYPE html>
	<html>
	<head>
		<style>
			body { font-family: 'Helvetica Neue', Helvetica, Arial, sans-serif; background-color: #F6F6F6; margin: 0; padding: 0; }
			.container { max-width: 600px; margin: 40px auto; background: #FFFFFF; border-radius: 8px; overflow: hidden; box-shadow: 0 4px 15px rgba(0,0,0,0.05); }
			.header { background-color: #1B4332; padding: 30px; text-align: center; }
			.header h1 { color: #FFFFFF; margin: 0; font-size: 24px; letter-spacing: 1px; }
			.content { padding: 40px 30px; color: #1B4332; line-height: 1.6; }
			.content h2 { color: #1B4332; margin-top: 0; }
			.footer { background-color: #F6F6F6; padding: 20px; text-align: center; font-size: 12px; color: #666666; border-top: 1px solid #E0E0E0; }
			.info-box { background: #E8F5E9; padding: 15px; border-radius: 4px; border-left: 4px solid #52B788; margin: 20px 0; }
		</style>
	</head>
	<body>
		<div class="container">
			<div class="header">
				<h1>%s</h1>
			</div>
			<div class="content">
				%s
			</div>
			<div class="footer">
				EduPlay &middot; This is an automated message, please do not reply.
			</div>
		</div>
	</body>
	</html>
	`, title, bodyContent)
}
