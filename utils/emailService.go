package utils

import (
	"elearn/config"
	"elearn/models"
	"fmt"
	"log"

	"github.com/sendgrid/sendgrid-go"
	"github.com/sendgrid/sendgrid-go/helpers/mail"
)

// SendEmail delivers a transactional email through SendGrid. A missing API
// key turns delivery into a logged no-op so local setups keep working.
func SendEmail(toName, toEmail, subject, htmlBody string) error {
	if config.AppConfig.SendGridKey == "" {
		log.Printf("Skipping email to %s (SENDGRID_API_KEY not set)", toEmail)
		return nil
	}

	from := mail.NewEmail("E-Learning", config.AppConfig.EmailSender)
	to := mail.NewEmail(toName, toEmail)
	message := mail.NewSingleEmail(from, subject, to, "", htmlBody)

	client := sendgrid.NewSendClient(config.AppConfig.SendGridKey)
	response, err := client.Send(message)
	if err != nil {
		log.Printf("Error sending email to %s: %v", toEmail, err)
		return err
	}

	if response.StatusCode >= 400 {
		log.Printf("SendGrid rejected email to %s: %d %s", toEmail, response.StatusCode, response.Body)
		return fmt.Errorf("sendgrid returned status %d", response.StatusCode)
	}

	return nil
}

// SendEnrollmentEmail confirms an enrollment to the learner
func SendEnrollmentEmail(user models.User, course models.Course, status string) {
	subject := fmt.Sprintf("Enrollment confirmation: %s", course.Title)

	body := fmt.Sprintf("<p>Hi %s,</p><p>You have been enrolled in <strong>%s</strong>.</p>", user.Firstname, course.Title)
	if status == models.EnrollmentStatusPending {
		subject = fmt.Sprintf("Enrollment received: %s", course.Title)
		body = fmt.Sprintf("<p>Hi %s,</p><p>Your enrollment in <strong>%s</strong> is pending payment confirmation.</p>", user.Firstname, course.Title)
	}

	if err := SendEmail(user.Firstname, user.Email, subject, getEmailTemplate(subject, body)); err != nil {
		log.Printf("Error sending enrollment email: %v", err)
	}
}

// getEmailTemplate wraps body content in the shared HTML layout
func getEmailTemplate(title string, bodyContent string) string {
	return fmt.Sprintf(`
	<!DOCTYPE html>
	<html>
	<head>
		<style>
			body { font-family: 'Helvetica Neue', Helvetica, Arial, sans-serif; background-color: #F6F6F6; margin: 0; padding: 0; }
			.container { max-width: 600px; margin: 40px auto; background: #FFFFFF; border-radius: 8px; overflow: hidden; }
			.header { background-color: #00004D; padding: 30px; text-align: center; }
			.header h1 { color: #FFFFFF; margin: 0; font-size: 24px; }
			.content { padding: 40px 30px; color: #00004D; line-height: 1.6; }
			.footer { background-color: #F6F6F6; padding: 20px; text-align: center; font-size: 12px; color: #666666; }
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
				This is an automated message, please do not reply.
			</div>
		</div>
	</body>
	</html>`, title, bodyContent)
}
