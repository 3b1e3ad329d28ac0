package service

import (
	"context"
	"fmt"

	"github.com/sendgrid/sendgrid-go"
	"github.com/sendgrid/sendgrid-go/helpers/mail"
)

type emailService struct {
	apiKey    string
	fromEmail string
	fromName  string
}

func NewEmailService(apiKey, fromEmail, fromName string) EmailService {
	return &emailService{
		apiKey:    apiKey,
		fromEmail: fromEmail,
		fromName:  fromName,
	}
}

func (s *emailService) SendActivationEmail(ctx context.Context, email, name, activationURL, token string) error {
	subject := "Account activation"
	body := fmt.Sprintf(
		"Hello %s,\n\nWelcome to Bookshelf. Please activate your account by visiting:\n\n%s?token=%s\n\nThe token expires shortly, so do not wait too long.\n\nBest regards,\nThe Bookshelf Team",
		name, activationURL, token,
	)
	return s.send(email, name, subject, body)
}

func (s *emailService) SendOverdueLoanReminder(ctx context.Context, email, name, bookTitle string, daysHeld int) error {
	subject := fmt.Sprintf("Reminder: please return \"%s\"", bookTitle)
	body := fmt.Sprintf(
		"Hello %s,\n\nYou borrowed \"%s\" %d days ago and it has not been returned yet. Please return it so the owner can approve the return.\n\nBest regards,\nThe Bookshelf Team",
		name, bookTitle, daysHeld,
	)
	return s.send(email, name, subject, body)
}

func (s *emailService) send(to, toName, subject, plainText string) error {
	from := mail.NewEmail(s.fromName, s.fromEmail)
	recipient := mail.NewEmail(toName, to)
	message := mail.NewSingleEmail(from, subject, recipient, plainText, "")

	client := sendgrid.NewSendClient(s.apiKey)
	response, err := client.Send(message)
	if err != nil {
		return fmt.Errorf("failed to send email: %w", err)
	}
	if response.StatusCode >= 400 {
		return fmt.Errorf("sendgrid error: status %d, body: %s", response.StatusCode, response.Body)
	}
	return nil
}
