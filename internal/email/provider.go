package email

// Provider sends transactional email.
type Provider interface {
	// Send delivers a plain HTML email.
	Send(to, subject, htmlBody string) error

	// SendNewMessageNotification tells a student a company messaged them.
	SendNewMessageNotification(to, studentName, companyName, content string) error
}
