package app

// MockEmailProvider is used for tests and local development.
type MockEmailProvider struct{}

func (m *MockEmailProvider) Send(to, subject, htmlBody string) error { return nil }
func (m *MockEmailProvider) SendNewMessageNotification(to, studentName, companyName, content string) error {
	return nil
}
