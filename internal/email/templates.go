package email

import (
	"bytes"
	"html/template"
)

// newMessageTemplate is the "a company messaged you" notification body.
var newMessageTemplate = template.Must(template.New("new_message").Parse(`
<html>
<body>
  <p>Hi {{.StudentName}},</p>
  <p><strong>{{.CompanyName}}</strong> sent you a message about your post:</p>
  <blockquote>{{.Content}}</blockquote>
  <p>Log in to view and reply.</p>
</body>
</html>
`))

type newMessageData struct {
	StudentName string
	CompanyName string
	Content     string
}

func renderNewMessage(studentName, companyName, content string) (string, error) {
	var buf bytes.Buffer
	err := newMessageTemplate.Execute(&buf, newMessageData{
		StudentName: studentName,
		CompanyName: companyName,
		Content:     content,
	})
	return buf.String(), err
}
