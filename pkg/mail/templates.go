package mail

import (
	"bytes"
	"fmt"
	"html/template"
)

// ContactEmailData holds the data for contact form emails
type ContactEmailData struct {
	Name     string
	LastName string
	Phone    string
	Email    string
	Message  string
}

// ApplicationEmailData holds the data for career application emails
type ApplicationEmailData struct {
	FullName       string
	Email          string
	Phone          string
	Position       string
	Experience     string
	Qualification  string
	CurrentCompany string
	Portfolio      string
	Message        string
}

// contactEmailTemplate is the HTML template for contact form emails
const contactEmailTemplate = `<!DOCTYPE html>
<html>
<head>
    <meta charset="UTF-8">
    <title>New Contact Message</title>
</head>
<body style="font-family: Poppins, sans-serif; padding: 20px; background: #f4f4f4;">
    <div style="max-width: 600px; margin: auto; background: white; border-radius: 10px; padding: 20px; box-shadow: 0 0 10px rgba(0,0,0,0.1);">
        <h2 style="color: #1a237e; border-bottom: 2px solid #eee; padding-bottom: 8px;">
            New Contact Message
        </h2>
        <p><b>Name:</b> {{.Name}} {{.LastName}}</p>
        <p><b>Phone:</b> {{.Phone}}</p>
        <p><b>Email:</b> {{.Email}}</p>
        <div style="margin-top: 15px; padding: 15px; background: #fafafa; border-left: 4px solid #1a237e;">
            <b>Message:</b>
            <p>{{.Message}}</p>
        </div>
        <p style="margin-top: 20px; font-size: 12px; color: #777;">
            This message was sent via <b>ALEB Website Contact Form</b>.
        </p>
    </div>
</body>
</html>`

// applicationEmailTemplate is the HTML template for career application emails
const applicationEmailTemplate = `<!DOCTYPE html>
<html>
<head>
    <meta charset="UTF-8">
    <title>New Career Application</title>
</head>
<body style="font-family: Poppins, sans-serif; padding: 20px; background: #f4f4f4;">
    <div style="max-width: 650px; margin: auto; background: white; border-radius: 10px; padding: 25px; box-shadow: 0 0 10px rgba(0,0,0,0.08);">
        <h2 style="color: #1a237e; border-bottom: 2px solid #eee; padding-bottom: 10px;">
            New Career Application
        </h2>
        <table style="width: 100%; margin-top: 15px;">
            <tr><td><b>Name:</b></td><td>{{.FullName}}</td></tr>
            <tr><td><b>Email:</b></td><td>{{.Email}}</td></tr>
            <tr><td><b>Phone:</b></td><td>{{.Phone}}</td></tr>
            <tr><td><b>Position Applied:</b></td><td>{{.Position}}</td></tr>
            <tr><td><b>Experience:</b></td><td>{{.Experience}}</td></tr>
            <tr><td><b>Qualification:</b></td><td>{{.Qualification}}</td></tr>
            <tr><td><b>Current Company:</b></td><td>{{.CurrentCompany}}</td></tr>
            <tr><td><b>Portfolio:</b></td><td>{{.Portfolio}}</td></tr>
        </table>
        <div style="margin-top: 20px; padding: 15px; background: #fafafa; border-left: 4px solid #1a237e;">
            <b>Message:</b>
            <p>{{.Message}}</p>
        </div>
        <div style="margin-top: 20px;">
            <b>Resume Attached</b>
        </div>
        <p style="margin-top: 20px; font-size: 12px; color: #777;">
            Submitted via <b>ALEB Careers Page</b>.
        </p>
    </div>
</body>
</html>`

// RenderContactEmail renders the contact form email body. User-supplied
// values are HTML-escaped by html/template.
func RenderContactEmail(data ContactEmailData) (string, error) {
	return render("contact", contactEmailTemplate, data)
}

// RenderApplicationEmail renders the career application email body.
func RenderApplicationEmail(data ApplicationEmailData) (string, error) {
	return render("application", applicationEmailTemplate, data)
}

func render(name, text string, data interface{}) (string, error) {
	tmpl, err := template.New(name).Parse(text)
	if err != nil {
		return "", fmt.Errorf("failed to parse email template: %w", err)
	}

	var body bytes.Buffer
	if err := tmpl.Execute(&body, data); err != nil {
		return "", fmt.Errorf("failed to execute email template: %w", err)
	}
	return body.String(), nil
}
