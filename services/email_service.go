package services

import (
	"fmt"
	"net/smtp"
	"os"
	"strings"

	"backend/models"

	"golang.org/x/net/html"
)

// convertHTMLToText converts HTML content to plain text for email sending
func convertHTMLToText(htmlContent string) string {
	doc, err := html.Parse(strings.NewReader(htmlContent))
	if err != nil {
		// If parsing fails, return the original content
		return htmlContent
	}

	var text strings.Builder
	var extractText func(*html.Node)
	extractText = func(n *html.Node) {
		switch n.Type {
		case html.TextNode:
			text.WriteString(n.Data)
		case html.ElementNode:
			// Add line breaks for block elements
			switch n.Data {
			case "p", "div", "br", "h1", "h2", "h3", "h4", "h5", "h6":
				text.WriteString("\n")
			case "li":
				text.WriteString("- ")
			case "table", "tr":
				text.WriteString("\n")
			case "td", "th":
				text.WriteString(" | ")
			}
		}

		for child := n.FirstChild; child != nil; child = child.NextSibling {
			extractText(child)
		}
	}

	extractText(doc)

	result := text.String()
	result = strings.ReplaceAll(result, "\n\n\n", "\n\n")
	result = strings.TrimSpace(result)

	return result
}

// EmailService sends estimate summaries to clients over SMTP.
type EmailService struct{}

// NewEmailService creates a new email service instance
func NewEmailService() *EmailService {
	return &EmailService{}
}

// SendEstimateEmail renders an estimate's line items into a simple HTML
// table, converts it to plain text and sends both the estimate name and the
// itemized list to the recipient.
func (es *EmailService) SendEstimateEmail(to, estimateName string, results []models.CalculationResult) error {
	if to == "" {
		return fmt.Errorf("recipient email is required")
	}

	var body strings.Builder
	body.WriteString("<h2>" + estimateName + "</h2>")
	body.WriteString("<table><tr><th>Item</th><th>Quantity</th><th>Unit</th><th>Cost</th></tr>")
	for _, r := range results {
		cost := ""
		if r.Cost > 0 || r.IsTotal {
			v := r.Cost
			if r.IsTotal {
				v = r.Value
			}
			cost = fmt.Sprintf("$%.2f", v)
		}
		body.WriteString(fmt.Sprintf("<tr><td>%s</td><td>%.2f</td><td>%s</td><td>%s</td></tr>",
			r.Label, r.Value, r.Unit, cost))
	}
	body.WriteString("</table>")

	subject := "Estimate: " + estimateName
	plainText := convertHTMLToText(body.String())

	return es.sendEmail(to, subject, plainText)
}

// sendEmail sends an email using SMTP with credentials from the environment.
func (es *EmailService) sendEmail(to, subject, body string) error {
	host := os.Getenv("SMTP_HOST")
	port := os.Getenv("SMTP_PORT")
	user := os.Getenv("SMTP_USER")
	password := os.Getenv("SMTP_PASSWORD")
	from := os.Getenv("SMTP_FROM")
	if from == "" {
		from = user
	}
	if host == "" || user == "" {
		return fmt.Errorf("SMTP is not configured")
	}
	if port == "" {
		port = "587"
	}

	auth := smtp.PlainAuth("", user, password, host)

	msg := strings.Builder{}
	msg.WriteString("From: " + from + "\r\n")
	msg.WriteString("To: " + to + "\r\n")
	msg.WriteString("Subject: " + subject + "\r\n")
	msg.WriteString("MIME-Version: 1.0\r\n")
	msg.WriteString("Content-Type: text/plain; charset=\"UTF-8\"\r\n")
	msg.WriteString("\r\n")
	msg.WriteString(body)

	if err := smtp.SendMail(host+":"+port, auth, from, []string{to}, []byte(msg.String())); err != nil {
		return fmt.Errorf("failed to send email: %v", err)
	}

	return nil
}
