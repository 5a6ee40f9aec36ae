/*
Package notify delivers the assembled report by email, or prints it when no
recipient is configured.
*/
package notify

import (
	"fmt"
	"log"
	"strings"
	"time"

	gomail "gopkg.in/mail.v2"

	"github.com/shanehull/edgarscan/internal/types"
)

// EmailConfig holds SMTP configuration for sending the report.
type EmailConfig struct {
	SMTPServer string
	SMTPPort   int
	SMTPUser   string
	SMTPPass   string
	FromEmail  string
	MailTo     string
}

// Subject returns the fixed report subject for a scan date.
func Subject(date string) string {
	return fmt.Sprintf("EDGAR Scan – %s", date)
}

// Send delivers the report as one plain-text email to every comma-delimited
// recipient. The SMTP connection is opened for exactly this send and closed
// on all paths by the dialer.
func Send(cfg EmailConfig, report types.Report) error {
	recipients := splitRecipients(cfg.MailTo)
	if len(recipients) == 0 {
		return fmt.Errorf("no recipients configured")
	}

	m := gomail.NewMessage()
	m.SetHeader("From", cfg.FromEmail)
	m.SetHeader("To", recipients...)
	m.SetHeader("Subject", Subject(report.Date))
	m.SetBody("text/plain", report.Body)

	dialer := gomail.NewDialer(cfg.SMTPServer, cfg.SMTPPort, cfg.SMTPUser, cfg.SMTPPass)
	dialer.Timeout = 10 * time.Second
	// Implicit TLS on the SMTPS port, STARTTLS otherwise.
	dialer.SSL = cfg.SMTPPort == 465

	if err := dialer.DialAndSend(m); err != nil {
		return fmt.Errorf("failed to send report to %s: %w", cfg.MailTo, err)
	}

	log.Printf("Report sent to %s (SMTP: %s:%d)", cfg.MailTo, cfg.SMTPServer, cfg.SMTPPort)
	return nil
}

// Print writes the report to stdout; used when no recipient is configured.
func Print(report types.Report) {
	fmt.Println(Subject(report.Date))
	fmt.Println(strings.Repeat("=", 40))
	fmt.Println(report.Body)
}

func splitRecipients(mailTo string) []string {
	var recipients []string
	for _, addr := range strings.Split(mailTo, ",") {
		if trimmed := strings.TrimSpace(addr); trimmed != "" {
			recipients = append(recipients, trimmed)
		}
	}
	return recipients
}
