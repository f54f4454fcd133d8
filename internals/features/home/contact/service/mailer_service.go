// file: internals/features/home/contact/service/mailer_service.go
package service

import (
	"fmt"

	"github.com/sendgrid/sendgrid-go"
	"github.com/sendgrid/sendgrid-go/helpers/mail"

	"rinschool_backend/internals/configs"
)

// SendGuardianEmail: notifikasi ke email wali (pendaftaran / jadwal baru).
func SendGuardianEmail(toEmail, studentName, subject, body string) error {
	if configs.SendgridAPIKey == "" {
		return fmt.Errorf("SENDGRID_API_KEY belum diset")
	}

	from := mail.NewEmail("RinSchool", configs.SendgridFrom)
	to := mail.NewEmail(studentName+" (Wali)", toEmail)

	plain := body
	html := "<p>" + body + "</p>"
	message := mail.NewSingleEmail(from, subject, to, plain, html)

	client := sendgrid.NewSendClient(configs.SendgridAPIKey)
	resp, err := client.Send(message)
	if err != nil {
		return fmt.Errorf("gagal mengirim email wali: %w", err)
	}
	if resp.StatusCode >= 300 {
		return fmt.Errorf("sendgrid menolak email wali, status %d: %s", resp.StatusCode, resp.Body)
	}

	return nil
}
