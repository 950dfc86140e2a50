package infrastructure

import (
	"fmt"
	"log"

	"gopkg.in/gomail.v2"
)

type SMTP struct {
	Server   string
	Port     int
	User     string
	Password string
}

func (s *SMTP) Send(address, subject, body string) error {
	m := s.compose(address, subject, body)

	return s.send(m)
}

// SendBCC delivers the same message to every address as a blind copy. Used
// for administrative broadcasts such as cancellation notices.
func (s *SMTP) SendBCC(addresses []string, subject, body string) error {
	if len(addresses) == 0 {
		return nil
	}
	m := s.composeBCC(addresses, subject, body)

	return s.send(m)
}

func (s *SMTP) From() string {
	return s.User
}

func (s *SMTP) compose(address, subject, body string) *gomail.Message {
	m := gomail.NewMessage()
	m.SetHeader("From", fmt.Sprintf("%s <%s>", "CloudKeep", s.User))
	m.SetHeader("To", address)
	m.SetHeader("Subject", subject)
	m.SetBody("text/plain", body)

	return m
}

func (s *SMTP) composeBCC(addresses []string, subject, body string) *gomail.Message {
	m := gomail.NewMessage()
	m.SetHeader("From", fmt.Sprintf("%s <%s>", "CloudKeep", s.User))
	m.SetHeader("Bcc", addresses...)
	m.SetHeader("Subject", subject)
	m.SetBody("text/plain", body)

	return m
}

func (s *SMTP) send(m *gomail.Message) error {
	d := gomail.NewDialer(s.Server, s.Port, s.User, s.Password)

	if err := d.DialAndSend(m); err != nil {
		log.Println(err)
		return err
	}

	return nil
}
