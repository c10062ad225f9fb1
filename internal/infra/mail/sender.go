package mail

import (
	"bytes"
	"fmt"
	"html/template"
	"io"
	"log"
	"strings"

	"gopkg.in/gomail.v2"

	"github.com/genieops/leadmagnet-api/internal/entity"
)

func NewEmailSender(host string, port int, user, password, from string) *EmailSender {
	return &EmailSender{
		Host:     host,
		Port:     port,
		User:     user,
		Password: password,
		From:     from,
	}
}

// Send envia um único email HTML, com anexo opcional. Devolve erro em
// vez de estourar: quem chama decide se conta como falha ou loga.
func (s *EmailSender) Send(to, subject, htmlBody string, attachment *Attachment) error {
	m := gomail.NewMessage()
	m.SetHeader("From", s.From)
	m.SetHeader("To", to)
	m.SetHeader("Subject", subject)
	m.SetBody("text/html", htmlBody)

	if attachment != nil {
		m.Attach(attachment.Filename, gomail.SetCopyFunc(func(w io.Writer) error {
			_, err := w.Write(attachment.Data)
			return err
		}))
	}

	d := gomail.NewDialer(s.Host, s.Port, s.User, s.Password)
	if err := d.DialAndSend(m); err != nil {
		return fmt.Errorf("erro ao enviar email SMTP: %w", err)
	}
	return nil
}

// SendWelcome envia o email de boas-vindas com o asset do lead magnet anexado.
func (s *EmailSender) SendWelcome(lead *entity.Lead, magnet *entity.LeadMagnet, attachment *Attachment) error {
	subject := fmt.Sprintf("Your Free %s is Here! 🎉", magnet.Title)

	promise := magnet.ValuePromise
	if promise == "" {
		promise = "This resource will help you achieve great results."
	}

	var body bytes.Buffer
	err := welcomeTmpl.Execute(&body, welcomeEmailData{
		Name:         lead.Name,
		Title:        magnet.Title,
		ValuePromise: promise,
	})
	if err != nil {
		return fmt.Errorf("erro ao processar template: %w", err)
	}

	return s.Send(lead.Email, subject, body.String(), attachment)
}

// SendNurture envia um email da sequência, substituindo o placeholder
// {name} (e a variante {{name}}) pelo nome do lead.
func (s *EmailSender) SendNurture(lead *entity.Lead, tpl *entity.EmailTemplate) error {
	name := lead.Name
	if name == "" {
		name = "there"
	}

	body := strings.ReplaceAll(tpl.Body, "{{name}}", name)
	body = strings.ReplaceAll(body, "{name}", name)

	var html bytes.Buffer
	err := nurtureTmpl.Execute(&html, struct{ Body template.HTML }{
		Body: template.HTML(strings.ReplaceAll(template.HTMLEscapeString(body), "\n", "<br>")),
	})
	if err != nil {
		return fmt.Errorf("erro ao processar template: %w", err)
	}

	return s.Send(lead.Email, tpl.Subject, html.String(), nil)
}

// SendUpgradeOffer envia a oferta de upgrade para um lead.
func (s *EmailSender) SendUpgradeOffer(lead *entity.Lead, offer *entity.UpgradeOffer) error {
	subject := fmt.Sprintf("Special Offer: %s", offer.Title)

	description := offer.Description
	if description == "" {
		description = "Take your results to the next level with this special offer."
	}

	var body bytes.Buffer
	err := upgradeOfferTmpl.Execute(&body, upgradeOfferEmailData{
		Name:        lead.Name,
		Title:       offer.Title,
		Description: description,
		Link:        offer.Link,
	})
	if err != nil {
		return fmt.Errorf("erro ao processar template: %w", err)
	}

	return s.Send(lead.Email, subject, body.String(), nil)
}

// SendBulk dispara o mesmo template para todos os leads e devolve só
// a contagem. Uma falha não interrompe os envios seguintes.
func (s *EmailSender) SendBulk(leads []*entity.Lead, tpl *entity.EmailTemplate) BulkResult {
	var result BulkResult
	for _, lead := range leads {
		if err := s.SendNurture(lead, tpl); err != nil {
			log.Printf("❌ Falha no envio para %s: %v", lead.Email, err)
			result.Failed++
			continue
		}
		result.Success++
	}
	log.Printf("📬 Envio em massa: %d enviados, %d falharam", result.Success, result.Failed)
	return result
}
