// Package notify emails captured leads to the tenant's owner through SES.
package notify

import (
	"fmt"

	"github.com/aws/aws-sdk-go/aws"
	"github.com/aws/aws-sdk-go/aws/session"
	"github.com/aws/aws-sdk-go/service/ses"
	"github.com/rs/zerolog/log"

	"github.com/rockerto/rigbot-go/openai"
)

type Client struct {
	ses    *ses.SES
	sender string
}

func NewClient(region, sender string) *Client {
	sess, err := session.NewSession(&aws.Config{
		Region: aws.String(region),
	})
	if err != nil {
		log.Fatal().Err(err).Msg("Failed to create AWS session")
	}

	log.Info().
		Str("region", region).
		Str("sender", sender).
		Msg("AWS session created successfully")

	return &Client{
		ses:    ses.New(sess),
		sender: sender,
	}
}

// SendLead emails one captured lead to the tenant owner. Missing owner
// email or sender means lead notification is not configured for this
// deployment; the lead is still logged.
func (c *Client) SendLead(ownerEmail, businessName string, lead *openai.Lead) error {
	if c.sender == "" || ownerEmail == "" {
		log.Warn().
			Str("business", businessName).
			Msg("Lead captured but email notification not configured")
		return nil
	}

	subject := fmt.Sprintf("Nuevo contacto desde el chat de %s", businessName)
	body := fmt.Sprintf(
		"Una persona dejó sus datos en el chat:\n\nNombre: %s\nTeléfono: %s\nCorreo: %s\nInterés: %s\n",
		lead.Name, lead.Phone, lead.Email, lead.Interest)

	_, err := c.ses.SendEmail(&ses.SendEmailInput{
		Source:      aws.String(c.sender),
		Destination: &ses.Destination{ToAddresses: []*string{aws.String(ownerEmail)}},
		Message: &ses.Message{
			Subject: &ses.Content{Data: aws.String(subject), Charset: aws.String("UTF-8")},
			Body: &ses.Body{
				Text: &ses.Content{Data: aws.String(body), Charset: aws.String("UTF-8")},
			},
		},
	})
	if err != nil {
		return fmt.Errorf("sending lead email: %w", err)
	}

	log.Info().
		Str("owner_email", ownerEmail).
		Str("lead_phone", lead.Phone).
		Msg("Lead notification sent")

	return nil
}
