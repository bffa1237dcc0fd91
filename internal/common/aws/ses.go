// internal/common/aws/ses.go
package aws

import (
	"context"
	"fmt"

	"github.com/aws/aws-sdk-go-v2/aws"
	"github.com/aws/aws-sdk-go-v2/service/ses"
	"github.com/aws/aws-sdk-go-v2/service/ses/types"
)

// SESService is the subset of the SES client used here.
type SESService interface {
	SendEmail(ctx context.Context, params *ses.SendEmailInput, optFns ...func(*ses.Options)) (*ses.SendEmailOutput, error)
}

type SESClient struct {
	client SESService
	from   string
}

func NewSESClient(cfg aws.Config, from string) *SESClient {
	return &SESClient{client: ses.NewFromConfig(cfg), from: from}
}

// NewSESClientWith wraps an existing SES implementation.
func NewSESClientWith(client SESService, from string) *SESClient {
	return &SESClient{client: client, from: from}
}

// SendEmail sends a plain text and HTML email and returns the SES message id.
func (s *SESClient) SendEmail(ctx context.Context, to, subject, textBody, htmlBody string) (string, error) {
	out, err := s.client.SendEmail(ctx, &ses.SendEmailInput{
		Destination: &types.Destination{
			ToAddresses: []string{to},
		},
		Message: &types.Message{
			Subject: &types.Content{Data: aws.String(subject)},
			Body: &types.Body{
				Text: &types.Content{Data: aws.String(textBody)},
				Html: &types.Content{Data: aws.String(htmlBody)},
			},
		},
		Source: aws.String(s.from),
	})
	if err != nil {
		return "", fmt.Errorf("ses send email: %w", err)
	}
	return aws.ToString(out.MessageId), nil
}
