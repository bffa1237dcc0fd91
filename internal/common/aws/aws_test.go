package aws

import (
	"context"
	"errors"
	"testing"

	"github.com/aws/aws-sdk-go-v2/aws"
	"github.com/aws/aws-sdk-go-v2/service/ses"
	"github.com/aws/aws-sdk-go-v2/service/sns"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
)

type MockSESService struct {
	mock.Mock
}

func (m *MockSESService) SendEmail(ctx context.Context, params *ses.SendEmailInput, optFns ...func(*ses.Options)) (*ses.SendEmailOutput, error) {
	args := m.Called(ctx, params)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*ses.SendEmailOutput), args.Error(1)
}

type MockSNSService struct {
	mock.Mock
}

func (m *MockSNSService) Publish(ctx context.Context, params *sns.PublishInput, optFns ...func(*sns.Options)) (*sns.PublishOutput, error) {
	args := m.Called(ctx, params)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*sns.PublishOutput), args.Error(1)
}

func TestSESClient_SendEmail(t *testing.T) {
	svc := new(MockSESService)
	svc.On("SendEmail", mock.Anything, mock.MatchedBy(func(in *ses.SendEmailInput) bool {
		return aws.ToString(in.Source) == "alerts@rentals.example" &&
			in.Destination.ToAddresses[0] == "tenant@example.com" &&
			aws.ToString(in.Message.Subject.Data) == "3 new matches"
	})).Return(&ses.SendEmailOutput{MessageId: aws.String("msg-1")}, nil)

	client := NewSESClientWith(svc, "alerts@rentals.example")
	id, err := client.SendEmail(context.Background(), "tenant@example.com", "3 new matches", "text", "<p>html</p>")
	require.NoError(t, err)
	assert.Equal(t, "msg-1", id)
	svc.AssertExpectations(t)
}

func TestSNSClient_SendSMS(t *testing.T) {
	svc := new(MockSNSService)
	svc.On("Publish", mock.Anything, mock.MatchedBy(func(in *sns.PublishInput) bool {
		_, hasSender := in.MessageAttributes["AWS.SNS.SMS.SenderID"]
		return aws.ToString(in.PhoneNumber) == "+254712345678" && hasSender
	})).Return(&sns.PublishOutput{MessageId: aws.String("sms-1")}, nil).Once()
	svc.On("Publish", mock.Anything, mock.Anything).Return(nil, errors.New("throttled")).Once()

	client := NewSNSClientWith(svc, "Rentals")
	id, err := client.SendSMS(context.Background(), "+254712345678", "New matches for your search")
	require.NoError(t, err)
	assert.Equal(t, "sms-1", id)

	_, err = client.SendSMS(context.Background(), "+254712345678", "again")
	assert.ErrorContains(t, err, "throttled")
}
