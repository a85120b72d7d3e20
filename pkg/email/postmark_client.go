package email

import (
	"context"
	"errors"
	"fmt"

	"github.com/mrz1836/postmark"
)

type postmarkAPI interface {
	SendEmail(ctx context.Context, email postmark.Email) (postmark.EmailResponse, error)
}

// PostmarkClient sends messages through Postmark's transactional API.
type PostmarkClient struct {
	api   postmarkAPI
	token string
}

// NewPostmarkClient builds a client from cfg. An empty server token is
// accepted here and reported by Send as ErrMissingServerToken.
func NewPostmarkClient(cfg Config) *PostmarkClient {
	return &PostmarkClient{
		api:   postmark.NewClient(cfg.PostmarkServerToken, cfg.PostmarkAccountToken),
		token: cfg.PostmarkServerToken,
	}
}

func (c *PostmarkClient) Send(ctx context.Context, msg Message) (Receipt, error) {
	if err := msg.Validate(); err != nil {
		return Receipt{}, err
	}
	if c.token == "" {
		return Receipt{}, errors.Join(ErrFailedToSendEmail, ErrMissingServerToken)
	}

	resp, err := c.api.SendEmail(ctx, postmark.Email{
		From:     msg.From,
		To:       msg.To,
		ReplyTo:  msg.ReplyTo,
		Subject:  msg.Subject,
		Tag:      msg.Tag,
		HTMLBody: msg.HTML,
	})
	if err != nil {
		return Receipt{}, errors.Join(ErrFailedToSendEmail, err)
	}
	if resp.ErrorCode > 0 {
		return Receipt{}, errors.Join(
			ErrFailedToSendEmail,
			fmt.Errorf("postmark error %d: %s", resp.ErrorCode, resp.Message),
		)
	}

	return Receipt{MessageID: resp.MessageID, SubmittedAt: resp.SubmittedAt}, nil
}
