package webhook

import (
	"net/http"

	svix "github.com/svix/svix-webhooks/go"
)

// Verifier checks a webhook delivery's signature against the shared secret.
type Verifier interface {
	Verify(payload []byte, headers http.Header) error
}

// SvixVerifier validates the svix-id / svix-timestamp / svix-signature header
// scheme the identity provider signs its deliveries with.
type SvixVerifier struct {
	wh *svix.Webhook
}

func NewSvixVerifier(secret string) (*SvixVerifier, error) {
	wh, err := svix.NewWebhook(secret)
	if err != nil {
		return nil, err
	}
	return &SvixVerifier{wh: wh}, nil
}

func (v *SvixVerifier) Verify(payload []byte, headers http.Header) error {
	return v.wh.Verify(payload, headers)
}
