package pubsub

import (
	"encoding/base64"
	"encoding/json"
	"time"

	"locgate/internal/domain/service"

	"github.com/pkg/errors"
)

const localSubscription = "projects/local/subscriptions/waitlist-sub"

// PushMessage is the message part of a Pub/Sub push request body.
type PushMessage struct {
	Data        string            `json:"data"`
	Attributes  map[string]string `json:"attributes,omitempty"`
	MessageID   string            `json:"messageId"`
	PublishTime string            `json:"publishTime"`
}

// PushEnvelope is the JSON body Pub/Sub POSTs to push subscribers.
type PushEnvelope struct {
	Message      PushMessage `json:"message"`
	Subscription string      `json:"subscription"`
}

// NewPushEnvelope encodes event the way a push subscription delivers it.
func NewPushEnvelope(event *service.AvailabilityRequestEvent, messageID string, publishedAt time.Time) (*PushEnvelope, error) {
	data, err := json.Marshal(event)
	if err != nil {
		return nil, errors.WithStack(err)
	}

	return &PushEnvelope{
		Message: PushMessage{
			Data:        base64.StdEncoding.EncodeToString(data),
			Attributes:  eventAttributes(event),
			MessageID:   messageID,
			PublishTime: publishedAt.UTC().Format(time.RFC3339),
		},
		Subscription: localSubscription,
	}, nil
}

// Event decodes the availability request carried in the message data.
func (e *PushEnvelope) Event() (*service.AvailabilityRequestEvent, error) {
	data, err := base64.StdEncoding.DecodeString(e.Message.Data)
	if err != nil {
		return nil, errors.Wrap(err, "decode message data")
	}

	var event service.AvailabilityRequestEvent
	if err := json.Unmarshal(data, &event); err != nil {
		return nil, errors.Wrap(err, "parse availability request")
	}

	return &event, nil
}
