package message

import (
	"github.com/go-logr/logr"
	"go.minekube.com/common/minecraft/component"

	"go.minekube.com/chatmsg/pkg/util/componentutil"
)

// Sender delivers the built segments of a message to its recipient.
type Sender interface {
	Send(segments []component.Component) error
}

// SenderFunc is a function implementing Sender.
type SenderFunc func(segments []component.Component) error

// Send calls f(segments).
func (f SenderFunc) Send(segments []component.Component) error { return f(segments) }

// Recipient receives messages as a single component,
// like a player or the console.
type Recipient interface {
	SendMessage(msg component.Component) error
}

// RecipientSender returns a Sender joining the segments
// of a message and sending them to r.
func RecipientSender(r Recipient) Sender {
	return SenderFunc(func(segments []component.Component) error {
		return r.SendMessage(Join(segments))
	})
}

// WithLogger returns a Sender logging every message delivered by s.
func WithLogger(s Sender, log logr.Logger) Sender {
	return SenderFunc(func(segments []component.Component) error {
		if err := s.Send(segments); err != nil {
			log.Error(err, "Error sending message", "segments", len(segments))
			return err
		}
		if log.V(1).Enabled() {
			text, _ := componentutil.Plain(Join(segments))
			log.V(1).Info("Sent message", "segments", len(segments), "text", text)
		}
		return nil
	})
}
