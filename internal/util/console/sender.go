package console

import (
	"fmt"
	"io"

	"go.minekube.com/common/minecraft/component"

	"go.minekube.com/chatmsg/pkg/message"
	"go.minekube.com/chatmsg/pkg/util/componentutil"
	"go.minekube.com/chatmsg/pkg/util/permission"
)

// Source is the terminal as a message recipient and command source.
// It has all permissions.
type Source struct {
	Out io.Writer
	// NoColor writes plain text instead of ANSI colored text.
	NoColor bool
}

// SendMessage writes msg as a single line.
func (s *Source) SendMessage(msg component.Component) error {
	if msg == nil {
		return nil // skip nil message
	}
	text, err := s.render(msg)
	if err != nil {
		return fmt.Errorf("error rendering message: %w", err)
	}
	_, err = fmt.Fprintln(s.Out, text)
	return err
}

func (s *Source) render(msg component.Component) (string, error) {
	if s.NoColor {
		return componentutil.Plain(msg)
	}
	return Ansi(msg)
}

// HasPermission always returns true.
func (s *Source) HasPermission(string) bool { return true }

// PermissionValue always returns permission.True.
func (s *Source) PermissionValue(string) permission.TriState { return permission.True }

// Sender returns a message.Sender writing to s.
func (s *Source) Sender() message.Sender {
	return message.RecipientSender(s)
}

var (
	_ message.Recipient  = (*Source)(nil)
	_ permission.Subject = (*Source)(nil)
)
