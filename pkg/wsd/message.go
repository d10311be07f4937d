package wsd

import (
	"errors"
	"fmt"
	"net/url"
	"strings"

	"github.com/yaklabco/xmldoc/pkg/xmldoc"
)

// Action identifies the kind of a WS-Discovery announcement message.
type Action int

// Supported message actions.
const (
	ActionUnknown Action = iota
	ActionHello
	ActionBye
	ActionProbeMatches
)

// String returns the action name.
func (a Action) String() string {
	switch a {
	case ActionHello:
		return "Hello"
	case ActionBye:
		return "Bye"
	case ActionProbeMatches:
		return "ProbeMatches"
	default:
		return "Unknown"
	}
}

// Message is a parsed WS-Discovery announcement: a Hello or Bye
// multicast, or a ProbeMatches response.
type Message struct {
	Action    Action   // Message action
	Address   string   // Stable endpoint reference (urn:uuid:...)
	XAddrs    []string // Transport addresses, valid http/https URLs
	IsScanner bool     // Device advertises ScanDeviceType
}

// ErrInvalidMessage is returned for documents that parse as XML but
// are not usable announcements: unknown action, missing endpoint
// reference, or a Hello/ProbeMatches without transport addresses.
var ErrInvalidMessage = errors.New("invalid WS-Discovery message")

// ParseMessage decodes a WS-Discovery announcement message.
func ParseMessage(data []byte) (*Message, error) {
	r, err := xmldoc.NewReader(data, Rules)
	if err != nil {
		return nil, fmt.Errorf("WS-Discovery message: %w", err)
	}
	defer r.Close()

	msg := &Message{}
	for !r.End() {
		switch r.Path() {
		case "/s:Envelope/s:Header/a:Action":
			switch val := r.Value(); {
			case strings.Contains(val, "Hello"):
				msg.Action = ActionHello
			case strings.Contains(val, "Bye"):
				msg.Action = ActionBye
			case strings.Contains(val, "ProbeMatches"):
				msg.Action = ActionProbeMatches
			}
		case "/s:Envelope/s:Body/d:Hello",
			"/s:Envelope/s:Body/d:Bye",
			"/s:Envelope/s:Body/d:ProbeMatches/d:ProbeMatch":
			msg.parseEndpoint(r)
		}
		r.DeepNext(0)
	}

	switch {
	case msg.Action == ActionUnknown:
		return nil, fmt.Errorf("%w: unknown action", ErrInvalidMessage)
	case msg.Address == "":
		return nil, fmt.Errorf("%w: missing endpoint reference", ErrInvalidMessage)
	case msg.Action != ActionBye && len(msg.XAddrs) == 0:
		return nil, fmt.Errorf("%w: %s without transport addresses",
			ErrInvalidMessage, msg.Action)
	}

	return msg, nil
}

// parseEndpoint decodes the endpoint description shared by Hello, Bye
// and ProbeMatch bodies. On return the cursor is at end of the level
// the endpoint element was found at.
func (msg *Message) parseEndpoint(r *xmldoc.Reader) {
	level := r.Depth()
	prefix := r.Path()
	xaddrsText := ""

	for !r.End() {
		switch strings.TrimPrefix(r.Path(), prefix) {
		case "/d:Types":
			msg.IsScanner = strings.Contains(r.Value(), "ScanDeviceType")
		case "/d:XAddrs":
			xaddrsText = r.Value()
		case "/a:EndpointReference/a:Address":
			msg.Address = r.Value()
		}
		r.DeepNext(level)
	}

	// XAddrs is a whitespace-separated URL list. Some devices join
	// addresses with NEL or NBSP, which unicode.IsSpace covers.
	for _, tok := range strings.Fields(xaddrsText) {
		if u, err := url.Parse(tok); err == nil && validXAddr(u) {
			msg.XAddrs = append(msg.XAddrs, tok)
		}
	}
}

// validXAddr reports whether a transport address is an absolute
// http or https URL with a host.
func validXAddr(u *url.URL) bool {
	return (u.Scheme == "http" || u.Scheme == "https") && u.Host != ""
}
