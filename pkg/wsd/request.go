package wsd

import (
	"github.com/google/uuid"

	"github.com/yaklabco/xmldoc/pkg/xmldoc"
)

// Request is a serialized request envelope together with the
// MessageID it carries, for matching responses against the request.
type Request struct {
	MessageID string
	Body      string
}

// NewProbe builds a multicast Probe request for wsdp:Device types.
func NewProbe() *Request {
	id := messageID()

	w := xmldoc.NewWriter("s:Envelope", []xmldoc.Namespace{
		{Prefix: "a", URI: nsAddressing},
		{Prefix: "d", URI: nsDiscovery},
		{Prefix: "s", URI: nsSoap},
		{Prefix: "wsdp", URI: nsDevprof},
	})

	w.Enter("s:Header")
	w.AddText("a:Action", nsDiscovery+"/Probe")
	w.AddText("a:MessageID", id)
	w.AddText("a:To", "urn:schemas-xmlsoap-org:ws:2005:04:discovery")
	w.Leave()

	w.Enter("s:Body")
	w.Enter("d:Probe")
	w.AddText("d:Types", "wsdp:Device")
	w.Leave()
	w.Leave()

	return &Request{MessageID: id, Body: w.Finish()}
}

// NewMetadataRequest builds a WS-Transfer Get request addressed to
// the device with the given stable endpoint reference.
func NewMetadataRequest(to string) *Request {
	id := messageID()

	w := xmldoc.NewWriter("s:Envelope", []xmldoc.Namespace{
		{Prefix: "a", URI: nsAddressing},
		{Prefix: "s", URI: nsSoap},
	})

	w.Enter("s:Header")
	w.AddText("a:Action", "http://schemas.xmlsoap.org/ws/2004/09/transfer/Get")
	w.AddText("a:MessageID", id)
	w.AddText("a:To", to)
	w.Enter("a:ReplyTo")
	w.AddText("a:Address", actAnonymous)
	w.Leave()
	w.Leave()

	w.Enter("s:Body")
	w.Leave()

	return &Request{MessageID: id, Body: w.Finish()}
}

// messageID generates a fresh WS-Addressing message identifier.
func messageID() string {
	return "urn:uuid:" + uuid.NewString()
}
