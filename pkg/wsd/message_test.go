package wsd_test

import (
	"fmt"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/yaklabco/xmldoc/pkg/wsd"
	"github.com/yaklabco/xmldoc/pkg/xmldoc"
)

// helloMessage mimics a Hello announcement as devices actually send
// it: vendor-chosen prefixes, SOAP 1.2 envelope.
const helloMessage = `<?xml version="1.0" encoding="UTF-8"?>
<soap:Envelope xmlns:soap="http://www.w3.org/2003/05/soap-envelope"
    xmlns:wsa="http://schemas.xmlsoap.org/ws/2004/08/addressing"
    xmlns:wsd="http://schemas.xmlsoap.org/ws/2005/04/discovery"
    xmlns:wsdp="http://schemas.xmlsoap.org/ws/2006/02/devprof">
  <soap:Header>
    <wsa:To>urn:schemas-xmlsoap-org:ws:2005:04:discovery</wsa:To>
    <wsa:Action>http://schemas.xmlsoap.org/ws/2005/04/discovery/Hello</wsa:Action>
    <wsa:MessageID>urn:uuid:78a2ed98-b7b8-11e9-95f3-00215e7a0ed8</wsa:MessageID>
  </soap:Header>
  <soap:Body>
    <wsd:Hello>
      <wsa:EndpointReference>
        <wsa:Address>urn:uuid:4509a320-00a0-008f-00b6-002507510eca</wsa:Address>
      </wsa:EndpointReference>
      <wsd:Types>wsdp:Device scan:ScanDeviceType</wsd:Types>
      <wsd:XAddrs>http://192.168.1.102:5357/ http://[fe80::1%25eth0]:5357/ not-a-url</wsd:XAddrs>
      <wsd:MetadataVersion>1</wsd:MetadataVersion>
    </wsd:Hello>
  </soap:Body>
</soap:Envelope>`

func TestParseMessageHello(t *testing.T) {
	t.Parallel()

	msg, err := wsd.ParseMessage([]byte(helloMessage))
	require.NoError(t, err)

	assert.Equal(t, wsd.ActionHello, msg.Action)
	assert.Equal(t, "urn:uuid:4509a320-00a0-008f-00b6-002507510eca", msg.Address)
	assert.True(t, msg.IsScanner)

	// The invalid token is dropped from the address list.
	assert.Equal(t, []string{
		"http://192.168.1.102:5357/",
		"http://[fe80::1%25eth0]:5357/",
	}, msg.XAddrs)
}

func TestParseMessageBye(t *testing.T) {
	t.Parallel()

	// Bye carries no transport addresses; SOAP 1.1 envelope over
	// https exercises the glob rules.
	data := `<?xml version="1.0"?>
<e:Envelope xmlns:e="https://schemas.xmlsoap.org/soap/envelope"
    xmlns:w="https://schemas.xmlsoap.org/ws/2004/08/addressing"
    xmlns:dis="https://schemas.xmlsoap.org/ws/2005/04/discovery">
  <e:Header>
    <w:Action>https://schemas.xmlsoap.org/ws/2005/04/discovery/Bye</w:Action>
  </e:Header>
  <e:Body>
    <dis:Bye>
      <w:EndpointReference>
        <w:Address>urn:uuid:0077ae0e-touch-of-vendor</w:Address>
      </w:EndpointReference>
    </dis:Bye>
  </e:Body>
</e:Envelope>`

	msg, err := wsd.ParseMessage([]byte(data))
	require.NoError(t, err)

	assert.Equal(t, wsd.ActionBye, msg.Action)
	assert.Equal(t, "urn:uuid:0077ae0e-touch-of-vendor", msg.Address)
	assert.Empty(t, msg.XAddrs)
	assert.False(t, msg.IsScanner)
}

func TestParseMessageProbeMatches(t *testing.T) {
	t.Parallel()

	data := `<?xml version="1.0"?>
<s:Envelope xmlns:s="http://www.w3.org/2003/05/soap-envelope"
    xmlns:a="http://schemas.xmlsoap.org/ws/2004/08/addressing"
    xmlns:d="http://schemas.xmlsoap.org/ws/2005/04/discovery">
  <s:Header>
    <a:Action>http://schemas.xmlsoap.org/ws/2005/04/discovery/ProbeMatches</a:Action>
  </s:Header>
  <s:Body>
    <d:ProbeMatches>
      <d:ProbeMatch>
        <a:EndpointReference>
          <a:Address>urn:uuid:1c852a4a-b7b8-11e9-95f3-00215e7a0ed8</a:Address>
        </a:EndpointReference>
        <d:Types>wsdp:Device</d:Types>
        <d:XAddrs>http://10.0.0.7:3911/</d:XAddrs>
      </d:ProbeMatch>
    </d:ProbeMatches>
  </s:Body>
</s:Envelope>`

	msg, err := wsd.ParseMessage([]byte(data))
	require.NoError(t, err)

	assert.Equal(t, wsd.ActionProbeMatches, msg.Action)
	assert.Equal(t, []string{"http://10.0.0.7:3911/"}, msg.XAddrs)
	assert.False(t, msg.IsScanner)
}

func TestParseMessageInvalid(t *testing.T) {
	t.Parallel()

	const envelope = `<s:Envelope xmlns:s="http://www.w3.org/2003/05/soap-envelope"
        xmlns:a="http://schemas.xmlsoap.org/ws/2004/08/addressing"
        xmlns:d="http://schemas.xmlsoap.org/ws/2005/04/discovery">%s</s:Envelope>`

	tests := []struct {
		name string
		body string
	}{
		{
			name: "no action",
			body: `<s:Body><d:Hello>
                <a:EndpointReference><a:Address>urn:uuid:x</a:Address></a:EndpointReference>
                <d:XAddrs>http://10.0.0.7:3911/</d:XAddrs>
            </d:Hello></s:Body>`,
		},
		{
			name: "no endpoint reference",
			body: `<s:Header>
                <a:Action>http://schemas.xmlsoap.org/ws/2005/04/discovery/Hello</a:Action>
            </s:Header><s:Body><d:Hello>
                <d:XAddrs>http://10.0.0.7:3911/</d:XAddrs>
            </d:Hello></s:Body>`,
		},
		{
			name: "hello without transport addresses",
			body: `<s:Header>
                <a:Action>http://schemas.xmlsoap.org/ws/2005/04/discovery/Hello</a:Action>
            </s:Header><s:Body><d:Hello>
                <a:EndpointReference><a:Address>urn:uuid:x</a:Address></a:EndpointReference>
            </d:Hello></s:Body>`,
		},
	}

	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			t.Parallel()

			data := []byte(fmt.Sprintf(envelope, tc.body))
			_, err := wsd.ParseMessage(data)
			assert.ErrorIs(t, err, wsd.ErrInvalidMessage)
		})
	}
}

func TestParseMessageMalformed(t *testing.T) {
	t.Parallel()

	_, err := wsd.ParseMessage([]byte("<s:Envelope"))

	var parseErr *xmldoc.ParseError
	assert.ErrorAs(t, err, &parseErr)
}
