package wsd_test

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/yaklabco/xmldoc/pkg/wsd"
)

// metadataResponse is a WS-Transfer Get response from a multifunction
// device hosting both a printer and a scanner service. Only the
// scanner endpoints must survive.
const metadataResponse = `<?xml version="1.0" encoding="UTF-8"?>
<soap:Envelope xmlns:soap="http://www.w3.org/2003/05/soap-envelope"
    xmlns:wsa="http://schemas.xmlsoap.org/ws/2004/08/addressing"
    xmlns:wsx="http://schemas.xmlsoap.org/ws/2004/09/mex"
    xmlns:wsdp="http://schemas.xmlsoap.org/ws/2006/02/devprof"
    xmlns:pnpx="http://schemas.microsoft.com/windows/pnpx/2005/10">
  <soap:Body>
    <wsx:Metadata>
      <wsx:MetadataSection>
        <wsdp:ThisModel>
          <wsdp:Manufacturer>Kyocera</wsdp:Manufacturer>
          <wsdp:ModelName>ECOSYS M2040dn</wsdp:ModelName>
        </wsdp:ThisModel>
      </wsx:MetadataSection>
      <wsx:MetadataSection>
        <wsdp:Relationship>
          <wsdp:Hosted>
            <wsa:EndpointReference>
              <wsa:Address>http://192.168.1.102:5358/WSDPrinter</wsa:Address>
            </wsa:EndpointReference>
            <wsdp:Types>print:PrinterServiceType</wsdp:Types>
            <wsdp:ServiceId>uri:4509a320/WSDPrinter</wsdp:ServiceId>
          </wsdp:Hosted>
          <wsdp:Hosted>
            <wsa:EndpointReference>
              <wsa:Address>http://192.168.1.102:5358/WSDScanner</wsa:Address>
            </wsa:EndpointReference>
            <wsa:EndpointReference>
              <wsa:Address>http://[fe80::217:c8ff:fe7b:6a91]:5358/WSDScanner</wsa:Address>
            </wsa:EndpointReference>
            <wsdp:Types>scan:ScannerServiceType</wsdp:Types>
            <wsdp:ServiceId>uri:4509a320/WSDScanner</wsdp:ServiceId>
            <pnpx:CompatibleId>http://schemas.microsoft.com/windows/2006/08/wdp/scan/ScannerServiceType</pnpx:CompatibleId>
          </wsdp:Hosted>
        </wsdp:Relationship>
      </wsx:MetadataSection>
    </wsx:Metadata>
  </soap:Body>
</soap:Envelope>`

func TestParseMetadata(t *testing.T) {
	t.Parallel()

	meta, err := wsd.ParseMetadata([]byte(metadataResponse))
	require.NoError(t, err)

	assert.Equal(t, "Kyocera", meta.Manufacturer)
	assert.Equal(t, "ECOSYS M2040dn", meta.Model)
	assert.Equal(t, "Kyocera ECOSYS M2040dn", meta.DisplayName())

	assert.Equal(t, []string{
		"http://192.168.1.102:5358/WSDScanner",
		"http://[fe80::217:c8ff:fe7b:6a91]:5358/WSDScanner",
	}, meta.Endpoints)
}

func TestParseMetadataNoScanner(t *testing.T) {
	t.Parallel()

	data := `<s:Envelope xmlns:s="http://www.w3.org/2003/05/soap-envelope"
        xmlns:a="http://schemas.xmlsoap.org/ws/2004/08/addressing"
        xmlns:mex="http://schemas.xmlsoap.org/ws/2004/09/mex"
        xmlns:dp="http://schemas.xmlsoap.org/ws/2006/02/devprof">
      <s:Body><mex:Metadata><mex:MetadataSection>
        <dp:Relationship><dp:Hosted>
          <a:EndpointReference>
            <a:Address>http://10.0.0.7:5358/WSDPrinter</a:Address>
          </a:EndpointReference>
          <dp:Types>print:PrinterServiceType</dp:Types>
        </dp:Hosted></dp:Relationship>
      </mex:MetadataSection></mex:Metadata></s:Body>
    </s:Envelope>`

	meta, err := wsd.ParseMetadata([]byte(data))
	require.NoError(t, err)

	assert.Empty(t, meta.Endpoints)
	assert.Equal(t, "", meta.DisplayName())
}

func TestMetadataDisplayName(t *testing.T) {
	t.Parallel()

	tests := []struct {
		manufacturer, model, want string
	}{
		{"Kyocera", "ECOSYS M2040dn", "Kyocera ECOSYS M2040dn"},
		{"", "ECOSYS M2040dn", "ECOSYS M2040dn"},
		{"Kyocera", "", "Kyocera"},
		{"", "", ""},
	}

	for _, tc := range tests {
		meta := &wsd.Metadata{Manufacturer: tc.manufacturer, Model: tc.model}
		assert.Equal(t, tc.want, meta.DisplayName())
	}
}
