package wsd

import (
	"fmt"
	"net/url"
	"strings"

	"github.com/yaklabco/xmldoc/pkg/xmldoc"
)

// Metadata is a parsed device metadata response (WS-Transfer Get).
type Metadata struct {
	Manufacturer string   // devprof:ThisModel/devprof:Manufacturer
	Model        string   // devprof:ThisModel/devprof:ModelName
	Endpoints    []string // Scanner service addresses
}

// DisplayName combines manufacturer and model into a human-readable
// device name, falling back to whichever part is present.
func (m *Metadata) DisplayName() string {
	switch {
	case m.Manufacturer != "" && m.Model != "":
		return m.Manufacturer + " " + m.Model
	case m.Model != "":
		return m.Model
	default:
		return m.Manufacturer
	}
}

// ParseMetadata decodes a device metadata response. Only hosted
// services of type ScannerServiceType contribute endpoints; other
// services the device hosts are ignored.
func ParseMetadata(data []byte) (*Metadata, error) {
	r, err := xmldoc.NewReader(data, Rules)
	if err != nil {
		return nil, fmt.Errorf("WS-Discovery metadata: %w", err)
	}
	defer r.Close()

	const section = "/s:Envelope/s:Body/mex:Metadata/mex:MetadataSection"

	meta := &Metadata{}
	for !r.End() {
		switch r.Path() {
		case section + "/devprof:Relationship/devprof:Hosted":
			meta.parseHosted(r)
		case section + "/devprof:ThisModel/devprof:Manufacturer":
			if meta.Manufacturer == "" {
				meta.Manufacturer = r.Value()
			}
		case section + "/devprof:ThisModel/devprof:ModelName":
			if meta.Model == "" {
				meta.Model = r.Value()
			}
		}
		r.DeepNext(0)
	}

	return meta, nil
}

// parseHosted decodes a single devprof:Hosted section:
//
//	<devprof:Hosted>
//	  <a:EndpointReference>
//	    <a:Address>http://192.168.1.102:5358/WSDScanner</a:Address>
//	  </a:EndpointReference>
//	  <devprof:Types>scan:ScannerServiceType</devprof:Types>
//	  <devprof:ServiceId>uri:4509a320-.../WSDScanner</devprof:ServiceId>
//	</devprof:Hosted>
//
// Addresses are kept only when the service is a scanner.
func (m *Metadata) parseHosted(r *xmldoc.Reader) {
	level := r.Depth()
	prefix := r.Path()
	isScanner := false
	var endpoints []string

	for !r.End() {
		switch strings.TrimPrefix(r.Path(), prefix) {
		case "/devprof:Types":
			if strings.Contains(r.Value(), "ScannerServiceType") {
				isScanner = true
			}
		case "/a:EndpointReference/a:Address":
			val := r.Value()
			if u, err := url.Parse(val); err == nil && validXAddr(u) {
				endpoints = append(endpoints, val)
			}
		}
		r.DeepNext(level)
	}

	if isScanner {
		m.Endpoints = append(m.Endpoints, endpoints...)
	}
}
