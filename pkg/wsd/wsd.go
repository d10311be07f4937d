// Package wsd decodes and builds WS-Discovery documents: Hello, Bye
// and ProbeMatches announcement messages, device metadata responses,
// and the Probe and Get(metadata) request envelopes.
//
// All documents are handled through the xmldoc reader and writer; the
// package performs no I/O.
package wsd

import "github.com/yaklabco/xmldoc/pkg/xmldoc"

// Rules is the namespace substitution table for WS-Discovery
// documents. Devices declare arbitrary prefixes for these namespaces;
// the glob patterns map the URIs, http or https, to canonical
// prefixes so that path matching stays vendor-independent.
var Rules = []xmldoc.Namespace{
	{Prefix: "s", URI: "http*://schemas.xmlsoap.org/soap/envelope"},   // SOAP 1.1
	{Prefix: "s", URI: "http*://www.w3.org/2003/05/soap-envelope"},    // SOAP 1.2
	{Prefix: "d", URI: "http*://schemas.xmlsoap.org/ws/2005/04/discovery"},
	{Prefix: "a", URI: "http*://schemas.xmlsoap.org/ws/2004/08/addressing"},
	{Prefix: "devprof", URI: "http*://schemas.xmlsoap.org/ws/2006/02/devprof"},
	{Prefix: "mex", URI: "http*://schemas.xmlsoap.org/ws/2004/09/mex"},
	{Prefix: "pnpx", URI: "http*://schemas.microsoft.com/windows/pnpx/2005/10"},
}

// Namespace URIs emitted on request envelopes.
const (
	nsSoap       = "http://www.w3.org/2003/05/soap-envelope"
	nsAddressing = "http://schemas.xmlsoap.org/ws/2004/08/addressing"
	nsDiscovery  = "http://schemas.xmlsoap.org/ws/2005/04/discovery"
	nsDevprof    = "http://schemas.xmlsoap.org/ws/2006/02/devprof"
)

// actAnonymous is the WS-Addressing anonymous reply-to address.
const actAnonymous = "http://schemas.xmlsoap.org/ws/2004/08/addressing/role/anonymous"
