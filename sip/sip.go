// Package sip holds the message model: requests, responses and the protocol version they
// carry. Parsing and rendering live in the codec package.
package sip

import "strconv"

// Version is a protocol version, e.g. 2.0 for SIP/2.0.
type Version struct {
	Major, Minor uint8
}

// DefaultVersion is SIP/2.0.
func DefaultVersion() Version {
	return Version{Major: 2, Minor: 0}
}

// String returns the version in its wire form, e.g. SIP/2.0.
func (v Version) String() string {
	return string(v.Append(nil))
}

// Append appends the wire form of the version to the buffer.
func (v Version) Append(buff []byte) []byte {
	buff = append(buff, "SIP/"...)
	buff = strconv.AppendUint(buff, uint64(v.Major), 10)
	buff = append(buff, '.')
	return strconv.AppendUint(buff, uint64(v.Minor), 10)
}

// Message is either a *Request or a *Response.
type Message interface {
	message()
}
