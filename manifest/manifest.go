// Package manifest builds the XML document describing an uploaded disk
// image, consumed by the EC2 volume-import service. The document is a fixed
// byte sequence assembled by string append, not an encoding/xml rendering:
// the import service parses exactly this shape, including the entity-escaped
// ampersands inside embedded URL text.
package manifest

import (
	"bytes"
	"fmt"
	"strings"
)

// Fixed fields the import service expects in every manifest.
const (
	Version       = "2010-11-15"
	FileFormatRAW = "RAW"

	importerName    = "bsdec2-image-upload"
	importerVersion = "1.2.2"
	importerRelease = "2019-03-20"
)

const bytesPerGiB = 1 << 30

// EscapeAmps replaces each literal '&' with the XML entity "&amp;". URLs are
// embedded in the manifest as element text, so raw ampersands from their
// query strings must be escaped. Applying it to already-escaped text
// double-escapes it; callers pass raw URLs exactly once.
func EscapeAmps(s string) string {
	return strings.Replace(s, "&", "&amp;", -1)
}

// VolumeSizeGB returns the size of the destination volume in GiB, rounded
// up.
func VolumeSizeGB(sizeBytes int64) int64 {
	return (sizeBytes + bytesPerGiB - 1) / bytesPerGiB
}

// PartCount returns ceil(sizeBytes / chunkSize). A zero-byte image yields
// zero parts; the manifest is still built and uploaded with an empty parts
// list.
func PartCount(sizeBytes, chunkSize int64) int64 {
	return (sizeBytes + chunkSize - 1) / chunkSize
}

// Part describes one uploaded chunk: its index, inclusive byte range, object
// key, and presigned access URLs. Parts are appended in file order and never
// mutated afterwards.
type Part struct {
	Index     int64
	Start     int64
	End       int64
	Key       string
	HeadURL   string
	GetURL    string
	DeleteURL string
}

// Builder accumulates the manifest document incrementally while parts
// upload. It is finalized exactly once by Bytes.
type Builder struct {
	buf bytes.Buffer
}

// NewBuilder writes the manifest header: format, image size, computed volume
// size, declared part count, and the presigned DELETE URL with which the
// import service removes the manifest after a successful import.
func NewBuilder(sizeBytes, partCount int64, selfDestructURL string) *Builder {
	b := &Builder{}
	fmt.Fprintf(&b.buf, //nolint:errcheck
		`<?xml version="1.0" encoding="UTF-8" standalone="yes"?>`+
			"<manifest>"+
			"<version>%s</version>"+
			"<file-format>%s</file-format>"+
			"<importer>"+
			"<name>%s</name>"+
			"<version>%s</version>"+
			"<release>%s</release>"+
			"</importer>"+
			"<self-destruct-url>%s</self-destruct-url>"+
			"<import>"+
			"<size>%d</size>"+
			"<volume-size>%d</volume-size>"+
			`<parts count="%d">`,
		Version, FileFormatRAW,
		importerName, importerVersion, importerRelease,
		EscapeAmps(selfDestructURL),
		sizeBytes, VolumeSizeGB(sizeBytes), partCount)
	return b
}

// AddPart appends one part entry. URLs are escaped here; pass them raw.
func (b *Builder) AddPart(p Part) {
	fmt.Fprintf(&b.buf, //nolint:errcheck
		`<part index="%d">`+
			`<byte-range start="%d" end="%d"/>`+
			"<key>%s</key>"+
			"<head-url>%s</head-url>"+
			"<get-url>%s</get-url>"+
			"<delete-url>%s</delete-url>"+
			"</part>",
		p.Index, p.Start, p.End, p.Key,
		EscapeAmps(p.HeadURL), EscapeAmps(p.GetURL), EscapeAmps(p.DeleteURL))
}

// Bytes closes the parts list and returns the finished document. Call it
// once, after the last part has been added.
func (b *Builder) Bytes() []byte {
	b.buf.WriteString("</parts></import></manifest>")
	return b.buf.Bytes()
}
