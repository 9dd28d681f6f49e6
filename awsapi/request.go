package awsapi

import (
	"bytes"
	"fmt"
	"net/url"
	"strings"
)

const formURLEncoded = "application/x-www-form-urlencoded"

// SignedHeaders holds the three authentication headers produced by signing a
// request.
type SignedHeaders struct {
	ContentSHA256 string
	Date          string
	Authorization string
}

// S3Host returns the virtual-hosted-style host for a bucket. It appears in
// the Host header and in every presigned URL.
func S3Host(bucket string) string {
	return bucket + ".s3.amazonaws.com"
}

// s3Endpoint is the host actually dialed for S3 requests. us-east-1 is
// special-cased to the regionless endpoint.
func s3Endpoint(region string) string {
	if region == "us-east-1" {
		return "s3.amazonaws.com"
	}
	return "s3." + region + ".amazonaws.com"
}

func ec2Endpoint(region string) string {
	return "ec2." + region + ".amazonaws.com"
}

func snsEndpoint(region string) string {
	return "sns." + region + ".amazonaws.com"
}

// PercentEncode RFC 3986-encodes a string for use in a query or form field.
func PercentEncode(s string) string {
	return strings.Replace(url.QueryEscape(s), "+", "%20", -1)
}

func buildRequest(method, path, host string, h SignedHeaders, contentType string, body []byte) []byte {
	var b bytes.Buffer
	fmt.Fprintf(&b, "%s %s HTTP/1.1\r\n", method, path)
	fmt.Fprintf(&b, "Host: %s\r\n", host)
	fmt.Fprintf(&b, "X-Amz-Date: %s\r\n", h.Date)
	fmt.Fprintf(&b, "X-Amz-Content-SHA256: %s\r\n", h.ContentSHA256)
	fmt.Fprintf(&b, "Authorization: %s\r\n", h.Authorization)
	fmt.Fprintf(&b, "Content-Length: %d\r\n", len(body))
	if contentType != "" {
		fmt.Fprintf(&b, "Content-Type: %s\r\n", contentType)
	}
	b.WriteString("Connection: close\r\n\r\n")
	b.Write(body)
	return b.Bytes()
}
