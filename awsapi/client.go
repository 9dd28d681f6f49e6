package awsapi

import (
	"fmt"
	"io"
	"log"
	"time"
)

// You only need **one** of these per package!
//go:generate go run github.com/maxbrunsfeld/counterfeiter/v6 -generate

const apiPort = "443"

// Signer produces the authentication headers and presigned-URL query strings
// for a request. It is a pure function of its inputs plus the wall clock.
//
//counterfeiter:generate . Signer
type Signer interface {
	SignHeaders(service, region, method, host, path string, body []byte) (SignedHeaders, error)
	PresignQuery(service, region, method, host, path string, expiry time.Duration) (string, error)
}

// Transport performs one blocking exchange of raw request bytes for raw
// response bytes over a secure connection.
//
//counterfeiter:generate . Transport
type Transport interface {
	RoundTrip(host, port string, request []byte) ([]byte, error)
}

// Client issues signed S3, EC2, and SNS requests over a raw transport and
// validates the responses.
type Client struct {
	signer    Signer
	transport Transport
	logger    *log.Logger
}

func NewClient(logDest io.Writer, signer Signer, transport Transport) *Client {
	return &Client{
		signer:    signer,
		transport: transport,
		logger:    log.New(logDest, "APIClient ", log.LstdFlags),
	}
}

// S3Put uploads body as an object. The Host header names the bucket; the
// connection is made to the regional S3 endpoint.
func (c *Client) S3Put(region, bucket, path string, body []byte) error {
	host := S3Host(bucket)

	h, err := c.signer.SignHeaders("s3", region, "PUT", host, path, body)
	if err != nil {
		return fmt.Errorf("signing PUT request: %s", err)
	}

	req := buildRequest("PUT", path, host, h, "", body)
	raw, err := c.transport.RoundTrip(s3Endpoint(region), apiPort, req)
	if err != nil {
		return fmt.Errorf("sending PUT request: %s", err)
	}

	_, err = ParseResponse(raw)
	return err
}

// S3PutWithRetry wraps S3Put in the bounded retry loop. Object PUTs are
// idempotent, so re-issuing a failed upload is safe.
func (c *Client) S3PutWithRetry(region, bucket, path string, body []byte) error {
	_, err := c.withRetry(fmt.Sprintf("S3 PUT %s", path), func() (string, error) {
		return "", c.S3Put(region, bucket, path, body)
	})
	return err
}

// PresignS3URL returns a complete presigned URL granting time-limited access
// to one object operation.
func (c *Client) PresignS3URL(region, method, bucket, path string, expiry time.Duration) (string, error) {
	host := S3Host(bucket)
	query, err := c.signer.PresignQuery("s3", region, method, host, path, expiry)
	if err != nil {
		return "", fmt.Errorf("generating presigned URL: %s", err)
	}
	return fmt.Sprintf("https://%s%s?%s", host, path, query), nil
}

// EC2Call POSTs a query-API request to the region's EC2 endpoint and returns
// the response body.
func (c *Client) EC2Call(region, query string) (string, error) {
	return c.post(ec2Endpoint(region), "ec2", region, "", query)
}

// EC2CallWithRetry wraps EC2Call in the bounded retry loop. Only describe,
// list, and attribute-modification calls go through here.
func (c *Client) EC2CallWithRetry(region, query string) (string, error) {
	return c.withRetry("EC2 API call", func() (string, error) {
		return c.EC2Call(region, query)
	})
}

// SNSCall POSTs a form-encoded request to the region's SNS endpoint and
// returns the response body.
func (c *Client) SNSCall(region, query string) (string, error) {
	return c.post(snsEndpoint(region), "sns", region, formURLEncoded, query)
}

func (c *Client) post(host, service, region, contentType, query string) (string, error) {
	body := []byte(query)

	h, err := c.signer.SignHeaders(service, region, "POST", host, "/", body)
	if err != nil {
		return "", fmt.Errorf("signing POST request: %s", err)
	}

	req := buildRequest("POST", "/", host, h, contentType, body)
	raw, err := c.transport.RoundTrip(host, apiPort, req)
	if err != nil {
		return "", fmt.Errorf("sending POST request: %s", err)
	}

	respBody, err := ParseResponse(raw)
	if err != nil {
		return "", err
	}
	return string(respBody), nil
}
