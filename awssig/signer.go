// Package awssig implements request signing for the raw API client using the
// AWS SDK's Signature Version 4 signer.
package awssig

import (
	"bytes"
	"crypto/sha256"
	"encoding/hex"
	"fmt"
	"net/http"
	"time"

	"ami-builder/awsapi"

	"github.com/aws/aws-sdk-go/aws/credentials"
	v4 "github.com/aws/aws-sdk-go/aws/signer/v4"
)

// V4Signer signs requests with a static key pair. It satisfies
// awsapi.Signer.
type V4Signer struct {
	creds *credentials.Credentials
}

var _ awsapi.Signer = &V4Signer{}

func New(accessKeyID, secretAccessKey string) *V4Signer {
	return &V4Signer{
		creds: credentials.NewStaticCredentials(accessKeyID, secretAccessKey, ""),
	}
}

// SignHeaders computes the three authentication headers for a request. The
// payload hash header is pinned before signing so it is part of the signed
// header set for every service, not just S3.
func (s *V4Signer) SignHeaders(service, region, method, host, path string, body []byte) (awsapi.SignedHeaders, error) {
	req, err := http.NewRequest(method, "https://"+host+path, nil)
	if err != nil {
		return awsapi.SignedHeaders{}, fmt.Errorf("constructing request to sign: %s", err)
	}

	sum := sha256.Sum256(body)
	req.Header.Set("X-Amz-Content-Sha256", hex.EncodeToString(sum[:]))

	signer := v4.NewSigner(s.creds, func(v *v4.Signer) {
		v.DisableURIPathEscaping = true
	})

	_, err = signer.Sign(req, bytes.NewReader(body), service, region, time.Now().UTC())
	if err != nil {
		return awsapi.SignedHeaders{}, fmt.Errorf("signing request: %s", err)
	}

	return awsapi.SignedHeaders{
		ContentSHA256: req.Header.Get("X-Amz-Content-Sha256"),
		Date:          req.Header.Get("X-Amz-Date"),
		Authorization: req.Header.Get("Authorization"),
	}, nil
}

// PresignQuery returns the signed query string granting access to one object
// operation until the expiry elapses.
func (s *V4Signer) PresignQuery(service, region, method, host, path string, expiry time.Duration) (string, error) {
	req, err := http.NewRequest(method, "https://"+host+path, nil)
	if err != nil {
		return "", fmt.Errorf("constructing request to presign: %s", err)
	}

	signer := v4.NewSigner(s.creds, func(v *v4.Signer) {
		v.DisableURIPathEscaping = true
		v.UnsignedPayload = true
	})

	_, err = signer.Presign(req, nil, service, region, expiry, time.Now().UTC())
	if err != nil {
		return "", fmt.Errorf("presigning request: %s", err)
	}

	return req.URL.RawQuery, nil
}
