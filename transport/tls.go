// Package transport performs blocking request/response exchanges of raw
// bytes over TLS. One connection per exchange; requests carry
// "Connection: close" so the response ends at EOF.
package transport

import (
	"crypto/tls"
	"crypto/x509"
	"fmt"
	"io"
	"net"
	"os"
	"time"
)

const dialTimeout = 30 * time.Second

// TLSDialer dials host:port, writes the request, and reads the response
// until the peer closes the connection. When CACertPath is empty the system
// roots are used; RootCAs overrides both.
type TLSDialer struct {
	CACertPath string
	RootCAs    *x509.CertPool
}

func NewTLSDialer(caCertPath string) *TLSDialer {
	return &TLSDialer{CACertPath: caCertPath}
}

func (d *TLSDialer) RoundTrip(host, port string, request []byte) ([]byte, error) {
	pool := d.RootCAs
	if pool == nil && d.CACertPath != "" {
		pem, err := os.ReadFile(d.CACertPath)
		if err != nil {
			return nil, fmt.Errorf("reading CA certificates from %s: %s", d.CACertPath, err)
		}
		pool = x509.NewCertPool()
		if !pool.AppendCertsFromPEM(pem) {
			return nil, fmt.Errorf("no CA certificates found in %s", d.CACertPath)
		}
	}

	dialer := &net.Dialer{Timeout: dialTimeout}
	conn, err := tls.DialWithDialer(dialer, "tcp", net.JoinHostPort(host, port), &tls.Config{
		ServerName: host,
		RootCAs:    pool,
	})
	if err != nil {
		return nil, fmt.Errorf("connecting to %s: %s", host, err)
	}
	defer conn.Close() //nolint:errcheck

	if _, err := conn.Write(request); err != nil {
		return nil, fmt.Errorf("writing request to %s: %s", host, err)
	}

	response, err := io.ReadAll(conn)
	if err != nil {
		return nil, fmt.Errorf("reading response from %s: %s", host, err)
	}

	return response, nil
}
