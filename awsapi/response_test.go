package awsapi_test

import (
	"ami-builder/awsapi"

	. "github.com/onsi/ginkgo/v2"
	. "github.com/onsi/gomega"
)

var _ = Describe("ParseResponse", func() {
	It("returns the body of a 200 response", func() {
		raw := []byte("HTTP/1.1 200 OK\r\nContent-Type: text/xml\r\n\r\n<body/>")
		body, err := awsapi.ParseResponse(raw)
		Expect(err).ToNot(HaveOccurred())
		Expect(body).To(Equal([]byte("<body/>")))
	})

	It("returns an empty body when nothing follows the headers", func() {
		body, err := awsapi.ParseResponse([]byte("HTTP/1.1 200 OK\r\n\r\n"))
		Expect(err).ToNot(HaveOccurred())
		Expect(body).To(BeEmpty())
	})

	It("rejects a response containing a NUL byte", func() {
		raw := []byte("HTTP/1.1 200 OK\r\n\r\nbo\x00dy")
		_, err := awsapi.ParseResponse(raw)
		Expect(err).To(MatchError(ContainSubstring("NUL byte")))
	})

	It("rejects a non-200 status and includes the full response", func() {
		raw := []byte("HTTP/1.1 403 Forbidden\r\n\r\n<Error>denied</Error>")
		_, err := awsapi.ParseResponse(raw)
		Expect(err).To(MatchError(ContainSubstring("API request failed")))
		Expect(err).To(MatchError(ContainSubstring("denied")))
	})

	It("does not accept a 200 appearing past the first line", func() {
		raw := []byte("HTTP/1.1 500 Error\r\nX-Note: 200 \r\n\r\nbody")
		_, err := awsapi.ParseResponse(raw)
		Expect(err).To(HaveOccurred())
	})

	It("rejects a response without a header/body separator", func() {
		_, err := awsapi.ParseResponse([]byte("HTTP/1.1 200 OK\r\nContent-Type: text/xml"))
		Expect(err).To(MatchError(ContainSubstring("bad API response")))
	})
})
