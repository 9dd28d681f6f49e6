package awsapi_test

import (
	"errors"
	"fmt"

	"ami-builder/awsapi"
	"ami-builder/awsapi/awsapifakes"

	. "github.com/onsi/ginkgo/v2"
	. "github.com/onsi/gomega"
)

var _ = Describe("Client", func() {
	var (
		fakeSigner    *awsapifakes.FakeSigner
		fakeTransport *awsapifakes.FakeTransport
		client        *awsapi.Client
	)

	signedHeaders := awsapi.SignedHeaders{
		ContentSHA256: "fake-sha",
		Date:          "20260825T000000Z",
		Authorization: "AWS4-HMAC-SHA256 Credential=fake",
	}

	okResponse := []byte("HTTP/1.1 200 OK\r\n\r\n<response/>")

	BeforeEach(func() {
		fakeSigner = &awsapifakes.FakeSigner{}
		fakeSigner.SignHeadersReturns(signedHeaders, nil)
		fakeTransport = &awsapifakes.FakeTransport{}
		fakeTransport.RoundTripReturns(okResponse, nil)
		client = awsapi.NewClient(GinkgoWriter, fakeSigner, fakeTransport)
	})

	Describe("S3Put", func() {
		It("sends a signed PUT to the regional endpoint with the bucket in the Host header", func() {
			err := client.S3Put("us-west-2", "some-bucket", "/prefix/part0", []byte("payload"))
			Expect(err).ToNot(HaveOccurred())

			Expect(fakeSigner.SignHeadersCallCount()).To(Equal(1))
			service, region, method, host, path, body := fakeSigner.SignHeadersArgsForCall(0)
			Expect(service).To(Equal("s3"))
			Expect(region).To(Equal("us-west-2"))
			Expect(method).To(Equal("PUT"))
			Expect(host).To(Equal("some-bucket.s3.amazonaws.com"))
			Expect(path).To(Equal("/prefix/part0"))
			Expect(body).To(Equal([]byte("payload")))

			Expect(fakeTransport.RoundTripCallCount()).To(Equal(1))
			endpoint, port, request := fakeTransport.RoundTripArgsForCall(0)
			Expect(endpoint).To(Equal("s3.us-west-2.amazonaws.com"))
			Expect(port).To(Equal("443"))

			req := string(request)
			Expect(req).To(HavePrefix("PUT /prefix/part0 HTTP/1.1\r\n"))
			Expect(req).To(ContainSubstring("Host: some-bucket.s3.amazonaws.com\r\n"))
			Expect(req).To(ContainSubstring("X-Amz-Date: 20260825T000000Z\r\n"))
			Expect(req).To(ContainSubstring("X-Amz-Content-SHA256: fake-sha\r\n"))
			Expect(req).To(ContainSubstring("Authorization: AWS4-HMAC-SHA256 Credential=fake\r\n"))
			Expect(req).To(ContainSubstring("Content-Length: 7\r\n"))
			Expect(req).To(ContainSubstring("Connection: close\r\n\r\npayload"))
			Expect(req).ToNot(ContainSubstring("Content-Type:"))
		})

		It("dials the regionless endpoint for us-east-1", func() {
			err := client.S3Put("us-east-1", "some-bucket", "/p", nil)
			Expect(err).ToNot(HaveOccurred())

			endpoint, _, _ := fakeTransport.RoundTripArgsForCall(0)
			Expect(endpoint).To(Equal("s3.amazonaws.com"))
		})

		It("returns an error on a non-200 response", func() {
			fakeTransport.RoundTripReturns([]byte("HTTP/1.1 403 Forbidden\r\n\r\n<Error/>"), nil)

			err := client.S3Put("us-east-1", "some-bucket", "/p", nil)
			Expect(err).To(MatchError(ContainSubstring("API request failed")))
		})
	})

	Describe("S3PutWithRetry", func() {
		It("retries a failing PUT up to the attempt bound", func() {
			fakeTransport.RoundTripReturns(nil, errors.New("connection reset"))

			err := client.S3PutWithRetry("us-east-1", "some-bucket", "/p", nil)
			Expect(err).To(MatchError(ContainSubstring(fmt.Sprintf("failed after %d attempts", awsapi.MaxAttempts))))
			Expect(fakeTransport.RoundTripCallCount()).To(Equal(awsapi.MaxAttempts))
		})

		It("stops retrying after the first success", func() {
			fakeTransport.RoundTripReturns(okResponse, nil)
			fakeTransport.RoundTripReturnsOnCall(0, nil, errors.New("connection reset"))
			fakeTransport.RoundTripReturnsOnCall(1, nil, errors.New("connection reset"))

			err := client.S3PutWithRetry("us-east-1", "some-bucket", "/p", nil)
			Expect(err).ToNot(HaveOccurred())
			Expect(fakeTransport.RoundTripCallCount()).To(Equal(3))
		})
	})

	Describe("PresignS3URL", func() {
		It("combines the bucket host, path, and signed query", func() {
			fakeSigner.PresignQueryReturns("X-Amz-Signature=abc&X-Amz-Expires=604800", nil)

			url, err := client.PresignS3URL("us-east-1", "GET", "some-bucket", "/prefix/manifest.xml", 0)
			Expect(err).ToNot(HaveOccurred())
			Expect(url).To(Equal("https://some-bucket.s3.amazonaws.com/prefix/manifest.xml?X-Amz-Signature=abc&X-Amz-Expires=604800"))
		})
	})

	Describe("EC2Call", func() {
		It("POSTs the query to the region's EC2 endpoint without a content type", func() {
			resp, err := client.EC2Call("eu-west-1", "Action=DescribeRegions&Version=2014-09-01")
			Expect(err).ToNot(HaveOccurred())
			Expect(resp).To(Equal("<response/>"))

			service, region, method, host, path, body := fakeSigner.SignHeadersArgsForCall(0)
			Expect(service).To(Equal("ec2"))
			Expect(region).To(Equal("eu-west-1"))
			Expect(method).To(Equal("POST"))
			Expect(host).To(Equal("ec2.eu-west-1.amazonaws.com"))
			Expect(path).To(Equal("/"))
			Expect(body).To(Equal([]byte("Action=DescribeRegions&Version=2014-09-01")))

			endpoint, _, request := fakeTransport.RoundTripArgsForCall(0)
			Expect(endpoint).To(Equal("ec2.eu-west-1.amazonaws.com"))
			Expect(string(request)).To(HavePrefix("POST / HTTP/1.1\r\n"))
			Expect(string(request)).ToNot(ContainSubstring("Content-Type:"))
		})
	})

	Describe("EC2CallWithRetry", func() {
		It("gives up after the attempt bound", func() {
			fakeTransport.RoundTripReturns(nil, errors.New("timeout"))

			_, err := client.EC2CallWithRetry("eu-west-1", "Action=DescribeRegions")
			Expect(err).To(MatchError(ContainSubstring("failed after 10 attempts")))
			Expect(fakeTransport.RoundTripCallCount()).To(Equal(10))
		})
	})

	Describe("SNSCall", func() {
		It("POSTs a form-encoded request to the region's SNS endpoint", func() {
			_, err := client.SNSCall("ap-southeast-2", "Action=Publish&Version=2010-03-31")
			Expect(err).ToNot(HaveOccurred())

			service, _, _, host, _, _ := fakeSigner.SignHeadersArgsForCall(0)
			Expect(service).To(Equal("sns"))
			Expect(host).To(Equal("sns.ap-southeast-2.amazonaws.com"))

			_, _, request := fakeTransport.RoundTripArgsForCall(0)
			Expect(string(request)).To(ContainSubstring("Content-Type: application/x-www-form-urlencoded\r\n"))
		})
	})
})

var _ = Describe("PercentEncode", func() {
	It("encodes spaces as %20 and reserved characters numerically", func() {
		Expect(awsapi.PercentEncode("a b&c=d/e")).To(Equal("a%20b%26c%3Dd%2Fe"))
	})

	It("leaves unreserved characters alone", func() {
		Expect(awsapi.PercentEncode("abc-XYZ_0.9")).To(Equal("abc-XYZ_0.9"))
	})
})
