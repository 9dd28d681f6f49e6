package driver

import (
	"context"
	"time"

	"ami-builder/awsapi"
	"ami-builder/awsapi/awsapifakes"
	"ami-builder/resources"

	. "github.com/onsi/ginkgo/v2"
	. "github.com/onsi/gomega"
)

var _ = Describe("APICopyAmiDriver", func() {
	var (
		fakeSigner    *awsapifakes.FakeSigner
		fakeTransport *awsapifakes.FakeTransport
		d             *APICopyAmiDriver
	)

	driverConfig := resources.AmiDriverConfig{
		ExistingAmiID:     "ami-src",
		SourceRegion:      "us-east-1",
		DestinationRegion: "eu-west-1",
	}

	BeforeEach(func() {
		fakeSigner = &awsapifakes.FakeSigner{}
		fakeSigner.SignHeadersReturns(awsapi.SignedHeaders{}, nil)
		fakeTransport = &awsapifakes.FakeTransport{}

		client := awsapi.NewClient(GinkgoWriter, fakeSigner, fakeTransport)
		d = NewCopyAmiDriver(GinkgoWriter, client)
		d.pollInterval = time.Millisecond
	})

	It("copies to the destination region and polls there until available", func() {
		fakeTransport.RoundTripReturnsOnCall(0, httpOK("<imageId>ami-copy</imageId>"), nil)
		fakeTransport.RoundTripReturnsOnCall(1, httpOK("<imageState>pending</imageState>"), nil)
		fakeTransport.RoundTripReturnsOnCall(2, httpOK("<imageState>available</imageState>"), nil)

		ami, err := d.Create(context.Background(), driverConfig)
		Expect(err).ToNot(HaveOccurred())
		Expect(ami).To(Equal(resources.Ami{ID: "ami-copy", Region: "eu-west-1"}))

		// both the copy and the describes go to the destination region
		endpoint, _, copyReq := fakeTransport.RoundTripArgsForCall(0)
		Expect(endpoint).To(Equal("ec2.eu-west-1.amazonaws.com"))
		Expect(string(copyReq)).To(ContainSubstring(
			"Action=CopyImage&SourceRegion=us-east-1&SourceImageId=ami-src&Version=2014-09-01"))

		endpoint, _, _ = fakeTransport.RoundTripArgsForCall(1)
		Expect(endpoint).To(Equal("ec2.eu-west-1.amazonaws.com"))
	})

	It("does not modify the copy's launch permissions", func() {
		fakeTransport.RoundTripReturnsOnCall(0, httpOK("<imageId>ami-copy</imageId>"), nil)
		fakeTransport.RoundTripReturns(httpOK("<imageState>available</imageState>"), nil)

		_, err := d.Create(context.Background(), driverConfig)
		Expect(err).ToNot(HaveOccurred())

		for i := 0; i < fakeTransport.RoundTripCallCount(); i++ {
			_, _, req := fakeTransport.RoundTripArgsForCall(i)
			Expect(string(req)).ToNot(ContainSubstring("ModifyImageAttribute"))
		}
	})

	It("fails when the copy response has no image id", func() {
		fakeTransport.RoundTripReturns(httpOK("<Error/>"), nil)

		_, err := d.Create(context.Background(), driverConfig)
		Expect(err).To(MatchError(ContainSubstring("could not find <imageId>")))
		Expect(fakeTransport.RoundTripCallCount()).To(Equal(1))
	})
})
