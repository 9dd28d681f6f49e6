package publisher_test

import (
	"context"
	"errors"
	"sync"

	"ami-builder/config"
	"ami-builder/driverset/driversetfakes"
	"ami-builder/publisher"
	"ami-builder/resources"
	"ami-builder/resources/resourcesfakes"

	. "github.com/onsi/ginkgo/v2"
	. "github.com/onsi/gomega"
)

var _ = Describe("MultiRegionPublisher", func() {

	const (
		fakeRegion           = "us-east-1"
		fakeBucketName       = "fake bucket name"
		fakeMachineImagePath = "fake machine image path"
		fakeManifestPath     = "/abc/manifest.xml"
		fakeVolumeID         = "vol-1"
		fakeSnapshotID       = "snap-1"
		fakeAmiID            = "ami-src"
	)

	var (
		options config.Options

		fakeDs                 *driversetfakes.FakeBuildDriverSet
		fakeRegionDriver       *resourcesfakes.FakeRegionDriver
		fakeMachineImageDriver *resourcesfakes.FakeMachineImageDriver
		fakeVolumeDriver       *resourcesfakes.FakeVolumeDriver
		fakeSnapshotDriver     *resourcesfakes.FakeSnapshotDriver
		fakeCreateAmiDriver    *resourcesfakes.FakeAmiDriver
		fakeCopyAmiDriver      *resourcesfakes.FakeAmiDriver
		fakeAttributeDriver    *resourcesfakes.FakeAmiAttributeDriver
		fakeNotificationDriver *resourcesfakes.FakeNotificationDriver
	)

	fakeMachineImage := resources.MachineImage{
		ManifestPath: fakeManifestPath,
		SizeBytes:    25 * 1024 * 1024,
	}

	BeforeEach(func() {
		options = config.Options{
			Name:        "fake ami name",
			Description: "fake ami description",
			Region:      fakeRegion,
			Bucket:      fakeBucketName,
			Public:      true,
		}

		fakeRegionDriver = &resourcesfakes.FakeRegionDriver{}
		fakeRegionDriver.ListReturns([]string{fakeRegion, "eu-west-1", "ap-southeast-2"}, nil)

		fakeMachineImageDriver = &resourcesfakes.FakeMachineImageDriver{}
		fakeMachineImageDriver.CreateReturns(fakeMachineImage, nil)

		fakeVolumeDriver = &resourcesfakes.FakeVolumeDriver{}
		fakeVolumeDriver.CreateReturns(resources.Volume{ID: fakeVolumeID}, nil)

		fakeSnapshotDriver = &resourcesfakes.FakeSnapshotDriver{}
		fakeSnapshotDriver.CreateReturns(resources.Snapshot{ID: fakeSnapshotID}, nil)

		fakeCreateAmiDriver = &resourcesfakes.FakeAmiDriver{}
		fakeCreateAmiDriver.CreateReturns(resources.Ami{ID: fakeAmiID, Region: fakeRegion}, nil)

		fakeCopyAmiDriver = &resourcesfakes.FakeAmiDriver{}
		fakeCopyAmiDriver.CreateCalls(func(_ context.Context, c resources.AmiDriverConfig) (resources.Ami, error) {
			return resources.Ami{ID: "ami-" + c.DestinationRegion, Region: c.DestinationRegion}, nil
		})

		fakeAttributeDriver = &resourcesfakes.FakeAmiAttributeDriver{}
		fakeNotificationDriver = &resourcesfakes.FakeNotificationDriver{}

		fakeDs = &driversetfakes.FakeBuildDriverSet{}
		fakeDs.RegionDriverReturns(fakeRegionDriver)
		fakeDs.MachineImageDriverReturns(fakeMachineImageDriver)
		fakeDs.VolumeDriverReturns(fakeVolumeDriver)
		fakeDs.SnapshotDriverReturns(fakeSnapshotDriver)
		fakeDs.CreateAmiDriverReturns(fakeCreateAmiDriver)
		fakeDs.CopyAmiDriverReturns(fakeCopyAmiDriver)
		fakeDs.AmiAttributeDriverReturns(fakeAttributeDriver)
		fakeDs.NotificationDriverReturns(fakeNotificationDriver)
	})

	It("runs the full pipeline and copies to every region but its own", func() {
		p := publisher.NewMultiRegionPublisher(GinkgoWriter, options)
		amis, err := p.Publish(context.Background(), fakeDs, fakeMachineImagePath)
		Expect(err).ToNot(HaveOccurred())

		Expect(fakeMachineImageDriver.CreateCallCount()).To(Equal(1))
		Expect(fakeMachineImageDriver.CreateArgsForCall(0)).To(Equal(resources.MachineImageDriverConfig{
			MachineImagePath: fakeMachineImagePath,
			BucketName:       fakeBucketName,
		}))

		Expect(fakeVolumeDriver.CreateCallCount()).To(Equal(1))
		_, volumeConfig := fakeVolumeDriver.CreateArgsForCall(0)
		Expect(volumeConfig).To(Equal(resources.VolumeDriverConfig{
			MachineImage: fakeMachineImage,
			BucketName:   fakeBucketName,
		}))

		Expect(fakeSnapshotDriver.CreateCallCount()).To(Equal(1))
		_, snapshotConfig := fakeSnapshotDriver.CreateArgsForCall(0)
		Expect(snapshotConfig).To(Equal(resources.SnapshotDriverConfig{VolumeID: fakeVolumeID}))

		Expect(fakeVolumeDriver.DeleteCallCount()).To(Equal(1))
		Expect(fakeVolumeDriver.DeleteArgsForCall(0)).To(Equal(resources.Volume{ID: fakeVolumeID}))

		Expect(fakeCreateAmiDriver.CreateCallCount()).To(Equal(1))
		_, amiConfig := fakeCreateAmiDriver.CreateArgsForCall(0)
		Expect(amiConfig.Snapshot).To(Equal(resources.Snapshot{ID: fakeSnapshotID}))
		Expect(amiConfig.Name).To(Equal("fake ami name"))
		Expect(amiConfig.Architecture).To(Equal(resources.AmiArchitectureX8664))

		Expect(fakeCopyAmiDriver.CreateCallCount()).To(Equal(2))
		var copyDestinations []string
		for i := 0; i < 2; i++ {
			_, copyConfig := fakeCopyAmiDriver.CreateArgsForCall(i)
			Expect(copyConfig.ExistingAmiID).To(Equal(fakeAmiID))
			Expect(copyConfig.SourceRegion).To(Equal(fakeRegion))
			copyDestinations = append(copyDestinations, copyConfig.DestinationRegion)
		}
		Expect(copyDestinations).To(ConsistOf("eu-west-1", "ap-southeast-2"))

		Expect(fakeAttributeDriver.MakePublicCallCount()).To(Equal(3))

		Expect(amis.GetAll()).To(ConsistOf(
			resources.Ami{ID: fakeAmiID, Region: fakeRegion},
			resources.Ami{ID: "ami-eu-west-1", Region: "eu-west-1"},
			resources.Ami{ID: "ami-ap-southeast-2", Region: "ap-southeast-2"},
		))
	})

	It("deletes the volume only after the snapshot is durable", func() {
		var order []string
		var mu sync.Mutex
		record := func(event string) {
			mu.Lock()
			defer mu.Unlock()
			order = append(order, event)
		}

		fakeSnapshotDriver.CreateCalls(func(context.Context, resources.SnapshotDriverConfig) (resources.Snapshot, error) {
			record("snapshot")
			return resources.Snapshot{ID: fakeSnapshotID}, nil
		})
		fakeVolumeDriver.DeleteCalls(func(resources.Volume) error {
			record("delete volume")
			return nil
		})

		p := publisher.NewMultiRegionPublisher(GinkgoWriter, options)
		_, err := p.Publish(context.Background(), fakeDs, fakeMachineImagePath)
		Expect(err).ToNot(HaveOccurred())
		Expect(order).To(Equal([]string{"snapshot", "delete volume"}))
	})

	It("publicizes nothing until every copy has succeeded", func() {
		var mu sync.Mutex
		copiesFinished := 0

		fakeCopyAmiDriver.CreateCalls(func(_ context.Context, c resources.AmiDriverConfig) (resources.Ami, error) {
			mu.Lock()
			defer mu.Unlock()
			copiesFinished++
			return resources.Ami{ID: "ami-" + c.DestinationRegion, Region: c.DestinationRegion}, nil
		})
		fakeAttributeDriver.MakePublicCalls(func(resources.Ami) error {
			mu.Lock()
			defer mu.Unlock()
			Expect(copiesFinished).To(Equal(2))
			return nil
		})

		p := publisher.NewMultiRegionPublisher(GinkgoWriter, options)
		_, err := p.Publish(context.Background(), fakeDs, fakeMachineImagePath)
		Expect(err).ToNot(HaveOccurred())
		Expect(fakeAttributeDriver.MakePublicCallCount()).To(Equal(3))
	})

	It("aborts before publicizing when any copy fails", func() {
		fakeCopyAmiDriver.CreateCalls(func(_ context.Context, c resources.AmiDriverConfig) (resources.Ami, error) {
			if c.DestinationRegion == "eu-west-1" {
				return resources.Ami{}, errors.New("copy failed")
			}
			return resources.Ami{ID: "ami-" + c.DestinationRegion, Region: c.DestinationRegion}, nil
		})

		p := publisher.NewMultiRegionPublisher(GinkgoWriter, options)
		_, err := p.Publish(context.Background(), fakeDs, fakeMachineImagePath)
		Expect(err).To(MatchError(ContainSubstring("copy failed")))
		Expect(err).To(MatchError(ContainSubstring("eu-west-1")))
		Expect(fakeAttributeDriver.MakePublicCallCount()).To(Equal(0))
		Expect(fakeNotificationDriver.PublishCallCount()).To(Equal(0))
	})

	Context("when the build is not public", func() {
		BeforeEach(func() {
			options.Public = false
		})

		It("stops after the source AMI with no copies or publicizing", func() {
			p := publisher.NewMultiRegionPublisher(GinkgoWriter, options)
			amis, err := p.Publish(context.Background(), fakeDs, fakeMachineImagePath)
			Expect(err).ToNot(HaveOccurred())

			Expect(fakeCopyAmiDriver.CreateCallCount()).To(Equal(0))
			Expect(fakeAttributeDriver.MakePublicCallCount()).To(Equal(0))
			Expect(fakeNotificationDriver.PublishCallCount()).To(Equal(0))
			Expect(amis.GetAll()).To(ConsistOf(resources.Ami{ID: fakeAmiID, Region: fakeRegion}))
		})

		It("still verifies region discovery before uploading", func() {
			fakeRegionDriver.ListReturns(nil, errors.New("DescribeRegions unavailable"))

			p := publisher.NewMultiRegionPublisher(GinkgoWriter, options)
			_, err := p.Publish(context.Background(), fakeDs, fakeMachineImagePath)
			Expect(err).To(MatchError(ContainSubstring("DescribeRegions unavailable")))
			Expect(fakeRegionDriver.ListCallCount()).To(Equal(1))
			Expect(fakeMachineImageDriver.CreateCallCount()).To(Equal(0))
		})
	})

	Context("when a snapshot should be public", func() {
		BeforeEach(func() {
			options.PublicSnapshot = true
		})

		It("publicizes the snapshot before registering the AMI", func() {
			p := publisher.NewMultiRegionPublisher(GinkgoWriter, options)
			_, err := p.Publish(context.Background(), fakeDs, fakeMachineImagePath)
			Expect(err).ToNot(HaveOccurred())

			Expect(fakeSnapshotDriver.MakePublicCallCount()).To(Equal(1))
			Expect(fakeSnapshotDriver.MakePublicArgsForCall(0)).To(Equal(resources.Snapshot{ID: fakeSnapshotID}))
		})
	})

	Context("when a notification topic is configured", func() {
		BeforeEach(func() {
			options.TopicARN = "arn:aws:sns:us-east-1:123456789012:releases"
			options.ReleaseVersion = "13.1"
			options.ImageVersion = "20260825"
		})

		It("announces all created AMIs", func() {
			p := publisher.NewMultiRegionPublisher(GinkgoWriter, options)
			amis, err := p.Publish(context.Background(), fakeDs, fakeMachineImagePath)
			Expect(err).ToNot(HaveOccurred())

			Expect(fakeNotificationDriver.PublishCallCount()).To(Equal(1))
			notification := fakeNotificationDriver.PublishArgsForCall(0)
			Expect(notification.TopicARN).To(Equal(options.TopicARN))
			Expect(notification.ReleaseVersion).To(Equal("13.1"))
			Expect(notification.ImageVersion).To(Equal("20260825"))
			Expect(notification.AmiName).To(Equal("fake ami name"))
			Expect(notification.Amis).To(ConsistOf(amis.GetAll()))
		})

		It("does not fail the build when the announcement fails", func() {
			fakeNotificationDriver.PublishReturns(errors.New("sns unavailable"))

			p := publisher.NewMultiRegionPublisher(GinkgoWriter, options)
			amis, err := p.Publish(context.Background(), fakeDs, fakeMachineImagePath)
			Expect(err).ToNot(HaveOccurred())
			Expect(amis.GetAll()).To(HaveLen(3))
		})
	})

	It("returns a machine image driver error if one was returned", func() {
		driverErr := errors.New("error in machine image driver")
		fakeMachineImageDriver.CreateReturns(resources.MachineImage{}, driverErr)

		p := publisher.NewMultiRegionPublisher(GinkgoWriter, options)
		_, err := p.Publish(context.Background(), fakeDs, fakeMachineImagePath)
		Expect(err).To(MatchError(ContainSubstring(driverErr.Error())))
		Expect(fakeVolumeDriver.CreateCallCount()).To(Equal(0))
	})

	It("returns a volume driver error if one was returned", func() {
		driverErr := errors.New("error in volume driver")
		fakeVolumeDriver.CreateReturns(resources.Volume{}, driverErr)

		p := publisher.NewMultiRegionPublisher(GinkgoWriter, options)
		_, err := p.Publish(context.Background(), fakeDs, fakeMachineImagePath)
		Expect(err).To(MatchError(ContainSubstring(driverErr.Error())))
		Expect(fakeSnapshotDriver.CreateCallCount()).To(Equal(0))
	})

	It("returns a region discovery error before uploading anything", func() {
		driverErr := errors.New("error listing regions")
		fakeRegionDriver.ListReturns(nil, driverErr)

		p := publisher.NewMultiRegionPublisher(GinkgoWriter, options)
		_, err := p.Publish(context.Background(), fakeDs, fakeMachineImagePath)
		Expect(err).To(MatchError(ContainSubstring(driverErr.Error())))
		Expect(fakeMachineImageDriver.CreateCallCount()).To(Equal(0))
	})
})
