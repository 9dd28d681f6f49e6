package publisher

import (
	"context"
	"fmt"
	"io"
	"log"
	"sync"

	"ami-builder/collection"
	"ami-builder/config"
	"ami-builder/driverset"
	"ami-builder/resources"
)

// Config carries the build inputs the publisher needs, resolved from
// config.Options before any request is made.
type Config struct {
	Region         string
	BucketName     string
	AmiProperties  resources.AmiProperties
	Public         bool
	PublicSnapshot bool
	TopicARN       string
	ReleaseVersion string
	ImageVersion   string
}

func NewMultiRegionPublisher(logDest io.Writer, c config.Options) *MultiRegionPublisher {
	architecture := c.Architecture
	if architecture == "" {
		architecture = resources.AmiArchitectureX8664
	}

	return &MultiRegionPublisher{
		Config: Config{
			Region:     c.Region,
			BucketName: c.Bucket,
			AmiProperties: resources.AmiProperties{
				Name:            c.Name,
				Description:     c.Description,
				Architecture:    architecture,
				SriovNetSupport: c.SriovNetSupport,
				EnaSupport:      c.EnaSupport,
			},
			Public:         c.Public,
			PublicSnapshot: c.PublicSnapshot,
			TopicARN:       c.TopicARN,
			ReleaseVersion: c.ReleaseVersion,
			ImageVersion:   c.ImageVersion,
		},
		logger: log.New(logDest, "MultiRegionPublisher ", log.LstdFlags),
	}
}

// MultiRegionPublisher runs the full pipeline in the build region and, for a
// public build, fans the resulting AMI out to every other available region.
type MultiRegionPublisher struct {
	Config
	logger *log.Logger
}

// Publish uploads the machine image, imports it, snapshots it, registers the
// source AMI, and copies it to all other regions. Nothing is publicized until
// every copy is confirmed available, so a public image is never announced in
// a partially-built state.
func (p *MultiRegionPublisher) Publish(ctx context.Context, ds driverset.BuildDriverSet, machineImagePath string) (*collection.Ami, error) {
	// Region discovery runs first on every build, public or not, so a broken
	// API surface aborts before any upload starts.
	regions, err := ds.RegionDriver().List()
	if err != nil {
		return nil, fmt.Errorf("listing regions: %s", err)
	}

	copyDestinations := p.copyDestinations(regions)

	machineImage, err := ds.MachineImageDriver().Create(resources.MachineImageDriverConfig{
		MachineImagePath: machineImagePath,
		BucketName:       p.BucketName,
	})
	if err != nil {
		return nil, fmt.Errorf("creating machine image: %s", err)
	}

	volume, err := ds.VolumeDriver().Create(ctx, resources.VolumeDriverConfig{
		MachineImage: machineImage,
		BucketName:   p.BucketName,
	})
	if err != nil {
		return nil, fmt.Errorf("creating volume: %s", err)
	}

	snapshot, err := ds.SnapshotDriver().Create(ctx, resources.SnapshotDriverConfig{
		VolumeID: volume.ID,
	})
	if err != nil {
		return nil, fmt.Errorf("creating snapshot: %s", err)
	}

	// The snapshot is durable once completed; the volume behind it is only
	// an intermediate and costs money while it exists.
	if err := ds.VolumeDriver().Delete(volume); err != nil {
		return nil, fmt.Errorf("deleting volume: %s", err)
	}

	if p.PublicSnapshot {
		if err := ds.SnapshotDriver().MakePublic(snapshot); err != nil {
			return nil, fmt.Errorf("making snapshot public: %s", err)
		}
	}

	sourceAmi, err := ds.CreateAmiDriver().Create(ctx, resources.AmiDriverConfig{
		Snapshot:      snapshot,
		AmiProperties: p.AmiProperties,
	})
	if err != nil {
		return nil, fmt.Errorf("creating ami: %s", err)
	}

	amis := &collection.Ami{}
	amis.Add(sourceAmi)

	if !p.Public {
		return amis, nil
	}

	copyAmiDriver := ds.CopyAmiDriver()

	procGroup := sync.WaitGroup{}
	procGroup.Add(len(copyDestinations))

	errCol := collection.Error{}

	for i := range copyDestinations {
		go func(dstRegion string) {
			defer procGroup.Done()

			copiedAmi, copyErr := copyAmiDriver.Create(ctx, resources.AmiDriverConfig{
				ExistingAmiID:     sourceAmi.ID,
				SourceRegion:      p.Region,
				DestinationRegion: dstRegion,
				AmiProperties:     p.AmiProperties,
			})
			if copyErr != nil {
				errCol.Add(fmt.Errorf("copying source ami: %s to destination region: %s: %s", sourceAmi.ID, dstRegion, copyErr))
				return
			}

			amis.Add(copiedAmi)
		}(copyDestinations[i])
	}

	procGroup.Wait()

	if err := errCol.Error(); err != nil {
		return nil, err
	}

	attributeDriver := ds.AmiAttributeDriver()
	for _, ami := range amis.GetAll() {
		if err := attributeDriver.MakePublic(ami); err != nil {
			return nil, fmt.Errorf("making ami public: %s", err)
		}
	}

	if p.TopicARN != "" {
		// The AMIs exist and are public at this point; a failed
		// announcement is not worth failing the whole build over.
		err := ds.NotificationDriver().Publish(resources.Notification{
			TopicARN:       p.TopicARN,
			ReleaseVersion: p.ReleaseVersion,
			ImageVersion:   p.ImageVersion,
			AmiName:        p.AmiProperties.Name,
			Amis:           amis.GetAll(),
		})
		if err != nil {
			p.logger.Printf("publishing notification: %s\n", err)
		}
	}

	return amis, nil
}

// copyDestinations is every available region except the build region itself.
// A non-public build copies nowhere.
func (p *MultiRegionPublisher) copyDestinations(regions []string) []string {
	if !p.Public {
		return nil
	}

	destinations := []string{}
	for _, region := range regions {
		if region != p.Region {
			destinations = append(destinations, region)
		}
	}
	return destinations
}
