package driver

import (
	"context"
	"fmt"
	"io"
	"log"
	"time"

	"ami-builder/awsapi"
	"ami-builder/resources"
)

var _ resources.AmiDriver = &APICopyAmiDriver{}

// APICopyAmiDriver copies an existing AMI into another region. Making the
// copy public is left to the AmiAttributeDriver so the caller can hold all
// publicize calls until every region's copy is confirmed available.
type APICopyAmiDriver struct {
	client       *awsapi.Client
	logger       *log.Logger
	progress     io.Writer
	pollInterval time.Duration
}

func NewCopyAmiDriver(logDest io.Writer, client *awsapi.Client) *APICopyAmiDriver {
	return &APICopyAmiDriver{
		client:   client,
		logger:   log.New(logDest, "APICopyAmiDriver ", log.LstdFlags),
		progress: logDest,
	}
}

// Create issues the copy request to the destination region (one request,
// never retried) and polls the destination until the copy is available.
func (d *APICopyAmiDriver) Create(ctx context.Context, driverConfig resources.AmiDriverConfig) (resources.Ami, error) {
	srcRegion := driverConfig.SourceRegion
	dstRegion := driverConfig.DestinationRegion

	d.logger.Printf("copying AMI %s from %s to %s\n", driverConfig.ExistingAmiID, srcRegion, dstRegion)
	resp, err := d.client.EC2Call(dstRegion,
		"Action=CopyImage&"+
			"SourceRegion="+srcRegion+"&"+
			"SourceImageId="+driverConfig.ExistingAmiID+"&"+
			"Version=2014-09-01")
	if err != nil {
		return resources.Ami{}, fmt.Errorf("copying AMI to %s: %s", dstRegion, err)
	}

	amiID, err := awsapi.ExtractTag(resp, "imageId")
	if err != nil {
		return resources.Ami{}, fmt.Errorf("could not find <imageId> in CopyImage response: %s", resp)
	}

	if err := waitForAmi(ctx, d.client, dstRegion, amiID, d.pollInterval, d.progress); err != nil {
		return resources.Ami{}, err
	}

	d.logger.Printf("copied AMI %s to %s as %s\n", driverConfig.ExistingAmiID, dstRegion, amiID)
	return resources.Ami{ID: amiID, Region: dstRegion}, nil
}
