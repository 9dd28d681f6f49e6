package driver

import (
	"context"
	"fmt"
	"io"
	"log"
	"time"

	"ami-builder/awsapi"
	"ami-builder/resources"
	"ami-builder/waiter"
)

var _ resources.AmiDriver = &APICreateAmiDriver{}

// APICreateAmiDriver registers an AMI from a completed snapshot.
type APICreateAmiDriver struct {
	client       *awsapi.Client
	region       string
	logger       *log.Logger
	progress     io.Writer
	pollInterval time.Duration
}

func NewCreateAmiDriver(logDest io.Writer, client *awsapi.Client, region string) *APICreateAmiDriver {
	return &APICreateAmiDriver{
		client:   client,
		region:   region,
		logger:   log.New(logDest, "APICreateAmiDriver ", log.LstdFlags),
		progress: logDest,
	}
}

// Create registers the image (one request, never retried) and polls until it
// is available. The block device mapping is fixed: the root volume from the
// snapshot plus four instance-store slots.
func (d *APICreateAmiDriver) Create(ctx context.Context, driverConfig resources.AmiDriverConfig) (resources.Ami, error) {
	query := registerImageQuery(driverConfig)

	d.logger.Printf("registering AMI %s from snapshot %s\n", driverConfig.Name, driverConfig.Snapshot.ID)
	resp, err := d.client.EC2Call(d.region, query)
	if err != nil {
		return resources.Ami{}, fmt.Errorf("registering AMI: %s", err)
	}

	amiID, err := awsapi.ExtractTag(resp, "imageId")
	if err != nil {
		return resources.Ami{}, fmt.Errorf("could not find <imageId> in RegisterImage response: %s", resp)
	}

	if err := waitForAmi(ctx, d.client, d.region, amiID, d.pollInterval, d.progress); err != nil {
		return resources.Ami{}, err
	}

	d.logger.Printf("created AMI %s\n", amiID)
	return resources.Ami{ID: amiID, Region: d.region}, nil
}

func registerImageQuery(driverConfig resources.AmiDriverConfig) string {
	sriov := ""
	if driverConfig.SriovNetSupport {
		sriov = "SriovNetSupport=simple&"
	}
	ena := ""
	if driverConfig.EnaSupport {
		ena = "EnaSupport=true&"
	}

	return fmt.Sprintf(
		"Action=RegisterImage&"+
			"Name=%s&"+
			"Description=%s&"+
			"Architecture=%s&"+
			"RootDeviceName=%%2Fdev%%2Fsda1&"+
			"VirtualizationType=hvm&"+
			"%s"+
			"%s"+
			"BlockDeviceMapping.1.DeviceName=%%2Fdev%%2Fsda1&"+
			"BlockDeviceMapping.1.Ebs.SnapshotId=%s&"+
			"BlockDeviceMapping.1.Ebs.VolumeType=gp2&"+
			"BlockDeviceMapping.1.Ebs.VolumeSize=10&"+
			"BlockDeviceMapping.2.DeviceName=%%2Fdev%%2Fsdb&"+
			"BlockDeviceMapping.2.VirtualName=ephemeral0&"+
			"BlockDeviceMapping.3.DeviceName=%%2Fdev%%2Fsdc&"+
			"BlockDeviceMapping.3.VirtualName=ephemeral1&"+
			"BlockDeviceMapping.4.DeviceName=%%2Fdev%%2Fsdd&"+
			"BlockDeviceMapping.4.VirtualName=ephemeral2&"+
			"BlockDeviceMapping.5.DeviceName=%%2Fdev%%2Fsde&"+
			"BlockDeviceMapping.5.VirtualName=ephemeral3&"+
			"Version=2016-11-15",
		awsapi.PercentEncode(driverConfig.Name),
		awsapi.PercentEncode(driverConfig.Description),
		awsapi.PercentEncode(driverConfig.Architecture),
		sriov, ena,
		driverConfig.Snapshot.ID)
}

// waitForAmi polls DescribeImages until the image is available. Shared by
// the register and copy drivers so every region's wait behaves identically.
func waitForAmi(ctx context.Context, client *awsapi.Client, region, amiID string, pollInterval time.Duration, progress io.Writer) error {
	w := waiter.Waiter{
		Name: fmt.Sprintf("Waiting for AMI %s in %s", amiID, region),
		Describe: func() (string, error) {
			return client.EC2CallWithRetry(region,
				"Action=DescribeImages&ImageId.1="+amiID+"&Version=2014-09-01")
		},
		Check:        waiter.StatusCheck("imageState", "available", "pending"),
		PollInterval: pollInterval,
		Progress:     progress,
	}

	if _, err := w.Wait(ctx); err != nil {
		return fmt.Errorf("waiting for AMI %s in %s: %s", amiID, region, err)
	}
	return nil
}
