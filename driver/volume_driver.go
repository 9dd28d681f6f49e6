package driver

import (
	"context"
	"fmt"
	"io"
	"log"
	"strings"
	"time"

	"ami-builder/awsapi"
	"ami-builder/manifest"
	"ami-builder/resources"
	"ami-builder/waiter"
)

var _ resources.VolumeDriver = &APIVolumeDriver{}

// APIVolumeDriver turns an uploaded machine image into an EBS volume via the
// ImportVolume conversion task, and deletes the volume once its snapshot is
// durable.
type APIVolumeDriver struct {
	client       *awsapi.Client
	region       string
	logger       *log.Logger
	progress     io.Writer
	pollInterval time.Duration
}

func NewVolumeDriver(logDest io.Writer, client *awsapi.Client, region string) *APIVolumeDriver {
	return &APIVolumeDriver{
		client:   client,
		region:   region,
		logger:   log.New(logDest, "APIVolumeDriver ", log.LstdFlags),
		progress: logDest,
	}
}

// Create submits the import-volume request once (a retry could create a
// duplicate conversion task) and polls the task until the volume exists.
func (d *APIVolumeDriver) Create(ctx context.Context, driverConfig resources.VolumeDriverConfig) (resources.Volume, error) {
	size := driverConfig.MachineImage.SizeBytes

	manifestURL, err := d.client.PresignS3URL(d.region, "GET", driverConfig.BucketName, driverConfig.MachineImage.ManifestPath, presignExpiry)
	if err != nil {
		return resources.Volume{}, fmt.Errorf("presigning manifest URL: %s", err)
	}

	query := fmt.Sprintf(
		"Action=ImportVolume&"+
			"AvailabilityZone=%sa&"+
			"Image.Format=RAW&"+
			"Image.Bytes=%d&"+
			"Image.ImportManifestUrl=%s&"+
			"Volume.Size=%d&"+
			"Version=2014-09-01",
		d.region, size, awsapi.PercentEncode(manifestURL), manifest.VolumeSizeGB(size))

	d.logger.Printf("initiating import of %s\n", driverConfig.MachineImage.ManifestPath)
	resp, err := d.client.EC2Call(d.region, query)
	if err != nil {
		return resources.Volume{}, fmt.Errorf("importing volume: %s", err)
	}

	taskID, err := awsapi.ExtractTag(resp, "conversionTaskId")
	if err != nil {
		return resources.Volume{}, fmt.Errorf("could not find <conversionTaskId> in ImportVolume response: %s", resp)
	}

	w := waiter.Waiter{
		Name: "Importing volume",
		Describe: func() (string, error) {
			return d.client.EC2CallWithRetry(d.region,
				"Action=DescribeConversionTasks&ConversionTaskId.1="+taskID+"&Version=2014-09-01")
		},
		Check:        conversionTaskCheck,
		PollInterval: d.pollInterval,
		Progress:     d.progress,
	}

	volumeID, err := w.Wait(ctx)
	if err != nil {
		return resources.Volume{}, fmt.Errorf("waiting for conversion task %s: %s", taskID, err)
	}

	d.logger.Printf("created volume %s\n", volumeID)
	return resources.Volume{ID: volumeID}, nil
}

// conversionTaskCheck reproduces the conversion task's indirect completion
// test: done once the response no longer carries an active-state marker and
// the <volume> block has an <id>. There is no positive "completed" status in
// this API's vocabulary.
func conversionTaskCheck(body string) (waiter.Decision, error) {
	volume, err := awsapi.ExtractTag(body, "volume")
	if err != nil {
		return waiter.Decision{}, fmt.Errorf("could not find <volume> in DescribeConversionTasks response: %s", body)
	}

	if !strings.Contains(body, "<state>active</state>") {
		if id, err := awsapi.ExtractTag(volume, "id"); err == nil {
			return waiter.Decision{Done: true, Payload: id}, nil
		}
	}

	status, err := awsapi.ExtractTag(body, "statusMessage")
	if err != nil {
		return waiter.Decision{}, fmt.Errorf("could not find <statusMessage> in DescribeConversionTasks response: %s", body)
	}
	return waiter.Decision{Status: status}, nil
}

// Delete destroys the volume. Issued once, without retries, and only after
// the caller has confirmed the snapshot is durable: volume destruction is
// irreversible. The provider's boolean success field is checked, not just
// the HTTP status.
func (d *APIVolumeDriver) Delete(volume resources.Volume) error {
	resp, err := d.client.EC2Call(d.region,
		"Action=DeleteVolume&VolumeId="+volume.ID+"&Version=2014-09-01")
	if err != nil {
		return fmt.Errorf("deleting volume %s: %s", volume.ID, err)
	}

	if !strings.Contains(resp, "<return>true</return>") {
		return fmt.Errorf("DeleteVolume failed: %s", resp)
	}

	d.logger.Printf("deleted volume %s\n", volume.ID)
	return nil
}
