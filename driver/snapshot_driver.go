package driver

import (
	"context"
	"fmt"
	"io"
	"log"
	"strings"
	"time"

	"ami-builder/awsapi"
	"ami-builder/resources"
	"ami-builder/waiter"
)

var _ resources.SnapshotDriver = &APISnapshotDriver{}

// APISnapshotDriver snapshots an imported volume and can mark the snapshot
// as publicly usable.
type APISnapshotDriver struct {
	client       *awsapi.Client
	region       string
	logger       *log.Logger
	progress     io.Writer
	pollInterval time.Duration
}

func NewSnapshotDriver(logDest io.Writer, client *awsapi.Client, region string) *APISnapshotDriver {
	return &APISnapshotDriver{
		client:   client,
		region:   region,
		logger:   log.New(logDest, "APISnapshotDriver ", log.LstdFlags),
		progress: logDest,
	}
}

// Create snapshots the volume (one request, never retried) and polls until
// the snapshot is completed.
func (d *APISnapshotDriver) Create(ctx context.Context, driverConfig resources.SnapshotDriverConfig) (resources.Snapshot, error) {
	d.logger.Printf("creating snapshot of volume %s\n", driverConfig.VolumeID)
	resp, err := d.client.EC2Call(d.region,
		"Action=CreateSnapshot&VolumeId="+driverConfig.VolumeID+"&Version=2014-09-01")
	if err != nil {
		return resources.Snapshot{}, fmt.Errorf("creating snapshot: %s", err)
	}

	snapshotID, err := awsapi.ExtractTag(resp, "snapshotId")
	if err != nil {
		return resources.Snapshot{}, fmt.Errorf("could not find <snapshotId> in CreateSnapshot response: %s", resp)
	}

	w := waiter.Waiter{
		Name: "Creating snapshot",
		Describe: func() (string, error) {
			return d.client.EC2CallWithRetry(d.region,
				"Action=DescribeSnapshots&SnapshotId.1="+snapshotID+"&Version=2014-09-01")
		},
		Check:        waiter.StatusCheck("status", "completed", "pending"),
		PollInterval: d.pollInterval,
		Progress:     d.progress,
	}

	if _, err := w.Wait(ctx); err != nil {
		return resources.Snapshot{}, fmt.Errorf("waiting for snapshot %s: %s", snapshotID, err)
	}

	d.logger.Printf("created snapshot %s\n", snapshotID)
	return resources.Snapshot{ID: snapshotID}, nil
}

// MakePublic grants the all group permission to create volumes from the
// snapshot. Safe to re-issue, so it runs through the retry loop.
func (d *APISnapshotDriver) MakePublic(snapshot resources.Snapshot) error {
	resp, err := d.client.EC2CallWithRetry(d.region,
		"Action=ModifySnapshotAttribute&"+
			"SnapshotId="+snapshot.ID+"&"+
			"CreateVolumePermission.Add.1.Group=all&"+
			"Version=2014-09-01")
	if err != nil {
		return fmt.Errorf("making snapshot %s public: %s", snapshot.ID, err)
	}

	if !strings.Contains(resp, "<return>true</return>") {
		return fmt.Errorf("ModifySnapshotAttribute failed: %s", resp)
	}

	d.logger.Printf("snapshot %s is public\n", snapshot.ID)
	return nil
}
