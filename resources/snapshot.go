package resources

import "context"

// Snapshot represents an EBS snapshot from which an AMI can be registered
type Snapshot struct {
	ID string
}

type SnapshotDriverConfig struct {
	VolumeID string
}

//counterfeiter:generate . SnapshotDriver
type SnapshotDriver interface {
	Create(context.Context, SnapshotDriverConfig) (Snapshot, error)
	MakePublic(Snapshot) error
}
