package resources

import "context"

// Volume is the EBS volume produced by a conversion task
type Volume struct {
	ID string
}

type VolumeDriverConfig struct {
	MachineImage MachineImage
	BucketName   string
}

// VolumeDriver imports a machine image as a volume and, once the volume has
// been snapshotted, destroys it
//
//counterfeiter:generate . VolumeDriver
type VolumeDriver interface {
	Create(context.Context, VolumeDriverConfig) (Volume, error)
	Delete(Volume) error
}
