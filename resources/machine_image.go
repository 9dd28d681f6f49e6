package resources

// MachineImage is a disk image uploaded to object storage as a chunked,
// manifest-described object
type MachineImage struct {
	ManifestPath string
	SizeBytes    int64
}

type MachineImageDriverConfig struct {
	MachineImagePath string
	BucketName       string
}

//counterfeiter:generate . MachineImageDriver
type MachineImageDriver interface {
	Create(MachineImageDriverConfig) (MachineImage, error)
}
