package driverset

import (
	"io"

	"ami-builder/awsapi"
	"ami-builder/awssig"
	"ami-builder/config"
	"ami-builder/driver"
	"ami-builder/resources"
	"ami-builder/transport"
)

//go:generate go run github.com/maxbrunsfeld/counterfeiter/v6 -generate

// A BuildDriverSet is the collection of resource drivers which together turn
// a raw disk image into one or more public AMIs.
//
//counterfeiter:generate . BuildDriverSet
type BuildDriverSet interface {
	RegionDriver() resources.RegionDriver
	MachineImageDriver() resources.MachineImageDriver
	VolumeDriver() resources.VolumeDriver
	SnapshotDriver() resources.SnapshotDriver
	CreateAmiDriver() resources.AmiDriver
	CopyAmiDriver() resources.AmiDriver
	AmiAttributeDriver() resources.AmiAttributeDriver
	NotificationDriver() resources.NotificationDriver
}

type apiDriverSet struct {
	regionDriver       *driver.APIRegionDriver
	machineImageDriver *driver.APIMachineImageDriver
	volumeDriver       *driver.APIVolumeDriver
	snapshotDriver     *driver.APISnapshotDriver
	createAmiDriver    *driver.APICreateAmiDriver
	copyAmiDriver      *driver.APICopyAmiDriver
	amiAttributeDriver *driver.APIAmiAttributeDriver
	notificationDriver *driver.APINotificationDriver
}

// NewAPIDriverSet wires every driver to one shared signing client. The region
// is the build region; copies and notification derive their own regions from
// their inputs.
func NewAPIDriverSet(logDest io.Writer, creds config.Credentials, region string) BuildDriverSet {
	client := awsapi.NewClient(logDest,
		awssig.New(creds.AccessKeyID, creds.SecretAccessKey),
		transport.NewTLSDialer(""))

	return &apiDriverSet{
		regionDriver:       driver.NewRegionDriver(logDest, client, region),
		machineImageDriver: driver.NewMachineImageDriver(logDest, client, region),
		volumeDriver:       driver.NewVolumeDriver(logDest, client, region),
		snapshotDriver:     driver.NewSnapshotDriver(logDest, client, region),
		createAmiDriver:    driver.NewCreateAmiDriver(logDest, client, region),
		copyAmiDriver:      driver.NewCopyAmiDriver(logDest, client),
		amiAttributeDriver: driver.NewAmiAttributeDriver(logDest, client),
		notificationDriver: driver.NewNotificationDriver(logDest, client),
	}
}

func (s *apiDriverSet) RegionDriver() resources.RegionDriver {
	return s.regionDriver
}

func (s *apiDriverSet) MachineImageDriver() resources.MachineImageDriver {
	return s.machineImageDriver
}

func (s *apiDriverSet) VolumeDriver() resources.VolumeDriver {
	return s.volumeDriver
}

func (s *apiDriverSet) SnapshotDriver() resources.SnapshotDriver {
	return s.snapshotDriver
}

func (s *apiDriverSet) CreateAmiDriver() resources.AmiDriver {
	return s.createAmiDriver
}

func (s *apiDriverSet) CopyAmiDriver() resources.AmiDriver {
	return s.copyAmiDriver
}

func (s *apiDriverSet) AmiAttributeDriver() resources.AmiAttributeDriver {
	return s.amiAttributeDriver
}

func (s *apiDriverSet) NotificationDriver() resources.NotificationDriver {
	return s.notificationDriver
}
