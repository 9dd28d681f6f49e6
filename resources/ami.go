package resources

import "context"

// You only need **one** of these per package!
//go:generate go run github.com/maxbrunsfeld/counterfeiter/v6 -generate

// AMI registration constants
const (
	AmiArchitectureX8664 = "x86_64"
	AmiArchitectureArm64 = "arm64"
	AmiVirtualizationHVM = "hvm"
)

// Ami represents a registered machine image in one region
type Ami struct {
	ID     string
	Region string
}

// AmiProperties describes what properties the registered AMI should have
type AmiProperties struct {
	Name            string
	Description     string
	Architecture    string
	SriovNetSupport bool
	EnaSupport      bool
}

// AmiDriverConfig allows an AmiDriver to create an AMI from either a
// snapshot (register) or an existing AMI in another region (copy)
type AmiDriverConfig struct {
	Snapshot          Snapshot
	ExistingAmiID     string
	SourceRegion      string
	DestinationRegion string
	AmiProperties
}

// AmiDriver abstracts the API calls required to produce an available AMI
//
//counterfeiter:generate . AmiDriver
type AmiDriver interface {
	Create(context.Context, AmiDriverConfig) (Ami, error)
}

// AmiAttributeDriver marks an available AMI as publicly launchable
//
//counterfeiter:generate . AmiAttributeDriver
type AmiAttributeDriver interface {
	MakePublic(Ami) error
}
