package config

// Options is the full set of inputs for one build run, resolved from the
// command line before any request is made.
type Options struct {
	DiskImagePath string
	Name          string
	Description   string
	Region        string
	Bucket        string

	TopicARN       string
	ReleaseVersion string
	ImageVersion   string

	Public          bool
	PublicSnapshot  bool
	SriovNetSupport bool
	EnaSupport      bool
	Architecture    string
}
