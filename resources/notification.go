package resources

// Notification announces a completed multi-region release
type Notification struct {
	TopicARN       string
	ReleaseVersion string
	ImageVersion   string
	AmiName        string
	Amis           []Ami
}

//counterfeiter:generate . NotificationDriver
type NotificationDriver interface {
	Publish(Notification) error
}
