package driver

import (
	"encoding/json"
	"fmt"
	"io"
	"log"
	"strings"

	"ami-builder/awsapi"
	"ami-builder/resources"
)

var _ resources.NotificationDriver = &APINotificationDriver{}

// APINotificationDriver announces a completed release on an SNS topic.
type APINotificationDriver struct {
	client *awsapi.Client
	logger *log.Logger
}

func NewNotificationDriver(logDest io.Writer, client *awsapi.Client) *APINotificationDriver {
	return &APINotificationDriver{
		client: client,
		logger: log.New(logDest, "APINotificationDriver ", log.LstdFlags),
	}
}

type notificationMessage struct {
	V1 notificationBody `json:"v1"`
}

type notificationBody struct {
	ReleaseVersion string                        `json:"ReleaseVersion"`
	ImageVersion   string                        `json:"ImageVersion"`
	Regions        map[string][]notificationsAmi `json:"Regions"`
}

type notificationsAmi struct {
	Name    string `json:"Name"`
	ImageID string `json:"ImageId"`
}

// Publish posts the region→image map to the notification topic. The target
// region is embedded in the topic ARN. Issued once, without retries; the
// caller treats failure as best-effort.
func (d *APINotificationDriver) Publish(notification resources.Notification) error {
	region, err := topicRegion(notification.TopicARN)
	if err != nil {
		return err
	}

	message := notificationMessage{
		V1: notificationBody{
			ReleaseVersion: notification.ReleaseVersion,
			ImageVersion:   notification.ImageVersion,
			Regions:        map[string][]notificationsAmi{},
		},
	}
	for _, ami := range notification.Amis {
		message.V1.Regions[ami.Region] = append(message.V1.Regions[ami.Region], notificationsAmi{
			Name:    notification.AmiName,
			ImageID: ami.ID,
		})
	}

	payload, err := json.MarshalIndent(message, "", "  ")
	if err != nil {
		return fmt.Errorf("marshaling notification message: %s", err)
	}

	subject := fmt.Sprintf("New %s AMIs", notification.ReleaseVersion)
	query := "Action=Publish&" +
		"Message=" + awsapi.PercentEncode(string(payload)) + "&" +
		"Subject=" + awsapi.PercentEncode(subject) + "&" +
		"TopicArn=" + awsapi.PercentEncode(notification.TopicARN) + "&" +
		"Version=2010-03-31"

	d.logger.Printf("publishing notification to %s\n", notification.TopicARN)
	resp, err := d.client.SNSCall(region, query)
	if err != nil {
		return fmt.Errorf("publishing notification: %s", err)
	}

	if !strings.Contains(resp, "<MessageId>") {
		return fmt.Errorf("Publish failed: %s", resp)
	}

	return nil
}

// topicRegion pulls the region out of a topic ARN. SNS topic ARNs always
// start with "arn:aws:sns:<region>:".
func topicRegion(topicARN string) (string, error) {
	const prefix = "arn:aws:sns:"
	if !strings.HasPrefix(topicARN, prefix) {
		return "", fmt.Errorf("malformed topic ARN: %s", topicARN)
	}

	rest := topicARN[len(prefix):]
	end := strings.Index(rest, ":")
	if end <= 0 {
		return "", fmt.Errorf("malformed topic ARN: %s", topicARN)
	}
	return rest[:end], nil
}
