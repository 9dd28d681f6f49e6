package driver

import (
	"fmt"
	"io"
	"log"
	"strings"

	"ami-builder/awsapi"
	"ami-builder/resources"
)

var _ resources.AmiAttributeDriver = &APIAmiAttributeDriver{}

// APIAmiAttributeDriver marks available AMIs as publicly launchable.
type APIAmiAttributeDriver struct {
	client *awsapi.Client
	logger *log.Logger
}

func NewAmiAttributeDriver(logDest io.Writer, client *awsapi.Client) *APIAmiAttributeDriver {
	return &APIAmiAttributeDriver{
		client: client,
		logger: log.New(logDest, "APIAmiAttributeDriver ", log.LstdFlags),
	}
}

// MakePublic grants the all group launch permission on the AMI in its own
// region. Safe to re-issue, so it runs through the retry loop.
func (d *APIAmiAttributeDriver) MakePublic(ami resources.Ami) error {
	resp, err := d.client.EC2CallWithRetry(ami.Region,
		"Action=ModifyImageAttribute&"+
			"ImageId="+ami.ID+"&"+
			"LaunchPermission.Add.1.Group=all&"+
			"Version=2014-09-01")
	if err != nil {
		return fmt.Errorf("making AMI %s public in %s: %s", ami.ID, ami.Region, err)
	}

	if !strings.Contains(resp, "<return>true</return>") {
		return fmt.Errorf("ModifyImageAttribute failed: %s", resp)
	}

	d.logger.Printf("AMI %s in %s is public\n", ami.ID, ami.Region)
	return nil
}
