package driver

import (
	"fmt"
	"io"
	"log"

	"ami-builder/awsapi"
	"ami-builder/resources"
)

var _ resources.RegionDriver = &APIRegionDriver{}

// APIRegionDriver discovers the regions available to the account.
type APIRegionDriver struct {
	client *awsapi.Client
	region string
	logger *log.Logger
}

func NewRegionDriver(logDest io.Writer, client *awsapi.Client, region string) *APIRegionDriver {
	return &APIRegionDriver{
		client: client,
		region: region,
		logger: log.New(logDest, "APIRegionDriver ", log.LstdFlags),
	}
}

// List returns every region name from DescribeRegions, in response order.
// An empty list is an error: a response with no regions means the account or
// the response is broken, not that there is nothing to do.
func (d *APIRegionDriver) List() ([]string, error) {
	resp, err := d.client.EC2CallWithRetry(d.region,
		"Action=DescribeRegions&Version=2014-09-01")
	if err != nil {
		return nil, fmt.Errorf("describing regions: %s", err)
	}

	regionInfo, err := awsapi.ExtractTag(resp, "regionInfo")
	if err != nil {
		return nil, fmt.Errorf("could not find <regionInfo> in DescribeRegions response: %s", resp)
	}

	regions, err := awsapi.ExtractTags(regionInfo, "regionName")
	if err != nil {
		return nil, fmt.Errorf("extracting region names: %s", err)
	}
	if len(regions) == 0 {
		return nil, fmt.Errorf("could not find any regions in DescribeRegions response: %s", resp)
	}

	d.logger.Printf("discovered %d region(s)\n", len(regions))
	return regions, nil
}
