package main

import (
	"context"
	"flag"
	"fmt"
	"io"
	"log"
	"os"
	"sync"

	"ami-builder/config"
	"ami-builder/driverset"
	"ami-builder/publisher"
	"ami-builder/report"
	"ami-builder/resources"
)

func usage(message string) {
	fmt.Fprintln(os.Stderr, message)
	fmt.Fprintln(os.Stderr, "Usage: ami-builder [flags] <disk image> <name> <description> <region> <bucket> <key file> [<topic ARN> <release version> <image version>]")
	flag.PrintDefaults()
	os.Exit(1)
}

func main() {
	sharedWriter := &logWriter{
		writer: os.Stderr,
	}

	logger := log.New(sharedWriter, "", log.LstdFlags)

	public := flag.Bool("public", false, "Make the AMI(s) and copy them to all regions")
	publicSnapshot := flag.Bool("publicsnap", false, "Make the snapshot behind the source AMI public")
	sriov := flag.Bool("sriov", false, "Enable SR-IOV networking support on the AMI")
	ena := flag.Bool("ena", false, "Enable ENA networking support on the AMI")
	arm64 := flag.Bool("arm64", false, "Register the AMI with the arm64 architecture instead of x86_64")
	reportPath := flag.String("o", "", "Path to write a YAML report of the created AMIs")

	flag.Parse()

	args := flag.Args()
	if len(args) != 6 && len(args) != 9 {
		usage("expected 6 or 9 positional arguments")
	}

	architecture := resources.AmiArchitectureX8664
	if *arm64 {
		architecture = resources.AmiArchitectureArm64
	}

	options := config.Options{
		DiskImagePath:   args[0],
		Name:            args[1],
		Description:     args[2],
		Region:          args[3],
		Bucket:          args[4],
		Public:          *public,
		PublicSnapshot:  *publicSnapshot,
		SriovNetSupport: *sriov,
		EnaSupport:      *ena,
		Architecture:    architecture,
	}
	keyFilePath := args[5]
	if len(args) == 9 {
		options.TopicARN = args[6]
		options.ReleaseVersion = args[7]
		options.ImageVersion = args[8]
	}

	if _, err := os.Stat(options.DiskImagePath); os.IsNotExist(err) {
		logger.Fatalf("disk image not found at: %s", options.DiskImagePath)
	}

	creds, err := config.LoadCredentials(keyFilePath)
	if err != nil {
		logger.Fatalf("Error loading credentials: %s", err)
	}

	ds := driverset.NewAPIDriverSet(sharedWriter, creds, options.Region)
	p := publisher.NewMultiRegionPublisher(sharedWriter, options)

	amis, err := p.Publish(context.Background(), ds, options.DiskImagePath)
	if err != nil {
		logger.Fatalf("Error publishing AMIs: %s", err)
	}

	for _, ami := range amis.GetAll() {
		fmt.Printf("Created AMI in %s region: %s\n", ami.Region, ami.ID)
	}

	if *reportPath != "" {
		reportFile, err := os.Create(*reportPath)
		if err != nil {
			logger.Fatalf("Error creating report file: %s", err)
		}

		r := report.New(options.Name, options.ReleaseVersion, options.ImageVersion, amis.GetAll())
		if err := r.Write(reportFile); err != nil {
			logger.Fatalf("Error writing report: %s", err)
		}

		if err := reportFile.Close(); err != nil {
			logger.Fatalf("Error closing report file: %s", err)
		}
	}

	logger.Println("Publishing finished successfully")
}

type logWriter struct {
	sync.Mutex
	writer io.Writer
}

func (l *logWriter) Write(message []byte) (int, error) {
	l.Lock()
	defer l.Unlock()

	return l.writer.Write(message)
}
