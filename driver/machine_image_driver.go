package driver

import (
	"encoding/hex"
	"fmt"
	"io"
	"log"
	"os"
	"time"

	"ami-builder/awsapi"
	"ami-builder/manifest"
	"ami-builder/resources"

	uuid "github.com/satori/go.uuid"
)

// ChunkSize is the fixed part size for multipart uploads. Every part is
// exactly this long except the final one.
const ChunkSize = 10 * 1024 * 1024

// presignExpiry is shared by every presigned URL embedded in a manifest,
// computed relative to manifest construction time.
const presignExpiry = 7 * 24 * time.Hour

var _ resources.MachineImageDriver = &APIMachineImageDriver{}

// APIMachineImageDriver uploads a disk image to S3 in fixed-size parts and
// describes them with an import manifest.
type APIMachineImageDriver struct {
	client   *awsapi.Client
	region   string
	logger   *log.Logger
	progress io.Writer
}

func NewMachineImageDriver(logDest io.Writer, client *awsapi.Client, region string) *APIMachineImageDriver {
	return &APIMachineImageDriver{
		client:   client,
		region:   region,
		logger:   log.New(logDest, "APIMachineImageDriver ", log.LstdFlags),
		progress: logDest,
	}
}

// Create uploads the image under a fresh random prefix and returns the
// uploaded manifest's path. If any part fails after its retries, the whole
// upload aborts; parts already uploaded are not cleaned up.
func (d *APIMachineImageDriver) Create(driverConfig resources.MachineImageDriverConfig) (resources.MachineImage, error) {
	// The nonce is the only namespacing between concurrent builds.
	prefix := hex.EncodeToString(uuid.NewV4().Bytes())

	f, err := os.Open(driverConfig.MachineImagePath)
	if err != nil {
		return resources.MachineImage{}, fmt.Errorf("opening machine image: %s", err)
	}
	defer f.Close() //nolint:errcheck

	fi, err := f.Stat()
	if err != nil {
		return resources.MachineImage{}, fmt.Errorf("determining machine image size: %s", err)
	}
	size := fi.Size()

	manifestPath := fmt.Sprintf("/%s/manifest.xml", prefix)
	selfDestructURL, err := d.client.PresignS3URL(d.region, "DELETE", driverConfig.BucketName, manifestPath, presignExpiry)
	if err != nil {
		return resources.MachineImage{}, fmt.Errorf("presigning manifest self-destruct URL: %s", err)
	}

	partCount := manifest.PartCount(size, ChunkSize)
	b := manifest.NewBuilder(size, partCount, selfDestructURL)

	d.logger.Printf("uploading %s to s3://%s/%s/ in %d part(s)\n",
		driverConfig.MachineImagePath, driverConfig.BucketName, prefix, partCount)
	fmt.Fprintf(d.progress, "Uploading image") //nolint:errcheck

	buf := make([]byte, ChunkSize)
	for index := int64(0); index < partCount; index++ {
		start := index * ChunkSize
		chunk := buf
		if remaining := size - start; remaining < ChunkSize {
			chunk = buf[:remaining]
		}

		if _, err := io.ReadFull(f, chunk); err != nil {
			return resources.MachineImage{}, fmt.Errorf("reading machine image: %s", err)
		}

		partPath := fmt.Sprintf("/%s/part%d", prefix, index)
		if err := d.client.S3PutWithRetry(d.region, driverConfig.BucketName, partPath, chunk); err != nil {
			return resources.MachineImage{}, fmt.Errorf("uploading part %d: %s", index, err)
		}
		fmt.Fprintf(d.progress, ".") //nolint:errcheck

		part := manifest.Part{
			Index: index,
			Start: start,
			End:   start + int64(len(chunk)) - 1,
			Key:   fmt.Sprintf("%s/part%d", prefix, index),
		}
		if part.HeadURL, err = d.client.PresignS3URL(d.region, "HEAD", driverConfig.BucketName, partPath, presignExpiry); err != nil {
			return resources.MachineImage{}, fmt.Errorf("presigning part %d HEAD URL: %s", index, err)
		}
		if part.GetURL, err = d.client.PresignS3URL(d.region, "GET", driverConfig.BucketName, partPath, presignExpiry); err != nil {
			return resources.MachineImage{}, fmt.Errorf("presigning part %d GET URL: %s", index, err)
		}
		if part.DeleteURL, err = d.client.PresignS3URL(d.region, "DELETE", driverConfig.BucketName, partPath, presignExpiry); err != nil {
			return resources.MachineImage{}, fmt.Errorf("presigning part %d DELETE URL: %s", index, err)
		}

		b.AddPart(part)
	}
	fmt.Fprintf(d.progress, " done.\n") //nolint:errcheck

	d.logger.Printf("uploading volume manifest to %s\n", manifestPath)
	if err := d.client.S3PutWithRetry(d.region, driverConfig.BucketName, manifestPath, b.Bytes()); err != nil {
		return resources.MachineImage{}, fmt.Errorf("uploading manifest: %s", err)
	}

	return resources.MachineImage{
		ManifestPath: manifestPath,
		SizeBytes:    size,
	}, nil
}
