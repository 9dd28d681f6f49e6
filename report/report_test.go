package report_test

import (
	"bytes"

	"ami-builder/report"
	"ami-builder/resources"

	. "github.com/onsi/ginkgo/v2"
	. "github.com/onsi/gomega"
	yaml "gopkg.in/yaml.v2"
)

var _ = Describe("Report", func() {
	amis := []resources.Ami{
		{ID: "ami-1", Region: "us-east-1"},
		{ID: "ami-2", Region: "eu-west-1"},
	}

	It("writes one image entry per AMI", func() {
		r := report.New("My Image", "13.1", "20260825", amis)

		var out bytes.Buffer
		Expect(r.Write(&out)).To(Succeed())

		var parsed report.Report
		Expect(yaml.Unmarshal(out.Bytes(), &parsed)).To(Succeed())
		Expect(parsed).To(Equal(report.Report{
			Name:           "My Image",
			ReleaseVersion: "13.1",
			ImageVersion:   "20260825",
			Images: []report.Image{
				{Region: "us-east-1", AmiID: "ami-1"},
				{Region: "eu-west-1", AmiID: "ami-2"},
			},
		}))
	})

	It("omits the version fields when unset", func() {
		r := report.New("My Image", "", "", amis)

		var out bytes.Buffer
		Expect(r.Write(&out)).To(Succeed())
		Expect(out.String()).ToNot(ContainSubstring("release_version"))
		Expect(out.String()).ToNot(ContainSubstring("image_version"))
	})
})
