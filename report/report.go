// Package report renders the result of a build run as YAML, for consumption
// by whatever pipeline invoked the tool.
package report

import (
	"fmt"
	"io"

	"ami-builder/resources"
	yaml "gopkg.in/yaml.v2"
)

type Image struct {
	Region string `yaml:"region"`
	AmiID  string `yaml:"ami_id"`
}

type Report struct {
	Name           string  `yaml:"name"`
	ReleaseVersion string  `yaml:"release_version,omitempty"`
	ImageVersion   string  `yaml:"image_version,omitempty"`
	Images         []Image `yaml:"images"`
}

func New(name, releaseVersion, imageVersion string, amis []resources.Ami) Report {
	r := Report{
		Name:           name,
		ReleaseVersion: releaseVersion,
		ImageVersion:   imageVersion,
	}
	for _, ami := range amis {
		r.Images = append(r.Images, Image{Region: ami.Region, AmiID: ami.ID})
	}
	return r
}

func (r Report) Write(w io.Writer) error {
	out, err := yaml.Marshal(r)
	if err != nil {
		return fmt.Errorf("marshaling report: %s", err)
	}

	if _, err := w.Write(out); err != nil {
		return fmt.Errorf("writing report: %s", err)
	}
	return nil
}
