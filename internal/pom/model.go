// Package pom builds and renders Maven project descriptors.
package pom

import (
	"context"
	"encoding/xml"
	"fmt"
	"strings"

	"github.com/rahulagarwal0605/pomgen/internal/logger"
	"github.com/rahulagarwal0605/pomgen/internal/project"
	"github.com/rahulagarwal0605/pomgen/internal/scm"
)

// Model is the descriptor document. Field order is element order.
type Model struct {
	XMLName        xml.Name `xml:"project"`
	Xmlns          string   `xml:"xmlns,attr,omitempty"`
	XmlnsXsi       string   `xml:"xmlns:xsi,attr,omitempty"`
	SchemaLocation string   `xml:"xsi:schemaLocation,attr,omitempty"`

	ModelVersion string       `xml:"modelVersion"`
	GroupID      string       `xml:"groupId"`
	ArtifactID   string       `xml:"artifactId"`
	Version      string       `xml:"version"`
	Name         string       `xml:"name"`
	Description  string       `xml:"description,omitempty"`
	SCM          *SCM         `xml:"scm,omitempty"`
	Dependencies Dependencies `xml:"dependencies,omitempty"`
	Repositories Repositories `xml:"repositories,omitempty"`
}

// Dependency is a Maven coordinate.
type Dependency struct {
	GroupID    string `xml:"groupId"`
	ArtifactID string `xml:"artifactId"`
	Version    string `xml:"version,omitempty"`
}

// Repository is an artifact repository entry.
type Repository struct {
	ID  string `xml:"id"`
	URL string `xml:"url"`
}

// Dependencies encodes as <dependencies> wrapping one <dependency> per entry.
// An empty list omits the wrapper.
type Dependencies []Dependency

func (d Dependencies) MarshalXML(e *xml.Encoder, start xml.StartElement) error {
	return e.EncodeElement(struct {
		Items []Dependency `xml:"dependency"`
	}{d}, start)
}

func (d *Dependencies) UnmarshalXML(dec *xml.Decoder, start xml.StartElement) error {
	var list struct {
		Items []Dependency `xml:"dependency"`
	}
	if err := dec.DecodeElement(&list, &start); err != nil {
		return err
	}
	*d = list.Items
	return nil
}

// Repositories encodes as <repositories> wrapping one <repository> per entry.
type Repositories []Repository

func (r Repositories) MarshalXML(e *xml.Encoder, start xml.StartElement) error {
	return e.EncodeElement(struct {
		Items []Repository `xml:"repository"`
	}{r}, start)
}

func (r *Repositories) UnmarshalXML(dec *xml.Decoder, start xml.StartElement) error {
	var list struct {
		Items []Repository `xml:"repository"`
	}
	if err := dec.DecodeElement(&list, &start); err != nil {
		return err
	}
	*r = list.Items
	return nil
}

// SCM is the <scm> element.
type SCM struct {
	Connection          string `xml:"connection,omitempty"`
	DeveloperConnection string `xml:"developerConnection,omitempty"`
	Tag                 string `xml:"tag,omitempty"`
	URL                 string `xml:"url,omitempty"`
}

// Build maps a project description onto a descriptor model.
// SCM metadata comes from <root>/.git and is omitted when unavailable
// or when the project has no root.
func Build(ctx context.Context, p *project.Project) (*Model, error) {
	if err := p.Validate(); err != nil {
		return nil, fmt.Errorf("build model: %w", err)
	}

	m := &Model{
		Xmlns:          pomNamespace,
		XmlnsXsi:       xsiNamespace,
		SchemaLocation: pomSchemaLocation,
		ModelVersion:   ModelVersion,
		GroupID:        p.GroupID(),
		ArtifactID:     p.Name,
		Version:        p.Version,
		Name:           p.Name,
		Description:    p.Description,
		Repositories:   make(Repositories, 0, len(p.Repositories)+len(defaultRepositories)),
	}

	for _, dep := range p.Dependencies {
		m.Dependencies = append(m.Dependencies, NewDependency(dep.ID, dep.Version))
	}

	// User repositories first; defaults are always appended, even on id clashes.
	for _, repo := range p.Repositories {
		m.Repositories = append(m.Repositories, Repository{ID: repo.ID, URL: repo.URL})
	}
	m.Repositories = append(m.Repositories, DefaultRepositories()...)

	if p.Root != "" {
		if rec, ok := scm.ForRoot(ctx, p.Root); ok {
			m.SCM = newSCM(rec)
		}
	}

	logger.Log(ctx).Debug().
		Str("group_id", m.GroupID).
		Str("artifact_id", m.ArtifactID).
		Int("dependencies", len(m.Dependencies)).
		Int("repositories", len(m.Repositories)).
		Bool("scm", m.SCM != nil).
		Msg("Built descriptor model")

	return m, nil
}

// NewDependency splits "group/artifact" into coordinates.
// Without a group prefix the artifact doubles as the group.
func NewDependency(id, version string) Dependency {
	group, artifact, ok := strings.Cut(id, "/")
	if !ok {
		group, artifact = id, id
	}
	return Dependency{GroupID: group, ArtifactID: artifact, Version: version}
}

// ID returns the "group/artifact" identifier, collapsing it when both match.
func (d Dependency) ID() string {
	if d.GroupID == d.ArtifactID {
		return d.ArtifactID
	}
	return d.GroupID + "/" + d.ArtifactID
}

func newSCM(rec scm.Record) *SCM {
	return &SCM{
		Connection:          rec.Connection,
		DeveloperConnection: rec.DeveloperConnection,
		Tag:                 rec.Tag,
		URL:                 rec.URL,
	}
}
