package pom

import (
	"bytes"
	"encoding/xml"
	"fmt"

	"github.com/magiconair/properties"
)

// RenderDescriptor encodes the model as an indented XML document.
// With withDisclaimer set the output ends with Disclaimer.
func RenderDescriptor(m *Model, withDisclaimer bool) ([]byte, error) {
	var buf bytes.Buffer
	buf.WriteString(xml.Header)

	enc := xml.NewEncoder(&buf)
	enc.Indent("", "  ")
	if err := enc.Encode(m); err != nil {
		return nil, fmt.Errorf("encode descriptor: %w", err)
	}
	buf.WriteByte('\n')

	if withDisclaimer {
		buf.WriteString(Disclaimer)
	}
	return buf.Bytes(), nil
}

// RenderProperties writes version, groupId and artifactId in Java properties format.
func RenderProperties(m *Model) ([]byte, error) {
	p := properties.NewProperties()
	p.DisableExpansion = true
	p.WriteSeparator = "="

	for _, kv := range [][2]string{
		{"version", m.Version},
		{"groupId", m.GroupID},
		{"artifactId", m.ArtifactID},
	} {
		if _, _, err := p.Set(kv[0], kv[1]); err != nil {
			return nil, fmt.Errorf("set %s: %w", kv[0], err)
		}
	}

	var buf bytes.Buffer
	buf.WriteString("#" + PropertiesHeader + "\n")
	if _, err := p.Write(&buf, properties.UTF8); err != nil {
		return nil, fmt.Errorf("encode properties: %w", err)
	}
	return buf.Bytes(), nil
}
