package pom

// ModelVersion is the only POM model version produced.
const ModelVersion = "4.0.0"

// Namespace attributes written on the root element.
const (
	pomNamespace      = "http://maven.apache.org/POM/4.0.0"
	xsiNamespace      = "http://www.w3.org/2001/XMLSchema-instance"
	pomSchemaLocation = "http://maven.apache.org/POM/4.0.0 http://maven.apache.org/maven-v4_0_0.xsd"
)

// PropertiesHeader is the comment line that opens pom.properties.
const PropertiesHeader = "Leiningen"

// Disclaimer is appended after the descriptor body.
const Disclaimer = `
<!-- This file was autogenerated by pomgen.
  Please do not edit it directly; instead edit project.yaml and regenerate it.
  It should not be considered canonical data. For more information see
  https://github.com/rahulagarwal0605/pomgen -->
`

// defaultRepositories are appended after user repositories in this order.
var defaultRepositories = [...]Repository{
	{ID: "central", URL: "http://repo1.maven.org/maven2"},
	{ID: "clojure-snapshots", URL: "http://build.clojure.org/snapshots"},
	{ID: "clojars", URL: "http://clojars.org/repo/"},
}

// DefaultRepositories returns a copy of the fixed repository table.
func DefaultRepositories() []Repository {
	out := make([]Repository, len(defaultRepositories))
	copy(out, defaultRepositories[:])
	return out
}
