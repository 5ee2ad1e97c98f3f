package pom

import (
	packageurl "github.com/package-url/packageurl-go"
)

// PURL returns the Maven package URL of the dependency,
// e.g. pkg:maven/org.clojure/clojure@1.2.0.
func (d Dependency) PURL() string {
	return packageurl.NewPackageURL(packageurl.TypeMaven, d.GroupID, d.ArtifactID, d.Version, nil, "").ToString()
}
