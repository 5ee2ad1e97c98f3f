// Package constants provides shared constants used across the pomgen codebase.
//
// Constants are organized by category:
//   - File names: Input and output file names
//   - Directory names: Git and jar metadata layout
//   - Git layout: Files read from a .git directory
//   - Message strings: Strings printed by commands
package constants

// File names
const (
	// ProjectFileName is the default name of the project description file.
	ProjectFileName = "project.yaml"

	// PomFileName is the name of the generated descriptor.
	PomFileName = "pom.xml"

	// PropertiesFileName is the name of the generated properties file.
	PropertiesFileName = "pom.properties"
)

// Directory names
const (
	// GitDirName is the name of the git metadata directory in a working tree.
	GitDirName = ".git"

	// MetaInfMavenDir is the jar metadata directory that holds descriptors.
	MetaInfMavenDir = "META-INF/maven"
)

// Git layout
const (
	// HeadFile is the file holding the current ref or commit.
	HeadFile = "HEAD"

	// ConfigFile is the repository-local git config.
	ConfigFile = "config"

	// PackedRefsFile holds refs that were packed by git gc.
	PackedRefsFile = "packed-refs"

	// OriginRemote is the conventional name of the upstream remote.
	OriginRemote = "origin"
)

// Message strings
const (
	// MsgNoSCM is printed when a project has no usable git metadata.
	MsgNoSCM = "No SCM metadata"

	// MsgNoDependencies is printed when a project declares no dependencies.
	MsgNoDependencies = "No dependencies"
)
