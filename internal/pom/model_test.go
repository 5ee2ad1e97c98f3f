package pom

import (
	"context"
	"errors"
	"io"
	"os"
	"path/filepath"
	"testing"

	"github.com/google/go-cmp/cmp"
	"github.com/rs/zerolog"

	pgerrors "github.com/rahulagarwal0605/pomgen/internal/errors"
	"github.com/rahulagarwal0605/pomgen/internal/logger"
	"github.com/rahulagarwal0605/pomgen/internal/project"
)

func testContext() context.Context {
	log := zerolog.New(io.Discard)
	return logger.WithLogger(context.Background(), &log)
}

func testProject(root string) *project.Project {
	return &project.Project{
		Name:        "proj",
		Version:     "1.0.0",
		Group:       "com.example",
		Description: "An example",
		Dependencies: []project.Dependency{
			{ID: "org.clojure/clojure", Version: "1.2.0"},
			{ID: "foo", Version: "0.1"},
		},
		Repositories: project.Repositories{
			{ID: "internal", URL: "https://repo.example.com/maven"},
		},
		Root: root,
	}
}

func initGitDir(t *testing.T, root string, files map[string]string) {
	t.Helper()
	for name, content := range files {
		p := filepath.Join(root, ".git", filepath.FromSlash(name))
		if err := os.MkdirAll(filepath.Dir(p), 0755); err != nil {
			t.Fatal(err)
		}
		if err := os.WriteFile(p, []byte(content), 0644); err != nil {
			t.Fatal(err)
		}
	}
}

func TestBuild_NoGit(t *testing.T) {
	m, err := Build(testContext(), testProject(t.TempDir()))
	if err != nil {
		t.Fatalf("Build() error = %v", err)
	}

	want := &Model{
		Xmlns:          pomNamespace,
		XmlnsXsi:       xsiNamespace,
		SchemaLocation: pomSchemaLocation,
		ModelVersion:   "4.0.0",
		GroupID:        "com.example",
		ArtifactID:     "proj",
		Version:        "1.0.0",
		Name:           "proj",
		Description:    "An example",
		Dependencies: []Dependency{
			{GroupID: "org.clojure", ArtifactID: "clojure", Version: "1.2.0"},
			{GroupID: "foo", ArtifactID: "foo", Version: "0.1"},
		},
		Repositories: []Repository{
			{ID: "internal", URL: "https://repo.example.com/maven"},
			{ID: "central", URL: "http://repo1.maven.org/maven2"},
			{ID: "clojure-snapshots", URL: "http://build.clojure.org/snapshots"},
			{ID: "clojars", URL: "http://clojars.org/repo/"},
		},
	}
	if diff := cmp.Diff(want, m); diff != "" {
		t.Errorf("Build() mismatch (-want +got):\n%s", diff)
	}
}

func TestBuild_WithGit(t *testing.T) {
	root := t.TempDir()
	initGitDir(t, root, map[string]string{
		"HEAD":            "ref: refs/heads/main\n",
		"refs/heads/main": "abc123\n",
		"config":          "[remote \"origin\"]\n\turl = git@github.com:alice/proj.git\n",
	})

	m, err := Build(testContext(), testProject(root))
	if err != nil {
		t.Fatalf("Build() error = %v", err)
	}

	want := &SCM{
		Connection:          "scm:git:git://github.com/alice/proj.git",
		DeveloperConnection: "scm:git:ssh://git@github.com/alice/proj.git",
		Tag:                 "abc123",
		URL:                 "http://github.com/alice/proj",
	}
	if diff := cmp.Diff(want, m.SCM); diff != "" {
		t.Errorf("Build() SCM mismatch (-want +got):\n%s", diff)
	}
}

func TestBuild_EmptyRootSkipsSCM(t *testing.T) {
	p := testProject("")

	m, err := Build(testContext(), p)
	if err != nil {
		t.Fatalf("Build() error = %v", err)
	}
	if m.SCM != nil {
		t.Errorf("Build() with no root attached SCM %+v", m.SCM)
	}
}

func TestBuild_DefaultsNeverOmitted(t *testing.T) {
	p := testProject(t.TempDir())
	p.Repositories = project.Repositories{
		{ID: "central", URL: "https://mirror.example.com/central"},
	}

	m, err := Build(testContext(), p)
	if err != nil {
		t.Fatalf("Build() error = %v", err)
	}

	var ids []string
	for _, r := range m.Repositories {
		ids = append(ids, r.ID)
	}
	want := []string{"central", "central", "clojure-snapshots", "clojars"}
	if diff := cmp.Diff(want, ids); diff != "" {
		t.Errorf("repository ids mismatch (-want +got):\n%s", diff)
	}
	if m.Repositories[0].URL != "https://mirror.example.com/central" {
		t.Errorf("user repository should come first, got %+v", m.Repositories[0])
	}
}

func TestBuild_GroupDefaultsToName(t *testing.T) {
	p := testProject(t.TempDir())
	p.Group = ""

	m, err := Build(testContext(), p)
	if err != nil {
		t.Fatalf("Build() error = %v", err)
	}
	if m.GroupID != "proj" {
		t.Errorf("GroupID = %q, want %q", m.GroupID, "proj")
	}
}

func TestBuild_InvalidProject(t *testing.T) {
	tests := []struct {
		name   string
		modify func(p *project.Project)
	}{
		{name: "missing name", modify: func(p *project.Project) { p.Name = "" }},
		{name: "missing version", modify: func(p *project.Project) { p.Version = "" }},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			p := testProject(t.TempDir())
			tt.modify(p)

			_, err := Build(testContext(), p)
			if !errors.Is(err, pgerrors.ErrMissingField) {
				t.Errorf("Build() error = %v, want ErrMissingField", err)
			}
		})
	}
}

func TestBuild_DoesNotShareDefaults(t *testing.T) {
	m, err := Build(testContext(), testProject(t.TempDir()))
	if err != nil {
		t.Fatal(err)
	}
	m.Repositories[len(m.Repositories)-1].URL = "mutated"

	if DefaultRepositories()[2].URL != "http://clojars.org/repo/" {
		t.Error("mutating a model must not change the default repository table")
	}
}

func TestNewDependency(t *testing.T) {
	tests := []struct {
		id      string
		version string
		want    Dependency
	}{
		{id: "org.clojure/clojure", version: "1.2.0", want: Dependency{GroupID: "org.clojure", ArtifactID: "clojure", Version: "1.2.0"}},
		{id: "foo", version: "1.0", want: Dependency{GroupID: "foo", ArtifactID: "foo", Version: "1.0"}},
		{id: "a/b/c", version: "2", want: Dependency{GroupID: "a", ArtifactID: "b/c", Version: "2"}},
	}

	for _, tt := range tests {
		t.Run(tt.id, func(t *testing.T) {
			got := NewDependency(tt.id, tt.version)
			if got != tt.want {
				t.Errorf("NewDependency(%q) = %+v, want %+v", tt.id, got, tt.want)
			}
		})
	}
}

func TestDependency_ID(t *testing.T) {
	tests := []struct {
		dep  Dependency
		want string
	}{
		{dep: Dependency{GroupID: "org.clojure", ArtifactID: "clojure"}, want: "org.clojure/clojure"},
		{dep: Dependency{GroupID: "foo", ArtifactID: "foo"}, want: "foo"},
	}

	for _, tt := range tests {
		t.Run(tt.want, func(t *testing.T) {
			if got := tt.dep.ID(); got != tt.want {
				t.Errorf("ID() = %q, want %q", got, tt.want)
			}
		})
	}
}

func TestDependency_PURL(t *testing.T) {
	tests := []struct {
		dep  Dependency
		want string
	}{
		{dep: NewDependency("org.clojure/clojure", "1.2.0"), want: "pkg:maven/org.clojure/clojure@1.2.0"},
		{dep: NewDependency("foo", "0.1"), want: "pkg:maven/foo/foo@0.1"},
		{dep: NewDependency("foo", ""), want: "pkg:maven/foo/foo"},
	}

	for _, tt := range tests {
		t.Run(tt.want, func(t *testing.T) {
			if got := tt.dep.PURL(); got != tt.want {
				t.Errorf("PURL() = %q, want %q", got, tt.want)
			}
		})
	}
}
