package cmd

import (
	"bytes"
	"encoding/xml"
	"os"
	"path/filepath"
	"testing"

	"github.com/magiconair/properties"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/rahulagarwal0605/pomgen/internal/pom"
)

func TestPomCmd_Run(t *testing.T) {
	globals, root := setupProject(t, testProjectYAML, githubGitFiles())

	cmd := &PomCmd{}
	require.NoError(t, cmd.Run(globals, testLogger(), testContext()))

	data, err := os.ReadFile(filepath.Join(root, "pom.xml"))
	require.NoError(t, err)
	assert.True(t, bytes.HasSuffix(data, []byte(pom.Disclaimer)))

	var m pom.Model
	require.NoError(t, xml.Unmarshal(data, &m))
	assert.Equal(t, "4.0.0", m.ModelVersion)
	assert.Equal(t, "com.example", m.GroupID)
	assert.Equal(t, "proj", m.ArtifactID)
	require.NotNil(t, m.SCM)
	assert.Equal(t, "scm:git:git://github.com/alice/proj.git", m.SCM.Connection)

	assert.NoFileExists(t, filepath.Join(root, "pom.properties"))
}

func TestPomCmd_NoGitNoDisclaimer(t *testing.T) {
	globals, _ := setupProject(t, testProjectYAML, nil)
	output := filepath.Join(t.TempDir(), "out", "custom-pom.xml")

	cmd := &PomCmd{Output: output, NoDisclaimer: true, Properties: true}
	require.NoError(t, cmd.Run(globals, testLogger(), testContext()))

	data, err := os.ReadFile(output)
	require.NoError(t, err)
	assert.NotContains(t, string(data), "autogenerated")
	assert.NotContains(t, string(data), "<scm>")

	props, err := properties.LoadFile(filepath.Join(filepath.Dir(output), "pom.properties"), properties.UTF8)
	require.NoError(t, err)
	assert.Equal(t, "1.0.0", props.GetString("version", ""))
	assert.Equal(t, "com.example", props.GetString("groupId", ""))
	assert.Equal(t, "proj", props.GetString("artifactId", ""))
}

func TestPomCmd_MetaInf(t *testing.T) {
	globals, root := setupProject(t, testProjectYAML, nil)
	classes := filepath.Join(t.TempDir(), "classes")

	cmd := &PomCmd{MetaInf: classes}
	require.NoError(t, cmd.Run(globals, testLogger(), testContext()))

	dir := filepath.Join(classes, "META-INF", "maven", "com.example", "proj")
	copied, err := os.ReadFile(filepath.Join(dir, "pom.xml"))
	require.NoError(t, err)
	original, err := os.ReadFile(filepath.Join(root, "pom.xml"))
	require.NoError(t, err)
	assert.Equal(t, original, copied)

	props, err := os.ReadFile(filepath.Join(dir, "pom.properties"))
	require.NoError(t, err)
	assert.True(t, bytes.HasPrefix(props, []byte("#Leiningen\n")))
}

func TestPomCmd_Errors(t *testing.T) {
	t.Run("invalid project", func(t *testing.T) {
		globals, _ := setupProject(t, "name: proj\n", nil)
		assert.Error(t, (&PomCmd{}).Run(globals, testLogger(), testContext()))
	})

	t.Run("unwritable output", func(t *testing.T) {
		globals, root := setupProject(t, testProjectYAML, nil)
		blocker := filepath.Join(root, "blocker")
		require.NoError(t, os.WriteFile(blocker, nil, 0644))

		err := (&PomCmd{Output: filepath.Join(blocker, "pom.xml")}).Run(globals, testLogger(), testContext())
		assert.Error(t, err)
	})

	t.Run("path traversal in group", func(t *testing.T) {
		globals, _ := setupProject(t, "name: proj\nversion: \"1\"\ngroup: \"..\"\n", nil)
		err := (&PomCmd{MetaInf: t.TempDir()}).Run(globals, testLogger(), testContext())
		assert.Error(t, err)
	})
}
