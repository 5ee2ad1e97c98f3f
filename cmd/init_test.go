package cmd

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/rahulagarwal0605/pomgen/internal/project"
)

func TestInitCmd_NewProject(t *testing.T) {
	tests := []struct {
		name    string
		cmd     InitCmd
		dirName string
		want    *project.Project
	}{
		{
			name:    "name from directory",
			cmd:     InitCmd{Version: "0.1.0-SNAPSHOT"},
			dirName: "my-lib",
			want:    &project.Project{Name: "my-lib", Version: "0.1.0-SNAPSHOT"},
		},
		{
			name:    "explicit flags",
			cmd:     InitCmd{Name: "lib", Version: "1.0", Group: "com.example", Description: "A lib"},
			dirName: "ignored",
			want:    &project.Project{Name: "lib", Version: "1.0", Group: "com.example", Description: "A lib"},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, tt.cmd.newProject(tt.dirName))
		})
	}
}

func TestInitCmd_Run(t *testing.T) {
	dir := filepath.Join(t.TempDir(), "my-lib")
	require.NoError(t, os.MkdirAll(dir, 0755))
	globals := &GlobalOptions{Project: filepath.Join(dir, "project.yaml")}

	cmd := &InitCmd{Version: "0.1.0-SNAPSHOT", Group: "com.example"}
	require.NoError(t, cmd.Run(globals, testLogger(), testContext()))

	p, err := project.Load(globals.Project)
	require.NoError(t, err)
	assert.Equal(t, "my-lib", p.Name)
	assert.Equal(t, "0.1.0-SNAPSHOT", p.Version)
	assert.Equal(t, "com.example", p.Group)

	t.Run("refuses to overwrite", func(t *testing.T) {
		assert.Error(t, cmd.Run(globals, testLogger(), testContext()))
	})

	t.Run("force overwrites", func(t *testing.T) {
		force := &InitCmd{Force: true, Name: "renamed", Version: "2.0"}
		require.NoError(t, force.Run(globals, testLogger(), testContext()))

		p, err := project.Load(globals.Project)
		require.NoError(t, err)
		assert.Equal(t, "renamed", p.Name)
		assert.Equal(t, "renamed", p.Group)
	})

	t.Run("rejects empty version", func(t *testing.T) {
		other := &GlobalOptions{Project: filepath.Join(t.TempDir(), "project.yaml")}
		assert.Error(t, (&InitCmd{}).Run(other, testLogger(), testContext()))
	})
}
