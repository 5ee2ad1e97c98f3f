package cmd

import (
	"context"
	"fmt"
	"os"
	"path/filepath"

	"github.com/otiai10/copy"
	"github.com/rs/zerolog"

	"github.com/rahulagarwal0605/pomgen/internal/constants"
	"github.com/rahulagarwal0605/pomgen/internal/pom"
	"github.com/rahulagarwal0605/pomgen/internal/utils"
)

// PomCmd writes pom.xml for the project.
type PomCmd struct {
	Output       string `help:"Descriptor path (default: <root>/pom.xml)" short:"o"`
	NoDisclaimer bool   `help:"Omit the autogenerated file comment" name:"no-disclaimer"`
	Properties   bool   `help:"Also write pom.properties next to the descriptor" short:"p"`
	MetaInf      string `help:"Also place pom.xml and pom.properties under DIR/META-INF/maven/<group>/<artifact>" name:"meta-inf" placeholder:"DIR"`
}

// Run executes the pom command.
func (c *PomCmd) Run(globals *GlobalOptions, log *zerolog.Logger, ctx context.Context) error {
	p, m, err := BuildModel(ctx, globals)
	if err != nil {
		return err
	}

	output := c.Output
	if output == "" {
		output = filepath.Join(p.Root, constants.PomFileName)
	}

	descriptor, err := pom.RenderDescriptor(m, !c.NoDisclaimer)
	if err != nil {
		return fmt.Errorf("render descriptor: %w", err)
	}
	if err := utils.WriteFile(output, descriptor); err != nil {
		return fmt.Errorf("write %s: %w", output, err)
	}
	log.Info().Str("path", output).Bool("scm", m.SCM != nil).Msg("Wrote descriptor")

	if !c.Properties && c.MetaInf == "" {
		fmt.Fprintf(os.Stdout, "Wrote %s\n", output)
		return nil
	}

	props, err := pom.RenderProperties(m)
	if err != nil {
		return fmt.Errorf("render properties: %w", err)
	}

	if c.Properties {
		path := filepath.Join(filepath.Dir(output), constants.PropertiesFileName)
		if err := utils.WriteFile(path, props); err != nil {
			return fmt.Errorf("write %s: %w", path, err)
		}
		log.Info().Str("path", path).Msg("Wrote properties")
	}

	if c.MetaInf != "" {
		if err := c.writeMetaInf(m, output, props, log); err != nil {
			return err
		}
	}

	fmt.Fprintf(os.Stdout, "Wrote %s\n", output)
	return nil
}

// writeMetaInf copies the descriptor and writes pom.properties into the jar metadata layout.
func (c *PomCmd) writeMetaInf(m *pom.Model, descriptorPath string, props []byte, log *zerolog.Logger) error {
	if utils.HasPathTraversal(m.GroupID) || utils.HasPathTraversal(m.ArtifactID) {
		return fmt.Errorf("refusing META-INF path for %s/%s", m.GroupID, m.ArtifactID)
	}

	dir := utils.MetaInfDir(c.MetaInf, m.GroupID, m.ArtifactID)
	if err := utils.CreateDir(dir, "META-INF"); err != nil {
		return err
	}

	dest := filepath.Join(dir, constants.PomFileName)
	if err := copy.Copy(descriptorPath, dest); err != nil {
		return fmt.Errorf("copy %s to %s: %w", descriptorPath, dest, err)
	}

	propsPath := filepath.Join(dir, constants.PropertiesFileName)
	if err := utils.WriteFile(propsPath, props); err != nil {
		return fmt.Errorf("write %s: %w", propsPath, err)
	}

	log.Info().Str("dir", dir).Msg("Wrote META-INF descriptor")
	return nil
}
