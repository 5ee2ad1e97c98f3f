// Package cmd provides CLI command implementations.
package cmd

// GlobalOptions contains global CLI options.
type GlobalOptions struct {
	Project string `help:"Project description file" short:"f" env:"POMGEN_PROJECT" default:"${defaultProjectFile}"`
}
