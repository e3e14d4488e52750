package main

import (
	"fmt"
	"github.com/bokysan/basez/internal/args"
	"github.com/bokysan/basez/internal/commands/codec"
	"github.com/bokysan/basez/internal/commands/version"
	bzFlags "github.com/bokysan/basez/internal/flags"
	"github.com/bokysan/basez/internal/util"
	"github.com/jessevdk/go-flags"
	"github.com/pkg/errors"
	"os"
	"path"
)

const (
	// ErrConfigFileDoesNotExist is raised when configuration file cannot be found
	ErrConfigFileDoesNotExist = flags.ErrInvalidTag + 1
)

// BaseZ is the main executable
type BaseZ struct {
	parser *flags.Parser
}

// NewBaseZ will create a new instance of BaseZ and initialize the parser
func NewBaseZ() *BaseZ {
	executablePath := path.Base(os.Args[0])

	bz := &BaseZ{
		parser: flags.NewNamedParser(executablePath, flags.HelpFlag|flags.PrintErrors),
	}

	bz.setupGeneral()
	bz.setupVersion()
	bz.setupEncode()
	bz.setupDecode()

	return bz
}

// setupGeneral will configure general options
func (bz *BaseZ) setupGeneral() {
	if _, err := bz.parser.AddGroup("General", "General options", &args.General); err != nil {
		err = errors.WithStack(err)
		util.MustErrorNilOrExit(err)
	}
	args.General.ConfigurationFile = bz.loadConfiguration
}

// setupVersion adds the `version` command
func (bz *BaseZ) setupVersion() {
	cmd := &version.Command{}
	_, err := bz.parser.AddCommand(
		"version",
		"Print the version",
		"Print the application version and exit",
		cmd,
	)
	util.MustErrorNilOrExit(err)
}

// setupEncode adds the `encode` command
func (bz *BaseZ) setupEncode() {
	cmd := codec.NewEncodeCommand()
	_, err := bz.parser.AddCommand(
		"encode",
		"Encode data",
		"Encode DATA (a literal, a file with --file, or stdin) and print the text to stdout",
		cmd,
	)
	util.MustErrorNilOrExit(err)
}

// setupDecode adds the `decode` command
func (bz *BaseZ) setupDecode() {
	cmd := codec.NewDecodeCommand()
	_, err := bz.parser.AddCommand(
		"decode",
		"Decode data",
		"Decode DATA (a literal, a file with --file, or stdin) and print the raw bytes to stdout",
		cmd,
	)
	util.MustErrorNilOrExit(err)
}

// loadConfiguration is invoked by the parser when it encounters `--config`
func (bz *BaseZ) loadConfiguration(file string) error {
	if _, err := os.Stat(file); os.IsNotExist(err) {
		return &flags.Error{
			Type:    ErrConfigFileDoesNotExist,
			Message: fmt.Sprintf("Configuration file %s does not exist.", file),
		}
	}

	args.General.ConfigurationFilePath = file
	return bzFlags.NewYamlParser(bz.parser).ParseFile(file)
}

// Run parses the command line and executes the selected command
func (bz *BaseZ) Run(arguments []string) error {
	_, err := bz.parser.ParseArgs(arguments)
	return err
}

// main parses the command line, runs the command and exits with the matching exit code
func main() {
	util.MustErrorNilOrExit(NewBaseZ().Run(os.Args[1:]))
}
