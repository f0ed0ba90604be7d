// Package driver wires the pipeline stages together behind the surface the
// command-line tool presents: read a source file, lex, parse, check, emit,
// and write output — stopping and reporting at the first stage that fails.
package driver

import (
	"io/ioutil"
	"os"

	"aurora/internal/codegen"
	"aurora/internal/config"
	"aurora/internal/parser"
	"aurora/internal/report"
	"aurora/internal/sema"
)

// Version is the compiler's self-reported version string.
const Version = "0.1.0"

// Options captures everything the CLI parsed out of argv.
type Options struct {
	InputPath  string
	OutputPath string
	EmitLLPath string
	Profile    *config.Profile
}

// Run executes the full pipeline described by opts and returns a process
// exit code: 0 on success, 1 if any stage failed.
func Run(opts Options) int {
	report.PrintBanner(Version, opts.Profile.Target)

	src, err := ioutil.ReadFile(opts.InputPath)
	if err != nil {
		os.Stderr.WriteString(err.Error() + "\n")
		return 1
	}

	prog, err := parser.New(string(src)).Parse()
	if err != nil {
		report.PrintDiagnostic(opts.InputPath, err)
		return 1
	}

	if err := sema.Check(prog); err != nil {
		report.PrintDiagnostic(opts.InputPath, err)
		return 1
	}

	mod := codegen.Emit(prog)

	// Writing a native object file is an external collaborator's job (see
	// the compiler's scope notes); what this driver can do on its own is
	// hand the back end a verified textual IR module. -o always gets one;
	// --emit-ll additionally names a second copy for human inspection.
	if err := writeFile(opts.OutputPath, mod.String()); err != nil {
		os.Stderr.WriteString(err.Error() + "\n")
		return 1
	}

	if opts.EmitLLPath != "" {
		if err := writeFile(opts.EmitLLPath, mod.String()); err != nil {
			os.Stderr.WriteString(err.Error() + "\n")
			return 1
		}
	}

	return 0
}

func writeFile(path, content string) error {
	return ioutil.WriteFile(path, []byte(content), 0644)
}
