// Command aurorac is the Aurora compiler's command-line front end: it parses
// argv, loads an optional build profile, and hands off to internal/driver.
package main

import (
	"fmt"
	"os"
	"strings"

	"aurora/internal/config"
	"aurora/internal/driver"
)

const usage = `Usage: aurorac [flags|options] <input file>

Flags:
------
-h, --help       Displays usage information (ie. this text).
-v, --version    Displays the current compiler version.

Options:
--------
-o,  --outpath    Sets the path compiled output is written to. Defaults to
                   the input file's name with its extension replaced by ".o".
--emit-ll         Additionally writes the emitted module's textual LLVM IR
                   to the given path.
-p,  --profile    Sets the path to the build profile to load. Defaults to
                   "aurora.toml" in the current directory.
`

func printUsage(exitCode int) {
	fmt.Print(usage)
	os.Exit(exitCode)
}

func argumentError(format string, args ...interface{}) {
	fmt.Print("argument error: ", fmt.Sprintf(format, args...), "\n\n")
	printUsage(1)
}

// argParser walks os.Args[1:], splitting them into flags, value-taking
// options, and a single positional input path.
type argParser struct {
	args []string
	ndx  int
}

var options = map[string]struct{}{
	"o":        {},
	"-outpath": {},
	"-emit-ll": {},
	"p":        {},
	"-profile": {},
}

// nextArg returns the next argument's name (empty for a positional), its
// value (empty for a flag), and whether an argument was found at all.
func (ap *argParser) nextArg() (string, string, bool) {
	if ap.ndx >= len(ap.args) {
		return "", "", false
	}

	arg := ap.args[ap.ndx]
	ap.ndx++

	if !strings.HasPrefix(arg, "-") {
		return "", arg, true
	}

	name := arg[1:]
	if _, ok := options[name]; ok {
		if ap.ndx < len(ap.args) && !strings.HasPrefix(ap.args[ap.ndx], "-") {
			value := ap.args[ap.ndx]
			ap.ndx++
			return name, value, true
		}
		argumentError("option %s requires an argument", strings.TrimLeft(name, "-"))
	}

	return name, "", true
}

type cliArgs struct {
	inputPath   string
	outputPath  string
	emitLLPath  string
	profilePath string
}

func useArg(a *cliArgs, name, value string) {
	switch name {
	case "h", "-help":
		printUsage(0)
	case "v", "-version":
		fmt.Println("aurorac", driver.Version)
		os.Exit(0)
	case "o", "-outpath":
		a.outputPath = value
	case "-emit-ll":
		a.emitLLPath = value
	case "p", "-profile":
		a.profilePath = value
	case "":
		if a.inputPath != "" {
			argumentError("input file specified multiple times")
		}
		a.inputPath = value
	default:
		argumentError("unknown flag: %s", name)
	}
}

func parseArgs() *cliArgs {
	a := &cliArgs{}
	ap := argParser{args: os.Args[1:]}

	for {
		name, value, ok := ap.nextArg()
		if !ok {
			break
		}
		useArg(a, name, value)
	}

	if a.inputPath == "" {
		argumentError("an input file must be specified")
	}

	if a.outputPath == "" {
		a.outputPath = defaultOutputPath(a.inputPath)
	}
	if a.profilePath == "" {
		a.profilePath = "aurora.toml"
	}

	return a
}

func defaultOutputPath(inputPath string) string {
	base := inputPath
	if i := strings.LastIndex(base, "."); i > strings.LastIndexAny(base, `/\`) {
		base = base[:i]
	}
	return base + ".o"
}

func main() {
	a := parseArgs()

	prof, err := config.Load(a.profilePath)
	if err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
	if a.emitLLPath == "" && prof.EmitLL {
		a.emitLLPath = strings.TrimSuffix(a.outputPath, ".o") + ".ll"
	}

	os.Exit(driver.Run(driver.Options{
		InputPath:  a.inputPath,
		OutputPath: a.outputPath,
		EmitLLPath: a.emitLLPath,
		Profile:    prof,
	}))
}
