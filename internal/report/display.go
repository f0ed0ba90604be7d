package report

import (
	"bufio"
	"fmt"
	"math"
	"os"
	"strconv"
	"strings"

	"github.com/pterm/pterm"
)

// PrintDiagnostic renders a one-line `file:line:col: error: message` banner
// followed by the framed source excerpt the error's span covers. path is the
// source file the error came from; it is reopened here purely for display
// purposes (the compiler proper never re-reads a file once lexed).
func PrintDiagnostic(path string, err error) {
	cerr, ok := err.(*CompileError)
	if !ok {
		pterm.Error.Printfln("%s", err)
		return
	}

	if cerr.Span == nil {
		pterm.Error.Printfln("%s: %s", path, cerr.Message)
		return
	}

	pterm.Error.Printfln("%s:%d:%d: %s", path, cerr.Span.StartLine+1, cerr.Span.StartCol+1, cerr.Message)
	displaySourceText(path, cerr.Span)
}

// PrintBanner renders the compiler's startup banner: printed once, before
// the first pipeline stage runs, and only meant to orient a human reading
// the terminal.
func PrintBanner(version, target string) {
	pterm.FgLightGreen.Printfln("aurorac %s -> %s", version, target)
}

// PrintWarning renders a non-fatal diagnostic. Aurora's pipeline currently
// has no warning-producing stage, but the rendering path is kept alongside
// PrintDiagnostic so a future stage has somewhere to hang one without
// inventing a second console idiom.
func PrintWarning(path string, span *Span, message string) {
	if span == nil {
		pterm.Warning.Printfln("%s: %s", path, message)
		return
	}
	pterm.Warning.Printfln("%s:%d:%d: %s", path, span.StartLine+1, span.StartCol+1, message)
	displaySourceText(path, span)
}

// displaySourceText prints the source lines a span covers with a line-number
// gutter and caret underlining. Adapted from bootstrap/report/display.go's
// displaySourceText.
func displaySourceText(path string, span *Span) {
	file, err := os.Open(path)
	if err != nil {
		return
	}
	defer file.Close()

	var lines []string
	sc := bufio.NewScanner(file)
	for ln := 0; sc.Scan(); ln++ {
		if span.StartLine <= ln && ln <= span.EndLine {
			lines = append(lines, strings.ReplaceAll(sc.Text(), "\t", "    "))
		}
	}
	if len(lines) == 0 {
		return
	}

	minIndent := math.MaxInt32
	for _, line := range lines {
		indent := 0
		for _, c := range line {
			if c == ' ' {
				indent++
			} else {
				break
			}
		}
		if indent < minIndent {
			minIndent = indent
		}
	}
	if minIndent == math.MaxInt32 {
		minIndent = 0
	}

	maxLineNumLen := len(strconv.Itoa(span.EndLine + 1))
	lineNumFmt := "%-" + strconv.Itoa(maxLineNumLen) + "v | "

	for i, line := range lines {
		fmt.Printf(lineNumFmt, i+span.StartLine+1)
		trimmed := line
		if minIndent <= len(line) {
			trimmed = line[minIndent:]
		}
		fmt.Println(trimmed)

		fmt.Print(strings.Repeat(" ", maxLineNumLen), " | ")

		var prefix int
		if i == 0 {
			prefix = span.StartCol - minIndent
		}
		if prefix < 0 {
			prefix = 0
		}

		var suffix int
		if i == len(lines)-1 {
			suffix = len(line) - span.EndCol
		}
		if suffix < 0 {
			suffix = 0
		}

		fmt.Print(strings.Repeat(" ", prefix))
		carets := len(line) - suffix - prefix - minIndent
		if carets < 1 {
			carets = 1
		}
		fmt.Println(strings.Repeat("^", carets))
	}
	fmt.Println()
}
