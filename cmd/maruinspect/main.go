// Command maruinspect is a terminal browser over a decoded Maru module
// file: its declared objects, functions, globals, interned strings,
// and bytecode table entry sizes.
package main

import (
	"flag"
	"fmt"
	"os"

	"github.com/Ki11erRabbit/Maru/format"
)

func main() {
	var (
		path = flag.String("module", "", "Path to a Maru module file")
		list = flag.Bool("list", false, "Print a summary and exit instead of opening the browser")
	)
	flag.Parse()

	if *path == "" {
		fmt.Fprintln(os.Stderr, "Usage: maruinspect -module <file.maru> [-list]")
		os.Exit(1)
	}

	data, err := os.ReadFile(*path)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error: read %s: %v\n", *path, err)
		os.Exit(1)
	}

	m, err := format.Decode(data)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error: decode %s: %v\n", *path, err)
		os.Exit(1)
	}

	if *list {
		printSummary(*path, m)
		return
	}

	if err := runInspector(*path, m); err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}
}

func printSummary(path string, m *format.Module) {
	fmt.Printf("Module: %s (v%d.%d.%d)\n", path, m.MajorVersion, m.MinorVersion, m.PatchVersion)
	fmt.Printf("Objects:   %d\n", len(m.Objects))
	fmt.Printf("Functions: %d\n", len(m.Functions))
	fmt.Printf("Globals:   %d\n", len(m.Globals))
	fmt.Printf("Strings:   %d\n", len(m.Strings.Entries))
	fmt.Printf("Bytecode entries: %d\n", len(m.Bytecode.Entries))
}
