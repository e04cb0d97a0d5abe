// Command nsfplay is a terminal driver for the NSF core: it loads an NSF
// file, arms the interpreter via nsf.Load, and lets the user single-step or
// auto-step the resulting init/play sequence while inspecting registers and
// memory.
package main

import (
	"flag"
	"fmt"
	"os"

	tea "github.com/charmbracelet/bubbletea"

	"nsf6502/cpu"
	"nsf6502/mem"
	"nsf6502/nsf"
)

func main() {
	auto := flag.Bool("auto", false, "start auto-stepping at the NSF's play speed")
	flag.Usage = func() {
		fmt.Fprintf(os.Stderr, "usage: %s [-auto] <file.nsf>\n", os.Args[0])
		flag.PrintDefaults()
	}
	flag.Parse()

	if flag.NArg() != 1 {
		flag.Usage()
		os.Exit(2)
	}

	data, err := os.ReadFile(flag.Arg(0))
	if err != nil {
		fmt.Fprintln(os.Stderr, "nsfplay:", err)
		os.Exit(1)
	}

	c := cpu.New(&mem.Bus{})
	runner, err := nsf.Load(c, data)
	if err != nil {
		fmt.Fprintln(os.Stderr, "nsfplay:", err)
		os.Exit(1)
	}

	m := newModel(runner, *auto)
	if _, err := tea.NewProgram(m).Run(); err != nil {
		fmt.Fprintln(os.Stderr, "nsfplay:", err)
		os.Exit(1)
	}
}
