package main

import (
	"flag"
	"fmt"
	"os"
	"path"

	. "github.com/andrew-torda/pdbmodel/pdb/cmmn"
	"github.com/andrew-torda/pdbmodel/pkg/ssplot"
)

func usage() int {
	fmt.Fprintln(os.Stderr, "usage:", path.Base(os.Args[0]), "[opts] file.pdb")
	flag.PrintDefaults()
	return ExitUsageError
}

func main() {
	var flags ssplot.CmdFlag
	outfile := "ss.png"
	flag.IntVar(&flags.CellWidth, "c", ssplot.CellDflt, "pixels per residue")
	flag.StringVar(&flags.LogFile, "l", "", "log file for dropped records")
	flag.StringVar(&outfile, "o", outfile, "output png file")
	flag.Parse()

	if flag.NArg() != 1 {
		os.Exit(usage())
	}
	if err := ssplot.Mymain(&flags, flag.Arg(0), outfile); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(ExitFailure)
	}
	os.Exit(ExitSuccess)
}
