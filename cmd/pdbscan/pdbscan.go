package main

import (
	"flag"
	"fmt"
	"os"
	"path"

	. "github.com/andrew-torda/pdbmodel/pdb/cmmn"
	"github.com/andrew-torda/pdbmodel/pkg/pdbscan"
)

func usage() int {
	fmt.Fprintln(os.Stderr, "usage:", path.Base(os.Args[0]), "[opts] directory")
	flag.PrintDefaults()
	return ExitUsageError
}

func main() {
	var flags pdbscan.CmdFlag
	var outfile string
	flag.IntVar(&flags.NReader, "r", pdbscan.NReaderDflt, "num files read at once")
	flag.IntVar(&flags.MaxFiles, "d", 0, "max num files to read, 0 for all")
	flag.StringVar(&flags.LogFile, "l", "", "log file for dropped records")
	flag.StringVar(&outfile, "o", "", "output file name, default stdout")
	flag.Parse()

	if flag.NArg() != 1 {
		os.Exit(usage())
	}
	if err := pdbscan.Mymain(&flags, flag.Arg(0), outfile); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(ExitFailure)
	}
	os.Exit(ExitSuccess)
}
