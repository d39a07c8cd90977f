package main

import (
	"flag"
	"fmt"
	"os"
	"path"

	. "github.com/andrew-torda/pdbmodel/pdb/cmmn"
	"github.com/andrew-torda/pdbmodel/pkg/pdbsum"
)

func usage() int {
	fmt.Fprintln(os.Stderr, "usage:", path.Base(os.Args[0]), "[opts] file.pdb | -w code")
	flag.PrintDefaults()
	return ExitUsageError
}

func main() {
	var flags pdbsum.CmdFlag
	var outfile string
	flag.StringVar(&flags.LogFile, "l", "", "log file for dropped records")
	flag.StringVar(&outfile, "o", "", "output file name, default stdout")
	flag.BoolVar(&flags.HTTP, "w", false, "fetch the code from the web")
	flag.IntVar(&flags.SiteNum, "s", 0, "mirror number for -w")
	flag.Parse()

	if flag.NArg() != 1 {
		os.Exit(usage())
	}
	if err := pdbsum.Mymain(&flags, flag.Arg(0), outfile); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(ExitFailure)
	}
	os.Exit(ExitSuccess)
}
