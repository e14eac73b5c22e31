// Command binance2parqet converts a Binance order history export into a file
// Parqet imports as a Bitpanda export.
package main

import (
	"context"
	"flag"
	"fmt"
	"os"

	"github.com/etnz/parqetimport/cmd"
	"github.com/posener/complete/v2"
)

func main() {
	convert := cmd.NewConvertCmd()
	convert.SetFlags(flag.CommandLine)
	flag.Usage = func() {
		fmt.Fprint(flag.CommandLine.Output(), convert.Usage())
		flag.PrintDefaults()
	}

	// answers shell completion requests, then exits.
	complete.CommandLine()

	flag.Parse()
	os.Exit(int(convert.Execute(context.Background(), flag.CommandLine)))
}
