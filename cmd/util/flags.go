package util

import (
	"flag"
	"fmt"
	"log"
	"os"
	"path"
	"runtime"
	"strings"

	"github.com/TuftsBCB/submat/submat"
)

var (
	FlagCpu = runtime.NumCPU()

	FlagVerbose = false

	FlagScale = submat.DefaultScale

	FlagFasta = false
)

func init() {
	log.SetFlags(0)
}

type commonFlag struct {
	set, init func()
	use       bool
}

var commonFlags = map[string]*commonFlag{
	"cpu": {
		set: func() {
			flag.IntVar(&FlagCpu, "cpu", FlagCpu,
				"The max number of CPUs to use.")
		},
		init: func() {
			runtime.GOMAXPROCS(FlagCpu)
		},
	},
	"verbose": {
		set: func() {
			flag.BoolVar(&FlagVerbose, "verbose", FlagVerbose,
				"When set, progress and diagnostics are printed to stderr.")
		},
	},
	"scale": {
		set: func() {
			flag.Float64Var(&FlagScale, "scale", FlagScale,
				"The multiplier applied to log10-odds ratios before they\n"+
					"are rounded to integer scores.")
		},
		init: func() {
			if FlagScale <= 0 {
				Fatalf("The scale must be positive, but got %f.", FlagScale)
			}
		},
	},
	"fasta": {
		set: func() {
			flag.BoolVar(&FlagFasta, "fasta", FlagFasta,
				"When set, alignments are read as aligned FASTA files\n"+
					"instead of one lower case sequence per line.")
		},
	},
}

func FlagUse(names ...string) {
	for _, name := range names {
		commonFlags[name].use = true
	}
}

// MatrixConfig returns the configuration for building substitution
// matrices from the "scale" and "cpu" flags.
func MatrixConfig() submat.Config {
	return submat.Config{
		Scale:   FlagScale,
		Workers: FlagCpu,
	}
}

// Usage just calls `flag.Usage`. It's included here to avoid
// an extra import to `flag` just to call Usage.
func Usage() {
	flag.Usage()
}

// Arg just calls `flag.Arg`. It's included here to avoid
// an extra import to `flag` just to call Arg.
func Arg(i int) string {
	return flag.Arg(i)
}

// NArg just calls `flag.NArg`. It's included here to avoid
// an extra import to `flag` just to call NArg.
func NArg() int {
	return flag.NArg()
}

func FlagParse(positional string, desc string) {
	for _, fl := range commonFlags {
		if fl.use {
			fl.set()
		}
	}

	flag.Usage = func() {
		log.Printf("Usage: %s [flags] %s\n\n",
			path.Base(os.Args[0]), positional)
		if len(desc) > 0 {
			log.Printf("%s\n", desc)
		}
		flag.VisitAll(func(fl *flag.Flag) {
			var def string
			if len(fl.DefValue) > 0 {
				def = fmt.Sprintf(" (default: %s)", fl.DefValue)
			}

			usage := strings.Replace(fl.Usage, "\n", "\n    ", -1)
			log.Printf("-%s%s\n", fl.Name, def)
			log.Printf("    %s\n", usage)
		})
		os.Exit(1)
	}
	flag.Parse()

	for _, fl := range commonFlags {
		if fl.use && fl.init != nil {
			fl.init()
		}
	}
}
