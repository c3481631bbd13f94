// Command submat builds a log-odds substitution matrix from each alignment
// given and prints it as a table labeled by residue.
//
// An alignment file contains one lower case amino acid sequence per line
// (or aligned FASTA with -fasta). Every sequence must have the same length.
package main

import (
	"flag"
	"fmt"
	"os"
	"runtime/pprof"

	"github.com/TuftsBCB/submat/cmd/util"
	"github.com/TuftsBCB/submat/submat"
)

var (
	flagCpuProfile = ""
	flagGob        = ""
)

func init() {
	flag.StringVar(&flagCpuProfile, "cpuprofile", flagCpuProfile,
		"When set, a CPU profile will be written to the file provided.")
	flag.StringVar(&flagGob, "gob", flagGob,
		"When set, the matrix is also written to the file provided in\n"+
			"GOB format. Only one alignment may be given.")

	util.FlagUse("cpu", "verbose", "scale", "fasta")
	util.FlagParse("alignment-file [alignment-file ...]", "")
	util.AssertLeastNArg(1)
}

func main() {
	if len(flagGob) > 0 && util.NArg() != 1 {
		util.Fatalf("-gob requires exactly one alignment, but %d were given.",
			util.NArg())
	}
	if len(flagCpuProfile) > 0 {
		f := util.CreateFile(flagCpuProfile)
		pprof.StartCPUProfile(f)
		defer pprof.StopCPUProfile()
	}

	conf := util.MatrixConfig()
	util.Verbosef("Scale: %f, workers: %d\n", conf.Scale, conf.Workers)

	paths := flag.Args()
	progress := util.NewProgress(len(paths))
	for _, path := range paths {
		m, err := buildMatrix(conf, path)
		if err != nil {
			progress.JobDone(fmt.Errorf("[%s]: %s", path, err))
			continue
		}
		if len(paths) > 1 {
			fmt.Printf("# %s\n", path)
		}
		util.Assert(m.WriteTable(os.Stdout), "Could not write matrix")
		if len(flagGob) > 0 {
			util.MatrixWrite(flagGob, m)
		}
		progress.JobDone(nil)
	}
	if failed := progress.Close(); failed > 0 {
		if len(flagCpuProfile) > 0 {
			pprof.StopCPUProfile()
		}
		util.Fatalf("%d of %d alignments could not be read.",
			failed, len(paths))
	}
}

func buildMatrix(conf submat.Config, path string) (*submat.Matrix, error) {
	msa, err := util.AlignmentRead(path)
	if err != nil {
		return nil, err
	}
	util.Verbosef("\r%s: %d sequences of length %d\n",
		path, msa.NumSeqs(), msa.Len())

	m := conf.Build(msa)
	if !m.Symmetric() {
		util.Warnf("WARNING: matrix for '%s' is not symmetric.", path)
	}
	return m, nil
}
