/*

Seqtools solves small molecular biology problems: it parses FASTA
files, transcribes, translates and reverse complements sequences,
finds motifs and computes Mendelian cross probabilities.

Translate every sequence of a FASTA file:

	seqtools translate sequences.fasta

Find a motif (1-based positions) in a remotely stored file:

	seqtools --url https://example.org/seq.fasta find --base 1 - 'N[^P][ST][^P]'

Probabilities of a cross as a bar chart:

	seqtools punnett Aa Aa --plot cross.png

To see all the options run:

	seqtools --help

*/
package main

import (
	"context"
	"encoding/json"
	"fmt"
	"io"
	"os"
	"time"

	"gopkg.in/alecthomas/kingpin.v2"

	"github.com/op/go-logging"

	"bitbucket.org/Davydov/seqtools/bio"
	"bitbucket.org/Davydov/seqtools/source"
	"bitbucket.org/Davydov/seqtools/store"
)

// These three variables are set during the compilation.
var githash = ""
var gitbranch = ""
var buildstamp = ""
var version = fmt.Sprintf("branch: %s, revision: %s, build time: %s", gitbranch, githash, buildstamp)

// Logger settings.
var log = logging.MustGetLogger("seqtools")
var formatter = logging.MustStringFormatter(`%{message}`)

// command-line options
var (
	// application
	app = kingpin.New("seqtools", "small molecular biology problem solver").Version(version)

	// input
	url      = app.Flag("url", "read FASTA input from URL instead of a file").String()
	cacheF   = app.Flag("cache", "cache downloaded files in a bolt database").String()
	cacheTTL = app.Flag("cachettl", "cache entry lifetime, 0 for no expiration").Default("168h").Duration()

	// output
	outLogF  = app.Flag("log", "write log to a file").String()
	jsonF    = app.Flag("json", "write json output to a file").String()
	logLevel = app.Flag("loglevel", "set loglevel "+
		"('critical', 'error', 'warning', 'notice', 'info', 'debug')").
		Default("notice").
		Enum("critical", "error", "warning", "notice", "info", "debug")

	// fasta
	fastaCmd  = app.Command("fasta", "list sequences of a FASTA file")
	fastaFile = fastaCmd.Arg("fasta", "FASTA file").String()

	// transcribe
	transcribeCmd  = app.Command("transcribe", "transcribe DNA sequences into RNA")
	transcribeFile = transcribeCmd.Arg("fasta", "FASTA file").String()

	// translate
	translateCmd  = app.Command("translate", "translate DNA or RNA sequences into protein")
	translateFile = translateCmd.Arg("fasta", "FASTA file").String()

	// reverse complement
	revcCmd  = app.Command("revc", "reverse complement DNA sequences")
	revcFile = revcCmd.Arg("fasta", "FASTA file").String()

	// motif search
	findCmd     = app.Command("find", "find (overlapping) motif positions")
	findFile    = findCmd.Arg("fasta", "FASTA file, ignored with --url").Required().String()
	findPattern = findCmd.Arg("pattern", "motif, regular expression by default").Required().String()
	findBase    = findCmd.Flag("base", "position of the first character").Default("0").Int()
	findLiteral = findCmd.Flag("literal", "treat the motif as a literal string").Bool()

	// protein mass
	massCmd     = app.Command("mass", "monoisotopic mass of a protein")
	massProtein = massCmd.Arg("protein", "protein string").Required().String()
	massWater   = massCmd.Flag("water", "add a water molecule").Bool()

	// punnett square
	punnettCmd   = app.Command("punnett", "offspring genotype probabilities")
	punnettF1    = punnettCmd.Arg("factor1", "alleles of the first parent, e.g. Aa").Required().String()
	punnettF2    = punnettCmd.Arg("factor2", "alleles of the second parent, e.g. aa").Required().String()
	punnettPlotF = punnettCmd.Flag("plot", "write a bar chart to a file (png, svg, pdf)").String()

	// mendel's first law
	iprbCmd = app.Command("iprb", "probability of a dominant phenotype offspring")
	iprbK   = iprbCmd.Arg("k", "homozygous dominant").Required().Int()
	iprbM   = iprbCmd.Arg("m", "heterozygous").Required().Int()
	iprbN   = iprbCmd.Arg("n", "homozygous recessive").Required().Int()

	// independent alleles
	liaCmd = app.Command("lia", "probability of at least n AaBb organisms in generation k")
	liaK   = liaCmd.Arg("k", "generation").Required().Int()
	liaN   = liaCmd.Arg("n", "minimum number of AaBb organisms").Required().Int()
)

// readSequences reads FASTA sequences either from the --url or from
// the file.
func readSequences(fn string) bio.Sequences {
	var cache *store.Store
	if *url != "" && *cacheF != "" {
		var err error
		cache, err = store.Open(*cacheF, *cacheTTL)
		if err != nil {
			log.Fatal("Error opening cache:", err)
		}
		defer cache.Close()
	}

	lines, err := source.Lines(context.Background(), source.NewFetcher(cache), fn, *url)
	if err != nil {
		log.Fatal(err)
	}
	seqs, err := bio.ParseLines(lines)
	if err != nil {
		log.Fatal(err)
	}
	log.Infof("Read %d sequences", len(seqs))
	return seqs
}

// setupLogging configures the logging backend, it returns the log
// file (if any) to be closed by the caller.
func setupLogging() io.Closer {
	logging.SetFormatter(formatter)

	var backend *logging.LogBackend
	var closer io.Closer
	if *outLogF != "" {
		f, err := os.OpenFile(*outLogF, os.O_WRONLY|os.O_CREATE|os.O_APPEND, 0666)
		if err != nil {
			log.Fatal("Error creating log file:", err)
		}
		closer = f
		backend = logging.NewLogBackend(f, "", 0)
	} else {
		backend = logging.NewLogBackend(os.Stderr, "", 0)
	}
	logging.SetBackend(backend)

	level, err := logging.LogLevel(*logLevel)
	if err != nil {
		log.Fatal(err)
	}
	logging.SetLevel(level, "seqtools")
	logging.SetLevel(level, "source")
	logging.SetLevel(level, "store")
	return closer
}

// writeFile writes data to a new file fn.
func writeFile(fn string, data []byte) error {
	f, err := os.Create(fn)
	if err != nil {
		return err
	}
	if _, err := f.Write(data); err != nil {
		f.Close()
		return err
	}
	return f.Close()
}

func main() {
	command := kingpin.MustParse(app.Parse(os.Args[1:]))

	if closer := setupLogging(); closer != nil {
		defer closer.Close()
	}

	// print revision
	log.Info(version)

	// print commandline
	log.Info("Command line:", os.Args)

	startTime := time.Now()
	summary := &RunSummary{
		Version:     version,
		CommandLine: os.Args,
		Command:     command,
	}

	var err error
	switch command {
	case fastaCmd.FullCommand():
		summary.Results = listSequences(readSequences(*fastaFile))
	case transcribeCmd.FullCommand():
		summary.Results = transcribeSequences(readSequences(*transcribeFile))
	case translateCmd.FullCommand():
		summary.Results, err = translateSequences(readSequences(*translateFile))
	case revcCmd.FullCommand():
		summary.Results, err = reverseComplementSequences(readSequences(*revcFile))
	case findCmd.FullCommand():
		summary.Results, err = findMotif(readSequences(*findFile), *findPattern, *findBase, *findLiteral)
	case massCmd.FullCommand():
		summary.Results, err = proteinMass(*massProtein, *massWater)
	case punnettCmd.FullCommand():
		summary.Results, err = punnett(*punnettF1, *punnettF2, *punnettPlotF)
	case iprbCmd.FullCommand():
		summary.Results, err = dominant(*iprbK, *iprbM, *iprbN)
	case liaCmd.FullCommand():
		summary.Results, err = independentAlleles(*liaK, *liaN)
	}
	if err != nil {
		log.Fatal(err)
	}

	printResults(os.Stdout, summary.Results)

	deltaT := time.Since(startTime)
	log.Infof("Running time: %v", deltaT)
	summary.Time = deltaT.Seconds()

	// output summary in json format
	if *jsonF != "" {
		j, err := json.Marshal(summary)
		if err != nil {
			log.Error(err)
		} else {
			log.Debug(string(j))
			if err := writeFile(*jsonF, j); err != nil {
				log.Error("Error writing json output file:", err)
			}
		}
	}
}
