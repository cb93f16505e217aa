package main

import (
	"fmt"
	"os"

	"github.com/xiles84/suffixlz/internal/diag"
	"github.com/xiles84/suffixlz/internal/factor"
	"github.com/xiles84/suffixlz/internal/report"
	"github.com/xiles84/suffixlz/internal/suffixtree"
	"github.com/xiles84/suffixlz/internal/verify"
	"gopkg.in/alecthomas/kingpin.v2"
)

var (
	version = "head" // set on release builds

	app = kingpin.New("suffixlz", "Bounded-cost LZ factorization over an annotated suffix tree")

	inputPath = app.Arg("input", "Path to the file to factorize").Required().ExistingFile()
	cost      = app.Arg("cost", "Maximum number of times a position may be reused as a copy source").Required().Int()

	quiet       = app.Flag("quiet", "Hide progress and status output").Short('q').Bool()
	verbose     = app.Flag("verbose", "Display additional diagnostic output").Short('v').Bool()
	selfTest    = app.Flag("self-test", "Verify tree construction against independent oracles, then stop without factorizing").Bool()
	verifyAfter = app.Flag("verify-after", "Combined with --self-test, factorize after the self-test passes instead of stopping").Bool()
	stats       = app.Flag("stats", "Print a summary table unconditionally (by default it only prints under --verbose)").Bool()
)

func main() {
	app.HelpFlag.Short('h')
	app.Version(version)
	app.VersionFlag.Short('V')

	kingpin.MustParse(app.Parse(os.Args[1:]))

	r := report.New(os.Stdout, os.Stderr, *verbose, *quiet)

	if err := run(r); err != nil {
		r.Fatalf("%s", err)
		os.Exit(diag.ExitCode(err))
	}
}

func run(r *report.Reporter) error {
	input, err := os.ReadFile(*inputPath)
	if err != nil {
		return diag.Wrap(diag.IOFailure, err, "reading input file")
	}
	if len(input) == 0 {
		return diag.Newf(diag.InputInvalid, "%s is empty", *inputPath)
	}

	r.Debugf("building suffix tree over %d bytes", len(input))
	tree, err := suffixtree.Build(input)
	if err != nil {
		return err
	}
	tree.SetCostCeiling(*cost)

	if *selfTest {
		r.Infof("running self-test against independent oracles")
		if err := verify.SelfTest(input, tree); err != nil {
			return err
		}
		r.Infof("self-test passed")
		if !*verifyAfter {
			return nil
		}
	}

	f := factor.New(tree, r.Progress)
	phrases, err := f.Run()
	if err != nil {
		return err
	}

	replayed := verify.ReplayPhrases(phrases)
	if string(replayed) != string(input) {
		return diag.Newf(diag.Invariant, "phrase replay does not reconstruct the input (got %d bytes, want %d)", len(replayed), len(input))
	}

	for _, p := range phrases {
		next := 0
		if p.HasLiteral {
			next = int(p.Next)
		}
		fmt.Fprintf(os.Stdout, "(%d,%d,%d)\n", p.Source, p.Length, next)
	}

	if *stats || *verbose {
		r.Table(summarize(input, phrases, tree))
	}

	fmt.Fprintf(os.Stdout, "%d phrases\n", len(phrases))
	return nil
}

func summarize(input []byte, phrases []factor.Phrase, tree *suffixtree.Tree) report.Stats {
	s := report.Stats{InputSize: len(input), PhraseCount: len(phrases)}
	for _, p := range phrases {
		if p.Length == 0 {
			s.LiteralPositions++
		}
	}
	for pos := 1; pos <= tree.InputLength(); pos++ {
		if c := tree.CostAt(pos); c > s.MaxCost {
			s.MaxCost = c
		}
		if tree.DistAt(pos) == 0 {
			s.ExhaustedSources++
		}
	}
	return s
}
