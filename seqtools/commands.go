package main

import (
	"fmt"
	"io"
	"strconv"
	"strings"

	"gonum.org/v1/plot"
	"gonum.org/v1/plot/plotter"
	"gonum.org/v1/plot/vg"

	"bitbucket.org/Davydov/seqtools/bio"
	"bitbucket.org/Davydov/seqtools/mendel"
	"bitbucket.org/Davydov/seqtools/motif"
)

// listSequences returns sequence lengths.
func listSequences(seqs bio.Sequences) []Result {
	res := make([]Result, 0, len(seqs))
	for _, seq := range seqs {
		res = append(res, Result{seq.Name, len(seq.Sequence)})
	}
	return res
}

func transcribeSequences(seqs bio.Sequences) []Result {
	res := make([]Result, 0, len(seqs))
	for _, seq := range seqs {
		res = append(res, Result{seq.Name, bio.Transcribe(seq.Sequence)})
	}
	return res
}

// translateSequences translates every sequence, DNA sequences are
// transcribed first.
func translateSequences(seqs bio.Sequences) ([]Result, error) {
	res := make([]Result, 0, len(seqs))
	for _, seq := range seqs {
		prot, err := bio.Translate(bio.Transcribe(strings.ToUpper(seq.Sequence)))
		if err != nil {
			return nil, fmt.Errorf("%s: %w", seq.Name, err)
		}
		log.Debugf("%s: %d nucleotides, %d amino acids", seq.Name, len(seq.Sequence), len(prot))
		res = append(res, Result{seq.Name, prot})
	}
	return res, nil
}

// reverseComplementSequences reverse complements every sequence,
// lowercase letters are accepted.
func reverseComplementSequences(seqs bio.Sequences) ([]Result, error) {
	res := make([]Result, 0, len(seqs))
	for _, seq := range seqs {
		rc, err := bio.ReverseComplement(strings.ToUpper(seq.Sequence))
		if err != nil {
			return nil, fmt.Errorf("%s: %w", seq.Name, err)
		}
		res = append(res, Result{seq.Name, rc})
	}
	return res, nil
}

// findMotif returns motif positions for every sequence.
func findMotif(seqs bio.Sequences, pattern string, base int, literal bool) ([]Result, error) {
	res := make([]Result, 0, len(seqs))
	for _, seq := range seqs {
		var pos []int
		if literal {
			pos = motif.FindOverlappingLiteral(seq.Sequence, pattern, base)
		} else {
			var err error
			pos, err = motif.FindOverlapping(seq.Sequence, pattern, base)
			if err != nil {
				return nil, fmt.Errorf("bad pattern: %w", err)
			}
		}
		log.Infof("%s: %d matches", seq.Name, len(pos))
		res = append(res, Result{seq.Name, pos})
	}
	return res, nil
}

func proteinMass(protein string, water bool) ([]Result, error) {
	var m float64
	var err error
	if water {
		m, err = bio.PeptideMass(protein)
	} else {
		m, err = bio.ProteinMass(protein)
	}
	if err != nil {
		return nil, err
	}
	return []Result{{"mass", m}}, nil
}

// punnett returns genotype probabilities and optionally plots them.
func punnett(f1, f2, plotF string) ([]Result, error) {
	o, err := mendel.PunnettSquare(f1, f2)
	if err != nil {
		return nil, err
	}
	log.Debugf("total probability: %v", o.Total())
	if plotF != "" {
		if err := plotOutcomes(o, f1+" x "+f2, plotF); err != nil {
			return nil, fmt.Errorf("error plotting: %w", err)
		}
		log.Infof("Chart written to %s", plotF)
	}
	res := make([]Result, 0, len(o))
	for _, g := range o.Keys() {
		res = append(res, Result{g, o[g]})
	}
	return res, nil
}

// plotOutcomes saves a bar chart of genotype probabilities.
func plotOutcomes(o mendel.Outcomes, title, fn string) error {
	p := plot.New()
	p.Title.Text = title
	p.Y.Label.Text = "probability"
	p.Y.Min = 0
	p.Y.Max = 1

	bars, err := plotter.NewBarChart(plotter.Values(o.Values()), vg.Points(30))
	if err != nil {
		return err
	}
	p.Add(bars)
	p.NominalX(o.Keys()...)

	return p.Save(4*vg.Inch, 4*vg.Inch, fn)
}

func dominant(k, m, n int) ([]Result, error) {
	p, err := mendel.DominantProbability(k, m, n)
	if err != nil {
		return nil, err
	}
	return []Result{{"probability", p}}, nil
}

func independentAlleles(k, n int) ([]Result, error) {
	p, err := mendel.IndependentAlleles(k, n)
	if err != nil {
		return nil, err
	}
	return []Result{{"probability", p}}, nil
}

// printResults prints results, one per line.
func printResults(w io.Writer, res []Result) {
	for _, r := range res {
		fmt.Fprintf(w, "%s\t%s\n", r.Name, formatValue(r.Value))
	}
}

func formatValue(v interface{}) string {
	switch v := v.(type) {
	case float64:
		return strconv.FormatFloat(v, 'f', 5, 64)
	case []int:
		s := make([]string, len(v))
		for i, p := range v {
			s[i] = strconv.Itoa(p)
		}
		return strings.Join(s, " ")
	}
	return fmt.Sprint(v)
}
