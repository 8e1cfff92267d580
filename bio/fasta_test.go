package bio

import (
	"errors"
	"strings"
	"testing"
)

const fasta1 = `>Taxon1
CCTGCGGAAGATCGGCACTAGAATAGCCAGAACCGTTTCTCTGAGGCTTCCGGCCTTCCC
TCCCACTAATAATTCTGAGG
>Taxon2
CCATCGGTAGCGCATCCTTAGTCCAATTAAGTCCCTATCCAGGCGCTCCGCCGAAGGTCT
ATATCCATTTGTCAGCAGACACGC
>Taxon3
CCACCCTCGTGGTATGGCTAGGCATTCAGGAACCGGAGAACGCTTCAGACCAGCCCGGAC
TGGGAACCTGCGGGCAGTAGGTGGAAT
`

func TestParseLines(t *testing.T) {
	seqs, err := ParseLines([]string{">s1", "ACGT", ">s2", "TT"})
	if err != nil {
		t.Fatal(err)
	}
	m := seqs.Map()
	if len(m) != 2 || m["s1"] != "ACGT" || m["s2"] != "TT" {
		t.Errorf("wrong parse result: %v", m)
	}
	if names := seqs.Names(); names[0] != "s1" || names[1] != "s2" {
		t.Error("wrong order:", names)
	}
}

func TestParseLinesEmpty(t *testing.T) {
	seqs, err := ParseLines(nil)
	if err != nil {
		t.Fatal(err)
	}
	if len(seqs) != 0 {
		t.Error("expected no sequences, got", len(seqs))
	}

	seqs, err = ParseLines([]string{">a", ">b", "AC"})
	if err != nil {
		t.Fatal(err)
	}
	if s, ok := seqs.Get("a"); !ok || s != "" {
		t.Errorf("expected empty sequence for a, got %q, %v", s, ok)
	}
	if s, _ := seqs.Get("b"); s != "AC" {
		t.Errorf("wrong sequence for b: %q", s)
	}
	if _, ok := seqs.Get("c"); ok {
		t.Error("c should not be found")
	}
}

func TestParseLinesLeadingMarkerOnly(t *testing.T) {
	seqs, err := ParseLines([]string{">name>", "A"})
	if err != nil {
		t.Fatal(err)
	}
	if seqs[0].Name != "name>" {
		t.Errorf("only the leading marker should be removed: %q", seqs[0].Name)
	}
}

func TestParseLinesDuplicate(t *testing.T) {
	_, err := ParseLines([]string{">s1", "AC", ">s2", "G", ">s1", "T"})
	var derr *DuplicateIdentifierError
	if !errors.As(err, &derr) {
		t.Fatalf("expected DuplicateIdentifierError, got %v", err)
	}
	if derr.Name != "s1" || derr.Line != 5 {
		t.Errorf("wrong duplicate error: %+v", derr)
	}
}

func TestParseLinesMalformed(t *testing.T) {
	for _, lines := range [][]string{
		{"", ">s1", "A"},
		{"ACGT", ">s1"},
		{">", "A"},
	} {
		_, err := ParseLines(lines)
		var merr *MalformedInputError
		if !errors.As(err, &merr) {
			t.Errorf("%q: expected MalformedInputError, got %v", lines, err)
		}
	}
}

func TestParseFasta(t *testing.T) {
	seqs, err := ParseFasta(strings.NewReader(fasta1))
	if err != nil {
		t.Fatal(err)
	}
	if len(seqs) != 3 {
		t.Fatalf("expected 3 sequences, got %d", len(seqs))
	}
	if seqs[2].Name != "Taxon3" {
		t.Error("wrong name:", seqs[2].Name)
	}
	if seqs[0].Sequence != "CCTGCGGAAGATCGGCACTAGAATAGCCAGAACCGTTTCTCTGAGGCTTCCGGCCTTCCCTCCCACTAATAATTCTGAGG" {
		t.Error("wrong sequence:", seqs[0].Sequence)
	}
}

func TestParseFastaCRLF(t *testing.T) {
	seqs, err := ParseFasta(strings.NewReader(">a\r\nAC\r\nGT\r\n"))
	if err != nil {
		t.Fatal(err)
	}
	if seqs[0].Name != "a" || seqs[0].Sequence != "ACGT" {
		t.Errorf("wrong record: %+v", seqs[0])
	}
}

func TestSequencesString(t *testing.T) {
	seqs := Sequences{
		{Name: "a", Sequence: strings.Repeat("A", 85)},
		{Name: "b", Sequence: "C"},
	}
	want := ">a\n" + strings.Repeat("A", 80) + "\nAAAAA\n>b\nC"
	if s := seqs.String(); s != want {
		t.Errorf("wrong FASTA output: %q", s)
	}
	back, err := ParseFasta(strings.NewReader(seqs.String()))
	if err != nil {
		t.Fatal(err)
	}
	if back[0].Sequence != seqs[0].Sequence || back[1].Sequence != "C" {
		t.Error("FASTA output doesn't parse back")
	}
}

func TestParseLinesDuplicateAfterEmpty(t *testing.T) {
	// a record without body lines is still declared
	_, err := ParseLines([]string{">a", ">b", "AC", ">a"})
	var derr *DuplicateIdentifierError
	if !errors.As(err, &derr) || derr.Name != "a" || derr.Line != 4 {
		t.Errorf("expected duplicate a at line 4, got %v", err)
	}
}
