// Package bio provides the genetic code, FASTA parsing and simple
// sequence transformations (transcription, translation, reverse
// complement, protein mass).
package bio

import (
	"bytes"
	"strings"
)

// Stop is the amino acid value of a stop codon in RNACodonTable.
const Stop = "Stop"

// WaterMass is the monoisotopic mass of a water molecule in Daltons.
const WaterMass = 18.01056

var (
	// RNACodonTable maps RNA codons (capital letters) to single letter
	// amino acid codes or Stop.
	RNACodonTable = map[string]string{
		"UUU": "F", "CUU": "L", "AUU": "I", "GUU": "V",
		"UUC": "F", "CUC": "L", "AUC": "I", "GUC": "V",
		"UUA": "L", "CUA": "L", "AUA": "I", "GUA": "V",
		"UUG": "L", "CUG": "L", "AUG": "M", "GUG": "V",
		"UCU": "S", "CCU": "P", "ACU": "T", "GCU": "A",
		"UCC": "S", "CCC": "P", "ACC": "T", "GCC": "A",
		"UCA": "S", "CCA": "P", "ACA": "T", "GCA": "A",
		"UCG": "S", "CCG": "P", "ACG": "T", "GCG": "A",
		"UAU": "Y", "CAU": "H", "AAU": "N", "GAU": "D",
		"UAC": "Y", "CAC": "H", "AAC": "N", "GAC": "D",
		"UAA": Stop, "CAA": "Q", "AAA": "K", "GAA": "E",
		"UAG": Stop, "CAG": "Q", "AAG": "K", "GAG": "E",
		"UGU": "C", "CGU": "R", "AGU": "S", "GGU": "G",
		"UGC": "C", "CGC": "R", "AGC": "S", "GGC": "G",
		"UGA": Stop, "CGA": "R", "AGA": "R", "GGA": "G",
		"UGG": "W", "CGG": "R", "AGG": "R", "GGG": "G"}

	// AminoAcidCodons maps amino acids (and Stop) to the codons
	// translating to them.
	AminoAcidCodons = map[string][]string{
		"A":  {"GCG", "GCA", "GCU", "GCC"},
		"C":  {"UGC", "UGU"},
		"D":  {"GAU", "GAC"},
		"E":  {"GAG", "GAA"},
		"F":  {"UUU", "UUC"},
		"G":  {"GGA", "GGU", "GGG", "GGC"},
		"H":  {"CAC", "CAU"},
		"I":  {"AUC", "AUA", "AUU"},
		"K":  {"AAA", "AAG"},
		"L":  {"UUG", "CUA", "CUC", "CUU", "UUA", "CUG"},
		"M":  {"AUG"},
		"N":  {"AAC", "AAU"},
		"P":  {"CCU", "CCC", "CCA", "CCG"},
		"Q":  {"CAA", "CAG"},
		"R":  {"CGC", "AGA", "AGG", "CGA", "CGG", "CGU"},
		"S":  {"AGC", "AGU", "UCU", "UCG", "UCC", "UCA"},
		Stop: {"UAA", "UAG", "UGA"},
		"T":  {"ACU", "ACA", "ACC", "ACG"},
		"V":  {"GUC", "GUG", "GUU", "GUA"},
		"W":  {"UGG"},
		"Y":  {"UAU", "UAC"}}

	// MonoisotopicMass maps amino acids to their monoisotopic residue
	// masses in Daltons.
	MonoisotopicMass = map[byte]float64{
		'A': 71.03711, 'C': 103.00919, 'D': 115.02694, 'E': 129.04259,
		'F': 147.06841, 'G': 57.02146, 'H': 137.05891, 'I': 113.08406,
		'K': 128.09496, 'L': 113.08406, 'M': 131.04049, 'N': 114.04293,
		'P': 97.05276, 'Q': 128.05858, 'R': 156.10111, 'S': 87.03203,
		'T': 101.04768, 'V': 99.06841, 'W': 186.07931, 'Y': 163.06333}

	complement = map[byte]byte{'A': 'T', 'T': 'A', 'C': 'G', 'G': 'C'}
)

// Transcribe converts a DNA string into RNA replacing every T with U.
func Transcribe(dna string) string {
	return strings.Replace(dna, "T", "U", -1)
}

// Translate translates an RNA string into the protein string.
// Translation ends at the first stop codon, the rest of the sequence
// is ignored. Error is returned if sequence is not divisible by three
// or if an unknown codon is encountered before the stop.
func Translate(rna string) (string, error) {
	var buffer bytes.Buffer

	if len(rna)%3 != 0 {
		return "", &InvalidLengthError{Length: len(rna)}
	}

	for i := 0; i < len(rna); i += 3 {
		aa, ok := RNACodonTable[rna[i:i+3]]
		if !ok {
			return "", &UnknownCodonError{Codon: rna[i : i+3], Pos: i}
		}
		if aa == Stop {
			break
		}
		buffer.WriteString(aa)
	}
	return buffer.String(), nil
}

// IsStopCodon tests if the string is a stop-codon (RNA alphabet,
// capital letters).
func IsStopCodon(codon string) bool {
	return RNACodonTable[codon] == Stop
}

// CodonsFor returns the codons coding for the amino acid aa (or Stop).
// The returned slice is a copy.
func CodonsFor(aa string) []string {
	codons := AminoAcidCodons[aa]
	if codons == nil {
		return nil
	}
	return append([]string(nil), codons...)
}

// ReverseComplement returns the reverse complement of a DNA string.
func ReverseComplement(dna string) (string, error) {
	n := len(dna)
	out := make([]byte, n)
	for i := 0; i < n; i++ {
		c, ok := complement[dna[n-1-i]]
		if !ok {
			return "", &UnknownBaseError{Base: dna[n-1-i], Pos: n - 1 - i}
		}
		out[i] = c
	}
	return string(out), nil
}

// ProteinMass returns the sum of monoisotopic residue masses of a
// protein string.
func ProteinMass(protein string) (mass float64, err error) {
	for i := 0; i < len(protein); i++ {
		m, ok := MonoisotopicMass[protein[i]]
		if !ok {
			return 0, &UnknownResidueError{Residue: protein[i], Pos: i}
		}
		mass += m
	}
	return
}

// PeptideMass is ProteinMass plus one water molecule, i.e. the mass of
// a free peptide.
func PeptideMass(protein string) (float64, error) {
	m, err := ProteinMass(protein)
	if err != nil {
		return 0, err
	}
	return m + WaterMass, nil
}

// Wrap inputs a string and wraps it so string length is n characters
// or less.
func Wrap(seq string, n int) string {
	var b strings.Builder
	for i := 0; i < len(seq); i += n {
		end := i + n
		if end > len(seq) {
			end = len(seq)
		}
		b.WriteString(seq[i:end])
		b.WriteByte('\n')
	}
	return b.String()
}
