package bio

import (
	"bufio"
	"io"
	"strings"
)

// Sequence is a type which is intended for storing nucleotide or
// protein sequence with it's name.
type Sequence struct {
	Name     string
	Sequence string
}

// Sequences stores multiple sequences in the order they were read.
type Sequences []Sequence

// ParseLines builds sequences from FASTA lines without line
// terminators. A line starting with '>' declares a new sequence, any
// other line is appended to the last declared sequence.
func ParseLines(lines []string) (Sequences, error) {
	seqs := make(Sequences, 0, 10)
	seen := make(map[string]bool)
	for i, line := range lines {
		if strings.HasPrefix(line, ">") {
			name := line[1:]
			if name == "" {
				return nil, &MalformedInputError{Line: i + 1, Reason: "empty sequence name"}
			}
			if seen[name] {
				return nil, &DuplicateIdentifierError{Name: name, Line: i + 1}
			}
			seen[name] = true
			seqs = append(seqs, Sequence{Name: name})
			continue
		}
		if len(seqs) == 0 {
			return nil, &MalformedInputError{Line: i + 1, Reason: "sequence w/o prefix"}
		}
		seqs[len(seqs)-1].Sequence += line
	}
	return seqs, nil
}

// ParseFasta parses FASTA sequences from a reader. Leading and
// trailing whitespace is removed from every line.
func ParseFasta(rd io.Reader) (Sequences, error) {
	var lines []string
	scanner := bufio.NewScanner(rd)
	for scanner.Scan() {
		lines = append(lines, strings.TrimSpace(scanner.Text()))
	}
	if err := scanner.Err(); err != nil {
		return nil, err
	}
	return ParseLines(lines)
}

// Get returns the sequence with the given name.
func (seqs Sequences) Get(name string) (string, bool) {
	for _, seq := range seqs {
		if seq.Name == name {
			return seq.Sequence, true
		}
	}
	return "", false
}

// Names returns sequence names in the input order.
func (seqs Sequences) Names() []string {
	names := make([]string, len(seqs))
	for i, seq := range seqs {
		names[i] = seq.Name
	}
	return names
}

// Map returns the name to sequence mapping.
func (seqs Sequences) Map() map[string]string {
	m := make(map[string]string, len(seqs))
	for _, seq := range seqs {
		m[seq.Name] = seq.Sequence
	}
	return m
}

// String returns a sequence in FASTA format.
func (seq Sequence) String() string {
	return ">" + seq.Name + "\n" + Wrap(seq.Sequence, 80)
}

// String returns sequences in FASTA format.
func (seqs Sequences) String() string {
	var b strings.Builder
	for _, seq := range seqs {
		b.WriteString(seq.String())
	}
	return strings.TrimSuffix(b.String(), "\n")
}
