package bio

import "fmt"

// DuplicateIdentifierError is returned when a FASTA identifier is
// declared more than once.
type DuplicateIdentifierError struct {
	Name string
	Line int
}

func (e *DuplicateIdentifierError) Error() string {
	return fmt.Sprintf("line %d: taxon %q found more than once", e.Line, e.Name)
}

// MalformedInputError is returned for FASTA input which cannot be
// attributed to a record.
type MalformedInputError struct {
	Line   int
	Reason string
}

func (e *MalformedInputError) Error() string {
	return fmt.Sprintf("line %d: %s", e.Line, e.Reason)
}

// InvalidLengthError is returned when a sequence length doesn't
// divide by 3.
type InvalidLengthError struct {
	Length int
}

func (e *InvalidLengthError) Error() string {
	return fmt.Sprintf("sequence length %d doesn't divide by 3", e.Length)
}

// UnknownCodonError is returned for a codon missing from the codon table.
type UnknownCodonError struct {
	Codon string
	Pos   int
}

func (e *UnknownCodonError) Error() string {
	return fmt.Sprintf("unknown codon %q at position %d", e.Codon, e.Pos)
}

// UnknownBaseError is returned for a character outside of ACGT.
type UnknownBaseError struct {
	Base byte
	Pos  int
}

func (e *UnknownBaseError) Error() string {
	return fmt.Sprintf("unknown base %q at position %d", e.Base, e.Pos)
}

// UnknownResidueError is returned for an amino acid missing from the
// mass table.
type UnknownResidueError struct {
	Residue byte
	Pos     int
}

func (e *UnknownResidueError) Error() string {
	return fmt.Sprintf("unknown residue %q at position %d", e.Residue, e.Pos)
}
