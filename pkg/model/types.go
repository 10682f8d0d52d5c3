package model

// Segment is one cipher-symbol run paired with its bracketed metadata, as found
// in the puzzle text.
type Segment struct {
	// Index is the zero-based position of the segment in the puzzle text.
	Index int `json:"index" yaml:"index"`
	// Offset is the byte offset of the segment within the puzzle text.
	Offset int `json:"offset" yaml:"offset"`
	// Encoded holds the cipher symbols, e.g. "<<<**.>..>>**.".
	Encoded string `json:"encoded" yaml:"encoded"`
	// Metadata holds the raw "[W x A x F][L]" block.
	Metadata string `json:"metadata" yaml:"metadata"`
}

// Constraint is the decoded form of a segment's metadata.
type Constraint struct {
	// WordValue is the target sum of the word's letter ordinals.
	WordValue int `json:"wordValue" yaml:"wordValue"`
	// Average is WordValue divided by the word length (floor).
	Average int `json:"average" yaml:"average"`
	// FirstValue is the ordinal the first letter must have.
	FirstValue int `json:"firstValue" yaml:"firstValue"`
	// LowestValue is the smallest ordinal the word may use, and must use.
	LowestValue int `json:"lowestValue" yaml:"lowestValue"`
	// Size is WordValue / Average. Two floor divisions mean the real length
	// may be Size or Size-1.
	Size int `json:"size" yaml:"size"`
}

// Lengths returns the candidate word lengths accepted for the constraint, the
// derived size first.
func (c Constraint) Lengths() []int {
	return []int{c.Size, c.Size - 1}
}

// SegmentResult groups the matches found for a single segment.
type SegmentResult struct {
	Segment    Segment    `json:"segment" yaml:"segment"`
	Constraint Constraint `json:"constraint" yaml:"constraint"`
	Words      []string   `json:"words" yaml:"words"`
}

// Result is the ordered outcome of decoding a whole puzzle.
type Result struct {
	Segments []SegmentResult `json:"segments" yaml:"segments"`
}

// Words returns the match lists in segment order.
func (r Result) Words() [][]string {
	out := make([][]string, 0, len(r.Segments))
	for _, seg := range r.Segments {
		out = append(out, append([]string(nil), seg.Words...))
	}
	return out
}
