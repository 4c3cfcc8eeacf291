package board

import "fmt"

// Validation error codes.
const (
	CodeBadGeometry = "BAD_GEOMETRY"
	CodeEmptyID     = "EMPTY_ID"
	CodeDuplicateID = "DUPLICATE_ID"
	CodeWidth       = "WIDTH"
	CodeRowRange    = "ROW_RANGE"
	CodeColRange    = "COL_RANGE"
	CodeOverlap     = "OVERLAP"
)

// ValidationError reports a snapshot that breaks the board contract.
// It signals a caller bug; the engine never repairs geometry.
type ValidationError struct {
	Code    string
	Message string
}

func (e ValidationError) Error() string {
	return fmt.Sprintf("board: [%s] %s", e.Code, e.Message)
}

// Validate checks a snapshot against the board contract:
// unique non-empty IDs, width >= 1, rows and spans inside the board and no
// two spans overlapping on the same row.
func (b Board) Validate(pieces []Piece) error {
	if b.Rows < 3 || b.Cols < 1 {
		return ValidationError{
			Code:    CodeBadGeometry,
			Message: fmt.Sprintf("board %dx%d needs at least 3 rows and 1 column", b.Rows, b.Cols),
		}
	}

	seen := make(map[string]bool, len(pieces))
	for _, p := range pieces {
		if p.ID == "" {
			return ValidationError{
				Code:    CodeEmptyID,
				Message: fmt.Sprintf("piece at row %d col %d has no id", p.Row, p.Col),
			}
		}
		if seen[p.ID] {
			return ValidationError{
				Code:    CodeDuplicateID,
				Message: fmt.Sprintf("piece id %q appears more than once", p.ID),
			}
		}
		seen[p.ID] = true

		if p.Width < 1 {
			return ValidationError{
				Code:    CodeWidth,
				Message: fmt.Sprintf("piece %q has width %d", p.ID, p.Width),
			}
		}
		if p.Row < 0 || p.Row >= b.Rows {
			return ValidationError{
				Code:    CodeRowRange,
				Message: fmt.Sprintf("piece %q row %d outside [0, %d]", p.ID, p.Row, b.Rows-1),
			}
		}
		if p.Col < 0 || p.End() > b.Cols {
			return ValidationError{
				Code:    CodeColRange,
				Message: fmt.Sprintf("piece %q span [%d, %d) outside [0, %d)", p.ID, p.Col, p.End(), b.Cols),
			}
		}
	}

	for i := range pieces {
		for j := i + 1; j < len(pieces); j++ {
			a, c := pieces[i], pieces[j]
			if a.Row == c.Row && a.Overlaps(c.Col, c.Width) {
				return ValidationError{
					Code:    CodeOverlap,
					Message: fmt.Sprintf("pieces %q and %q overlap on row %d", a.ID, c.ID, a.Row),
				}
			}
		}
	}

	return nil
}
