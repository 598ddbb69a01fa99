package line

import (
	"encoding/json"
	"fmt"

	"github.com/hupe1980/decgeom/internal/decmath"
)

// lineJSON is the wire form of a Line. The normal coordinates and the
// constant term travel as decimal strings so exactness survives the round
// trip. The base point is derived state and is not serialized.
type lineJSON struct {
	Normal    []string `json:"normal"`
	Constant  string   `json:"constant"`
	Tolerance string   `json:"tolerance,omitempty"`
	Precision uint32   `json:"precision,omitempty"`
}

// MarshalJSON implements json.Marshaler.
func (l *Line) MarshalJSON() ([]byte, error) {
	coords := l.normal.Coordinates()

	dto := lineJSON{
		Normal:    make([]string, len(coords)),
		Constant:  l.constant.String(),
		Tolerance: l.tol.String(),
		Precision: l.ctx.Precision,
	}
	for i, c := range coords {
		dto.Normal[i] = c.String()
	}

	return json.Marshal(dto)
}

// UnmarshalJSON implements json.Unmarshaler.
func (l *Line) UnmarshalJSON(data []byte) error {
	var dto lineJSON
	if err := json.Unmarshal(data, &dto); err != nil {
		return err
	}

	opts := []Option{WithPrecision(dto.Precision)}
	if dto.Tolerance != "" {
		tol, err := decmath.Parse(dto.Tolerance)
		if err != nil {
			return fmt.Errorf("invalid tolerance %q: %w", dto.Tolerance, err)
		}
		opts = append(opts, WithTolerance(tol))
	}

	parsed, err := Parse(dto.Normal, dto.Constant, opts...)
	if err != nil {
		return err
	}

	*l = *parsed
	return nil
}
