package vector

import (
	"encoding/json"
	"fmt"

	"github.com/hupe1980/decgeom/internal/decmath"
)

// vectorJSON is the wire form of a Vector. Coordinates travel as decimal
// strings so exactness survives the round trip.
type vectorJSON struct {
	Coordinates []string `json:"coordinates"`
	Tolerance   string   `json:"tolerance,omitempty"`
	Precision   uint32   `json:"precision,omitempty"`
}

// MarshalJSON implements json.Marshaler.
func (v *Vector) MarshalJSON() ([]byte, error) {
	dto := vectorJSON{
		Coordinates: make([]string, len(v.coords)),
		Tolerance:   v.tol.String(),
		Precision:   v.ctx.Precision,
	}
	for i := range v.coords {
		dto.Coordinates[i] = v.coords[i].String()
	}
	return json.Marshal(dto)
}

// UnmarshalJSON implements json.Unmarshaler.
func (v *Vector) UnmarshalJSON(data []byte) error {
	var dto vectorJSON
	if err := json.Unmarshal(data, &dto); err != nil {
		return err
	}

	opts := []Option{WithPrecision(dto.Precision)}
	if dto.Tolerance != "" {
		tol, err := decmath.Parse(dto.Tolerance)
		if err != nil {
			return fmt.Errorf("%w: tolerance %q", ErrInvalidCoordinate, dto.Tolerance)
		}
		opts = append(opts, WithTolerance(tol))
	}

	parsed, err := Parse(dto.Coordinates, opts...)
	if err != nil {
		return err
	}

	*v = *parsed
	return nil
}
