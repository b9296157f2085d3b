package almanac

import (
	"encoding/json"
	"fmt"
	"io"
	"strings"
	"time"

	"github.com/soniakeys/sexagesimal"
	"github.com/soniakeys/unit"
)

// SkyExport is the JSON-serializable representation of a computed sky.
type SkyExport struct {
	Timestamp    time.Time   `json:"timestamp"`
	LatitudeDeg  float64     `json:"latitude_deg"`
	LongitudeDeg float64     `json:"longitude_deg"`
	Bodies       []RowExport `json:"bodies"`
}

// RowExport is a JSON-friendly body row. Angles are degrees for readability;
// the engine's radian values are recoverable exactly from them.
type RowExport struct {
	Name           string  `json:"name"`
	Kind           string  `json:"kind"`
	AltitudeDeg    float64 `json:"altitude_deg"`
	AzimuthDeg     float64 `json:"azimuth_deg"`
	Visible        bool    `json:"visible"`
	Magnitude      float64 `json:"magnitude,omitempty"`
	Phase          string  `json:"phase,omitempty"`
	PhaseAngleDeg  float64 `json:"phase_angle_deg,omitempty"`
	OrientationDeg float64 `json:"orientation_deg,omitempty"`
}

// ExportSky converts a Sky to its exportable form.
func ExportSky(sky Sky) *SkyExport {
	export := &SkyExport{
		Timestamp:    sky.Time,
		LatitudeDeg:  unit.Angle(sky.Observer.LatRad).Deg(),
		LongitudeDeg: unit.Angle(sky.Observer.LonRad).Deg(),
	}
	for _, r := range sky.Rows {
		row := RowExport{
			Name:        r.Name,
			Kind:        r.Kind.String(),
			AltitudeDeg: unit.Angle(r.Pos.Alt).Deg(),
			AzimuthDeg:  unit.Angle(r.Pos.Az).Deg(),
			Visible:     r.Visible(),
		}
		switch r.Kind {
		case KindStar:
			row.Magnitude = r.Mag
		case KindMoon:
			row.Phase = PhaseName(r.LunarPhase)
			row.PhaseAngleDeg = unit.Angle(r.LunarPhase).Deg()
			row.OrientationDeg = unit.Angle(r.Orientation).Deg()
		}
		export.Bodies = append(export.Bodies, row)
	}
	return export
}

// WriteJSON writes the sky as indented JSON to the given writer.
func (s *SkyExport) WriteJSON(w io.Writer) error {
	enc := json.NewEncoder(w)
	enc.SetIndent("", "  ")
	return enc.Encode(s)
}

// WriteTable writes a sexagesimal text table of every body above the horizon,
// plus the sun and moon regardless of altitude.
func WriteTable(w io.Writer, sky Sky) {
	fmt.Fprintf(w, "Sky @ %s  (lat %v, lon %v)\n",
		sky.Time.Format(time.RFC3339),
		sexa.FmtAngle(unit.Angle(sky.Observer.LatRad)),
		sexa.FmtAngle(unit.Angle(sky.Observer.LonRad)))
	fmt.Fprintln(w, strings.Repeat("─", 72))

	fmt.Fprintf(w, "%-16s %-7s %14s %14s  %s\n",
		"Body", "Kind", "Altitude", "Azimuth", "Notes")
	fmt.Fprintln(w, strings.Repeat("─", 72))

	visible := 0
	for _, r := range sky.Rows {
		if !r.Visible() && r.Kind != KindSun && r.Kind != KindMoon {
			continue
		}
		if r.Visible() {
			visible++
		}
		fmt.Fprintf(w, "%-16s %-7s %14v %14v  %s\n",
			truncateStr(r.Name, 16),
			r.Kind,
			sexa.FmtAngle(unit.Angle(r.Pos.Alt)),
			sexa.FmtAngle(unit.Angle(r.Pos.Az)),
			rowNotes(r))
	}

	fmt.Fprintf(w, "\nTotal: %d bodies above the horizon\n", visible)
}

func rowNotes(r Row) string {
	switch r.Kind {
	case KindStar:
		return fmt.Sprintf("mag %.2f", r.Mag)
	case KindMoon:
		return fmt.Sprintf("%s %c", PhaseName(r.LunarPhase), PhaseGlyph(r.LunarPhase))
	case KindPlanet:
		return r.Glyph
	default:
		return ""
	}
}

func truncateStr(s string, maxLen int) string {
	if len(s) <= maxLen {
		return s
	}
	if maxLen <= 3 {
		return s[:maxLen]
	}
	return s[:maxLen-2] + ".."
}
