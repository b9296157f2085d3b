package catalog

import (
	"bufio"
	"errors"
	"fmt"
	"io"
	"strconv"
	"strings"

	"github.com/soniakeys/unit"
)

// ErrBadRecord reports a malformed catalog row.
var ErrBadRecord = errors.New("malformed catalog record")

// ParseStars reads the canonical star catalog format: one star per line,
// whitespace separated,
//
//	right_ascension(rad) declination(rad) magnitude [name|null]
//
// Blank lines and lines starting with # are skipped.
func ParseStars(r io.Reader) ([]Star, error) {
	var stars []Star

	sc := bufio.NewScanner(r)
	lineNo := 0
	for sc.Scan() {
		lineNo++
		fields, skip := recordFields(sc.Text())
		if skip {
			continue
		}
		if len(fields) < 3 || len(fields) > 4 {
			return nil, fmt.Errorf("stars line %d: %w: want 3 or 4 fields, got %d", lineNo, ErrBadRecord, len(fields))
		}

		ra, err := strconv.ParseFloat(fields[0], 64)
		if err != nil {
			return nil, fmt.Errorf("stars line %d: right ascension: %w", lineNo, err)
		}
		dec, err := strconv.ParseFloat(fields[1], 64)
		if err != nil {
			return nil, fmt.Errorf("stars line %d: declination: %w", lineNo, err)
		}
		mag, err := strconv.ParseFloat(fields[2], 64)
		if err != nil {
			return nil, fmt.Errorf("stars line %d: magnitude: %w", lineNo, err)
		}

		name := ""
		if len(fields) == 4 && fields[3] != "null" {
			name = fields[3]
		}

		stars = append(stars, Star{
			Name: name,
			RA:   unit.RA(ra),
			Dec:  unit.Angle(dec),
			Mag:  mag,
		})
	}
	if err := sc.Err(); err != nil {
		return nil, fmt.Errorf("read stars: %w", err)
	}
	return stars, nil
}

// ParsePlanets reads the planet catalog format:
//
//	name semimajor(AU) sidereal_period(s) initial_phase(rad) inclination(deg) nodal_initial_phase(rad) [glyph|null]
func ParsePlanets(r io.Reader) ([]Planet, error) {
	var planets []Planet

	sc := bufio.NewScanner(r)
	lineNo := 0
	for sc.Scan() {
		lineNo++
		fields, skip := recordFields(sc.Text())
		if skip {
			continue
		}
		if len(fields) < 6 || len(fields) > 7 {
			return nil, fmt.Errorf("planets line %d: %w: want 6 or 7 fields, got %d", lineNo, ErrBadRecord, len(fields))
		}

		nums := make([]float64, 5)
		for i := range nums {
			v, err := strconv.ParseFloat(fields[i+1], 64)
			if err != nil {
				return nil, fmt.Errorf("planets line %d field %d: %w", lineNo, i+2, err)
			}
			nums[i] = v
		}
		if nums[0] <= 0 || nums[1] <= 0 {
			return nil, fmt.Errorf("planets line %d: %w: semimajor axis and period must be positive", lineNo, ErrBadRecord)
		}

		glyph := ""
		if len(fields) == 7 && fields[6] != "null" {
			glyph = fields[6]
		}

		planets = append(planets, Planet{
			Name:              fields[0],
			SemimajorAU:       nums[0],
			PeriodSec:         nums[1],
			InitialPhase:      nums[2],
			InclinationDeg:    nums[3],
			NodalInitialPhase: nums[4],
			Glyph:             glyph,
		})
	}
	if err := sc.Err(); err != nil {
		return nil, fmt.Errorf("read planets: %w", err)
	}
	return planets, nil
}

// recordFields splits a catalog line, reporting whether it should be skipped
// (blank or comment).
func recordFields(line string) ([]string, bool) {
	line = strings.TrimSpace(line)
	if line == "" || strings.HasPrefix(line, "#") {
		return nil, true
	}
	return strings.Fields(line), false
}
