package ai

import (
	"errors"
	"fmt"
	"regexp"
	"strconv"
)

var (
	gradePattern   = regexp.MustCompile(`\$([0-9]+(?:\.[0-9]+)?)\$`)
	numberRegex    = regexp.MustCompile(`[0-9]+(?:\.[0-9]+)?`)
	ErrParseFailed = errors.New("parse_failed")
	ErrOutOfRange  = errors.New("grade_out_of_range")
)

// ParseGrade extracts the grade from model output. It first tries the strict
// $<number>$ format and falls back to the first number found in the text.
func ParseGrade(text string) (float64, error) {
	var valStr string
	if m := gradePattern.FindStringSubmatch(text); len(m) >= 2 {
		valStr = m[1]
	} else if m := numberRegex.FindString(text); m != "" {
		valStr = m
	} else {
		return 0, fmt.Errorf("%w: no grade found", ErrParseFailed)
	}
	v, err := strconv.ParseFloat(valStr, 64)
	if err != nil {
		return 0, fmt.Errorf("%w: %v", ErrParseFailed, err)
	}
	if v < 0 || v > 10 {
		return 0, fmt.Errorf("%w: %v", ErrOutOfRange, v)
	}
	return v, nil
}
