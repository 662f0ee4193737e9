package sgf

import (
	"fmt"
	"strconv"
	"strings"
)

const (
	DefaultSize = 19
	MinSize     = 2
	MaxSize     = 25
)

// SizeError is returned for a board size that is malformed or outside
// [MinSize, MaxSize] on either axis.
type SizeError struct {
	Value string
	Msg   string
}

func (err *SizeError) Error() string {
	return fmt.Sprintf("sgf: invalid board size %q: %s", err.Value, err.Msg)
}

// ParseSize parses an SZ value. "19" is a square board; "15:10" and "15,10"
// are width by height. Exactly one separator is allowed and signs are not.
func ParseSize(v string) (width, height int, err error) {
	i := strings.IndexAny(v, ":,")
	if i < 0 {
		if width, err = parseDim(v); err != nil {
			return 0, 0, &SizeError{Value: v, Msg: "not a number"}
		}
		height = width
	} else {
		w, h := v[:i], v[i+1:]
		if strings.ContainsAny(h, ":,") {
			return 0, 0, &SizeError{Value: v, Msg: "expected N or W:H"}
		}
		if width, err = parseDim(w); err != nil {
			return 0, 0, &SizeError{Value: v, Msg: "width is not a number"}
		}
		if height, err = parseDim(h); err != nil {
			return 0, 0, &SizeError{Value: v, Msg: "height is not a number"}
		}
	}
	if err = CheckSize(width, height); err != nil {
		return 0, 0, &SizeError{Value: v, Msg: err.(*SizeError).Msg}
	}
	return width, height, nil
}

// parseDim reads one unsigned decimal dimension, surrounding blanks allowed.
func parseDim(s string) (int, error) {
	s = strings.TrimSpace(s)
	if s == "" || s[0] < '0' || s[0] > '9' {
		return 0, strconv.ErrSyntax
	}
	return strconv.Atoi(s)
}

// CheckSize validates board dimensions.
func CheckSize(width, height int) error {
	if width < MinSize || width > MaxSize || height < MinSize || height > MaxSize {
		return &SizeError{
			Value: fmt.Sprintf("%d:%d", width, height),
			Msg:   fmt.Sprintf("dimensions must be between %d and %d", MinSize, MaxSize),
		}
	}
	return nil
}
