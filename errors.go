package goban

import (
	"fmt"

	wq "github.com/gorgonia/goban/game/wq"
	"github.com/gorgonia/goban/geometry"
	"github.com/gorgonia/goban/sgf"
	"github.com/gorgonia/goban/theme"
	"github.com/pkg/errors"
)

// Kind classifies the errors returned by this package.
type Kind int

const (
	KindUnknown  Kind = iota
	KindParse         // malformed SGF
	KindConfig        // bad board size, unknown theme, bad options
	KindSemantic      // a move the board cannot take
	KindIO            // reading the record or writing the image failed
)

func (k Kind) String() string {
	switch k {
	case KindParse:
		return "parse error"
	case KindConfig:
		return "configuration error"
	case KindSemantic:
		return "semantic error"
	case KindIO:
		return "i/o error"
	}
	return "error"
}

// Error is what every exported function of this package fails with.
type Error struct {
	Kind Kind
	Op   string // the exported function that failed
	Err  error
}

func (err *Error) Error() string { return fmt.Sprintf("%s: %v: %v", err.Op, err.Kind, err.Err) }

func (err *Error) Unwrap() error { return err.Err }

// Cause is for github.com/pkg/errors.Cause.
func (err *Error) Cause() error { return err.Err }

// KindOf returns the Kind of err, KindUnknown if it is not from this package.
func KindOf(err error) Kind {
	var e *Error
	if errors.As(err, &e) {
		return e.Kind
	}
	return KindUnknown
}

// OptionError is an Options value that cannot be used.
type OptionError struct {
	Field string
	Msg   string
}

func (err *OptionError) Error() string { return fmt.Sprintf("option %s: %s", err.Field, err.Msg) }

func classify(err error) Kind {
	var (
		pe *sgf.ParseError
		se *sgf.SizeError
		ue *theme.UnknownError
		ce *geometry.CanvasError
		oe *OptionError
		me *wq.MoveError
	)
	switch {
	case errors.As(err, &pe):
		return KindParse
	case errors.As(err, &se), errors.As(err, &ue), errors.As(err, &ce), errors.As(err, &oe):
		return KindConfig
	case errors.As(err, &me):
		return KindSemantic
	}
	return KindUnknown
}

// wrap turns err into an *Error. kind is used when err does not say for itself.
func wrap(op string, kind Kind, err error) error {
	if err == nil {
		return nil
	}
	if e, ok := err.(*Error); ok {
		return e
	}
	if k := classify(err); k != KindUnknown {
		kind = k
	}
	return &Error{Kind: kind, Op: op, Err: err}
}
