// Package goban turns SGF Go records into pictures of the board.
//
// A call parses the record, replays its main line up to the requested move,
// lays the board out on a square canvas and draws it in one of the themes of
// package theme. Every function here fails with an *Error whose Kind says
// which stage went wrong; nothing is written to a file unless the whole call
// succeeds.
package goban

import (
	"bufio"
	"image"
	"io"
	"os"
	"path/filepath"
	"strings"

	"github.com/gorgonia/goban/encoding/gif"
	"github.com/gorgonia/goban/encoding/png"
	wq "github.com/gorgonia/goban/game/wq"
	"github.com/gorgonia/goban/geometry"
	"github.com/gorgonia/goban/render"
	"github.com/gorgonia/goban/sgf"
	"github.com/gorgonia/goban/theme"
	"github.com/pkg/errors"
	"go.uber.org/zap"
)

// job is a validated request with its record parsed.
type job struct {
	tree  *sgf.Tree
	table *geometry.Table
	r     *render.Renderer
	kifu  bool
	limit int
	title string
	log   *zap.Logger
}

func prepare(op, sgfText string, opts Options) (*job, error) {
	log := opts.logger().With(zap.String("op", op))

	limit, err := opts.limit()
	if err != nil {
		return nil, wrap(op, KindConfig, err)
	}
	canvas, err := opts.canvas()
	if err != nil {
		return nil, wrap(op, KindConfig, err)
	}
	th, err := theme.Lookup(opts.Theme)
	if err != nil {
		return nil, wrap(op, KindConfig, err)
	}

	tree, err := sgf.Parse(sgfText)
	if err != nil {
		log.Debug("parse failed", zap.Error(err))
		return nil, wrap(op, KindParse, err)
	}
	w, h, err := tree.Size()
	if err != nil {
		return nil, wrap(op, KindConfig, err)
	}
	tbl, err := geometry.Resolve(w, h, canvas, canvas)
	if err != nil {
		return nil, wrap(op, KindConfig, err)
	}
	log.Debug("parsed",
		zap.Int("nodes", tree.Len()),
		zap.Int("width", w),
		zap.Int("height", h),
		zap.String("theme", th.Name),
		zap.Int("limit", limit),
	)

	return &job{
		tree:  tree,
		table: tbl,
		r:     render.New(th),
		kifu:  opts.Kifu,
		limit: limit,
		title: tree.Title(),
		log:   log,
	}, nil
}

func (j *job) result(pos *wq.Position) *Result {
	w, h := pos.Size()
	return &Result{
		Width:    w,
		Height:   h,
		Applied:  pos.Applied(),
		Total:    pos.Total,
		Captures: pos.Captures,
		Theme:    j.r.Theme.Name,
	}
}

func (j *job) frame(pos *wq.Position) *render.Frame {
	return render.NewFrame(j.title, pos.Applied(), j.r.Render(pos, j.table, j.kifu))
}

// Image renders the record and returns the picture.
func Image(sgfText string, opts Options) (image.Image, *Result, error) {
	const op = "goban.Image"
	j, err := prepare(op, sgfText, opts)
	if err != nil {
		return nil, nil, err
	}
	pos, err := wq.Replay(j.tree, j.limit)
	if err != nil {
		j.log.Debug("replay failed", zap.Error(err))
		return nil, nil, wrap(op, KindSemantic, err)
	}
	img := j.r.Render(pos, j.table, j.kifu)
	j.log.Debug("rendered", zap.Int("applied", pos.Applied()), zap.Int("total", pos.Total))
	return img, j.result(pos), nil
}

// Render writes the record as a PNG image to w.
func Render(sgfText string, w io.Writer, opts Options) (*Result, error) {
	return run("goban.Render", sgfText, png.NewEncoder(w), opts, false)
}

// Animate writes the record as an animated GIF to w, one frame for the
// starting position and one per applied move.
func Animate(sgfText string, w io.Writer, opts Options) (*Result, error) {
	return run("goban.Animate", sgfText, gif.NewGifEncoder(w), opts, true)
}

// RenderTo hands the rendered record to enc and flushes it. With everyMove
// set enc gets a frame for the starting position and for each applied move,
// otherwise only the final one.
func RenderTo(sgfText string, enc OutputEncoder, opts Options, everyMove bool) (*Result, error) {
	return run("goban.RenderTo", sgfText, enc, opts, everyMove)
}

func run(op, sgfText string, enc OutputEncoder, opts Options, everyMove bool) (*Result, error) {
	j, err := prepare(op, sgfText, opts)
	if err != nil {
		return nil, err
	}

	var encErr error
	var fn func(*wq.Position) error
	if everyMove {
		fn = func(pos *wq.Position) error {
			encErr = enc.Encode(j.frame(pos))
			return encErr
		}
	}
	pos, err := wq.Walk(j.tree, j.limit, fn)
	switch {
	case encErr != nil:
		return nil, wrap(op, KindIO, encErr)
	case err != nil:
		j.log.Debug("replay failed", zap.Error(err))
		return nil, wrap(op, KindSemantic, err)
	}
	if !everyMove {
		if err = enc.Encode(j.frame(pos)); err != nil {
			return nil, wrap(op, KindIO, err)
		}
	}
	if err = enc.Flush(); err != nil {
		return nil, wrap(op, KindIO, err)
	}
	j.log.Debug("rendered", zap.Int("applied", pos.Applied()), zap.Int("total", pos.Total))
	return j.result(pos), nil
}

// RenderFile writes the record to path: an animated GIF when path ends in
// ".gif", a PNG otherwise. The image goes to a temporary file next to path
// and is renamed into place once complete; on failure nothing is left behind.
func RenderFile(sgfText, path string, opts Options) (*Result, error) {
	return renderFile("goban.RenderFile", sgfText, path, opts)
}

// RenderSGFFile is RenderFile reading the record from inPath.
func RenderSGFFile(inPath, outPath string, opts Options) (*Result, error) {
	const op = "goban.RenderSGFFile"
	text, err := os.ReadFile(inPath)
	if err != nil {
		return nil, wrap(op, KindIO, errors.WithStack(err))
	}
	return renderFile(op, string(text), outPath, opts)
}

func renderFile(op, sgfText, path string, opts Options) (res *Result, err error) {
	dir, base := filepath.Split(path)
	if dir == "" {
		dir = "."
	}
	f, err := os.CreateTemp(dir, "."+base+".*.tmp")
	if err != nil {
		return nil, wrap(op, KindIO, errors.WithStack(err))
	}
	tmp := f.Name()
	defer func() {
		if err != nil {
			f.Close()
			os.Remove(tmp)
		}
	}()

	bw := bufio.NewWriter(f)
	var enc OutputEncoder = png.NewEncoder(bw)
	everyMove := false
	if strings.EqualFold(filepath.Ext(path), ".gif") {
		enc = gif.NewGifEncoder(bw)
		everyMove = true
	}
	if res, err = run(op, sgfText, enc, opts, everyMove); err != nil {
		return nil, err
	}

	if err = bw.Flush(); err != nil {
		return nil, wrap(op, KindIO, errors.WithStack(err))
	}
	if err = f.Chmod(0644); err != nil {
		return nil, wrap(op, KindIO, errors.WithStack(err))
	}
	if err = f.Close(); err != nil {
		return nil, wrap(op, KindIO, errors.WithStack(err))
	}
	if err = os.Rename(tmp, path); err != nil {
		return nil, wrap(op, KindIO, errors.WithStack(err))
	}
	return res, nil
}
