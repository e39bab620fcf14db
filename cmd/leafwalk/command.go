package main

import (
	"bytes"
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"os"

	"github.com/boltdb/bolt"
	"go.llib.dev/frameless/pkg/cli"
	"go.llib.dev/frameless/pkg/errorkit"
	"go.llib.dev/frameless/pkg/logger"
	"go.llib.dev/frameless/pkg/logging"

	"go.llib.dev/leafkit/pkg/boltkit"
	"go.llib.dev/leafkit/pkg/cursorkit"
	"go.llib.dev/leafkit/pkg/iterkit"
	"go.llib.dev/leafkit/pkg/leafkit"
	"go.llib.dev/leafkit/pkg/typekit"
)

const (
	ErrDepth    errorkit.Error = "unsupported depth"
	ErrReadFile errorkit.Error = "unable to read input"
	ErrDecode   errorkit.Error = "input is not a nested json array of the given depth"
)

// Command prints the leaves of a nested structure, one per line.
type Command struct {
	Depth  int    `flag:"depth" env:"LEAFWALK_DEPTH" desc:"number of nesting levels in the input (default 2)"`
	Format string `flag:"format" env:"LEAFWALK_FORMAT" enum:"json,bolt," desc:"input format (default json)"`
	Count  bool   `flag:"count" desc:"print the number of leaves instead of the leaves"`
	Bucket string `flag:"bucket" desc:"slash separated path of the bolt bucket to start from"`

	Path string `arg:"0" required:"true" desc:"path of the input file"`
}

const defaultDepth = 2

func (cmd Command) ServeCLI(w cli.Response, r *cli.Request) {
	if cmd.Depth == 0 {
		cmd.Depth = defaultDepth
	}
	ctx := r.Context()
	ctx = logger.ContextWith(ctx,
		logging.Field("format", cmd.Format),
		logging.Field("depth", cmd.Depth),
		logging.Field("path", cmd.Path))

	var err error
	switch cmd.Format {
	case "bolt":
		err = cmd.walkBolt(ctx, w)
	default:
		err = cmd.walkJSON(ctx, w)
	}
	if err == nil {
		return
	}
	logger.Error(ctx, "leafwalk failed", logging.ErrField(err))
	code := cli.ExitCodeError
	if errors.Is(err, ErrDepth) || errors.Is(err, ErrDecode) || errors.Is(err, boltkit.ErrMissingBucket) {
		code = cli.ExitCodeBadRequest
	}
	w.ExitCode(code)
	fmt.Fprintln(stderr(w), err.Error())
}

func (cmd Command) walkJSON(ctx context.Context, w io.Writer) error {
	data, err := os.ReadFile(cmd.Path)
	if err != nil {
		return ErrReadFile.Wrap(err)
	}
	switch cmd.Depth {
	case 1:
		levels := typekit.L2[cursorkit.Slice[json.RawMessage], json.RawMessage]{}
		var s cursorkit.Slice[json.RawMessage]
		if err := decode(ctx, data, &s, levels); err != nil {
			return err
		}
		begin, end := leafkit.NewLeaf(s.Begin(), s.End()), leafkit.NewLeaf(s.End(), s.End())
		return emit(w, cmd.Count, begin, end, rawString)
	case 2:
		type (
			L1 = cursorkit.Slice[json.RawMessage]
			L0 = cursorkit.Slice[L1]
		)
		levels := typekit.L3[L0, L1, json.RawMessage]{}
		var s L0
		if err := decode(ctx, data, &s, levels); err != nil {
			return err
		}
		begin, end := leafkit.FromSlices2(s)
		return emit(w, cmd.Count, begin, end, rawString)
	case 3:
		type (
			L2 = cursorkit.Slice[json.RawMessage]
			L1 = cursorkit.Slice[L2]
			L0 = cursorkit.Slice[L1]
		)
		levels := typekit.L4[L0, L1, L2, json.RawMessage]{}
		var s L0
		if err := decode(ctx, data, &s, levels); err != nil {
			return err
		}
		begin, end := leafkit.FromSlices3(s)
		return emit(w, cmd.Count, begin, end, rawString)
	case 4:
		type (
			L3 = cursorkit.Slice[json.RawMessage]
			L2 = cursorkit.Slice[L3]
			L1 = cursorkit.Slice[L2]
			L0 = cursorkit.Slice[L1]
		)
		levels := typekit.L5[L0, L1, L2, L3, json.RawMessage]{}
		var s L0
		if err := decode(ctx, data, &s, levels); err != nil {
			return err
		}
		begin, end := leafkit.FromSlices4(s)
		return emit(w, cmd.Count, begin, end, rawString)
	default:
		return ErrDepth.F("json input supports depth 1 to 4, got %d", cmd.Depth)
	}
}

// decode unmarshals data into the first level of the given type list.
func decode[F, L any](ctx context.Context, data []byte, ptr *F, levels typekit.List[F, L]) error {
	logger.Debug(ctx, "decoding json input",
		logging.Field("levels", typekit.Names(levels)),
		logging.Field("leaf", fmt.Sprintf("%T", typekit.Last(levels))))
	if err := json.Unmarshal(data, ptr); err != nil {
		return ErrDecode.Wrap(err)
	}
	return nil
}

func (cmd Command) walkBolt(ctx context.Context, w io.Writer) (rErr error) {
	db, err := boltkit.Open(ctx, cmd.Path)
	if err != nil {
		return err
	}
	defer func() { rErr = errorkit.Merge(rErr, db.Close()) }()

	var keys [][]byte
	if cmd.Bucket != "" {
		keys = bytes.Split([]byte(cmd.Bucket), []byte("/"))
	}

	return db.View(func(tx *bolt.Tx) error {
		switch {
		case cmd.Depth == 1 && 0 < len(keys):
			ps, err := boltkit.Lookup[boltkit.Pairs](tx, keys...)
			if err != nil {
				return err
			}
			begin, end := boltkit.Walk1(ps)
			return emit(w, cmd.Count, begin, end, pairString)
		case cmd.Depth == 2:
			bs, err := boltkit.Lookup[boltkit.Buckets[boltkit.Pairs]](tx, keys...)
			if err != nil {
				return err
			}
			begin, end := boltkit.Walk2In(bs)
			return emit(w, cmd.Count, begin, end, pairString)
		case cmd.Depth == 3:
			bs, err := boltkit.Lookup[boltkit.Buckets[boltkit.Buckets[boltkit.Pairs]]](tx, keys...)
			if err != nil {
				return err
			}
			begin, end := boltkit.Walk3In(bs)
			return emit(w, cmd.Count, begin, end, pairString)
		default:
			return ErrDepth.F("bolt input supports depth 2 and 3, or 1 together with -bucket, got %d", cmd.Depth)
		}
	})
}

// emit writes the leaves between begin and end, or only their number when count is set.
func emit[C cursorkit.Cursor[C, V], V any](w io.Writer, count bool, begin, end C, format func(V) string) error {
	if count {
		_, err := fmt.Fprintln(w, iterkit.Distance(begin, end))
		return err
	}
	return iterkit.ForEach(begin, end, func(v *V) error {
		_, err := fmt.Fprintln(w, format(*v))
		return err
	})
}

func stderr(w cli.Response) io.Writer {
	if ew, ok := w.(cli.ErrorWriter); ok && ew.Stderr() != nil {
		return ew.Stderr()
	}
	return w
}

func rawString(v json.RawMessage) string { return string(v) }

func pairString(p boltkit.Pair) string { return string(p.Key) + "=" + string(p.Value) }
