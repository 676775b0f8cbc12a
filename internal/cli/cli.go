// Package cli dispatches dynmat operations over vectors and matrices read
// as whitespace-separated text.
package cli

import (
	"bufio"
	"bytes"
	"errors"
	"fmt"
	"io"
	"log/slog"
	"strings"

	"github.com/katalvlaran/dynmat/internal/config"
	"github.com/katalvlaran/dynmat/matrix"
	"github.com/katalvlaran/dynmat/vector"
)

const (
	KindVector = "vector"
	KindMatrix = "matrix"
)

var (
	ErrUnknownKind   = errors.New("cli: unknown container kind")
	ErrUnknownOp     = errors.New("cli: unknown operation")
	ErrMissingScalar = errors.New("cli: operation requires --scalar")
)

// Request names one operation and the shape of its operands.
type Request struct {
	Kind   string // KindVector or KindMatrix
	Op     string
	Size   int    // vector length or matrix dimension
	Scalar string // parsed as the element type by scalar ops
	Plot   bool   // append an ASCII chart of a vector result
}

// textWriter is implemented by everything Run can print.
type textWriter interface {
	WriteText(w io.Writer) error
}

// scalarText prints a single element, e.g. a dot product.
type scalarText[T vector.Number] struct{ x T }

func (s scalarText[T]) WriteText(w io.Writer) error {
	_, err := fmt.Fprint(w, s.x)
	return err
}

// VectorOps and MatrixOps list the supported operation names.
var (
	VectorOps = []string{"add", "sub", "dot", "hadamard", "add-scalar", "sub-scalar", "scale"}
	MatrixOps = []string{"add", "sub", "mul", "hadamard", "mulvec", "scale", "transpose"}
)

// Run reads the operands for req from in, applies the operation with the
// element type selected by cfg.Type, and writes a header plus the result to out.
func Run(cfg *config.Config, req Request, in io.Reader, out io.Writer, log *slog.Logger) error {
	log.Debug("run", "kind", req.Kind, "op", req.Op, "size", req.Size, "type", cfg.Type)

	var (
		res textWriter
		err error
	)
	r := bufio.NewReader(in)
	switch cfg.Type {
	case config.TypeInt:
		res, err = dispatch[int64](req, r)
	case config.TypeFloat:
		res, err = dispatch[float64](req, r)
	default:
		return fmt.Errorf("%q: %w", cfg.Type, config.ErrUnknownType)
	}
	if err != nil {
		return err
	}

	var body bytes.Buffer
	if err := res.WriteText(&body); err != nil {
		return err
	}
	styles := NewStyles(cfg.Plain)
	title := fmt.Sprintf("%s %s (n=%d, %s)", req.Kind, req.Op, req.Size, cfg.Type)
	if _, err := fmt.Fprintf(out, "%s\n%s\n", styles.Header(title), strings.TrimSuffix(body.String(), "\n")); err != nil {
		return err
	}
	if !req.Plot {
		return nil
	}
	chart, err := plot(res, title)
	if err != nil {
		return err
	}
	_, err = fmt.Fprintln(out, chart)

	return err
}

func dispatch[T vector.Number](req Request, r io.Reader) (textWriter, error) {
	switch req.Kind {
	case KindVector:
		return runVector[T](req, r)
	case KindMatrix:
		return runMatrix[T](req, r)
	}
	return nil, fmt.Errorf("%q: %w", req.Kind, ErrUnknownKind)
}

func runVector[T vector.Number](req Request, r io.Reader) (textWriter, error) {
	var binary func(a, b *vector.Vector[T]) (*vector.Vector[T], error)
	var scalar func(a *vector.Vector[T], x T) *vector.Vector[T]

	switch req.Op {
	case "add":
		binary = (*vector.Vector[T]).Add
	case "sub":
		binary = (*vector.Vector[T]).Sub
	case "hadamard":
		binary = (*vector.Vector[T]).Hadamard
	case "dot":
		a, b, err := readVectorPair[T](r, req.Size)
		if err != nil {
			return nil, err
		}
		s, err := a.Dot(b)
		if err != nil {
			return nil, err
		}
		return scalarText[T]{x: s}, nil
	case "add-scalar":
		scalar = (*vector.Vector[T]).AddScalar
	case "sub-scalar":
		scalar = (*vector.Vector[T]).SubScalar
	case "scale":
		scalar = (*vector.Vector[T]).MulScalar
	default:
		return nil, fmt.Errorf("vector %q: %w", req.Op, ErrUnknownOp)
	}

	if binary != nil {
		a, b, err := readVectorPair[T](r, req.Size)
		if err != nil {
			return nil, err
		}
		return binary(a, b)
	}

	x, err := parseScalar[T](req.Scalar)
	if err != nil {
		return nil, err
	}
	a, err := readVector[T](r, req.Size)
	if err != nil {
		return nil, err
	}
	return scalar(a, x), nil
}

func runMatrix[T vector.Number](req Request, r io.Reader) (textWriter, error) {
	var binary func(a, b *matrix.Matrix[T]) (*matrix.Matrix[T], error)

	switch req.Op {
	case "add":
		binary = (*matrix.Matrix[T]).Add
	case "sub":
		binary = (*matrix.Matrix[T]).Sub
	case "mul":
		binary = (*matrix.Matrix[T]).Mul
	case "hadamard":
		binary = (*matrix.Matrix[T]).Hadamard
	case "mulvec":
		a, err := readMatrix[T](r, req.Size)
		if err != nil {
			return nil, err
		}
		x, err := readVector[T](r, req.Size)
		if err != nil {
			return nil, err
		}
		return a.MulVec(x)
	case "scale":
		x, err := parseScalar[T](req.Scalar)
		if err != nil {
			return nil, err
		}
		a, err := readMatrix[T](r, req.Size)
		if err != nil {
			return nil, err
		}
		return a.MulScalar(x), nil
	case "transpose":
		a, err := readMatrix[T](r, req.Size)
		if err != nil {
			return nil, err
		}
		return a.Transpose(), nil
	default:
		return nil, fmt.Errorf("matrix %q: %w", req.Op, ErrUnknownOp)
	}

	a, err := readMatrix[T](r, req.Size)
	if err != nil {
		return nil, err
	}
	b, err := readMatrix[T](r, req.Size)
	if err != nil {
		return nil, err
	}
	return binary(a, b)
}

func parseScalar[T vector.Number](s string) (T, error) {
	var x T
	if s == "" {
		return x, ErrMissingScalar
	}
	if _, err := fmt.Sscan(s, &x); err != nil {
		return x, fmt.Errorf("scalar %q: %w", s, err)
	}
	return x, nil
}

func readVector[T vector.Number](r io.Reader, n int) (*vector.Vector[T], error) {
	v, err := vector.New[T](n)
	if err != nil {
		return nil, err
	}
	if err := v.ReadText(r); err != nil {
		return nil, err
	}
	return v, nil
}

func readVectorPair[T vector.Number](r io.Reader, n int) (*vector.Vector[T], *vector.Vector[T], error) {
	a, err := readVector[T](r, n)
	if err != nil {
		return nil, nil, err
	}
	b, err := readVector[T](r, n)
	if err != nil {
		return nil, nil, err
	}
	return a, b, nil
}

func readMatrix[T vector.Number](r io.Reader, n int) (*matrix.Matrix[T], error) {
	m, err := matrix.New[T](n)
	if err != nil {
		return nil, err
	}
	if err := m.ReadText(r); err != nil {
		return nil, err
	}
	return m, nil
}
