package main

import (
	"fmt"
	"log/slog"
	"strconv"
	"strings"

	"github.com/spf13/cobra"

	"github.com/mlkit-go/sqdiff"
)

func newEvalCmd() *cobra.Command {
	var (
		shapeA string
		shapeB string
		dataA  string
		dataB  string
		dtype  string
	)

	cmd := &cobra.Command{
		Use:   "eval",
		Short: "Evaluate (a-b)^2 over two inline tensors",
		Long: `Evaluate the broadcast squared difference of two tensors given as
comma-separated values with comma-separated shapes. An empty shape denotes a
scalar.`,
		Example: `  sqdiff eval --shape-a 2,3 --a -2,0.2,0.3,0.8,1.1,-2 --shape-b "" --b 0.1
  sqdiff eval --dtype int32 --shape-a 6 --a -20,10,7,3,1,13 --shape-b "" --b 3`,
		RunE: func(cmd *cobra.Command, _ []string) error {
			return runEval(cmd, shapeA, dataA, shapeB, dataB, dtype)
		},
	}

	cmd.Flags().StringVar(&shapeA, "shape-a", "", "Shape of the first tensor, e.g. 2,3 (empty = scalar)")
	cmd.Flags().StringVar(&shapeB, "shape-b", "", "Shape of the second tensor (empty = scalar)")
	cmd.Flags().StringVar(&dataA, "a", "", "Elements of the first tensor, comma-separated")
	cmd.Flags().StringVar(&dataB, "b", "", "Elements of the second tensor, comma-separated")
	cmd.Flags().StringVar(&dtype, "dtype", "float32", "Element type (float32|float64|int32|int64)")

	return cmd
}

func runEval(cmd *cobra.Command, shapeA, dataA, shapeB, dataB, dtype string) error {
	sa, err := parseShape(shapeA)
	if err != nil {
		return fmt.Errorf("--shape-a: %w", err)
	}
	sb, err := parseShape(shapeB)
	if err != nil {
		return fmt.Errorf("--shape-b: %w", err)
	}

	a, err := parseTensor(dataA, sa, dtype)
	if err != nil {
		return fmt.Errorf("--a: %w", err)
	}
	b, err := parseTensor(dataB, sb, dtype)
	if err != nil {
		return fmt.Errorf("--b: %w", err)
	}

	slog.Debug("evaluating",
		"shape_a", sa.String(),
		"shape_b", sb.String(),
		"dtype", dtype,
		"workers", activeCfg.Eval.Workers,
	)

	out, err := sqdiff.ApplyWith(a, b, activeCfg.Eval.Parallel())
	if err != nil {
		return err
	}

	cmd.Printf("shape: %s\n", out.Shape())
	cmd.Printf("values: %s\n", formatTensor(out))
	return nil
}

// parseShape parses "2,3,1" into Shape{2, 3, 1}; an empty string is a scalar.
func parseShape(s string) (sqdiff.Shape, error) {
	s = strings.TrimSpace(s)
	if s == "" {
		return sqdiff.Shape{}, nil
	}

	parts := strings.Split(s, ",")
	shape := make(sqdiff.Shape, 0, len(parts))
	for _, p := range parts {
		dim, err := strconv.Atoi(strings.TrimSpace(p))
		if err != nil {
			return nil, fmt.Errorf("invalid dimension %q", p)
		}
		if dim < 0 {
			return nil, fmt.Errorf("invalid dimension %d (must be >= 0)", dim)
		}
		shape = append(shape, dim)
	}
	return shape, nil
}

// parseTensor parses comma-separated values into a tensor of the given shape.
func parseTensor(s string, shape sqdiff.Shape, dtype string) (*sqdiff.RawTensor, error) {
	var fields []string
	if strings.TrimSpace(s) != "" {
		fields = strings.Split(s, ",")
	}

	switch dtype {
	case "float32":
		return fromStrings(fields, shape, func(v string) (float32, error) {
			f, err := strconv.ParseFloat(v, 32)
			return float32(f), err
		})
	case "float64":
		return fromStrings(fields, shape, func(v string) (float64, error) {
			return strconv.ParseFloat(v, 64)
		})
	case "int32":
		return fromStrings(fields, shape, func(v string) (int32, error) {
			n, err := strconv.ParseInt(v, 10, 32)
			return int32(n), err
		})
	case "int64":
		return fromStrings(fields, shape, func(v string) (int64, error) {
			return strconv.ParseInt(v, 10, 64)
		})
	default:
		return nil, fmt.Errorf("unsupported dtype %q", dtype)
	}
}

func fromStrings[T sqdiff.DType](fields []string, shape sqdiff.Shape, parse func(string) (T, error)) (*sqdiff.RawTensor, error) {
	data := make([]T, 0, len(fields))
	for _, f := range fields {
		v, err := parse(strings.TrimSpace(f))
		if err != nil {
			return nil, fmt.Errorf("invalid value %q", f)
		}
		data = append(data, v)
	}
	return sqdiff.FromSlice(data, shape)
}

// formatTensor renders the flat element values in row-major order.
func formatTensor(t *sqdiff.RawTensor) string {
	var parts []string
	switch t.DType() {
	case sqdiff.Float32:
		for _, v := range sqdiff.Data[float32](t) {
			parts = append(parts, strconv.FormatFloat(float64(v), 'g', -1, 32))
		}
	case sqdiff.Float64:
		for _, v := range sqdiff.Data[float64](t) {
			parts = append(parts, strconv.FormatFloat(v, 'g', -1, 64))
		}
	case sqdiff.Int32:
		for _, v := range sqdiff.Data[int32](t) {
			parts = append(parts, strconv.FormatInt(int64(v), 10))
		}
	case sqdiff.Int64:
		for _, v := range sqdiff.Data[int64](t) {
			parts = append(parts, strconv.FormatInt(v, 10))
		}
	}
	return "[" + strings.Join(parts, ", ") + "]"
}
