package filter

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"reflect"
	"runtime"
	"time"

	"golang.org/x/sync/errgroup"

	"github.com/s0up4200/instantly/models"
)

// parallelThreshold is the record count above which Apply fans out
const parallelThreshold = 256

var extraType = reflect.TypeOf(models.Extra(nil))

// Environment flattens a record into the variables a filter expression sees:
// its wire field names, with timestamps as time.Time and any fields the
// client did not model taken from Extra.
func Environment(record any) (map[string]any, error) {
	data, err := json.Marshal(record)
	if err != nil {
		return nil, fmt.Errorf("encode record: %w", err)
	}
	if !bytes.HasPrefix(bytes.TrimSpace(data), []byte("{")) {
		return nil, fmt.Errorf("record %T is not an object", record)
	}

	fields := make(map[string]any)
	if err := json.Unmarshal(data, &fields); err != nil {
		return nil, fmt.Errorf("decode record: %w", err)
	}

	for key, raw := range extraFields(record) {
		if _, ok := fields[key]; ok {
			continue
		}
		var v any
		if err := json.Unmarshal(raw, &v); err == nil {
			fields[key] = v
		}
	}

	for key, v := range fields {
		if s, ok := v.(string); ok {
			if t, ok := parseInstant(s); ok {
				fields[key] = t
			}
		}
	}
	return fields, nil
}

// Apply returns the records matching f, in their original order.
func Apply[T any](ctx context.Context, f CompiledFilter, records []T) ([]T, error) {
	matched := make([]bool, len(records))

	eval := func(i int) error {
		env, err := Environment(&records[i])
		if err != nil {
			return &EvaluationError{Expression: f.Expression(), Index: i, Reason: "invalid record", Err: err}
		}
		ok, err := f.Evaluate(env)
		if err != nil {
			return &EvaluationError{Expression: f.Expression(), Index: i, Reason: err.Error(), Err: err}
		}
		matched[i] = ok
		return nil
	}

	if len(records) <= parallelThreshold {
		for i := range records {
			if err := ctx.Err(); err != nil {
				return nil, err
			}
			if err := eval(i); err != nil {
				return nil, err
			}
		}
	} else {
		g, gctx := errgroup.WithContext(ctx)
		g.SetLimit(runtime.NumCPU())
		for i := range records {
			g.Go(func() error {
				if err := gctx.Err(); err != nil {
					return err
				}
				return eval(i)
			})
		}
		if err := g.Wait(); err != nil {
			return nil, err
		}
	}

	out := make([]T, 0, len(records))
	for i, ok := range matched {
		if ok {
			out = append(out, records[i])
		}
	}
	return out, nil
}

// extraFields finds the Extra map of a record, including one promoted
// from an embedded Record.
func extraFields(record any) models.Extra {
	v := reflect.ValueOf(record)
	for v.Kind() == reflect.Pointer {
		if v.IsNil() {
			return nil
		}
		v = v.Elem()
	}
	if v.Kind() != reflect.Struct {
		return nil
	}
	f := v.FieldByName("Extra")
	if !f.IsValid() || f.Type() != extraType {
		return nil
	}
	return f.Interface().(models.Extra)
}

func parseInstant(s string) (time.Time, bool) {
	// Cheap shape check before parsing: 2006-01-02T15:04:05Z
	if len(s) < 20 || s[4] != '-' || s[10] != 'T' {
		return time.Time{}, false
	}
	t, err := time.Parse(time.RFC3339Nano, s)
	if err != nil {
		return time.Time{}, false
	}
	return t, true
}
