package hcl

import (
	"fmt"

	"github.com/hashicorp/hcl/v2"
	"github.com/specialistvlad/adventgrid/internal/config"
	"github.com/zclconf/go-cty/cty"
	"github.com/zclconf/go-cty/cty/convert"
)

// translatePuzzle converts the HCL-specific puzzle block into the agnostic
// model.
func translatePuzzle(path string, b *puzzleBlock) (*config.Puzzle, error) {
	expect, err := expectations(b.Expect)
	if err != nil {
		return nil, fmt.Errorf("puzzle %q: %w", b.Name, err)
	}
	return &config.Puzzle{
		Name:      b.Name,
		Day:       b.Day,
		Parts:     b.Parts,
		InputPath: config.ResolvePath(path, b.Input),
		Input:     b.Inline,
		Expect:    expect,
	}, nil
}

// expectations evaluates the expect attribute. Answers may be written as
// numbers or strings; both are converted to their string form.
func expectations(expr hcl.Expression) (map[int]string, error) {
	if expr == nil {
		return nil, nil
	}
	val, diags := expr.Value(nil)
	if diags.HasErrors() {
		return nil, fmt.Errorf("invalid expect value: %w", diags)
	}
	if val.IsNull() {
		return nil, nil
	}
	ty := val.Type()
	if !ty.IsObjectType() && !ty.IsMapType() {
		return nil, fmt.Errorf("expect must be an object, got %s", ty.FriendlyName())
	}

	out := make(map[int]string)
	for key, v := range val.AsValueMap() {
		part, err := config.ParsePartKey(key)
		if err != nil {
			return nil, err
		}
		s, err := convert.Convert(v, cty.String)
		if err != nil {
			return nil, fmt.Errorf("cannot convert %s answer for %s to a string: %w", v.Type().FriendlyName(), key, err)
		}
		if s.IsNull() {
			return nil, fmt.Errorf("answer for %s is null", key)
		}
		out[part] = s.AsString()
	}
	return out, nil
}
