package layoutfile

import (
	"bytes"
	"encoding/json"
	"fmt"
	"io"
	"os"
	"path/filepath"
	"slices"
	"strconv"
	"strings"

	"github.com/BurntSushi/toml"
	"github.com/hashicorp/hcl/v2"
	"github.com/hashicorp/hcl/v2/gohcl"
	"github.com/hashicorp/hcl/v2/hclparse"
	"github.com/zclconf/go-cty/cty"

	apperr "github.com/matzehuels/focusgrid/pkg/errors"
)

// Options controls how layout files are decoded.
type Options struct {
	// Vars are exposed to HCL expressions as var.<name>. Values that parse
	// as integers become numbers; everything else is a string. Ignored for
	// TOML and JSON.
	Vars map[string]string
}

// Formats lists the supported file extensions.
var Formats = []string{".toml", ".hcl", ".json"}

// Load reads the layout file at path, choosing the decoder by extension.
func Load(path string, opts Options) (*Layout, error) {
	if err := apperr.ValidateFilePath(path); err != nil {
		return nil, err
	}
	ext := strings.ToLower(filepath.Ext(path))
	if !slices.Contains(Formats, ext) {
		return nil, apperr.New(apperr.ErrCodeInvalidFormat, "unsupported layout format %q (want one of %s)", ext, strings.Join(Formats, ", "))
	}

	data, err := os.ReadFile(path)
	if err != nil {
		if os.IsNotExist(err) {
			return nil, apperr.Wrap(apperr.ErrCodeFileNotFound, err, "layout file %s not found", path)
		}
		return nil, fmt.Errorf("read %s: %w", path, err)
	}

	switch ext {
	case ".hcl":
		return ParseHCL(data, path, opts.Vars)
	case ".json":
		return ReadJSON(bytes.NewReader(data))
	default:
		return ReadTOML(bytes.NewReader(data))
	}
}

// ReadTOML decodes a TOML layout from r. Keys that do not map onto the
// layout model are rejected.
func ReadTOML(r io.Reader) (*Layout, error) {
	var l Layout
	md, err := toml.NewDecoder(r).Decode(&l)
	if err != nil {
		return nil, apperr.Wrap(apperr.ErrCodeInvalidFormat, err, "decode toml")
	}
	if undecoded := md.Undecoded(); len(undecoded) > 0 {
		keys := make([]string, len(undecoded))
		for i, k := range undecoded {
			keys[i] = k.String()
		}
		return nil, apperr.New(apperr.ErrCodeInvalidFormat, "unknown toml keys: %s", strings.Join(keys, ", "))
	}
	return &l, nil
}

// ReadJSON decodes a JSON layout from r. Unknown fields are rejected.
// ReadJSON does not close r.
func ReadJSON(r io.Reader) (*Layout, error) {
	dec := json.NewDecoder(r)
	dec.DisallowUnknownFields()
	var l Layout
	if err := dec.Decode(&l); err != nil {
		return nil, apperr.Wrap(apperr.ErrCodeInvalidFormat, err, "decode json")
	}
	return &l, nil
}

// hclVariables is the first decoding pass: variable declarations with
// literal defaults. Everything else is left in Remain.
type hclVariables struct {
	Variables []hclVariable `hcl:"variable,block"`
	Remain    hcl.Body      `hcl:",remain"`
}

type hclVariable struct {
	Name    string    `hcl:"name,label"`
	Default cty.Value `hcl:"default,optional"`
}

// hclLayouts is the second pass, evaluated with variables in scope.
type hclLayouts struct {
	Layouts []Layout `hcl:"layout,block"`
}

// ParseHCL decodes an HCL layout. filename is used in diagnostics only. The
// file may declare variables with defaults:
//
//	variable "rows" {
//	  default = 6
//	}
//
// vars override those defaults. The file must contain exactly one top-level
// layout block.
func ParseHCL(src []byte, filename string, vars map[string]string) (*Layout, error) {
	parser := hclparse.NewParser()
	file, diags := parser.ParseHCL(src, filename)
	if diags.HasErrors() {
		return nil, apperr.Wrap(apperr.ErrCodeInvalidFormat, diags, "parse hcl %s", filename)
	}

	var decl hclVariables
	if diags := gohcl.DecodeBody(file.Body, nil, &decl); diags.HasErrors() {
		return nil, apperr.Wrap(apperr.ErrCodeInvalidFormat, diags, "decode hcl variables %s", filename)
	}

	var root hclLayouts
	if diags := gohcl.DecodeBody(decl.Remain, evalContext(decl.Variables, vars), &root); diags.HasErrors() {
		return nil, apperr.Wrap(apperr.ErrCodeInvalidFormat, diags, "decode hcl %s", filename)
	}
	if len(root.Layouts) != 1 {
		return nil, apperr.New(apperr.ErrCodeInvalidFormat, "%s: want exactly one top-level layout block, got %d", filename, len(root.Layouts))
	}
	return &root.Layouts[0], nil
}

func evalContext(decls []hclVariable, vars map[string]string) *hcl.EvalContext {
	vals := make(map[string]cty.Value, len(decls)+len(vars))
	for _, d := range decls {
		if !d.Default.IsNull() {
			vals[d.Name] = d.Default
		}
	}
	for k, v := range vars {
		if n, err := strconv.Atoi(v); err == nil {
			vals[k] = cty.NumberIntVal(int64(n))
			continue
		}
		vals[k] = cty.StringVal(v)
	}
	varObj := cty.EmptyObjectVal
	if len(vals) > 0 {
		varObj = cty.ObjectVal(vals)
	}
	return &hcl.EvalContext{Variables: map[string]cty.Value{"var": varObj}}
}

// ParseVars parses name=value pairs as given on the command line.
func ParseVars(pairs []string) (map[string]string, error) {
	vars := make(map[string]string, len(pairs))
	for _, p := range pairs {
		name, value, ok := strings.Cut(p, "=")
		name = strings.TrimSpace(name)
		if !ok || name == "" {
			return nil, apperr.New(apperr.ErrCodeInvalidInput, "variable %q must be name=value", p)
		}
		vars[name] = value
	}
	return vars, nil
}
