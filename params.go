// SPDX-License-Identifier: Apache-2.0
// SPDX-FileCopyrightText: 2025-Present Defense Unicorns

package brewbump

// Environment variables read by ParamsFromEnv, in the order they are checked
const (
	EnvHash        = "HASH"
	EnvTarget      = "TARGET"
	EnvFormulaPath = "FORMULA_PATH"
	EnvTag         = "TAG"
)

// Params are the inputs to a single formula patch
type Params struct {
	Hash        string
	Target      Target
	FormulaPath string
	Tag         string
}

// ParamsFromEnv reads Params using lookup (usually os.LookupEnv)
//
// A variable set to the empty string counts as present
func ParamsFromEnv(lookup func(string) (string, bool)) (Params, error) {
	var p Params

	fields := []struct {
		name string
		dst  *string
	}{
		{EnvHash, &p.Hash},
		{EnvTarget, (*string)(&p.Target)},
		{EnvFormulaPath, &p.FormulaPath},
		{EnvTag, &p.Tag},
	}

	for _, f := range fields {
		val, ok := lookup(f.name)
		if !ok {
			return Params{}, &MissingParameterError{Name: f.name}
		}
		*f.dst = val
	}

	return p, nil
}
