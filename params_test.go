// SPDX-License-Identifier: Apache-2.0
// SPDX-FileCopyrightText: 2025-Present Defense Unicorns

package brewbump

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func lookupFrom(env map[string]string) func(string) (string, bool) {
	return func(key string) (string, bool) {
		val, ok := env[key]
		return val, ok
	}
}

func TestParamsFromEnv(t *testing.T) {
	full := map[string]string{
		EnvHash:        "CCC",
		EnvTarget:      "x86_64-apple-darwin",
		EnvFormulaPath: "Formula/tool.rb",
		EnvTag:         "v1.0.1",
	}

	p, err := ParamsFromEnv(lookupFrom(full))
	require.NoError(t, err)
	assert.Equal(t, Params{
		Hash:        "CCC",
		Target:      TargetDarwin,
		FormulaPath: "Formula/tool.rb",
		Tag:         "v1.0.1",
	}, p)

	for _, name := range []string{EnvHash, EnvTarget, EnvFormulaPath, EnvTag} {
		t.Run("missing "+name, func(t *testing.T) {
			env := map[string]string{}
			for k, v := range full {
				if k != name {
					env[k] = v
				}
			}

			p, err := ParamsFromEnv(lookupFrom(env))
			require.EqualError(t, err, name+" is not set")
			var mErr *MissingParameterError
			require.ErrorAs(t, err, &mErr)
			assert.Equal(t, name, mErr.Name)
			assert.Equal(t, Params{}, p)
		})
	}

	t.Run("first missing is reported", func(t *testing.T) {
		_, err := ParamsFromEnv(lookupFrom(map[string]string{EnvHash: "CCC"}))
		require.EqualError(t, err, "TARGET is not set")

		_, err = ParamsFromEnv(lookupFrom(nil))
		require.EqualError(t, err, "HASH is not set")
	})

	t.Run("empty values count as set", func(t *testing.T) {
		p, err := ParamsFromEnv(lookupFrom(map[string]string{
			EnvHash:        "",
			EnvTarget:      "",
			EnvFormulaPath: "",
			EnvTag:         "",
		}))
		require.NoError(t, err)
		assert.Equal(t, Params{}, p)
	})
}
