package regpath_test

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/Clebam/puppetlabs-registry/pkg/regpath"
)

func TestParseValuePath(t *testing.T) {
	tests := []struct {
		name     string
		raw      string
		wantKey  string
		wantName string
	}{
		{
			name:     "named value",
			raw:      `HKLM\Software\Vendor\Version`,
			wantKey:  `HKLM\Software\Vendor`,
			wantName: "Version",
		},
		{
			name:     "value directly under the root",
			raw:      `HKLM\Startup`,
			wantKey:  `HKLM`,
			wantName: "Startup",
		},
		{
			name:     "trailing separator is the default value",
			raw:      `HKLM\Software\Vendor\`,
			wantKey:  `HKLM\Software\Vendor`,
			wantName: "",
		},
		{
			name:     "bare hive is the root default value",
			raw:      `HKCR`,
			wantKey:  `HKCR`,
			wantName: "",
		},
		{
			name:     "bit width carries through",
			raw:      `32:HKLM\Software\Vendor\Version`,
			wantKey:  `32:HKLM\Software\Vendor`,
			wantName: "Version",
		},
		{
			name:     "value name casing preserved",
			raw:      `HKLM\Software\INSTALLDIR`,
			wantKey:  `HKLM\Software`,
			wantName: "INSTALLDIR",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			v, err := regpath.ParseValuePath(tt.raw)
			require.NoError(t, err)
			assert.Equal(t, tt.wantKey, v.Key().Canonical())
			assert.Equal(t, tt.wantName, v.ValueName())
			assert.Equal(t, tt.wantName == "", v.IsDefault())
		})
	}
}

func TestParseValuePathErrors(t *testing.T) {
	for _, raw := range []string{
		"",
		`HKEY_USERS\Foo\Bar`,
		`HKLM\\Software\Version`,
		`16:HKLM\Software\Version`,
	} {
		_, err := regpath.ParseValuePath(raw)
		require.Error(t, err, "raw %q", raw)

		var synErr *regpath.SyntaxError
		assert.ErrorAs(t, err, &synErr)
	}
}

func TestComposeRoundTrip(t *testing.T) {
	keys := []string{
		`HKLM\Software\Vendor`,
		`32:HKLM\Software`,
		`HKCR\.txt`,
		`HKLM`,
	}
	names := []string{"Version", "", "MiXeD Case", "dotted.name"}

	for _, rawKey := range keys {
		k, err := regpath.Parse(rawKey)
		require.NoError(t, err)

		for _, name := range names {
			composed := regpath.Compose(k, name)
			v, err := regpath.ParseValuePath(composed)
			require.NoError(t, err, "composed %q", composed)
			assert.Equal(t, k.Canonical(), v.Key().Canonical())
			assert.Equal(t, name, v.ValueName())
		}
	}
}

func TestComposeDefaultValueSpelling(t *testing.T) {
	k, err := regpath.Parse(`HKLM\Software\Vendor`)
	require.NoError(t, err)
	assert.Equal(t, `HKLM\Software\Vendor\`, regpath.Compose(k, ""))
	assert.Equal(t, `HKLM\Software\Vendor\Version`, regpath.Compose(k, "Version"))
}

func TestValuePathAlias(t *testing.T) {
	a, err := regpath.ParseValuePath(`hklm\Software\Vendor\VERSION`)
	require.NoError(t, err)
	b, err := regpath.ParseValuePath(`HKLM\SOFTWARE\vendor\version`)
	require.NoError(t, err)

	assert.Equal(t, a.Alias(), b.Alias())
	assert.NotEqual(t, a.String(), b.String())
}
