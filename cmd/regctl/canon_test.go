package main

import (
	"strings"
	"testing"
)

func TestCanonCommand(t *testing.T) {
	tests := []struct {
		name        string
		raw         string
		wantErr     bool
		wantContain []string
	}{
		{
			name:        "long hive normalizes",
			raw:         `hkey_local_machine\SOFTWARE\Vendor`,
			wantContain: []string{`HKLM\SOFTWARE\Vendor`, `hklm\software\vendor`},
		},
		{
			name:        "32-bit prefix kept",
			raw:         `32:hklm\Software`,
			wantContain: []string{`32:HKLM\Software`, "32-bit"},
		},
		{
			name:    "rejected root",
			raw:     `HKEY_USERS\Foo`,
			wantErr: true,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			quiet = false
			jsonOut = false

			out, err := captureOutput(t, func() error {
				return runCanon(tt.raw)
			})
			if tt.wantErr {
				if err == nil {
					t.Fatalf("expected error for %q", tt.raw)
				}
				return
			}
			if err != nil {
				t.Fatalf("runCanon failed: %v", err)
			}
			for _, want := range tt.wantContain {
				if !strings.Contains(out, want) {
					t.Errorf("output missing %q:\n%s", want, out)
				}
			}
		})
	}
}

func TestValidateCommand(t *testing.T) {
	quiet = true
	defer func() { quiet = false }()

	if err := runValidate([]string{`HKLM\Software`, `32:HKCR\.txt`}); err != nil {
		t.Fatalf("valid paths rejected: %v", err)
	}
	if err := runValidate([]string{`HKLM\Software`, `HKU\Foo`}); err == nil {
		t.Error("expected error for unsupported root")
	}

	validateValuePaths = true
	defer func() { validateValuePaths = false }()
	if err := runValidate([]string{`HKLM\Software\Vendor\`}); err != nil {
		t.Fatalf("default-value path rejected: %v", err)
	}
}
