// SPDX-License-Identifier: MPL-2.0

package channel

import (
	"errors"
	"testing"
)

func TestOSFamily_Validate(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name    string
		family  OSFamily
		wantErr bool
	}{
		{"unix", FamilyUnix, false},
		{"windows", FamilyWindows, false},
		{"empty", OSFamily(""), true},
		{"unknown", OSFamily("plan9"), true},
		{"case sensitive", OSFamily("Unix"), true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()
			err := tt.family.Validate()
			if tt.wantErr {
				if err == nil {
					t.Fatalf("OSFamily(%q).Validate() returned nil, want error", tt.family)
				}
				if !errors.Is(err, ErrInvalidOSFamily) {
					t.Errorf("error should wrap ErrInvalidOSFamily, got: %v", err)
				}
				var ofe *InvalidOSFamilyError
				if !errors.As(err, &ofe) {
					t.Errorf("error should be *InvalidOSFamilyError, got: %T", err)
				}
			} else if err != nil {
				t.Errorf("OSFamily(%q).Validate() returned unexpected error: %v", tt.family, err)
			}
		})
	}
}

func TestParseOSFamily(t *testing.T) {
	t.Parallel()

	if f, err := ParseOSFamily("unix"); err != nil || f != FamilyUnix {
		t.Errorf("ParseOSFamily(\"unix\") = %q, %v", f, err)
	}
	if _, err := ParseOSFamily("dos"); err == nil {
		t.Error("ParseOSFamily(\"dos\") returned nil error")
	}
}

func TestFamilies_FixedOrder(t *testing.T) {
	t.Parallel()

	fams := Families()
	if len(fams) != 2 || fams[0] != FamilyUnix || fams[1] != FamilyWindows {
		t.Errorf("Families() = %v, want [unix windows]", fams)
	}
}
