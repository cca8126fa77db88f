// SPDX-License-Identifier: MPL-2.0

package channel

import (
	"errors"
	"testing"
)

func TestChannelName_Validate(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name    string
		value   ChannelName
		wantErr bool
	}{
		{"simple", ChannelName("Plex"), false},
		{"with spaces", ChannelName("My Channel"), false},
		{"with dash", ChannelName("yt-dlp"), false},
		{"empty", ChannelName(""), true},
		{"whitespace only", ChannelName("   "), true},
		{"forward slash", ChannelName("a/b"), true},
		{"backslash", ChannelName(`a\b`), true},
		{"windows reserved", ChannelName("con"), true},
		{"windows reserved uppercase", ChannelName("NUL"), true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()
			err := tt.value.Validate()
			if tt.wantErr {
				if err == nil {
					t.Fatalf("ChannelName(%q).Validate() returned nil, want error", tt.value)
				}
				if !errors.Is(err, ErrInvalidChannelName) {
					t.Errorf("error should wrap ErrInvalidChannelName, got: %v", err)
				}
			} else if err != nil {
				t.Errorf("ChannelName(%q).Validate() returned unexpected error: %v", tt.value, err)
			}
		})
	}
}
