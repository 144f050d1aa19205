package entity

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestBumpVersion(t *testing.T) {
	tests := []struct {
		current string
		want    string
	}{
		{current: "1.0.0", want: "1.0.1"},
		{current: "1.2.3", want: "1.2.4"},
		{current: "1.0.8", want: "1.0.9"},
		{current: "1.0.9", want: "1.1.0"},
		{current: "2.9.9", want: "2.10.0"},
		{current: "1.0.12", want: "1.1.0"},
		{current: "", want: "1.1.0"},
		{current: "1.0", want: "1.1.0"},
		{current: "v1.0.0", want: "1.1.0"},
		{current: "1.x.0", want: "1.1.0"},
		{current: "1.0.0.0", want: "1.1.0"},
	}

	for _, tt := range tests {
		t.Run(tt.current, func(t *testing.T) {
			assert.Equal(t, tt.want, BumpVersion(tt.current))
		})
	}
}

func TestPatchReason(t *testing.T) {
	assert.Equal(t, []LogTag{LogTagBugFix, LogTagSecurityFix}, PatchReasonCrash.Tags())
	assert.Equal(t, "Automatic stability fix after multiple crash reports.", PatchReasonCrash.Description())
	assert.Equal(t, []LogTag{LogTagAddFeature, LogTagBugFix}, PatchReasonNegativeFeedback.Tags())
	assert.Equal(t, "Balance update based on community feedback.", PatchReasonNegativeFeedback.Description())
	assert.Nil(t, PatchReason("OTHER").Tags())
}
