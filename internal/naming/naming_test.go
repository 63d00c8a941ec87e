package naming

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestComponentName(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name  string
		input string
		want  string
	}{
		{name: "two segments", input: "slide-ngfw", want: "SlideNgfw"},
		{name: "three segments", input: "slide-intel-divider", want: "SlideIntelDivider"},
		{name: "four segments", input: "slide-thank-you", want: "SlideThankYou"},
		{name: "single segment", input: "presentation", want: "Presentation"},
		{name: "tail is lowercased", input: "slide-NGFW", want: "SlideNgfw"},
		{name: "acronym segment stays title case", input: "slide-ai-overview", want: "SlideAiOverview"},
		{name: "digit-led segment stays lowercase", input: "slide-3d", want: "Slide3d"},
		{name: "digit-led middle segment", input: "slide-3d-view", want: "Slide3dView"},
		{name: "letters after digits stay lowercase", input: "slide-2025q1", want: "Slide2025q1"},
		{name: "empty segment", input: "slide--ngfw", want: "SlideNgfw"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()
			assert.Equal(t, tt.want, ComponentName(tt.input))
		})
	}
}

func TestComponentName_Deterministic(t *testing.T) {
	t.Parallel()
	assert.Equal(t, ComponentName("slide-zero-trust"), ComponentName("slide-zero-trust"))
}

func TestPropsName(t *testing.T) {
	t.Parallel()
	assert.Equal(t, "SlideNgfwProps", PropsName("SlideNgfw"))
}

func TestFileName(t *testing.T) {
	t.Parallel()
	assert.Equal(t, "slide-ngfw.tsx", FileName("slide-ngfw", ".tsx"))
}
