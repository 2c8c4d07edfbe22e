package slides

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/mattsolo1/grove-slides/pkg/models"
)

func TestRenderStatus(t *testing.T) {
	idx := models.SlideIndex{
		{Position: 2, Ordinal: 1, Type: slide},
		{Position: 5, Ordinal: 2, Type: slide},
	}

	tests := []struct {
		name  string
		idx   models.SlideIndex
		pos   int
		state models.ViewState
		want  string
	}{
		{"first slide", idx, 2, models.ViewState{}, "▣ Slide 1/2"},
		{"inside second slide", idx, 7, models.ViewState{}, "▣ Slide 2/2"},
		{"before first slide", idx, 0, models.ViewState{}, "▣ Slide 1/2"},
		{"spacer view on", idx, 5, models.ViewState{SpacerActive: true}, "▣ ⇕ Slide 2/2"},
		{"empty index", nil, 0, models.ViewState{}, ""},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, RenderStatus(tt.idx, tt.pos, tt.state))
		})
	}
}

func TestRenderStatusIgnoresFragmentsInTotal(t *testing.T) {
	idx := models.SlideIndex{
		{Position: 0, Ordinal: 1, Type: slide},
		{Position: 1, Ordinal: 1, Type: fragment},
		{Position: 2, Ordinal: 2, Type: subslide},
	}
	assert.Equal(t, "▣ Slide 1/2", RenderStatus(idx, 1, models.ViewState{}))
}
