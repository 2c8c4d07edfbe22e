package slidemeta

import (
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/mattsolo1/grove-slides/pkg/models"
)

func TestClassify(t *testing.T) {
	tests := []struct {
		name string
		meta map[string]any
		want models.SlideType
	}{
		{
			name: "nil metadata",
			meta: nil,
			want: models.SlideTypeNone,
		},
		{
			name: "nested host shape",
			meta: map[string]any{"metadata": map[string]any{"slideshow": map[string]any{"slide_type": "slide"}}},
			want: models.SlideTypeSlide,
		},
		{
			name: "legacy custom shape",
			meta: map[string]any{"custom": map[string]any{"metadata": map[string]any{"slideshow": map[string]any{"slide_type": "subslide"}}}},
			want: models.SlideTypeSubslide,
		},
		{
			name: "direct ipynb shape",
			meta: map[string]any{"slideshow": map[string]any{"slide_type": "fragment"}},
			want: models.SlideTypeFragment,
		},
		{
			name: "flattened shape",
			meta: map[string]any{"slide_type": "notes"},
			want: models.SlideTypeNotes,
		},
		{
			name: "nested wins over direct",
			meta: map[string]any{
				"metadata":  map[string]any{"slideshow": map[string]any{"slide_type": "slide"}},
				"slideshow": map[string]any{"slide_type": "skip"},
			},
			want: models.SlideTypeSlide,
		},
		{
			name: "non-string leaf falls through to next shape",
			meta: map[string]any{
				"metadata":   map[string]any{"slideshow": map[string]any{"slide_type": 3.0}},
				"slide_type": "fragment",
			},
			want: models.SlideTypeFragment,
		},
		{
			name: "jupyter placeholder",
			meta: map[string]any{"slideshow": map[string]any{"slide_type": "-"}},
			want: models.SlideTypeNone,
		},
		{
			name: "unknown value passes through",
			meta: map[string]any{"slide_type": "chapter"},
			want: models.SlideType("chapter"),
		},
		{
			name: "slideshow is not a map",
			meta: map[string]any{"slideshow": "slide"},
			want: models.SlideTypeNone,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, Classify(tt.meta))
		})
	}
}

func TestLookupReportsShape(t *testing.T) {
	_, shape, ok := Lookup(map[string]any{"custom": map[string]any{"metadata": map[string]any{"slideshow": map[string]any{"slide_type": "slide"}}}})
	assert.True(t, ok)
	assert.Equal(t, ShapeLegacyCustom, shape)

	_, _, ok = Lookup(map[string]any{"tags": []any{"x"}})
	assert.False(t, ok)
}

func TestStrategiesOrder(t *testing.T) {
	assert.Equal(t, []Shape{ShapeNested, ShapeLegacyCustom, ShapeDirect, ShapeFlat}, Strategies())
}

func TestSpacerPair(t *testing.T) {
	filler, sentinel := NewSpacerPair(3)

	kind, ok := SpacerKindOf(filler)
	assert.True(t, ok)
	assert.Equal(t, SpacerFiller, kind)
	assert.Equal(t, "&nbsp;\n&nbsp;\n&nbsp;", filler.Source)

	kind, ok = SpacerKindOf(sentinel)
	assert.True(t, ok)
	assert.Equal(t, SpacerSentinel, kind)
	assert.Equal(t, "&nbsp;", sentinel.Source)

	assert.Equal(t, models.SlideTypeSkip, ClassifyCell(filler))
	assert.Equal(t, models.SlideTypeSkip, ClassifyCell(sentinel))
	assert.True(t, filler.IsMarkup())
}

func TestSpacerPairDefaultsHeight(t *testing.T) {
	filler, _ := NewSpacerPair(0)
	assert.Len(t, strings.Split(filler.Source, "\n"), models.DefaultSpacerLines)
}

func TestIsSpacerNestedMarker(t *testing.T) {
	c := models.Cell{Metadata: map[string]any{"metadata": map[string]any{MarkerKey: "filler"}}}
	assert.True(t, IsSpacer(c))
	assert.False(t, IsSpacer(models.Cell{Metadata: map[string]any{"slideshow": map[string]any{"slide_type": "skip"}}}))
}
