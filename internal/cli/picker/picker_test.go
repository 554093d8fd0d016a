package picker

import (
	"context"
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"

	portmocks "github.com/poricom/poricom/internal/application/port/mocks"
	"github.com/poricom/poricom/internal/domain/entity"
)

func TestIndexOptions(t *testing.T) {
	prop, ok := entity.OCRCatalog.Lookup(entity.PropEngine)
	require.True(t, ok)

	options := IndexOptions(prop)
	require.Len(t, options, len(entity.EngineLabels))
	for i, opt := range options {
		assert.Equal(t, entity.EngineLabels[i], opt.Key)
		assert.Equal(t, i, opt.Value)
	}
}

func TestValidators(t *testing.T) {
	assert.NoError(t, notBlank("Arial"))
	assert.Error(t, notBlank("  "))

	assert.NoError(t, positiveInt(" 12 "))
	assert.Error(t, positiveInt("0"))
	assert.Error(t, positiveInt("big"))
}

func TestNew_Options(t *testing.T) {
	p := New(WithAccessible(true))
	assert.True(t, p.accessible)
	assert.Nil(t, p.input)
}

func TestFamilyOptions(t *testing.T) {
	options := FamilyOptions([]string{"Arial", "Noto Sans CJK JP"}, "Arial")
	require.Len(t, options, 2)
	assert.Equal(t, "Arial", options[0].Value)

	options = FamilyOptions([]string{"Noto Sans CJK JP"}, "Comic Sans")
	require.Len(t, options, 2)
	assert.Equal(t, "Comic Sans", options[0].Value)

	assert.Len(t, FamilyOptions(nil, ""), 0)
}

func TestPicker_Families(t *testing.T) {
	ctx := context.Background()

	lister := portmocks.NewMockFontLister(t)
	lister.EXPECT().ListFontFamilies(mock.Anything).Return([]string{"Arial"}, nil).Once()
	assert.Equal(t, []string{"Arial"}, New(WithFonts(lister)).families(ctx))

	failing := portmocks.NewMockFontLister(t)
	failing.EXPECT().ListFontFamilies(mock.Anything).Return(nil, errors.New("no fc-list")).Once()
	assert.Nil(t, New(WithFonts(failing)).families(ctx))

	assert.Nil(t, New().families(ctx))
}
