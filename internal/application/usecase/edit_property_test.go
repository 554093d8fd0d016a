package usecase_test

import (
	"errors"
	"testing"

	portmocks "github.com/poricom/poricom/internal/application/port/mocks"
	"github.com/poricom/poricom/internal/application/usecase"
	"github.com/poricom/poricom/internal/domain/entity"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
)

func TestEditPropertyUseCase_AcceptedValueIsSet(t *testing.T) {
	ctx := testContext()
	store := newMemStore()
	picker := portmocks.NewMockValuePicker(t)
	g := newGroup(t, store, usecase.WriteThrough)
	g.Load(ctx)

	picker.EXPECT().
		PickColor(mock.Anything, mock.MatchedBy(func(p entity.Property) bool { return p.Name == entity.PropPreviewColor }), entity.RGBA(239, 240, 241, 255)).
		Return(entity.RGBA(1, 2, 3, 4), true, nil)

	out, err := usecase.NewEditPropertyUseCase(picker).Execute(ctx, usecase.EditPropertyInput{
		Group:    g,
		Property: entity.PropPreviewColor,
	})

	require.NoError(t, err)
	assert.True(t, out.Accepted)
	assert.Equal(t, entity.RGBA(1, 2, 3, 4), out.Value)
	assert.Equal(t, []int64{1, 2, 3, 4}, store.data[entity.SectionView][entity.PropPreviewColor])
}

func TestEditPropertyUseCase_CancelIsNoop(t *testing.T) {
	ctx := testContext()
	store := newMemStore()
	picker := portmocks.NewMockValuePicker(t)
	g := newGroup(t, store, usecase.WriteThrough)
	g.Load(ctx)
	writes := store.writes

	picker.EXPECT().PickDistance(mock.Anything, mock.Anything, entity.Distance(10)).Return(entity.Distance(0), false, nil)

	out, err := usecase.NewEditPropertyUseCase(picker).Execute(ctx, usecase.EditPropertyInput{
		Group:    g,
		Property: entity.PropPreviewPadding,
	})

	require.NoError(t, err)
	assert.False(t, out.Accepted)
	assert.Equal(t, entity.Distance(10), out.Value)
	assert.Equal(t, writes, store.writes)
}

func TestEditPropertyUseCase_InvalidPickIsRejected(t *testing.T) {
	ctx := testContext()
	picker := portmocks.NewMockValuePicker(t)
	g := newGroup(t, newMemStore(), usecase.WriteThrough)
	g.Load(ctx)

	picker.EXPECT().PickDistance(mock.Anything, mock.Anything, mock.Anything).Return(entity.Distance(1), true, nil)

	_, err := usecase.NewEditPropertyUseCase(picker).Execute(ctx, usecase.EditPropertyInput{
		Group:    g,
		Property: entity.PropPreviewPadding,
	})

	assert.ErrorIs(t, err, entity.ErrInvalidValue)
}

func TestEditPropertyUseCase_Errors(t *testing.T) {
	ctx := testContext()
	picker := portmocks.NewMockValuePicker(t)
	menu, err := usecase.NewSettingsMenu(usecase.SettingsMenuConfig{Store: newMemStore()})
	require.NoError(t, err)
	require.NoError(t, menu.Load(ctx))
	uc := usecase.NewEditPropertyUseCase(picker)

	_, err = uc.Execute(ctx, usecase.EditPropertyInput{Group: menu.OCR().Group(), Property: "language"})
	assert.ErrorIs(t, err, entity.ErrUnknownProperty)

	picker.EXPECT().PickIndex(mock.Anything, mock.Anything, entity.EnumIndex(1)).Return(entity.EnumIndex(0), false, errors.New("no tty"))
	_, err = uc.Execute(ctx, usecase.EditPropertyInput{Group: menu.OCR().Group(), Property: entity.PropEngine})
	assert.ErrorContains(t, err, "failed to pick engine")

	_, err = usecase.NewEditPropertyUseCase(nil).Execute(ctx, usecase.EditPropertyInput{Group: menu.OCR().Group()})
	assert.Error(t, err)
}
