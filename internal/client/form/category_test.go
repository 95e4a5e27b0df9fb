package form

import (
	"context"
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/DaoQuangHuy2702/ludoan72-news/internal/common"
)

func TestCategoryForm_ColorCodeValidation(t *testing.T) {
	f := NewCategoryForm(&fakeCategoryRepo{})
	require.NoError(t, f.Load(context.Background(), ""))
	f.Draft.Name = "Tin tức"

	for _, bad := range []string{"", "red", "#fff", "#12345g", "123456"} {
		f.Draft.ColorCode = bad
		require.ErrorIs(t, f.Validate(), common.ErrValidation, "color %q", bad)
	}

	f.Draft.ColorCode = "#1F6FEB"
	require.NoError(t, f.Validate())

	_, err := f.Submit(context.Background())
	require.NoError(t, err)
}

func TestCategoryForm_NameRequired(t *testing.T) {
	f := NewCategoryForm(&fakeCategoryRepo{})
	require.NoError(t, f.Load(context.Background(), ""))

	err := f.Validate()
	var verr *ValidationError
	require.ErrorAs(t, err, &verr)
	require.Contains(t, verr.Fields, "name")
}
