package form

import (
	"context"
	"regexp"

	"github.com/DaoQuangHuy2702/ludoan72-news/internal/client/models"
	"github.com/DaoQuangHuy2702/ludoan72-news/internal/client/resources/categories"
)

var colorCodeRe = regexp.MustCompile(`^#[0-9a-fA-F]{6}$`)

// CategoryForm drives the create/edit flow for an article category.
type CategoryForm struct {
	repo categories.Repository

	id    string
	Draft models.Category
}

func NewCategoryForm(repo categories.Repository) *CategoryForm {
	return &CategoryForm{repo: repo}
}

func (f *CategoryForm) Load(ctx context.Context, id string) error {
	f.id = id
	if id == "" {
		f.Draft = models.Category{ColorCode: "#1f6feb"}
		return nil
	}
	c, err := f.repo.Get(ctx, id)
	if err != nil {
		return err
	}
	f.Draft = *c
	return nil
}

func (f *CategoryForm) Editing() bool { return f.id != "" }

func (f *CategoryForm) Validate() error {
	fields := FieldErrors{}
	required(fields, "name", f.Draft.Name)
	if !colorCodeRe.MatchString(f.Draft.ColorCode) {
		fields["colorCode"] = "must look like #RRGGBB"
	}
	return invalid(fields)
}

func (f *CategoryForm) Submit(ctx context.Context) (*models.Category, error) {
	if err := f.Validate(); err != nil {
		return nil, err
	}
	if f.id == "" {
		return f.repo.Create(ctx, &f.Draft)
	}
	return f.repo.Update(ctx, f.id, &f.Draft)
}
