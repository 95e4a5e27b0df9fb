package form

import (
	"context"
	"strings"

	"github.com/DaoQuangHuy2702/ludoan72-news/internal/client/models"
	"github.com/DaoQuangHuy2702/ludoan72-news/internal/client/resources/articles"
	"github.com/DaoQuangHuy2702/ludoan72-news/internal/client/resources/categories"
	"github.com/DaoQuangHuy2702/ludoan72-news/internal/client/upload"
)

// Editor is the collaborator that owns the article body while the form is
// open. The CLI implements it over the user's $EDITOR.
type Editor interface {
	Content() string
	SetContent(string)
	// Edit hands control to the user and returns when they are done.
	Edit() error
}

// ArticleForm drives the create/edit flow for a news or activity post.
type ArticleForm struct {
	repo   articles.Repository
	cats   categories.Repository
	editor Editor

	id    string
	Draft models.Article

	Categories []models.Category

	// Thumbnail is the staged upload slot for the cover image.
	Thumbnail *upload.Slot
}

func NewArticleForm(repo articles.Repository, cats categories.Repository, editor Editor, thumbnail *upload.Slot) *ArticleForm {
	return &ArticleForm{repo: repo, cats: cats, editor: editor, Thumbnail: thumbnail}
}

// Load initializes the draft and the category options.
func (f *ArticleForm) Load(ctx context.Context, id string) error {
	f.id = id
	if id == "" {
		f.Draft = models.Article{
			Type:        models.ArticleTypeNews,
			Status:      models.ArticleStatusDraft,
			PublishedAt: models.Today(),
		}
		f.editor.SetContent("")
	} else {
		a, err := f.repo.Get(ctx, id)
		if err != nil {
			return err
		}
		f.Draft = *a
		f.editor.SetContent(a.Content)
		f.Thumbnail.SetCommitted(a.Thumbnail)
	}

	cats, err := f.cats.All(ctx)
	if err != nil {
		return err
	}
	f.Categories = cats
	return nil
}

func (f *ArticleForm) Editing() bool { return f.id != "" }

// SetCategory selects a category from the loaded options.
func (f *ArticleForm) SetCategory(categoryID string) error {
	if categoryID == "" {
		f.Draft.Category = nil
		return nil
	}
	for _, c := range f.Categories {
		if c.ID == categoryID {
			ref := c.Ref()
			f.Draft.Category = &ref
			return nil
		}
	}
	return invalid(FieldErrors{"category": "unknown category"})
}

// EditBody opens the editor on the current body.
func (f *ArticleForm) EditBody() error {
	return f.editor.Edit()
}

func (f *ArticleForm) Validate() error {
	fields := FieldErrors{}
	required(fields, "title", f.Draft.Title)
	required(fields, "summary", f.Draft.Summary)
	oneOf(fields, "type", f.Draft.Type, []string{models.ArticleTypeNews, models.ArticleTypeActivity})
	oneOf(fields, "status", f.Draft.Status, []string{models.ArticleStatusDraft, models.ArticleStatusPublished})
	if f.Draft.Category == nil {
		fields["category"] = "is required"
	}
	return invalid(fields)
}

// Submit validates and sends the draft. On create the slug derives from the
// title; on edit the stored slug is kept.
func (f *ArticleForm) Submit(ctx context.Context) (*models.Article, error) {
	if err := f.Validate(); err != nil {
		return nil, err
	}
	f.Draft.Content = f.editor.Content()
	f.Draft.Thumbnail = f.Thumbnail.Committed()
	if f.id == "" {
		f.Draft.Slug = Slugify(f.Draft.Title)
		return f.repo.Create(ctx, &f.Draft)
	}
	return f.repo.Update(ctx, f.id, &f.Draft)
}

// vietnameseASCII folds the Vietnamese alphabet to its base letters for
// slug generation.
var vietnameseASCII = map[rune]rune{
	'à': 'a', 'á': 'a', 'ả': 'a', 'ã': 'a', 'ạ': 'a',
	'ă': 'a', 'ằ': 'a', 'ắ': 'a', 'ẳ': 'a', 'ẵ': 'a', 'ặ': 'a',
	'â': 'a', 'ầ': 'a', 'ấ': 'a', 'ẩ': 'a', 'ẫ': 'a', 'ậ': 'a',
	'è': 'e', 'é': 'e', 'ẻ': 'e', 'ẽ': 'e', 'ẹ': 'e',
	'ê': 'e', 'ề': 'e', 'ế': 'e', 'ể': 'e', 'ễ': 'e', 'ệ': 'e',
	'ì': 'i', 'í': 'i', 'ỉ': 'i', 'ĩ': 'i', 'ị': 'i',
	'ò': 'o', 'ó': 'o', 'ỏ': 'o', 'õ': 'o', 'ọ': 'o',
	'ô': 'o', 'ồ': 'o', 'ố': 'o', 'ổ': 'o', 'ỗ': 'o', 'ộ': 'o',
	'ơ': 'o', 'ờ': 'o', 'ớ': 'o', 'ở': 'o', 'ỡ': 'o', 'ợ': 'o',
	'ù': 'u', 'ú': 'u', 'ủ': 'u', 'ũ': 'u', 'ụ': 'u',
	'ư': 'u', 'ừ': 'u', 'ứ': 'u', 'ử': 'u', 'ữ': 'u', 'ự': 'u',
	'ỳ': 'y', 'ý': 'y', 'ỷ': 'y', 'ỹ': 'y', 'ỵ': 'y',
	'đ': 'd',
}

// Slugify turns a title into a URL slug: diacritics folded, lowercased,
// non-alphanumerics collapsed into single hyphens.
func Slugify(title string) string {
	var b strings.Builder
	lastHyphen := true
	for _, r := range strings.ToLower(title) {
		if folded, ok := vietnameseASCII[r]; ok {
			r = folded
		}
		switch {
		case r >= 'a' && r <= 'z' || r >= '0' && r <= '9':
			b.WriteRune(r)
			lastHyphen = false
		case !lastHyphen:
			b.WriteByte('-')
			lastHyphen = true
		}
	}
	return strings.Trim(b.String(), "-")
}
