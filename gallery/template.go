package gallery

import (
	"context"
	"embed"
	"html/template"
	"io"
	"io/fs"
	"strings"

	"github.com/microcosm-cc/bluemonday"
	"github.com/russross/blackfriday/v2"
)

var (
	//go:embed templates
	templateFS embed.FS

	//go:embed assets/style.css
	cssContent string

	//go:embed assets/favicon.svg
	faviconContent string

	markdownPolicy = bluemonday.UGCPolicy()

	// TemplateFuncMap contains the functions available to every template
	TemplateFuncMap = template.FuncMap{
		"add": func(a, b int) int { return a + b },
		"markdown": func(text string) template.HTML {
			unsafe := blackfriday.Run([]byte(text))
			return template.HTML(markdownPolicy.SanitizeBytes(unsafe))
		},
		"imageURL": imageURL,
	}
)

// imageURL lets image data URIs through the template URL filter, which
// rejects the data scheme by default. Anything else is left to the filter.
func imageURL(data string) any {
	if strings.HasPrefix(data, "data:image/") {
		return template.URL(data)
	}
	return data
}

func newTemplates() (*TemplateManager, error) {
	sub, err := fs.Sub(templateFS, "templates")
	if err != nil {
		return nil, err
	}
	return NewTemplateManager(sub, TemplateFuncMap)
}

// RenderPage renders a page, adding the stylesheet and the translation
// function of the request to data.
func (a *GalleryApp) RenderPage(ctx context.Context, w io.Writer, pageName string, data map[string]any) error {
	if data == nil {
		data = make(map[string]any)
	}
	data["CSS"] = template.CSS(cssContent)
	data["T"] = a.translator.Func(ctx)
	data["Title"] = a.Config.Meta.Title
	return a.templates.Render(w, "pages/"+pageName, data)
}

// GetFavicon returns the embedded favicon content
func GetFavicon() string {
	return faviconContent
}
