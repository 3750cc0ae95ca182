package http

import (
	"bytes"
	"fmt"
	"html/template"
	"io"

	"github.com/staykeeper/staykeeper/models"
	"github.com/yuin/goldmark"
	"github.com/yuin/goldmark/extension"
)

// guideViews renders the guest-facing HTML pages. Section bodies are written
// by owners in markdown and converted with goldmark; everything else goes
// through html/template so owner input stays escaped.
type guideViews struct {
	markdown goldmark.Markdown
	guide    *template.Template
	print    *template.Template
}

func newGuideViews() *guideViews {
	return &guideViews{
		markdown: goldmark.New(goldmark.WithExtensions(extension.GFM)),
		guide:    template.Must(template.New("guide").Parse(guideTemplate)),
		print:    template.Must(template.New("print").Parse(printTemplate)),
	}
}

type guideSectionView struct {
	ID       int64
	Title    string
	Body     template.HTML
	ImageURL string
}

type guideGroupView struct {
	Info     models.CategoryInfo
	Sections []guideSectionView
}

type guideViewModel struct {
	Property models.PublicProperty
	Groups   []guideGroupView
}

func (v *guideViews) renderGuide(w io.Writer, guide models.Guide) error {
	return v.guide.Execute(w, v.buildViewModel(guide))
}

func (v *guideViews) renderPrint(w io.Writer, guide models.Guide) error {
	return v.print.Execute(w, v.buildViewModel(guide))
}

func (v *guideViews) buildViewModel(guide models.Guide) guideViewModel {
	groups := models.GroupSections(guide.Sections)

	vm := guideViewModel{Property: guide.Property}
	for _, group := range groups {
		gv := guideGroupView{Info: group.Info}
		for _, section := range group.Sections {
			gv.Sections = append(gv.Sections, guideSectionView{
				ID:       section.ID,
				Title:    section.Title,
				Body:     v.renderMarkdown(section.Content),
				ImageURL: section.ImageURL,
			})
		}
		vm.Groups = append(vm.Groups, gv)
	}

	return vm
}

// renderMarkdown converts owner-authored markdown to HTML. On a conversion
// failure the content is shown escaped rather than dropped.
func (v *guideViews) renderMarkdown(content string) template.HTML {
	if content == "" {
		return ""
	}

	var buf bytes.Buffer
	if err := v.markdown.Convert([]byte(content), &buf); err != nil {
		var escaped bytes.Buffer
		template.HTMLEscape(&escaped, []byte(content))
		return template.HTML(fmt.Sprintf("<p>%s</p>", escaped.String()))
	}

	return template.HTML(buf.String())
}

const guideTemplate = `<!DOCTYPE html>
<html lang="en">
<head>
<meta charset="utf-8">
<meta name="viewport" content="width=device-width, initial-scale=1">
<title>{{.Property.Name}} — Guest Guide</title>
<style>
body { font-family: -apple-system, "Segoe UI", sans-serif; margin: 0 auto; max-width: 48rem; padding: 1rem; color: #1d1d1f; }
header img { width: 100%; border-radius: 12px; }
h1 { margin-bottom: 0.25rem; }
.address { color: #6e6e73; margin-top: 0; }
h2 { border-bottom: 2px solid #e5e5ea; padding-bottom: 0.3rem; margin-top: 2rem; }
article { margin: 1.25rem 0; }
article img { max-width: 100%; border-radius: 8px; }
</style>
</head>
<body>
<header>
{{if .Property.CoverImage}}<img src="{{.Property.CoverImage}}" alt="{{.Property.Name}}">{{end}}
<h1>{{.Property.Name}}</h1>
{{if .Property.Address}}<p class="address">{{.Property.Address}}</p>{{end}}
</header>
{{range .Groups}}
<section>
<h2>{{.Info.Label}}</h2>
{{range .Sections}}
<article>
<h3>{{.Title}}</h3>
{{if .ImageURL}}<img src="{{.ImageURL}}" alt="{{.Title}}">{{end}}
{{.Body}}
</article>
{{end}}
</section>
{{end}}
</body>
</html>
`

const printTemplate = `<!DOCTYPE html>
<html lang="en">
<head>
<meta charset="utf-8">
<title>{{.Property.Name}} — Guest Guide (print)</title>
<style>
body { font-family: Georgia, serif; margin: 2rem; color: #000; }
nav { page-break-after: always; }
nav ol { line-height: 1.8; }
section { page-break-inside: avoid; }
h2 { border-bottom: 1px solid #000; }
@media print { a { color: #000; text-decoration: none; } }
</style>
</head>
<body>
<h1>{{.Property.Name}}</h1>
{{if .Property.Address}}<p>{{.Property.Address}}</p>{{end}}
<nav>
<h2>Contents</h2>
<ol>
{{range .Groups}}<li>{{.Info.Label}}<ol>
{{range .Sections}}<li><a href="#section-{{.ID}}">{{.Title}}</a></li>
{{end}}</ol></li>
{{end}}</ol>
</nav>
{{range .Groups}}
<section>
<h2>{{.Info.Label}}</h2>
{{range .Sections}}
<article id="section-{{.ID}}">
<h3>{{.Title}}</h3>
{{.Body}}
</article>
{{end}}
</section>
{{end}}
</body>
</html>
`
