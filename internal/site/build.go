// Package site writes the static rendition of the catalogue: a grid page
// of summary cards and one detail page per project, assembled from the
// embedded layouts plus header/footer partials.
package site

import (
	"bytes"
	"embed"
	"fmt"
	"html/template"
	"io"
	"io/fs"
	"net/url"
	"os"
	"path/filepath"

	"go.uber.org/zap"

	"github.com/karolinacerm/profolio/internal/catalog"
	"github.com/karolinacerm/profolio/internal/view"
	"github.com/karolinacerm/profolio/pkg/api"
)

//go:embed templates
var templateFS embed.FS

// Builder renders a catalogue snapshot into OutputDir.
type Builder struct {
	OutputDir   string
	SiteTitle   string
	BaseURL     string // optional absolute base; empty means relative paths
	PartialsDir string // optional partial overrides (header.html, footer.html)
	StaticDir   string // optional assets copied through verbatim

	log  *zap.Logger
	tmpl *template.Template
}

func NewBuilder(log *zap.Logger) *Builder {
	if log == nil {
		log = zap.NewNop()
	}
	return &Builder{log: log}
}

type pageData struct {
	SiteTitle string
	PageTitle string
	BaseHref  string
	Header    template.HTML
	Footer    template.HTML
	Cards     []view.CardView
	Detail    view.DetailView
}

// Build writes the whole site. The output directory is recreated from
// scratch so stale pages never survive a rename or deletion.
func (b *Builder) Build(cat catalog.Catalog) error {
	if err := b.parseTemplates(); err != nil {
		return err
	}
	if err := os.RemoveAll(b.OutputDir); err != nil {
		return fmt.Errorf("clean output dir: %w", err)
	}
	if err := os.MkdirAll(b.OutputDir, 0o755); err != nil {
		return fmt.Errorf("create output dir: %w", err)
	}

	if err := b.writeAssets(); err != nil {
		return err
	}

	if err := b.writeIndex(cat); err != nil {
		return err
	}

	for i := range cat.Projects {
		p := &cat.Projects[i]
		if p.ID == "" {
			b.log.Warn("project without id has no detail page",
				zap.String("title", p.Title))
			continue
		}
		if err := b.writeDetail(p); err != nil {
			return err
		}
	}
	b.log.Info("site built",
		zap.String("output", b.OutputDir), zap.Int("projects", cat.Len()))
	return nil
}

func (b *Builder) parseTemplates() error {
	t, err := template.ParseFS(templateFS, "templates/*.tmpl")
	if err != nil {
		return fmt.Errorf("parse layouts: %w", err)
	}
	b.tmpl = t
	return nil
}

func (b *Builder) writeIndex(cat catalog.Catalog) error {
	data := pageData{
		SiteTitle: b.SiteTitle,
		PageTitle: b.SiteTitle,
		BaseHref:  b.baseHref(0),
		Cards:     view.ToCards(cat.Projects),
	}
	data.Header = b.partial("header.html", data)
	data.Footer = b.partial("footer.html", data)
	return b.writePage("index.html.tmpl", filepath.Join(b.OutputDir, "index.html"), data)
}

func (b *Builder) writeDetail(p *api.Project) error {
	detail, err := view.ToDetail(p)
	if err != nil {
		return fmt.Errorf("project %s: %w", p.ID, err)
	}
	data := pageData{
		SiteTitle: b.SiteTitle,
		PageTitle: fmt.Sprintf("%s — %s", detail.Title, b.SiteTitle),
		BaseHref:  b.baseHref(2),
		Detail:    detail,
	}
	data.Header = b.partial("header.html", data)
	data.Footer = b.partial("footer.html", data)

	dir := filepath.Join(b.OutputDir, "projects", url.PathEscape(p.ID))
	if err := os.MkdirAll(dir, 0o755); err != nil {
		return fmt.Errorf("create %s: %w", dir, err)
	}
	return b.writePage("project.html.tmpl", filepath.Join(dir, "index.html"), data)
}

func (b *Builder) writePage(layout, path string, data pageData) error {
	var buf bytes.Buffer
	if err := b.tmpl.ExecuteTemplate(&buf, layout, data); err != nil {
		return fmt.Errorf("render %s: %w", layout, err)
	}
	if err := os.WriteFile(path, buf.Bytes(), 0o644); err != nil {
		return fmt.Errorf("write %s: %w", path, err)
	}
	return nil
}

// baseHref makes author-supplied root-relative asset paths resolve from
// pages nested `depth` directories below the site root.
func (b *Builder) baseHref(depth int) string {
	if b.BaseURL != "" {
		return b.BaseURL
	}
	if depth == 0 {
		return "./"
	}
	base := ""
	for i := 0; i < depth; i++ {
		base += "../"
	}
	return base
}

// partial resolves a header/footer fragment: the override directory wins,
// the embedded default backs it up, and anything unreadable or invalid
// means the section is simply unavailable and renders as nothing.
func (b *Builder) partial(name string, data pageData) template.HTML {
	var raw []byte
	if b.PartialsDir != "" {
		if override, err := os.ReadFile(filepath.Join(b.PartialsDir, name)); err == nil {
			raw = override
		}
	}
	if raw == nil {
		embedded, err := templateFS.ReadFile("templates/partials/" + name)
		if err != nil {
			b.log.Warn("partial unavailable", zap.String("partial", name), zap.Error(err))
			return ""
		}
		raw = embedded
	}
	t, err := template.New(name).Parse(string(raw))
	if err != nil {
		b.log.Warn("partial failed to parse", zap.String("partial", name), zap.Error(err))
		return ""
	}
	var buf bytes.Buffer
	if err := t.Execute(&buf, data); err != nil {
		b.log.Warn("partial failed to render", zap.String("partial", name), zap.Error(err))
		return ""
	}
	return template.HTML(buf.String())
}

// writeAssets lays down the embedded stylesheet and copies the optional
// static directory over it, letting authors override styles.css.
func (b *Builder) writeAssets() error {
	css, err := templateFS.ReadFile("templates/styles.css")
	if err == nil {
		if err := os.WriteFile(filepath.Join(b.OutputDir, "styles.css"), css, 0o644); err != nil {
			return fmt.Errorf("write stylesheet: %w", err)
		}
	}
	if b.StaticDir == "" {
		return nil
	}
	if _, err := os.Stat(b.StaticDir); os.IsNotExist(err) {
		b.log.Debug("static dir absent, skipping", zap.String("dir", b.StaticDir))
		return nil
	}
	return copyDir(b.StaticDir, b.OutputDir)
}

func copyDir(src, dst string) error {
	return filepath.WalkDir(src, func(path string, d fs.DirEntry, err error) error {
		if err != nil {
			return err
		}
		rel, err := filepath.Rel(src, path)
		if err != nil {
			return err
		}
		target := filepath.Join(dst, rel)
		if d.IsDir() {
			return os.MkdirAll(target, 0o755)
		}
		return copyFile(path, target)
	})
}

func copyFile(src, dst string) error {
	in, err := os.Open(src)
	if err != nil {
		return fmt.Errorf("open %s: %w", src, err)
	}
	defer in.Close()
	if err := os.MkdirAll(filepath.Dir(dst), 0o755); err != nil {
		return err
	}
	out, err := os.Create(dst)
	if err != nil {
		return fmt.Errorf("create %s: %w", dst, err)
	}
	defer out.Close()
	if _, err := io.Copy(out, in); err != nil {
		return fmt.Errorf("copy %s: %w", src, err)
	}
	return nil
}
