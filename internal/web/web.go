// Package web holds the embedded HTML templates and static assets of the
// advisor UI.
package web

import (
	"embed"
	"fmt"
	"html/template"
	"io/fs"
	"net/http"
	"strconv"

	"github.com/dustin/go-humanize"
	"github.com/gin-gonic/gin"

	"yemalin/internal/models"
)

//go:embed templates/*.html
var templateFS embed.FS

//go:embed static/*
var staticFS embed.FS

// Funcs are the template helpers shared by every page.
var Funcs = template.FuncMap{
	"pct":           Percent,
	"money":         Money,
	"num":           func(f float64, digits int) string { return strconv.FormatFloat(f, 'f', digits, 64) },
	"inc":           func(i int) int { return i + 1 },
	"classLabel":    ClassLabel,
	"frontierChart": FrontierChart,
}

// Templates parses the embedded page templates.
func Templates() (*template.Template, error) {
	return template.New("").Funcs(Funcs).ParseFS(templateFS, "templates/*.html")
}

// Install registers the templates and the /static file server on r.
func Install(r *gin.Engine) error {
	tmpl, err := Templates()
	if err != nil {
		return err
	}
	r.SetHTMLTemplate(tmpl)

	static, err := fs.Sub(staticFS, "static")
	if err != nil {
		return err
	}
	r.StaticFS("/static", http.FS(static))
	return nil
}

// Percent formats a fraction as a percentage with one decimal.
func Percent(f float64) string {
	return strconv.FormatFloat(f*100, 'f', 1, 64) + "%"
}

// Money formats an amount with thousands separators and two decimals.
func Money(f float64) string {
	return humanize.FormatFloat("#,###.##", f)
}

// ClassLabel names an asset class for display. It accepts both catalogue
// classes and the plain strings carried by scoring candidates.
func ClassLabel(class any) string {
	return models.AssetClass(fmt.Sprint(class)).Label()
}
