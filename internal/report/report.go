// Package report renders the session as a small HTML page and serves it.
package report

import (
	"bytes"
	_ "embed"
	"fmt"
	"html/template"
	"io"
	"net/http"

	"colorpicky/internal/colors"
	"colorpicky/internal/session"
)

//go:embed report.html.tmpl
var pageSource string

var page = template.Must(template.New("report").Parse(pageSource))

// DefaultTitle is used when Options.Title is empty.
const DefaultTitle = "ColorPicky"

type entry struct {
	Index int
	Name  string
	Hex   string
	R     uint8
	G     uint8
	B     uint8
}

type view struct {
	Title    string
	Mode     string
	Sampling bool
	Current  *entry
	History  []entry
}

func newEntry(i int, c colors.NamedColor) entry {
	return entry{
		Index: i,
		Name:  c.Name,
		Hex:   c.RGB.Hex(),
		R:     c.RGB.R,
		G:     c.RGB.G,
		B:     c.RGB.B,
	}
}

func newView(title string, snap session.Snapshot) view {
	if title == "" {
		title = DefaultTitle
	}
	v := view{
		Title:    title,
		Mode:     snap.Mode.String(),
		Sampling: snap.Sampling,
	}
	if snap.HasCurrent {
		e := newEntry(0, snap.Current)
		v.Current = &e
	}
	for i := 0; i < snap.History.Len(); i++ {
		if c, ok := snap.History.At(i); ok {
			v.History = append(v.History, newEntry(i+1, c))
		}
	}
	return v
}

// Render writes the page for snap to w.
func Render(w io.Writer, title string, snap session.Snapshot) error {
	if err := page.Execute(w, newView(title, snap)); err != nil {
		return fmt.Errorf("report: %w", err)
	}
	return nil
}

// Handler serves the page built from the latest snapshot on every GET.
func Handler(title string, snapshot func() session.Snapshot) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		if r.Method != http.MethodGet && r.Method != http.MethodHead {
			w.Header().Set("Allow", "GET, HEAD")
			http.Error(w, http.StatusText(http.StatusMethodNotAllowed), http.StatusMethodNotAllowed)
			return
		}

		var buf bytes.Buffer
		if err := Render(&buf, title, snapshot()); err != nil {
			http.Error(w, err.Error(), http.StatusInternalServerError)
			return
		}
		w.Header().Set("Content-Type", "text/html; charset=utf-8")
		w.Header().Set("Cache-Control", "no-store")
		_, _ = w.Write(buf.Bytes())
	})
}
