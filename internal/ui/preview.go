package ui

import (
	"log"

	"github.com/charmbracelet/glamour"
)

// refreshPreview re-renders the Markdown preview from the current buffer.
// Rendering failures fall back to the raw text; the preview is read-only
// sugar and must never block editing.
func (m *Model) refreshPreview() {
	if !m.showPreview {
		return
	}

	style := "light"
	if m.theme.Dark {
		style = "dark"
	}

	w, _ := m.paneSize()
	r, err := glamour.NewTermRenderer(
		glamour.WithStandardStyle(style),
		glamour.WithWordWrap(w-2),
	)
	if err != nil {
		log.Printf("markdown renderer init failed: %v", err)
		m.preview.SetContent(m.session.Buffer)
		return
	}

	out, err := r.Render(m.session.Buffer)
	if err != nil {
		log.Printf("markdown render failed: %v", err)
		out = m.session.Buffer
	}
	m.preview.SetContent(out)
	m.preview.GotoTop()
}
