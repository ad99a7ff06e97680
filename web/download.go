// Package web serves Documents as file downloads.
package web

import (
	"errors"
	"fmt"
	"net/http"
	"net/url"
	"strconv"
	"strings"

	"github.com/orayew2002/xlkit/workbook"
	"github.com/rs/zerolog/log"
)

// errResponseStarted marks failures after the status line was sent.
var errResponseStarted = errors.New("response already started")

// BuildFunc produces the Document for one request.
type BuildFunc func(r *http.Request) (*workbook.Document, error)

// Download renders doc in the format implied by filename and sends it as an
// attachment. Nothing is written to w when rendering fails.
func Download(w http.ResponseWriter, doc *workbook.Document, filename string) error {
	ft, err := workbook.DetectFileType(filename)
	if err != nil {
		return err
	}

	body, err := doc.Bytes(ft)
	if err != nil {
		return fmt.Errorf("render %s: %w", filename, err)
	}

	header := w.Header()
	header.Set("Content-Type", ft.MIME)
	header.Set("Content-Disposition", contentDisposition(filename))
	header.Set("Access-Control-Expose-Headers", "Content-Disposition")
	header.Set("Cache-Control", "max-age=0")
	header.Set("Pragma", "public")
	header.Set("Content-Length", strconv.Itoa(len(body)))
	w.WriteHeader(http.StatusOK)

	if _, err := w.Write(body); err != nil {
		return fmt.Errorf("write %s: %w: %w", filename, errResponseStarted, err)
	}
	return nil
}

// Handler returns a handler that builds a Document per request and downloads it as filename.
func Handler(filename string, build BuildFunc) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		doc, err := build(r)
		if err != nil {
			log.Error().Err(err).Str("path", r.URL.Path).Msg("build report")
			http.Error(w, http.StatusText(http.StatusInternalServerError), http.StatusInternalServerError)
			return
		}
		defer func() {
			if err := doc.Close(); err != nil {
				log.Warn().Err(err).Msg("close report")
			}
		}()

		if err := Download(w, doc, filename); err != nil {
			log.Error().Err(err).Str("filename", filename).Msg("download report")
			if errors.Is(err, errResponseStarted) {
				return
			}
			http.Error(w, http.StatusText(http.StatusInternalServerError), http.StatusInternalServerError)
			return
		}

		log.Info().Str("filename", filename).Str("remote", r.RemoteAddr).Msg("report downloaded")
	}
}

func contentDisposition(filename string) string {
	escaped := strings.ReplaceAll(strings.ReplaceAll(filename, `\`, `\\`), `"`, `\"`) // \ -> \\, " -> \"
	return fmt.Sprintf(`attachment; filename="%s"; filename*=UTF-8''%s`, escaped, url.PathEscape(filename))
}
