// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package http

import (
	"compress/gzip"
	"io"
	"net/http"
	"strings"
	"sync"
)

var gzipWriterPool = sync.Pool{
	New: func() any {
		return gzip.NewWriter(nil)
	},
}

var gzipReaderPool = sync.Pool{
	New: func() any {
		return new(gzip.Reader)
	},
}

// withGZip decodes request bodies sent with "Content-Encoding: gzip" and
// compresses responses for clients sending "Accept-Encoding: gzip".
//
// A gzip request body without a valid gzip header is rejected with 400.
func (h *Handler) withGZip(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		if strings.Contains(r.Header.Get("Content-Encoding"), "gzip") && r.Body != nil {
			gzipReader := gzipReaderPool.Get().(*gzip.Reader)
			if err := gzipReader.Reset(r.Body); err != nil {
				gzipReaderPool.Put(gzipReader)
				h.writeError(w, r, ErrInvalidGzip)
				return
			}

			r.Body = &gzipReadCloser{
				Reader: gzipReader,
				body:   r.Body,
				onClose: func() {
					_ = gzipReader.Close()
					gzipReaderPool.Put(gzipReader)
				},
			}
			r.Header.Del("Content-Encoding")
			r.Header.Del("Content-Length")
			r.ContentLength = -1
		}

		if !strings.Contains(r.Header.Get("Accept-Encoding"), "gzip") {
			next.ServeHTTP(w, r)
			return
		}

		gw := &gzipResponseWriter{ResponseWriter: w}
		defer gw.finish()

		next.ServeHTTP(gw, r)
	})
}

type gzipReadCloser struct {
	io.Reader
	body    io.Closer
	onClose func()
	once    sync.Once
}

func (rc *gzipReadCloser) Close() error {
	rc.once.Do(rc.onClose)
	return rc.body.Close()
}

// gzipResponseWriter takes a pooled gzip writer on the first body write.
// Responses to which the handler wrote nothing still get a valid, empty gzip
// stream once the encoding header is out.
type gzipResponseWriter struct {
	http.ResponseWriter
	gzipWriter  *gzip.Writer
	wroteHeader bool
	encoded     bool
}

func (w *gzipResponseWriter) WriteHeader(statusCode int) {
	if !w.wroteHeader {
		w.wroteHeader = true
		if statusCode != http.StatusNoContent && statusCode != http.StatusNotModified {
			header := w.Header()
			header.Del("Content-Length")
			header.Set("Content-Encoding", "gzip")
			header.Add("Vary", "Accept-Encoding")
			w.encoded = true
		}
	}
	w.ResponseWriter.WriteHeader(statusCode)
}

func (w *gzipResponseWriter) Write(data []byte) (int, error) {
	if !w.wroteHeader {
		w.WriteHeader(http.StatusOK)
	}
	if !w.encoded {
		return w.ResponseWriter.Write(data)
	}
	return w.writer().Write(data)
}

func (w *gzipResponseWriter) writer() *gzip.Writer {
	if w.gzipWriter == nil {
		w.gzipWriter = gzipWriterPool.Get().(*gzip.Writer)
		w.gzipWriter.Reset(w.ResponseWriter)
	}
	return w.gzipWriter
}

func (w *gzipResponseWriter) finish() {
	if !w.encoded {
		return
	}
	gz := w.writer()
	_ = gz.Close()
	gzipWriterPool.Put(gz)
	w.gzipWriter = nil
}
