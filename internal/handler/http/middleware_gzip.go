// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package http

import (
	"compress/gzip"
	"io"
	"net/http"
	"strings"
	"sync"

	"github.com/MKhiriev/starwars-blog/internal/utils"
	"github.com/MKhiriev/starwars-blog/models"
)

const msgInvalidGzip = "invalid gzip data"

var (
	gzipWriters = sync.Pool{New: func() any { return gzip.NewWriter(nil) }}
	gzipReaders = sync.Pool{New: func() any { return new(gzip.Reader) }}
)

// withGZip inflates gzip-encoded request bodies and compresses responses for
// clients that accept gzip.
func withGZip(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		if strings.Contains(r.Header.Get("Content-Encoding"), "gzip") && r.Body != nil {
			body, err := newGzipBody(r.Body)
			if err != nil {
				utils.WriteJSON(w, models.Response{Msg: msgInvalidGzip}, http.StatusBadRequest)
				return
			}
			r.Body = body
			r.Header.Del("Content-Encoding")
			r.ContentLength = -1
		}

		if !strings.Contains(r.Header.Get("Accept-Encoding"), "gzip") {
			next.ServeHTTP(w, r)
			return
		}

		zw := gzipWriters.Get().(*gzip.Writer)
		zw.Reset(w)
		defer func() {
			zw.Close()
			gzipWriters.Put(zw)
		}()

		w.Header().Add("Vary", "Accept-Encoding")
		next.ServeHTTP(&gzipResponseWriter{ResponseWriter: w, zw: zw}, r)
	})
}

// gzipBody returns its reader to the pool on Close.
type gzipBody struct {
	*gzip.Reader
	src    io.ReadCloser
	closed bool
}

func newGzipBody(src io.ReadCloser) (*gzipBody, error) {
	zr := gzipReaders.Get().(*gzip.Reader)
	if err := zr.Reset(src); err != nil {
		gzipReaders.Put(zr)
		return nil, err
	}
	return &gzipBody{Reader: zr, src: src}, nil
}

func (b *gzipBody) Close() error {
	if b.closed {
		return nil
	}
	b.closed = true
	b.Reader.Close()
	gzipReaders.Put(b.Reader)
	return b.src.Close()
}

type gzipResponseWriter struct {
	http.ResponseWriter
	zw          *gzip.Writer
	wroteHeader bool
}

func (w *gzipResponseWriter) WriteHeader(statusCode int) {
	if w.wroteHeader {
		return
	}
	w.wroteHeader = true
	w.Header().Set("Content-Encoding", "gzip")
	w.Header().Del("Content-Length")
	w.ResponseWriter.WriteHeader(statusCode)
}

func (w *gzipResponseWriter) Write(data []byte) (int, error) {
	if !w.wroteHeader {
		w.WriteHeader(http.StatusOK)
	}
	return w.zw.Write(data)
}
