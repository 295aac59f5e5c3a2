package schema

import (
	"fmt"
	"net/url"
	"path/filepath"
)

// Source names where a schema document lives so LoadSource can fetch it
// from disk, an fs.FS, or over HTTP without callers branching themselves.
type Source interface {
	Kind() SourceKind
	Location() string
}

// SourceKind enumerates the supported document origins.
type SourceKind string

const (
	SourceKindFile SourceKind = "file"
	SourceKindFS   SourceKind = "fs"
	SourceKindURL  SourceKind = "url"
)

// source is the one concrete Source; the kind picks the fetch strategy.
type source struct {
	kind     SourceKind
	location string
}

func (s source) Kind() SourceKind { return s.kind }

func (s source) Location() string { return s.location }

// SourceFromFile returns a Source pointing at an on-disk document.
func SourceFromFile(path string) Source {
	return source{kind: SourceKindFile, location: filepath.Clean(path)}
}

// SourceFromFS returns a Source naming an entry inside an fs.FS. The
// filesystem itself is supplied to LoadSource.
func SourceFromFS(name string) Source {
	return source{kind: SourceKindFS, location: name}
}

// SourceFromURL returns a Source for an HTTP or HTTPS endpoint. It panics
// on an unparsable URL so configuration mistakes surface at construction.
func SourceFromURL(raw string) Source {
	if raw == "" {
		panic("schema: empty URL source")
	}
	if _, err := url.ParseRequestURI(raw); err != nil {
		panic(fmt.Sprintf("schema: invalid URL %q: %v", raw, err))
	}
	return source{kind: SourceKindURL, location: raw}
}
