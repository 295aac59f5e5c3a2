package schema

import (
	"context"
	"errors"
	"fmt"
	"io/fs"
	"net/url"
	"sort"

	"github.com/getkin/kin-openapi/openapi3"
)

// LoadDocument parses and validates an OpenAPI document held in memory.
func LoadDocument(ctx context.Context, data []byte) (*openapi3.T, error) {
	if len(data) == 0 {
		return nil, errors.New("schema: document payload is empty")
	}
	loader := &openapi3.Loader{Context: ctx}
	doc, err := loader.LoadFromData(data)
	if err != nil {
		return nil, fmt.Errorf("schema: load document: %w", err)
	}
	if err := doc.Validate(ctx, openapi3.DisableExamplesValidation()); err != nil {
		return nil, fmt.Errorf("schema: validate document: %w", err)
	}
	return doc, nil
}

// LoadSource fetches and validates the document a Source points at. The
// fsys argument backs fs sources and may be nil for the other kinds.
func LoadSource(ctx context.Context, src Source, fsys fs.FS) (*openapi3.T, error) {
	if src == nil {
		return nil, errors.New("schema: source is nil")
	}

	switch src.Kind() {
	case SourceKindFile:
		loader := &openapi3.Loader{Context: ctx}
		doc, err := loader.LoadFromFile(src.Location())
		if err != nil {
			return nil, fmt.Errorf("schema: load %s: %w", src.Location(), err)
		}
		return validated(ctx, doc, src.Location())
	case SourceKindFS:
		if fsys == nil {
			return nil, errors.New("schema: fs source requires a filesystem")
		}
		data, err := fs.ReadFile(fsys, src.Location())
		if err != nil {
			return nil, fmt.Errorf("schema: read %s: %w", src.Location(), err)
		}
		return LoadDocument(ctx, data)
	case SourceKindURL:
		target, err := url.Parse(src.Location())
		if err != nil {
			return nil, fmt.Errorf("schema: parse url %s: %w", src.Location(), err)
		}
		loader := &openapi3.Loader{Context: ctx, IsExternalRefsAllowed: true}
		doc, err := loader.LoadFromURI(target)
		if err != nil {
			return nil, fmt.Errorf("schema: load %s: %w", src.Location(), err)
		}
		return validated(ctx, doc, src.Location())
	default:
		return nil, fmt.Errorf("schema: unsupported source kind %q", src.Kind())
	}
}

func validated(ctx context.Context, doc *openapi3.T, location string) (*openapi3.T, error) {
	if err := doc.Validate(ctx, openapi3.DisableExamplesValidation()); err != nil {
		return nil, fmt.Errorf("schema: validate %s: %w", location, err)
	}
	return doc, nil
}

// ComponentSchema returns the named component schema from a loaded document.
func ComponentSchema(doc *openapi3.T, name string) (*openapi3.Schema, error) {
	if doc == nil || doc.Components == nil {
		return nil, errors.New("schema: document has no components")
	}
	ref, ok := doc.Components.Schemas[name]
	if !ok || ref == nil || ref.Value == nil {
		return nil, fmt.Errorf("schema: component %q not found", name)
	}
	return ref.Value, nil
}

// ComponentNames lists the document's component schema names in sorted order.
func ComponentNames(doc *openapi3.T) []string {
	if doc == nil || doc.Components == nil || len(doc.Components.Schemas) == 0 {
		return nil
	}
	names := make([]string, 0, len(doc.Components.Schemas))
	for name := range doc.Components.Schemas {
		names = append(names, name)
	}
	sort.Strings(names)
	return names
}

// PropertyNames lists an object schema's property names in sorted order.
func PropertyNames(s *openapi3.Schema) []string {
	if s == nil || len(s.Properties) == 0 {
		return nil
	}
	names := make([]string, 0, len(s.Properties))
	for name := range s.Properties {
		names = append(names, name)
	}
	sort.Strings(names)
	return names
}

// Property resolves a named property schema, or nil when absent.
func Property(s *openapi3.Schema, name string) *openapi3.Schema {
	if s == nil {
		return nil
	}
	ref, ok := s.Properties[name]
	if !ok || ref == nil {
		return nil
	}
	return ref.Value
}

// Required reports whether the object schema marks the property required.
func Required(s *openapi3.Schema, name string) bool {
	if s == nil {
		return false
	}
	for _, candidate := range s.Required {
		if candidate == name {
			return true
		}
	}
	return false
}
