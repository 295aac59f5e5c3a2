package profile

import (
	"encoding/json"
	"fmt"
	"io/fs"
	"math"
	"path/filepath"
	"sort"
	"strings"

	"gopkg.in/yaml.v3"
)

// Kind names a prompt definition's value type.
type Kind string

const (
	KindString Kind = "string"
	KindInt    Kind = "int"
	KindFloat  Kind = "float"
	KindBool   Kind = "bool"
	KindPath   Kind = "path"
	KindFile   Kind = "file"
	KindDir    Kind = "dir"
)

// Definition is one normalized prompt entry from a profile document.
type Definition struct {
	Name      string
	Kind      Kind
	Text      string
	Source    string
	Trim      bool
	Default   bool
	MinLength *int
	MaxLength *int
	NotEmpty  bool
	NotBlank  bool
	Min       *float64
	Max       *float64
	MustExist bool
}

// Store holds the prompt definitions and settings loaded from a profile
// filesystem.
type Store struct {
	definitions    map[string]Definition
	settings       *settingsFile
	settingsSource string
}

// LoadFS walks the provided filesystem and parses JSON/YAML profile files.
// When fsys is nil or holds no profile files, the returned store is empty.
func LoadFS(fsys fs.FS) (*Store, error) {
	store := &Store{definitions: make(map[string]Definition)}
	if fsys == nil {
		return store, nil
	}

	err := fs.WalkDir(fsys, ".", func(path string, entry fs.DirEntry, walkErr error) error {
		if walkErr != nil {
			return walkErr
		}
		if entry.IsDir() {
			return nil
		}
		if !isProfileFile(path) {
			return nil
		}

		data, err := fs.ReadFile(fsys, path)
		if err != nil {
			return fmt.Errorf("profile: read %s: %w", path, err)
		}

		doc, err := parseDocument(data, path)
		if err != nil {
			return err
		}

		for name, raw := range doc.Prompts {
			id := strings.TrimSpace(name)
			if id == "" {
				return fmt.Errorf("profile: file %s defines a prompt with an empty name", path)
			}
			if existing, exists := store.definitions[id]; exists {
				return fmt.Errorf("profile: duplicate prompt %q (files %s and %s)", id, existing.Source, path)
			}

			def, err := normalizeDefinition(id, raw, path)
			if err != nil {
				return err
			}
			store.definitions[id] = def
		}

		if doc.Settings != nil {
			if store.settings != nil {
				return fmt.Errorf("profile: file %s redefines settings (already set by %s)", path, store.settingsSource)
			}
			store.settings = doc.Settings
			store.settingsSource = path
		}
		return nil
	})
	if err != nil {
		return nil, err
	}

	return store, nil
}

// Definition returns the named prompt definition.
func (s *Store) Definition(name string) (Definition, bool) {
	if s == nil {
		return Definition{}, false
	}
	def, ok := s.definitions[name]
	return def, ok
}

// Names lists defined prompt names in sorted order.
func (s *Store) Names() []string {
	if s == nil || len(s.definitions) == 0 {
		return nil
	}
	names := make([]string, 0, len(s.definitions))
	for name := range s.definitions {
		names = append(names, name)
	}
	sort.Strings(names)
	return names
}

// Empty reports whether the store holds any prompt definitions.
func (s *Store) Empty() bool {
	return s == nil || len(s.definitions) == 0
}

// Settings layers the profile's settings block over base. Fields the
// profile never mentions keep their base values.
func (s *Store) Settings(base Settings) Settings {
	out := base
	if s == nil || s.settings == nil {
		return out
	}
	if s.settings.HintSeparator != nil {
		out.HintSeparator = *s.settings.HintSeparator
	}
	if s.settings.AutoTypeHint != nil {
		out.AutoTypeHint = *s.settings.AutoTypeHint
	}
	if s.settings.Theme != nil {
		out.Theme = *s.settings.Theme
	}
	if s.settings.Variant != nil {
		out.Variant = *s.settings.Variant
	}
	return out
}

type documentFile struct {
	Prompts  map[string]promptFile `json:"prompts" yaml:"prompts"`
	Settings *settingsFile         `json:"settings" yaml:"settings"`
}

type promptFile struct {
	Type      string   `json:"type" yaml:"type"`
	Text      string   `json:"text" yaml:"text"`
	Trim      *bool    `json:"trim" yaml:"trim"`
	Default   *bool    `json:"default" yaml:"default"`
	MinLength *int     `json:"minLength" yaml:"minLength"`
	MaxLength *int     `json:"maxLength" yaml:"maxLength"`
	NotEmpty  bool     `json:"notEmpty" yaml:"notEmpty"`
	NotBlank  bool     `json:"notBlank" yaml:"notBlank"`
	Min       *float64 `json:"min" yaml:"min"`
	Max       *float64 `json:"max" yaml:"max"`
	MustExist *bool    `json:"mustExist" yaml:"mustExist"`
}

type settingsFile struct {
	HintSeparator *string `json:"hintSeparator" yaml:"hintSeparator"`
	AutoTypeHint  *bool   `json:"autoTypeHint" yaml:"autoTypeHint"`
	Theme         *string `json:"theme" yaml:"theme"`
	Variant       *string `json:"themeVariant" yaml:"themeVariant"`
}

func parseDocument(data []byte, source string) (documentFile, error) {
	var doc documentFile
	if len(strings.TrimSpace(string(data))) == 0 {
		return documentFile{}, fmt.Errorf("profile: file %s is empty", source)
	}

	if err := json.Unmarshal(data, &doc); err == nil {
		return doc, nil
	}

	if err := yaml.Unmarshal(data, &doc); err == nil {
		return doc, nil
	}

	return documentFile{}, fmt.Errorf("profile: parse %s: invalid JSON or YAML", source)
}

func normalizeDefinition(name string, raw promptFile, source string) (Definition, error) {
	kind, ok := normalizeKind(raw.Type)
	if !ok {
		return Definition{}, fmt.Errorf("profile: prompt %q (file %s) has unknown type %q", name, source, raw.Type)
	}

	def := Definition{
		Name:      name,
		Kind:      kind,
		Text:      strings.TrimSpace(raw.Text),
		Source:    source,
		Trim:      true,
		MinLength: raw.MinLength,
		MaxLength: raw.MaxLength,
		NotEmpty:  raw.NotEmpty,
		NotBlank:  raw.NotBlank,
		Min:       raw.Min,
		Max:       raw.Max,
	}

	fail := func(format string, args ...any) (Definition, error) {
		detail := fmt.Sprintf(format, args...)
		return Definition{}, fmt.Errorf("profile: prompt %q (file %s): %s", name, source, detail)
	}

	if raw.Trim != nil {
		if kind != KindString {
			return fail("trim only applies to string prompts")
		}
		def.Trim = *raw.Trim
	}
	if raw.MinLength != nil || raw.MaxLength != nil {
		if kind != KindString {
			return fail("length bounds only apply to string prompts")
		}
		if raw.MinLength != nil && *raw.MinLength < 0 {
			return fail("minLength %d is negative", *raw.MinLength)
		}
		if raw.MaxLength != nil && *raw.MaxLength < 0 {
			return fail("maxLength %d is negative", *raw.MaxLength)
		}
	}
	if raw.NotEmpty || raw.NotBlank {
		if kind != KindString {
			return fail("notEmpty and notBlank only apply to string prompts")
		}
	}
	if raw.Min != nil || raw.Max != nil {
		if kind != KindInt && kind != KindFloat {
			return fail("numeric bounds only apply to int and float prompts")
		}
		if kind == KindInt {
			if raw.Min != nil && math.Trunc(*raw.Min) != *raw.Min {
				return fail("min %v is not an integer", *raw.Min)
			}
			if raw.Max != nil && math.Trunc(*raw.Max) != *raw.Max {
				return fail("max %v is not an integer", *raw.Max)
			}
		}
	}
	if raw.Default != nil {
		if kind != KindBool {
			return fail("default is only supported for bool prompts")
		}
		def.Default = *raw.Default
	}
	if raw.MustExist != nil {
		if kind != KindFile && kind != KindDir {
			return fail("mustExist only applies to file and dir prompts")
		}
		def.MustExist = *raw.MustExist
	}

	return def, nil
}

func normalizeKind(raw string) (Kind, bool) {
	switch strings.ToLower(strings.TrimSpace(raw)) {
	case "string", "text":
		return KindString, true
	case "int", "integer":
		return KindInt, true
	case "float", "number":
		return KindFloat, true
	case "bool", "boolean":
		return KindBool, true
	case "path":
		return KindPath, true
	case "file", "filepath":
		return KindFile, true
	case "dir", "directory":
		return KindDir, true
	default:
		return "", false
	}
}

func isProfileFile(path string) bool {
	switch strings.ToLower(filepath.Ext(path)) {
	case ".json", ".yaml", ".yml":
		return true
	default:
		return false
	}
}
