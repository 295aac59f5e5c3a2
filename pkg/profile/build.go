package profile

import (
	"fmt"

	"github.com/goliatone/go-prompter/pkg/limit"
	"github.com/goliatone/go-prompter/pkg/prompt"
)

// StringPrompt instantiates the named definition as a text prompt. Path,
// file, and dir definitions build here too since they all produce strings.
func (s *Store) StringPrompt(session *prompt.Prompter, name string) (*prompt.Prompt[string], error) {
	def, err := s.lookup(name, KindString, KindPath, KindFile, KindDir)
	if err != nil {
		return nil, err
	}

	p := session.PromptForString(def.Text, def.Trim)
	switch def.Kind {
	case KindPath:
		limit.Path(p)
	case KindFile:
		limit.FilePath(p, def.MustExist)
	case KindDir:
		limit.DirPath(p, def.MustExist)
	default:
		applyStringLimits(p, def)
	}
	return p, nil
}

// IntPrompt instantiates the named definition as an integer prompt.
func (s *Store) IntPrompt(session *prompt.Prompter, name string) (*prompt.Prompt[int64], error) {
	def, err := s.lookup(name, KindInt)
	if err != nil {
		return nil, err
	}

	p := prompt.ForNumber[int64](session, def.Text, false)
	applyBounds(p, def, func(v float64) int64 { return int64(v) })
	return p, nil
}

// FloatPrompt instantiates the named definition as a float prompt. Floats
// from profiles always reject Inf and NaN.
func (s *Store) FloatPrompt(session *prompt.Prompter, name string) (*prompt.Prompt[float64], error) {
	def, err := s.lookup(name, KindFloat)
	if err != nil {
		return nil, err
	}

	p := prompt.ForNumber[float64](session, def.Text, true)
	applyBounds(p, def, func(v float64) float64 { return v })
	return p, nil
}

// BoolPrompt instantiates the named definition as a yes/no prompt.
func (s *Store) BoolPrompt(session *prompt.Prompter, name string) (*prompt.Prompt[bool], error) {
	def, err := s.lookup(name, KindBool)
	if err != nil {
		return nil, err
	}
	return session.PromptForBool(def.Text, def.Default), nil
}

// Ask builds the named prompt, runs its display loop, and returns the typed
// answer. The dynamic type of the result follows the definition kind: string
// for text and path kinds, int64, float64, or bool.
func (s *Store) Ask(session *prompt.Prompter, name string) (any, error) {
	def, ok := s.Definition(name)
	if !ok {
		return nil, fmt.Errorf("profile: no prompt named %q", name)
	}

	switch def.Kind {
	case KindInt:
		p, err := s.IntPrompt(session, name)
		if err != nil {
			return nil, err
		}
		return p.Display()
	case KindFloat:
		p, err := s.FloatPrompt(session, name)
		if err != nil {
			return nil, err
		}
		return p.Display()
	case KindBool:
		p, err := s.BoolPrompt(session, name)
		if err != nil {
			return nil, err
		}
		return p.Display()
	default:
		p, err := s.StringPrompt(session, name)
		if err != nil {
			return nil, err
		}
		return p.Display()
	}
}

func (s *Store) lookup(name string, kinds ...Kind) (Definition, error) {
	def, ok := s.Definition(name)
	if !ok {
		return Definition{}, fmt.Errorf("profile: no prompt named %q", name)
	}
	for _, kind := range kinds {
		if def.Kind == kind {
			return def, nil
		}
	}
	return Definition{}, fmt.Errorf("profile: prompt %q is a %s prompt, not %s", name, def.Kind, kinds[0])
}

func applyStringLimits(p *prompt.Prompt[string], def Definition) {
	switch {
	case def.MinLength != nil && def.MaxLength != nil:
		limit.LengthBetween(p, *def.MinLength, *def.MaxLength)
	case def.MinLength != nil:
		limit.MinLength(p, *def.MinLength)
	case def.MaxLength != nil:
		limit.MaxLength(p, *def.MaxLength)
	}
	if def.NotBlank {
		limit.NotBlank(p)
	} else if def.NotEmpty {
		limit.NotEmpty(p)
	}
}

func applyBounds[N prompt.Number](p *prompt.Prompt[N], def Definition, conv func(float64) N) {
	switch {
	case def.Min != nil && def.Max != nil:
		limit.Range(p, conv(*def.Min), conv(*def.Max))
	case def.Min != nil:
		limit.Min(p, conv(*def.Min))
	case def.Max != nil:
		limit.Max(p, conv(*def.Max))
	}
}
