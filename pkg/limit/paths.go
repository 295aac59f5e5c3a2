package limit

import (
	"errors"
	"fmt"
	"io/fs"
	"os"
	"strings"

	"github.com/goliatone/go-prompter/pkg/hint"
	"github.com/goliatone/go-prompter/pkg/prompt"
)

// longest path accepted before answers are rejected as too long
const maxPathLength = 4096

// Path requires the answer to be syntactically usable as a filesystem path.
// Nothing has to exist on disk; FilePath and DirPath sharpen the check.
func Path(p *prompt.Prompt[string]) *prompt.Prompt[string] {
	p.AddValidator(validPath)
	return p.AddHintKV(hint.KeyPath, nil)
}

// FilePath requires the answer to name a file: existing directories are
// rejected, and with mustExist set the file has to be present. The generic
// path hint, when one was added earlier, is replaced by the file-path hint
// rather than stacked under it.
func FilePath(p *prompt.Prompt[string], mustExist bool) *prompt.Prompt[string] {
	p.AddValidator(func(s string) error {
		if err := validPath(s); err != nil {
			return err
		}
		info, err := os.Stat(s)
		switch {
		case err == nil && info.IsDir():
			return prompt.NewInputErrorf(prompt.KindInvalidArgument, "%q is a directory", s)
		case err == nil:
			return nil
		case errors.Is(err, fs.ErrNotExist):
			if mustExist {
				return prompt.NewInputErrorf(prompt.KindInvalidArgument, "file %q does not exist", s)
			}
			return nil
		default:
			return prompt.WrapInput(prompt.KindInvalidArgument, fmt.Sprintf("cannot use %q", s), err)
		}
	})
	return p.ReplaceHint(hint.KeyPath, hint.New(hint.KeyFilePath, hint.PathDetail{Exists: mustExist}))
}

// DirPath requires the answer to name a directory: existing files are
// rejected, and with mustExist set the directory has to be present. Replaces
// an earlier generic path hint the same way FilePath does.
func DirPath(p *prompt.Prompt[string], mustExist bool) *prompt.Prompt[string] {
	p.AddValidator(func(s string) error {
		if err := validPath(s); err != nil {
			return err
		}
		info, err := os.Stat(s)
		switch {
		case err == nil && !info.IsDir():
			return prompt.NewInputErrorf(prompt.KindInvalidArgument, "%q is a file", s)
		case err == nil:
			return nil
		case errors.Is(err, fs.ErrNotExist):
			if mustExist {
				return prompt.NewInputErrorf(prompt.KindInvalidArgument, "directory %q does not exist", s)
			}
			return nil
		default:
			return prompt.WrapInput(prompt.KindInvalidArgument, fmt.Sprintf("cannot use %q", s), err)
		}
	})
	return p.ReplaceHint(hint.KeyPath, hint.New(hint.KeyDirPath, hint.PathDetail{Exists: mustExist}))
}

func validPath(s string) error {
	if strings.TrimSpace(s) == "" {
		return prompt.NewInputError(prompt.KindInvalidArgument, "path must not be blank")
	}
	if strings.ContainsRune(s, 0) {
		return prompt.NewInputError(prompt.KindInvalidArgument, "path must not contain NUL")
	}
	if len(s) > maxPathLength {
		return prompt.NewInputErrorf(prompt.KindPathTooLong, "path exceeds %d characters", maxPathLength)
	}
	return nil
}
