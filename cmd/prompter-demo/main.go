package main

import (
	"context"
	"errors"
	"flag"
	"fmt"
	"log"
	"log/slog"
	"os"
	"strings"

	"github.com/getkin/kin-openapi/openapi3"
	theme "github.com/goliatone/go-theme"

	prompter "github.com/goliatone/go-prompter"
	"github.com/goliatone/go-prompter/pkg/drivers/readlineline"
	"github.com/goliatone/go-prompter/pkg/drivers/surveyline"
	"github.com/goliatone/go-prompter/pkg/profile"
	"github.com/goliatone/go-prompter/pkg/schema"
	"github.com/goliatone/go-prompter/pkg/style"
)

func main() {
	driver := flag.String("driver", "plain", "input driver: plain, readline, or survey")
	profileDir := flag.String("profile", "", "directory of prompt profile documents")
	themeName := flag.String("theme", "", "theme to style prompts with")
	variant := flag.String("variant", "", "theme variant")
	source := flag.String("schema", "", "OpenAPI document path or URL")
	component := flag.String("component", "", "component schema to prompt for (with -schema)")
	listThemes := flag.Bool("themes", false, "list registered themes and exit")
	verbose := flag.Bool("verbose", false, "log retries and reads to stderr")
	flag.Parse()

	styles := builtinThemes()
	if *listThemes {
		for _, name := range styles.Names() {
			fmt.Println(name)
		}
		return
	}

	settings := profile.FromEnv()

	var store *profile.Store
	if *profileDir != "" {
		loaded, err := profile.LoadFS(os.DirFS(*profileDir))
		if err != nil {
			log.Fatalf("load profile: %v", err)
		}
		store = loaded
		settings = store.Settings(settings)
	}

	var opts []prompter.Option
	if *verbose {
		handler := slog.NewTextHandler(os.Stderr, &slog.HandlerOptions{Level: slog.LevelDebug})
		opts = append(opts, prompter.WithLogger(slog.New(handler)))
	}

	var closeSource func() error
	switch *driver {
	case "plain":
	case "readline":
		src, err := readlineline.NewTerminal(nil)
		if err != nil {
			log.Fatalf("open terminal: %v", err)
		}
		closeSource = src.Close
		opts = append(opts, prompter.WithSource(src))
	case "survey":
		opts = append(opts, prompter.WithSource(surveyline.New()))
	default:
		log.Fatalf("unknown driver %q (want plain, readline, or survey)", *driver)
	}

	session := prompter.NewStdio(opts...)
	profile.Apply(session, settings)

	name, variantName := *themeName, *variant
	if name == "" {
		name = settings.Theme
	}
	if variantName == "" {
		variantName = settings.Variant
	}
	if name != "" {
		st, err := style.Resolve(styles, name, variantName)
		if err != nil {
			log.Fatalf("resolve theme: %v", err)
		}
		st.Apply(session)
	}

	switch {
	case store != nil && !store.Empty():
		runProfile(session, store)
	case *source != "":
		runSchema(session, *source, *component)
	default:
		runTour(session)
	}

	if closeSource != nil {
		if err := closeSource(); err != nil {
			log.Printf("close input: %v", err)
		}
	}
}

// runTour walks the built-in prompts so every constraint family gets shown
// once.
func runTour(session *prompter.Prompter) {
	username := must(prompter.String(session, "Username").
		LengthBetween(3, 12).
		NotBlank().
		Ask())

	port := must(prompter.Number[int](session, "Port").
		Range(1024, 65535).
		NotEqual(8080).
		Ask())

	ratio := must(prompter.Number[float64](session, "Sample ratio").
		Range(0, 1).
		Finite().
		Ask())

	workdir := must(prompter.String(session, "Working directory").
		DirPath(false).
		Ask())

	if !must(prompter.AskBool(session, "Apply these settings", true)) {
		fmt.Println("Nothing applied.")
		return
	}

	fmt.Printf("\n%s serves on :%d from %s at %.0f%% sampling\n",
		username, port, workdir, ratio*100)
}

// runProfile asks every prompt the loaded documents define, in name order.
func runProfile(session *prompter.Prompter, store *profile.Store) {
	for _, name := range store.Names() {
		v := must(store.Ask(session, name))
		fmt.Printf("%s = %v\n", name, v)
	}
}

// runSchema loads an OpenAPI document and prompts for one component's
// properties.
func runSchema(session *prompter.Prompter, source, component string) {
	ctx := context.Background()

	doc, err := schema.LoadSource(ctx, parseSource(source), nil)
	if err != nil {
		log.Fatalf("load document: %v", err)
	}

	if component == "" {
		names := schema.ComponentNames(doc)
		if len(names) == 0 {
			log.Fatalf("document %s has no component schemas", source)
		}
		component = names[0]
	}

	s, err := schema.ComponentSchema(doc, component)
	if err != nil {
		log.Fatalf("component schema: %v", err)
	}

	builder := schema.NewBuilder(session)
	fmt.Printf("Filling %s:\n", component)
	for _, name := range schema.PropertyNames(s) {
		fmt.Printf("%s = %v\n", name, askProperty(builder, name, schema.Property(s, name)))
	}
}

func askProperty(b *schema.Builder, name string, s *openapi3.Schema) any {
	switch schema.TypeOf(s) {
	case schema.TypeInteger:
		p, err := b.IntPrompt(name, s)
		if err != nil {
			log.Fatalf("build prompt for %s: %v", name, err)
		}
		return must(p.Display())
	case schema.TypeNumber:
		p, err := b.FloatPrompt(name, s)
		if err != nil {
			log.Fatalf("build prompt for %s: %v", name, err)
		}
		return must(p.Display())
	case schema.TypeBoolean:
		p, err := b.BoolPrompt(name, s)
		if err != nil {
			log.Fatalf("build prompt for %s: %v", name, err)
		}
		return must(p.Display())
	default:
		p, err := b.StringPrompt(name, s)
		if err != nil {
			log.Fatalf("build prompt for %s: %v", name, err)
		}
		return must(p.Display())
	}
}

func parseSource(raw string) schema.Source {
	path := strings.TrimSpace(raw)
	if strings.HasPrefix(path, "http://") || strings.HasPrefix(path, "https://") {
		return schema.SourceFromURL(path)
	}
	return schema.SourceFromFile(path)
}

// builtinThemes registers the demo's styling choices: a boxed heavy look and
// a terse minimal one.
func builtinThemes() *style.Registry {
	reg := style.NewRegistry()
	reg.MustRegister(&theme.Manifest{
		Name:    "boxed",
		Version: "1.0.0",
		Tokens: map[string]string{
			"accent": "\033[36m",
			"reset":  "\033[0m",
		},
		Templates: map[string]string{
			style.KeyPrompt:        "┃ {0}  [{1}]\n┃ > ",
			style.KeyPromptBare:    "┃ {0}\n┃ > ",
			style.KeyInvalidInput:  "┃ ✗ {0}",
			style.KeyHintSeparator: " · ",
		},
		Variants: map[string]theme.Variant{
			"ascii": {
				Templates: map[string]string{
					style.KeyPrompt:        "| {0}  [{1}]\n| > ",
					style.KeyPromptBare:    "| {0}\n| > ",
					style.KeyInvalidInput:  "| x {0}",
					style.KeyHintSeparator: " - ",
				},
			},
		},
	})
	reg.MustRegister(&theme.Manifest{
		Name:    "minimal",
		Version: "1.0.0",
		Templates: map[string]string{
			style.KeyPrompt:       "{0}? ",
			style.KeyPromptBare:   "{0}? ",
			style.KeyInvalidInput: "! {0}",
		},
	})
	return reg
}

// must unwraps a prompt answer, exiting quietly when the user aborted with
// Ctrl+C.
func must[T any](v T, err error) T {
	if err != nil {
		if errors.Is(err, readlineline.ErrInterrupted) || errors.Is(err, surveyline.ErrAborted) {
			fmt.Println("\naborted")
			os.Exit(130)
		}
		log.Fatalf("prompt failed: %v", err)
	}
	return v
}
