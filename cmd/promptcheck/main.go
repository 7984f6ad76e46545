// Command promptcheck composes and analyzes Midjourney prompts from the shell.
//
//	promptcheck analyze [-json] [prompt...]   (reads stdin when no prompt is given)
//	promptcheck compose -subject "a cat" -adj cute -style anime -ar 1:1
package main

import (
	"encoding/json"
	"errors"
	"flag"
	"fmt"
	"io"
	"os"
	"strings"

	"promptlab/internal/prompt"
)

func main() {
	os.Exit(run(os.Args[1:], os.Stdin, os.Stdout, os.Stderr))
}

func run(args []string, stdin io.Reader, stdout, stderr io.Writer) int {
	if len(args) == 0 {
		usage(stderr)
		return 2
	}
	var err error
	switch args[0] {
	case "analyze":
		err = runAnalyze(args[1:], stdin, stdout, stderr)
	case "compose":
		err = runCompose(args[1:], stdout, stderr)
	default:
		usage(stderr)
		return 2
	}
	if errors.Is(err, flag.ErrHelp) {
		return 0
	}
	if err != nil {
		fmt.Fprintf(stderr, "promptcheck: %v\n", err)
		return 1
	}
	return 0
}

func usage(w io.Writer) {
	fmt.Fprintln(w, "usage: promptcheck analyze [-json] [prompt...]")
	fmt.Fprintln(w, "       promptcheck compose [-subject s] [-adj a]... [-style s] [-lighting l] [-ar r] [-s n] [-v n] [-q n] [-no term]...")
}

func runAnalyze(args []string, stdin io.Reader, stdout, stderr io.Writer) error {
	fs := flag.NewFlagSet("analyze", flag.ContinueOnError)
	fs.SetOutput(stderr)
	asJSON := fs.Bool("json", false, "print the analysis as JSON")
	if err := fs.Parse(args); err != nil {
		return err
	}

	raw := strings.Join(fs.Args(), " ")
	if raw == "" {
		b, err := io.ReadAll(stdin)
		if err != nil {
			return fmt.Errorf("read stdin: %w", err)
		}
		raw = string(b)
	}

	a, ok := prompt.Analyze(raw)
	if !ok {
		return errors.New("nothing to analyze")
	}
	if *asJSON {
		enc := json.NewEncoder(stdout)
		enc.SetIndent("", "  ")
		return enc.Encode(a)
	}
	printAnalysis(stdout, a)
	return nil
}

func printAnalysis(w io.Writer, a *prompt.Analysis) {
	fmt.Fprintf(w, "Words: %d  Complexity: %s\n", a.WordCount, a.Complexity)
	rows := []struct {
		label string
		items []string
	}{
		{"Subjects", a.Subjects},
		{"Adjectives", a.Adjectives},
		{"Styles", a.Styles},
		{"Lighting", a.Lighting},
		{"Camera", a.Camera},
		{"Other", a.Other},
	}
	for _, row := range rows {
		if len(row.items) > 0 {
			fmt.Fprintf(w, "%-11s %s\n", row.label+":", strings.Join(row.items, ", "))
		}
	}
	if len(a.Parameters) > 0 {
		fmt.Fprintln(w, "Parameters:")
		for _, p := range a.Parameters {
			fmt.Fprintf(w, "  %-8s %s\n", p.Key, p.Description)
		}
	}
	if a.Complete() {
		fmt.Fprintln(w, "Looks complete.")
		return
	}
	fmt.Fprintln(w, "Suggestions:")
	for _, s := range a.Suggestions {
		fmt.Fprintf(w, "  - %s\n", s)
	}
}

type listFlag []string

func (l *listFlag) String() string { return strings.Join(*l, ",") }

func (l *listFlag) Set(v string) error {
	*l = append(*l, v)
	return nil
}

func runCompose(args []string, stdout, stderr io.Writer) error {
	fs := flag.NewFlagSet("compose", flag.ContinueOnError)
	fs.SetOutput(stderr)
	var in prompt.ComposerInput
	var adjectives, negatives listFlag
	var style string
	fs.StringVar(&in.Subject, "subject", "", "main subject")
	fs.Var(&adjectives, "adj", "adjective (repeatable)")
	fs.StringVar(&style, "style", "", "art style: 3d-pixar, photorealistic, watercolor, anime, oil-painting, digital-art")
	fs.StringVar(&in.Lighting, "lighting", "", "lighting description")
	fs.StringVar(&in.Parameters.AspectRatio, "ar", "", "aspect ratio")
	fs.StringVar(&in.Parameters.Stylize, "s", "", "stylize value")
	fs.StringVar(&in.Parameters.Version, "v", "", "model version")
	fs.StringVar(&in.Parameters.Quality, "q", "", "quality")
	fs.Var(&negatives, "no", "negative term (repeatable)")
	if err := fs.Parse(args); err != nil {
		return err
	}

	in.Style = prompt.Style(style)
	if !in.Style.Valid() {
		return fmt.Errorf("unknown style %q", style)
	}
	for _, adj := range adjectives {
		in.AddAdjective(adj)
	}
	for _, term := range negatives {
		in.AddNegativeTerm(term)
	}
	_, err := fmt.Fprintln(stdout, prompt.Compose(in))
	return err
}
