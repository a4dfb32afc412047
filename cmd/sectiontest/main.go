package main

// Run one report section against local document files, without the server:
//   go run ./cmd/sectiontest -section persoonsgegevens -doc intake.pdf

import (
	"context"
	"encoding/json"
	"flag"
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"trajectplan-backend/internal/extract"
	"trajectplan-backend/internal/llm"
	openai "trajectplan-backend/internal/llm/openai"
	"trajectplan-backend/internal/shared/config"
	"trajectplan-backend/internal/trajectplan"
)

func main() {
	cfg := config.Load()

	sectionName := flag.String("section", "", "Report section to run")
	model := flag.String("model", cfg.LLMModel, "LLM model")
	outPath := flag.String("out", "", "Path to write raw JSON output (optional)")
	var docPaths stringList
	flag.Var(&docPaths, "doc", "Path to a source document (repeatable)")
	flag.Parse()

	if strings.TrimSpace(*sectionName) == "" {
		exitErr(fmt.Sprintf("section is required; one of: %s", strings.Join(trajectplan.SectionNames(), ", ")))
	}
	section, ok := trajectplan.SectionByName(*sectionName)
	if !ok {
		exitErr(fmt.Sprintf("unknown section %q; one of: %s", *sectionName, strings.Join(trajectplan.SectionNames(), ", ")))
	}
	if len(docPaths) == 0 {
		exitErr("at least one -doc is required")
	}

	var parts []string
	for _, path := range docPaths {
		data, err := os.ReadFile(path)
		if err != nil {
			exitErr(fmt.Sprintf("read document: %v", err))
		}
		text, strategy := extract.ExtractDetailed(data, cfg.MinUsableText)
		if text == "" {
			fmt.Fprintf(os.Stderr, "warning: no usable text in %s\n", path)
			continue
		}
		fmt.Fprintf(os.Stderr, "%s: %d chars via %s\n", filepath.Base(path), len(text), strategy)
		parts = append(parts, fmt.Sprintf("=== %s ===\n%s", filepath.Base(path), text))
	}
	if len(parts) == 0 {
		exitErr("no document yielded usable text")
	}

	client, err := openai.NewClient(os.Getenv("OPENAI_API_KEY"), *model)
	if err != nil {
		exitErr(err.Error())
	}

	corpus := trajectplan.Chunk(strings.Join(parts, "\n\n"), cfg.MaxChunkChars)
	result, err := client.Complete(context.Background(), llm.CompletionInput{
		Prompt: section.Prompt,
		Corpus: corpus,
		Schema: section.Schema,
	})
	if err != nil {
		exitErr(fmt.Sprintf("completion: %v", err))
	}

	var output []byte
	if section.Schema != nil {
		trajectplan.StripFields(result.Fields)
		output, err = json.MarshalIndent(result.Fields, "", "  ")
		if err != nil {
			exitErr(fmt.Sprintf("marshal result: %v", err))
		}
	} else {
		output = []byte(trajectplan.Strip(result.Text))
	}

	if strings.TrimSpace(*outPath) != "" {
		if err := os.WriteFile(*outPath, output, 0o644); err != nil {
			exitErr(fmt.Sprintf("write output: %v", err))
		}
	}
	fmt.Println(string(output))
}

type stringList []string

func (l *stringList) String() string { return strings.Join(*l, ",") }

func (l *stringList) Set(value string) error {
	*l = append(*l, value)
	return nil
}

func exitErr(msg string) {
	fmt.Fprintln(os.Stderr, "error: "+msg)
	os.Exit(1)
}
