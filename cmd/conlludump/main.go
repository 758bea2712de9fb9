// Command conlludump exercises the conllu façade end to end: it reads a
// CoNLL-U file and reports on it in one of three modes.
package main

import (
	"encoding/json"
	"flag"
	"fmt"
	"log"
	"os"

	"github.com/lukeod/conllu"
)

func main() {
	log.SetFlags(0)

	filePath := flag.String("file", "", "Path to the CoNLL-U file to read")
	outputType := flag.String("output", "json", "Type of output: json (default), validate, or roundtrip")
	flag.Parse()

	if *filePath == "" {
		log.Fatal("Error: -file flag is required")
	}
	if *outputType != "json" && *outputType != "validate" && *outputType != "roundtrip" {
		log.Fatalf("Error: invalid -output type %q. Must be 'json', 'validate', or 'roundtrip'", *outputType)
	}

	data, err := os.ReadFile(*filePath)
	if err != nil {
		log.Fatalf("Error reading %s: %v", *filePath, err)
	}

	sentences, err := conllu.Parse(string(data))
	if err != nil {
		log.Fatalf("Error parsing %s: %v", *filePath, err)
	}

	switch *outputType {
	case "validate":
		for i, s := range sentences {
			fmt.Printf("sentence %d: valid=%t\n", i+1, s.IsValid())
		}
	case "roundtrip":
		text, err := conllu.ToConllu(sentences)
		if err != nil {
			log.Fatalf("Error rendering %s: %v", *filePath, err)
		}
		fmt.Print(text)
	default: // json
		summary := summarize(*filePath, sentences)
		jsonOutput, err := json.MarshalIndent(summary, "", "  ")
		if err != nil {
			log.Fatalf("Error marshalling output to JSON: %v", err)
		}
		fmt.Println(string(jsonOutput))
	}
}

type sentenceSummary struct {
	Valid      bool     `json:"valid"`
	Comments   []string `json:"comments,omitempty"`
	Words      int      `json:"words"`
	Multiwords int      `json:"multiwords"`
	EmptyNodes int      `json:"emptyNodes"`
}

type documentSummary struct {
	InputFile     string            `json:"inputFile"`
	SentenceCount int               `json:"sentenceCount"`
	Sentences     []sentenceSummary `json:"sentences"`
}

func summarize(inputFile string, sentences []conllu.Sentence) documentSummary {
	out := documentSummary{InputFile: inputFile, SentenceCount: len(sentences)}
	for _, s := range sentences {
		ss := sentenceSummary{Valid: s.IsValid(), Comments: s.Comments}
		for _, e := range s.Elements {
			switch e.(type) {
			case conllu.Word:
				ss.Words++
			case conllu.Multiword:
				ss.Multiwords++
			case conllu.EmptyNode:
				ss.EmptyNodes++
			}
		}
		out.Sentences = append(out.Sentences, ss)
	}
	return out
}
