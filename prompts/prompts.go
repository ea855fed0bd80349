// Package prompts renders the prompt skeletons sent to the LLM. Rendering is
// deterministic: the embedded template skeleton is reproduced byte-for-byte
// with only the placeholders substituted, because the model is sensitive to
// the structural cues (tag delimiters, section ordering, spacing).
package prompts

import (
	"bytes"
	"embed"
	"strings"
	"text/template"
)

//go:embed templates/*
var templatesFS embed.FS

// PDFGroundingData fills the chat-with-document wrapper prompt.
type PDFGroundingData struct {
	Instructions string
	Document     string
	Question     string
}

// VideoDetailsData fills the video metadata block.
type VideoDetailsData struct {
	Title       string
	Author      string
	Length      int
	Views       int
	Description string
	Keywords    []string
}

// TranscriptSummaryData fills the transcript summarization prompt.
type TranscriptSummaryData struct {
	Details    string
	Transcript string
}

// RenderPDFGroundingPrompt wraps a user question with the grounding document
// and instruction text for a chat-with-PDF turn.
func RenderPDFGroundingPrompt(data PDFGroundingData) (string, error) {
	return render("templates/pdf_grounding_user.md", data)
}

// DefaultPDFInstructions returns the built-in long-read article instruction
// block used when the caller supplies no instructions of their own.
func DefaultPDFInstructions() (string, error) {
	content, err := templatesFS.ReadFile("templates/pdf_default_instructions.md")
	if err != nil {
		return "", err
	}
	return string(content), nil
}

// RenderVideoDetails renders the metadata block interpolated into the
// transcript summary prompt.
func RenderVideoDetails(data VideoDetailsData) (string, error) {
	return render("templates/video_details.md", data)
}

// RenderTranscriptSummaryPrompt builds the one-shot summarization prompt for
// a freshly fetched video transcript.
func RenderTranscriptSummaryPrompt(data TranscriptSummaryData) (string, error) {
	return render("templates/transcript_summary_user.md", data)
}

func render(path string, data any) (string, error) {
	content, err := templatesFS.ReadFile(path)
	if err != nil {
		return "", err
	}

	name := strings.TrimSuffix(strings.TrimPrefix(path, "templates/"), ".md")
	tmpl, err := template.New(name).Parse(string(content))
	if err != nil {
		return "", err
	}

	var buf bytes.Buffer
	if err := tmpl.Execute(&buf, data); err != nil {
		return "", err
	}

	return buf.String(), nil
}
