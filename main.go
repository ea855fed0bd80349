package main

import (
	"bufio"
	"context"
	"errors"
	"fmt"
	"os"
	"os/signal"
	"strings"
	"syscall"

	"github.com/SaiNageswarS/go-api-boot/config"
	"github.com/SaiNageswarS/go-api-boot/dotenv"
	"github.com/SaiNageswarS/go-api-boot/logger"
	"go.uber.org/zap"

	"github.com/superchatai/superchat/appconfig"
	"github.com/superchatai/superchat/chat"
	"github.com/superchatai/superchat/ingest"
	"github.com/superchatai/superchat/llm"
	"github.com/superchatai/superchat/youtube"
)

func main() {
	dotenv.LoadEnv()

	// load config file
	ccfgg := &appconfig.AppConfig{}
	err := config.LoadConfig("config.ini", ccfgg)
	if err != nil {
		logger.Fatal("Failed to load config", zap.Error(err))
	}

	llmClient := provideLLMClient(ccfgg)

	ingestor := ingest.NewPDFIngestor(
		ingest.NewExtractorClient(ccfgg.PDFExtractorURL),
		ingest.NewSplitter("\n", ccfgg.ChunkSize, ccfgg.ChunkOverlap),
		ccfgg.DocCharLimit,
	)

	service := chat.New(
		llmClient,
		ingestor,
		youtube.NewMetadataClient(ccfgg.MetadataBaseURL),
		youtube.NewTranscriptClient(ccfgg.TranscriptBaseURL),
		chat.Config{
			Languages:        ccfgg.Languages(),
			MaxTokens:        ccfgg.MaxTokens,
			RequireGrounding: ccfgg.RequireGrounding,
		},
	)

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	fmt.Println("SuperChat. Commands: /pdf <path> | /yt <url> | /reset | /quit")
	runREPL(ctx, service)
}

func provideLLMClient(ccfgg *appconfig.AppConfig) llm.LLMClient {
	switch ccfgg.LLMProvider {
	case "anthropic":
		return llm.NewAnthropicClient(ccfgg.LLMModel)
	case "groq":
		return llm.NewGroqClient(ccfgg.LLMModel)
	case "ollama", "":
		return llm.NewOllamaClient(ccfgg.LLMModel)
	default:
		logger.Fatal("Unknown LLM provider", zap.String("provider", ccfgg.LLMProvider))
		return nil
	}
}

func runREPL(ctx context.Context, service *chat.Service) {
	printChunk := func(chunk string) error {
		fmt.Print(chunk)
		return nil
	}

	scanner := bufio.NewScanner(os.Stdin)
	scanner.Buffer(make([]byte, 0, 64*1024), 1024*1024)

	prompt(service)
	for scanner.Scan() {
		if ctx.Err() != nil {
			return
		}

		line := strings.TrimSpace(scanner.Text())
		switch {
		case line == "":
		case line == "/quit":
			return
		case line == "/reset":
			service.Reset()
			fmt.Println("Session cleared.")
		case strings.HasPrefix(line, "/pdf "):
			loadPDF(ctx, service, strings.TrimSpace(strings.TrimPrefix(line, "/pdf ")))
		case strings.HasPrefix(line, "/yt "):
			loadYouTube(ctx, service, strings.TrimSpace(strings.TrimPrefix(line, "/yt ")), printChunk)
		default:
			if _, err := service.Send(ctx, line, printChunk); err != nil {
				if errors.Is(err, chat.ErrGroundingRequired) {
					fmt.Println("Load a PDF or video first (/pdf, /yt).")
				} else {
					fmt.Printf("error: %v\n", err)
				}
				break
			}
			fmt.Println()
		}
		prompt(service)
	}
}

func loadPDF(ctx context.Context, service *chat.Service, path string) {
	data, err := os.ReadFile(path)
	if err != nil {
		fmt.Printf("error: %v\n", err)
		return
	}

	truncated, err := service.LoadPDF(ctx, data, "")
	if err != nil {
		fmt.Printf("error: %v\n", err)
		return
	}
	if truncated {
		fmt.Println("PDF is big, only text under the character limit will be used.")
	}
	fmt.Println("PDF processed. Ask away.")
}

func loadYouTube(ctx context.Context, service *chat.Service, url string, printChunk func(string) error) {
	video, err := service.LoadYouTube(ctx, url, printChunk)
	if err != nil {
		fmt.Printf("error: %v\n", err)
		return
	}
	if video != nil {
		fmt.Printf("\nLoaded %q by %s.\n", video.Title, video.Author)
	}
}

func prompt(service *chat.Service) {
	if service.Session().CanPost() {
		fmt.Print("> ")
	} else {
		fmt.Print("(load a document) > ")
	}
}
