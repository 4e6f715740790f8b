package main

import (
	"fmt"
	"log"
	"os"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/joho/godotenv"

	"clipscribe/config"
	"clipscribe/demo/client"
	"clipscribe/demo/tui"
	"clipscribe/types"
)

// Demo TUI: submits one transcription request against a running server and
// renders the transcript and SRT output.
//
//	go run ./demo <video_url> <start_time> <end_time>
func main() {
	_ = godotenv.Load()

	if len(os.Args) != 4 {
		fmt.Fprintf(os.Stderr, "usage: %s <video_url> <start_time> <end_time>\n", os.Args[0])
		os.Exit(2)
	}

	apiURL := config.GetEnvOrDefault("API_URL", "http://localhost:8080")
	req := types.TranscriptionRequest{
		VideoURL:  os.Args[1],
		StartTime: os.Args[2],
		EndTime:   os.Args[3],
	}

	m := tui.NewModel(client.New(apiURL), req)
	if _, err := tea.NewProgram(m).Run(); err != nil {
		log.Fatalf("demo error: %v", err)
	}
}
