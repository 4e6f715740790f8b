package tui

import (
	"fmt"
	"strings"
)

func (m Model) View() string {
	var b strings.Builder

	b.WriteString(TitleStyle.Render("Video Segment Transcriber"))
	b.WriteString("\n")
	b.WriteString(InfoStyle.Render(fmt.Sprintf("%s  [%s - %s]",
		m.Request.VideoURL, m.Request.StartTime, m.Request.EndTime)))
	b.WriteString("\n\n")

	switch m.State {
	case StateSubmitting:
		b.WriteString(StatusStyle.Render(fmt.Sprintf("Transcribing... %ds elapsed", int(m.Elapsed.Seconds()))))
		b.WriteString("\n")
		b.WriteString(InfoStyle.Render("(downloading the segment and running the model can take a while)"))

	case StateError:
		b.WriteString(ErrorStyle.Render("Request failed: " + m.Err.Error()))

	case StateComplete:
		resp := m.Response
		b.WriteString(StatusStyle.Render(resp.Message))
		b.WriteString("\n\n")
		b.WriteString(BoxStyle.Render(resp.Transcription))
		b.WriteString("\n")
		if resp.SRTTranscription != nil {
			b.WriteString("\n")
			b.WriteString(TitleStyle.Render("SRT"))
			b.WriteString("\n")
			b.WriteString(BoxStyle.Render(*resp.SRTTranscription))
			b.WriteString("\n")
		}
		b.WriteString(InfoStyle.Render(fmt.Sprintf(
			"download %.2fs · transcription %.2fs · total %.2fs",
			resp.DownloadSeconds, resp.TranscriptionSeconds, resp.TotalSeconds)))
	}

	b.WriteString("\n\n")
	b.WriteString(InfoStyle.Render("press q to quit"))
	b.WriteString("\n")
	return b.String()
}
