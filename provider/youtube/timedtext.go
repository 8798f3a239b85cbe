package youtube

import (
	"bytes"
	"encoding/xml"
	"fmt"
	"html"
	"strconv"
	"strings"

	"github.com/alanbriolat/ytt"
)

// Both timedtext formats share one document type; the root element differs (<transcript> or <timedtext>) but is
// otherwise ignored.
type timedTextDocument struct {
	// srv1: <text start="1.23" dur="4.5">...</text>, times in seconds
	Texts []struct {
		Start string `xml:"start,attr"`
		Dur   string `xml:"dur,attr"`
		Text  string `xml:",chardata"`
	} `xml:"text"`
	// srv3: <body><p t="1230" d="4500">...<s>...</s></p></body>, times in milliseconds
	Paragraphs []struct {
		T        string `xml:"t,attr"`
		D        string `xml:"d,attr"`
		Text     string `xml:",chardata"`
		Segments []struct {
			Text string `xml:",chardata"`
		} `xml:"s"`
	} `xml:"body>p"`
}

// DecodeTimedText parses a timedtext caption document. Entries with unparseable timing or no text are skipped, and
// a missing duration is treated as zero. Returns ytt.ErrNoTranscript if no usable entries remain.
func DecodeTimedText(data []byte) (ytt.Transcript, error) {
	var doc timedTextDocument
	decoder := xml.NewDecoder(bytes.NewReader(data))
	decoder.Strict = false
	decoder.Entity = xml.HTMLEntity
	if err := decoder.Decode(&doc); err != nil {
		return nil, fmt.Errorf("%w: failed to parse timedtext: %v", ytt.ErrNoTranscript, err)
	}

	var transcript ytt.Transcript
	for _, text := range doc.Texts {
		if line, ok := newLine(text.Text, text.Start, text.Dur, 1); ok {
			transcript = append(transcript, line)
		}
	}
	for _, p := range doc.Paragraphs {
		text := p.Text
		if len(p.Segments) > 0 {
			var sb strings.Builder
			for _, s := range p.Segments {
				sb.WriteString(s.Text)
			}
			text = sb.String()
		}
		if line, ok := newLine(text, p.T, p.D, 1000); ok {
			transcript = append(transcript, line)
		}
	}

	if len(transcript) == 0 {
		return nil, fmt.Errorf("%w: caption document has no usable lines", ytt.ErrNoTranscript)
	}
	return transcript, nil
}

func newLine(text, start, duration string, scale float64) (ytt.TranscriptLine, bool) {
	// Captions are often double-escaped, so there may still be entities left after XML decoding
	text = strings.TrimSpace(html.UnescapeString(text))
	if text == "" {
		return ytt.TranscriptLine{}, false
	}
	startValue, err := strconv.ParseFloat(strings.TrimSpace(start), 64)
	if err != nil || startValue < 0 {
		return ytt.TranscriptLine{}, false
	}
	var durationValue float64
	if duration = strings.TrimSpace(duration); duration != "" {
		if durationValue, err = strconv.ParseFloat(duration, 64); err != nil || durationValue < 0 {
			return ytt.TranscriptLine{}, false
		}
	}
	return ytt.TranscriptLine{
		Text:     text,
		Start:    startValue / scale,
		Duration: durationValue / scale,
	}, true
}
