package ytt

import (
	"strings"
	"text/template"
)

// RenderOptions controls which sections Render includes. Sections whose value is absent are always omitted.
type RenderOptions struct {
	ShowTitle       bool
	ShowDescription bool
	ShowURL         bool
	// URL to show under the title; usually VideoID.WatchURL().
	URL string
}

func DefaultRenderOptions(id VideoID) RenderOptions {
	return RenderOptions{
		ShowTitle:       true,
		ShowDescription: true,
		ShowURL:         true,
		URL:             id.WatchURL(),
	}
}

var bundleTemplate = template.Must(template.New("bundle").Parse(
	"{{ if .Header }}{{ range .Header }}{{ . }}\n{{ end }}\n{{ end }}" +
		"{{ with .Description }}## Description\n{{ . }}\n\n{{ end }}" +
		"## Transcript\n{{ range .Transcript }}{{ .Text }}\n{{ end }}",
))

type bundleTemplateArgs struct {
	Header      []string
	Description string
	Transcript  Transcript
}

// Render formats a bundle as markdown: an optional "# title" and URL, an optional "## Description" section, then the
// "## Transcript" section with one line of text per transcript line.
func Render(bundle Bundle, opts RenderOptions) (string, error) {
	args := bundleTemplateArgs{Transcript: bundle.Transcript}
	if opts.ShowTitle {
		if title := bundle.Metadata.Title.UnwrapOrDefault(); title != "" {
			args.Header = append(args.Header, "# "+title)
		}
	}
	if opts.ShowURL && opts.URL != "" {
		args.Header = append(args.Header, opts.URL)
	}
	if opts.ShowDescription {
		args.Description = bundle.Metadata.Description.UnwrapOrDefault()
	}
	builder := strings.Builder{}
	if err := bundleTemplate.Execute(&builder, &args); err != nil {
		return "", err
	}
	return strings.TrimRight(builder.String(), "\n"), nil
}
