package metadata

import (
	"testing"

	assert_ "github.com/stretchr/testify/assert"
)

func TestMetaContent(t *testing.T) {
	assert := assert_.New(t)

	document := `<html><head>
<title>Ignored - YouTube</title>
<meta name="description" content="Plain description">
<meta property="og:title" content="Fish &amp; Chips">
<meta content="Reversed order" property="og:description">
</head><body><meta property="og:title" content="Body title"></body></html>`

	value, ok := MetaContent(document, "og:title")
	assert.True(ok)
	assert.Equal("Fish & Chips", value)

	value, ok = MetaContent(document, "OG:DESCRIPTION")
	assert.True(ok)
	assert.Equal("Reversed order", value)

	value, ok = MetaContent(document, "description")
	assert.True(ok)
	assert.Equal("Plain description", value)

	_, ok = MetaContent(document, "og:image")
	assert.False(ok)
}

func TestMetaContentEmptyIsAbsent(t *testing.T) {
	assert := assert_.New(t)

	_, ok := MetaContent(`<head><meta property="og:title" content="   "></head>`, "og:title")
	assert.False(ok)
}

func TestMetaContentWithoutHead(t *testing.T) {
	assert := assert_.New(t)

	value, ok := MetaContent(`<meta property="og:title" content="Headless">`, "og:title")
	assert.True(ok)
	assert.Equal("Headless", value)
}

func TestMetaContentRegex(t *testing.T) {
	assert := assert_.New(t)

	value, ok := metaContentRegex(`<META NAME='og:title' data-x="1" CONTENT="It&#39;s here">`, "og:title")
	assert.True(ok)
	assert.Equal("It's here", value)

	value, ok = metaContentRegex(`<meta content='Swapped' property="og:description"/>`, "og:description")
	assert.True(ok)
	assert.Equal("Swapped", value)

	_, ok = metaContentRegex(`<meta property="og:title">`, "og:title")
	assert.False(ok)
}

func TestHTMLTitle(t *testing.T) {
	assert := assert_.New(t)

	value, ok := HTMLTitle(`<html><head><title>  A &amp; B - YouTube </title></head></html>`)
	assert.True(ok)
	assert.Equal("A & B", value)

	value, ok = HTMLTitle(`<TITLE lang="en">Plain</TITLE>`)
	assert.True(ok)
	assert.Equal("Plain", value)

	_, ok = HTMLTitle(`<title> - YouTube</title>`)
	assert.False(ok)

	_, ok = HTMLTitle(`<p>no title</p>`)
	assert.False(ok)
}
