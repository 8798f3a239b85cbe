package youtube

import (
	"testing"

	assert_ "github.com/stretchr/testify/assert"

	"github.com/alanbriolat/ytt"
)

func TestDecodeTimedTextSrv1(t *testing.T) {
	assert := assert_.New(t)

	doc := `<?xml version="1.0" encoding="utf-8" ?><transcript>
<text start="0.5" dur="1.25">Hello &amp;amp; welcome</text>
<text start="1.75" dur="2">it&amp;#39;s here</text>
<text start="3.75">no duration</text>
<text start="bogus" dur="1">skipped</text>
<text start="5" dur="1">   </text>
</transcript>`
	transcript, err := DecodeTimedText([]byte(doc))
	assert.NoError(err)
	assert.Equal(ytt.Transcript{
		{Text: "Hello & welcome", Start: 0.5, Duration: 1.25},
		{Text: "it's here", Start: 1.75, Duration: 2},
		{Text: "no duration", Start: 3.75, Duration: 0},
	}, transcript)
}

func TestDecodeTimedTextSrv3(t *testing.T) {
	assert := assert_.New(t)

	doc := `<?xml version="1.0" encoding="utf-8" ?><timedtext format="3"><body>
<p t="1000" d="2500">plain line</p>
<p t="3500" d="1500"><s>split</s><s> line</s></p>
<p t="" d="100">skipped</p>
</body></timedtext>`
	transcript, err := DecodeTimedText([]byte(doc))
	assert.NoError(err)
	assert.Equal(ytt.Transcript{
		{Text: "plain line", Start: 1, Duration: 2.5},
		{Text: "split line", Start: 3.5, Duration: 1.5},
	}, transcript)
}

func TestDecodeTimedTextEmpty(t *testing.T) {
	assert := assert_.New(t)

	_, err := DecodeTimedText([]byte(`<transcript></transcript>`))
	assert.ErrorIs(err, ytt.ErrNoTranscript)

	_, err = DecodeTimedText([]byte(``))
	assert.ErrorIs(err, ytt.ErrNoTranscript)
}
