package subtitle

import "strings"

// Segment is one timed boundary from the stream; offsets are in
// 100-nanosecond ticks and End already includes the duration.
type Segment struct {
	Start uint64
	End   uint64
	Text  string
}

// Maker buckets word and sentence boundaries in arrival order. It is the
// sole owner of its two sequences: append while the stream runs, render once
// it is exhausted. Not safe for concurrent use.
type Maker struct {
	words     []Segment
	sentences []Segment
}

// Word appends one word boundary.
func (m *Maker) Word(start, end uint64, text string) {
	m.words = append(m.words, Segment{Start: start, End: end, Text: text})
}

// Sentence appends one sentence boundary.
func (m *Maker) Sentence(start, end uint64, text string) {
	m.sentences = append(m.sentences, Segment{Start: start, End: end, Text: text})
}

// WordCues renders the word segments as cue blocks, grouping up to
// wordsInCue words per cue (values below 1 are treated as 1). A cue closes
// early when the current word trims to ".", "," or "?", or on the final
// word, so punctuation tokens never merge into the following group. Indexes
// start at 1.
func (m *Maker) WordCues(wordsInCue int) string {
	if wordsInCue < 1 {
		wordsInCue = 1
	}

	var (
		cues  strings.Builder
		group []string
		start uint64
		index int
	)
	for i, segment := range m.words {
		value := strings.TrimSpace(segment.Text)
		group = append(group, value)
		if len(group) == 1 {
			start = segment.Start
		}
		closing := len(group) == wordsInCue ||
			value == "." || value == "," || value == "?" ||
			i == len(m.words)-1
		if !closing {
			continue
		}
		index++
		cues.WriteString(formatCue(index, start, segment.End, strings.Join(group, " ")))
		group = group[:0]
	}
	return cues.String()
}

// SentenceCues renders one cue per sentence segment in arrival order.
// Indexes start at 0.
func (m *Maker) SentenceCues() string {
	var cues strings.Builder
	for i, segment := range m.sentences {
		cues.WriteString(formatCue(i, segment.Start, segment.End, segment.Text))
	}
	return cues.String()
}
