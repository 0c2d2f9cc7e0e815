package subtitle

import (
	"strconv"
	"strings"
	"testing"
)

func tickSeconds(n uint64) uint64 { return n * 10_000_000 }

func addWords(m *Maker, words ...string) {
	for i, w := range words {
		start := tickSeconds(uint64(i))
		m.Word(start, start+tickSeconds(1), w)
	}
}

func TestWordCuesPunctuationClosesCueEarly(t *testing.T) {
	var m Maker
	addWords(&m, "Hello", ",", "world", ".")

	got := m.WordCues(1)
	blocks := strings.Split(strings.TrimSuffix(got, "\n\n"), "\n\n")
	if len(blocks) != 4 {
		t.Fatalf("got %d cues, want 4:\n%s", len(blocks), got)
	}
	for i, text := range []string{"Hello", ",", "world", "."} {
		lines := strings.Split(blocks[i], "\n")
		if len(lines) != 3 {
			t.Fatalf("cue %d = %q, want 3 lines", i, blocks[i])
		}
		if lines[0] != strconv.Itoa(i+1) {
			t.Fatalf("cue %d index = %q, want %d", i, lines[0], i+1)
		}
		if lines[2] != text {
			t.Fatalf("cue %d text = %q, want %q", i, lines[2], text)
		}
	}
}

func TestWordCuesGroupsByCount(t *testing.T) {
	var m Maker
	addWords(&m, "one", "two", "three", "four", "five")

	got := m.WordCues(2)
	want := "1\n00:00:00.000 --> 00:00:02.000\none two\n\n" +
		"2\n00:00:02.000 --> 00:00:04.000\nthree four\n\n" +
		"3\n00:00:04.000 --> 00:00:05.000\nfive\n\n"
	if got != want {
		t.Fatalf("WordCues(2) = %q, want %q", got, want)
	}
}

func TestWordCuesPunctuationBreaksGroup(t *testing.T) {
	var m Maker
	addWords(&m, "wait", "?", "really")

	got := m.WordCues(3)
	// The "?" closes the first cue before the count is reached.
	want := "1\n00:00:00.000 --> 00:00:02.000\nwait ?\n\n" +
		"2\n00:00:02.000 --> 00:00:03.000\nreally\n\n"
	if got != want {
		t.Fatalf("WordCues(3) = %q, want %q", got, want)
	}
}

func TestWordCuesClampsNonPositiveGroupSize(t *testing.T) {
	var m Maker
	addWords(&m, "a", "b")
	if got, want := m.WordCues(0), m.WordCues(1); got != want {
		t.Fatalf("WordCues(0) = %q, want same as WordCues(1) %q", got, want)
	}
}

func TestWordCuesEmptyMaker(t *testing.T) {
	var m Maker
	if got := m.WordCues(1); got != "" {
		t.Fatalf("WordCues on empty maker = %q, want empty", got)
	}
	if got := m.SentenceCues(); got != "" {
		t.Fatalf("SentenceCues on empty maker = %q, want empty", got)
	}
}

func TestSentenceCuesIndexFromZero(t *testing.T) {
	var m Maker
	m.Sentence(0, tickSeconds(2), "First sentence.")
	m.Sentence(tickSeconds(2), tickSeconds(5), "Second one.")

	got := m.SentenceCues()
	want := "0\n00:00:00.000 --> 00:00:02.000\nFirst sentence.\n\n" +
		"1\n00:00:02.000 --> 00:00:05.000\nSecond one.\n\n"
	if got != want {
		t.Fatalf("SentenceCues() = %q, want %q", got, want)
	}
}
