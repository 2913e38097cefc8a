package history

import (
	"bytes"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func newTestLog(t *testing.T) *CSVLog {
	t.Helper()
	return NewCSVLog(filepath.Join(t.TempDir(), "data", "workout_history.csv"))
}

func TestCSVLogLoadMissingFile(t *testing.T) {
	l := newTestLog(t)
	records, err := l.Load()
	require.NoError(t, err)
	assert.NotNil(t, records)
	assert.Empty(t, records)
}

func TestCSVLogSaveAndLoad(t *testing.T) {
	l := newTestLog(t)

	require.NoError(t, l.Save(Record{Date: "2024-01-01", Phase: "Life Protocol (Foundation)", Mood: MoodStrong, Completed: true}))
	require.NoError(t, l.Save(Record{Date: "2024-01-02", Phase: "6-Week Alpha Course", Mood: MoodTired, Completed: true}))

	records, err := l.Load()
	require.NoError(t, err)
	require.Len(t, records, 2)
	assert.Equal(t, Record{Date: "2024-01-01", Phase: "Life Protocol (Foundation)", Mood: MoodStrong, Completed: true}, records[0])
	assert.Equal(t, "2024-01-02", records[1].Date)
	assert.Equal(t, MoodTired, records[1].Mood)

	data, err := os.ReadFile(l.Path())
	require.NoError(t, err)
	lines := strings.Split(strings.TrimSpace(string(data)), "\n")
	assert.Equal(t, "Date,Phase,Mood,Completed", lines[0])
	assert.Equal(t, "2024-01-01,Life Protocol (Foundation),Great / Strong,Yes", lines[1])
}

func TestCSVLogUpsert(t *testing.T) {
	l := newTestLog(t)

	require.NoError(t, l.Save(Record{Date: "2024-01-01", Phase: "A", Mood: MoodNeutral, Completed: true}))
	require.NoError(t, l.Save(Record{Date: "2024-01-02", Phase: "A", Mood: MoodNeutral, Completed: true}))
	require.NoError(t, l.Save(Record{Date: "2024-01-01", Phase: "B", Mood: MoodInjured, Completed: false}))

	records, err := l.Load()
	require.NoError(t, err)
	require.Len(t, records, 2)
	// overwritten in place, not moved to the end
	assert.Equal(t, Record{Date: "2024-01-01", Phase: "B", Mood: MoodInjured, Completed: false}, records[0])
	assert.Equal(t, "2024-01-02", records[1].Date)
}

func TestCSVLogSaveIdempotent(t *testing.T) {
	l := newTestLog(t)
	r := Record{Date: "2024-01-01", Phase: "A", Mood: MoodTired, Completed: true}

	require.NoError(t, l.Save(r))
	first, err := os.ReadFile(l.Path())
	require.NoError(t, err)

	require.NoError(t, l.Save(r))
	second, err := os.ReadFile(l.Path())
	require.NoError(t, err)

	assert.Equal(t, first, second)
}

func TestCSVLogClear(t *testing.T) {
	l := newTestLog(t)

	removed, err := l.Clear()
	require.NoError(t, err)
	assert.False(t, removed, "nothing to clear yet")

	require.NoError(t, l.Save(Record{Date: "2024-01-01"}))
	removed, err = l.Clear()
	require.NoError(t, err)
	assert.True(t, removed)

	records, err := l.Load()
	require.NoError(t, err)
	assert.Empty(t, records)
}

func TestCSVLogSaveUnwritableDir(t *testing.T) {
	dir := t.TempDir()
	blocker := filepath.Join(dir, "file")
	require.NoError(t, os.WriteFile(blocker, []byte("x"), 0o644))

	l := NewCSVLog(filepath.Join(blocker, "history.csv"))
	err := l.Save(Record{Date: "2024-01-01"})
	assert.Error(t, err)
}

func TestDecodeCSVLogFormat(t *testing.T) {
	in := "Date,Phase,Mood,Completed\n" +
		"2024-01-01,Life Protocol (Foundation),Injured / Pain,Yes\n" +
		"Week 1 Day 2,6-Week Alpha Course,Neutral,Yes\n" +
		"2024-01-03,Life Protocol (Foundation),Tired / Low Energy\n" +
		"\n"

	records, unreadable, err := DecodeCSV(strings.NewReader(in))
	require.NoError(t, err)
	assert.Zero(t, unreadable)
	require.Len(t, records, 3)
	assert.Equal(t, MoodInjured, records[0].Mood)
	assert.True(t, records[0].Completed)
	assert.Equal(t, "Week 1 Day 2", records[1].Date)
	assert.False(t, records[2].Completed, "missing column reads as not completed")
}

func TestDecodeCSVNoHeader(t *testing.T) {
	records, _, err := DecodeCSV(strings.NewReader("2024-02-01,P,strong,yes\n"))
	require.NoError(t, err)
	require.Len(t, records, 1)
	assert.Equal(t, MoodStrong, records[0].Mood)
	assert.True(t, records[0].Completed)
}

func TestDecodeCSVBareQuoteAmongValidRows(t *testing.T) {
	in := "Date,Phase,Mood,Completed\n" +
		"2024-01-01,P,Neutral,Yes\n" +
		"2024-01-02,a \"b,Neutral,Yes\n" +
		"2024-01-03,P,Neutral,Yes\n"

	records, unreadable, err := DecodeCSV(strings.NewReader(in))
	require.NoError(t, err)
	assert.Zero(t, unreadable)
	require.Len(t, records, 3)
	assert.Equal(t, `a "b`, records[1].Phase)
	assert.Equal(t, "2024-01-03", records[2].Date)
}

func TestDecodeCSVUnterminatedQuoteKeepsEarlierRows(t *testing.T) {
	in := "Date,Phase,Mood,Completed\n" +
		"2024-01-01,P,Neutral,Yes\n" +
		"\"unterminated,x\n"

	records, _, err := DecodeCSV(strings.NewReader(in))
	require.NoError(t, err)
	require.Len(t, records, 2)
	assert.Equal(t, "2024-01-01", records[0].Date)
	_, ok := records[1].Day()
	assert.False(t, ok, "the broken row has no usable date")
}

func TestCSVLogCorruptRowStillLoads(t *testing.T) {
	l := newTestLog(t)
	require.NoError(t, os.MkdirAll(filepath.Dir(l.Path()), 0o755))
	in := "Date,Phase,Mood,Completed\n" +
		"2024-01-01,P,Neutral,Yes\n" +
		"2024-01-02,a \"b,Neutral,Yes\n"
	require.NoError(t, os.WriteFile(l.Path(), []byte(in), 0o644))

	records, err := l.Load()
	require.NoError(t, err)
	assert.Len(t, records, 2)
	assert.Zero(t, l.Unreadable())

	require.NoError(t, l.Save(Record{Date: "2024-01-03", Completed: true}))
	records, err = l.Load()
	require.NoError(t, err)
	assert.Len(t, records, 3)
}

func TestEncodeCSVQuoting(t *testing.T) {
	var buf bytes.Buffer
	require.NoError(t, EncodeCSV(&buf, []Record{{Date: "2024-01-01", Phase: `Phase "1", repair`}}))

	records, _, err := DecodeCSV(&buf)
	require.NoError(t, err)
	require.Len(t, records, 1)
	assert.Equal(t, `Phase "1", repair`, records[0].Phase)
	assert.False(t, records[0].Completed)
}

func TestParseMood(t *testing.T) {
	tests := []struct {
		in   string
		want Mood
		ok   bool
	}{
		{"Neutral", MoodNeutral, true},
		{"Great / Strong", MoodStrong, true},
		{"tired / low energy", MoodTired, true},
		{"Injured / Pain", MoodInjured, true},
		{"INJURED", MoodInjured, true},
		{" strong ", MoodStrong, true},
		{"sleepy", MoodNeutral, false},
		{"", MoodNeutral, false},
	}
	for _, tt := range tests {
		got, ok := ParseMood(tt.in)
		assert.Equal(t, tt.want, got, tt.in)
		assert.Equal(t, tt.ok, ok, tt.in)
	}
	assert.Equal(t, "Neutral", Mood(42).String())
}
