package ui

import (
	"bytes"
	"errors"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/appengine-ltd/timetamer/internal/game"
)

// fixedRand returns the same draw every time, reduced into [0, n).
type fixedRand struct{ v int }

func (r fixedRand) IntN(n int) int { return r.v % n }

func runScript(t *testing.T, cfg AppConfig, script string) string {
	t.Helper()
	var out bytes.Buffer
	cfg.In = strings.NewReader(script)
	cfg.Out = &out
	if cfg.Rand == nil {
		cfg.Rand = fixedRand{v: 3}
	}
	require.NoError(t, NewApp(cfg).Run())
	return out.String()
}

const menuBlock = "Choose an activity:\n" +
	"1) Study\n" +
	"2) Socialize\n" +
	"3) Rest\n" +
	"4) Exercise\n" +
	"5) View history\n" +
	"6) End simulation\n" +
	"Choice: "

func TestRunImmediateEndTranscript(t *testing.T) {
	got := runScript(t, AppConfig{}, "\n\n6\n")

	want := "=== TimeTamer ===\n" +
		"Enter your name: Enter your age (Enter = 18): \n" +
		"Day 1 - Energy: 70, Motivation: 60, Performance: 0\n" +
		menuBlock +
		"Final Stats:\n" +
		"Day 1 - Energy: 70, Motivation: 60, Performance: 0\n" +
		"Thanks for playing TimeTamer!\n"
	assert.Equal(t, want, got)
}

func TestRunStudyScenario(t *testing.T) {
	got := runScript(t, AppConfig{}, "Ada\n20\n1\n5\n6\n")

	assert.Contains(t, got, "Choice: You studied. -20 Energy, +18 Performance.\n")
	assert.Contains(t, got, "Choice: --- History ---\nDay 1: You studied. -20 Energy, +18 Performance.\n")
	assert.True(t, strings.HasSuffix(got, "Final Stats:\nDay 2 - Energy: 50, Motivation: 55, Performance: 18\nThanks for playing TimeTamer!\n"), got)
	assert.Equal(t, 3, strings.Count(got, menuBlock))
}

func TestRunInvalidAgeNotice(t *testing.T) {
	got := runScript(t, AppConfig{}, "Ada\nabc\n6\n")
	assert.Contains(t, got, "Enter your age (Enter = 18): Invalid age. Using 18.\n")

	got = runScript(t, AppConfig{}, "Ada\n\n6\n")
	assert.NotContains(t, got, "Invalid age")
}

func TestRunInvalidChoicesLeaveStateUnchanged(t *testing.T) {
	got := runScript(t, AppConfig{}, "Ada\n20\n7\nabc\n\n5\n6\n")

	assert.Contains(t, got, "Choice: Error: invalid menu choice: 7\n")
	assert.Contains(t, got, "Choice: Error: not a number: \"abc\"\n")
	assert.Contains(t, got, "Choice: Error: not a number: \"\"\n")
	assert.Contains(t, got, "Choice: --- History ---\n\nDay 1 -")
	assert.NotContains(t, got, "Day 2 -")
	assert.True(t, strings.HasSuffix(got, "Final Stats:\nDay 1 - Energy: 70, Motivation: 60, Performance: 0\nThanks for playing TimeTamer!\n"), got)
}

func TestRunEndOfInputEndsSession(t *testing.T) {
	got := runScript(t, AppConfig{}, "Ada\n20\n3\n")

	assert.Contains(t, got, "Choice: You rested. +28 Energy.\n")
	assert.Contains(t, got, "Choice: Error: not a number: \"\"\n")
	assert.True(t, strings.HasSuffix(got, "Final Stats:\nDay 2 - Energy: 98, Motivation: 66, Performance: 0\nThanks for playing TimeTamer!\n"), got)
}

func TestRunEmptyInputUsesDefaults(t *testing.T) {
	got := runScript(t, AppConfig{}, "")
	assert.Contains(t, got, "Enter your name: Enter your age (Enter = 18): \n")
	assert.Contains(t, got, "Thanks for playing TimeTamer!\n")
	assert.NotContains(t, got, "Invalid age")
}

func TestRunWordCommands(t *testing.T) {
	got := runScript(t, AppConfig{Words: true}, "Ada\n20\nstudy\nhist\nquit\n")

	assert.Contains(t, got, "You studied. -20 Energy, +18 Performance.")
	assert.Contains(t, got, "--- History ---\nDay 1: You studied.")
	assert.True(t, strings.HasSuffix(got, "Day 2 - Energy: 50, Motivation: 55, Performance: 18\nThanks for playing TimeTamer!\n"), got)
}

func TestRunWordCommandsOffByDefault(t *testing.T) {
	got := runScript(t, AppConfig{}, "Ada\n20\nstudy\n6\n")
	assert.Contains(t, got, "Choice: Error: not a number: \"study\"\n")
	assert.NotContains(t, got, "You studied.")
}

func TestRunSeededSessionsMatch(t *testing.T) {
	script := "Ada\n20\n1\n2\n3\n4\n5\n6\n"
	var a, b bytes.Buffer
	require.NoError(t, NewApp(AppConfig{Seed: 5150, In: strings.NewReader(script), Out: &a}).Run())
	require.NoError(t, NewApp(AppConfig{Seed: 5150, In: strings.NewReader(script), Out: &b}).Run())
	assert.Equal(t, a.String(), b.String())
}

type failingWriter struct{ after int }

func (w *failingWriter) Write(p []byte) (int, error) {
	if w.after <= 0 {
		return 0, errors.New("closed pipe")
	}
	w.after--
	return len(p), nil
}

func TestRunReturnsWriteError(t *testing.T) {
	app := NewApp(AppConfig{In: strings.NewReader("1\n1\n1\n"), Out: &failingWriter{after: 3}, Rand: fixedRand{}})
	err := app.Run()
	require.Error(t, err)
	assert.Contains(t, err.Error(), "closed pipe")
}

func TestPrintActivities(t *testing.T) {
	var buf bytes.Buffer
	require.NoError(t, PrintActivities(&buf, game.DefaultCatalog()))
	assert.Equal(t, "1) Study - Improve performance but lose energy.\n"+
		"2) Socialize - Increase motivation by hanging out.\n"+
		"3) Rest - Recover energy and motivation.\n"+
		"4) Exercise - Boost motivation and health.\n", buf.String())
}
