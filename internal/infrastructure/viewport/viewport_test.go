package viewport

import (
	"context"
	"errors"
	"syscall"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestViewport_MatchMedia(t *testing.T) {
	v := New(800)
	sm := v.MatchMedia(576)
	lg := v.MatchMedia(992)

	assert.Equal(t, "(min-width: 576px)", sm.Query())
	assert.True(t, sm.Matches())
	assert.False(t, lg.Matches())
}

func TestViewport_NotifiesOnlyOnFlip(t *testing.T) {
	v := New(800)
	q := v.MatchMedia(768)

	var got []bool
	remove := q.OnChange(func(m bool) { got = append(got, m) })

	v.SetWidth(900)
	v.SetWidth(768)
	v.SetWidth(767)
	v.SetWidth(100)
	v.SetWidth(1000)

	assert.Equal(t, []bool{false, true}, got)

	remove()
	remove()
	v.SetWidth(10)
	assert.Len(t, got, 2)
	assert.Equal(t, 0, q.(*query).listenerCount())
}

func TestViewport_ListenersSeeConsistentState(t *testing.T) {
	v := New(800)
	md := v.MatchMedia(768)
	xl := v.MatchMedia(1200)

	var seen []bool
	md.OnChange(func(bool) { seen = append(seen, xl.Matches()) })
	xl.OnChange(func(bool) {})

	v.SetWidth(100)
	v.SetWidth(1300)
	assert.Equal(t, []bool{false, true}, seen, "every query is updated before any listener runs")
}

func TestTerminal_Update(t *testing.T) {
	v := New(0)
	cols := 100
	term := NewTerminalWithSize(v, func() (int, int, error) { return cols, 40, nil }, 0)

	require.NoError(t, term.Update())
	assert.Equal(t, 800, v.Width())

	cols = 150
	require.NoError(t, term.Update())
	assert.Equal(t, 1200, v.Width())
}

func TestTerminal_UpdateError(t *testing.T) {
	v := New(640)
	term := NewTerminalWithSize(v, func() (int, int, error) { return 0, 0, errors.New("not a tty") }, 10)

	assert.Error(t, term.Update())
	assert.Equal(t, 640, v.Width())
	assert.Error(t, term.Run(context.Background()))
}

func TestTerminal_RunFollowsSIGWINCH(t *testing.T) {
	v := New(0)
	cols := make(chan int, 2)
	cols <- 80
	current := 80
	term := NewTerminalWithSize(v, func() (int, int, error) {
		select {
		case c := <-cols:
			current = c
		default:
		}
		return current, 24, nil
	}, 10)

	ctx, cancel := context.WithCancel(context.Background())
	done := make(chan error, 1)
	go func() { done <- term.Run(ctx) }()

	require.Eventually(t, func() bool { return v.Width() == 800 }, time.Second, 5*time.Millisecond)

	cols <- 130
	require.NoError(t, syscall.Kill(syscall.Getpid(), syscall.SIGWINCH))
	assert.Eventually(t, func() bool { return v.Width() == 1300 }, 2*time.Second, 5*time.Millisecond)

	cancel()
	assert.NoError(t, <-done)
}
