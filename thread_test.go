package amp

import (
	"sync/atomic"
	"testing"
	"time"

	"github.com/stretchr/testify/require"
)

func TestThreadCreateAndLaunch(t *testing.T) {
	var ran atomic.Bool
	th, rc := CreateAndLaunch(func(ctx any) {
		ran.Store(true)
		require.Equal(t, "payload", ctx)
	}, "payload")
	require.Equal(t, Success, rc)

	require.Equal(t, Success, th.JoinAndDestroy())
	require.True(t, ran.Load())
}

func TestThreadLaunchWithoutFunctionFails(t *testing.T) {
	th, rc := NewThread()
	require.Equal(t, Success, rc)
	defer th.Destroy()

	require.Equal(t, Error, th.Launch())
}

func TestThreadDoubleLaunchIsBusy(t *testing.T) {
	th, rc := NewThread()
	require.Equal(t, Success, rc)
	defer th.JoinAndDestroy()

	th.SetFunction(func(ctx any) { time.Sleep(10 * time.Millisecond) })
	require.Equal(t, Success, th.Launch())
	require.Equal(t, Busy, th.Launch())
}

func TestThreadJoinWithoutLaunchIsBusy(t *testing.T) {
	th, rc := NewThread()
	require.Equal(t, Success, rc)
	defer th.Destroy()

	require.Equal(t, Busy, th.Join())
}

func TestThreadDestroyBusyWhileJoinable(t *testing.T) {
	th, rc := NewThread()
	require.Equal(t, Success, rc)

	release := make(chan struct{})
	th.SetFunction(func(ctx any) { <-release })
	require.Equal(t, Success, th.Launch())

	require.Equal(t, Busy, th.Destroy())

	close(release)
	require.Equal(t, Success, th.Join())
	require.Equal(t, Success, th.Destroy())
}

func TestThreadStateMachine(t *testing.T) {
	s := newFastState()
	require.Equal(t, statePreLaunch, s.load())
	require.True(t, s.tryTransition(statePreLaunch, stateJoinable))
	require.False(t, s.tryTransition(statePreLaunch, stateJoinable))
	require.True(t, s.tryTransition(stateJoinable, stateJoined))
	require.Equal(t, stateJoined, s.load())
}
