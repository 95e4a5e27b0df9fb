package ui

import (
	"testing"

	"github.com/stretchr/testify/require"
)

func TestDeleteFlow_HappyPath(t *testing.T) {
	var f DeleteFlow
	require.Equal(t, DeleteIdle, f.Phase())

	f.Request("w1", "Nguyễn Văn A")
	require.Equal(t, DeleteConfirming, f.Phase())
	require.Equal(t, "w1", f.Target())
	require.Equal(t, "Nguyễn Văn A", f.Label())

	require.True(t, f.Confirm())
	require.Equal(t, DeleteRunning, f.Phase())

	f.Finish()
	require.Equal(t, DeleteIdle, f.Phase())
	require.Empty(t, f.Target())
}

func TestDeleteFlow_ConfirmFiresAtMostOnce(t *testing.T) {
	var f DeleteFlow

	// Confirm from Idle never fires.
	require.False(t, f.Confirm())

	f.Request("w1", "A")
	require.True(t, f.Confirm())

	// A second confirm while the request runs does not fire again.
	require.False(t, f.Confirm())
}

func TestDeleteFlow_DismissNeverFires(t *testing.T) {
	var f DeleteFlow
	f.Request("w1", "A")
	f.Dismiss()

	require.Equal(t, DeleteIdle, f.Phase())
	require.False(t, f.Confirm())
}

func TestDeleteFlow_RunningIgnoresRequestAndDismiss(t *testing.T) {
	var f DeleteFlow
	f.Request("w1", "A")
	require.True(t, f.Confirm())

	f.Dismiss()
	require.Equal(t, DeleteRunning, f.Phase())

	f.Request("w2", "B")
	require.Equal(t, "w1", f.Target())
}
