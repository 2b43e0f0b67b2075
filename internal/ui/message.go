package ui

import "github.com/desertthunder/tdx/internal/models"

// removeTaskMsg fires after the removal transition delay; the task leaves the
// store when it is handled.
type removeTaskMsg struct {
	id string
}

// syncDoneMsg reports a successful push.
type syncDoneMsg struct {
	receipt *models.SyncReceipt
}

// syncFailedMsg reports a failed push.
type syncFailedMsg struct {
	err error
}

// syncRevertMsg returns the sync indicator to idle after its flash interval.
type syncRevertMsg struct{}
