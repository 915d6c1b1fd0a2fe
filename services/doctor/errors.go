package doctor

import "errors"

// ErrUpdatePending rejects a new profile-update request while a previous one
// still awaits admin review.
var ErrUpdatePending = errors.New("a profile update is already pending admin review")

// ErrNoPendingUpdate reports an approve/reject on a doctor with nothing staged.
var ErrNoPendingUpdate = errors.New("no pending profile update found")

// ErrEmptyUpdate reports a profile-update request that changes nothing.
var ErrEmptyUpdate = errors.New("profile update request contains no changes")
