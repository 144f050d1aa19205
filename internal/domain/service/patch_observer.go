package service

import "gamehub/internal/domain/entity"

// PatchObserver is notified after an automatic patch is staged.
type PatchObserver interface {
	AutoPatchStaged(reason entity.PatchReason)
}
