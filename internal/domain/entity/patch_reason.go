package entity

// PatchReason is what triggered an automatic patch.
type PatchReason string

const (
	PatchReasonCrash            PatchReason = "CRASH"
	PatchReasonNegativeFeedback PatchReason = "NEGATIVE_FEEDBACK"
)

// Tags returns the changelog tags for an automatic patch.
func (r PatchReason) Tags() []LogTag {
	switch r {
	case PatchReasonCrash:
		return []LogTag{LogTagBugFix, LogTagSecurityFix}
	case PatchReasonNegativeFeedback:
		return []LogTag{LogTagAddFeature, LogTagBugFix}
	default:
		return nil
	}
}

// Description returns the changelog text for an automatic patch.
func (r PatchReason) Description() string {
	switch r {
	case PatchReasonCrash:
		return "Automatic stability fix after multiple crash reports."
	case PatchReasonNegativeFeedback:
		return "Balance update based on community feedback."
	default:
		return ""
	}
}
