package usecase

// Export unexported functions for testing
var (
	PickReviewerForTest    = (*UseCase).pickReviewer
	RecordReviewersForTest = (*UseCase).recordReviewers
	HandleRebaseForTest    = (*UseCase).handleRebase
	AbortForTest           = (*UseCase).abort
)
