package interfaces

//go:generate moq -out ../mock/usecase.go -pkg mock . UseCase

import (
	"context"

	"github.com/bayesimpact/gitreview/pkg/domain/model"
)

// UseCase is the surface the relay server drives.
type UseCase interface {
	HandleCommentEvent(ctx context.Context, input *model.CommentNotificationInput) (model.MessageSet, error)
	HandleStatusEvent(ctx context.Context, input *model.StatusNotificationInput) (model.MessageSet, error)
}
