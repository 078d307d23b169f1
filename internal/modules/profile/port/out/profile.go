package out

import (
	"context"

	"fittrack/internal/modules/profile/domain"
)

// Upload is a profile image ready for the wire: content already read
// and sniffed by the caller.
type Upload struct {
	Filename    string
	ContentType string
	Content     []byte
}

// ProfileAPI is the outbound port for the /users/me endpoints.
type ProfileAPI interface {
	Get(ctx context.Context) (domain.Profile, error)
	Update(ctx context.Context, patch domain.Patch) (domain.Profile, error)
	UploadImage(ctx context.Context, upload Upload) (string, error)
}
