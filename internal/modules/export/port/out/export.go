package out

import "context"

type Writer interface {
	Write(ctx context.Context, path string, data []byte) error
}
