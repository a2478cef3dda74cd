package contracts

import "context"

type Storage interface {
	// PutObject stores payload and returns the object key.
	PutObject(ctx context.Context, bucketName, objectName string, payload []byte, contentType string) (string, error)
}
