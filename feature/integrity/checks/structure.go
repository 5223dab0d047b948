package checks

import (
	"bytes"
	"context"
	"fmt"
	"strings"

	"ingredient-manager/core/objectstore"

	"github.com/minio/minio-go/v7"
	"go.uber.org/zap"
)

// StructureReport is the outcome of a structure check, optionally with a fix.
type StructureReport struct {
	Status  string   `json:"status"` // "checked", "fixed"
	Missing []string `json:"missing"`
	Fixed   []string `json:"fixed,omitempty"`
}

// CheckStructure returns the folders of bucket that hold no object.
func CheckStructure(ctx context.Context, client objectstore.Client, bucket string, folders []string) ([]string, error) {
	missing := []string{}

	exists, err := client.BucketExists(ctx, bucket)
	if err != nil {
		return nil, fmt.Errorf("failed to check bucket existence: %w", err)
	}
	if !exists {
		return nil, fmt.Errorf("bucket %s does not exist", bucket)
	}

	for _, folder := range folders {
		opts := minio.ListObjectsOptions{
			Prefix:  folderPath(folder),
			MaxKeys: 1,
		}

		found := false
		for obj := range client.ListObjects(ctx, bucket, opts) {
			if obj.Err != nil {
				return nil, fmt.Errorf("failed to list %s: %w", folder, obj.Err)
			}
			found = true
		}

		if !found {
			missing = append(missing, folder)
		}
	}

	return missing, nil
}

// FixStructure creates the bucket if needed and a marker object for every
// missing folder.
func FixStructure(ctx context.Context, client objectstore.Client, bucket, region string, logger *zap.Logger, missing []string) error {
	if err := objectstore.EnsureBucket(ctx, client, bucket, region); err != nil {
		return err
	}

	for _, folder := range missing {
		_, err := client.PutObject(ctx, bucket, folderPath(folder), bytes.NewReader([]byte{}), 0, minio.PutObjectOptions{})
		if err != nil {
			logger.Error("Failed to create folder", zap.String("folder", folder), zap.Error(err))
			return err
		}
		logger.Info("Created missing folder", zap.String("folder", folder))
	}
	return nil
}

func folderPath(folder string) string {
	if strings.HasSuffix(folder, "/") {
		return folder
	}
	return folder + "/"
}
