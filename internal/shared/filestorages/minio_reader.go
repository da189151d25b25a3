package filestorages

import (
	"context"
	"fmt"
	"io"
	"path"
	"sort"
	"strings"

	"github.com/minio/minio-go/v7"
	"github.com/minio/minio-go/v7/pkg/credentials"
)

// MinioOptions configures a Reader over an S3-compatible bucket.
type MinioOptions struct {
	Endpoint  string
	Bucket    string
	AccessKey string
	SecretKey string
	Region    string
	UseSSL    bool
	// Prefix is the object key prefix treated as the storage root.
	Prefix string
}

type minioReader struct {
	client *minio.Client
	bucket string
	prefix string
}

// NewMinioReader returns a Reader over objects under opts.Prefix in opts.Bucket. "Directories"
// are the common prefixes S3 reports for a non-recursive listing.
func NewMinioReader(opts MinioOptions) (Reader, error) {
	if opts.Endpoint == "" || opts.Bucket == "" {
		return nil, fmt.Errorf("%w: s3 endpoint and bucket are required", ErrInvalidRootDir)
	}

	client, err := minio.New(opts.Endpoint, &minio.Options{
		Creds:  credentials.NewStaticV4(opts.AccessKey, opts.SecretKey, ""),
		Secure: opts.UseSSL,
		Region: opts.Region,
	})
	if err != nil {
		return nil, fmt.Errorf("failed to create minio client: %w", err)
	}

	return &minioReader{
		client: client,
		bucket: opts.Bucket,
		prefix: strings.Trim(opts.Prefix, "/"),
	}, nil
}

func (s *minioReader) List(ctx context.Context, key string) ([]Entry, error) {
	listPrefix := dirPrefix(s.objectKey(key))

	var entries []Entry
	for object := range s.client.ListObjects(ctx, s.bucket, minio.ListObjectsOptions{
		Prefix:    listPrefix,
		Recursive: false,
	}) {
		if object.Err != nil {
			return nil, fmt.Errorf("failed to list %q: %w", listPrefix, object.Err)
		}
		entry, ok := childEntry(key, listPrefix, object.Key)
		if ok {
			entries = append(entries, entry)
		}
	}

	sort.Slice(entries, func(i, j int) bool { return entries[i].Name < entries[j].Name })
	return entries, nil
}

func (s *minioReader) Get(ctx context.Context, key string) (io.ReadCloser, error) {
	if key == "" {
		return nil, ErrInvalidKey
	}

	object, err := s.client.GetObject(ctx, s.bucket, s.objectKey(key), minio.GetObjectOptions{})
	if err != nil {
		return nil, err
	}

	// GetObject is lazy; Stat surfaces a missing key before the caller starts reading.
	if _, err := object.Stat(); err != nil {
		_ = object.Close()
		if minio.ToErrorResponse(err).Code == "NoSuchKey" {
			return nil, ErrFileNotFound
		}
		return nil, err
	}

	return object, nil
}

func (s *minioReader) objectKey(key string) string {
	return strings.Trim(path.Join(s.prefix, key), "/")
}

// dirPrefix turns an object key into the prefix that lists its children.
func dirPrefix(objectKey string) string {
	if objectKey == "" || objectKey == "." {
		return ""
	}
	return objectKey + "/"
}

// childEntry maps a listed object key (or common prefix) back to an Entry relative to the
// listed key.
func childEntry(parentKey, listPrefix, objectKey string) (Entry, bool) {
	name := strings.TrimPrefix(objectKey, listPrefix)
	isDir := strings.HasSuffix(name, "/")
	name = strings.TrimSuffix(name, "/")
	if name == "" {
		return Entry{}, false
	}

	return Entry{
		Name:  name,
		Key:   strings.TrimPrefix(path.Join(parentKey, name), "/"),
		IsDir: isDir,
	}, true
}
