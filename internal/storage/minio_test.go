package storage

import (
	"context"
	"errors"
	"io"
	"strings"
	"testing"

	"github.com/jrmeyers92/client-portals/internal/config"
	apperrors "github.com/jrmeyers92/client-portals/internal/errors"

	"github.com/minio/minio-go/v7"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// fakeObjectAPI implements objectAPI for testing
type fakeObjectAPI struct {
	objects map[string][]byte
	types   map[string]string
	sizes   map[string]int64

	makeBucketErr   error
	bucketExists    bool
	bucketExistsErr error
	policy          string
	putErr          error
	removeErr       map[string]error
	removed         []string
}

func newFakeObjectAPI() *fakeObjectAPI {
	return &fakeObjectAPI{
		objects:      map[string][]byte{},
		types:        map[string]string{},
		sizes:        map[string]int64{},
		removeErr:    map[string]error{},
		bucketExists: true,
	}
}

func (f *fakeObjectAPI) MakeBucket(ctx context.Context, bucketName string, opts minio.MakeBucketOptions) error {
	return f.makeBucketErr
}

func (f *fakeObjectAPI) BucketExists(ctx context.Context, bucketName string) (bool, error) {
	return f.bucketExists, f.bucketExistsErr
}

func (f *fakeObjectAPI) SetBucketPolicy(ctx context.Context, bucketName, policy string) error {
	f.policy = policy
	return nil
}

func (f *fakeObjectAPI) PutObject(ctx context.Context, bucketName, objectName string, reader io.Reader, objectSize int64, opts minio.PutObjectOptions) (minio.UploadInfo, error) {
	if f.putErr != nil {
		return minio.UploadInfo{}, f.putErr
	}
	data, err := io.ReadAll(reader)
	if err != nil {
		return minio.UploadInfo{}, err
	}
	f.objects[objectName] = data
	f.types[objectName] = opts.ContentType
	f.sizes[objectName] = objectSize
	return minio.UploadInfo{Bucket: bucketName, Key: objectName, Size: objectSize}, nil
}

func (f *fakeObjectAPI) RemoveObject(ctx context.Context, bucketName, objectName string, opts minio.RemoveObjectOptions) error {
	if err := f.removeErr[objectName]; err != nil {
		return err
	}
	f.removed = append(f.removed, objectName)
	delete(f.objects, objectName)
	return nil
}

func TestObjectKey(t *testing.T) {
	t.Run("uses the filename extension", func(t *testing.T) {
		key := ObjectKey("organization-logos", "user_1", Asset{Filename: "Logo.PNG", ContentType: "image/png"})
		assert.True(t, strings.HasPrefix(key, "organization-logos/user_1/"))
		assert.True(t, strings.HasSuffix(key, ".png"))
	})

	t.Run("falls back to the content type", func(t *testing.T) {
		key := ObjectKey("/organization-logos/", "user_1", Asset{Filename: "blob", ContentType: "image/webp"})
		assert.True(t, strings.HasPrefix(key, "organization-logos/user_1/"))
		assert.True(t, strings.HasSuffix(key, ".webp"))
	})

	t.Run("is unique per call", func(t *testing.T) {
		asset := Asset{Filename: "a.gif"}
		assert.NotEqual(t, ObjectKey("f", "o", asset), ObjectKey("f", "o", asset))
	})
}

func TestMinioStore_Put(t *testing.T) {
	api := newFakeObjectAPI()
	store := newMinioStore(api, "portals", "us-east-1", "http://localhost:9000/")

	ref, err := store.Put(context.Background(), Asset{
		Data:        []byte("png-bytes"),
		ContentType: "image/png",
		Filename:    "logo.png",
	}, "organization-logos", "user_1")

	require.NoError(t, err)
	assert.True(t, strings.HasPrefix(ref.Key, "organization-logos/user_1/"))
	assert.Equal(t, "http://localhost:9000/portals/"+ref.Key, ref.URL)
	assert.Equal(t, []byte("png-bytes"), api.objects[ref.Key])
	assert.Equal(t, "image/png", api.types[ref.Key])
}

func TestMinioStore_PutWritesThePayloadLength(t *testing.T) {
	api := newFakeObjectAPI()
	store := newMinioStore(api, "portals", "", "http://localhost:9000")

	ref, err := store.Put(context.Background(), Asset{
		Data:        []byte("png-bytes"),
		ContentType: "image/png",
		Filename:    "logo.png",
		Size:        1,
	}, "organization-logos", "user_1")

	require.NoError(t, err)
	assert.Equal(t, int64(9), api.sizes[ref.Key])
	assert.Equal(t, []byte("png-bytes"), api.objects[ref.Key])
}

func TestMinioStore_PutError(t *testing.T) {
	api := newFakeObjectAPI()
	api.putErr = errors.New("access denied")
	store := newMinioStore(api, "portals", "", "http://localhost:9000")

	ref, err := store.Put(context.Background(), Asset{Data: []byte("x"), Filename: "a.png"}, "organization-logos", "user_1")

	assert.Error(t, err)
	assert.Contains(t, err.Error(), "access denied")
	assert.Empty(t, ref.Key)
}

func TestMinioStore_Delete(t *testing.T) {
	t.Run("removes every object", func(t *testing.T) {
		api := newFakeObjectAPI()
		store := newMinioStore(api, "portals", "", "http://localhost:9000")

		err := store.Delete(context.Background(), []AssetRef{{Key: "a"}, {Key: "b"}})

		assert.NoError(t, err)
		assert.Equal(t, []string{"a", "b"}, api.removed)
	})

	t.Run("continues past failures and joins them", func(t *testing.T) {
		api := newFakeObjectAPI()
		api.removeErr["a"] = errors.New("timeout")
		store := newMinioStore(api, "portals", "", "http://localhost:9000")

		err := store.Delete(context.Background(), []AssetRef{{Key: "a"}, {Key: "b"}})

		assert.Error(t, err)
		assert.Contains(t, err.Error(), "remove a: timeout")
		assert.Equal(t, []string{"b"}, api.removed)
	})

	t.Run("empty list is a no-op", func(t *testing.T) {
		api := newFakeObjectAPI()
		store := newMinioStore(api, "portals", "", "http://localhost:9000")

		assert.NoError(t, store.Delete(context.Background(), nil))
		assert.Empty(t, api.removed)
	})
}

func TestMinioStore_EnsureBucket(t *testing.T) {
	t.Run("existing bucket is accepted", func(t *testing.T) {
		api := newFakeObjectAPI()
		api.makeBucketErr = errors.New("BucketAlreadyOwnedByYou")
		store := newMinioStore(api, "portals", "", "http://localhost:9000")

		require.NoError(t, store.EnsureBucket(context.Background(), "organization-logos"))
		assert.Contains(t, api.policy, "arn:aws:s3:::portals/organization-logos/*")
	})

	t.Run("make bucket failure without an existing bucket", func(t *testing.T) {
		api := newFakeObjectAPI()
		api.makeBucketErr = errors.New("denied")
		api.bucketExists = false
		store := newMinioStore(api, "portals", "", "http://localhost:9000")

		assert.Error(t, store.EnsureBucket(context.Background(), ""))
	})
}

func TestMinioStore_Ping(t *testing.T) {
	api := newFakeObjectAPI()
	store := newMinioStore(api, "portals", "", "http://localhost:9000")
	assert.NoError(t, store.Ping(context.Background()))

	api.bucketExists = false
	assert.Error(t, store.Ping(context.Background()))

	api.bucketExistsErr = errors.New("offline")
	assert.EqualError(t, store.Ping(context.Background()), "offline")
}

func TestNewMinioStore_RequiresBucket(t *testing.T) {
	_, err := NewMinioStore(&config.Config{StorageEndpoint: "localhost:9000"})
	assert.ErrorIs(t, err, apperrors.ErrStorageNotConfigured)
}
