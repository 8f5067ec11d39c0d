package job

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"image"
	"image/color"
	"image/png"
	"strings"
	"testing"

	"github.com/google/uuid"
	"github.com/hibiken/asynq"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"library-backend/internal/infrastructure/queue"
	"library-backend/internal/infrastructure/storage"
)

type fakeStore struct {
	objects map[string][]byte
	deleted []string
}

func newFakeStore() *fakeStore {
	return &fakeStore{objects: map[string][]byte{}}
}

func (f *fakeStore) Download(ctx context.Context, key string) ([]byte, error) {
	data, ok := f.objects[key]
	if !ok {
		return nil, fmt.Errorf("no such object: %s", key)
	}
	return data, nil
}

func (f *fakeStore) Upload(ctx context.Context, key string, data []byte, contentType string) (string, error) {
	f.objects[key] = data
	return "http://minio/library/" + key, nil
}

func (f *fakeStore) DeleteByPrefix(ctx context.Context, prefix string) error {
	for key := range f.objects {
		if strings.HasPrefix(key, prefix) {
			delete(f.objects, key)
			f.deleted = append(f.deleted, key)
		}
	}
	return nil
}

type fakeCoverUpdater struct {
	updates map[uuid.UUID]string
}

func (f *fakeCoverUpdater) UpdateCoverURL(ctx context.Context, id uuid.UUID, coverURL string) error {
	if f.updates == nil {
		f.updates = map[uuid.UUID]string{}
	}
	f.updates[id] = coverURL
	return nil
}

func pngBytes(t *testing.T, w, h int) []byte {
	t.Helper()

	img := image.NewRGBA(image.Rect(0, 0, w, h))
	for x := 0; x < w; x++ {
		for y := 0; y < h; y++ {
			img.Set(x, y, color.RGBA{R: uint8(x % 256), G: uint8(y % 256), B: 80, A: 255})
		}
	}

	var buf bytes.Buffer
	require.NoError(t, png.Encode(&buf, img))
	return buf.Bytes()
}

func TestProcessCoverGeneratesThumbnail(t *testing.T) {
	store := newFakeStore()
	repo := &fakeCoverUpdater{}
	handler := NewProcessCoverHandler(store, repo, storage.NewImageProcessor())

	bookID := uuid.New()
	coverKey := fmt.Sprintf("books/%s/cover_original.png", bookID)
	store.objects[coverKey] = pngBytes(t, 1200, 900)

	payload, err := json.Marshal(queue.BookProcessCoverPayload{
		BookID:   bookID.String(),
		CoverKey: coverKey,
	})
	require.NoError(t, err)

	err = handler.ProcessTask(context.Background(), asynq.NewTask(queue.TypeBookProcessCover, payload))
	require.NoError(t, err)

	thumbKey := fmt.Sprintf("books/%s/thumb_cover.jpg", bookID)
	assert.Contains(t, store.objects, thumbKey)
	assert.Contains(t, store.objects, coverKey, "original must stay in place")
	assert.Equal(t, "http://minio/library/"+thumbKey, repo.updates[bookID])
}

func TestProcessCoverUndecodableSkipsRetry(t *testing.T) {
	store := newFakeStore()
	handler := NewProcessCoverHandler(store, &fakeCoverUpdater{}, storage.NewImageProcessor())

	bookID := uuid.New()
	coverKey := fmt.Sprintf("books/%s/cover_broken.png", bookID)
	store.objects[coverKey] = []byte("not an image")

	payload, err := json.Marshal(queue.BookProcessCoverPayload{
		BookID:   bookID.String(),
		CoverKey: coverKey,
	})
	require.NoError(t, err)

	err = handler.ProcessTask(context.Background(), asynq.NewTask(queue.TypeBookProcessCover, payload))
	assert.ErrorIs(t, err, asynq.SkipRetry)
}

func TestDeleteAssetsDropsEveryObject(t *testing.T) {
	store := newFakeStore()
	handler := NewDeleteAssetsHandler(store)

	bookID := uuid.New()
	store.objects[fmt.Sprintf("books/%s/cover_a.jpg", bookID)] = []byte("a")
	store.objects[fmt.Sprintf("books/%s/pdf_b.pdf", bookID)] = []byte("b")
	otherKey := "books/" + uuid.NewString() + "/cover_c.jpg"
	store.objects[otherKey] = []byte("c")

	payload, err := json.Marshal(queue.BookDeleteAssetsPayload{BookID: bookID.String()})
	require.NoError(t, err)

	err = handler.ProcessTask(context.Background(), asynq.NewTask(queue.TypeBookDeleteAssets, payload))
	require.NoError(t, err)

	assert.Len(t, store.objects, 1)
	assert.Contains(t, store.objects, otherKey, "other books' assets must be untouched")
}
