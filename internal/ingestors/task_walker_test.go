package ingestors_test

import (
	"context"
	"errors"
	"os"
	"path/filepath"
	"testing"

	"license-usage-aggregator/internal/ingestors"
	"license-usage-aggregator/internal/models"
	"license-usage-aggregator/internal/shared/filestorages"
	storagemocks "license-usage-aggregator/internal/shared/filestorages/mocks"
	"license-usage-aggregator/internal/shared/svcerrors"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/mock/gomock"
)

func writeFile(t *testing.T, root string, rel string) {
	t.Helper()
	path := filepath.Join(root, filepath.FromSlash(rel))
	require.NoError(t, os.MkdirAll(filepath.Dir(path), 0o755))
	require.NoError(t, os.WriteFile(path, []byte("Timestamp\n"), 0o644))
}

func TestWalk_Layout(t *testing.T) {
	t.Parallel()

	root := t.TempDir()
	writeFile(t, root, "2024-01-02/p2/task-b.csv")
	writeFile(t, root, "2024-01-02/p2/task-a.csv")
	writeFile(t, root, "2024-01-01/p1/task-a.csv")
	writeFile(t, root, "2024-01-01/README.txt")
	writeFile(t, root, "2024-01-01/p1/nested/ignored.csv")
	writeFile(t, root, "notes.txt")
	require.NoError(t, os.MkdirAll(filepath.Join(root, "2024-01-03", "p3"), 0o755))

	storage, err := filestorages.NewFileStorage(root)
	require.NoError(t, err)

	layout, err := ingestors.NewTaskWalker(storage).Walk(context.Background())

	require.NoError(t, err)
	expected := &models.UsageLayout{Days: []*models.DayDir{
		{Name: "2024-01-01", Products: []*models.ProductDir{
			{Name: "p1", TaskKeys: []string{"2024-01-01/p1/task-a.csv"}},
		}},
		{Name: "2024-01-02", Products: []*models.ProductDir{
			{Name: "p2", TaskKeys: []string{"2024-01-02/p2/task-a.csv", "2024-01-02/p2/task-b.csv"}},
		}},
		{Name: "2024-01-03", Products: []*models.ProductDir{
			{Name: "p3", TaskKeys: []string{}},
		}},
	}}
	assert.Equal(t, expected, layout)
	assert.Equal(t, "2024-01-01", layout.StartDate())
	assert.Equal(t, "2024-01-03", layout.EndDate())
}

func TestWalk_EmptyRoot(t *testing.T) {
	t.Parallel()

	storage, err := filestorages.NewFileStorage(t.TempDir())
	require.NoError(t, err)

	layout, err := ingestors.NewTaskWalker(storage).Walk(context.Background())

	require.NoError(t, err)
	assert.Empty(t, layout.Days)
}

func TestWalk_SortsDays(t *testing.T) {
	t.Parallel()

	ctrl := gomock.NewController(t)
	reader := storagemocks.NewMockReader(ctrl)
	reader.EXPECT().List(gomock.Any(), "").Return([]filestorages.Entry{
		{Name: "2024-01-02", Key: "2024-01-02", IsDir: true},
		{Name: "2024-01-01", Key: "2024-01-01", IsDir: true},
	}, nil)
	reader.EXPECT().List(gomock.Any(), "2024-01-01").Return(nil, nil)
	reader.EXPECT().List(gomock.Any(), "2024-01-02").Return(nil, nil)

	layout, err := ingestors.NewTaskWalker(reader).Walk(context.Background())

	require.NoError(t, err)
	require.Len(t, layout.Days, 2)
	assert.Equal(t, "2024-01-01", layout.Days[0].Name)
	assert.Equal(t, "2024-01-02", layout.Days[1].Name)
}

func TestWalk_ErrInternalListingFailed(t *testing.T) {
	t.Parallel()

	ctrl := gomock.NewController(t)
	reader := storagemocks.NewMockReader(ctrl)
	reader.EXPECT().List(gomock.Any(), "").Return([]filestorages.Entry{
		{Name: "2024-01-01", Key: "2024-01-01", IsDir: true},
	}, nil)
	reader.EXPECT().List(gomock.Any(), "2024-01-01").Return(nil, errors.New("access denied"))

	layout, err := ingestors.NewTaskWalker(reader).Walk(context.Background())

	require.Error(t, err)
	assert.Nil(t, layout)
	svcErr, ok := svcerrors.AsServiceError(err)
	require.True(t, ok, "expected ServiceError")
	assert.Equal(t, "ING_9001", svcErr.Code)
}

func TestWalk_Canceled(t *testing.T) {
	t.Parallel()

	ctrl := gomock.NewController(t)
	reader := storagemocks.NewMockReader(ctrl)
	reader.EXPECT().List(gomock.Any(), "").Return([]filestorages.Entry{
		{Name: "2024-01-01", Key: "2024-01-01", IsDir: true},
	}, nil)

	ctx, cancel := context.WithCancel(context.Background())
	cancel()

	_, err := ingestors.NewTaskWalker(reader).Walk(ctx)

	assert.ErrorIs(t, err, context.Canceled)
}
