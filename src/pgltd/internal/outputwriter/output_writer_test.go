package outputwriter

import (
	"errors"
	"os"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/supabase-community/pgltd/src/pgltd/internal/fs"
	"github.com/supabase-community/pgltd/src/pgltd/internal/fs/fsmock"
	"github.com/supabase-community/pgltd/src/pgltd/internal/statusfile/statusfilemock"
	"go.uber.org/mock/gomock"
	"go.uber.org/zap"
	"go.uber.org/zap/zaptest/observer"
)

func TestOpen(t *testing.T) {
	ctrl := gomock.NewController(t)
	sf := statusfilemock.NewMockStatusFile(ctrl)
	core, recorded := observer.New(zap.DebugLevel)

	var outputPath string
	sf.EXPECT().UpdateField("output:session-api", gomock.Any()).DoAndReturn(func(key, value string) error {
		outputPath = value
		return nil
	})
	sf.EXPECT().RemoveField("output:session-api").Return(nil)

	w, err := Open(Params{FS: fs.New(), StatusFile: sf, Logger: zap.New(core).Sugar()}, "session-api")
	require.NoError(t, err)
	assert.Equal(t, outputPath, w.Path())

	n, err := w.Write([]byte("first line\n\nsecond line\r\n"))
	require.NoError(t, err)
	assert.Equal(t, 25, n)

	logs := recorded.TakeAll()
	require.Len(t, logs, 2)
	assert.Equal(t, "first line", logs[0].Message)
	assert.Equal(t, "second line", logs[1].Message)
	assert.Equal(t, "session-api", logs[0].ContextMap()["output"])

	require.NoError(t, w.fileLog.Sync())
	contents, err := os.ReadFile(w.Path())
	require.NoError(t, err)
	assert.Contains(t, string(contents), "first line")
	assert.Contains(t, string(contents), "second line")

	require.NoError(t, w.Close())
	_, err = os.Stat(outputPath)
	assert.True(t, os.IsNotExist(err))
}

func TestOpenErrors(t *testing.T) {
	t.Run("mkdir fails", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		fsMock := fsmock.NewMockPgltFS(ctrl)
		fsMock.EXPECT().MkdirAll(gomock.Any()).Return(errors.New("denied"))

		_, err := Open(Params{FS: fsMock, StatusFile: statusfilemock.NewMockStatusFile(ctrl), Logger: zap.NewNop().Sugar()}, "x")
		assert.Error(t, err)
	})

	t.Run("temp file fails", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		fsMock := fsmock.NewMockPgltFS(ctrl)
		fsMock.EXPECT().MkdirAll(gomock.Any()).Return(nil)
		fsMock.EXPECT().TempFile(gomock.Any(), "x-*.log").Return(nil, errors.New("full"))

		_, err := Open(Params{FS: fsMock, StatusFile: statusfilemock.NewMockStatusFile(ctrl), Logger: zap.NewNop().Sugar()}, "x")
		assert.Error(t, err)
	})
}
