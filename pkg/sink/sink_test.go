package sink

import (
	"bytes"
	"image"
	"image/color"
	"os"
	"testing"

	"github.com/disintegration/imaging"
	"github.com/pkg/errors"
	"github.com/spf13/afero"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"
)

func TestSave(t *testing.T) {
	img := imaging.New(30, 20, color.NRGBA{R: 200, A: 255})

	for _, name := range []string{"/out/lock.png", "/out/lock.jpg", "/out/lock.JPEG", "/out/lock.bmp", "/out/lock.gif", "/out/lock.tiff"} {
		t.Run(name, func(t *testing.T) {
			fs := afero.NewMemMapFs()
			require.NoError(t, fs.MkdirAll("/out", 0755))

			s := New(fs, zap.NewNop(), WithQuality(80))
			require.NoError(t, s.Save(img, name))

			bs, err := afero.ReadFile(fs, name)
			require.NoError(t, err)

			decoded, err := imaging.Decode(bytes.NewReader(bs))
			require.NoError(t, err)
			assert.Equal(t, image.Rect(0, 0, 30, 20), decoded.Bounds())

			// only the final file is left behind
			entries, err := afero.ReadDir(fs, "/out")
			require.NoError(t, err)
			assert.Len(t, entries, 1)
		})
	}
}

func TestSaveUnsupported(t *testing.T) {
	fs := afero.NewMemMapFs()
	s := New(fs, zap.NewNop())

	err := s.Save(imaging.New(2, 2, color.NRGBA{}), "/out/lock.xyz")
	require.Error(t, err)
	assert.True(t, errors.Is(err, ErrUnsupportedFormat))

	exists, err := afero.Exists(fs, "/out/lock.xyz")
	require.NoError(t, err)
	assert.False(t, exists)
}

type fullFs struct {
	afero.Fs
}

func (f fullFs) OpenFile(name string, flag int, perm os.FileMode) (afero.File, error) {
	file, err := f.Fs.OpenFile(name, flag, perm)
	if err != nil {
		return nil, err
	}
	return fullFile{file}, nil
}

type fullFile struct {
	afero.File
}

func (fullFile) Write([]byte) (int, error) {
	return 0, errors.New("no space left on device")
}

func TestSaveWriteFailureCleansUp(t *testing.T) {
	mem := afero.NewMemMapFs()
	require.NoError(t, mem.MkdirAll("/out", 0755))
	s := New(fullFs{mem}, zap.NewNop())

	err := s.Save(imaging.New(4, 4, color.NRGBA{A: 255}), "/out/lock.png")
	require.Error(t, err)
	assert.Contains(t, err.Error(), "no space left on device")

	entries, err := afero.ReadDir(mem, "/out")
	require.NoError(t, err)
	assert.Empty(t, entries)
}

func TestSaveReadOnly(t *testing.T) {
	fs := afero.NewReadOnlyFs(afero.NewMemMapFs())
	s := New(fs, zap.NewNop())

	err := s.Save(imaging.New(2, 2, color.NRGBA{}), "/lock.png")
	require.Error(t, err)
	assert.Contains(t, err.Error(), "write /lock.png failed")
}
