package source

import (
	"github.com/pkg/errors"
	"github.com/spf13/afero"
)

func newFile(path string, fs afero.Fs) *VFile {
	return &VFile{fs: fs, path: path}
}

func newBytes(name string, bs []byte) *VFile {
	return &VFile{path: name, bytes: bs}
}

type VFile struct {
	fs    afero.Fs
	path  string
	bytes []byte
}

func (v *VFile) IsFile() bool {
	return v.fs != nil
}

func (v *VFile) Name() string {
	return v.path
}

func (v *VFile) Bytes() ([]byte, error) {
	if len(v.bytes) > 0 {
		return v.bytes, nil
	}

	if v.fs == nil {
		return nil, errors.New("no file to read")
	}

	bs, err := afero.ReadFile(v.fs, v.path)
	if err != nil {
		return nil, errors.Wrap(err, "vfile read failed")
	}

	return bs, nil
}
