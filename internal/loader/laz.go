package loader

import (
	"bytes"
	"errors"
	"fmt"
	"io/fs"
	"os"
	"os/exec"
	"path/filepath"
	"strings"

	"github.com/golang/glog"
	"github.com/san-kum/lazview/internal/pointcloud"
)

const DefaultLASzip = "laszip"

// readLAZ decompresses into a temporary LAS file, reads it, and removes it.
func readLAZ(path string, opts Options) (*pointcloud.Cloud, error) {
	tmp, err := decompressLAZ(path, opts)
	if err != nil {
		return nil, err
	}
	defer os.RemoveAll(filepath.Dir(tmp))

	return readLAS(tmp, opts)
}

func decompressLAZ(path string, opts Options) (string, error) {
	tool := opts.LASzip
	if tool == "" {
		tool = DefaultLASzip
	}
	bin, err := exec.LookPath(tool)
	if err != nil {
		if errors.Is(err, exec.ErrNotFound) || errors.Is(err, fs.ErrNotExist) {
			return "", fmt.Errorf("%w: %s", ErrLAZToolMissing, tool)
		}
		return "", err
	}

	dir, err := os.MkdirTemp(opts.TempDir, "lazview-")
	if err != nil {
		return "", err
	}
	base := strings.TrimSuffix(filepath.Base(path), filepath.Ext(path))
	out := filepath.Join(dir, base+".las")

	var stderr bytes.Buffer
	cmd := exec.Command(bin, "-i", path, "-o", out)
	cmd.Stderr = &stderr
	glog.V(1).Infof("decompressing %s with %s", path, bin)
	if err := cmd.Run(); err != nil {
		os.RemoveAll(dir)
		return "", fmt.Errorf("laszip: %w: %s", err, strings.TrimSpace(stderr.String()))
	}
	return out, nil
}
