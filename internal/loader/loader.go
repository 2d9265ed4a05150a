// Package loader reads point-cloud files into a pointcloud.Cloud.
//
// The format is chosen by file extension through a [Registry]. LAS files are
// decoded with lidario, LAZ files are first decompressed with the external
// laszip tool, and PLY point clouds are decoded with polyform.
package loader

import (
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"sort"
	"strings"

	"github.com/golang/glog"
	"github.com/san-kum/lazview/internal/pointcloud"
)

var (
	ErrUnsupportedFormat = errors.New("loader: unsupported point-cloud format")
	ErrLAZToolMissing    = errors.New("loader: laszip tool not found, cannot decompress LAZ")
	ErrNotPointCloud     = errors.New("loader: file does not contain a point cloud")
)

// Options tune format readers. Zero values select defaults.
type Options struct {
	// LASzip is the laszip executable used for LAZ input.
	LASzip string
	// TempDir receives decompressed LAZ files. Defaults to os.TempDir.
	TempDir string
}

// ReadFunc decodes the file at path.
type ReadFunc func(path string, opts Options) (*pointcloud.Cloud, error)

type Registry struct {
	readers map[string]ReadFunc
}

// NewRegistry returns a registry with every built-in format.
func NewRegistry() *Registry {
	r := &Registry{readers: make(map[string]ReadFunc)}

	r.Register(".las", readLAS)
	r.Register(".laz", readLAZ)
	r.Register(".ply", readPLY)

	return r
}

// Register binds a lower-case extension, including the dot, to a reader.
func (r *Registry) Register(ext string, fn ReadFunc) {
	r.readers[strings.ToLower(ext)] = fn
}

func (r *Registry) Extensions() []string {
	exts := make([]string, 0, len(r.readers))
	for ext := range r.readers {
		exts = append(exts, ext)
	}
	sort.Strings(exts)
	return exts
}

// Load stats the path, then dispatches on its extension.
func (r *Registry) Load(path string, opts Options) (*pointcloud.Cloud, error) {
	info, err := os.Stat(path)
	if err != nil {
		return nil, fmt.Errorf("loader: %w", err)
	}
	if info.IsDir() {
		return nil, fmt.Errorf("%w: %s is a directory", ErrUnsupportedFormat, path)
	}

	ext := strings.ToLower(filepath.Ext(path))
	fn, ok := r.readers[ext]
	if !ok {
		return nil, fmt.Errorf("%w: %q (supported: %s)", ErrUnsupportedFormat, ext, strings.Join(r.Extensions(), ", "))
	}

	glog.V(1).Infof("reading %s (%d bytes)", path, info.Size())
	c, err := fn(path, opts)
	if err != nil {
		return nil, fmt.Errorf("loader: read %s: %w", path, err)
	}
	c.Source = path
	glog.Infof("loaded %d points from %s (rgb=%v)", c.Len(), path, c.HasColor())
	return c, nil
}

var defaultRegistry = NewRegistry()

// Load reads path with the built-in registry.
func Load(path string, opts Options) (*pointcloud.Cloud, error) {
	return defaultRegistry.Load(path, opts)
}
