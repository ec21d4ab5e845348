package fileproc

import (
	"context"
	"errors"
	"fmt"
	"strings"
	"sync/atomic"
	"testing"

	"github.com/panbanda/codegraph/pkg/extractor"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestMapIndexedEmpty(t *testing.T) {
	results, errs := MapIndexed(context.Background(), nil, 4,
		func(reg *extractor.Registry, path string) (string, error) {
			return path, nil
		}, nil)

	assert.Nil(t, results)
	assert.Nil(t, errs)
}

func TestMapIndexedPreservesOrder(t *testing.T) {
	files := make([]string, 32)
	for i := range files {
		files[i] = fmt.Sprintf("file%02d.py", i)
	}

	results, errs := MapIndexed(context.Background(), files, 8,
		func(reg *extractor.Registry, path string) (string, error) {
			return strings.ToUpper(path), nil
		}, nil)

	require.Nil(t, errs)
	require.Len(t, results, len(files))
	for i, f := range files {
		assert.Equal(t, strings.ToUpper(f), results[i])
	}
}

func TestMapIndexedCollectsErrors(t *testing.T) {
	files := []string{"ok.py", "bad.py", "also_ok.py"}
	boom := errors.New("boom")

	results, errs := MapIndexed(context.Background(), files, 2,
		func(reg *extractor.Registry, path string) (int, error) {
			if path == "bad.py" {
				return 0, boom
			}
			return len(path), nil
		}, nil)

	require.NotNil(t, errs)
	require.Len(t, errs.Errors, 1)
	assert.Equal(t, "bad.py", errs.Errors[0].Path)
	assert.ErrorIs(t, errs.Errors[0].Err, boom)

	// The failed slot keeps the zero value; the rest are untouched.
	assert.Equal(t, len("ok.py"), results[0])
	assert.Zero(t, results[1])
	assert.Equal(t, len("also_ok.py"), results[2])
}

func TestMapIndexedProgress(t *testing.T) {
	files := []string{"a.py", "b.py", "c.py"}
	var ticks atomic.Int32

	_, errs := MapIndexed(context.Background(), files, 3,
		func(reg *extractor.Registry, path string) (struct{}, error) {
			if path == "b.py" {
				return struct{}{}, errors.New("fail")
			}
			return struct{}{}, nil
		}, func() {
			ticks.Add(1)
		})

	assert.NotNil(t, errs)
	// Progress fires for failures too.
	assert.Equal(t, int32(3), ticks.Load())
}

func TestMapIndexedFreshRegistryPerFile(t *testing.T) {
	files := []string{"a.py", "b.py"}
	seen := make([]*extractor.Registry, len(files))

	_, errs := MapIndexed(context.Background(), files, 1,
		func(reg *extractor.Registry, path string) (int, error) {
			for i, f := range files {
				if f == path {
					seen[i] = reg
				}
			}
			return 0, nil
		}, nil)

	require.Nil(t, errs)
	require.NotNil(t, seen[0])
	require.NotNil(t, seen[1])
	assert.NotSame(t, seen[0], seen[1])
}

func TestProcessingErrorsMessages(t *testing.T) {
	errs := &ProcessingErrors{}
	assert.False(t, errs.HasErrors())
	assert.Equal(t, "no errors", errs.Error())

	errs.Add("a.py", errors.New("bad parse"))
	assert.True(t, errs.HasErrors())
	assert.Equal(t, "a.py: bad parse", errs.Error())

	errs.Add("b.py", errors.New("worse"))
	assert.Contains(t, errs.Error(), "2 files failed")
}
