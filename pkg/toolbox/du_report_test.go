//go:build unit

package toolbox

import (
	"errors"
	"os"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/mock/gomock"
	"opskit/pkg/dependencies"
	fsmocks "opskit/pkg/fs/mocks"
	"opskit/pkg/logger"
	sysinfomocks "opskit/pkg/sysinfo/mocks"
)

// TestDiskUsageReport_SortedAndTruncated tests that entries come back sorted
// by size descending and truncated to the top count.
func TestDiskUsageReport_SortedAndTruncated(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	mockFS := fsmocks.NewMockFS(ctrl)
	mockInspector := sysinfomocks.NewMockInspector(ctrl)

	raw := "120\t/data/cache\n" +
		"4800\t/data/media\n" +
		"960\t/data/docs\n" +
		"5880\t/data\n"
	mockFS.EXPECT().Which("du").Return("/usr/bin/du", nil)
	mockFS.EXPECT().ExpandPath("/data").Return("/data", nil)
	mockFS.EXPECT().IsDir("/data").Return(true, nil)
	mockInspector.EXPECT().DiskUsage("/data").Return(raw, nil)

	tb := &realToolbox{
		deps: dependencies.New().
			WithFS(mockFS).
			WithInspector(mockInspector).
			WithLogger(logger.NewNoopLogger()),
	}

	entries, err := tb.DiskUsageReport(DiskUsageParams{Dir: "/data", Top: 2})
	require.NoError(t, err)
	require.Len(t, entries, 2)
	assert.Equal(t, DirUsage{Path: "/data/media", SizeKB: 4800}, entries[0])
	assert.Equal(t, DirUsage{Path: "/data/docs", SizeKB: 960}, entries[1])
}

// TestDiskUsageReport_Defaults tests the current-directory and top-10 defaults.
func TestDiskUsageReport_Defaults(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	mockFS := fsmocks.NewMockFS(ctrl)
	mockInspector := sysinfomocks.NewMockInspector(ctrl)

	mockFS.EXPECT().Which("du").Return("/usr/bin/du", nil)
	mockFS.EXPECT().ExpandPath(".").Return(".", nil)
	mockFS.EXPECT().IsDir(".").Return(true, nil)
	mockInspector.EXPECT().DiskUsage(".").Return("12\t./sub\n20\t.\n", nil)

	tb := &realToolbox{
		deps: dependencies.New().
			WithFS(mockFS).
			WithInspector(mockInspector).
			WithLogger(logger.NewNoopLogger()),
	}

	entries, err := tb.DiskUsageReport(DiskUsageParams{})
	require.NoError(t, err)
	require.Len(t, entries, 1)
	assert.Equal(t, "./sub", entries[0].Path)
}

// TestDiskUsageReport_DirectoryMissing tests the precondition on the directory.
func TestDiskUsageReport_DirectoryMissing(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	mockFS := fsmocks.NewMockFS(ctrl)
	// No expectations: the usage tool must never run
	mockInspector := sysinfomocks.NewMockInspector(ctrl)

	statErr := os.ErrNotExist
	mockFS.EXPECT().Which("du").Return("/usr/bin/du", nil)
	mockFS.EXPECT().ExpandPath("/missing").Return("/missing", nil)
	mockFS.EXPECT().IsDir("/missing").Return(false, statErr)
	mockFS.EXPECT().IsNotExist(statErr).Return(true)

	tb := &realToolbox{
		deps: dependencies.New().
			WithFS(mockFS).
			WithInspector(mockInspector).
			WithLogger(logger.NewNoopLogger()),
	}

	_, err := tb.DiskUsageReport(DiskUsageParams{Dir: "/missing"})
	assert.Error(t, err)
	assert.ErrorIs(t, err, ErrDirectoryNotFound)
}

// TestDiskUsageReport_NotADirectory tests rejection of a plain file.
func TestDiskUsageReport_NotADirectory(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	mockFS := fsmocks.NewMockFS(ctrl)
	mockInspector := sysinfomocks.NewMockInspector(ctrl)

	mockFS.EXPECT().Which("du").Return("/usr/bin/du", nil)
	mockFS.EXPECT().ExpandPath("/etc/hosts").Return("/etc/hosts", nil)
	mockFS.EXPECT().IsDir("/etc/hosts").Return(false, nil)

	tb := &realToolbox{
		deps: dependencies.New().
			WithFS(mockFS).
			WithInspector(mockInspector).
			WithLogger(logger.NewNoopLogger()),
	}

	_, err := tb.DiskUsageReport(DiskUsageParams{Dir: "/etc/hosts"})
	assert.Error(t, err)
	assert.ErrorIs(t, err, ErrDirectoryNotFound)
}

// TestDiskUsageReport_ToolFailure tests that a failing measurement propagates.
func TestDiskUsageReport_ToolFailure(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	mockFS := fsmocks.NewMockFS(ctrl)
	mockInspector := sysinfomocks.NewMockInspector(ctrl)

	mockFS.EXPECT().Which("du").Return("/usr/bin/du", nil)
	mockFS.EXPECT().ExpandPath("/data").Return("/data", nil)
	mockFS.EXPECT().IsDir("/data").Return(true, nil)
	mockInspector.EXPECT().DiskUsage("/data").
		Return("", errors.New("du failed: exit status 1 (stderr: permission denied)"))

	tb := &realToolbox{
		deps: dependencies.New().
			WithFS(mockFS).
			WithInspector(mockInspector).
			WithLogger(logger.NewNoopLogger()),
	}

	_, err := tb.DiskUsageReport(DiskUsageParams{Dir: "/data"})
	assert.Error(t, err)
	assert.Contains(t, err.Error(), "failed to measure disk usage")
}

// TestParseDiskUsage tests the usage-line parser directly.
func TestParseDiskUsage(t *testing.T) {
	tests := []struct {
		name     string
		raw      string
		dir      string
		expected []DirUsage
	}{
		{
			name: "drops totals row",
			raw:  "10\t/d/a\n30\t/d/b\n40\t/d\n",
			dir:  "/d",
			expected: []DirUsage{
				{Path: "/d/a", SizeKB: 10},
				{Path: "/d/b", SizeKB: 30},
			},
		},
		{
			name: "totals row with trailing slash on dir",
			raw:  "10\t/d/a\n40\t/d\n",
			dir:  "/d/",
			expected: []DirUsage{
				{Path: "/d/a", SizeKB: 10},
			},
		},
		{
			name:     "skips malformed lines",
			raw:      "not-a-size\t/d/a\nno-tab-here\n\n12\t/d/b\n",
			dir:      "/d",
			expected: []DirUsage{{Path: "/d/b", SizeKB: 12}},
		},
		{
			name:     "empty output",
			raw:      "",
			dir:      "/d",
			expected: nil,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.expected, parseDiskUsage(tt.raw, tt.dir))
		})
	}
}
