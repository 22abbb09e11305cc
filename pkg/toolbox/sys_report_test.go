//go:build unit

package toolbox

import (
	"errors"
	"fmt"
	"os"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/mock/gomock"
	"opskit/pkg/dependencies"
	fsmocks "opskit/pkg/fs/mocks"
	"opskit/pkg/logger"
	sysinfomocks "opskit/pkg/sysinfo/mocks"
)

// fakeProcessTable builds a process listing with the given number of rows.
func fakeProcessTable(rows int) string {
	var b strings.Builder
	b.WriteString("USER  PID %CPU %MEM COMMAND\n")
	for i := 1; i <= rows; i++ {
		fmt.Fprintf(&b, "root  %d 1.0 0.1 proc%d\n", i, i)
	}
	return b.String()
}

// TestSystemReport_Snapshot tests that all sections land in one snapshot with
// the process table truncated to its top rows.
func TestSystemReport_Snapshot(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	mockFS := fsmocks.NewMockFS(ctrl)
	mockInspector := sysinfomocks.NewMockInspector(ctrl)

	mockFS.EXPECT().Which("ps").Return("/usr/bin/ps", nil)
	mockInspector.EXPECT().Uptime().Return("up 3 days, load average: 0.42\n", nil)
	mockInspector.EXPECT().Memory().Return("Mem: 16Gi 4.2Gi\n", nil)
	mockInspector.EXPECT().DiskFree().Return("/dev/sda1 80G 42G /\n", nil)
	mockInspector.EXPECT().Processes().Return(fakeProcessTable(25), nil)

	tb := &realToolbox{
		deps: dependencies.New().
			WithFS(mockFS).
			WithInspector(mockInspector).
			WithLogger(logger.NewNoopLogger()),
	}

	report, err := tb.SystemReport(SystemReportParams{})
	require.NoError(t, err)

	assert.True(t, strings.HasPrefix(report, "==== System report: "))
	assert.Contains(t, report, "-- Uptime --\nup 3 days, load average: 0.42\n")
	assert.Contains(t, report, "-- Memory --\nMem: 16Gi 4.2Gi\n")
	assert.Contains(t, report, "-- Disk --\n/dev/sda1 80G 42G /\n")
	assert.Contains(t, report, "-- Top 20 processes by CPU --\nUSER  PID %CPU %MEM COMMAND\n")
	assert.Contains(t, report, "proc20")
	assert.NotContains(t, report, "proc21")
}

// TestSystemReport_ProbeDegrades tests that one failing probe leaves an
// unavailable line instead of failing the snapshot.
func TestSystemReport_ProbeDegrades(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	mockFS := fsmocks.NewMockFS(ctrl)
	mockInspector := sysinfomocks.NewMockInspector(ctrl)

	mockFS.EXPECT().Which("ps").Return("/usr/bin/ps", nil)
	mockInspector.EXPECT().Uptime().Return("up 3 days\n", nil)
	mockInspector.EXPECT().Memory().
		Return("", errors.New("free failed: executable file not found in $PATH"))
	mockInspector.EXPECT().DiskFree().Return("/dev/sda1 80G 42G /\n", nil)
	mockInspector.EXPECT().Processes().Return(fakeProcessTable(3), nil)

	tb := &realToolbox{
		deps: dependencies.New().
			WithFS(mockFS).
			WithInspector(mockInspector).
			WithLogger(logger.NewNoopLogger()),
	}

	report, err := tb.SystemReport(SystemReportParams{})
	require.NoError(t, err)
	assert.Contains(t, report, "-- Memory --\nunavailable\n")
	assert.Contains(t, report, "up 3 days")
}

// TestSystemReport_WriteToFile tests writing the snapshot to an output path.
func TestSystemReport_WriteToFile(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	mockFS := fsmocks.NewMockFS(ctrl)
	mockInspector := sysinfomocks.NewMockInspector(ctrl)

	mockFS.EXPECT().Which("ps").Return("/usr/bin/ps", nil)
	mockInspector.EXPECT().Uptime().Return("up 3 days\n", nil)
	mockInspector.EXPECT().Memory().Return("Mem: ok\n", nil)
	mockInspector.EXPECT().DiskFree().Return("disk: ok\n", nil)
	mockInspector.EXPECT().Processes().Return(fakeProcessTable(1), nil)
	mockFS.EXPECT().ExpandPath("/tmp/report.txt").Return("/tmp/report.txt", nil)
	mockFS.EXPECT().WriteFileAtomic("/tmp/report.txt", gomock.Any(), os.FileMode(0644)).
		DoAndReturn(func(_ string, data []byte, _ os.FileMode) error {
			assert.Contains(t, string(data), "-- Uptime --")
			return nil
		})

	tb := &realToolbox{
		deps: dependencies.New().
			WithFS(mockFS).
			WithInspector(mockInspector).
			WithLogger(logger.NewNoopLogger()),
	}

	report, err := tb.SystemReport(SystemReportParams{OutputPath: "/tmp/report.txt"})
	require.NoError(t, err)
	assert.Empty(t, report)
}

// TestSystemReport_MissingProcessTool tests the precondition check on ps.
func TestSystemReport_MissingProcessTool(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	mockFS := fsmocks.NewMockFS(ctrl)
	// No expectations: no probe may run without ps
	mockInspector := sysinfomocks.NewMockInspector(ctrl)

	mockFS.EXPECT().Which("ps").Return("", errors.New("executable file not found in $PATH"))

	tb := &realToolbox{
		deps: dependencies.New().
			WithFS(mockFS).
			WithInspector(mockInspector).
			WithLogger(logger.NewNoopLogger()),
	}

	_, err := tb.SystemReport(SystemReportParams{})
	assert.Error(t, err)
	assert.ErrorIs(t, err, ErrMissingDependency)
}
