package mock_test

import (
	"context"
	"testing"
	"time"

	"github.com/fwojciec/seoscan"
	"github.com/fwojciec/seoscan/mock"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestReportWriter_ImplementsInterface(t *testing.T) {
	t.Parallel()

	// Verify mock can be used where ReportWriter is expected
	var _ seoscan.ReportWriter = &mock.ReportWriter{}
}

func TestReportWriter_WriteReport(t *testing.T) {
	t.Parallel()

	t.Run("delegates to WriteReportFn", func(t *testing.T) {
		t.Parallel()

		var calledWith *seoscan.Report
		w := &mock.ReportWriter{
			WriteReportFn: func(_ context.Context, r *seoscan.Report) (string, error) {
				calledWith = r
				return "report.xlsx", nil
			},
		}

		report := seoscan.NewReport(nil, time.Now())

		path, err := w.WriteReport(context.Background(), report)

		require.NoError(t, err)
		assert.Equal(t, "report.xlsx", path)
		assert.Same(t, report, calledWith)
	})
}
