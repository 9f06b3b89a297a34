package slog_test

import (
	"bytes"
	"context"
	"errors"
	"log/slog"
	"testing"
	"time"

	"github.com/fwojciec/seoscan"
	"github.com/fwojciec/seoscan/mock"
	seoslog "github.com/fwojciec/seoscan/slog"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func debugLogger(buf *bytes.Buffer) *slog.Logger {
	return slog.New(slog.NewTextHandler(buf, &slog.HandlerOptions{Level: slog.LevelDebug}))
}

func TestLoggingScraper_Scrape(t *testing.T) {
	t.Parallel()

	t.Run("logs scrape with sizes and duration", func(t *testing.T) {
		t.Parallel()

		var buf bytes.Buffer
		inner := &mock.Scraper{
			ScrapeFn: func(context.Context, string) (*seoscan.ScrapeResult, error) {
				return &seoscan.ScrapeResult{
					Metadata: seoscan.Metadata{StatusCode: 200},
					RawHTML:  "<html>content</html>",
					Markdown: "content",
				}, nil
			},
		}

		s := seoslog.NewLoggingScraper(inner, debugLogger(&buf))
		res, err := s.Scrape(context.Background(), "https://example.com/page")

		require.NoError(t, err)
		assert.Equal(t, "content", res.Markdown)
		output := buf.String()
		assert.Contains(t, output, "level=DEBUG")
		assert.Contains(t, output, "msg=scrape")
		assert.Contains(t, output, "url=https://example.com/page")
		assert.Contains(t, output, "status=200")
		assert.Contains(t, output, "html_bytes=20")
		assert.Contains(t, output, "markdown_bytes=7")
		assert.Contains(t, output, "duration=")
	})

	t.Run("logs failure at warn", func(t *testing.T) {
		t.Parallel()

		var buf bytes.Buffer
		inner := &mock.Scraper{
			ScrapeFn: func(context.Context, string) (*seoscan.ScrapeResult, error) {
				return nil, errors.New("network error")
			},
		}

		s := seoslog.NewLoggingScraper(inner, slog.New(slog.NewTextHandler(&buf, nil)))
		_, err := s.Scrape(context.Background(), "https://example.com/page")

		require.Error(t, err)
		output := buf.String()
		assert.Contains(t, output, "level=WARN")
		assert.Contains(t, output, "err=\"network error\"")
		assert.NotContains(t, output, "html_bytes")
	})
}

func TestLoggingRecordStore(t *testing.T) {
	t.Parallel()

	t.Run("logs save with name", func(t *testing.T) {
		t.Parallel()

		var buf bytes.Buffer
		inner := &mock.RecordStore{
			SaveRecordFn: func(context.Context, *seoscan.PageAnalysis) (string, error) {
				return "post.html", nil
			},
		}
		a := seoscan.NewPageAnalysis("https://example.com/post")
		a.Set(seoscan.MetricTitle, "Post", "")

		store := seoslog.NewLoggingRecordStore(inner, debugLogger(&buf))
		name, err := store.SaveRecord(context.Background(), a)

		require.NoError(t, err)
		assert.Equal(t, "post.html", name)
		output := buf.String()
		assert.Contains(t, output, "msg=\"save record\"")
		assert.Contains(t, output, "name=post.html")
		assert.Contains(t, output, "metrics=1")
	})

	t.Run("logs find with count and error", func(t *testing.T) {
		t.Parallel()

		var buf bytes.Buffer
		inner := &mock.RecordStore{
			FindRecordsFn: func(context.Context) ([]*seoscan.Record, error) {
				return nil, seoscan.Errorf(seoscan.ENOTFOUND, "no records found")
			},
		}

		store := seoslog.NewLoggingRecordStore(inner, debugLogger(&buf))
		_, err := store.FindRecords(context.Background())

		require.Error(t, err)
		output := buf.String()
		assert.Contains(t, output, "msg=\"find records\"")
		assert.Contains(t, output, "count=0")
		assert.Contains(t, output, "err=")
	})
}

func TestLoggingReportWriter_WriteReport(t *testing.T) {
	t.Parallel()

	var buf bytes.Buffer
	inner := &mock.ReportWriter{
		WriteReportFn: func(context.Context, *seoscan.Report) (string, error) {
			return "out/report.xlsx", nil
		},
	}
	records := []*seoscan.Record{{Name: "a.html", Entries: []seoscan.Entry{{Metric: "Title", Value: "A"}}}}

	w := seoslog.NewLoggingReportWriter(inner, slog.New(slog.NewTextHandler(&buf, nil)))
	path, err := w.WriteReport(context.Background(), seoscan.NewReport(records, time.Now()))

	require.NoError(t, err)
	assert.Equal(t, "out/report.xlsx", path)
	output := buf.String()
	assert.Contains(t, output, "msg=\"write report\"")
	assert.Contains(t, output, "records=1")
	assert.Contains(t, output, "metrics=1")
	assert.Contains(t, output, "path=out/report.xlsx")
}

func TestLoggingURLSource_Discover(t *testing.T) {
	t.Parallel()

	t.Run("logs discovery with count and duration", func(t *testing.T) {
		t.Parallel()

		var buf bytes.Buffer
		inner := &mock.URLSource{
			DiscoverFn: func(context.Context, string) ([]string, error) {
				return []string{"https://example.com/a", "https://example.com/b"}, nil
			},
		}

		src := seoslog.NewLoggingURLSource(inner, slog.New(slog.NewTextHandler(&buf, nil)))
		urls, err := src.Discover(context.Background(), "urls.csv")

		require.NoError(t, err)
		assert.Len(t, urls, 2)
		output := buf.String()
		assert.Contains(t, output, "url discovery")
		assert.Contains(t, output, "source=urls.csv")
		assert.Contains(t, output, "count=2")
		assert.Contains(t, output, "duration=")
	})

	t.Run("logs error on failure", func(t *testing.T) {
		t.Parallel()

		var buf bytes.Buffer
		inner := &mock.URLSource{
			DiscoverFn: func(context.Context, string) ([]string, error) {
				return nil, errors.New("connection failed")
			},
		}

		src := seoslog.NewLoggingURLSource(inner, slog.New(slog.NewTextHandler(&buf, nil)))
		_, err := src.Discover(context.Background(), "https://example.com")

		require.Error(t, err)
		assert.Contains(t, buf.String(), "err=\"connection failed\"")
	})
}
