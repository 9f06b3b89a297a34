package seoscan_test

import (
	"testing"

	"github.com/fwojciec/seoscan"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestPageAnalysis_Set(t *testing.T) {
	t.Parallel()

	t.Run("keeps insertion order", func(t *testing.T) {
		t.Parallel()

		a := seoscan.NewPageAnalysis("https://example.com/")
		a.Set(seoscan.MetricURL, "https://example.com/", "")
		a.Set(seoscan.MetricTitle, "Home", "Length: 4 chars")

		entries := a.Entries()
		require.Len(t, entries, 2)
		assert.Equal(t, seoscan.MetricURL, entries[0].Metric)
		assert.Equal(t, seoscan.MetricTitle, entries[1].Metric)
		assert.Equal(t, "Length: 4 chars", entries[1].Detail)
	})

	t.Run("last write wins in original position", func(t *testing.T) {
		t.Parallel()

		a := seoscan.NewPageAnalysis("https://example.com/")
		a.Set("A", "1", "")
		a.Set("B", "2", "")
		a.Set("A", "3", "again")

		assert.Equal(t, 2, a.Len())
		e, ok := a.Entry("A")
		require.True(t, ok)
		assert.Equal(t, "3", e.Value)
		assert.Equal(t, "A", a.Entries()[0].Metric)
	})

	t.Run("entries are a copy", func(t *testing.T) {
		t.Parallel()

		a := seoscan.NewPageAnalysis("https://example.com/")
		a.Set("A", "1", "")
		a.Entries()[0].Value = "changed"

		e, _ := a.Entry("A")
		assert.Equal(t, "1", e.Value)
	})
}

func TestRecord_Value(t *testing.T) {
	t.Parallel()

	r := &seoscan.Record{Name: "a.html", Entries: []seoscan.Entry{
		{Metric: "Title", Value: "first"},
		{Metric: "Title", Value: "second"},
	}}

	v, ok := r.Value("Title")
	assert.True(t, ok)
	assert.Equal(t, "second", v)

	_, ok = r.Value("Missing")
	assert.False(t, ok)
}

func TestRecordName(t *testing.T) {
	t.Parallel()

	tests := []struct {
		url  string
		want string
	}{
		{"https://example.com/blog/post", "post.html"},
		{"https://example.com/blog/post.html", "post.html"},
		{"https://example.com/products/item.php", "item.php"},
		{"https://example.com/blog/", "index.html"},
		{"https://example.com", "index.html"},
		{"https://example.com/a?b=c", "a.html"},
	}

	for _, tt := range tests {
		t.Run(tt.url, func(t *testing.T) {
			t.Parallel()

			got, err := seoscan.RecordName(tt.url)
			require.NoError(t, err)
			assert.Equal(t, tt.want, got)
		})
	}

	t.Run("invalid URL", func(t *testing.T) {
		t.Parallel()

		_, err := seoscan.RecordName("http://[::1")
		require.Error(t, err)
		assert.Equal(t, seoscan.EINVALID, seoscan.ErrorCode(err))
	})
}
