package pattern_test

import (
	"testing"

	"github.com/fwojciec/seoscan/pattern"
	"github.com/stretchr/testify/assert"
)

func TestExtractCanonical(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name   string
		html   string
		want   string
		wantOK bool
	}{
		{
			name:   "rel before href",
			html:   `<link rel="canonical" href="https://x.com/a">`,
			want:   "https://x.com/a",
			wantOK: true,
		},
		{
			name:   "href before rel",
			html:   `<link href="https://x.com/a" rel="canonical">`,
			want:   "https://x.com/a",
			wantOK: true,
		},
		{
			name:   "single quotes and uppercase",
			html:   `<LINK REL='canonical' HREF='https://x.com/b' />`,
			want:   "https://x.com/b",
			wantOK: true,
		},
		{
			name:   "strict match ignores other link tags",
			html:   `<link href="/style.css" rel="stylesheet"><link href="https://x.com/c" rel="canonical">`,
			want:   "https://x.com/c",
			wantOK: true,
		},
		{
			name:   "lenient head scan",
			html:   `<html><head><link rel=canonical data-x="1" href="https://x.com/d"></head><body></body></html>`,
			want:   "https://x.com/d",
			wantOK: true,
		},
		{
			name:   "lenient scan matches class names too",
			html:   `<head><link class="canonical-ish" rel="preload" href="/font.woff2"></head>`,
			want:   "/font.woff2",
			wantOK: true,
		},
		{
			name: "canonical outside head is not found by lenient scan",
			html: `<head></head><body><link class=canonical href="/x"></body>`,
		},
		{
			name: "no canonical",
			html: `<html><head><title>x</title></head></html>`,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()

			got, ok := pattern.ExtractCanonical(tt.html)
			assert.Equal(t, tt.wantOK, ok)
			assert.Equal(t, tt.want, got)
		})
	}
}
