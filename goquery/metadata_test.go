package goquery_test

import (
	"testing"

	"github.com/fwojciec/seoscan"
	"github.com/fwojciec/seoscan/goquery"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestMetadataExtractor_ExtractMetadata(t *testing.T) {
	t.Parallel()

	t.Run("reads head metadata", func(t *testing.T) {
		t.Parallel()

		html := `<!DOCTYPE html>
<html>
<head>
	<title>  Widgets | Shop  </title>
	<meta name="description" content="All the widgets">
	<meta name="Keywords" content="widgets, gadgets">
	<meta name="robots" content="noindex, follow">
	<meta name="viewport" content="width=device-width, initial-scale=1">
	<meta property="og:title" content="Widgets OG">
	<meta property="og:description" content="OG description">
	<meta property="og:image" content="https://example.com/og.png">
	<link rel="stylesheet" href="/site.css">
	<link rel="canonical" href="https://example.com/widgets">
</head>
<body><h1>Widgets</h1></body>
</html>`

		md, err := goquery.NewMetadataExtractor().ExtractMetadata(html)

		require.NoError(t, err)
		assert.Equal(t, &seoscan.Metadata{
			Title:         "Widgets | Shop",
			Description:   "All the widgets",
			Keywords:      "widgets, gadgets",
			Robots:        "noindex, follow",
			Viewport:      "width=device-width, initial-scale=1",
			Canonical:     "https://example.com/widgets",
			OGTitle:       "Widgets OG",
			OGDescription: "OG description",
			OGImage:       "https://example.com/og.png",
		}, md)
	})

	t.Run("first occurrence wins", func(t *testing.T) {
		t.Parallel()

		html := `<head>
<meta name="description" content="first">
<meta name="description" content="second">
<link rel="canonical" href="/one"><link rel="canonical" href="/two">
</head>`

		md, err := goquery.NewMetadataExtractor().ExtractMetadata(html)

		require.NoError(t, err)
		assert.Equal(t, "first", md.Description)
		assert.Equal(t, "/one", md.Canonical)
	})

	t.Run("canonical among several rel values", func(t *testing.T) {
		t.Parallel()

		md, err := goquery.NewMetadataExtractor().ExtractMetadata(`<link rel="Canonical alternate" href="/c">`)

		require.NoError(t, err)
		assert.Equal(t, "/c", md.Canonical)
	})

	t.Run("missing fields are empty", func(t *testing.T) {
		t.Parallel()

		md, err := goquery.NewMetadataExtractor().ExtractMetadata(`<p>no head at all</p>`)

		require.NoError(t, err)
		assert.Equal(t, &seoscan.Metadata{}, md)
	})

	t.Run("ignores og properties given as name", func(t *testing.T) {
		t.Parallel()

		md, err := goquery.NewMetadataExtractor().ExtractMetadata(`<meta name="og:title" content="wrong attr">`)

		require.NoError(t, err)
		assert.Empty(t, md.OGTitle)
	})
}
