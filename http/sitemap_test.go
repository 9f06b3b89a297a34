package http_test

import (
	"context"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/fwojciec/seoscan"
	seohttp "github.com/fwojciec/seoscan/http"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func urlset(locs ...string) string {
	var b strings.Builder
	b.WriteString(`<?xml version="1.0" encoding="UTF-8"?>` + "\n")
	b.WriteString(`<urlset xmlns="http://www.sitemaps.org/schemas/sitemap/0.9">` + "\n")
	for _, l := range locs {
		b.WriteString("  <url><loc>" + l + "</loc></url>\n")
	}
	b.WriteString("</urlset>")
	return b.String()
}

func TestSitemapService_Discover_FromRobotsTxt(t *testing.T) {
	t.Parallel()

	srv := newTestServer(t, map[string]string{
		"/robots.txt": "User-agent: *\nDisallow: /private/\nSitemap: {{BASE}}/sitemap-main.xml\n",
		"/sitemap-main.xml": urlset(
			"{{BASE}}/products/widget",
			"{{BASE}}/about",
		),
	})
	defer srv.Close()

	svc := seohttp.NewSitemapService(srv.Client())
	urls, err := svc.Discover(context.Background(), srv.URL)

	require.NoError(t, err)
	assert.Equal(t, []string{srv.URL + "/products/widget", srv.URL + "/about"}, urls)
}

func TestSitemapService_Discover_FallbackToSitemapXML(t *testing.T) {
	t.Parallel()

	srv := newTestServer(t, map[string]string{
		"/sitemap.xml": urlset("{{BASE}}/page1"),
	})
	defer srv.Close()

	svc := seohttp.NewSitemapService(srv.Client())
	urls, err := svc.Discover(context.Background(), srv.URL)

	require.NoError(t, err)
	assert.Equal(t, []string{srv.URL + "/page1"}, urls)
}

func TestSitemapService_Discover_RobotsWithoutDirectiveFallsBack(t *testing.T) {
	t.Parallel()

	srv := newTestServer(t, map[string]string{
		"/robots.txt":  "User-agent: *\nDisallow:\n",
		"/sitemap.xml": urlset("{{BASE}}/page1"),
	})
	defer srv.Close()

	svc := seohttp.NewSitemapService(srv.Client())
	urls, err := svc.Discover(context.Background(), srv.URL)

	require.NoError(t, err)
	assert.Equal(t, []string{srv.URL + "/page1"}, urls)
}

func TestSitemapService_Discover_SitemapIndex(t *testing.T) {
	t.Parallel()

	srv := newTestServer(t, map[string]string{
		"/sitemap.xml": `<?xml version="1.0" encoding="UTF-8"?>
<sitemapindex xmlns="http://www.sitemaps.org/schemas/sitemap/0.9">
  <sitemap><loc>{{BASE}}/sitemap-blog.xml</loc></sitemap>
  <sitemap><loc>{{BASE}}/sitemap-shop.xml</loc></sitemap>
  <sitemap><loc>{{BASE}}/sitemap-blog.xml</loc></sitemap>
</sitemapindex>`,
		"/sitemap-blog.xml": urlset("{{BASE}}/blog/first", "{{BASE}}/shop/cart"),
		"/sitemap-shop.xml": urlset("{{BASE}}/shop/cart", "{{BASE}}/shop/checkout"),
	})
	defer srv.Close()

	svc := seohttp.NewSitemapService(srv.Client())
	urls, err := svc.Discover(context.Background(), srv.URL)

	require.NoError(t, err)
	assert.Equal(t, []string{
		srv.URL + "/blog/first",
		srv.URL + "/shop/cart",
		srv.URL + "/shop/checkout",
	}, urls)
}

func TestSitemapService_Discover_FiltersByPath(t *testing.T) {
	t.Parallel()

	srv := newTestServer(t, map[string]string{
		"/sitemap.xml": urlset(
			"{{BASE}}/blog",
			"{{BASE}}/blog/post",
			"{{BASE}}/blogroll",
			"{{BASE}}/shop/cart",
		),
	})
	defer srv.Close()

	svc := seohttp.NewSitemapService(srv.Client())
	urls, err := svc.Discover(context.Background(), srv.URL+"/blog/")

	require.NoError(t, err)
	assert.Equal(t, []string{srv.URL + "/blog", srv.URL + "/blog/post"}, urls)
}

func TestSitemapService_Discover_DirectSitemapURL(t *testing.T) {
	t.Parallel()

	srv := newTestServer(t, map[string]string{
		"/sitemaps/pages.xml": urlset("{{BASE}}/a", "{{BASE}}/b"),
	})
	defer srv.Close()

	svc := seohttp.NewSitemapService(srv.Client())
	urls, err := svc.Discover(context.Background(), srv.URL+"/sitemaps/pages.xml")

	require.NoError(t, err)
	assert.Equal(t, []string{srv.URL + "/a", srv.URL + "/b"}, urls)
}

func TestSitemapService_Discover_Limit(t *testing.T) {
	t.Parallel()

	srv := newTestServer(t, map[string]string{
		"/sitemap.xml": urlset("{{BASE}}/1", "{{BASE}}/2", "{{BASE}}/3"),
	})
	defer srv.Close()

	svc := seohttp.NewSitemapService(srv.Client())
	svc.Limit = 2
	urls, err := svc.Discover(context.Background(), srv.URL)

	require.NoError(t, err)
	assert.Equal(t, []string{srv.URL + "/1", srv.URL + "/2"}, urls)
}

func TestSitemapService_Discover_ContextCancellation(t *testing.T) {
	t.Parallel()

	srv := newTestServer(t, map[string]string{
		"/sitemap.xml": urlset("{{BASE}}/page1"),
	})
	defer srv.Close()

	ctx, cancel := context.WithCancel(context.Background())
	cancel()

	svc := seohttp.NewSitemapService(srv.Client())
	_, err := svc.Discover(ctx, srv.URL)

	require.ErrorIs(t, err, context.Canceled)
}

func TestSitemapService_Discover_NoSitemapFound(t *testing.T) {
	t.Parallel()

	srv := newTestServer(t, map[string]string{})
	defer srv.Close()

	svc := seohttp.NewSitemapService(srv.Client())
	_, err := svc.Discover(context.Background(), srv.URL)

	assert.Equal(t, seoscan.ENOTFOUND, seoscan.ErrorCode(err))
}

func TestSitemapService_Discover_Errors(t *testing.T) {
	t.Parallel()

	t.Run("invalid site URL", func(t *testing.T) {
		t.Parallel()

		_, err := seohttp.NewSitemapService(nil).Discover(context.Background(), "not a url")

		assert.Equal(t, seoscan.EINVALID, seoscan.ErrorCode(err))
	})

	t.Run("malformed sitemap", func(t *testing.T) {
		t.Parallel()

		srv := newTestServer(t, map[string]string{"/sitemap.xml": "this is not xml"})
		defer srv.Close()

		_, err := seohttp.NewSitemapService(srv.Client()).Discover(context.Background(), srv.URL)

		assert.Equal(t, seoscan.EINVALID, seoscan.ErrorCode(err))
	})

	t.Run("listed sitemap missing", func(t *testing.T) {
		t.Parallel()

		srv := newTestServer(t, map[string]string{"/robots.txt": "Sitemap: {{BASE}}/gone.xml\n"})
		defer srv.Close()

		_, err := seohttp.NewSitemapService(srv.Client()).Discover(context.Background(), srv.URL)

		assert.Equal(t, seoscan.EUNAVAILABLE, seoscan.ErrorCode(err))
	})
}

// newTestServer creates a test HTTP server with the given path->content mapping.
// Content strings may contain {{BASE}} which is replaced with the server URL.
func newTestServer(t *testing.T, content map[string]string) *httptest.Server {
	t.Helper()

	var srv *httptest.Server
	srv = httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		body, ok := content[r.URL.Path]
		if !ok {
			http.NotFound(w, r)
			return
		}
		body = strings.ReplaceAll(body, "{{BASE}}", srv.URL)

		if strings.HasSuffix(r.URL.Path, ".txt") {
			w.Header().Set("Content-Type", "text/plain")
		} else {
			w.Header().Set("Content-Type", "application/xml")
		}
		_, _ = w.Write([]byte(body))
	}))

	return srv
}
