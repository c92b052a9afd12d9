package collector

import (
	"context"
	"net/http"
	"net/http/httptest"
	"os"
	"path/filepath"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func writeFile(t *testing.T, dir, name, content string) string {
	t.Helper()
	path := filepath.Join(dir, name)
	require.NoError(t, os.MkdirAll(filepath.Dir(path), 0o755))
	require.NoError(t, os.WriteFile(path, []byte(content), 0o644))
	return path
}

func TestCollectFiles(t *testing.T) {
	dir := t.TempDir()
	writeFile(t, dir, "site.css", `body { background: #0d1117; } .btn { color: #58a6ff; }`)
	writeFile(t, dir, "index.html", `
		<html><head><link rel="stylesheet" href="extra.css"></head>
		<body style="color: #c9d1d9"></body></html>
	`)
	writeFile(t, dir, "extra.css", `.x { color: #22aa44; }`)

	c := New(nil)
	defer c.Close()

	paths, err := Discover(dir, nil)
	require.NoError(t, err)

	res, err := c.CollectFiles(paths)
	require.NoError(t, err)

	bg := findColor(res, "#0d1117")
	require.NotNil(t, bg)
	assert.True(t, bg.Background)

	require.NotNil(t, findColor(res, "#58a6ff"))
	require.NotNil(t, findColor(res, "#c9d1d9"))
	// Linked stylesheet resolved relative to the page.
	require.NotNil(t, findColor(res, "#22aa44"))
}

func TestCollectFiles_LinkedStylesheetCountedOnce(t *testing.T) {
	dir := t.TempDir()
	writeFile(t, dir, "index.html", `
		<html><head><link rel="stylesheet" href="extra.css"></head>
		<body></body></html>
	`)
	writeFile(t, dir, "extra.css", `.x { color: #22aa44; }`)

	c := New(nil)
	defer c.Close()

	paths, err := Discover(dir, nil)
	require.NoError(t, err)

	res, err := c.CollectFiles(paths)
	require.NoError(t, err)

	// extra.css is both discovered and linked from the page; its single
	// declaration must not score double.
	green := findColor(res, "#22aa44")
	require.NotNil(t, green)
	assert.Equal(t, 1, green.Count)
}

func TestInvalidate_RelativeEventPath(t *testing.T) {
	dir := t.TempDir()
	writeFile(t, dir, "style.css", `.a { color: #111111; }`)
	t.Chdir(dir)

	c := New(nil)
	defer c.Close()

	paths, err := Discover(".", nil)
	require.NoError(t, err)

	res, err := c.CollectFiles(paths)
	require.NoError(t, err)
	require.NotNil(t, findColor(res, "#111111"))

	// Replace via write-and-rename, the way editors save.
	tmp := filepath.Join(dir, "style.css.tmp")
	require.NoError(t, os.WriteFile(tmp, []byte(`.a { color: #222222; }`), 0o644))
	require.NoError(t, os.Rename(tmp, filepath.Join(dir, "style.css")))

	// Watch events carry the path as watched, here relative, while the
	// cache was filled from absolute discovery paths.
	c.Invalidate("style.css")

	res, err = c.CollectFiles(paths)
	require.NoError(t, err)
	assert.Nil(t, findColor(res, "#111111"))
	require.NotNil(t, findColor(res, "#222222"))
}

func TestCollectFiles_SkipsUnreadable(t *testing.T) {
	c := New(nil)
	defer c.Close()

	res, err := c.CollectFiles([]string{"/definitely/not/there.css"})
	require.NoError(t, err)
	assert.Empty(t, res.Colors)
}

func TestDiscover(t *testing.T) {
	dir := t.TempDir()
	writeFile(t, dir, "a.css", ".a{}")
	writeFile(t, dir, "sub/b.html", "<html></html>")
	writeFile(t, dir, "node_modules/dep/c.css", ".c{}")
	writeFile(t, dir, "notes.txt", "x")

	files, err := Discover(dir, nil)
	require.NoError(t, err)

	require.Len(t, files, 2)
	assert.Equal(t, "a.css", filepath.Base(files[0]))
	assert.Equal(t, "b.html", filepath.Base(files[1]))
}

func TestDiscover_CustomExcludes(t *testing.T) {
	dir := t.TempDir()
	writeFile(t, dir, "keep.css", ".a{}")
	writeFile(t, dir, "vendor/skip.css", ".b{}")

	files, err := Discover(dir, []string{"vendor/**"})
	require.NoError(t, err)

	require.Len(t, files, 1)
	assert.Equal(t, "keep.css", filepath.Base(files[0]))
}

func TestCollectURL(t *testing.T) {
	mux := http.NewServeMux()
	mux.HandleFunc("/", func(w http.ResponseWriter, r *http.Request) {
		w.Header().Set("Content-Type", "text/html")
		_, _ = w.Write([]byte(`
			<html><head>
				<link rel="stylesheet" href="/main.css">
				<style>body { background: #ffffff; }</style>
			</head><body></body></html>
		`))
	})
	mux.HandleFunc("/main.css", func(w http.ResponseWriter, r *http.Request) {
		w.Header().Set("Content-Type", "text/css")
		_, _ = w.Write([]byte(`.hero { color: #cc2200; font-family: Georgia, serif; }`))
	})
	srv := httptest.NewServer(mux)
	defer srv.Close()

	c := New(nil)
	defer c.Close()

	res, err := c.CollectURL(context.Background(), srv.URL)
	require.NoError(t, err)

	bg := findColor(res, "#ffffff")
	require.NotNil(t, bg)
	assert.True(t, bg.Background)

	require.NotNil(t, findColor(res, "#cc2200"))
	require.Len(t, res.Fonts, 1)
	require.Len(t, res.Stylesheets, 1)
	assert.Equal(t, srv.URL+"/main.css", res.Stylesheets[0])
}

func TestCollectURL_StylesheetFailureIsNotFatal(t *testing.T) {
	mux := http.NewServeMux()
	mux.HandleFunc("/", func(w http.ResponseWriter, r *http.Request) {
		_, _ = w.Write([]byte(`
			<html><head><link rel="stylesheet" href="/missing.css"></head>
			<body style="color: #112233"></body></html>
		`))
	})
	srv := httptest.NewServer(mux)
	defer srv.Close()

	c := New(nil)
	defer c.Close()

	res, err := c.CollectURL(context.Background(), srv.URL)
	require.NoError(t, err)
	require.NotNil(t, findColor(res, "#112233"))
}

func TestFetcher_ErrorStatus(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		http.NotFound(w, r)
	}))
	defer srv.Close()

	f := NewFetcher(nil)
	_, err := f.Get(context.Background(), srv.URL)
	require.Error(t, err)
	assert.Contains(t, err.Error(), "status 404")
}

func TestWatcher_TriggersOnWrite(t *testing.T) {
	dir := t.TempDir()
	path := writeFile(t, dir, "site.css", ".a { color: #fff; }")

	changed := make(chan string, 8)
	w, err := NewWatcher(WatchOptions{DebounceMs: 50}, func(p string) { changed <- p }, nil)
	require.NoError(t, err)
	require.NoError(t, w.Start(dir))
	defer w.Stop()

	require.NoError(t, os.WriteFile(path, []byte(".a { color: #000; }"), 0o644))

	select {
	case got := <-changed:
		assert.Equal(t, path, got)
	case <-time.After(3 * time.Second):
		t.Fatal("expected change notification")
	}
}

func TestWatcher_IgnoresOtherExtensions(t *testing.T) {
	dir := t.TempDir()

	changed := make(chan string, 8)
	w, err := NewWatcher(WatchOptions{DebounceMs: 50}, func(p string) { changed <- p }, nil)
	require.NoError(t, err)
	require.NoError(t, w.Start(dir))
	defer w.Stop()

	writeFile(t, dir, "README.md", "hello")

	select {
	case got := <-changed:
		t.Fatalf("unexpected notification for %s", got)
	case <-time.After(500 * time.Millisecond):
	}
}

func TestWatcher_StopIsIdempotent(t *testing.T) {
	w, err := NewWatcher(DefaultWatchOptions(), func(string) {}, nil)
	require.NoError(t, err)
	require.NoError(t, w.Start(t.TempDir()))
	require.NoError(t, w.Stop())
	require.NoError(t, w.Stop())
}
