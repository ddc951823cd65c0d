package main

import (
	"image/png"
	"net/http"
	"net/http/httptest"
	"regexp"
	"strings"
	"testing"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/nxc/galaxy-portfolio/internal/config"
	"github.com/nxc/galaxy-portfolio/internal/content"
	"github.com/nxc/galaxy-portfolio/internal/starfield"
)

func testRouter(t *testing.T, opts ...func(*config.Config)) *gin.Engine {
	t.Helper()
	gin.SetMode(gin.TestMode)

	cfg := &config.Config{
		TemplatesGlob: "templates/*",
		StaticDir:     "./static",
		ImagesDir:     "./images",
		Seed:          7,
		Starfield:     starfield.DefaultConfig(),
	}
	cfg.Starfield.Count = 40
	cfg.Starfield.LinkDistance = 140
	for _, opt := range opts {
		opt(cfg)
	}

	site, err := content.Load("./content")
	require.NoError(t, err)
	r, err := newRouter(cfg, site)
	require.NoError(t, err)
	return r
}

func get(r http.Handler, url string) *httptest.ResponseRecorder {
	w := httptest.NewRecorder()
	req := httptest.NewRequest(http.MethodGet, url, nil)
	r.ServeHTTP(w, req)
	return w
}

func TestHomePage(t *testing.T) {
	w := get(testRouter(t), "/")

	require.Equal(t, http.StatusOK, w.Code)
	body := w.Body.String()
	assert.Contains(t, body, "NXC")
	assert.Contains(t, body, `id="galaxy"`)
	assert.Contains(t, body, "window.galaxyConfig")
	assert.Contains(t, body, `"count":40`)
	assert.Contains(t, body, `"linkDistance":140`, "the browser field gets the server's tuning")
	assert.Contains(t, body, `"glowColor":"#93c5fd"`)
	assert.Contains(t, body, "Study Buddy")
	assert.Contains(t, body, "Education Journey")
	assert.Contains(t, body, "/backdrop.png?seed=7")
	for _, item := range content.NavItems {
		assert.Contains(t, body, `href="#`+item.ID+`"`)
	}
}

func TestTechContent(t *testing.T) {
	r := testRouter(t)

	w := get(r, "/tech-content?category=backend")
	require.Equal(t, http.StatusOK, w.Code)
	assert.Contains(t, w.Body.String(), "APIs &amp; system design")
	assert.Contains(t, w.Body.String(), "NestJS")

	w = get(r, "/tech-content")
	require.Equal(t, http.StatusOK, w.Code)
	assert.Contains(t, w.Body.String(), "Frontend")

	w = get(r, "/tech-content?category=cooking")
	assert.Equal(t, http.StatusNotFound, w.Code)
	assert.Contains(t, w.Body.String(), "does not exist")
}

func TestJourneyContentWrapsSlides(t *testing.T) {
	r := testRouter(t)

	w := get(r, "/journey-content/2?slide=4")
	require.Equal(t, http.StatusOK, w.Code)
	assert.Contains(t, w.Body.String(), "Live agent demo")
	assert.Contains(t, w.Body.String(), "2 / 3")

	w = get(r, "/journey-content/2?slide=-1")
	require.Equal(t, http.StatusOK, w.Code)
	assert.Contains(t, w.Body.String(), "The research group")

	w = get(r, "/journey-content/1")
	require.Equal(t, http.StatusOK, w.Code)
	assert.NotContains(t, w.Body.String(), "slide-controls", "single slide has no controls")

	assert.Equal(t, http.StatusNotFound, get(r, "/journey-content/9").Code)
	assert.Equal(t, http.StatusNotFound, get(r, "/journey-content/x").Code)

	w = get(r, "/journey-content/2?slide=abc")
	assert.Equal(t, http.StatusNotFound, w.Code)
	assert.Contains(t, w.Body.String(), "does not exist")
}

func TestResumeRedirect(t *testing.T) {
	w := get(testRouter(t), "/resume")
	assert.Equal(t, http.StatusFound, w.Code)
	assert.Equal(t, "https://example.com/nxc-resume.pdf", w.Header().Get("Location"))
}

func TestBackdropStill(t *testing.T) {
	r := testRouter(t)

	w := get(r, "/backdrop.png?w=64&h=48&frames=3&seed=5")
	require.Equal(t, http.StatusOK, w.Code)
	assert.Equal(t, "image/png", w.Header().Get("Content-Type"))
	img, err := png.Decode(w.Body)
	require.NoError(t, err)
	assert.Equal(t, 64, img.Bounds().Dx())
	assert.Equal(t, 48, img.Bounds().Dy())

	w = get(r, "/backdrop.png?w=1&h=99999")
	require.Equal(t, http.StatusOK, w.Code)
	img, err = png.Decode(w.Body)
	require.NoError(t, err)
	assert.Equal(t, minBackdropSide, img.Bounds().Dx())
	assert.Equal(t, maxBackdropSide, img.Bounds().Dy())
}

func TestBackdropRejectsBadParams(t *testing.T) {
	r := testRouter(t)
	for _, url := range []string{
		"/backdrop.png?w=wide",
		"/backdrop.png?h=1.5",
		"/backdrop.png?frames=many",
		"/backdrop.png?seed=-4",
	} {
		assert.Equal(t, http.StatusBadRequest, get(r, url).Code, url)
	}
}

func TestBackdropIsStableForSeed(t *testing.T) {
	a := get(testRouter(t), "/backdrop.png?w=80&h=80&seed=12").Body.Bytes()
	b := get(testRouter(t), "/backdrop.png?w=80&h=80&seed=12").Body.Bytes()
	require.NotEmpty(t, a)
	assert.Equal(t, a, b)
}

func TestBackdropCapsArea(t *testing.T) {
	w := get(testRouter(t), "/backdrop.png?w=4096&h=2048&frames=600")
	require.Equal(t, http.StatusOK, w.Code)
	cfg, err := png.DecodeConfig(w.Body)
	require.NoError(t, err)

	assert.LessOrEqual(t, cfg.Width*cfg.Height, maxBackdropPixels)
	assert.Equal(t, 2896, cfg.Width)
	assert.Equal(t, 1448, cfg.Height)
}

func TestFitArea(t *testing.T) {
	w, h := fitArea(1280, 2400)
	assert.Equal(t, [2]int{1280, 2400}, [2]int{w, h}, "default size is within the cap")

	w, h = fitArea(maxBackdropSide, maxBackdropSide)
	assert.Equal(t, [2]int{2048, 2048}, [2]int{w, h})

	w, h = fitArea(minBackdropSide, maxBackdropSide)
	assert.Equal(t, [2]int{minBackdropSide, maxBackdropSide}, [2]int{w, h})
}

func TestBackdropCacheReusesStills(t *testing.T) {
	stills, err := newBackdropCache(starfield.DefaultConfig(), 2)
	require.NoError(t, err)

	key := backdropKey{width: 40, height: 30, seed: 3}
	a, err := stills.png(key)
	require.NoError(t, err)
	b, err := stills.png(key)
	require.NoError(t, err)
	assert.Same(t, &a[0], &b[0], "second request is served from the cache")

	for seed := uint64(10); seed < 13; seed++ {
		_, err := stills.png(backdropKey{width: 40, height: 30, seed: seed})
		require.NoError(t, err)
	}
	assert.Equal(t, 2, stills.stills.Len())
	assert.False(t, stills.stills.Contains(key), "oldest still is evicted")
}

var backdropURL = regexp.MustCompile(`/backdrop\.png\?seed=(\d+)`)

func TestBackdropSeedIsFixedPerProcess(t *testing.T) {
	r := testRouter(t, func(cfg *config.Config) { cfg.Seed = 0 })

	first := backdropURL.FindStringSubmatch(get(r, "/").Body.String())
	second := backdropURL.FindStringSubmatch(get(r, "/").Body.String())
	require.Len(t, first, 2)
	require.Len(t, second, 2)
	assert.Equal(t, first[1], second[1])
	assert.NotEqual(t, "0", first[1])
}

func TestPageScriptsWorkWithoutWasm(t *testing.T) {
	r := testRouter(t)

	w := get(r, "/static/galaxy.js")
	require.Equal(t, http.StatusOK, w.Code)
	js := w.Body.String()
	observer := strings.Index(js, "IntersectionObserver")
	guard := strings.Index(js, "typeof Go")
	require.NotEqual(t, -1, observer)
	require.NotEqual(t, -1, guard)
	assert.Less(t, observer, guard, "sections are revealed before the wasm check can return")
	assert.Less(t, strings.Index(js, "addEventListener('scroll'"), guard, "nav tracking runs without wasm")

	w = get(r, "/static/site.css")
	require.Equal(t, http.StatusOK, w.Code)
	assert.Contains(t, w.Body.String(), ".js-reveal .reveal {")
	assert.NotContains(t, "\n"+w.Body.String(), "\n.reveal {", "sections are visible until a script hides them")

	if !wasmBuilt("./static") {
		assert.NotContains(t, get(r, "/").Body.String(), "wasm_exec.js")
	}
}
