package adsenseremote_test

import (
	"context"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/dalemusser/storyads/internal/app/features/adsenseremote"
	"github.com/dalemusser/storyads/internal/domain/models"
	"go.uber.org/zap"
)

type fakeSettings struct {
	settings models.AdSettings
	err      error
}

func (f *fakeSettings) Get(ctx context.Context, siteID string) (models.AdSettings, error) {
	return f.settings, f.err
}

func enabledSettings() models.AdSettings {
	return models.AdSettings{
		Network:       models.NetworkAdSense,
		AdSenseClient: "ca-pub-gate",
		AdSenseSlot:   "gate",
	}
}

func adConfigServer(t *testing.T, body string) *httptest.Server {
	t.Helper()
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		_, _ = w.Write([]byte(body))
	}))
	t.Cleanup(srv.Close)
	return srv
}

func serveTag(t *testing.T, store adsenseremote.SettingsReader, srv *httptest.Server, target string) *httptest.ResponseRecorder {
	t.Helper()

	client := adsenseremote.NewClient(srv.URL+"/h/%s", srv.Client(), zap.NewNop())
	h := adsenseremote.NewHandler(store, client, "default", "4239", zap.NewNop())

	req := httptest.NewRequest("GET", target, nil)
	rec := httptest.NewRecorder()
	h.ServeTag(rec, req)
	return rec
}

func TestServeTag_ValidFetch(t *testing.T) {
	srv := adConfigServer(t, `{"data":{"adConfig":{"adsenseClientId":"ca-123|456"}}}`)

	rec := serveTag(t, &fakeSettings{settings: enabledSettings()}, srv, "http://1234.example.com/ads/adsense-auto")

	body := rec.Body.String()
	if !strings.Contains(body, `"data-ad-client":"ca-123"`) {
		t.Errorf("body missing fetched client: %q", body)
	}
	if !strings.Contains(body, `"data-ad-slot":"456"`) {
		t.Errorf("body missing fetched slot: %q", body)
	}
	if !strings.Contains(body, `"data-property-code":"1234"`) {
		t.Errorf("body missing property code: %q", body)
	}
}

func TestServeTag_PropertyCodeFromQuery(t *testing.T) {
	srv := adConfigServer(t, `{"data":{"adConfig":{"adsenseClientId":"ca-123|456"}}}`)

	rec := serveTag(t, &fakeSettings{settings: enabledSettings()}, srv, "http://example.com/ads/adsense-auto?id=5678")

	if !strings.Contains(rec.Body.String(), `"data-property-code":"5678"`) {
		t.Errorf("body missing query-derived property code: %q", rec.Body.String())
	}
}

func TestServeTag_PropertyCodeFallback(t *testing.T) {
	srv := adConfigServer(t, `{"data":{"adConfig":{"adsenseClientId":"ca-123|456"}}}`)

	rec := serveTag(t, &fakeSettings{settings: enabledSettings()}, srv, "http://example.com/ads/adsense-auto")

	if !strings.Contains(rec.Body.String(), `"data-property-code":"4239"`) {
		t.Errorf("body missing fallback property code: %q", rec.Body.String())
	}
}

func TestServeTag_NetworkDisabled(t *testing.T) {
	srv := adConfigServer(t, `{"data":{"adConfig":{"adsenseClientId":"ca-123|456"}}}`)

	settings := enabledSettings()
	settings.Network = models.NetworkNone
	rec := serveTag(t, &fakeSettings{settings: settings}, srv, "http://1234.example.com/ads/adsense-auto")

	if body := rec.Body.String(); body != "" {
		t.Errorf("expected empty body when network disabled, got %q", body)
	}
}

func TestServeTag_GateSettingsIncomplete(t *testing.T) {
	srv := adConfigServer(t, `{"data":{"adConfig":{"adsenseClientId":"ca-123|456"}}}`)

	settings := enabledSettings()
	settings.AdSenseSlot = ""
	rec := serveTag(t, &fakeSettings{settings: settings}, srv, "http://1234.example.com/ads/adsense-auto")

	if body := rec.Body.String(); body != "" {
		t.Errorf("expected empty body when gate settings incomplete, got %q", body)
	}
}

func TestServeTag_FetchFailure(t *testing.T) {
	srv := adConfigServer(t, `{"data":{"adConfig":{"adsenseClientId":"no-separator"}}}`)

	rec := serveTag(t, &fakeSettings{settings: enabledSettings()}, srv, "http://1234.example.com/ads/adsense-auto")

	if body := rec.Body.String(); body != "" {
		t.Errorf("expected empty body on fetch failure, got %q", body)
	}
}
