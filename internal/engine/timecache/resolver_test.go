package timecache_test

import (
	"context"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.trai.ch/wltime/internal/core/domain"
	"go.trai.ch/wltime/internal/core/ports/mocks"
	"go.trai.ch/wltime/internal/engine/timecache"
	"go.trai.ch/zerr"
	"go.uber.org/mock/gomock"
	"golang.org/x/net/html"
)

func mustParse(t *testing.T, doc string) *html.Node {
	t.Helper()
	n, err := html.Parse(strings.NewReader(doc))
	require.NoError(t, err)
	return n
}

func detailPage(runtime string) string {
	return `<html><body><ul><li class="bc-list-item runtimeLabel">` +
		`<span class="bc-text adbl-run-time">` + runtime + `</span>` +
		`</li></ul><span class="adbl-run-time">5 hr</span></body></html>`
}

func TestResolver_Resolve(t *testing.T) {
	tests := []struct {
		name string
		page string
		want string
	}{
		{name: "first marker wins", page: detailPage("Length: 3 hr 42 min"), want: "Length: 3 hr 42 min"},
		{name: "text is verbatim", page: detailPage("\n  12 hr  "), want: "\n  12 hr  "},
		{name: "no marker", page: `<html><body><p>nothing here</p></body></html>`, want: ""},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			ctrl := gomock.NewController(t)
			fetcher := mocks.NewMockDocumentFetcher(ctrl)
			fetcher.EXPECT().FetchDocument(gomock.Any(), "https://example.com/pd/1").
				Return(mustParse(t, tt.page), nil).Times(1)

			got, err := timecache.NewResolver(fetcher, domain.MarkerClass).
				Resolve(context.Background(), "https://example.com/pd/1")
			require.NoError(t, err)
			assert.Equal(t, tt.want, got)
		})
	}
}

func TestResolver_NetworkError(t *testing.T) {
	ctrl := gomock.NewController(t)
	fetcher := mocks.NewMockDocumentFetcher(ctrl)
	fetcher.EXPECT().FetchDocument(gomock.Any(), gomock.Any()).
		Return(nil, zerr.With(domain.ErrNetwork, "status", "503 Service Unavailable"))

	got, err := timecache.NewResolver(fetcher, domain.MarkerClass).
		Resolve(context.Background(), "https://example.com/pd/1")
	require.Error(t, err)
	assert.Empty(t, got)
	assert.ErrorContains(t, err, domain.ErrNetwork.Error())
}
