package tiktok

import (
	"context"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

const profilePage = `<!DOCTYPE html><html><head>
<script id="__UNIVERSAL_DATA_FOR_REHYDRATION__" type="application/json">
{"__DEFAULT_SCOPE__":{"webapp.user-detail":{"userInfo":{"user":{"id":"99","uniqueId":"shop"}},
"itemList":[
 {"id":"111","desc":"older","createTime":1700000000,"video":{"cover":"https://cdn/111.jpg","playAddr":"https://cdn/111.mp4"}},
 {"id":"222","desc":"newer","createTime":"1710000000","video":{"cover":"https://cdn/222.jpg"}},
 {"id":"222","desc":"dup","createTime":"1710000000","video":{}}
]}}}
</script></head><body></body></html>`

func TestRecentPosts(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, "/@shop", r.URL.Path)
		assert.NotEmpty(t, r.Header.Get("User-Agent"))
		_, _ = w.Write([]byte(profilePage))
	}))
	defer srv.Close()

	posts, err := New(srv.URL, "shop", time.Second).RecentPosts(context.Background(), 10)

	require.NoError(t, err)
	require.Len(t, posts, 2)
	assert.Equal(t, "222", posts[0].ID, "newest first")
	assert.Equal(t, "newer", posts[0].Caption)
	assert.Equal(t, srv.URL+"/@shop/video/222", posts[0].Permalink)
	assert.Equal(t, "https://cdn/111.mp4", posts[1].MediaURL)
	assert.Equal(t, time.Unix(1700000000, 0).UTC(), posts[1].Timestamp)

	limited, err := New(srv.URL, "shop", time.Second).RecentPosts(context.Background(), 1)
	require.NoError(t, err)
	assert.Len(t, limited, 1)
}

func TestRecentPosts_Errors(t *testing.T) {
	_, err := New("http://unused", "", time.Second).RecentPosts(context.Background(), 5)
	assert.ErrorIs(t, err, ErrNotConfigured)

	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		_, _ = w.Write([]byte(`<html><body>captcha</body></html>`))
	}))
	defer srv.Close()
	_, err = New(srv.URL, "shop", time.Second).RecentPosts(context.Background(), 5)
	assert.ErrorIs(t, err, ErrNoPageData)
}
