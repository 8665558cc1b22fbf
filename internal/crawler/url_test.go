package crawler

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestResolveIconURL(t *testing.T) {
	assert.Equal(t, "https://cdn.example.com/x.png", ResolveIconURL("//cdn.example.com/x.png", testSite))
	assert.Equal(t, "https://ai-bot.cn/icons/x.png", ResolveIconURL("/icons/x.png", testSite))
	assert.Equal(t, "https://x.com/y.png", ResolveIconURL("https://x.com/y.png", testSite))
	assert.Equal(t, "http://x.com/y.png", ResolveIconURL("http://x.com/y.png", testSite))
	assert.Equal(t, "data:image/png;base64,AAA", ResolveIconURL("data:image/png;base64,AAA", testSite))
	assert.Equal(t, "", ResolveIconURL("", testSite))
}

func TestResolveLinkURL(t *testing.T) {
	assert.Equal(t, "https://ai-bot.cn/sites/1.html", ResolveLinkURL("/sites/1.html", testSite))
	assert.Equal(t, "https://x.com/", ResolveLinkURL("https://x.com/", testSite))
	assert.Equal(t, "https://ai-bot.cn//cdn.example.com/x", ResolveLinkURL("//cdn.example.com/x", testSite))
	assert.Equal(t, "sites/1.html", ResolveLinkURL("sites/1.html", testSite))
	assert.Equal(t, "#", ResolveLinkURL("#", testSite))
	assert.Equal(t, "", ResolveLinkURL("", testSite))
}
