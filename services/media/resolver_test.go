package media

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestResolvePassThroughAndWixRefs(t *testing.T) {
	r := NewImageResolver()

	assert.Equal(t, "", r.Resolve("  "))
	assert.Equal(t, "https://cdn.example.com/a.jpg", r.Resolve("https://cdn.example.com/a.jpg"))
	assert.Equal(t,
		"https://static.wixstatic.com/media/11062b_abc~mv2.jpg",
		r.Resolve("wix:image://v1/11062b_abc~mv2.jpg/spa.jpg#originWidth=800&originHeight=600"))
	assert.Equal(t, "", r.Resolve("wix:image://v1/"))
	assert.Equal(t, "", r.Resolve("services/massage"), "public ids need cloudinary")
}

func TestResolveCloudinaryPublicID(t *testing.T) {
	_, err := NewCloudinaryResolver("", "key", "secret")
	require.Error(t, err)

	r, err := NewCloudinaryResolver("demo-cloud", "key", "secret")
	require.NoError(t, err)

	u := r.Resolve("services/massage")
	assert.Contains(t, u, "https://")
	assert.Contains(t, u, "demo-cloud")
	assert.Contains(t, u, "c_fill,w_1200")
	assert.Contains(t, u, "services/massage")
}
