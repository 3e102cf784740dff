package deeplink

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestBuildAndParseRoundTrip(t *testing.T) {
	url, err := Build("https://louay.store", "663a1f2e8b4c", "instagram-july")
	require.NoError(t, err)

	link, err := Parse(url)
	require.NoError(t, err)
	assert.Equal(t, "663a1f2e8b4c", link.ProductID)
	assert.Equal(t, "instagram-july", link.Ref)
}

func TestBuildWithoutRef(t *testing.T) {
	url, err := Build("https://louay.store", "663a1f2e8b4c", "")
	require.NoError(t, err)
	assert.NotContains(t, url, "ref=")

	link, err := Parse(url)
	require.NoError(t, err)
	assert.Equal(t, "663a1f2e8b4c", link.ProductID)
	assert.Empty(t, link.Ref)
}

func TestBuildPreservesExistingQuery(t *testing.T) {
	url, err := Build("https://louay.store/?lang=ar", "663a1f2e8b4c", "tiktok")
	require.NoError(t, err)

	assert.Contains(t, url, "lang=ar")
	assert.Contains(t, url, "product=663a1f2e8b4c")
	assert.Contains(t, url, "ref=tiktok")
}

func TestBuildRequiresProduct(t *testing.T) {
	_, err := Build("https://louay.store", "", "tiktok")
	assert.ErrorIs(t, err, ErrNoProduct)
}

func TestParseRejectsLinkWithoutProduct(t *testing.T) {
	_, err := Parse("https://louay.store/?ref=tiktok")
	assert.ErrorIs(t, err, ErrNoProduct)
}
