package cli

import (
	"bufio"
	"bytes"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestGetSimpleText(t *testing.T) {
	var out bytes.Buffer
	r := bufio.NewReader(strings.NewReader("  Air Max 90  \n"))

	got, err := GetSimpleText(r, "Name", &out)
	require.NoError(t, err)
	assert.Equal(t, "Air Max 90", got)
	assert.Contains(t, out.String(), "Name")
}

func TestGetSimpleText_PartialLineBeforeEOF(t *testing.T) {
	var out bytes.Buffer
	r := bufio.NewReader(strings.NewReader("no newline"))

	got, err := GetSimpleText(r, "Name", &out)
	require.NoError(t, err)
	assert.Equal(t, "no newline", got)
}

func TestGetTextWithDefault(t *testing.T) {
	var out bytes.Buffer
	r := bufio.NewReader(strings.NewReader("\nPUMA\n"))

	got, err := GetTextWithDefault(r, "Brand", "NIKE", &out)
	require.NoError(t, err)
	assert.Equal(t, "NIKE", got, "empty input keeps the default")
	assert.Contains(t, out.String(), "[NIKE]")

	got, err = GetTextWithDefault(r, "Brand", "NIKE", &out)
	require.NoError(t, err)
	assert.Equal(t, "PUMA", got)
}

func TestGetPassword(t *testing.T) {
	orig := readPassword
	readPassword = func(fd int) ([]byte, error) { return []byte("s3cret"), nil }
	t.Cleanup(func() { readPassword = orig })

	var out bytes.Buffer
	got, err := GetPassword("Password", &out)
	require.NoError(t, err)
	assert.Equal(t, "s3cret", got)
	assert.NotContains(t, out.String(), "s3cret")
}

func TestGetMultiline(t *testing.T) {
	var out bytes.Buffer
	r := bufio.NewReader(strings.NewReader("first line\nsecond line\n\nignored\n"))

	got, err := GetMultiline(r, "Description", &out)
	require.NoError(t, err)
	assert.Equal(t, "first line\nsecond line", got)
}

func TestParseID(t *testing.T) {
	id, err := parseID(" 42 ")
	require.NoError(t, err)
	assert.Equal(t, int64(42), id)

	for _, bad := range []string{"", "abc", "0", "-5", "1.5"} {
		_, err := parseID(bad)
		assert.Error(t, err, "input %q", bad)
	}
}

func TestSplitImageURLs(t *testing.T) {
	got := splitImageURLs("https://a.test/1.jpg\n   \nhttps://a.test/2.jpg\n")
	assert.Equal(t, []string{"https://a.test/1.jpg", "https://a.test/2.jpg"}, got)

	assert.Nil(t, splitImageURLs("   \n  "))
}
