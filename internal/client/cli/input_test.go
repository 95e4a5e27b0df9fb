package cli

import (
	"bufio"
	"bytes"
	"strings"
	"testing"

	"github.com/stretchr/testify/require"
)

func reader(s string) *bufio.Reader {
	return bufio.NewReader(strings.NewReader(s))
}

func TestGetSimpleText(t *testing.T) {
	var out bytes.Buffer
	got, err := GetSimpleText(reader("  hello world  \n"), "Say something", &out)
	require.NoError(t, err)
	require.Equal(t, "hello world", got)
	require.Contains(t, out.String(), "Say something")
}

func TestGetSimpleText_PartialLineAtEOF(t *testing.T) {
	var out bytes.Buffer
	got, err := GetSimpleText(reader("no newline"), "p", &out)
	require.NoError(t, err)
	require.Equal(t, "no newline", got)
}

func TestGetTextDefault(t *testing.T) {
	var out bytes.Buffer
	got, err := GetTextDefault(reader("\n"), "Name", "kept", &out)
	require.NoError(t, err)
	require.Equal(t, "kept", got)
	require.Contains(t, out.String(), "[kept]")

	got, err = GetTextDefault(reader("replaced\n"), "Name", "kept", &out)
	require.NoError(t, err)
	require.Equal(t, "replaced", got)
}

func TestGetMultiline(t *testing.T) {
	var out bytes.Buffer
	got, err := GetMultiline(reader("line one\nline two\n\n"), "Body", &out)
	require.NoError(t, err)
	require.Equal(t, "line one\nline two", got)
}

func TestGetConfirm(t *testing.T) {
	var out bytes.Buffer
	for in, want := range map[string]bool{"y\n": true, "yes\n": true, "Y\n": true, "n\n": false, "\n": false, "maybe\n": false} {
		got, err := GetConfirm(reader(in), "Sure?", &out)
		require.NoError(t, err)
		require.Equal(t, want, got, "input %q", in)
	}
}

func TestGetChoice(t *testing.T) {
	var out bytes.Buffer
	opts := []string{"alpha", "beta", "gamma"}

	got, err := GetChoice(reader("2\n"), "Pick", opts, 0, &out)
	require.NoError(t, err)
	require.Equal(t, 1, got)

	// Empty input keeps the default.
	got, err = GetChoice(reader("\n"), "Pick", opts, 2, &out)
	require.NoError(t, err)
	require.Equal(t, 2, got)

	// Out-of-range input re-prompts until a valid pick.
	got, err = GetChoice(reader("9\nzero\n1\n"), "Pick", opts, -1, &out)
	require.NoError(t, err)
	require.Equal(t, 0, got)
}

func TestGetPassword(t *testing.T) {
	orig := readPassword
	defer func() { readPassword = orig }()
	readPassword = func(fd int) ([]byte, error) {
		return []byte("s3cret"), nil
	}

	var out bytes.Buffer
	got, err := GetPassword(&out, "Password: ")
	require.NoError(t, err)
	require.Equal(t, "s3cret", got)
	require.Contains(t, out.String(), "Password: ")
}
